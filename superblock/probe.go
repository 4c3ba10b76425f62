// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package superblock

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/siderolabs/gen/xslices"
	"go.uber.org/zap"

	"github.com/serpent-os/go-superblock/block"
	"github.com/serpent-os/go-superblock/superblock/internal/chain"
	"github.com/serpent-os/go-superblock/superblock/internal/probe"
	"github.com/serpent-os/go-superblock/superblock/internal/utils"
)

// ProbeReaderAt probes an arbitrary byte source of the given size.
//
// The source is read at bounded windows only; it is never read in full, and
// never written to. Each call is independent: the result is a pure function of
// the bytes read.
func ProbeReaderAt(r io.ReaderAt, size uint64, opts ...ProbeOption) (*Info, error) {
	options := applyProbeOptions(opts...)

	info := &Info{
		Size:       size,
		SectorSize: block.DefaultBlockSize,
		IOSize:     block.DefaultBlockSize,
	}

	if err := info.fillProbeResult(r, options); err != nil {
		return nil, err
	}

	return info, nil
}

// reader adapts an io.ReaderAt to the prober byte source contract.
type reader struct {
	io.ReaderAt

	size uint64
}

func (r reader) GetSize() uint64 { return r.size }

func (i *Info) fillProbeResult(r io.ReaderAt, options ProbeOptions) error {
	probers := chain.Default()

	// read a single window covering the largest signature span; every
	// prober's magic check happens against this buffer
	magicReadSize := probers.MaxMagicSize()

	if i.Size < uint64(magicReadSize) {
		return fmt.Errorf("%w: size %d is less than the magic window %d", ErrSourceTooSmall, i.Size, magicReadSize)
	}

	buf := make([]byte, magicReadSize)

	if err := utils.ReadFullAt(r, buf, 0); err != nil {
		return fmt.Errorf("error reading magic window: %w", err)
	}

	matches := probers.MagicMatches(buf)

	switch len(matches) {
	case 0:
		options.Logger.Debug("no superblock signature matched")

		return nil
	case 1:
		// expected: distinct formats use distinct magic values
	default:
		names := xslices.Map(matches, probe.Prober.Name)

		return fmt.Errorf("%w: %s", ErrAmbiguousMagic, strings.Join(names, ", "))
	}

	matched := matches[0]

	res, err := matched.Probe(reader{ReaderAt: r, size: i.Size})

	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		// the signature matched, but the source is too short for the full
		// superblock: treat as no match
		res = nil
	case err != nil:
		return fmt.Errorf("error probing %s: %w", matched.Name(), err)
	}

	if res == nil {
		options.Logger.Debug("superblock signature matched, but the prober declined",
			zap.String("name", matched.Name()),
		)

		return nil
	}

	i.Name = matched.Name()
	i.UUID = res.UUID
	i.Label = res.Label
	i.BlockSize = res.BlockSize
	i.FilesystemBlockSize = res.FilesystemBlockSize
	i.ProbedSize = res.ProbedSize

	if res.Container != nil {
		i.Container = &ContainerMetadata{
			Version:        res.Container.Version,
			Cipher:         res.Container.Cipher,
			CipherMode:     res.Container.CipherMode,
			Hash:           res.Container.Hash,
			KeyBytes:       res.Container.KeyBytes,
			ActiveKeySlots: res.Container.ActiveKeySlots,
			HeaderSize:     res.Container.HeaderSize,
			SeqID:          res.Container.SeqID,
			Subsystem:      res.Container.Subsystem,
		}
	}

	options.Logger.Debug("superblock probed",
		zap.String("name", i.Name),
		zap.Stringer("uuid", i.UUID),
	)

	return nil
}
