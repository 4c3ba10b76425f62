// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package ext probes ext4 filesystems.
package ext

import (
	"github.com/google/uuid"

	"github.com/serpent-os/go-superblock/superblock/internal/magic"
	"github.com/serpent-os/go-superblock/superblock/internal/probe"
	"github.com/serpent-os/go-superblock/superblock/internal/utils"
)

// The superblock lives 1024 bytes into the volume.
const sbOffset = 0x400

// Various extfs constants.
//
//nolint:stylecheck,revive
const (
	EXT4_FEATURE_RO_COMPAT_METADATA_CSUM = 0x0400
)

var extfsMagic = magic.Magic{
	Offset: sbOffset + sbMagicOffset,
	Value:  []byte("\123\357"),
}

// Probe for the filesystem.
type Probe struct{}

// Magic returns the magic value for the filesystem.
func (p *Probe) Magic() []*magic.Magic {
	return []*magic.Magic{&extfsMagic}
}

// Name returns the name of the filesystem.
func (p *Probe) Name() string {
	return "ext4"
}

// Probe runs the further inspection and returns the result if successful.
func (p *Probe) Probe(r probe.Reader) (*probe.Result, error) {
	buf := make([]byte, superblockSize)

	if err := utils.ReadFullAt(r, buf, sbOffset); err != nil {
		return nil, err
	}

	sb := SuperBlock(buf)

	if sb.FeatureROCompat()&EXT4_FEATURE_RO_COMPAT_METADATA_CSUM > 0 {
		csum := utils.CRC32c(buf[:sbChecksumOffset])

		if csum != sb.Checksum() {
			return nil, nil //nolint:nilnil
		}
	}

	// an unset (all-zero) UUID is still reported verbatim
	fsUUID, err := uuid.FromBytes(sb.UUID())
	if err != nil {
		return nil, err
	}

	return &probe.Result{
		UUID:  &fsUUID,
		Label: utils.NulPaddedLabel(sb.VolumeName()),

		BlockSize:           sb.BlockSize(),
		FilesystemBlockSize: sb.BlockSize(),
		ProbedSize:          sb.FilesystemSize(),
	}, nil
}
