// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package f2fs probes F2FS filesystems.
package f2fs

import (
	"github.com/google/uuid"

	"github.com/serpent-os/go-superblock/superblock/internal/magic"
	"github.com/serpent-os/go-superblock/superblock/internal/probe"
	"github.com/serpent-os/go-superblock/superblock/internal/utils"
)

// The superblock lives 1024 bytes into the volume.
const sbOffset = 0x400

// 0xF2F52010 as little-endian bytes.
var f2fsMagic = magic.Magic{
	Offset: sbOffset + sbMagicOffset,
	Value:  []byte{0x10, 0x20, 0xf5, 0xf2},
}

// Probe for the filesystem.
type Probe struct{}

// Magic returns the magic value for the filesystem.
func (p *Probe) Magic() []*magic.Magic {
	return []*magic.Magic{&f2fsMagic}
}

// Name returns the name of the filesystem.
func (p *Probe) Name() string {
	return "f2fs"
}

// Probe runs the further inspection and returns the result if successful.
func (p *Probe) Probe(r probe.Reader) (*probe.Result, error) {
	buf := make([]byte, superblockSize)

	if err := utils.ReadFullAt(r, buf, sbOffset); err != nil {
		return nil, err
	}

	sb := SuperBlock(buf)

	if sb.BlockSize() == 0 {
		return nil, nil //nolint:nilnil
	}

	fsUUID, err := uuid.FromBytes(sb.UUID())
	if err != nil {
		return nil, err
	}

	return &probe.Result{
		UUID:  &fsUUID,
		Label: utils.UTF16Label(sb.VolumeName()),

		BlockSize:           sb.BlockSize(),
		FilesystemBlockSize: sb.BlockSize(),
		ProbedSize:          sb.FilesystemSize(),
	}, nil
}
