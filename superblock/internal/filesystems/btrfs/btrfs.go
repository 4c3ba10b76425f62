// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package btrfs probes btrfs filesystems.
package btrfs

import (
	"github.com/google/uuid"

	"github.com/serpent-os/go-superblock/superblock/internal/magic"
	"github.com/serpent-os/go-superblock/superblock/internal/probe"
	"github.com/serpent-os/go-superblock/superblock/internal/utils"
)

// The primary superblock lives 64 KiB into the volume.
const sbOffset = 0x10000

var btrfsMagic = magic.Magic{
	Offset: sbOffset + sbMagicOffset,
	Value:  []byte("_BHRfS_M"),
}

// Probe for the filesystem.
type Probe struct{}

// Magic returns the magic value for the filesystem.
func (p *Probe) Magic() []*magic.Magic {
	return []*magic.Magic{&btrfsMagic}
}

// Name returns the name of the filesystem.
func (p *Probe) Name() string {
	return "btrfs"
}

// Probe runs the further inspection and returns the result if successful.
func (p *Probe) Probe(r probe.Reader) (*probe.Result, error) {
	buf := make([]byte, superblockSize)

	if err := utils.ReadFullAt(r, buf, sbOffset); err != nil {
		return nil, err
	}

	sb := SuperBlock(buf)

	if !utils.IsPowerOf2(sb.SectorSize()) {
		return nil, nil //nolint:nilnil
	}

	fsUUID, err := uuid.FromBytes(sb.FSID())
	if err != nil {
		return nil, err
	}

	return &probe.Result{
		UUID:  &fsUUID,
		Label: utils.NulPaddedLabel(sb.Label()),

		BlockSize:           sb.SectorSize(),
		FilesystemBlockSize: sb.NodeSize(),
		ProbedSize:          sb.TotalBytes(),
	}, nil
}
