// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package xfs probes XFS filesystems.
package xfs

import (
	"github.com/google/uuid"

	"github.com/serpent-os/go-superblock/superblock/internal/magic"
	"github.com/serpent-os/go-superblock/superblock/internal/probe"
	"github.com/serpent-os/go-superblock/superblock/internal/utils"
)

var xfsMagic = magic.Magic{
	Offset: 0,
	Value:  []byte("XFSB"),
}

// Probe for the filesystem.
type Probe struct{}

// Magic returns the magic value for the filesystem.
func (p *Probe) Magic() []*magic.Magic {
	return []*magic.Magic{&xfsMagic}
}

// Name returns the name of the filesystem.
func (p *Probe) Name() string {
	return "xfs"
}

// Probe runs the further inspection and returns the result if successful.
func (p *Probe) Probe(r probe.Reader) (*probe.Result, error) {
	buf := make([]byte, superblockSize)

	if err := utils.ReadFullAt(r, buf, 0); err != nil {
		return nil, err
	}

	sb := SuperBlock(buf)
	if !sb.Valid() {
		return nil, nil //nolint:nilnil
	}

	fsUUID, err := uuid.FromBytes(sb.UUID())
	if err != nil {
		return nil, err
	}

	return &probe.Result{
		UUID:  &fsUUID,
		Label: utils.NulPaddedLabel(sb.Fname()),

		BlockSize:           uint32(sb.Sectsize()),
		FilesystemBlockSize: sb.Blocksize(),
		ProbedSize:          sb.FilesystemSize(),
	}, nil
}
