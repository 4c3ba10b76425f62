// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package btrfs

import "encoding/binary"

// Superblock field layout, offsets relative to the superblock start.
//
// Multi-byte integers are little-endian.
const (
	superblockSize = 0x1000

	sbFSIDOffset       = 0x20
	sbMagicOffset      = 0x40
	sbTotalBytesOffset = 0x70
	sbSectorSizeOffset = 0x90
	sbNodeSizeOffset   = 0x94
	sbLabelOffset      = 0x12b
	sbLabelSize        = 256
)

// SuperBlock is a decoded view of the btrfs superblock.
type SuperBlock []byte

// FSID returns the raw filesystem UUID bytes.
func (s SuperBlock) FSID() []byte {
	return s[sbFSIDOffset : sbFSIDOffset+16]
}

// TotalBytes returns the size of the filesystem in bytes.
func (s SuperBlock) TotalBytes() uint64 {
	return binary.LittleEndian.Uint64(s[sbTotalBytesOffset:])
}

// SectorSize returns the sector size of the filesystem.
func (s SuperBlock) SectorSize() uint32 {
	return binary.LittleEndian.Uint32(s[sbSectorSizeOffset:])
}

// NodeSize returns the metadata node size of the filesystem.
func (s SuperBlock) NodeSize() uint32 {
	return binary.LittleEndian.Uint32(s[sbNodeSizeOffset:])
}

// Label returns the raw NUL-padded volume label field.
func (s SuperBlock) Label() []byte {
	return s[sbLabelOffset : sbLabelOffset+sbLabelSize]
}
