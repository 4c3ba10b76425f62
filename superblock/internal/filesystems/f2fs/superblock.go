// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package f2fs

import "encoding/binary"

// Superblock field layout, offsets relative to the superblock start.
//
// Multi-byte integers are little-endian. The volume label is UTF-16LE,
// 512 code units wide.
const (
	superblockSize = 0xc00

	sbMagicOffset         = 0x00
	sbLogSectorsizeOffset = 0x08
	sbLogBlocksizeOffset  = 0x10
	sbBlockCountOffset    = 0x24
	sbUUIDOffset          = 0x6c
	sbVolumeNameOffset    = 0x7c
	sbVolumeNameSize      = 512 * 2
)

// SuperBlock is a decoded view of the f2fs superblock.
type SuperBlock []byte

// LogSectorsize returns the log2 of the sector size.
func (s SuperBlock) LogSectorsize() uint32 {
	return binary.LittleEndian.Uint32(s[sbLogSectorsizeOffset:])
}

// LogBlocksize returns the log2 of the block size.
func (s SuperBlock) LogBlocksize() uint32 {
	return binary.LittleEndian.Uint32(s[sbLogBlocksizeOffset:])
}

// BlockCount returns the total block count of the filesystem.
func (s SuperBlock) BlockCount() uint64 {
	return binary.LittleEndian.Uint64(s[sbBlockCountOffset:])
}

// UUID returns the raw filesystem UUID bytes.
func (s SuperBlock) UUID() []byte {
	return s[sbUUIDOffset : sbUUIDOffset+16]
}

// VolumeName returns the raw UTF-16LE volume label field.
func (s SuperBlock) VolumeName() []byte {
	return s[sbVolumeNameOffset : sbVolumeNameOffset+sbVolumeNameSize]
}

// BlockSize returns the block size of the filesystem.
func (s SuperBlock) BlockSize() uint32 {
	if s.LogBlocksize() >= 32 {
		return 0
	}

	return 1 << s.LogBlocksize()
}

// FilesystemSize returns the size of the filesystem in bytes.
func (s SuperBlock) FilesystemSize() uint64 {
	return s.BlockCount() * uint64(s.BlockSize())
}
