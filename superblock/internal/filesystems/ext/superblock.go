// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package ext

import "encoding/binary"

// Superblock field layout, offsets relative to the superblock start.
//
// Multi-byte integers are little-endian; the UUID is raw RFC-4122 bytes.
const (
	superblockSize = 0x400

	sbBlocksCountLoOffset   = 0x04
	sbLogBlockSizeOffset    = 0x18
	sbMagicOffset           = 0x38
	sbFeatureROCompatOffset = 0x64
	sbUUIDOffset            = 0x68
	sbVolumeNameOffset      = 0x78
	sbVolumeNameSize        = 16
	sbBlocksCountHiOffset   = 0x150
	sbChecksumOffset        = 0x3fc
)

// SuperBlock is a decoded view of the extfs superblock.
type SuperBlock []byte

// FeatureROCompat returns the read-only compatible feature flags.
func (s SuperBlock) FeatureROCompat() uint32 {
	return binary.LittleEndian.Uint32(s[sbFeatureROCompatOffset:])
}

// UUID returns the raw filesystem UUID bytes.
func (s SuperBlock) UUID() []byte {
	return s[sbUUIDOffset : sbUUIDOffset+16]
}

// VolumeName returns the raw NUL-padded volume label field.
func (s SuperBlock) VolumeName() []byte {
	return s[sbVolumeNameOffset : sbVolumeNameOffset+sbVolumeNameSize]
}

// Checksum returns the stored superblock checksum.
func (s SuperBlock) Checksum() uint32 {
	return binary.LittleEndian.Uint32(s[sbChecksumOffset:])
}

// BlockSize returns the block size of the filesystem.
func (s SuperBlock) BlockSize() uint32 {
	logBlockSize := binary.LittleEndian.Uint32(s[sbLogBlockSizeOffset:])
	if logBlockSize >= 32 {
		return 0
	}

	return 1024 << logBlockSize
}

// BlocksCount returns the 64-bit block count of the filesystem.
func (s SuperBlock) BlocksCount() uint64 {
	lo := binary.LittleEndian.Uint32(s[sbBlocksCountLoOffset:])
	hi := binary.LittleEndian.Uint32(s[sbBlocksCountHiOffset:])

	return uint64(hi)<<32 | uint64(lo)
}

// FilesystemSize returns the size of the filesystem in bytes.
func (s SuperBlock) FilesystemSize() uint64 {
	return s.BlocksCount() * uint64(s.BlockSize())
}
