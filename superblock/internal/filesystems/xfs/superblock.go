// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package xfs

import "encoding/binary"

// Superblock field layout; the primary superblock is the first sector of the
// volume.
//
// Multi-byte integers are big-endian.
const (
	superblockSize = 0x200

	sbBlocksizeOffset = 0x04
	sbDblocksOffset   = 0x08
	sbRblocksOffset   = 0x10
	sbRextentsOffset  = 0x18
	sbUUIDOffset      = 0x20
	sbLogstartOffset  = 0x30
	sbRootinoOffset   = 0x38
	sbRbminoOffset    = 0x40
	sbRsuminoOffset   = 0x48
	sbRextsizeOffset  = 0x50
	sbAgblocksOffset  = 0x54
	sbAgcountOffset   = 0x58
	sbRbmblocksOffset = 0x5c
	sbLogblocksOffset = 0x60
	sbVersionOffset   = 0x64
	sbSectsizeOffset  = 0x66
	sbInodesizeOffset = 0x68
	sbInopblockOffset = 0x6a
	sbFnameOffset     = 0x6c
	sbFnameSize       = 12
	sbBlocklogOffset  = 0x78
	sbSectlogOffset   = 0x79
	sbInodelogOffset  = 0x7a
	sbInopblogOffset  = 0x7b
	sbImaxPctOffset   = 0x7f
)

// SuperBlock is a decoded view of the XFS superblock.
type SuperBlock []byte

// Blocksize returns the filesystem block size in bytes.
func (s SuperBlock) Blocksize() uint32 {
	return binary.BigEndian.Uint32(s[sbBlocksizeOffset:])
}

// Dblocks returns the number of data blocks.
func (s SuperBlock) Dblocks() uint64 {
	return binary.BigEndian.Uint64(s[sbDblocksOffset:])
}

// UUID returns the raw filesystem UUID bytes.
func (s SuperBlock) UUID() []byte {
	return s[sbUUIDOffset : sbUUIDOffset+16]
}

// Logstart returns the starting block of the internal log.
func (s SuperBlock) Logstart() uint64 {
	return binary.BigEndian.Uint64(s[sbLogstartOffset:])
}

// Rextsize returns the realtime extent size in blocks.
func (s SuperBlock) Rextsize() uint32 {
	return binary.BigEndian.Uint32(s[sbRextsizeOffset:])
}

// Agcount returns the number of allocation groups.
func (s SuperBlock) Agcount() uint32 {
	return binary.BigEndian.Uint32(s[sbAgcountOffset:])
}

// Logblocks returns the number of log blocks.
func (s SuperBlock) Logblocks() uint32 {
	return binary.BigEndian.Uint32(s[sbLogblocksOffset:])
}

// Sectsize returns the volume sector size in bytes.
func (s SuperBlock) Sectsize() uint16 {
	return binary.BigEndian.Uint16(s[sbSectsizeOffset:])
}

// Inodesize returns the inode size in bytes.
func (s SuperBlock) Inodesize() uint16 {
	return binary.BigEndian.Uint16(s[sbInodesizeOffset:])
}

// Fname returns the raw NUL-padded volume label field.
//
// The field is exactly 12 bytes; no data past it is ever interpreted.
func (s SuperBlock) Fname() []byte {
	return s[sbFnameOffset : sbFnameOffset+sbFnameSize]
}

// Blocklog returns log2 of the block size.
func (s SuperBlock) Blocklog() uint8 {
	return s[sbBlocklogOffset]
}

// Sectlog returns log2 of the sector size.
func (s SuperBlock) Sectlog() uint8 {
	return s[sbSectlogOffset]
}

// Inodelog returns log2 of the inode size.
func (s SuperBlock) Inodelog() uint8 {
	return s[sbInodelogOffset]
}

// Inopblog returns log2 of the number of inodes per block.
func (s SuperBlock) Inopblog() uint8 {
	return s[sbInopblogOffset]
}

// ImaxPct returns the maximum percentage of the filesystem usable for inodes.
func (s SuperBlock) ImaxPct() uint8 {
	return s[sbImaxPctOffset]
}
