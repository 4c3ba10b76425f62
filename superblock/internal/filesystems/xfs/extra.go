// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package xfs

// XFS superblock structure constants.
//
//nolint:revive,stylecheck
const (
	XFS_MIN_BLOCKSIZE_LOG  = 9  /* i.e. 512 bytes */
	XFS_MAX_BLOCKSIZE_LOG  = 16 /* i.e. 65536 bytes */
	XFS_MIN_BLOCKSIZE      = (1 << XFS_MIN_BLOCKSIZE_LOG)
	XFS_MAX_BLOCKSIZE      = (1 << XFS_MAX_BLOCKSIZE_LOG)
	XFS_MIN_SECTORSIZE_LOG = 9  /* i.e. 512 bytes */
	XFS_MAX_SECTORSIZE_LOG = 15 /* i.e. 32768 bytes */
	XFS_MIN_SECTORSIZE     = (1 << XFS_MIN_SECTORSIZE_LOG)
	XFS_MAX_SECTORSIZE     = (1 << XFS_MAX_SECTORSIZE_LOG)

	XFS_DINODE_MIN_LOG  = 8
	XFS_DINODE_MAX_LOG  = 11
	XFS_DINODE_MIN_SIZE = (1 << XFS_DINODE_MIN_LOG)
	XFS_DINODE_MAX_SIZE = (1 << XFS_DINODE_MAX_LOG)

	XFS_MAX_RTEXTSIZE = (1024 * 1024 * 1024) /* 1GB */
	XFS_MIN_RTEXTSIZE = (4 * 1024)           /* 4kB */
)

// Valid returns true if the superblock is valid.
//
//nolint:gocyclo,cyclop
func (s SuperBlock) Valid() bool {
	if s.Agcount() <= 0 ||
		s.Sectsize() < XFS_MIN_SECTORSIZE ||
		s.Sectsize() > XFS_MAX_SECTORSIZE ||
		s.Sectlog() < XFS_MIN_SECTORSIZE_LOG ||
		s.Sectlog() > XFS_MAX_SECTORSIZE_LOG ||
		s.Sectsize() != (1<<s.Sectlog()) ||
		s.Blocksize() < XFS_MIN_BLOCKSIZE ||
		s.Blocksize() > XFS_MAX_BLOCKSIZE ||
		s.Blocklog() < XFS_MIN_BLOCKSIZE_LOG ||
		s.Blocklog() > XFS_MAX_BLOCKSIZE_LOG ||
		s.Blocksize() != (1<<s.Blocklog()) ||
		s.Inodesize() < XFS_DINODE_MIN_SIZE ||
		s.Inodesize() > XFS_DINODE_MAX_SIZE ||
		s.Inodelog() < XFS_DINODE_MIN_LOG ||
		s.Inodelog() > XFS_DINODE_MAX_LOG ||
		s.Inodesize() != (1<<s.Inodelog()) ||
		(s.Blocklog()-s.Inodelog() != s.Inopblog()) ||
		(uint64(s.Rextsize())*uint64(s.Blocksize()) > XFS_MAX_RTEXTSIZE) ||
		(uint64(s.Rextsize())*uint64(s.Blocksize()) < XFS_MIN_RTEXTSIZE) ||
		(s.ImaxPct() > 100 /* zero sb_imax_pct is valid */) ||
		s.Dblocks() == 0 {
		return false
	}

	return true
}

// FilesystemSize returns the size of the filesystem in bytes.
func (s SuperBlock) FilesystemSize() uint64 {
	logsBlocks := uint32(0)

	if s.Logstart() != 0 {
		logsBlocks = s.Logblocks()
	}

	availBlocks := s.Dblocks() - uint64(logsBlocks)

	return availBlocks * uint64(s.Blocksize())
}
