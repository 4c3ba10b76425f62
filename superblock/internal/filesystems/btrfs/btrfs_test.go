// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package btrfs_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serpent-os/go-superblock/superblock/internal/filesystems/btrfs"
)

type memReader struct {
	*bytes.Reader
}

func (r memReader) GetSize() uint64 {
	return uint64(r.Size())
}

func baseImage(fsUUID uuid.UUID, label string) []byte {
	img := make([]byte, 128*1024)
	sb := img[0x10000:]

	copy(sb[0x20:], fsUUID[:])
	copy(sb[0x40:], "_BHRfS_M")
	binary.LittleEndian.PutUint64(sb[0x70:], 128*1024) // total_bytes
	binary.LittleEndian.PutUint32(sb[0x90:], 4096)     // sectorsize
	binary.LittleEndian.PutUint32(sb[0x94:], 16384)    // nodesize
	copy(sb[0x12b:], label)

	return img
}

func TestProbe(t *testing.T) {
	fsUUID := uuid.MustParse("829d6a03-96a5-4749-9ea2-dbb6e59368b2")

	img := baseImage(fsUUID, "data\x00leftover")

	res, err := (&btrfs.Probe{}).Probe(memReader{bytes.NewReader(img)})
	require.NoError(t, err)
	require.NotNil(t, res)

	require.NotNil(t, res.UUID)
	assert.Equal(t, fsUUID, *res.UUID)

	// anything past the first NUL is stale padding
	require.NotNil(t, res.Label)
	assert.Equal(t, "data", *res.Label)

	assert.EqualValues(t, 4096, res.BlockSize)
	assert.EqualValues(t, 16384, res.FilesystemBlockSize)
	assert.EqualValues(t, 128*1024, res.ProbedSize)
}

func TestProbeBadSectorSize(t *testing.T) {
	img := baseImage(uuid.MustParse("829d6a03-96a5-4749-9ea2-dbb6e59368b2"), "data")

	binary.LittleEndian.PutUint32(img[0x10000+0x90:], 3000)

	res, err := (&btrfs.Probe{}).Probe(memReader{bytes.NewReader(img)})
	require.NoError(t, err)
	assert.Nil(t, res)
}
