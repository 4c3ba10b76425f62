// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package f2fs_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serpent-os/go-superblock/superblock/internal/filesystems/f2fs"
)

type memReader struct {
	*bytes.Reader
}

func (r memReader) GetSize() uint64 {
	return uint64(r.Size())
}

func baseImage(fsUUID uuid.UUID, label string) []byte {
	img := make([]byte, 8192)
	sb := img[1024:]

	binary.LittleEndian.PutUint32(sb[0x00:], 0xF2F52010)
	binary.LittleEndian.PutUint32(sb[0x08:], 9)   // log_sectorsize
	binary.LittleEndian.PutUint32(sb[0x10:], 12)  // log_blocksize, 4 KiB
	binary.LittleEndian.PutUint64(sb[0x24:], 512) // block_count
	copy(sb[0x6c:], fsUUID[:])

	for i, r := range label {
		binary.LittleEndian.PutUint16(sb[0x7c+i*2:], uint16(r))
	}

	return img
}

func TestProbe(t *testing.T) {
	fsUUID := uuid.MustParse("d2c85810-4e75-4274-bc7d-a78267af7443")

	img := baseImage(fsUUID, "flash")

	res, err := (&f2fs.Probe{}).Probe(memReader{bytes.NewReader(img)})
	require.NoError(t, err)
	require.NotNil(t, res)

	require.NotNil(t, res.UUID)
	assert.Equal(t, fsUUID, *res.UUID)

	require.NotNil(t, res.Label)
	assert.Equal(t, "flash", *res.Label)

	assert.EqualValues(t, 4096, res.BlockSize)
	assert.EqualValues(t, 4096, res.FilesystemBlockSize)
	assert.EqualValues(t, 512*4096, res.ProbedSize)
}

func TestProbeNoLabel(t *testing.T) {
	img := baseImage(uuid.MustParse("d2c85810-4e75-4274-bc7d-a78267af7443"), "")

	res, err := (&f2fs.Probe{}).Probe(memReader{bytes.NewReader(img)})
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Nil(t, res.Label)
}

func TestProbeBadBlockSize(t *testing.T) {
	img := baseImage(uuid.MustParse("d2c85810-4e75-4274-bc7d-a78267af7443"), "flash")

	binary.LittleEndian.PutUint32(img[1024+0x10:], 32)

	res, err := (&f2fs.Probe{}).Probe(memReader{bytes.NewReader(img)})
	require.NoError(t, err)
	assert.Nil(t, res)
}
