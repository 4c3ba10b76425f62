// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package superblock_test

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/siderolabs/go-pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/serpent-os/go-superblock/block"
	"github.com/serpent-os/go-superblock/superblock"
)

//go:embed testdata/ext4.img.zst
var ext4Image []byte

//go:embed testdata/btrfs.img.zst
var btrfsImage []byte

//go:embed testdata/f2fs.img.zst
var f2fsImage []byte

//go:embed testdata/xfs.img.zst
var xfsImage []byte

//go:embed testdata/luks1.img.zst
var luks1Image []byte

//go:embed testdata/luks2.img.zst
var luks2Image []byte

func decompress(t *testing.T, compressed []byte) []byte {
	t.Helper()

	zr, err := zstd.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)

	defer zr.Close()

	img, err := io.ReadAll(zr)
	require.NoError(t, err)

	return img
}

//nolint:gocognit
func TestProbeReaderAtFixtures(t *testing.T) {
	for _, test := range []struct { //nolint:govet
		name string

		image []byte

		// first byte of the format's magic signature, for the corruption subtest
		magicOffset int64

		expectedName  string
		expectedUUID  uuid.UUID
		expectedLabel *string

		expectedContainer *superblock.ContainerMetadata

		expectedBlockSize   uint32
		expectedFSBlockSize uint32
		expectedFSSize      uint64
	}{
		{
			name: "ext4",

			image:       ext4Image,
			magicOffset: 0x400 + 0x38,

			expectedName:  "ext4",
			expectedUUID:  uuid.MustParse("731af94c-9990-4eed-944d-5d230dbe8a0d"),
			expectedLabel: pointer.To("blsforme testing"),

			expectedBlockSize:   4096,
			expectedFSBlockSize: 4096,
			expectedFSSize:      256 * 1024,
		},
		{
			name: "btrfs",

			image:       btrfsImage,
			magicOffset: 0x10000 + 0x40,

			expectedName:  "btrfs",
			expectedUUID:  uuid.MustParse("829d6a03-96a5-4749-9ea2-dbb6e59368b2"),
			expectedLabel: pointer.To("blsforme testing"),

			expectedBlockSize:   4096,
			expectedFSBlockSize: 16384,
			expectedFSSize:      256 * 1024,
		},
		{
			name: "f2fs",

			image:       f2fsImage,
			magicOffset: 0x400,

			expectedName:  "f2fs",
			expectedUUID:  uuid.MustParse("d2c85810-4e75-4274-bc7d-a78267af7443"),
			expectedLabel: pointer.To("blsforme testing"),

			expectedBlockSize:   4096,
			expectedFSBlockSize: 4096,
			expectedFSSize:      256 * 1024,
		},
		{
			name: "xfs",

			image:       xfsImage,
			magicOffset: 0,

			expectedName:  "xfs",
			expectedUUID:  uuid.MustParse("45e8a3bf-8114-400f-95b0-380d0fb7d42d"),
			expectedLabel: pointer.To("BLSFORME"),

			expectedBlockSize:   512,
			expectedFSBlockSize: 4096,
			expectedFSSize:      256 * 1024,
		},
		{
			name: "luks1",

			image:       luks1Image,
			magicOffset: 0,

			expectedName: "luks",
			expectedUUID: uuid.MustParse("8fd67cbc-69e1-4606-a27b-1d9a9a7db9cd"),

			expectedContainer: &superblock.ContainerMetadata{
				Version:        1,
				Cipher:         "aes",
				CipherMode:     "xts-plain64",
				Hash:           "sha256",
				KeyBytes:       64,
				ActiveKeySlots: []int{0},
			},
		},
		{
			name: "luks2",

			image:       luks2Image,
			magicOffset: 0,

			expectedName: "luks",
			expectedUUID: uuid.MustParse("be373cae-2bd1-4ad5-953f-3463b2e53e59"),

			expectedContainer: &superblock.ContainerMetadata{
				Version:    2,
				Hash:       "sha256",
				HeaderSize: 16384,
				SeqID:      3,
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			img := decompress(t, test.image)

			logger := zaptest.NewLogger(t)

			info, err := superblock.ProbeReaderAt(bytes.NewReader(img), uint64(len(img)), superblock.WithProbeLogger(logger))
			require.NoError(t, err)

			assert.Nil(t, info.BlockDevice)
			assert.EqualValues(t, len(img), info.Size)
			assert.EqualValues(t, block.DefaultBlockSize, info.SectorSize)
			assert.EqualValues(t, block.DefaultBlockSize, info.IOSize)

			assert.Equal(t, test.expectedName, info.Name)

			require.NotNil(t, info.UUID)
			assert.Equal(t, test.expectedUUID, *info.UUID)

			if test.expectedLabel != nil {
				require.NotNil(t, info.Label)
				assert.Equal(t, *test.expectedLabel, *info.Label)
			} else {
				assert.Nil(t, info.Label)
			}

			assert.Equal(t, test.expectedContainer, info.Container)

			assert.Equal(t, test.expectedBlockSize, info.BlockSize)
			assert.Equal(t, test.expectedFSBlockSize, info.FilesystemBlockSize)
			assert.Equal(t, test.expectedFSSize, info.ProbedSize)

			t.Run("repeated probe", func(t *testing.T) {
				again, err := superblock.ProbeReaderAt(bytes.NewReader(img), uint64(len(img)), superblock.WithProbeLogger(logger))
				require.NoError(t, err)

				assert.Equal(t, info, again)
			})

			t.Run("corrupted magic", func(t *testing.T) {
				corrupted := bytes.Clone(img)
				corrupted[test.magicOffset] ^= 0xff

				info, err := superblock.ProbeReaderAt(bytes.NewReader(corrupted), uint64(len(corrupted)), superblock.WithProbeLogger(logger))
				require.NoError(t, err)

				assert.Empty(t, info.Name)
				assert.Nil(t, info.UUID)
				assert.Nil(t, info.Label)
				assert.Nil(t, info.Container)
			})
		})
	}
}

func TestProbeReaderAtUnrecognized(t *testing.T) {
	img := make([]byte, 256*1024)

	info, err := superblock.ProbeReaderAt(bytes.NewReader(img), uint64(len(img)), superblock.WithProbeLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	assert.Empty(t, info.Name)
	assert.Nil(t, info.UUID)
	assert.Nil(t, info.Label)
	assert.Nil(t, info.Container)
	assert.EqualValues(t, len(img), info.Size)
}

func TestProbeReaderAtTooSmall(t *testing.T) {
	for _, size := range []int{0, 100, 4096} {
		img := make([]byte, size)

		_, err := superblock.ProbeReaderAt(bytes.NewReader(img), uint64(len(img)))
		assert.ErrorIs(t, err, superblock.ErrSourceTooSmall)
	}
}

// A signature match on a source too short for the full superblock is treated
// as no match, not an error.
func TestProbeReaderAtTruncated(t *testing.T) {
	img := decompress(t, btrfsImage)

	// cut between the end of the magic window and the end of the superblock
	img = img[:0x10800]

	info, err := superblock.ProbeReaderAt(bytes.NewReader(img), uint64(len(img)), superblock.WithProbeLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)

	assert.Empty(t, info.Name)
	assert.Nil(t, info.UUID)
}

type brokenReader struct {
	err error
}

func (r brokenReader) ReadAt([]byte, int64) (int, error) {
	return 0, r.err
}

func TestProbeReaderAtIOError(t *testing.T) {
	errBadSector := errors.New("bad sector")

	_, err := superblock.ProbeReaderAt(brokenReader{err: errBadSector}, 256*1024)
	assert.ErrorIs(t, err, errBadSector)
}
