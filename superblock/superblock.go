// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package superblock identifies the filesystem or container format of a block
// device or disk image and extracts its canonical identity: type, UUID and
// volume label.
package superblock

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/serpent-os/go-superblock/block"
)

// Common errors.
var (
	// ErrFailedLock is returned when the shared lock on the blockdevice cannot be acquired.
	ErrFailedLock = errors.New("failed to acquire shared lock while probing blockdevice")

	// ErrAmbiguousMagic is returned when more than one format's magic signature matches.
	//
	// Real formats use distinct magic values at distinct offsets, so this
	// indicates a corrupt or adversarial source rather than a valid filesystem.
	ErrAmbiguousMagic = errors.New("multiple superblock signatures matched")

	// ErrSourceTooSmall is returned when the byte source cannot cover the
	// signature window of every known format.
	ErrSourceTooSmall = errors.New("source is too small to probe")
)

// Recognized filesystem/container names reported in ProbeResult.Name.
const (
	NameExt4  = "ext4"
	NameBtrfs = "btrfs"
	NameF2FS  = "f2fs"
	NameXFS   = "xfs"
	NameLUKS  = "luks"
)

// Info represents the result of the probe.
type Info struct { //nolint:govet
	// Link to the block device, only if the probed file is a blockdevice.
	BlockDevice *block.Device

	// DevNo is the device number of the probed device.
	//
	// Only available if the probed file is a blockdevice.
	DevNo uint64

	// WholeDisk is true if the probed device is a whole disk.
	//
	// Only available if the probed file is a blockdevice.
	WholeDisk bool

	// Overall size of the probed source (in bytes).
	Size uint64

	// Sector size of the device (in bytes).
	SectorSize uint

	// Optimal I/O size for the device (in bytes).
	IOSize uint

	// ProbeResult is the result of probing the source.
	ProbeResult
}

// ProbeResult is the identity of a single filesystem or container.
//
// An empty Name means no known superblock signature matched; that is an
// expected outcome, not an error.
type ProbeResult struct { //nolint:govet
	Name  string
	UUID  *uuid.UUID
	Label *string

	// Container is set only for encrypted container formats (LUKS).
	Container *ContainerMetadata

	BlockSize           uint32
	FilesystemBlockSize uint32
	ProbedSize          uint64
}

// ContainerMetadata is the pass-through description of an encrypted container
// header, carrying whatever the caller needs to later unlock it.
//
// This package performs no key derivation or decryption.
type ContainerMetadata struct {
	// Version of the container header (LUKS: 1 or 2).
	Version int

	// Cipher name and mode (LUKS1 binary header only).
	Cipher     string
	CipherMode string

	// Hash holds the LUKS1 hash spec or the LUKS2 checksum algorithm.
	Hash string

	// KeyBytes is the master key length in bytes (LUKS1 only).
	KeyBytes uint32

	// ActiveKeySlots lists key slot indices marked active (LUKS1 only).
	ActiveKeySlots []int

	// HeaderSize and SeqID of the binary header (LUKS2 only).
	HeaderSize uint64
	SeqID      uint64

	// Subsystem is the LUKS2 subsystem field.
	Subsystem string
}

// ProbeOptions is the options for probing.
type ProbeOptions struct {
	// Logger to use for logging.
	Logger *zap.Logger
	// SkipLocking blockdevices in shared mode.
	SkipLocking bool
}

// ProbeOption is an option for probing.
type ProbeOption func(*ProbeOptions)

// WithProbeLogger sets the logger for the probe.
func WithProbeLogger(logger *zap.Logger) ProbeOption {
	return func(o *ProbeOptions) {
		o.Logger = logger
	}
}

// WithSkipLocking skips locking blockdevices in shared mode.
func WithSkipLocking(skip bool) ProbeOption {
	return func(o *ProbeOptions) {
		o.SkipLocking = skip
	}
}

func applyProbeOptions(opts ...ProbeOption) ProbeOptions {
	o := ProbeOptions{
		Logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
