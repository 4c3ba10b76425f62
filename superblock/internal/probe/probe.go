// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package probe defines common probe interfaces.
package probe

import (
	"io"

	"github.com/google/uuid"

	"github.com/serpent-os/go-superblock/superblock/internal/magic"
)

// Reader is a byte source for probing filesystems and containers.
type Reader interface {
	io.ReaderAt

	GetSize() uint64
}

// Prober is an interface for probing filesystems and containers.
type Prober interface {
	// Name returns the name of the filesystem or container.
	Name() string
	// Magic returns the magic values for the filesystem or container.
	Magic() []*magic.Magic
	// Probe runs the further inspection and returns the result if successful.
	//
	// A nil result with a nil error means the prober declined: the magic
	// matched, but the rest of the superblock did not check out.
	Probe(Reader) (*Result, error)
}

// Result is a probe result.
type Result struct {
	UUID  *uuid.UUID
	Label *string

	Container *ContainerMetadata

	BlockSize           uint32
	FilesystemBlockSize uint32
	ProbedSize          uint64
}

// ContainerMetadata describes an encrypted container header.
//
// The fields are passed through as found on disk; interpreting them (and any
// unlocking) is left to the caller.
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
