// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package luks

import "encoding/binary"

// Shared header layout: both versions start with the magic and a big-endian
// version field, and store the UUID as a NUL-padded ASCII string at the same
// offset.
const (
	hdrVersionOffset = 6
	hdrUUIDOffset    = 168
	hdrUUIDSize      = 40
)

// LUKS1 binary header layout (LUKS1 on-disk format specification).
const (
	v1HeaderSize = 592

	v1CipherNameOffset = 8
	v1CipherNameSize   = 32
	v1CipherModeOffset = 40
	v1CipherModeSize   = 32
	v1HashSpecOffset   = 72
	v1HashSpecSize     = 32
	v1KeyBytesOffset   = 108

	v1KeySlotsOffset = 208
	v1KeySlotSize    = 48
	v1KeySlotCount   = 8

	// active/inactive markers of a key slot
	v1KeyEnabled  = 0x00ac71f3
	v1KeyDisabled = 0x0000dead
)

// LUKS2 binary header layout (LUKS2 on-disk format specification).
const (
	v2HeaderSize = 4096

	v2HdrSizeOffset     = 8
	v2SeqIDOffset       = 16
	v2LabelOffset       = 24
	v2LabelSize         = 48
	v2ChecksumAlgOffset = 72
	v2ChecksumAlgSize   = 32
	v2SubsystemOffset   = 208
	v2SubsystemSize     = 48
)

// Header is a decoded view of a LUKS binary header.
//
// Multi-byte integers are big-endian in both header versions.
type Header []byte

// Version returns the header version field.
func (h Header) Version() uint16 {
	return binary.BigEndian.Uint16(h[hdrVersionOffset:])
}

// UUID returns the raw NUL-padded ASCII UUID field.
func (h Header) UUID() []byte {
	return h[hdrUUIDOffset : hdrUUIDOffset+hdrUUIDSize]
}

// CipherName returns the raw LUKS1 cipher name field.
func (h Header) CipherName() []byte {
	return h[v1CipherNameOffset : v1CipherNameOffset+v1CipherNameSize]
}

// CipherMode returns the raw LUKS1 cipher mode field.
func (h Header) CipherMode() []byte {
	return h[v1CipherModeOffset : v1CipherModeOffset+v1CipherModeSize]
}

// HashSpec returns the raw LUKS1 hash spec field.
func (h Header) HashSpec() []byte {
	return h[v1HashSpecOffset : v1HashSpecOffset+v1HashSpecSize]
}

// KeyBytes returns the LUKS1 master key length in bytes.
func (h Header) KeyBytes() uint32 {
	return binary.BigEndian.Uint32(h[v1KeyBytesOffset:])
}

// ActiveKeySlots returns the indices of LUKS1 key slots marked active.
func (h Header) ActiveKeySlots() []int {
	var active []int

	for i := 0; i < v1KeySlotCount; i++ {
		marker := binary.BigEndian.Uint32(h[v1KeySlotsOffset+i*v1KeySlotSize:])
		if marker == v1KeyEnabled {
			active = append(active, i)
		}
	}

	return active
}

// HdrSize returns the LUKS2 binary header size in bytes.
func (h Header) HdrSize() uint64 {
	return binary.BigEndian.Uint64(h[v2HdrSizeOffset:])
}

// SeqID returns the LUKS2 header sequence number.
func (h Header) SeqID() uint64 {
	return binary.BigEndian.Uint64(h[v2SeqIDOffset:])
}

// Label returns the raw LUKS2 NUL-padded label field.
func (h Header) Label() []byte {
	return h[v2LabelOffset : v2LabelOffset+v2LabelSize]
}

// ChecksumAlg returns the raw LUKS2 checksum algorithm field.
func (h Header) ChecksumAlg() []byte {
	return h[v2ChecksumAlgOffset : v2ChecksumAlgOffset+v2ChecksumAlgSize]
}

// Subsystem returns the raw LUKS2 subsystem field.
func (h Header) Subsystem() []byte {
	return h[v2SubsystemOffset : v2SubsystemOffset+v2SubsystemSize]
}
