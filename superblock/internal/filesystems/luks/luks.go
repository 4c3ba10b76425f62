// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package luks probes LUKS encrypted container headers.
//
// Only the plaintext header is ever read; the filesystem inside the container
// is inaccessible without the passphrase and is never interpreted here.
package luks

import (
	"bytes"

	"github.com/google/uuid"
	"github.com/siderolabs/go-pointer"

	"github.com/serpent-os/go-superblock/superblock/internal/magic"
	"github.com/serpent-os/go-superblock/superblock/internal/probe"
	"github.com/serpent-os/go-superblock/superblock/internal/utils"
)

var luksMagic = magic.Magic{
	Offset: 0,
	Value:  []byte("LUKS\xba\xbe"),
}

// Probe for the container.
type Probe struct{}

// Magic returns the magic value for the container.
func (p *Probe) Magic() []*magic.Magic {
	return []*magic.Magic{&luksMagic}
}

// Name returns the name of the container format.
func (p *Probe) Name() string {
	return "luks"
}

// Probe runs the further inspection and returns the result if successful.
func (p *Probe) Probe(r probe.Reader) (*probe.Result, error) {
	// v1 header size covers every field we need from either version
	buf := make([]byte, v1HeaderSize)

	if err := utils.ReadFullAt(r, buf, 0); err != nil {
		return nil, err
	}

	hdr := Header(buf)

	switch hdr.Version() {
	case 1:
		return probeV1(hdr)
	case 2:
		return probeV2(hdr)
	default:
		return nil, nil //nolint:nilnil
	}
}

// parseUUID validates the NUL-padded ASCII UUID field.
//
// LUKS stores the UUID as text, not as raw bytes; a malformed string means a
// corrupt header and the prober declines.
func parseUUID(field []byte) *uuid.UUID {
	idx := bytes.IndexByte(field, 0)
	if idx == -1 {
		idx = len(field)
	}

	parsed, err := uuid.ParseBytes(field[:idx])
	if err != nil {
		return nil
	}

	return pointer.To(parsed)
}

func probeV1(hdr Header) (*probe.Result, error) {
	hdrUUID := parseUUID(hdr.UUID())
	if hdrUUID == nil {
		return nil, nil //nolint:nilnil
	}

	container := &probe.ContainerMetadata{
		Version:        1,
		KeyBytes:       hdr.KeyBytes(),
		ActiveKeySlots: hdr.ActiveKeySlots(),
	}

	if cipher := utils.NulPaddedLabel(hdr.CipherName()); cipher != nil {
		container.Cipher = *cipher
	}

	if mode := utils.NulPaddedLabel(hdr.CipherMode()); mode != nil {
		container.CipherMode = *mode
	}

	if hash := utils.NulPaddedLabel(hdr.HashSpec()); hash != nil {
		container.Hash = *hash
	}

	return &probe.Result{
		UUID:      hdrUUID,
		Container: container,
	}, nil
}

func probeV2(hdr Header) (*probe.Result, error) {
	hdrUUID := parseUUID(hdr.UUID())
	if hdrUUID == nil {
		return nil, nil //nolint:nilnil
	}

	container := &probe.ContainerMetadata{
		Version:    2,
		HeaderSize: hdr.HdrSize(),
		SeqID:      hdr.SeqID(),
	}

	if hash := utils.NulPaddedLabel(hdr.ChecksumAlg()); hash != nil {
		container.Hash = *hash
	}

	if subsystem := utils.NulPaddedLabel(hdr.Subsystem()); subsystem != nil {
		container.Subsystem = *subsystem
	}

	return &probe.Result{
		UUID:      hdrUUID,
		Label:     utils.NulPaddedLabel(hdr.Label()),
		Container: container,
	}, nil
}
