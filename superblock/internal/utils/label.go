// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package utils

import (
	"bytes"
	"strings"

	"github.com/siderolabs/go-pointer"
	"golang.org/x/text/encoding/unicode"
)

// NulPaddedLabel decodes a fixed-width NUL-padded label field.
//
// Decoding stops at the first NUL byte or the field width, whichever comes
// first. Returns nil for empty/all-padding fields. Invalid UTF-8 sequences are
// replaced, never passed through.
func NulPaddedLabel(field []byte) *string {
	if len(field) == 0 || field[0] == 0 {
		return nil
	}

	idx := bytes.IndexByte(field, 0)
	if idx == -1 {
		idx = len(field)
	}

	return pointer.To(strings.ToValidUTF8(string(field[:idx]), "�"))
}

// UTF16Label decodes a fixed-width label field encoded as UTF-16LE code units.
//
// Decoding stops at the first zero code unit. Returns nil for empty fields.
func UTF16Label(field []byte) *string {
	end := len(field) &^ 1

	for i := 0; i < end; i += 2 {
		if field[i] == 0 && field[i+1] == 0 {
			end = i

			break
		}
	}

	if end == 0 {
		return nil
	}

	decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(field[:end])
	if err != nil {
		return nil
	}

	return pointer.To(string(decoded))
}
