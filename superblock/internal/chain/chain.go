// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package chain provides the ordered registry of superblock probers.
package chain

import (
	"github.com/serpent-os/go-superblock/superblock/internal/filesystems/btrfs"
	"github.com/serpent-os/go-superblock/superblock/internal/filesystems/ext"
	"github.com/serpent-os/go-superblock/superblock/internal/filesystems/f2fs"
	"github.com/serpent-os/go-superblock/superblock/internal/filesystems/luks"
	"github.com/serpent-os/go-superblock/superblock/internal/filesystems/xfs"
	"github.com/serpent-os/go-superblock/superblock/internal/probe"
)

// Chain is a list of probers.
type Chain []probe.Prober

// MaxMagicSize returns the maximum size of the magic value in the chain.
func (chain Chain) MaxMagicSize() int {
	max := 0

	for _, prober := range chain {
		for _, magic := range prober.Magic() {
			if size := magic.BlockSize(); size >= max {
				max = size
			}
		}
	}

	return max
}

// MagicMatches returns the probers whose magic value is found in the buffer.
//
// Each prober appears at most once, in chain order.
func (chain Chain) MagicMatches(buf []byte) []probe.Prober {
	var matches []probe.Prober

	for _, prober := range chain {
		for _, magic := range prober.Magic() {
			if magic.Matches(buf) {
				matches = append(matches, prober)

				break
			}
		}
	}

	return matches
}

// Default returns the list of probers for the supported filesystems and
// containers.
//
// LUKS is checked first: the filesystem inside a LUKS container is encrypted
// and must never be misread as plaintext.
func Default() Chain {
	return Chain{
		&luks.Probe{},
		&xfs.Probe{},
		&ext.Probe{},
		&btrfs.Probe{},
		&f2fs.Probe{},
	}
}
