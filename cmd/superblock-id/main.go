// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Command superblock-id prints the filesystem type, UUID and label of the
// block devices or disk images given on the command line.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"go.uber.org/zap"

	"github.com/serpent-os/go-superblock/superblock"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := zap.NewNop()

	if *debug {
		var err error

		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("failed to create logger: %s", err)
		}
	}

	for _, dev := range flag.Args() {
		info, err := superblock.ProbePath(dev, superblock.WithProbeLogger(logger))
		if err != nil {
			log.Fatalf("failed probing %q: %s", dev, err)
		}

		if info.Name == "" {
			fmt.Printf("%s: no known filesystem detected\n", dev)

			continue
		}

		line := []string{fmt.Sprintf("TYPE=%q", info.Name)}

		if info.UUID != nil {
			line = append(line, fmt.Sprintf("UUID=%q", info.UUID))
		}

		if info.Label != nil {
			line = append(line, fmt.Sprintf("LABEL=%q", *info.Label))
		}

		if info.Container != nil {
			line = append(line, fmt.Sprintf("VERSION=%d", info.Container.Version))
		}

		fmt.Printf("%s: %s\n", dev, strings.Join(line, " "))
	}
}
