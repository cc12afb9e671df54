// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// contigstats calculates and prints assembly statistics from a
// multi-FASTA contig file (default stdin): the number of contigs,
// Min, Max, Mean, N50, L50 and assembly size (total length of all
// contigs). Subcommands write a contig length table, a length
// histogram and box plot, and the coverage of an expected genome size.
package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	logger := log.New(os.Stderr)
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("contigstats failed", "err", err)
		os.Exit(1)
	}
}
