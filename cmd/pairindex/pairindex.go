// Copyright (c) 2026 The ordmap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btclog"
	"github.com/ordmap/bimap"
)

var (
	cfg *config
	log btclog.Logger
)

// loadIndex reads the input file and builds the two-way index from it.  Each
// non-empty line holds one left,right association.  Lines that collide with
// an association already in the index are skipped and counted rather than
// treated as fatal, since the index requires both sides to stay unique.
func loadIndex() (*bimap.Bimap[string, string], error) {
	fi, err := os.Open(cfg.InFile)
	if err != nil {
		return nil, err
	}
	defer fi.Close()

	m := bimap.New[string, string]()
	var lineNum, numSkipped int
	scanner := bufio.NewScanner(fi)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		left, right, found := strings.Cut(line, cfg.Delimiter)
		if !found {
			return nil, fmt.Errorf("line %d: missing %q delimiter",
				lineNum, cfg.Delimiter)
		}

		if m.Insert(left, right) == m.EndLeft() {
			numSkipped++
			log.Debugf("Line %d: skipping (%q, %q) - one side "+
				"is already mapped", lineNum, left, right)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	log.Infof("Loaded %d associations from %s (%d skipped)", m.Len(),
		cfg.InFile, numSkipped)
	return m, nil
}

// listIndex prints every association in order.  The listing follows the query
// direction: left order normally, right order with --reverse.
func listIndex(m *bimap.Bimap[string, string]) {
	if cfg.Reverse {
		for r, l := range m.AllRight() {
			fmt.Printf("%s%s%s\n", r, cfg.Delimiter, l)
		}
		return
	}
	for l, r := range m.AllLeft() {
		fmt.Printf("%s%s%s\n", l, cfg.Delimiter, r)
	}
}

// resolve answers a single query in the configured direction and reports
// whether it was found.
func resolve(m *bimap.Bimap[string, string], query string) bool {
	var paired string
	var err error
	if cfg.Reverse {
		paired, err = m.AtRight(query)
	} else {
		paired, err = m.AtLeft(query)
	}
	if err != nil {
		log.Warnf("No association for %q", query)
		return false
	}
	fmt.Printf("%s%s%s\n", query, cfg.Delimiter, paired)
	return true
}

// realMain is the real main function for the utility.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func realMain() error {
	// Load configuration and parse command line.
	tcfg, remainingArgs, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg

	// Setup logging.
	backendLogger := btclog.NewBackend(os.Stderr)
	defer os.Stderr.Sync()
	log = backendLogger.Logger("MAIN")
	if cfg.Verbose {
		log.SetLevel(btclog.LevelDebug)
	}

	// Load the index.
	m, err := loadIndex()
	if err != nil {
		log.Errorf("Failed to load index: %v", err)
		return err
	}

	if cfg.List {
		listIndex(m)
	}

	// Resolve the queries, failing the run when any of them misses.
	var numMissed int
	for _, query := range remainingArgs {
		if !resolve(m, query) {
			numMissed++
		}
	}
	if numMissed > 0 {
		return fmt.Errorf("%d of %d queries had no association",
			numMissed, len(remainingArgs))
	}
	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
