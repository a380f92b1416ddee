// Copyright (c) 2026 The ordmap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultDelimiter = ","
)

// config defines the configuration options for pairindex.
//
// See loadConfig for details on the configuration load process.
type config struct {
	InFile    string `short:"f" long:"file" description:"CSV file with one left,right association per line"`
	Delimiter string `short:"d" long:"delimiter" description:"Field delimiter used in the input file"`
	Reverse   bool   `short:"r" long:"reverse" description:"Resolve queries from the right side to the left side"`
	List      bool   `short:"l" long:"list" description:"List every association in order before resolving queries"`
	Verbose   bool   `short:"v" long:"verbose" description:"Log skipped lines and load statistics"`
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, []string, error) {
	// Default config.
	cfg := config{
		Delimiter: defaultDelimiter,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] [QUERY...]"
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	if cfg.InFile == "" {
		err := errors.New("the --file option must specify an input file")
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}
	if len(cfg.Delimiter) != 1 {
		err := errors.New("the --delimiter option must be a single " +
			"character")
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}
