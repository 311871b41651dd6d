// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements error.
func (e *ExitError) Error() string {
	return e.Message
}

// flags are the parsed command-line options. Empty strings and negative
// numbers mean "use the configuration file".
type flags struct {
	config      string
	algo        string
	input       string
	pacingMs    int
	animateOnly bool
	race        bool
	serve       string
	logLevel    string
	logFormat   string
	list        bool
}

// parse processes args. It returns shouldExit=true after -h.
func parse(args []string, output io.Writer) (*flags, bool, error) {
	fs := flag.NewFlagSet("dsaviz", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
dsaviz - animated data structure and algorithm runs.

Usage:
  dsaviz -list
  dsaviz -algo ID [-input FILE] [options]   print steps as JSON lines
  dsaviz -race [-input FILE] [options]      race the four sorts
  dsaviz -serve ADDR [options]              serve the WebSocket bridge

Options:
`)
		fs.PrintDefaults()
	}

	f := &flags{}
	fs.StringVar(&f.config, "config", "", "Path to a YAML configuration file.")
	fs.StringVar(&f.algo, "algo", "", "Algorithm id to run (see -list).")
	fs.StringVar(&f.input, "input", "", "YAML input document for -algo or -race; '-' reads stdin.")
	fs.IntVar(&f.pacingMs, "pacing", -1, "Delay between steps in milliseconds. Negative uses the config.")
	fs.BoolVar(&f.animateOnly, "animate-only", false, "Animate a precomputed result instead of searching.")
	fs.BoolVar(&f.race, "race", false, "Race bubble, insertion, merge and quick sort on one array.")
	fs.StringVar(&f.serve, "serve", "", "Serve the run bridge on this address (e.g. :8080); 'config' uses server.addr.")
	fs.StringVar(&f.logLevel, "log-level", "", "Logging level: debug, info, warn or error.")
	fs.StringVar(&f.logFormat, "log-format", "", "Log output format: text or json.")
	fs.BoolVar(&f.list, "list", false, "List algorithm ids and exit.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: "unexpected arguments: " + strings.Join(fs.Args(), " ")}
	}
	if !f.list && f.algo == "" && !f.race && f.serve == "" {
		fs.Usage()
		return nil, true, nil
	}
	if f.algo != "" && f.race {
		return nil, false, &ExitError{Code: 2, Message: "-algo and -race are mutually exclusive"}
	}

	return f, false, nil
}
