// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// GlobalOptions are the flags accepted before the subcommand.
type GlobalOptions struct {
	Server   string
	LogLevel string
	Help     bool
}

// ParseGlobalFlags parses the flags that precede the subcommand and returns
// the subcommand with its own arguments. args must not include the program
// name.
//
// Flags:
//
//	-s, --server      server base URL (overrides ADAPTER_ADDRESS)
//	    --log-level   zerolog level name for diagnostics on stderr
//	-h, --help        print usage
func ParseGlobalFlags(args []string) (GlobalOptions, []string, error) {
	var opts GlobalOptions

	flagSet := newFlagSet("todo-client")
	flagSet.SetInterspersed(false)
	flagSet.StringVarP(&opts.Server, "server", "s", "", "Server base URL, e.g. http://localhost:8080")
	flagSet.StringVar(&opts.LogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flagSet.BoolVarP(&opts.Help, "help", "h", false, "Show help")

	if err := flagSet.Parse(args); err != nil {
		return GlobalOptions{}, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return opts, flagSet.Args(), nil
}

// newFlagSet returns a quiet FlagSet: errors are returned, not printed.
func newFlagSet(name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.Usage = func() {}
	flagSet.SetOutput(io.Discard)
	return flagSet
}
