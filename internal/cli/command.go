// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package cli implements the jslint command.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"fillmore-labs.com/jslint/analyzer"
	"fillmore-labs.com/jslint/internal/config"
	"fillmore-labs.com/jslint/internal/level"
)

// ErrDiagnostics is returned when any linted file has diagnostics.
var ErrDiagnostics = errors.New("diagnostics reported")

// Exit statuses of the command.
const (
	ExitOK          = 0
	ExitDiagnostics = 1
	ExitError       = 2
)

type commandOptions struct {
	json    bool
	watch   bool
	verbose bool
	workers int
	color   level.Color
	config  string
}

// NewCommand creates the jslint root command writing results to stdout and
// diagnostics to stderr.
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	var o commandOptions

	// proto only carries the option flags, linters are created per root.
	proto := analyzer.New()

	cmd := &cobra.Command{
		Use:   "jslint [flags] [path ...]",
		Short: "Lint JavaScript, JSON and embedded scripts",
		Long: `jslint checks ECMAScript and JSON files for problems and style violations.

Directories are searched recursively for .html, .js, .json, .md, .mjs and .sh
files. Scripts embedded in HTML, Markdown and shell files are linted in place.
Options are read from the nearest .jslint.yaml and can be overridden by flags.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.workers < 1 {
				return fmt.Errorf("invalid number of workers: %d", o.workers)
			}

			if len(args) == 0 {
				args = []string{"."}
			}

			r := &runner{
				opts:    o,
				stdout:  stdout,
				stderr:  stderr,
				log:     newLogger(stderr, o.verbose),
				flagged: changedOptions(cmd, &proto.Flags),
			}

			if o.verbose {
				slog.SetDefault(r.log)
			}

			return r.run(cmd.Context(), args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&o.json, "json", false, "print results as JSON to stdout")
	flags.BoolVar(&o.watch, "watch", false, "re-lint files when they change")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log debug information")
	flags.IntVar(&o.workers, "workers", runtime.GOMAXPROCS(0), "number of files linted in parallel")
	flags.Var(&o.color, "color", "color diagnostics: auto, always or never")
	flags.StringVar(&o.config, "config", "", "configuration `file` (default: nearest "+".jslint.yaml)")
	flags.AddGoFlagSet(&proto.Flags)

	return cmd
}

// changedOptions returns the linter options set on the command line.
func changedOptions(cmd *cobra.Command, fs *flag.FlagSet) []analyzer.Option {
	var opts []analyzer.Option

	for _, o := range config.AllOptions {
		name := o.String()
		if !cmd.Flags().Changed(name) {
			continue
		}

		getter, ok := fs.Lookup(name).Value.(flag.Getter)
		if !ok {
			continue
		}

		value, _ := getter.Get().(bool)
		if opt, err := analyzer.ParseOption(name, value); err == nil {
			opts = append(opts, opt)
		}
	}

	if cmd.Flags().Changed("global") {
		if globals := fs.Lookup("global").Value.String(); globals != "" {
			opts = append(opts, analyzer.WithGlobals(strings.Split(globals, ",")...))
		}
	}

	return opts
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	lvl := slog.LevelWarn
	if verbose {
		lvl = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// Main runs the command with args and returns the process exit status.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewCommand(stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	switch err := cmd.ExecuteContext(ctx); {
	case err == nil:
		return ExitOK

	case errors.Is(err, ErrDiagnostics):
		return ExitDiagnostics

	default:
		fmt.Fprintf(stderr, "jslint: %v\n", err)

		return ExitError
	}
}
