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

// Package testsource provides utilities for loading JavaScript fixtures in tests.
//
// Fixtures are txtar archives. Each case consists of a "<name>.js" source file,
// an optional "<name>.want" file listing the expected diagnostics one per line
// as "code line:column" and an optional "<name>.options" file with space
// separated option names.
package testsource

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"fillmore-labs.com/jslint/internal/config"
	"fillmore-labs.com/jslint/internal/lexer"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/session"
)

// Case is a single fixture.
type Case struct {
	Name    string
	Source  string
	Options config.Options
	Want    []string
}

// Load reads all cases from the txtar archives matching pattern.
func Load(tb testing.TB, pattern string) []Case {
	tb.Helper()

	files, err := filepath.Glob(pattern)
	if err != nil {
		tb.Fatalf("Invalid pattern %q: %v", pattern, err)
	}

	var cases []Case

	for _, file := range files {
		archive, err := txtar.ParseFile(file)
		if err != nil {
			tb.Fatalf("Can't read %s: %v", file, err)
		}

		base := strings.TrimSuffix(filepath.Base(file), ".txtar")
		cases = append(cases, parseArchive(tb, base, archive)...)
	}

	if len(cases) == 0 {
		tb.Fatalf("No cases in %q", pattern)
	}

	return cases
}

func parseArchive(tb testing.TB, base string, archive *txtar.Archive) []Case {
	tb.Helper()

	index := make(map[string]int)

	var cases []Case

	for _, f := range archive.Files {
		ext := filepath.Ext(f.Name)
		name := strings.TrimSuffix(f.Name, ext)
		data := string(f.Data)

		i, ok := index[name]
		if !ok {
			i = len(cases)
			index[name] = i
			cases = append(cases, Case{Name: base + "/" + name})
		}

		c := &cases[i]

		switch ext {
		case ".js":
			c.Source = strings.TrimSuffix(data, "\n")

		case ".want":
			for line := range strings.Lines(data) {
				if line = strings.TrimSpace(line); line != "" {
					c.Want = append(c.Want, line)
				}
			}

		case ".options":
			for _, name := range strings.Fields(data) {
				o, ok := config.ParseOption(name)
				if !ok {
					tb.Fatalf("Unknown option %q in %s", name, c.Name)
				}

				c.Options.Enable(o)
			}

		default:
			tb.Fatalf("Unexpected file %q in %s", f.Name, base)
		}
	}

	return cases
}

// Session creates an analysis session over source.
func Session(source string, options config.Options) *session.Session {
	s := session.New(options, nil)
	s.SetLines(lexer.SplitLines(source))

	return s
}

// Codes renders warnings as "code line:column" lines.
func Codes(warnings []*report.Warning) []string {
	codes := make([]string, 0, len(warnings))
	for _, w := range warnings {
		codes = append(codes, fmt.Sprintf("%s %d:%d", w.Code, w.Line, w.Column))
	}

	return codes
}

// Compare checks the diagnostics of a case.
func Compare(tb testing.TB, c Case, warnings []*report.Warning) {
	tb.Helper()

	got := Codes(warnings)
	if !slices.Equal(got, c.Want) {
		tb.Errorf("Got diagnostics\n\t%s\nexpected\n\t%s", strings.Join(got, "\n\t"), strings.Join(c.Want, "\n\t"))
	}
}
