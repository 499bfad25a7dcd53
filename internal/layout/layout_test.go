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

package layout_test

import (
	"errors"
	"slices"
	"testing"

	"fillmore-labs.com/jslint/internal/config"
	. "fillmore-labs.com/jslint/internal/layout"
	"fillmore-labs.com/jslint/internal/lexer"
	"fillmore-labs.com/jslint/internal/parser"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/session"
	"fillmore-labs.com/jslint/internal/testsource"
	"fillmore-labs.com/jslint/internal/walker"
)

// prepare runs the phases preceding the layout check.
func prepare(t *testing.T, source string, options config.Options) *session.Session {
	t.Helper()

	s := testsource.Session(source, options)

	for _, phase := range []struct {
		name string
		run  func(*session.Session) error
	}{
		{"lexer", func(s *session.Session) error { return lexer.Lex(t.Context(), s) }},
		{"parser", func(s *session.Session) error { return parser.Parse(t.Context(), s) }},
		{"walker", func(s *session.Session) error { return walker.Walk(t.Context(), s) }},
	} {
		if err := phase.run(s); err != nil {
			t.Fatalf("Unexpected %s error: %v", phase.name, err)
		}
	}

	return s
}

func TestVerifyDiagnostics(t *testing.T) {
	t.Parallel()

	for _, tt := range testsource.Load(t, "testdata/*.txtar") {
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			s := prepare(t, tt.Source, tt.Options)
			if n := s.Len(); n > 0 {
				t.Fatalf("Got %d diagnostics before layout check, expected none", n)
			}

			if err := Verify(t.Context(), s); err != nil && !errors.Is(err, report.ErrStop) {
				t.Fatalf("Unexpected error: %v", err)
			}

			warnings := slices.Clone(s.Warnings())
			report.Sort(warnings)

			testsource.Compare(t, tt, warnings)
		})
	}
}

func TestVerifyAfterDiagnostics(t *testing.T) {
	t.Parallel()

	s := prepare(t, "aa();\nlet bb=0;", config.Options{})
	if n := s.Len(); n != 1 {
		t.Fatalf("Got %d diagnostics, expected 1", n)
	}

	if err := Verify(t.Context(), s); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if n := s.Len(); n != 1 {
		t.Errorf("Got %d diagnostics after layout check, expected it to be skipped", n)
	}
}

func TestVerifyJSON(t *testing.T) {
	t.Parallel()

	s := prepare(t, "{\"aa\":[1,2]}", config.Options{})

	if err := Verify(t.Context(), s); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if n := s.Len(); n != 0 {
		t.Errorf("Got %d diagnostics for JSON, expected none", n)
	}
}
