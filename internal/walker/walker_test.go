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

package walker_test

import (
	"errors"
	"slices"
	"testing"

	"fillmore-labs.com/jslint/internal/config"
	"fillmore-labs.com/jslint/internal/lexer"
	"fillmore-labs.com/jslint/internal/parser"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/session"
	"fillmore-labs.com/jslint/internal/testsource"
	. "fillmore-labs.com/jslint/internal/walker"
)

func walk(t *testing.T, source string, options config.Options) (*session.Session, error) {
	t.Helper()

	s := testsource.Session(source, options)
	if err := lexer.Lex(t.Context(), s); err != nil {
		t.Fatalf("Unexpected lexer error: %v", err)
	}

	if err := parser.Parse(t.Context(), s); err != nil {
		t.Fatalf("Unexpected parser error: %v", err)
	}

	return s, Walk(t.Context(), s)
}

func TestWalkDiagnostics(t *testing.T) {
	t.Parallel()

	for _, tt := range testsource.Load(t, "testdata/*.txtar") {
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			s, err := walk(t, tt.Source, tt.Options)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			warnings := slices.Clone(s.Warnings())
			report.Sort(warnings)

			testsource.Compare(t, tt, warnings)
		})
	}
}

func TestWalkBindings(t *testing.T) {
	t.Parallel()

	s, err := walk(t, "function aa(bb) {\n    return function () {\n        return bb;\n    };\n}", config.Options{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := len(s.Functions); got != 2 {
		t.Fatalf("Got %d functions, expected 2", got)
	}

	outer, inner := s.Functions[0], s.Functions[1]

	param, ok := outer.Context["bb"]
	if !ok {
		t.Fatal("Expected parameter bb")
	}

	if param.Used != 1 || !param.Init || param.Dead {
		t.Errorf("Got parameter %+v, expected used once and initialized", *param)
	}

	if closure := inner.Context["bb"]; closure != param || !param.Closure {
		t.Errorf("Got closure %p, expected the parameter %p marked as closure", closure, param)
	}
}

func TestWalkGlobals(t *testing.T) {
	t.Parallel()

	s, err := walk(t, "let aa = Math.floor(1.5);", config.Options{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	b, ok := s.Global.Context["Math"]
	if !ok {
		t.Fatal("Expected predeclared Math in the global context")
	}

	if b.Writable || !b.Init || b.Used != 1 {
		t.Errorf("Got %+v, expected a read-only initialized global used once", *b)
	}
}

func TestWalkInternalError(t *testing.T) {
	t.Parallel()

	_, err := walk(t, "let aa = 0;", config.NewBitMask(config.TestInternalError))

	var internal *report.InternalError
	if !errors.As(err, &internal) {
		t.Fatalf("Got %v, expected an internal error", err)
	}
}

func TestWalkJSON(t *testing.T) {
	t.Parallel()

	s, err := walk(t, `{"aa": 1}`, config.Options{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := s.Len(); got != 0 {
		t.Errorf("Got %d warnings, expected none", got)
	}
}
