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

package parser_test

import (
	"errors"
	"slices"
	"testing"

	"fillmore-labs.com/jslint/internal/config"
	"fillmore-labs.com/jslint/internal/lexer"
	. "fillmore-labs.com/jslint/internal/parser"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/session"
	"fillmore-labs.com/jslint/internal/syntax"
	"fillmore-labs.com/jslint/internal/testsource"
)

func parse(t *testing.T, source string, options config.Options) (*session.Session, error) {
	t.Helper()

	s := testsource.Session(source, options)
	if err := lexer.Lex(t.Context(), s); err != nil {
		t.Fatalf("Unexpected lexer error: %v", err)
	}

	return s, Parse(t.Context(), s)
}

func TestParseDiagnostics(t *testing.T) {
	t.Parallel()

	for _, tt := range testsource.Load(t, "testdata/*.txtar") {
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			s, err := parse(t, tt.Source, tt.Options)
			if err != nil && !errors.Is(err, report.ErrStop) {
				t.Fatalf("Unexpected error: %v", err)
			}

			warnings := slices.Clone(s.Warnings())
			report.Sort(warnings)

			testsource.Compare(t, tt, warnings)
		})
	}
}

func TestParseStop(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name   string
		source string
		want   report.Code
	}{
		{"with", "with (aa) {}", report.UnexpectedA},
		{"for head", "for (;;) {}", report.ExpectedAB},
		{"delete", "delete aa;", report.ExpectedAB},
		{"unclosed", "aa(", report.UnexpectedA},
		{"json", "[undefined]", report.UnexpectedA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parse(t, tt.source, config.NewBitMask(config.For))

			var stop *report.StopError
			if !errors.As(err, &stop) {
				t.Fatalf("Got %v, expected a stop error", err)
			}

			if got := stop.Warning.Code; got != tt.want {
				t.Errorf("Got %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestParseDuplicateCase(t *testing.T) {
	t.Parallel()

	s, err := parse(t, "switch(x){case 1: break; case 1: break;}", config.Options{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, w := range s.Warnings() {
		if w.Code == report.UnexpectedA && w.Line == 1 && w.Column == 31 {
			if w.A != "1" {
				t.Errorf("Got %q, expected the duplicate label %q", w.A, "1")
			}

			return
		}
	}

	t.Errorf("Got %v, expected the second case flagged at 1:31", testsource.Codes(s.Warnings()))
}

func TestParseTree(t *testing.T) {
	t.Parallel()

	s, err := parse(t, "let aa = bb(1, 2);\nif (aa) {\n    cc();\n} else {\n    dd();\n}", config.Options{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := len(s.Root); got != 2 {
		t.Fatalf("Got %d statements, expected 2", got)
	}

	decl := s.Token(s.Root[0])
	if decl.ID != syntax.Let || decl.Arity != syntax.ArityStatement || len(decl.Names) != 1 {
		t.Fatalf("Got %v %v with %d names for the declaration", decl.ID, decl.Arity, len(decl.Names))
	}

	aa := s.Token(decl.Names[0])
	if aa.Binding == nil || !aa.Binding.Init || aa.Binding.Parent != s.Global {
		t.Errorf("Got binding %+v, expected an initialized global", aa.Binding)
	}

	call := s.Token(aa.Expr[0])
	if call.ID != syntax.LParen || len(call.Expr) != 3 {
		t.Errorf("Got %v with %d operands, expected a call with callee and two arguments", call.ID, len(call.Expr))
	}

	cond := s.Token(s.Root[1])
	if len(cond.Block) != 1 || len(cond.Else) != 1 {
		t.Fatalf("Got %d blocks and %d alternatives", len(cond.Block), len(cond.Else))
	}

	if then := s.Token(cond.Block[0]); then.ID != syntax.LBrace || len(then.Block) != 1 {
		t.Errorf("Got %v with %d statements, expected a block with one statement", then.ID, len(then.Block))
	}
}

func TestParseFunctions(t *testing.T) {
	t.Parallel()

	s, err := parse(t, "function aa(bb, cc) {\n    return (dd) => bb + cc + dd;\n}", config.Options{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := len(s.Functions); got != 2 {
		t.Fatalf("Got %d functions, expected 2", got)
	}

	aa, arrow := s.Functions[0], s.Functions[1]

	if got := aa.DisplayName(&s.Tree); got != "aa" {
		t.Errorf("Got name %q, expected %q", got, "aa")
	}

	if got := len(aa.Parameters); got != 2 {
		t.Errorf("Got %d parameters, expected 2", got)
	}

	for _, name := range [...]string{"bb", "cc"} {
		if b, ok := aa.Context[name]; !ok || b.Role != syntax.RoleParameter {
			t.Errorf("Expected parameter %q in the function context", name)
		}
	}

	if b, ok := s.Global.Context["aa"]; !ok || b.Calls == nil {
		t.Error("Expected function statement aa in the global context")
	}

	if arrow.Anon != "=>" || arrow.Level != aa.Level+1 {
		t.Errorf("Got arrow %q at level %d", arrow.Anon, arrow.Level)
	}

	if _, ok := arrow.Context["dd"]; !ok {
		t.Error("Expected parameter dd in the arrow context")
	}
}

func TestParseModule(t *testing.T) {
	t.Parallel()

	s, err := parse(t, "import aa from \"aa\";\nimport {bb, cc} from \"dd\";\nexport default Object.freeze(aa);", config.Options{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !s.Module {
		t.Error("Expected module mode")
	}

	if want := []string{"aa", "dd"}; !slices.Equal(s.Froms, want) {
		t.Errorf("Got imports %q, expected %q", s.Froms, want)
	}

	if _, ok := s.Exports["default"]; !ok {
		t.Error("Expected a default export")
	}

	braced := s.Token(s.Root[1])
	if braced.Names == nil || len(braced.Names) != 2 {
		t.Errorf("Got %d imported names, expected 2", len(braced.Names))
	}
}

func TestParseJSON(t *testing.T) {
	t.Parallel()

	s, err := parse(t, `{"aa": [1, 2], "bb": -3}`, config.Options{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !s.JSON || len(s.Root) != 1 {
		t.Fatalf("Got JSON %t with %d roots", s.JSON, len(s.Root))
	}

	object := s.Token(s.Root[0])
	if got := len(object.Expr); got != 2 {
		t.Fatalf("Got %d members, expected 2", got)
	}

	if label := s.Token(s.Token(object.Expr[0]).Label); label.Value != "aa" {
		t.Errorf("Got label %q, expected %q", label.Value, "aa")
	}

	if negative := s.Token(object.Expr[1]); negative.ID != syntax.Sub || negative.Arity != syntax.ArityUnary {
		t.Errorf("Got %v %v, expected a negative number", negative.ID, negative.Arity)
	}
}
