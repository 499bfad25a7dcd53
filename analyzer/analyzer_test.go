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

package analyzer_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	. "fillmore-labs.com/jslint/analyzer"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/testsource"
)

func TestLint(t *testing.T) {
	t.Parallel()

	for _, tt := range testsource.Load(t, "testdata/*.txtar") {
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			var opts Options

			for o := range tt.Options.All() {
				opt, err := ParseOption(o.String(), true)
				if err != nil {
					t.Fatalf("Can't parse option %s: %v", o, err)
				}

				opts = append(opts, opt)
			}

			res := New(opts).Lint(t.Context(), tt.Source)

			testsource.Compare(t, tt, res.Warnings)

			if got, want := res.OK, len(tt.Want) == 0; got != want {
				t.Errorf("Got ok %t, expected %t", got, want)
			}
		})
	}
}

func TestLintDeterministic(t *testing.T) {
	t.Parallel()

	const source = "let aa=0;\nfunction bb() {\n    return aa == 1;\n}\n"

	l := New(WithNode(true))

	first, second := l.Lint(t.Context(), source), l.Lint(t.Context(), source)

	if len(first.Warnings) == 0 {
		t.Fatal("Expected diagnostics")
	}

	if !reflect.DeepEqual(first.Warnings, second.Warnings) {
		t.Errorf("Got different diagnostics\n%v\nand\n%v", first.Warnings, second.Warnings)
	}
}

func TestLintStop(t *testing.T) {
	t.Parallel()

	res := New().Lint(t.Context(), "/* aa")

	if !res.Stop || res.OK {
		t.Fatalf("Got stop %t, ok %t, expected a stopped analysis", res.Stop, res.OK)
	}

	w := res.Warnings[0]
	if w.Code != report.UnclosedComment || !w.Stop {
		t.Errorf("Got %s (stop %t), expected %s first", w.Code, w.Stop, report.UnclosedComment)
	}

	if !strings.HasPrefix(w.Message, report.UnfinishedPrefix) {
		t.Errorf("Got message %q, expected prefix %q", w.Message, report.UnfinishedPrefix)
	}

	if len(res.Tree) != 0 {
		t.Errorf("Got %d statements, expected parsing to be skipped", len(res.Tree))
	}
}

func TestLintInternalError(t *testing.T) {
	t.Parallel()

	res := New(WithTestInternalError(true)).Lint(t.Context(), "let aa = 0;\n")

	if !res.Stop || res.OK {
		t.Fatalf("Got stop %t, ok %t, expected a stopped analysis", res.Stop, res.OK)
	}

	w := res.Warnings[0]
	if !strings.HasPrefix(w.Message, report.UnfinishedPrefix+"Internal Error: ") {
		t.Errorf("Got message %q, expected an internal error", w.Message)
	}

	if w.StackTrace == "" {
		t.Error("Expected a stack trace")
	}
}

func TestLintLines(t *testing.T) {
	t.Parallel()

	l := New()

	res := l.LintLines(t.Context(), []string{"let aa = 0;", "let bb = aa;"})
	if !res.OK {
		t.Errorf("Got diagnostics %v, expected none", testsource.Codes(res.Warnings))
	}

	if got := len(res.Lines); got != 2 {
		t.Errorf("Got %d lines, expected 2", got)
	}
}

func TestFlags(t *testing.T) {
	t.Parallel()

	l := New()

	if err := l.Flags.Parse([]string{"-devel", "-global=aa,bb", "-global", "cc"}); err != nil {
		t.Fatalf("Can't parse flags: %v", err)
	}

	res := l.Lint(t.Context(), "aa();\nbb();\ncc();\nconsole.log(0);\n")
	if !res.OK {
		t.Errorf("Got diagnostics %v, expected none", testsource.Codes(res.Warnings))
	}

	if got, want := res.Option, []string{"devel"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Got options %v, expected %v", got, want)
	}
}

func TestGlobals(t *testing.T) {
	t.Parallel()

	const source = "jQuery();\n"

	if res := New().Lint(t.Context(), source); res.OK {
		t.Error("Expected an undeclared global")
	}

	if res := New(WithGlobals("jQuery")).Lint(t.Context(), source); !res.OK {
		t.Errorf("Got diagnostics %v, expected none", testsource.Codes(res.Warnings))
	}
}

func TestParseOption(t *testing.T) {
	t.Parallel()

	if _, err := ParseOption("browser", true); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if _, err := ParseOption("strict", true); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("Got %v, expected %v", err, ErrUnknownOption)
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithBrowser(true), nil, Options{WithWhite(false), WithGlobals("aa")}}

	got := opts.LogValue().Group()
	if len(got) != 4 {
		t.Fatalf("Got %d attributes, expected 4", len(got))
	}

	want := []slog.Attr{slog.Bool("browser", true), slog.String("nil", "<nil>"), slog.Bool("white", false)}
	for i, a := range want {
		if !got[i].Equal(a) {
			t.Errorf("Got attribute %v, expected %v", got[i], a)
		}
	}
}

func TestResultJSON(t *testing.T) {
	t.Parallel()

	res := New(WithNode(true)).Lint(t.Context(), "import aa from \"aa\";\nexport default Object.freeze(aa);\n")

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Can't marshal result: %v", err)
	}

	var doc struct {
		OK      bool     `json:"ok"`
		Module  bool     `json:"module"`
		Froms   []string `json:"froms"`
		Exports []string `json:"exports"`
		Edition string   `json:"edition"`
		Tokens  []struct {
			ID string `json:"id"`
		} `json:"tokens"`
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Can't unmarshal result: %v", err)
	}

	if !doc.OK || !doc.Module || doc.Edition != Edition {
		t.Errorf("Got ok %t, module %t, edition %q", doc.OK, doc.Module, doc.Edition)
	}

	if !reflect.DeepEqual(doc.Froms, []string{"aa"}) || !reflect.DeepEqual(doc.Exports, []string{"default"}) {
		t.Errorf("Got froms %v and exports %v", doc.Froms, doc.Exports)
	}

	if len(doc.Tokens) == 0 || doc.Tokens[len(doc.Tokens)-1].ID != "(end)" {
		t.Errorf("Got %d tokens, expected the end token last", len(doc.Tokens))
	}
}

func TestResultFunctions(t *testing.T) {
	t.Parallel()

	res := New().Lint(t.Context(), "function aa(bb) {\n    return bb + 1;\n}\naa(0);\n")
	if !res.OK {
		t.Fatalf("Got diagnostics %v, expected none", testsource.Codes(res.Warnings))
	}

	if len(res.Functions) != 1 {
		t.Fatalf("Got %d functions, expected 1", len(res.Functions))
	}

	fn := res.Functions[0]
	if fn.Name != "aa" || fn.Kind != "function statement" || fn.Level != 1 {
		t.Errorf("Got function %q (%s) at level %d", fn.Name, fn.Kind, fn.Level)
	}

	if !reflect.DeepEqual(fn.Parameters, []string{"bb"}) {
		t.Errorf("Got parameters %v, expected [bb]", fn.Parameters)
	}

	if got, want := fn.Context["bb"], (Binding{Role: "parameter", Line: 1, Used: 1, Init: true, Writable: true}); got != want {
		t.Errorf("Got binding %+v, expected %+v", got, want)
	}

	if got := res.Global.Context["aa"]; got.Role != "function" || got.Used != 1 {
		t.Errorf("Got global binding %+v, expected the used function", got)
	}

	if res.Global.Kind != "global" {
		t.Errorf("Got global kind %q", res.Global.Kind)
	}
}
