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

package report_test

import (
	"errors"
	"strings"
	"testing"

	. "fillmore-labs.com/jslint/internal/report"
)

func TestWarnAt(t *testing.T) {
	t.Parallel()

	c := Collector{Lines: []Line{{}, {Source: "  let aa = 1;"}, {Source: "bb; //jslint-quiet", Quiet: true}}}

	w := c.WarnAt(ExpectedAAtBC, 1, 3, "let", "1", "3")
	if got, want := w.Message, "Expected 'let' at column 1, not column 3."; got != want {
		t.Errorf("Got message %q, expected %q", got, want)
	}

	if w.LineSource != "  let aa = 1;" {
		t.Errorf("Got line source %q", w.LineSource)
	}

	if q := c.WarnAt(UnexpectedA, 2, 0, "bb"); q.Column != 1 {
		t.Errorf("Got column %d, expected 1", q.Column)
	}

	if got := c.Len(); got != 1 {
		t.Errorf("Got %d warnings, expected the quiet one to be dropped", got)
	}
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	for c := range NumCodes {
		if c.Template() == "" {
			t.Errorf("Missing message for %v", c)
		}

		if got, ok := ParseCode(c.String()); !ok || got != c {
			t.Errorf("Got %v, %t for %q", got, ok, c.String())
		}
	}

	if got, want := ExpectedFourDigits.Template(), `Expected four digits after '\u'.`; got != want {
		t.Errorf("Got %q, expected %q", got, want)
	}

	if got, want := NumberIsNaN.String(), "number_isNaN"; got != want {
		t.Errorf("Got %q, expected %q", got, want)
	}
}

func TestSort(t *testing.T) {
	t.Parallel()

	warnings := []*Warning{
		{Line: 3, Column: 1, Message: "c"},
		{Line: 1, Column: 5, Message: "b"},
		{Line: 1, Column: 2, Message: "a"},
		{Line: 9, Column: 9, Message: "stop", Stop: true},
	}

	Sort(warnings)

	var got []string
	for _, w := range warnings {
		got = append(got, w.Message)
	}

	if want := "stop a b c"; strings.Join(got, " ") != want {
		t.Errorf("Got order %q, expected %q", got, want)
	}

	if want := "  1 stop // line 9, column 9"; warnings[0].FormattedMessage != want {
		t.Errorf("Got %q, expected %q", warnings[0].FormattedMessage, want)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	w := &Warning{Message: "Unused 'aa'.", Line: 2, Column: 5, LineSource: "\tlet aa;  "}

	want := "  4 Unused 'aa'. // line 2, column 5\n    let aa;"
	if got := Format(3, w); got != want {
		t.Errorf("Got %q, expected %q", got, want)
	}

	upper := Styles{Message: strings.ToUpper, Location: func(s string) string { return "[" + s + "]" }}
	if got, want := upper.Format(3, w), "  4 UNUSED 'AA'. [// line 2, column 5]\n    let aa;"; got != want {
		t.Errorf("Got %q, expected %q", got, want)
	}

	long := &Warning{Message: "m", Line: 1, Column: 1, LineSource: strings.Repeat("é", 100)}
	lines := strings.Split(Format(0, long), "\n")
	if got := len([]rune(lines[1])); got != 72 {
		t.Errorf("Got source line of %d runes, expected 72", got)
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	var err error = &StopError{Warning: &Warning{Message: "Unclosed comment."}}
	if !errors.Is(err, ErrStop) {
		t.Errorf("Expected %v to be ErrStop", err)
	}

	err = Internalf("unexpected %s", "state")
	if !errors.Is(err, ErrInternal) || err.Error() != "Internal Error: unexpected state" {
		t.Errorf("Got %v", err)
	}

	var ie *InternalError
	if errors.As(err, &ie) {
		if w := ie.Warning(); w.Line != 1 || w.Column != 1 || w.StackTrace == "" {
			t.Errorf("Got warning %+v", w)
		}
	}
}
