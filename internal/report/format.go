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

package report

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Sort orders warnings stop-first, then by line and column, and fills in
// their plain formatted messages.
func Sort(warnings []*Warning) {
	slices.SortStableFunc(warnings, func(a, b *Warning) int {
		if a.Stop != b.Stop {
			if a.Stop {
				return -1
			}

			return 1
		}

		return cmp.Or(cmp.Compare(a.Line, b.Line), cmp.Compare(a.Column, b.Column))
	})

	for i, w := range warnings {
		w.FormattedMessage = Format(i, w)
	}
}

// Styles decorates the parts of a formatted warning. Nil fields leave the
// part unchanged.
type Styles struct {
	Message  func(string) string
	Location func(string) string
}

func decorate(fn func(string) string, s string) string {
	if fn == nil {
		return s
	}

	return fn(s)
}

// Format renders the i-th warning for display.
func Format(i int, w *Warning) string {
	return Styles{}.Format(i, w)
}

// Format renders the i-th warning for display, decorating its message and
// location.
func (st Styles) Format(i int, w *Warning) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%3d ", i+1)
	b.WriteString(decorate(st.Message, w.Message))
	b.WriteByte(' ')
	b.WriteString(decorate(st.Location, fmt.Sprintf("// line %d, column %d", w.Line, w.Column)))
	b.WriteByte('\n')
	b.WriteString(clip("    "+strings.TrimSpace(w.LineSource), 72))
	b.WriteByte('\n')
	b.WriteString(w.StackTrace)

	return strings.TrimSpace(b.String())
}

func clip(s string, n int) string {
	runes := 0
	for i := range s {
		if runes == n {
			return s[:i]
		}
		runes++
	}

	return s
}
