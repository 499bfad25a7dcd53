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
	"runtime/debug"
	"strconv"
	"strings"
)

// Line is a physical source line as seen by diagnostics.
type Line struct {
	Source string
	Quiet  bool // the line ends in a //jslint-quiet directive
}

// Warning is a single diagnostic.
type Warning struct {
	Code             Code   `json:"code"`
	Line             int    `json:"line"`
	Column           int    `json:"column"`
	A                string `json:"a,omitempty"`
	B                string `json:"b,omitempty"`
	C                string `json:"c,omitempty"`
	D                string `json:"d,omitempty"`
	Message          string `json:"message"`
	LineSource       string `json:"line_source"`
	FormattedMessage string `json:"formatted_message"`
	StackTrace       string `json:"stack_trace,omitempty"`
	Stop             bool   `json:"mode_stop,omitempty"`
}

// Collector accumulates the warnings of one analysis.
type Collector struct {
	// Lines holds the source lines, index 0 is an empty line before the first one.
	Lines []Line

	// StackTraces records the stack of every reported warning.
	StackTraces bool

	warnings []*Warning
}

// WarnAt reports a diagnostic at a 1-based line and column. A column of 0 is
// reported as 1. Warnings on quiet lines are returned but not recorded.
func (c *Collector) WarnAt(code Code, line, column int, args ...string) *Warning {
	if column == 0 {
		column = 1
	}

	w := &Warning{Code: code, Line: line, Column: column}

	for i, arg := range args {
		switch i {
		case 0:
			w.A = arg
		case 1:
			w.B = arg
		case 2:
			w.C = arg
		case 3:
			w.D = arg
		}
	}

	w.Message = supplant(code.Template(), w)

	quiet := false
	if line >= 0 && line < len(c.Lines) {
		w.LineSource = c.Lines[line].Source
		quiet = c.Lines[line].Quiet
	}

	if c.StackTraces {
		w.StackTrace = string(debug.Stack())
	}

	if quiet {
		return w
	}

	c.warnings = append(c.warnings, w)

	return w
}

// Add records a warning that was not created by [Collector.WarnAt].
func (c *Collector) Add(w *Warning) {
	c.warnings = append(c.warnings, w)
}

// Len returns the number of recorded warnings.
func (c *Collector) Len() int {
	return len(c.warnings)
}

// Warnings returns the recorded warnings.
func (c *Collector) Warnings() []*Warning {
	return c.warnings
}

func supplant(template string, w *Warning) string {
	if !strings.Contains(template, "{") {
		return template
	}

	return strings.NewReplacer("{a}", w.A, "{b}", w.B, "{c}", w.C, "{d}", w.D).Replace(template)
}

// Itoa formats line and column numbers for message slots.
func Itoa(i int) string {
	return strconv.Itoa(i)
}
