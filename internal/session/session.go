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

// Package session holds the state of a single analysis.
package session

import (
	"fillmore-labs.com/jslint/internal/config"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/scope"
	"fillmore-labs.com/jslint/internal/syntax"
)

// Session owns all mutable state of one analysis. It is created per call and
// threaded through every phase.
type Session struct {
	Options config.Options
	Globals map[string]bool // predeclared globals, extended by directives

	report.Collector

	Tree  syntax.Tree
	Lexed int // number of tokens produced by the lexer, synthetic tokens follow

	Root       []syntax.Index // top level statements, or the JSON value
	Directives []syntax.Index // directive comments
	Property   map[string]int // property name census
	Tenure     map[string]bool
	Exports    map[string]syntax.Index
	Froms      []string

	Bindings  scope.Factory
	Global    *syntax.Function
	Functions []*syntax.Function

	JSON    bool
	Module  bool
	Shebang bool

	// GlobalDirective is the first /*global*/ comment, InvalidNode if none.
	GlobalDirective syntax.Index
}

// New creates a session with the given options and extra globals.
func New(options config.Options, globals []string) *Session {
	s := &Session{
		Options:         options,
		Globals:         make(map[string]bool),
		Property:        make(map[string]int),
		Exports:         make(map[string]syntax.Index),
		GlobalDirective: syntax.InvalidNode,
	}

	s.StackTraces = options.Enabled(config.Debug)

	s.AddGlobals(config.Standard...)
	s.AddGlobals(globals...)

	for o := range options.All() {
		s.AddGlobals(o.Globals()...)
	}

	s.Global = &syntax.Function{
		Token:   syntax.InvalidNode,
		Name:    syntax.InvalidNode,
		Anon:    "(global)",
		Line:    1,
		Context: make(map[string]*syntax.Binding),
	}

	return s
}

// AddGlobals predeclares global names.
func (s *Session) AddGlobals(names ...string) {
	for _, name := range names {
		s.Globals[name] = true
	}
}

// SetLines installs the source lines. Line 0 is an empty line before the
// source, so that line numbers are 1-based.
func (s *Session) SetLines(lines []string) {
	s.Lines = make([]report.Line, len(lines)+1)
	for i, src := range lines {
		s.Lines[i+1].Source = src
	}
}

// Token returns the token at index i.
func (s *Session) Token(i syntax.Index) *syntax.Token {
	return s.Tree.At(i)
}

// Enabled checks whether an option is set.
func (s *Session) Enabled(o config.Option) bool {
	return s.Options.Enabled(o)
}
