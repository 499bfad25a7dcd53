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

// Package walker resolves identifiers to their bindings, tracks the liveness
// of declarations and applies the semantic checks to the syntax tree.
package walker

import (
	"context"
	"maps"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/jslint/internal/config"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/scope"
	"fillmore-labs.com/jslint/internal/session"
	"fillmore-labs.com/jslint/internal/syntax"
)

// Walk traverses the syntax tree of a parsed session. Each node is visited on
// the way down and on the way up. Afterwards the function scopes are checked
// for unused and uninitialized bindings.
func Walk(ctx context.Context, s *session.Session) (err error) {
	defer trace.StartRegion(ctx, "Walk").End()
	defer s.Recover(&err)

	if !s.JSON {
		w := &walker{
			s:      s,
			stack:  scope.NewStack(s.Global),
			blocks: []*block{{body: true}},
		}

		w.statements(s.Root)

		if s.Module || s.Enabled(config.Node) {
			w.delve(s.Global)
		}

		for _, fn := range s.Functions {
			w.delve(fn)
		}
	}

	if !s.Enabled(config.Browser) {
		for _, d := range s.Directives {
			if s.Token(d).Directive == "global" {
				s.Warn(report.MissingBrowser, d)
			}
		}
	}

	s.Assert(!s.Enabled(config.TestInternalError), "test_internal_error")

	return nil
}

// walker is the traversal state.
type walker struct {
	s      *session.Session
	stack  scope.Stack
	blocks []*block
}

// block holds the declarations that die when the block is left.
type block struct {
	body bool
	live []*syntax.Binding
}

func (w *walker) tok(i syntax.Index) *syntax.Token {
	return w.s.Tree.At(i)
}

// operand returns the i-th operand of t, or nil.
func (w *walker) operand(t *syntax.Token, i int) *syntax.Token {
	if i >= len(t.Expr) {
		return nil
	}

	return w.s.Tree.At(t.Expr[i])
}

func (w *walker) warn(code report.Code, at syntax.Index, args ...string) {
	w.s.Warn(code, at, args...)
}

func (w *walker) enabled(o config.Option) bool {
	return w.s.Enabled(o)
}

func (w *walker) similar(a, b syntax.Index) bool {
	return syntax.AreSimilar(&w.s.Tree, a, b)
}

func (w *walker) block() *block {
	return w.blocks[len(w.blocks)-1]
}

func (w *walker) pushBlock(body bool) {
	w.blocks = append(w.blocks, &block{body: body})
}

func (w *walker) popBlock() {
	last := len(w.blocks) - 1
	for _, b := range w.blocks[last].live {
		b.Dead = true
	}

	w.blocks = w.blocks[:last]
}

// activate makes a declaration live in the current block.
func (w *walker) activate(name syntax.Index) {
	b := w.tok(name).Binding
	if b == nil {
		return
	}

	b.Init = true
	b.Dead = false

	blk := w.block()
	blk.live = append(blk.live, b)
}

func (w *walker) topLevelOnly(t *syntax.Token) {
	if len(w.blocks) > 1 {
		w.warn(report.MisplacedA, t.Nr)
	}
}

func (w *walker) expressions(list []syntax.Index) {
	for _, i := range list {
		w.expression(i)
	}
}

// expression walks a node in expression position.
func (w *walker) expression(i syntax.Index) {
	if i == syntax.InvalidNode {
		return
	}

	t := w.tok(i)

	pre.run(w, t)
	w.expressions(t.Expr)

	if t.ID == syntax.FunctionKeyword || t.ID == syntax.Arrow {
		w.statements(t.Block)
	}

	switch t.Arity {
	case syntax.ArityPre, syntax.ArityPost:
		w.warn(report.UnexpectedA, t.Nr)

	case syntax.ArityStatement, syntax.ArityAssignment:
		w.warn(report.UnexpectedStatementA, t.Nr)
	}

	post.run(w, t)
}

func (w *walker) statements(list []syntax.Index) {
	for _, i := range list {
		w.statement(i)
	}
}

// statement walks a node in statement position. Only calls, assignments and
// statements are useful there.
func (w *walker) statement(i syntax.Index) {
	if i == syntax.InvalidNode {
		return
	}

	t := w.tok(i)

	pre.run(w, t)
	w.expressions(t.Expr)

	switch {
	case t.Arity == syntax.ArityBinary:
		if t.ID != syntax.LParen {
			w.warn(report.UnexpectedExpressionA, t.Nr)
		}

	case t.Arity != syntax.ArityStatement && t.Arity != syntax.ArityAssignment && t.ID != syntax.Import:
		w.warn(report.UnexpectedExpressionA, t.Nr)
	}

	w.statements(t.Block)
	w.statements(t.Else)

	post.run(w, t)
}

// lookup resolves a variable token to its binding. Bindings found outside the
// current function are marked as closures and cached in its context.
func (w *walker) lookup(t *syntax.Token) *syntax.Binding {
	if t.Arity != syntax.ArityVariable {
		return nil
	}

	fn := w.stack.Current()

	b, ok := fn.Context[t.Value]
	switch {
	case !ok:
		b = w.stack.Outer(t.Value, true)
		if b == nil {
			if !w.s.Globals[t.Value] {
				w.warn(report.UndeclaredA, t.Nr)

				return nil
			}

			b = w.s.Bindings.New(t.Value, syntax.InvalidNode, 0)
			b.Role = syntax.RoleVariable
			b.Parent = w.s.Global
			b.Init = true
			w.s.Global.Context[t.Value] = b
		}

		b.Closure = true
		fn.Context[t.Value] = b

	case b.Role == syntax.RoleLabel:
		w.warn(report.LabelA, t.Nr)
	}

	if b.Dead && !w.calledFrom(b, fn) {
		w.warn(report.OutOfScopeA, t.Nr)
	}

	return b
}

// calledFrom reports whether the function statement b is called by fn, which
// permits references to it before its definition.
func (w *walker) calledFrom(b *syntax.Binding, fn *syntax.Function) bool {
	if b.Calls == nil || fn.Name == syntax.InvalidNode {
		return false
	}

	_, ok := b.Calls[w.tok(fn.Name).Value]

	return ok
}

// delve reports the bindings of a function that are never used or never
// initialized.
func (w *walker) delve(fn *syntax.Function) {
	for _, name := range slices.Sorted(maps.Keys(fn.Context)) {
		if name == "ignore" {
			continue
		}

		b := fn.Context[name]
		if b.Parent != fn || b.Decl == syntax.InvalidNode {
			continue
		}

		switch {
		case b.Used == 0:
			w.warn(report.UnusedA, b.Decl)

		case !b.Init:
			w.warn(report.UninitializedA, b.Decl)
		}
	}
}
