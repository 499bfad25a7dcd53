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

package walker

import (
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/syntax"
)

// enterFunction opens the scope of a function or arrow and activates its
// parameters.
func enterFunction(w *walker, t *syntax.Token) {
	if t.Arity == syntax.ArityStatement && !w.block().body {
		w.warn(report.UnexpectedA, t.Nr)
	}

	fn := t.Fn
	w.stack.Push(fn)
	w.pushBlock(false)

	if fn.Name != syntax.InvalidNode {
		if b := w.tok(fn.Name).Binding; b != nil {
			b.Dead = false
			b.Init = true
		}
	}

	switch t.Extra {
	case "get":
		if len(fn.Parameters) != 0 {
			w.warn(report.BadGet, t.Nr)
		}

	case "set":
		if len(fn.Parameters) != 1 {
			w.warn(report.BadSet, t.Nr)
		}
	}

	for _, param := range fn.Parameters {
		p := w.tok(param)
		w.expressions(p.Expr)

		if p.ID == syntax.LBrace || p.ID == syntax.LBracket {
			for _, name := range p.Names {
				w.activate(name)
			}

			continue
		}

		if b := p.Binding; b != nil {
			b.Dead = false
			b.Init = true
		}
	}
}

func leaveFunction(w *walker, t *syntax.Token) {
	w.stack.Pop()

	if t.Wrapped {
		w.warn(report.UnexpectedParens, t.Nr)
	}

	w.popBlock()
}

// reviveCallee lets a function statement call another one that is declared
// later in the same scope, when the callee calls it back.
func reviveCallee(w *walker, t *syntax.Token) {
	left := w.operand(t, 0)
	fn := w.stack.Current()

	if !left.Identifier || fn.Name == syntax.InvalidNode {
		return
	}

	if _, ok := fn.Context[left.Value]; ok {
		return
	}

	name := w.tok(fn.Name)
	if name.Binding == nil || name.Binding.Parent == nil {
		return
	}

	parent := name.Binding.Parent

	callee, ok := parent.Context[left.Value]
	if !ok || !callee.Dead || callee.Parent != parent || callee.Calls == nil {
		return
	}

	if _, ok := callee.Calls[name.Value]; ok {
		callee.Dead = false
	}
}

func enterFor(w *walker, t *syntax.Token) {
	if t.Name != syntax.InvalidNode {
		if b := w.lookup(w.tok(t.Name)); b != nil {
			b.Init = true
			if !b.Writable {
				w.warn(report.BadAssignmentA, t.Name)
			}
		}
	}

	w.statement(t.Initial)
}

// declare activates the names of a var, let or const statement, walking
// their initializers.
func declare(w *walker, t *syntax.Token) {
	blk := w.block()

	for _, name := range t.Names {
		n := w.tok(name)

		b := n.Binding
		b.Dead = false

		if len(n.Expr) > 0 {
			w.expressions(n.Expr)
			b.Init = true
		}

		blk.live = append(blk.live, b)
	}
}

func importBindings(w *walker, t *syntax.Token) {
	if t.Name != syntax.InvalidNode {
		w.activate(t.Name)
	}

	for _, name := range t.Names {
		w.activate(name)
	}

	w.topLevelOnly(t)
}

// catchClause walks the catch block of a try statement in the scope of its
// exception name.
func catchClause(w *walker, t *syntax.Token) {
	if t.Catch == syntax.InvalidNode {
		return
	}

	c := w.tok(t.Catch)
	w.stack.Push(c.Fn)

	if c.Name != syntax.InvalidNode {
		if b := w.tok(c.Name).Binding; b != nil {
			b.Dead = false
			b.Init = true
		}
	}

	w.statements(c.Block)
	w.stack.Pop()
}

// initVariable marks the target of a plain assignment as initialized.
func initVariable(w *walker, name syntax.Index) {
	if b := w.lookup(w.tok(name)); b != nil && b.Writable {
		b.Init = true

		return
	}

	w.warn(report.BadAssignmentA, name)
}
