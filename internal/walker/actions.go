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

type action func(w *walker, t *syntax.Token)

// actions holds the handlers of one traversal direction. Handlers registered
// for a specific token kind run before those registered for the whole arity.
type actions struct {
	byID [syntax.NumArities][syntax.NumIDs][]action
	all  [syntax.NumArities][]action
}

var pre, post actions

func (a *actions) on(arity syntax.Arity, id syntax.ID, fn action) {
	a.byID[arity][id] = append(a.byID[arity][id], fn)
}

func (a *actions) onAll(arity syntax.Arity, fn action) {
	a.all[arity] = append(a.all[arity], fn)
}

func (a *actions) run(w *walker, t *syntax.Token) {
	for _, fn := range a.byID[t.Arity][t.ID] {
		fn(w, t)
	}

	for _, fn := range a.all[t.Arity] {
		fn(w, t)
	}
}

func init() {
	pre.onAll(syntax.ArityAssignment, bitwiseCheck)
	pre.onAll(syntax.ArityBinary, bitwiseCheck)
	pre.onAll(syntax.ArityBinary, relationCheck)
	pre.on(syntax.ArityBinary, syntax.Eq, func(w *walker, t *syntax.Token) {
		w.warn(report.ExpectedAB, t.Nr, "===", "==")
	})
	pre.on(syntax.ArityBinary, syntax.Ne, func(w *walker, t *syntax.Token) {
		w.warn(report.ExpectedAB, t.Nr, "!==", "!=")
	})
	pre.on(syntax.ArityBinary, syntax.Arrow, enterFunction)
	pre.on(syntax.ArityBinary, syntax.LogicalOr, mixedLogic)
	pre.on(syntax.ArityBinary, syntax.LParen, reviveCallee)
	pre.on(syntax.ArityBinary, syntax.In, func(w *walker, t *syntax.Token) {
		w.warn(report.InfixIn, t.Nr)
	})
	pre.on(syntax.ArityBinary, syntax.Instanceof, func(w *walker, t *syntax.Token) {
		w.warn(report.UnexpectedA, t.Nr)
	})
	pre.on(syntax.ArityStatement, syntax.LBrace, func(w *walker, t *syntax.Token) {
		w.pushBlock(t.Body)
	})
	pre.on(syntax.ArityStatement, syntax.For, enterFor)
	pre.on(syntax.ArityStatement, syntax.FunctionKeyword, enterFunction)
	pre.on(syntax.ArityUnary, syntax.Tilde, bitwiseCheck)
	pre.on(syntax.ArityUnary, syntax.FunctionKeyword, enterFunction)
	pre.onAll(syntax.ArityVariable, func(w *walker, t *syntax.Token) {
		if b := w.lookup(t); b != nil {
			t.Ref = b
			b.Used++
		}
	})

	post.on(syntax.ArityAssignment, syntax.AddAssign, addNothing)
	post.onAll(syntax.ArityAssignment, assignmentCheck)
	post.onAll(syntax.ArityBinary, binaryCheck)
	post.on(syntax.ArityBinary, syntax.LogicalAnd, func(w *walker, t *syntax.Token) {
		l, r := w.operand(t, 0), w.operand(t, 1)
		if syntax.IsWeird(l) || w.similar(l.Nr, r.Nr) || l.Constant || r.Constant {
			w.warn(report.WeirdConditionA, t.Nr)
		}
	})
	post.on(syntax.ArityBinary, syntax.LogicalOr, func(w *walker, t *syntax.Token) {
		l, r := w.operand(t, 0), w.operand(t, 1)
		if syntax.IsWeird(l) || w.similar(l.Nr, r.Nr) || l.Constant {
			w.warn(report.WeirdConditionA, t.Nr)
		}
	})
	post.on(syntax.ArityBinary, syntax.Arrow, leaveFunction)
	post.on(syntax.ArityBinary, syntax.LParen, invocationCheck)
	post.on(syntax.ArityBinary, syntax.LBracket, func(w *walker, t *syntax.Token) {
		if w.operand(t, 0).Is("RegExp") {
			w.warn(report.WeirdExpressionA, t.Nr)
		}

		if sub := w.operand(t, 1); syntax.IsWeird(sub) {
			w.warn(report.WeirdExpressionA, sub.Nr)
		}
	})
	post.on(syntax.ArityStatement, syntax.LBrace, func(w *walker, _ *syntax.Token) {
		w.popBlock()
	})
	post.on(syntax.ArityStatement, syntax.Const, declare)
	post.on(syntax.ArityStatement, syntax.Export, func(w *walker, t *syntax.Token) {
		w.topLevelOnly(t)
	})
	post.on(syntax.ArityStatement, syntax.For, func(w *walker, t *syntax.Token) {
		w.statement(t.Inc)
	})
	post.on(syntax.ArityStatement, syntax.FunctionKeyword, leaveFunction)
	post.on(syntax.ArityStatement, syntax.Import, importBindings)
	post.on(syntax.ArityStatement, syntax.Let, declare)
	post.on(syntax.ArityStatement, syntax.Try, catchClause)
	post.on(syntax.ArityStatement, syntax.Var, declare)
	post.onAll(syntax.ArityTernary, ternaryCheck)
	post.on(syntax.ArityUnary, syntax.FunctionKeyword, leaveFunction)
	post.on(syntax.ArityUnary, syntax.Add, unaryPlus)
	post.onAll(syntax.ArityUnary, unaryCheck)
}
