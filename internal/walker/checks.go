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
	"fillmore-labs.com/jslint/internal/config"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/syntax"
)

func bitwiseCheck(w *walker, t *syntax.Token) {
	if !w.enabled(config.Bitwise) && t.ID.IsBitwise() {
		w.warn(report.UnexpectedA, t.Nr)
	}

	switch t.ID {
	case syntax.LParen, syntax.LogicalAnd, syntax.LogicalOr, syntax.Assign:
		return
	}

	// Relations do not chain.
	if len(t.Expr) == 2 && (w.operand(t, 0).ID.IsRelational() || w.operand(t, 1).ID.IsRelational()) {
		w.warn(report.UnexpectedA, t.Nr)
	}
}

func relationCheck(w *walker, t *syntax.Token) {
	if !t.ID.IsRelational() {
		return
	}

	left, right := w.operand(t, 0), w.operand(t, 1)

	switch {
	case left.ID == syntax.NaN || right.ID == syntax.NaN:
		w.warn(report.NumberIsNaN, t.Nr)

	case left.ID != syntax.Typeof:

	case right.ID == syntax.String:
		switch value := right.Value; value {
		case "null", "undefined":
			w.warn(report.UnexpectedTypeofA, right.Nr, value)

		case "boolean", "function", "number", "object", "string", "symbol":

		default:
			w.warn(report.ExpectedTypeStringA, right.Nr, value)
		}

	case right.ID != syntax.Typeof:
		w.warn(report.ExpectedStringA, right.Nr)
	}
}

// mixedLogic wants && inside || to be wrapped.
func mixedLogic(w *walker, t *syntax.Token) {
	for _, i := range t.Expr {
		if e := w.tok(i); e.ID == syntax.LogicalAnd && !e.Wrapped {
			w.warn(report.And, i)
		}
	}
}

// addNothing flags += of values that change nothing.
func addNothing(w *walker, t *syntax.Token) {
	right := w.operand(t, 1)
	if !right.Constant {
		return
	}

	switch {
	case right.ID == syntax.String && right.Value == "",
		right.ID == syntax.Number && right.Value == "0",
		right.ID == syntax.Null, right.ID == syntax.Undefined:
		w.warn(report.UnexpectedA, right.Nr)
	}
}

// assignmentCheck initializes the targets of = and checks compound
// assignments.
func assignmentCheck(w *walker, t *syntax.Token) {
	if t.ID == syntax.Assign {
		if len(t.Names) > 0 {
			initVariable(w, t.Names[0])

			return
		}

		switch lvalue, right := w.operand(t, 0), w.operand(t, 1); {
		case lvalue.ID == syntax.LBracket || lvalue.ID == syntax.LBrace:
			for _, i := range lvalue.Expr {
				if b := w.tok(i).Ref; b != nil {
					b.Init = true
				}
			}

		case lvalue.ID == syntax.Dot && right.ID == syntax.Undefined:
			w.warn(report.ExpectedAB, lvalue.Operand(), "delete", "undefined")
		}

		return
	}

	lvalue, right := w.operand(t, 0), w.operand(t, 1)
	if lvalue.Arity == syntax.ArityVariable && (lvalue.Ref == nil || !lvalue.Ref.Writable) {
		w.warn(report.BadAssignmentA, lvalue.Nr)
	}

	switch {
	case right.ID == syntax.FunctionKeyword, right.ID == syntax.Arrow,
		right.ID.IsConstant() && right.ID != syntax.Number && (right.ID != syntax.String || t.ID != syntax.AddAssign):
		w.warn(report.UnexpectedA, right.Nr)
	}
}

func binaryCheck(w *walker, t *syntax.Token) {
	left, right := w.operand(t, 0), w.operand(t, 1)

	if t.ID.IsRelational() &&
		(syntax.IsWeird(left) || syntax.IsWeird(right) || w.similar(left.Nr, right.Nr) || left.Constant && right.Constant) {
		w.warn(report.WeirdRelationA, t.Nr)
	}

	switch t.ID {
	case syntax.Add:
		if w.enabled(config.Convert) {
			break
		}

		switch {
		case left.ID == syntax.String && left.Value == "":
			w.warn(report.ExpectedAB, t.Nr, "String(...)", `"" +`)

		case right.ID == syntax.String && right.Value == "":
			w.warn(report.ExpectedAB, t.Nr, "String(...)", `+ ""`)
		}

	case syntax.LBracket:
		switch {
		case left.Is("window"):
			w.warn(report.WeirdExpressionA, t.Nr, "window[...]")

		case left.Is("self"):
			w.warn(report.WeirdExpressionA, t.Nr, "self[...]")
		}

	case syntax.Dot, syntax.OptionalChain:
		if left.Is("RegExp") {
			w.warn(report.WeirdExpressionA, t.Nr)
		}

	case syntax.Arrow, syntax.LParen:

	default:
		if right == nil {
			break
		}

		if t.ID == syntax.Sub && right.ID == syntax.Sub && right.Arity == syntax.ArityUnary && !right.Wrapped {
			w.warn(report.WrapUnary, right.Nr)
		}

		if left.Constant && right.Constant {
			t.Constant = true
		}
	}
}

// invocationCheck applies the constructor naming rules to calls.
func invocationCheck(w *walker, t *syntax.Token) {
	left := w.operand(t, 0)

	var construct *syntax.Token
	if left.ID == syntax.New {
		construct = left
		left = w.operand(left, 0)
	}

	switch {
	case left.ID == syntax.FunctionKeyword:
		if !t.Wrapped {
			w.warn(report.WrapImmediate, t.Nr)
		}

	case left.Identifier:
		name := left.Value

		if construct == nil {
			if capitalized(name) && !boxed(name) {
				w.warn(report.ExpectedABeforeB, left.Nr, "new", left.Artifact())
			}

			break
		}

		switch {
		case name[0] > 'Z' || boxed(name):
			w.warn(report.UnexpectedA, construct.Nr)

		case name == "Function":
			if !w.enabled(config.Eval) {
				w.warn(report.UnexpectedA, left.Nr, "new Function")
			}

		case name == "Array":
			if len(t.Expr) != 2 || w.operand(t, 1).ID == syntax.String {
				w.warn(report.ExpectedAB, left.Nr, "[]", "new Array")
			}

		case name == "Object":
			w.warn(report.ExpectedAB, left.Nr, "Object.create(null)", "new Object")
		}

	case left.ID == syntax.Dot:
		object, property := w.operand(left, 0), w.tok(left.Name)

		wantNew := construct != nil
		if object.Is("Date") && property.Is("UTC") {
			wantNew = !wantNew
		}

		if capitalized(property.Value) != wantNew {
			if construct != nil {
				w.warn(report.UnexpectedA, construct.Nr)
			} else {
				w.warn(report.ExpectedABeforeB, object.Nr, "new", property.Value)
			}
		}

		if property.Is("getTime") && object.ID == syntax.LParen && len(object.Expr) == 1 {
			if date := w.operand(object, 0); date.ID == syntax.New && w.operand(date, 0).Is("Date") {
				w.warn(report.ExpectedAB, date.Nr, "Date.now()", "new Date().getTime()")
			}
		}
	}
}

func capitalized(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}

// boxed reports whether name is a primitive wrapper constructor.
func boxed(name string) bool {
	switch name {
	case "Boolean", "Number", "String", "Symbol":
		return true

	default:
		return false
	}
}

func ternaryCheck(w *walker, t *syntax.Token) {
	cond, yes, no := w.operand(t, 0), w.operand(t, 1), w.operand(t, 2)

	switch {
	case syntax.IsWeird(cond) || cond.Constant || w.similar(yes.Nr, no.Nr):
		w.warn(report.UnexpectedA, t.Nr)

	case w.similar(cond.Nr, yes.Nr):
		w.warn(report.ExpectedAB, t.Nr, "||", "?")

	case w.similar(cond.Nr, no.Nr):
		w.warn(report.ExpectedAB, t.Nr, "&&", "?")

	case yes.ID == syntax.True && no.ID == syntax.False:
		w.warn(report.ExpectedAB, t.Nr, "!!", "?")

	case yes.ID == syntax.False && no.ID == syntax.True:
		w.warn(report.ExpectedAB, t.Nr, "!", "?")

	case !cond.Wrapped && (cond.ID == syntax.LogicalOr || cond.ID == syntax.LogicalAnd):
		w.warn(report.WrapCondition, cond.Nr)
	}
}

func unaryPlus(w *walker, t *syntax.Token) {
	if !w.enabled(config.Convert) {
		w.warn(report.ExpectedAB, t.Nr, "Number(...)", "+")
	}

	switch right := w.operand(t, 0); {
	case right.ID == syntax.LParen && w.operand(right, 0).ID == syntax.New:
		w.warn(report.UnexpectedABeforeB, t.Nr, "+", "new")

	case right.Constant, right.ID == syntax.LBrace, right.ID == syntax.LBracket && right.Arity != syntax.ArityBinary:
		w.warn(report.UnexpectedA, t.Nr, "+")
	}
}

// unaryCheck folds constants through prefix operators.
func unaryCheck(w *walker, t *syntax.Token) {
	switch t.ID {
	case syntax.Backtick:
		for _, i := range t.Expr {
			if !w.tok(i).Constant {
				return
			}
		}

		t.Constant = true

	case syntax.Not:
		if w.operand(t, 0).Constant {
			w.warn(report.UnexpectedA, t.Nr)
		}

	case syntax.NotNot:
		if !w.enabled(config.Convert) {
			w.warn(report.ExpectedAB, t.Nr, "Boolean(...)", "!!")
		}

	case syntax.LBracket, syntax.LBrace, syntax.FunctionKeyword, syntax.New:

	default:
		if operand := w.operand(t, 0); operand != nil && operand.Constant {
			t.Constant = true
		}
	}
}
