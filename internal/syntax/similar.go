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

package syntax

// IsWeird reports whether the token is a literal that is never similar to
// anything, not even to itself.
func IsWeird(t *Token) bool {
	switch t.ID {
	case Regexp, LBrace, Arrow, FunctionKeyword:
		return true

	case LBracket:
		return t.Arity == ArityUnary

	default:
		return false
	}
}

// AreSimilar reports whether the expressions a and b are structurally the
// same. Calls and weird literals are never similar.
func AreSimilar(tree *Tree, a, b Index) bool {
	if a == InvalidNode || b == InvalidNode {
		return a == b
	}

	ta, tb := tree.At(a), tree.At(b)

	if ta.ID == Number && tb.ID == Number {
		return ta.Value == tb.Value
	}

	if sa, ok := stringValue(tree, ta); ok {
		sb, ok := stringValue(tree, tb)

		return ok && sa == sb
	}

	if IsWeird(ta) || IsWeird(tb) {
		return false
	}

	if ta.Arity != tb.Arity || !SameID(ta, tb) {
		return false
	}

	switch {
	case ta.ID == Dot:
		return AreSimilar(tree, ta.Operand(), tb.Operand()) &&
			AreSimilar(tree, ta.Name, tb.Name)

	case ta.Arity == ArityUnary:
		return allSimilar(tree, ta.Expr, tb.Expr)

	case ta.Arity == ArityBinary:
		return ta.ID != LParen &&
			AreSimilar(tree, child(ta, 0), child(tb, 0)) &&
			AreSimilar(tree, child(ta, 1), child(tb, 1))

	case ta.Arity == ArityTernary:
		return allSimilar(tree, ta.Expr, tb.Expr)

	default:
		return true
	}
}

// SameID reports whether two tokens have the same kind, comparing the
// spelling of plain identifiers and unknown punctuators.
func SameID(a, b *Token) bool {
	if a.ID != b.ID {
		return false
	}

	switch a.ID {
	case Ident, Punctuator:
		return a.Value == b.Value

	default:
		return true
	}
}

func allSimilar(tree *Tree, a, b []Index) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !AreSimilar(tree, a[i], b[i]) {
			return false
		}
	}

	return true
}

func child(t *Token, i int) Index {
	if i >= len(t.Expr) {
		return InvalidNode
	}

	return t.Expr[i]
}

// stringValue returns the contents of string literals and constant template
// literals.
func stringValue(tree *Tree, t *Token) (string, bool) {
	switch {
	case t.ID == String:
		return t.Value, true

	case t.ID == Backtick && t.Constant && len(t.Parts) > 0:
		return tree.At(t.Parts[0]).Value, true

	default:
		return "", false
	}
}
