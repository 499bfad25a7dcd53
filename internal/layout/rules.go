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

package layout

import "fillmore-labs.com/jslint/internal/syntax"

func closerOf(opener syntax.ID) syntax.ID {
	switch opener {
	case syntax.LParen:
		return syntax.RParen

	case syntax.LBracket:
		return syntax.RBracket

	case syntax.LBrace, syntax.DollarBrace:
		return syntax.RBrace

	default:
		return syntax.End
	}
}

func isLabel(t *syntax.Token) bool {
	return t.Binding != nil && t.Binding.Role == syntax.RoleLabel
}

// touching reports whether left and right must be adjacent: member access,
// spread, punctuation and the parens or brackets of calls and subscripts.
func touching(left, right *syntax.Token) bool {
	switch left.ID {
	case syntax.Dot, syntax.OptionalChain, syntax.Spread:
		return true
	}

	switch right.ID {
	case syntax.Comma, syntax.Semicolon, syntax.Colon, syntax.Dot, syntax.OptionalChain:
		return true

	case syntax.LParen, syntax.LBracket:
		return right.Arity == syntax.ArityBinary
	}

	return right.Arity == syntax.ArityFunction && left.ID != syntax.FunctionKeyword
}

// spacedKeyword reports whether left and right are separated by exactly one
// space on the same line.
func spacedKeyword(left, right *syntax.Token) bool {
	switch left.ID {
	case syntax.Case, syntax.Catch, syntax.Else, syntax.Finally, syntax.While, syntax.Await:
		return true
	}

	switch right.ID {
	case syntax.Catch, syntax.Else, syntax.Finally:
		return true

	case syntax.While:
		return !right.Statement

	case syntax.LBrace:
		if left.ID == syntax.RParen {
			return true
		}
	}

	return left.Arity == syntax.ArityTernary
}

// spaced reports whether left and right are separated by one space.
func spaced(left, right *syntax.Token) bool {
	switch {
	case left.ID.IsSpaced(), right.ID.IsSpaced():
		return true

	case left.Arity == syntax.ArityBinary && (left.ID == syntax.Add || left.ID == syntax.Sub),
		right.Arity == syntax.ArityBinary && (right.ID == syntax.Add || right.ID == syntax.Sub):
		return true

	case left.ID == syntax.FunctionKeyword, left.ID == syntax.Colon:
		return true

	case word(left) && word(right):
		return true

	default:
		return left.Arity == syntax.ArityStatement && right.ID != syntax.Semicolon
	}
}

// word is an identifier or a literal that needs separation from its neighbor.
func word(t *syntax.Token) bool {
	return t.Identifier || t.ID == syntax.String || t.ID == syntax.Number
}
