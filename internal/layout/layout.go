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

// Package layout verifies the whitespace between adjacent tokens.
//
// Brackets open a context. When the token following an opener is on a new
// line the context is in open form: its contents are indented four columns
// deeper and the closer returns to the outer margin. Otherwise the context is
// in closed form and its contents must stay on the opener's line.
package layout

import (
	"context"
	"runtime/trace"

	"fillmore-labs.com/jslint/internal/config"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/session"
	"fillmore-labs.com/jslint/internal/syntax"
)

// indent is the number of columns a nested open form adds to the margin.
const indent = 4

// frame is the state of a bracket context.
type frame struct {
	closer  syntax.ID
	free    bool
	margin  int
	open    bool
	opening bool
}

type verifier struct {
	s *session.Session
	frame
	stack []frame

	left, right *syntax.Token
	skipped     int // comments between left and right
}

// global is the left neighbor of the first token.
var global = syntax.Token{ID: syntax.Global, Nr: syntax.InvalidNode}

// Verify checks the layout of the lexed tokens. It does nothing for JSON, when
// whitespace checks are disabled or when earlier phases reported diagnostics.
func Verify(ctx context.Context, s *session.Session) (err error) {
	defer trace.StartRegion(ctx, "Layout").End()

	if s.JSON || s.Enabled(config.White) || s.Len() > 0 {
		return nil
	}

	defer s.Recover(&err)

	left := global

	v := verifier{
		s:     s,
		frame: frame{closer: syntax.End, open: true, opening: true},
		left:  &left,
	}

	for i := range syntax.Index(s.Lexed) {
		v.step(s.Token(i))
	}

	return nil
}

func (v *verifier) step(right *syntax.Token) {
	if right.ID == syntax.Comment || right.ID == syntax.End {
		v.skipped++

		return
	}

	v.right = right

	switch v.left.ID {
	case syntax.DollarBrace, syntax.LParen, syntax.LBracket, syntax.LBrace:
		v.opener()

	default:
		v.between()
	}

	v.skipped = 0
	v.left = right
}

// opener handles the token following an opening bracket.
func (v *verifier) opener() {
	left, right := v.left, v.right

	v.s.Assert(left.ID != syntax.DollarBrace || right.ID != syntax.RBrace, "empty template substitution")

	if closerOf(left.ID) == right.ID {
		if left.Line == right.Line {
			v.noSpace()
		} else {
			v.atMargin(0)
		}

		return
	}

	v.opening = left.Open || left.Line != right.Line
	v.stack = append(v.stack, v.frame)
	v.closer = closerOf(left.ID)

	if !v.opening {
		if right.Statement || isLabel(right) {
			v.warn(report.ExpectedLineBreakAB, v.left.Artifact(), right.Artifact())
		}

		v.free = false
		v.open = false
		v.noSpaceOnly()

		return
	}

	v.free = v.closer == syntax.RParen && left.Free
	v.open = true
	v.margin += indent

	switch {
	case isLabel(right):
		if right.From != 0 {
			v.expectedAt(0)
		}

	case right.Switch:
		v.atMargin(-indent)

	default:
		v.atMargin(0)
	}
}

// between handles a token whose left neighbor is not an opener.
func (v *verifier) between() {
	left, right := v.left, v.right

	switch {
	case right.Statement:
		if left.ID == syntax.Else {
			v.oneSpaceOnly()
		} else {
			v.atMargin(0)
			v.open = false
		}

	case right.ID == v.closer:
		v.pop()

		if v.opening && right.ID != syntax.Semicolon {
			v.atMargin(0)
		} else {
			v.noSpaceOnly()
		}

	case right.Switch:
		v.atMargin(-indent)

	case isLabel(right):
		if right.From != 0 {
			v.expectedAt(0)
		}

	case left.ID == syntax.Comma:
		if !v.open || ((v.free || v.closer == syntax.RBracket) && left.Line == right.Line) {
			v.oneSpace()
		} else {
			v.atMargin(0)
		}

	case right.Arity == syntax.ArityTernary:
		if v.open {
			v.atMargin(0)
		} else {
			v.warn(report.UseOpen, right.Artifact())
		}

	case right.Arity == syntax.ArityBinary && right.ID == syntax.LParen && v.free:
		v.noSpace()

	case touching(left, right):
		v.noSpaceOnly()

	case left.ID == syntax.Semicolon:
		if v.open {
			v.atMargin(0)
		}

	case spacedKeyword(left, right):
		v.oneSpaceOnly()

	case spaced(left, right):
		v.oneSpace()

	case left.Arity == syntax.ArityUnary && left.ID != syntax.Backtick:
		v.noSpaceOnly()
	}
}

func (v *verifier) pop() {
	v.frame = v.stack[len(v.stack)-1]
	v.stack = v.stack[:len(v.stack)-1]
}

func (v *verifier) warn(code report.Code, args ...string) {
	v.s.Warn(code, v.right.Nr, args...)
}

// expectedAt reports that right should start at column at.
func (v *verifier) expectedAt(at int) {
	v.warn(report.ExpectedAAtBC, "", report.Itoa(at+1), report.Itoa(v.right.From+1))
}

func (v *verifier) atMargin(fit int) {
	if at := v.margin + fit; v.right.From != at {
		v.expectedAt(at)
	}
}

// noSpace requires left and right to touch when they share a line. A right
// operand on a later line must not start left of the margin.
func (v *verifier) noSpace() {
	left, right := v.left, v.right

	if left.Line == right.Line {
		if left.Thru != right.From && v.skipped == 0 {
			v.warn(report.UnexpectedSpaceAB, left.Artifact(), right.Artifact())
		}

		return
	}

	v.s.Assert(v.open && v.free, "line break in closed form")

	if right.From < v.margin {
		v.expectedAt(v.margin)
	}
}

// noSpaceOnly requires adjacent tokens to touch on the same line.
func (v *verifier) noSpaceOnly() {
	left, right := v.left, v.right

	if left.ID != syntax.Global && left.Nr+1 == right.Nr &&
		(left.Line != right.Line || left.Thru != right.From) {
		v.warn(report.UnexpectedSpaceAB, left.Artifact(), right.Artifact())
	}
}

// oneSpace requires a single space on the same line, or right at the margin
// in open form.
func (v *verifier) oneSpace() {
	left, right := v.left, v.right

	if left.Line == right.Line || !v.open {
		if left.Thru+1 != right.From && v.skipped == 0 {
			v.warn(report.ExpectedSpaceAB, left.Artifact(), right.Artifact())
		}

		return
	}

	if right.From != v.margin {
		v.expectedAt(v.margin)
	}
}

func (v *verifier) oneSpaceOnly() {
	left, right := v.left, v.right

	if left.Line != right.Line || left.Thru+1 != right.From {
		v.warn(report.ExpectedSpaceAB, left.Artifact(), right.Artifact())
	}
}
