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

package lexer

import (
	"strings"

	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/syntax"
)

// regexpScanner parses the body of a regexp literal.
type regexpScanner struct {
	*lexer
	multi bool // ^ or $ appear inside the pattern
}

// regexpLiteral lexes a regexp literal; the opening slash has been consumed.
func (l *lexer) regexpLiteral() *syntax.Token {
	s := l.s
	r := regexpScanner{lexer: l}

	l.regexp = true

	l.snippet = ""
	l.charAfter()

	if l.char == "=" {
		s.WarnAt(report.ExpectedABeforeB, l.line, l.column, `\`, "=")
	}

	r.choice()

	l.snippet = l.snippet[:len(l.snippet)-len(lastRune(l.snippet))]
	value := l.snippet
	l.expect("/")

	var flags strings.Builder

	for c := l.char; c >= "a" && c <= "z" || c >= "A" && c <= "Z"; c = l.char {
		switch {
		case strings.Contains(flags.String(), c):
			s.WarnAt(report.UnexpectedA, l.line, l.column, c)

		case strings.Contains("gimuy", c):
			flags.WriteString(c)

		default:
			s.WarnAt(report.UnexpectedA, l.line, l.column, c)
			flags.WriteString(c)
		}

		l.charAfter()
	}

	l.charBefore()

	if l.char == "/" || l.char == "*" {
		s.StopAt(report.UnexpectedA, l.line, l.from, l.char)
	}

	t := l.create(syntax.Regexp, value, false)
	t.Flags = flags.String()

	if r.multi && !strings.Contains(t.Flags, "m") {
		s.WarnAt(report.MissingM, l.line, l.column)
	}

	return t
}

func lastRune(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] < 0x80 || s[i] >= 0xC0 {
			return s[i:]
		}
	}

	return s
}

// subclass matches a character in a character class.
func (r *regexpScanner) subclass() bool {
	switch r.char {
	case `\`:
		r.escape("BbDdSsWw-[]^")

		return true

	case "", "[", "]", "/", "^", "-":
		return false

	case " ":
		r.s.WarnAt(report.ExpectedAB, r.line, r.column, `\u0020`, " ")
		r.charAfter()

		return true

	case "`":
		if r.mega {
			r.s.WarnAt(report.UnexpectedA, r.line, r.column, "`")
		}

		r.charAfter()

		return true

	default:
		r.charAfter()

		return true
	}
}

// choice matches a sequence of factors up to the end of a group or literal.
func (r *regexpScanner) choice() {
	s := r.s
	follow := false

	for {
		switch r.char {
		case "", "/", "]", ")":
			if !follow {
				s.WarnAt(report.ExpectedRegexpFactorA, r.line, r.column, r.char)
			}

			return

		case "(":
			r.expect("(")

			switch r.char {
			case "?":
				r.expect("?")

				if r.char == "=" || r.char == "!" {
					r.charAfter()
				} else {
					r.expect(":")
				}

			case ":":
				s.WarnAt(report.ExpectedABeforeB, r.line, r.column, "?", ":")
			}

			r.choice()
			r.expect(")")

		case "[":
			r.class()

		case `\`:
			r.escape("BbDdSsWw^${}[]():=!.|*+?")

		case "?", "+", "*", "}", "{":
			s.WarnAt(report.ExpectedABeforeB, r.line, r.column, `\`, r.char)
			r.charAfter()

		case "`":
			if r.mega {
				s.WarnAt(report.UnexpectedA, r.line, r.column, "`")
			}

			r.charAfter()

		case " ":
			s.WarnAt(report.ExpectedAB, r.line, r.column, `\s`, " ")
			r.charAfter()

		case "$":
			if !strings.HasPrefix(r.source, "/") {
				r.multi = true
			}

			r.charAfter()

		case "^":
			if r.snippet != "^" {
				r.multi = true
			}

			r.charAfter()

		default:
			r.charAfter()
		}

		r.quantifier()

		follow = true
	}
}

// class matches a character class.
func (r *regexpScanner) class() {
	s := r.s

	r.expect("[")

	if r.char == "^" {
		r.expect("^")
	}

	for {
		for r.subclass() {
			if r.char == "-" {
				r.expect("-")

				if !r.subclass() {
					s.StopAt(report.UnexpectedA, r.line, r.column-1, "-")
				}
			}
		}

		if r.char == "]" || r.char == "" {
			break
		}

		s.WarnAt(report.ExpectedABeforeB, r.line, r.column, `\`, r.char)
		r.charAfter()
	}

	r.expect("]")
}

// quantifier matches an optional quantifier after a factor.
func (r *regexpScanner) quantifier() {
	s := r.s

	switch r.char {
	case "?", "*", "+":
		if r.charAfter() == "?" {
			r.expect("?")
		}

	case "{":
		if r.someDigits(rxDigits, true) == 0 {
			s.WarnAt(report.ExpectedABeforeB, r.line, r.column, "0", ",")
		}

		if r.char == "," {
			r.someDigits(rxDigits, true)
		}

		if r.expect("}") == "?" {
			s.WarnAt(report.UnexpectedA, r.line, r.column, r.char)
			r.expect("?")
		}
	}
}
