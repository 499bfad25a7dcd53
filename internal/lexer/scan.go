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
	"regexp"
	"strings"
	"unicode/utf8"

	"fillmore-labs.com/jslint/internal/config"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/syntax"
)

// The whitespace class of ECMAScript.
const whitespace = `[\t\n\v\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]`

var rxToken = regexp.MustCompile(`^(` +
	`(` + whitespace + `+)` +
	`|([a-zA-Z_$][a-zA-Z0-9_$]*)` +
	"|[(){}\\[\\],:;'\"~`]" +
	`|\?[?.]?` +
	`|=(?:==?|>)?` +
	`|\.+` +
	`|\*[*/=]?` +
	`|/[*/]?` +
	`|\+[=+]?` +
	`|-[=\-]?` +
	`|[\^%]=?` +
	`|&[&=]?` +
	`|\|[|=]?` +
	`|>{1,3}=?` +
	`|<<?=?` +
	`|!(?:!|==?)?` +
	`|(0|[1-9][0-9]*)` +
	`)(.*)$`)

// Submatch indices of rxToken.
const (
	groupToken = 1 + iota
	groupSpace
	groupIdentifier
	groupNumber
	groupRest
)

// lex produces the next token.
func (l *lexer) lex() *syntax.Token {
	s := l.s

	for {
		for l.source == "" {
			ok := l.nextLine()
			l.from = 0

			if !ok {
				switch {
				case l.mega:
					s.StopAt(report.UnclosedMega, l.lineMega, l.fromMega)

				case l.lineDisable != 0:
					s.StopAt(report.UnclosedDisable, l.lineDisable, 0)
				}

				return l.create(syntax.End, "", false)
			}
		}

		l.from = l.column

		result := rxToken.FindStringSubmatch(l.source)
		if result == nil {
			r, _ := utf8.DecodeRuneInString(l.source)
			s.StopAt(report.UnexpectedCharA, l.line, l.column, string(r))
		}

		l.snippet = result[groupToken]
		l.column += utf8.RuneCountInString(l.snippet)
		l.source = result[groupRest]

		switch {
		case result[groupSpace] != "":
			continue

		case result[groupIdentifier] != "":
			return l.word(l.snippet)

		case result[groupNumber] != "":
			return l.number()
		}

		switch l.snippet {
		case `"`:
			return l.string(l.snippet)

		case "'":
			if !s.Enabled(config.Single) {
				s.WarnAt(report.UseDouble, l.line, l.column)
			}

			return l.string(l.snippet)

		case "`":
			return l.megaLiteral()

		case "//":
			return l.lineComment()

		case "/*":
			return l.blockComment()

		case "/":
			if t := l.slash(); t != nil {
				return t
			}
		}

		return l.punctuator(l.snippet)
	}
}

func (l *lexer) fraction() {
	if l.char == "." {
		l.someDigits(rxDigits, false)
	}

	if l.char == "E" || l.char == "e" {
		l.charAfter()

		if l.char != "+" && l.char != "-" {
			l.charBefore()
		}

		l.someDigits(rxDigits, false)
	}
}

func (l *lexer) number() *syntax.Token {
	if l.snippet == "0" {
		switch l.charAfter() {
		case ".":
			l.fraction()

		case "b":
			l.someDigits(rxBits, false)

		case "o":
			l.someDigits(rxOctals, false)

		case "x":
			l.someDigits(rxHexs, false)
		}
	} else {
		l.charAfter()
		l.fraction()
	}

	if c := l.char; c >= "0" && c <= "9" || c >= "a" && c <= "z" || c >= "A" && c <= "Z" {
		if len(c) == 1 {
			last := l.snippet[len(l.snippet)-1:]
			l.s.StopAt(report.UnexpectedAAfterB, l.line, l.column, last, l.snippet[:len(l.snippet)-1])
		}
	}

	l.charBefore()

	return l.create(syntax.Number, l.snippet, false)
}

func (l *lexer) string(quote string) *syntax.Token {
	s := l.s

	l.snippet = ""
	l.charAfter()

	for {
		switch l.char {
		case quote:
			l.snippet = l.snippet[:len(l.snippet)-len(quote)]
			t := l.create(syntax.String, l.snippet, false)
			t.Quote = quote

			return t

		case "":
			s.StopAt(report.UnclosedString, l.line, l.column)

		case `\`:
			l.escape(quote)

		case "`":
			if l.mega {
				s.WarnAt(report.UnexpectedA, l.line, l.column, "`")
			}

			l.expect("`")

		default:
			l.charAfter()
		}
	}
}

// megaLiteral lexes a template literal with its string parts and embedded
// expressions.
func (l *lexer) megaLiteral() *syntax.Token {
	s := l.s

	if l.mega {
		s.StopAt(report.ExpectedAB, l.line, l.column, "}", "`")
	}

	l.snippet = ""
	l.fromMega = l.from
	l.lineMega = l.line
	l.mega = true

	l.create(syntax.Backtick, "", false)
	l.from++

	l.megaPart()

	l.source = l.source[1:]
	l.column++
	l.mega = false

	return l.create(syntax.Backtick, "", false)
}

// megaPart lexes template text up to the closing backtick.
func (l *lexer) megaPart() {
	s := l.s

	for {
		at := strings.IndexAny(l.source, "`\\")
		if i := strings.Index(l.source, "${"); i >= 0 && (at < 0 || i < at) {
			at = i
		}

		if at < 0 {
			l.snippet += l.source + "\n"

			if !l.nextLine() {
				s.StopAt(report.UnclosedMega, l.lineMega, l.fromMega)
			}

			continue
		}

		l.snippet += l.source[:at]
		l.column += utf8.RuneCountInString(l.source[:at])
		l.source = l.source[at:]

		if l.source[0] == '\\' {
			_, size := utf8.DecodeRuneInString(l.source[1:])
			escaped := l.source[:1+size]
			l.snippet += escaped
			l.source = l.source[len(escaped):]
			l.column += 2

			continue
		}

		l.create(syntax.String, l.snippet, false).Quote = "`"
		l.snippet = ""

		if l.source[0] != '$' {
			return
		}

		l.column += 2
		l.create(syntax.DollarBrace, "", false)
		l.source = l.source[2:]

		for {
			id := l.lex().ID
			if id == syntax.LBrace {
				s.StopAt(report.ExpectedAB, l.line, l.column, "}", "{")
			}

			if id == syntax.RBrace {
				break
			}
		}
	}
}

// slash decides whether a slash starts a regexp literal. It returns nil for
// a division operator.
func (l *lexer) slash() *syntax.Token {
	s := l.s
	before := l.beforeSlash

	switch {
	case before == nil:
		s.Stop(report.UnexpectedA, l.regexpLiteral().Nr)

	case before.Identifier:
		if before.AfterDot {
			break
		}

		switch before.ID {
		case syntax.Return:
			return l.regexpLiteral()

		case syntax.Case, syntax.Delete, syntax.In, syntax.Instanceof,
			syntax.New, syntax.Typeof, syntax.Void, syntax.Yield:
			s.Stop(report.UnexpectedA, l.regexpLiteral().Nr)
		}

	default:
		last := lastChar(before)

		if strings.Contains("(,=:?[", last) {
			return l.regexpLiteral()
		}

		if strings.Contains("!&|{};~+-*%/^<>", last) {
			t := l.regexpLiteral()
			s.Warn(report.WrapRegexp, t.Nr)

			return t
		}
	}

	if strings.HasPrefix(l.source, "=") {
		l.column++
		l.source = l.source[1:]
		l.snippet = "/="
		s.WarnAt(report.UnexpectedA, l.line, l.column, "/=")
	}

	return nil
}

// lastChar returns the last character of a token's kind, as used to decide
// whether a slash can start a regexp.
func lastChar(t *syntax.Token) string {
	var text string

	switch t.ID {
	case syntax.Punctuator:
		text = t.Value

	default:
		text = t.ID.String()
	}

	if text == "" {
		return ""
	}

	return text[len(text)-1:]
}
