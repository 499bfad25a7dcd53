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

// Package lexer turns source lines into tokens.
package lexer

import (
	"context"
	"regexp"
	"runtime/trace"
	"strings"
	"unicode/utf8"

	"fillmore-labs.com/jslint/internal/config"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/session"
	"fillmore-labs.com/jslint/internal/syntax"
)

// SplitLines splits source text into physical lines, tolerating \n, \r\n and \r.
func SplitLines(source string) []string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")

	return strings.Split(source, "\n")
}

// Lex tokenizes the session's lines. It returns a [*report.StopError] when a
// fatal diagnostic ends the analysis.
func Lex(ctx context.Context, s *session.Session) (err error) {
	defer trace.StartRegion(ctx, "Lex").End()
	defer s.Recover(&err)

	l := &lexer{s: s, directive: true}

	if len(s.Lines) > 1 && strings.HasPrefix(s.Lines[1].Source, "#!") {
		l.line++
		s.Shebang = true
	}

	first := l.lex()
	l.first = true
	s.JSON = first.ID == syntax.LBrace || first.ID == syntax.LBracket

	for first.ID != syntax.End {
		first = l.lex()
	}

	s.Lexed = s.Tree.Len()

	return nil
}

const maxLineLength = 80

var rxTab = regexp.MustCompile(`\t`)

// lexer is the cursor over the source lines.
type lexer struct {
	s *session.Session

	char    string // the current character, empty at the end of the line
	column  int    // the column of the next character
	from    int    // the starting column of the token
	line    int    // the line of the next character
	source  string // the rest of the current line
	whole   string // the whole current line
	snippet string
	eof     bool // no more lines

	lineDisable int // the line of an open /*jslint-disable*/, 0 if none
	lineMega    int
	fromMega    int

	directive bool // directives are still allowed
	regexp    bool // a regexp literal was seen on the current line
	mega      bool // inside a template literal
	first     bool // the first token has been lexed

	prv         *syntax.Token // the previous token
	beforeSlash *syntax.Token // the previous token that is not a comment
}

// nextLine moves to the next line, reporting per-line style problems. It
// returns false at the end of the input.
func (l *lexer) nextLine() bool {
	s := l.s

	if !s.Enabled(config.Long) &&
		utf8.RuneCountInString(l.whole) > maxLineLength &&
		l.lineDisable == 0 &&
		!s.JSON &&
		l.first &&
		!l.regexp {
		s.WarnAt(report.TooLong, l.line, 0)
	}

	l.column = 0
	l.line++
	l.regexp = false
	l.source = ""
	l.whole = ""

	if l.line >= len(s.Lines) {
		l.eof = true

		return false
	}

	l.source = s.Lines[l.line].Source
	l.whole = l.source

	switch {
	case l.source == "/*jslint-disable*/":
		l.lineDisable = l.line

	case l.source == "/*jslint-enable*/":
		if l.lineDisable == 0 {
			s.StopAt(report.UnopenedEnable, l.line, 0)
		}

		l.lineDisable = 0

	case strings.HasSuffix(l.source, " //jslint-quiet"):
		s.Lines[l.line].Quiet = true
	}

	if l.lineDisable != 0 {
		l.source = ""
	}

	if at := strings.IndexByte(l.source, '\t'); at >= 0 {
		if !s.Enabled(config.White) {
			s.WarnAt(report.UseSpaces, l.line, utf8.RuneCountInString(l.source[:at]))
		}

		l.source = rxTab.ReplaceAllLiteralString(l.source, " ")
	}

	if !s.Enabled(config.White) && strings.HasSuffix(l.source, " ") {
		s.WarnAt(report.UnexpectedTrailingSpace, l.line, utf8.RuneCountInString(l.source)-1)
	}

	return true
}

// charAfter moves the next character of the line into the snippet.
func (l *lexer) charAfter() string {
	_, size := utf8.DecodeRuneInString(l.source)
	l.char = l.source[:size]
	l.source = l.source[size:]

	if l.char == "" {
		l.snippet += " "
	} else {
		l.snippet += l.char
	}

	l.column++

	return l.char
}

// expect checks the current character before moving to the next one.
func (l *lexer) expect(match string) string {
	if l.char != match {
		if l.char == "" {
			l.s.StopAt(report.ExpectedA, l.line, l.column-1, match, l.char)
		}

		l.s.StopAt(report.ExpectedAB, l.line, l.column, match, l.char)
	}

	return l.charAfter()
}

// charBefore moves the last character of the snippet back to the line.
func (l *lexer) charBefore() string {
	_, size := utf8.DecodeLastRuneInString(l.snippet)
	l.char = l.snippet[len(l.snippet)-size:]
	l.source = l.char + l.source
	l.column -= utf8.RuneCountInString(l.char)
	l.snippet = l.snippet[:len(l.snippet)-size]

	return l.char
}

var (
	rxDigits = regexp.MustCompile(`^[0-9]*`)
	rxHexs   = regexp.MustCompile(`^[0-9A-Fa-f]*`)
	rxOctals = regexp.MustCompile(`^[0-7]*`)
	rxBits   = regexp.MustCompile(`^[01]*`)
)

// someDigits consumes a run of digits following the current character.
func (l *lexer) someDigits(rx *regexp.Regexp, quiet bool) int {
	digits := rx.FindString(l.source)
	length := len(digits)

	if !quiet && length == 0 {
		l.s.WarnAt(report.ExpectedDigitsAfterA, l.line, l.column, l.snippet)
	}

	l.column += length
	l.source = l.source[length:]
	l.snippet += digits
	l.charAfter()

	return length
}

// escape validates the character after a backslash.
func (l *lexer) escape(extra string) {
	s := l.s

	l.expect(`\`)

	switch l.char {
	case "":
		s.StopAt(report.UnclosedString, l.line, l.column)

	case "/", `\`, "`", "b", "f", "n", "r", "t":
		l.charAfter()

	case "u":
		if l.expect("u") == "{" {
			if s.JSON {
				s.WarnAt(report.UnexpectedA, l.line, l.column, l.char)
			}

			if l.someDigits(rxHexs, false) > 5 {
				s.WarnAt(report.TooManyDigits, l.line, l.column)
			}

			if l.char != "}" {
				s.StopAt(report.ExpectedABeforeB, l.line, l.column, "}", l.char)
			}

			l.charAfter()

			return
		}

		l.charBefore()

		if l.someDigits(rxHexs, true) < 4 {
			s.WarnAt(report.ExpectedFourDigits, l.line, l.column)
		}

	default:
		if strings.Contains(extra, l.char) {
			l.charAfter()

			return
		}

		s.WarnAt(report.UnexpectedABeforeB, l.line, l.column, `\`, l.char)
	}
}

// create appends a token ending at the current column.
func (l *lexer) create(id syntax.ID, value string, identifier bool) *syntax.Token {
	s := l.s

	t := s.Tree.New()
	t.ID = id
	t.Value = value
	t.Identifier = identifier
	t.Line = l.line
	t.From = l.from
	t.Thru = l.column

	if id != syntax.Comment && id != syntax.Semicolon {
		l.directive = false
	}

	if prv := l.prv; prv != nil {
		if prv.Line == l.line && prv.Thru == l.from &&
			(id == syntax.Comment || id == syntax.Regexp || id == syntax.Div) &&
			(prv.ID == syntax.Comment || prv.ID == syntax.Regexp) {
			s.Warn(report.ExpectedSpaceAB, t.Nr, prv.Artifact(), t.Artifact())
		}

		if prv.ID == syntax.Dot && id == syntax.Number {
			s.Warn(report.ExpectedABeforeB, prv.Nr, "0", ".")
		}
	}

	if l.beforeSlash != nil && l.beforeSlash.ID == syntax.Dot && identifier {
		t.AfterDot = true
	}

	l.prv = t
	if t.ID != syntax.Comment {
		l.beforeSlash = t
	}

	return t
}

// punctuator creates the token for an operator or punctuation snippet.
func (l *lexer) punctuator(snippet string) *syntax.Token {
	if id, ok := syntax.Lookup(snippet); ok {
		return l.create(id, "", false)
	}

	return l.create(syntax.Punctuator, snippet, false)
}

// word creates the token for an identifier or keyword.
func (l *lexer) word(snippet string) *syntax.Token {
	id, ok := syntax.Lookup(snippet)
	if !ok {
		id = syntax.Ident
	}

	return l.create(id, snippet, true)
}
