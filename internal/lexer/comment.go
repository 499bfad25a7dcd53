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

var (
	rxTodo             = regexp.MustCompile(`\b(?:todo|TO\s?DO|HACK)\b`)
	rxDirective        = regexp.MustCompile(`^(jslint|property|global)\s+(.*)$`)
	rxDirectivePart    = regexp.MustCompile(`^([a-zA-Z$_][a-zA-Z0-9$_]*)(?::\s*(true|false))?,?\s*(.*)$`)
	rxSlashStarOrSlash = regexp.MustCompile(`/\*|/$`)
)

func (l *lexer) lineComment() *syntax.Token {
	body := l.source
	l.source = ""

	t := l.comment(body, body)
	if l.mega {
		l.s.Warn(report.UnexpectedComment, t.Nr, "`")
	}

	return t
}

func (l *lexer) blockComment() *syntax.Token {
	s := l.s

	var lines []string

	if strings.HasPrefix(l.source, "/") {
		s.WarnAt(report.UnexpectedA, l.line, l.column, "/")
	}

	var end int
	for {
		if l.source != "" {
			if end = strings.Index(l.source, "*/"); end >= 0 {
				break
			}

			if j := strings.Index(l.source, "/*"); j >= 0 {
				s.WarnAt(report.NestedComment, l.line, l.column+utf8.RuneCountInString(l.source[:j]))
			}
		}

		lines = append(lines, l.source)

		if !l.nextLine() {
			s.StopAt(report.UnclosedComment, l.line, l.column)
		}
	}

	last := l.source[:end]
	if loc := rxSlashStarOrSlash.FindStringIndex(last); loc != nil {
		s.WarnAt(report.NestedComment, l.line, l.column+utf8.RuneCountInString(last[:loc[0]]))
	}

	lines = append(lines, last)
	l.column += utf8.RuneCountInString(last) + 2
	l.source = l.source[end+2:]

	return l.comment(strings.Join(lines, "\n"), strings.Join(lines, " "))
}

// comment creates a comment token and processes TODO markers and directives.
// text is the comment body with lines joined by spaces.
func (l *lexer) comment(value, text string) *syntax.Token {
	s := l.s

	t := l.create(syntax.Comment, value, false)

	if !s.Enabled(config.Devel) && rxTodo.MatchString(text) {
		s.Warn(report.TodoComment, t.Nr)
	}

	if result := rxDirective.FindStringSubmatch(text); result != nil {
		if !l.directive {
			s.WarnAt(report.MisplacedDirectiveA, l.line, l.from, result[1])
		} else {
			t.Directive = result[1]
			l.parseDirective(t, result[2])
		}

		s.Directives = append(s.Directives, t.Nr)
	}

	return t
}

// parseDirective processes the comma separated items of a directive.
func (l *lexer) parseDirective(t *syntax.Token, body string) {
	s := l.s

	for {
		result := rxDirectivePart.FindStringSubmatch(body)
		if result == nil {
			break
		}

		name, value := result[1], result[2]

		switch t.Directive {
		case "jslint":
			option, ok := config.ParseOption(name)
			if !ok {
				s.Warn(report.BadOptionA, t.Nr, name)

				break
			}

			enable := value != "false"
			s.Options.Set(option, enable)

			if enable {
				s.AddGlobals(option.Globals()...)
			}

		case "property":
			if s.Tenure == nil {
				s.Tenure = make(map[string]bool)
			}

			s.Tenure[name] = true

		case "global":
			if value != "" {
				s.Warn(report.BadOptionA, t.Nr, name+":"+value)
			}

			s.AddGlobals(name)
			s.GlobalDirective = t.Nr
		}

		body = result[3]
	}

	if body != "" {
		s.Stop(report.BadDirectiveA, t.Nr, body)
	}
}
