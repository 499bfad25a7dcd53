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

// Package parser weaves the lexed tokens into a syntax tree using top down
// operator precedence.
package parser

import (
	"context"
	"regexp"
	"runtime/trace"

	"fillmore-labs.com/jslint/internal/config"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/scope"
	"fillmore-labs.com/jslint/internal/session"
	"fillmore-labs.com/jslint/internal/syntax"
)

var (
	rxIdentifier  = regexp.MustCompile(`^[a-zA-Z_$][a-zA-Z0-9_$]*$`)
	rxBadProperty = regexp.MustCompile(`^_|\$|Sync$|_$`)
	rxModule      = regexp.MustCompile(`^[a-zA-Z0-9_$:.@\-/]+$`)
	rxJSONNumber  = regexp.MustCompile(`^-?(?:0|[1-9]\d*)(?:\.\d*)?(?:[eE][\-+]?\d+)?$`)
)

// Parse builds the syntax tree of the session's tokens. The top level
// statements, or the JSON value, are stored in the session's Root.
func Parse(ctx context.Context, s *session.Session) (err error) {
	defer trace.StartRegion(ctx, "Parse").End()
	defer s.Recover(&err)

	p := &parser{
		s:     s,
		now:   syntax.InvalidNode,
		nxt:   syntax.InvalidNode,
		anon:  "anonymous",
		stack: scope.NewStack(s.Global),
	}

	p.advance()

	if s.JSON {
		s.Root = []syntax.Index{p.json()}
		p.expect(syntax.End)

		return nil
	}

	if s.Enabled(config.Browser) {
		// Concatenated scripts may start with a semicolon.
		if p.next().ID == syntax.Semicolon {
			p.expect(syntax.Semicolon)
		}
	} else if p.useStrict() {
		p.expect(syntax.String)
		p.expect(syntax.Semicolon)
	}

	s.Root = p.statements()
	p.expect(syntax.End)

	return nil
}

// parser is the cursor over the token list.
type parser struct {
	s *session.Session

	pos  int          // the position of the token after nxt
	now  syntax.Index // the current token
	nxt  syntax.Index // the next token, comments are skipped
	anon string       // the guessed name of the next anonymous function

	stack   scope.Stack
	varKind string // var or let, whichever was seen first
}

func (p *parser) tok(i syntax.Index) *syntax.Token {
	return p.s.Tree.At(i)
}

func (p *parser) current() *syntax.Token {
	return p.s.Tree.At(p.now)
}

func (p *parser) next() *syntax.Token {
	return p.s.Tree.At(p.nxt)
}

func (p *parser) warn(code report.Code, at syntax.Index, args ...string) {
	p.s.Warn(code, at, args...)
}

func (p *parser) stop(code report.Code, at syntax.Index, args ...string) syntax.Index {
	p.s.Stop(code, at, args...)

	return syntax.InvalidNode
}

func (p *parser) enabled(o config.Option) bool {
	return p.s.Enabled(o)
}

// advance promotes the next token, skipping comments.
func (p *parser) advance() {
	if p.now != syntax.InvalidNode {
		switch now := p.current(); {
		case now.Identifier && now.ID != syntax.FunctionKeyword:
			p.anon = now.Value

		case now.ID == syntax.String && rxIdentifier.MatchString(now.Value):
			p.anon = now.Value
		}
	}

	p.now = p.nxt

	for {
		p.nxt = syntax.Index(p.pos)
		p.pos++

		t := p.next()
		if t.ID != syntax.Comment {
			if t.ID == syntax.End {
				p.pos--
			}

			break
		}

		if p.s.JSON {
			p.warn(report.UnexpectedA, p.nxt)
		}
	}
}

// expect advances over a token of the given kind and stops otherwise.
func (p *parser) expect(id syntax.ID) {
	p.expectFrom(id, syntax.InvalidNode)
}

// expectFrom is expect for a closer, naming the opening token on mismatch.
func (p *parser) expectFrom(id syntax.ID, match syntax.Index) {
	if p.next().ID != id {
		p.mismatch(id.String(), match)
	}

	p.advance()
}

// expectWord advances over a contextual keyword.
func (p *parser) expectWord(word string) {
	if !p.next().Is(word) {
		p.mismatch(word, syntax.InvalidNode)
	}

	p.advance()
}

func (p *parser) mismatch(want string, match syntax.Index) {
	got := p.next().Artifact()
	if match == syntax.InvalidNode {
		p.stop(report.ExpectedAB, p.nxt, want, got)
	}

	m := p.tok(match)
	p.stop(report.ExpectedABFromCD, p.nxt, want, m.Artifact(), report.Itoa(m.Line), got)
}

// lookahead returns the token after the next one, skipping comments.
func (p *parser) lookahead() *syntax.Token {
	for i := p.pos; ; i++ {
		if t := p.tok(syntax.Index(i)); t.ID != syntax.Comment {
			return t
		}
	}
}

func (p *parser) useStrict() bool {
	next := p.next()

	return next.ID == syntax.String && next.Value == "use strict"
}

// enroll declares a name in the current function scope.
func (p *parser) enroll(name syntax.Index, role syntax.Role, readonly bool) {
	t := p.tok(name)
	fn := p.stack.Current()

	b := p.s.Bindings.New(t.Value, name, t.Line)
	b.Role = role
	b.Parent = fn
	b.Writable = !readonly
	b.Dead = true
	t.Binding = b

	if t.ID != syntax.Ident && t.ID != syntax.Ignore {
		p.warn(report.ReservedA, name)

		return
	}

	if earlier, ok := fn.Context[t.Value]; ok {
		p.warn(report.RedefinitionAB, name, t.Value, report.Itoa(earlier.Line))

		return
	}

	if earlier := p.stack.Outer(t.Value, false); earlier != nil {
		switch {
		case t.ID == syntax.Ignore:
			if earlier.Role == syntax.RoleVariable {
				p.warn(report.UnexpectedA, name)
			}

		case (role != syntax.RoleException || earlier.Role != syntax.RoleException) &&
			role != syntax.RoleParameter && role != syntax.RoleFunction:
			p.warn(report.RedefinitionAB, name, t.Value, report.Itoa(earlier.Line))
		}
	}

	fn.Context[t.Value] = b
}

// survey tallies a property name and returns it.
func (p *parser) survey(name syntax.Index) string {
	t := p.tok(name)

	var id string

	switch {
	case t.ID == syntax.String:
		id = t.Value
		if !rxIdentifier.MatchString(id) {
			return id
		}

	case t.ID == syntax.Backtick:
		id = t.ID.String()
		if len(t.Parts) == 1 {
			id = p.tok(t.Parts[0]).Value
			if !rxIdentifier.MatchString(id) {
				return id
			}
		}

	case !t.Identifier:
		p.stop(report.ExpectedIdentifierA, name)

	default:
		id = t.Value
	}

	if n, ok := p.s.Property[id]; ok {
		p.s.Property[id] = n + 1

		return id
	}

	switch {
	case p.s.Tenure != nil:
		if !p.s.Tenure[id] {
			p.warn(report.UnregisteredPropertyA, name)
		}

	case !p.enabled(config.Name) && t.Identifier && rxBadProperty.MatchString(id):
		p.warn(report.BadPropertyA, name)
	}

	p.s.Property[id] = 1

	return id
}

// ordered checks that names in destructuring patterns and object literals
// are sorted.
type ordered struct {
	p    *parser
	prev string
}

func (o *ordered) check(name syntax.Index) {
	now := o.prev
	o.prev = o.p.tok(name).Artifact()

	if !o.p.enabled(config.Unordered) && now > o.prev {
		o.p.warn(report.ExpectedABeforeB, name, o.prev, now)
	}
}
