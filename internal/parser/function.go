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

package parser

import (
	"strings"

	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/syntax"
)

// parameterList parses the parameters of a function up to and including the
// closing parenthesis. It returns the parameters and the signature.
func (p *parser) parameterList() ([]syntax.Index, string) {
	var (
		list      []syntax.Index
		signature strings.Builder
	)

	optional := syntax.InvalidNode

	requiredAfterOptional := func(at syntax.Index) {
		if optional != syntax.InvalidNode {
			p.warn(report.RequiredAOptionalB, at, p.tok(at).Artifact(), p.tok(optional).Artifact())
		}
	}

	signature.WriteString("(")

	more := p.next().ID != syntax.RParen && p.next().ID != syntax.End
	for more {
		var param syntax.Index

		switch p.next().ID {
		case syntax.LBrace:
			requiredAfterOptional(p.nxt)

			param = p.nxt
			p.expect(syntax.LBrace)
			signature.WriteString("{")
			p.objectPattern(param, &signature)
			p.expect(syntax.RBrace)
			signature.WriteString("}")

		case syntax.LBracket:
			requiredAfterOptional(p.nxt)

			param = p.nxt
			p.expect(syntax.LBracket)
			signature.WriteString("[]")
			p.arrayPattern(param)
			p.expect(syntax.RBracket)

		default:
			ellipsis := false
			if p.next().ID == syntax.Spread {
				ellipsis = true

				signature.WriteString("...")
				p.expect(syntax.Spread)
				requiredAfterOptional(p.nxt)
			}

			if !p.next().Identifier {
				p.stop(report.ExpectedIdentifierA, p.nxt)
			}

			param = p.nxt
			p.advance()
			signature.WriteString(p.tok(param).Value)

			t := p.tok(param)
			switch {
			case ellipsis:
				t.Ellipsis = true

			case p.next().ID == syntax.Assign:
				optional = param

				p.expect(syntax.Assign)
				t.Expr = []syntax.Index{p.expression(bpNone, false)}

			default:
				requiredAfterOptional(param)
			}

			if ellipsis {
				list = append(list, param)
				more = false

				continue
			}
		}

		list = append(list, param)

		more = p.next().ID == syntax.Comma
		if more {
			p.expect(syntax.Comma)
			signature.WriteString(", ")
		}
	}

	p.expect(syntax.RParen)
	signature.WriteString(")")

	return list, signature.String()
}

// objectPattern parses the names of a destructured object parameter.
func (p *parser) objectPattern(param syntax.Index, signature *strings.Builder) {
	pt := p.tok(param)
	pt.Names = nil
	order := ordered{p: p}

	for {
		sub := p.nxt
		if !p.next().Identifier {
			p.stop(report.ExpectedIdentifierA, p.nxt)
		}

		p.survey(sub)
		order.check(sub)
		p.advance()
		signature.WriteString(p.tok(sub).Value)

		if p.next().ID == syntax.Colon {
			p.expect(syntax.Colon)
			p.advance()
			p.current().Label = sub

			sub = p.now
			if !p.current().Identifier {
				p.stop(report.ExpectedIdentifierA, p.nxt)
			}
		}

		if p.next().ID == syntax.Assign {
			p.expect(syntax.Assign)
			p.tok(sub).Expr = []syntax.Index{p.expression(bpNone, false)}
			pt.Open = true
		}

		pt.Names = append(pt.Names, sub)

		if p.next().ID != syntax.Comma {
			return
		}

		p.expect(syntax.Comma)
		signature.WriteString(", ")
	}
}

// arrayPattern parses the names of a destructured array parameter.
func (p *parser) arrayPattern(param syntax.Index) {
	pt := p.tok(param)
	pt.Names = nil

	for {
		sub := p.nxt
		if !p.next().Identifier {
			p.stop(report.ExpectedIdentifierA, p.nxt)
		}

		p.advance()
		pt.Names = append(pt.Names, sub)

		if p.next().ID == syntax.Assign {
			p.expect(syntax.Assign)
			p.tok(sub).Expr = []syntax.Index{p.expression(bpNone, false)}
			pt.Open = true
		}

		if p.next().ID != syntax.Comma {
			return
		}

		p.expect(syntax.Comma)
	}
}

// function parses a function literal, statement or method. Methods pass their
// name, async functions an async count of 1.
func (p *parser) function(fn syntax.Index, method string, async int) syntax.Index {
	t := p.tok(fn)
	outer := p.stack.Current()

	f := &syntax.Function{
		Token:   fn,
		Name:    syntax.InvalidNode,
		Anon:    method,
		Line:    t.Line,
		Context: make(map[string]*syntax.Binding),
		Level:   outer.Level + 1,
		Async:   async,
	}

	switch {
	case method != "":
		// Methods are named by their property.

	case t.Arity == syntax.ArityStatement:
		// A function statement must have a name that will be in the parent's scope.
		if !p.next().Identifier {
			p.stop(report.ExpectedIdentifierA, p.nxt)
		}

		f.Name = p.nxt
		p.enroll(f.Name, syntax.RoleVariable, true)

		b := p.next().Binding
		b.Calls = make(map[string]syntax.Index)
		b.Init = true

		p.advance()

	default:
		f.Anon = p.anon
		if p.next().Identifier {
			f.Name = p.nxt
			p.advance()
		}
	}

	t.Name = f.Name
	t.Fn = f

	if outer.Loop > 0 {
		p.warn(report.FunctionInLoop, fn)
	}

	p.stack.Push(f)
	p.s.Functions = append(p.s.Functions, f)

	if t.Arity != syntax.ArityStatement && f.Name != syntax.InvalidNode {
		p.enroll(f.Name, syntax.RoleFunction, true)

		b := p.tok(f.Name).Binding
		b.Dead = false
		b.Init = true
		b.Used = 1
	}

	p.expect(syntax.LParen)

	paren := p.current()
	paren.Free = false
	paren.Arity = syntax.ArityFunction

	f.Parameters, f.Signature = p.parameterList()
	p.enrollParameters(f.Parameters)

	t.Block = []syntax.Index{p.block(blockBody)}

	if t.Arity == syntax.ArityStatement && p.next().Line == p.current().Line {
		p.stop(report.UnexpectedA, p.nxt)
	}

	switch p.next().ID {
	case syntax.Dot, syntax.OptionalChain, syntax.LBracket:
		p.warn(report.UnexpectedA, p.nxt)
	}

	p.stack.Pop()

	return fn
}

// enrollParameters declares the parameters of a function, including the
// names of destructured parameters.
func (p *parser) enrollParameters(params []syntax.Index) {
	for _, param := range params {
		if t := p.tok(param); !t.Identifier {
			p.enrollParameters(t.Names)

			continue
		}

		p.enroll(param, syntax.RoleParameter, false)
	}
}

func (p *parser) async() syntax.Index {
	arity := p.current().Arity

	p.expect(syntax.FunctionKeyword)
	fn := p.now
	p.current().Arity = arity
	p.function(fn, "", 1)

	if p.tok(fn).Fn.Async == 1 {
		p.warn(report.MissingAwaitStatement, fn)
	}

	return fn
}

func (p *parser) await() syntax.Index {
	t := p.current()

	if fn := p.stack.Current(); fn.Async == 0 {
		p.warn(report.UnexpectedA, t.Nr)
	} else {
		fn.Async++
	}

	if t.Arity == syntax.ArityStatement {
		t.Block = []syntax.Index{p.expression(bpNone, false)}
		p.semicolon()
	} else {
		t.Expr = []syntax.Index{p.expression(bpNone, false)}
	}

	return t.Nr
}

// arrow parses the body of an arrow function after its parameter list.
func (p *parser) arrow(params []syntax.Index, signature string) syntax.Index {
	p.expect(syntax.Arrow)

	t := p.current()
	t.Arity = syntax.ArityBinary
	outer := p.stack.Current()

	f := &syntax.Function{
		Token:      t.Nr,
		Name:       syntax.InvalidNode,
		Anon:       "=>",
		Line:       t.Line,
		Context:    make(map[string]*syntax.Binding),
		Parameters: params,
		Signature:  signature,
		Level:      outer.Level + 1,
	}
	t.Fn = f

	p.s.Functions = append(p.s.Functions, f)

	if outer.Loop > 0 {
		p.warn(report.FunctionInLoop, t.Nr)
	}

	p.stack.Push(f)

	// Arrow parameters are read-only, destructuring is not supported.
	for _, param := range params {
		p.enroll(param, syntax.RoleParameter, true)
	}

	if p.next().ID == syntax.LBrace {
		p.warn(report.ExpectedAB, t.Nr, "function", "=>")
		t.Block = []syntax.Index{p.block(blockBody)}
	} else {
		t.Expr = []syntax.Index{p.expression(bpNone, false)}
	}

	p.stack.Pop()

	return t.Nr
}
