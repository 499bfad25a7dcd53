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
	"fillmore-labs.com/jslint/internal/config"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/syntax"
)

type blockKind uint8

const (
	blockPlain  blockKind = iota
	blockBody             // a function body
	blockIgnore           // may be empty
	blockNaked            // the opening brace is already consumed
)

// semicolon consumes the semicolon that ends a statement.
func (p *parser) semicolon() {
	if p.next().ID == syntax.Semicolon {
		p.expect(syntax.Semicolon)
	} else {
		now := p.current()
		p.s.WarnAt(report.ExpectedAB, now.Line, now.Thru+1, ";", p.next().Artifact())
	}

	p.anon = "anonymous"
}

// statement parses one statement with an optional label.
func (p *parser) statement() syntax.Index {
	p.advance()

	label := syntax.InvalidNode

	if p.current().Identifier && p.next().ID == syntax.Colon {
		label = p.now
		if p.current().ID == syntax.Ignore {
			p.warn(report.UnexpectedA, label)
		}

		p.expect(syntax.Colon)

		switch p.next().ID {
		case syntax.Do, syntax.For, syntax.Switch, syntax.While:
			p.enroll(label, syntax.RoleLabel, true)

			b := p.tok(label).Binding
			b.Init = true
			b.Dead = false

			stmt := p.statement()
			t := p.tok(stmt)
			t.Label = label
			t.Statement = true

			return stmt
		}

		p.advance()
		p.warn(report.UnexpectedLabelA, label)
	}

	first := p.current()
	first.Statement = true

	var stmt syntax.Index

	// import( is a dynamic import expression.
	if sym := &grammar[first.ID]; sym.fud != nil && (first.ID != syntax.Import || p.next().ID != syntax.LParen) {
		stmt = sym.fud(p)
	} else {
		stmt = p.expression(bpNone, true)
		if t := p.tok(stmt); t.Wrapped && t.ID != syntax.LParen {
			p.warn(report.UnexpectedA, first.Nr)
		}

		p.semicolon()
	}

	if label != syntax.InvalidNode {
		if b := p.tok(label).Binding; b != nil {
			b.Dead = true
		}
	}

	return stmt
}

// statements parses statements up to a closing token. Statements following a
// disrupting statement are unreachable.
func (p *parser) statements() []syntax.Index {
	var list []syntax.Index

	disrupt := false

	for {
		switch p.next().ID {
		case syntax.RBrace, syntax.Case, syntax.Default, syntax.Else, syntax.End:
			return list
		}

		stmt := p.statement()
		list = append(list, stmt)

		if disrupt {
			p.warn(report.UnreachableA, stmt)
		}

		disrupt = p.tok(stmt).Disrupt
	}
}

func (p *parser) notTopLevel(thing syntax.Index) {
	if p.stack.Current() == p.s.Global {
		p.warn(report.UnexpectedAtTopLevelA, thing)
	}
}

// block parses a sequence of statements wrapped in braces.
func (p *parser) block(kind blockKind) syntax.Index {
	if kind != blockNaked {
		p.expect(syntax.LBrace)
	}

	b := p.current()
	b.Arity = syntax.ArityStatement
	b.Body = kind == blockBody

	// Top level function bodies may include the "use strict" pragma.
	if kind == blockBody && p.stack.Depth() == 1 && p.useStrict() {
		p.next().Statement = true
		p.expect(syntax.String)
		p.expect(syntax.Semicolon)
	}

	b.Block = p.statements()
	if n := len(b.Block); n > 0 {
		b.Disrupt = p.tok(b.Block[n-1]).Disrupt
	} else {
		if !p.enabled(config.Devel) && kind != blockIgnore {
			p.warn(report.EmptyBlock, b.Nr)
		}

		b.Disrupt = false
	}

	p.expect(syntax.RBrace)

	return b.Nr
}

func (p *parser) breakStatement() syntax.Index {
	t := p.current()
	fn := p.stack.Current()

	if fn.Loop < 1 && fn.Switch < 1 || fn.Finally > 0 {
		p.warn(report.UnexpectedA, t.Nr)
	}

	t.Disrupt = true

	if next := p.next(); next.Identifier && t.Line == next.Line {
		switch label, ok := fn.Context[next.Value]; {
		case ok && label.Role == syntax.RoleLabel && !label.Dead:
			label.Used++

		case ok && label.Dead:
			p.warn(report.OutOfScopeA, p.nxt)

		default:
			p.warn(report.NotLabelA, p.nxt)
		}

		t.Label = p.nxt
		p.advance()
	}

	p.expect(syntax.Semicolon)

	return t.Nr
}

func (p *parser) continueStatement() syntax.Index {
	t := p.current()

	if fn := p.stack.Current(); fn.Loop < 1 || fn.Finally > 0 {
		p.warn(report.UnexpectedA, t.Nr)
	}

	p.notTopLevel(t.Nr)
	t.Disrupt = true
	p.warn(report.UnexpectedA, t.Nr)
	p.expect(syntax.Semicolon)

	return t.Nr
}

// variables parses var, let and const.
func (p *parser) variables() syntax.Index {
	t := p.current()
	isConst := t.ID == syntax.Const
	t.Names = nil

	// A program may use var or let, but not both.
	if !isConst {
		switch p.varKind {
		case "":
			p.varKind = t.Value

		case t.Value:

		default:
			p.warn(report.ExpectedAB, t.Nr, p.varKind, t.Value)
		}
	}

	fn := p.stack.Current()
	if fn.Switch > 0 {
		p.warn(report.VarSwitch, t.Nr)
	}

	if fn.Loop > 0 && t.ID == syntax.Var {
		p.warn(report.VarLoop, t.Nr)
	}

	switch next := p.next(); {
	case next.ID == syntax.LBrace && t.ID != syntax.Var:
		p.expect(syntax.LBrace)
		p.objectBinding(t, next, isConst)
		p.expect(syntax.RBrace)
		p.expect(syntax.Assign)
		t.Expr = []syntax.Index{p.expression(bpNone, false)}

	case next.ID == syntax.LBracket && t.ID != syntax.Var:
		p.expect(syntax.LBracket)
		p.arrayBinding(t, next, isConst)
		p.expect(syntax.RBracket)
		p.expect(syntax.Assign)
		t.Expr = []syntax.Index{p.expression(bpNone, false)}

	case next.Identifier:
		name := p.nxt
		p.advance()

		if next.ID == syntax.Ignore {
			p.warn(report.UnexpectedA, name)
		}

		p.enroll(name, syntax.RoleVariable, isConst)

		if p.next().ID == syntax.Assign || isConst {
			p.expect(syntax.Assign)

			next.Binding.Dead = false
			next.Binding.Init = true
			next.Expr = []syntax.Index{p.expression(bpNone, false)}
		}

		t.Names = append(t.Names, name)

	default:
		p.stop(report.ExpectedIdentifierA, p.nxt)
	}

	p.semicolon()

	return t.Nr
}

// objectBinding parses the names of a destructuring object declaration.
func (p *parser) objectBinding(t, brace *syntax.Token, isConst bool) {
	order := ordered{p: p}

	for {
		if !p.next().Identifier {
			p.stop(report.ExpectedIdentifierA, p.nxt)
		}

		name := p.nxt
		p.survey(name)
		order.check(name)
		p.advance()

		decl := name
		if p.next().ID == syntax.Colon {
			p.expect(syntax.Colon)

			if !p.next().Identifier {
				p.stop(report.ExpectedIdentifierA, p.nxt)
			}

			decl = p.nxt
			p.next().Label = name
			brace.Open = true
		}

		t.Names = append(t.Names, decl)
		p.enroll(decl, syntax.RoleVariable, isConst)

		if decl != name {
			p.advance()
		}

		d := p.tok(decl)
		d.Binding.Dead = false
		d.Binding.Init = true

		if p.next().ID == syntax.Assign {
			p.expect(syntax.Assign)
			d.Expr = []syntax.Index{p.expression(bpNone, false)}
			brace.Open = true
		}

		if p.next().ID != syntax.Comma {
			return
		}

		p.expect(syntax.Comma)
	}
}

// arrayBinding parses the names of a destructuring array declaration.
func (p *parser) arrayBinding(t, bracket *syntax.Token, isConst bool) {
	for {
		ellipsis := false
		if p.next().ID == syntax.Spread {
			ellipsis = true

			p.expect(syntax.Spread)
		}

		if !p.next().Identifier {
			p.stop(report.ExpectedIdentifierA, p.nxt)
		}

		name := p.next()
		p.advance()

		t.Names = append(t.Names, name.Nr)
		p.enroll(name.Nr, syntax.RoleVariable, isConst)
		name.Binding.Dead = false
		name.Binding.Init = true

		if ellipsis {
			name.Ellipsis = true

			return
		}

		if p.next().ID == syntax.Assign {
			p.expect(syntax.Assign)
			name.Expr = []syntax.Index{p.expression(bpNone, false)}
			bracket.Open = true
		}

		if p.next().ID != syntax.Comma {
			return
		}

		p.expect(syntax.Comma)
	}
}

func (p *parser) debugger() syntax.Index {
	if !p.enabled(config.Devel) {
		p.warn(report.UnexpectedA, p.now)
	}

	t := p.now
	p.semicolon()

	return t
}

func (p *parser) deleteStatement() syntax.Index {
	t := p.current()

	value := p.expression(bpNone, false)
	if v := p.tok(value); v.ID != syntax.Dot && v.ID != syntax.LBracket || v.Arity != syntax.ArityBinary {
		p.stop(report.ExpectedAB, value, ".", v.Artifact())
	}

	t.Expr = []syntax.Index{value}
	p.semicolon()

	return t.Nr
}

func (p *parser) doStatement() syntax.Index {
	t := p.current()
	p.notTopLevel(t.Nr)

	fn := p.stack.Current()
	fn.Loop++

	body := p.block(blockPlain)
	t.Block = []syntax.Index{body}
	p.expect(syntax.While)
	t.Expr = []syntax.Index{p.condition()}
	p.semicolon()

	if p.tok(body).Disrupt {
		p.warn(report.WeirdLoop, t.Nr)
	}

	fn.Loop--

	return t.Nr
}

func (p *parser) export() syntax.Index {
	t := p.current()
	t.Expr = nil

	exports := p.s.Exports

	switch next := p.next(); next.ID {
	case syntax.Default:
		if _, ok := exports["default"]; ok {
			p.warn(report.DuplicateA, p.nxt)
		}

		p.expect(syntax.Default)

		thing := p.expression(bpNone, false)
		if !p.frozen(thing) {
			p.warn(report.FreezeExports, thing)
		} else {
			p.semicolon()
		}

		exports["default"] = thing
		t.Expr = append(t.Expr, thing)

	case syntax.FunctionKeyword:
		p.warn(report.FreezeExports, p.nxt)

		thing := p.statement()
		f := p.tok(thing)
		name := p.tok(f.Name)
		name.Binding.Used++

		if _, ok := exports[name.Value]; ok {
			p.warn(report.DuplicateA, f.Name)
		}

		exports[name.Value] = thing
		t.Expr = append(t.Expr, thing)
		f.Statement = false
		f.Arity = syntax.ArityUnary

	case syntax.Var, syntax.Let, syntax.Const:
		p.warn(report.UnexpectedA, p.nxt)
		p.statement()

	case syntax.LBrace:
		p.expect(syntax.LBrace)

		for {
			p.exportName()

			if p.next().ID != syntax.Comma {
				break
			}

			p.expect(syntax.Comma)
		}

		p.expect(syntax.RBrace)
		p.semicolon()

	default:
		p.stop(report.UnexpectedA, p.nxt)
	}

	p.s.Module = true

	return t.Nr
}

// frozen reports whether thing is Object.freeze(...).
func (p *parser) frozen(thing syntax.Index) bool {
	t := p.tok(thing)
	if t.ID != syntax.LParen || len(t.Expr) == 0 {
		return false
	}

	callee := p.tok(t.Expr[0])
	if callee.ID != syntax.Dot {
		return false
	}

	return p.tok(callee.Operand()).Is("Object") && p.tok(callee.Name).Is("freeze")
}

func (p *parser) exportName() {
	next := p.next()
	if !next.Identifier {
		p.stop(report.ExpectedIdentifierA, p.nxt)
	}

	if b, ok := p.s.Global.Context[next.Value]; !ok {
		p.warn(report.UnexpectedA, p.nxt)
	} else {
		b.Used++

		if _, dup := p.s.Exports[next.Value]; dup {
			p.warn(report.DuplicateA, p.nxt)
		}

		p.s.Exports[next.Value] = b.Decl
	}

	p.advance()
}

func (p *parser) forStatement() syntax.Index {
	t := p.current()

	if !p.enabled(config.For) {
		p.warn(report.UnexpectedA, t.Nr)
	}

	p.notTopLevel(t.Nr)

	fn := p.stack.Current()
	fn.Loop++

	p.expect(syntax.LParen)
	p.current().Free = true

	switch p.next().ID {
	case syntax.Semicolon:
		p.stop(report.ExpectedAB, t.Nr, "while (", "for (;")

	case syntax.Var, syntax.Let, syntax.Const:
		p.stop(report.UnexpectedA, p.nxt)
	}

	first := p.expression(bpNone, false)
	if f := p.tok(first); f.ID == syntax.In {
		if p.tok(f.Expr[0]).Arity != syntax.ArityVariable {
			p.warn(report.BadAssignmentA, f.Expr[0])
		}

		t.Name = f.Expr[0]
		t.Expr = []syntax.Index{f.Expr[1]}
		p.warn(report.ExpectedAB, t.Nr, "Object.keys", "for in")
	} else {
		t.Initial = first
		p.expect(syntax.Semicolon)
		t.Expr = []syntax.Index{p.expression(bpNone, false)}
		p.expect(syntax.Semicolon)

		t.Inc = p.expression(bpNone, false)
		if p.tok(t.Inc).ID == syntax.Inc {
			p.warn(report.ExpectedAB, t.Inc, "+= 1", "++")
		}
	}

	p.expect(syntax.RParen)

	body := p.block(blockPlain)
	t.Block = []syntax.Index{body}

	if p.tok(body).Disrupt {
		p.warn(report.WeirdLoop, t.Nr)
	}

	fn.Loop--

	return t.Nr
}

func (p *parser) ifStatement() syntax.Index {
	t := p.current()
	t.Expr = []syntax.Index{p.condition()}

	body := p.block(blockPlain)
	t.Block = []syntax.Index{body}

	if p.next().ID != syntax.Else {
		return t.Nr
	}

	p.expect(syntax.Else)
	elseToken := p.now

	var alternative syntax.Index
	if p.next().ID == syntax.If {
		alternative = p.statement()
	} else {
		alternative = p.block(blockPlain)
	}

	t.Else = []syntax.Index{alternative}

	if p.tok(body).Disrupt {
		if p.tok(alternative).Disrupt {
			t.Disrupt = true
		} else {
			p.warn(report.UnexpectedA, elseToken)
		}
	}

	return t.Nr
}

func (p *parser) importStatement() syntax.Index {
	t := p.current()

	if d := p.s.GlobalDirective; d != syntax.InvalidNode && !p.s.Module {
		p.warn(report.UnexpectedDirectiveA, d, p.tok(d).Directive)
	}

	p.s.Module = true

	if p.next().Identifier {
		name := p.nxt
		p.advance()

		if p.current().ID == syntax.Ignore {
			p.warn(report.UnexpectedA, name)
		}

		p.enroll(name, syntax.RoleVariable, true)
		t.Name = name
	} else {
		t.Names = []syntax.Index{}

		p.expect(syntax.LBrace)

		for p.next().ID != syntax.RBrace {
			if !p.next().Identifier {
				p.stop(report.ExpectedIdentifierA, p.nxt)
			}

			name := p.nxt
			p.advance()

			if p.current().ID == syntax.Ignore {
				p.warn(report.UnexpectedA, name)
			}

			p.enroll(name, syntax.RoleVariable, true)
			t.Names = append(t.Names, name)

			if p.next().ID != syntax.Comma {
				break
			}

			p.expect(syntax.Comma)
		}

		p.expect(syntax.RBrace)
	}

	p.expectWord("from")
	p.expect(syntax.String)
	t.Import = p.now

	module := p.current().Value
	if !rxModule.MatchString(module) {
		p.warn(report.BadModuleNameA, p.now)
	}

	p.s.Froms = append(p.s.Froms, module)
	p.semicolon()

	return t.Nr
}

func (p *parser) returnStatement() syntax.Index {
	t := p.current()
	p.notTopLevel(t.Nr)

	if p.stack.Current().Finally > 0 {
		p.warn(report.UnexpectedA, t.Nr)
	}

	t.Disrupt = true

	if p.next().ID != syntax.Semicolon && t.Line == p.next().Line {
		t.Expr = []syntax.Index{p.expression(bpComma, false)}
	}

	p.expect(syntax.Semicolon)

	return t.Nr
}

func (p *parser) switchStatement() syntax.Index {
	t := p.current()
	p.notTopLevel(t.Nr)

	fn := p.stack.Current()
	if fn.Finally > 0 {
		p.warn(report.UnexpectedA, t.Nr)
	}

	fn.Switch++

	p.expect(syntax.LParen)
	p.current().Free = true
	t.Expr = []syntax.Index{p.expression(bpNone, false)}
	p.expect(syntax.RParen)
	p.expect(syntax.LBrace)

	var (
		cases, dups []syntax.Index
		disrupt     = true
	)

	for {
		c := p.next()
		c.Arity = syntax.ArityStatement
		c.Expr = nil

		for {
			p.expect(syntax.Case)
			p.current().Switch = true

			exp := p.expression(bpNone, false)
			for _, dup := range dups {
				if syntax.AreSimilar(&p.s.Tree, dup, exp) {
					p.warn(report.UnexpectedA, exp)

					break
				}
			}

			dups = append(dups, exp)
			c.Expr = append(c.Expr, exp)
			p.expect(syntax.Colon)

			if p.next().ID != syntax.Case {
				break
			}
		}

		stmts := p.statements()
		if len(stmts) == 0 {
			p.warn(report.ExpectedStatementsA, p.nxt)

			break
		}

		c.Block = stmts
		cases = append(cases, c.Nr)

		if last := p.tok(stmts[len(stmts)-1]); last.Disrupt {
			if last.ID == syntax.Break && last.Label == syntax.InvalidNode {
				disrupt = false
			}
		} else {
			p.warn(report.ExpectedABeforeB, p.nxt, "break;", p.next().Artifact())
		}

		if p.next().ID != syntax.Case {
			break
		}
	}

	t.Block = cases

	if p.next().ID == syntax.Default {
		def := p.nxt
		p.expect(syntax.Default)
		p.current().Switch = true
		p.expect(syntax.Colon)

		t.Else = p.statements()
		if n := len(t.Else); n == 0 {
			p.warn(report.UnexpectedA, def)

			disrupt = false
		} else {
			last := p.tok(t.Else[n-1])
			if last.ID == syntax.Break && last.Label == syntax.InvalidNode {
				p.warn(report.UnexpectedA, last.Nr)

				last.Disrupt = false
			}

			disrupt = disrupt && last.Disrupt
		}
	} else {
		disrupt = false
	}

	p.expectFrom(syntax.RBrace, t.Nr)
	fn.Switch--
	t.Disrupt = disrupt

	return t.Nr
}

func (p *parser) throw() syntax.Index {
	t := p.current()
	t.Disrupt = true
	t.Expr = []syntax.Index{p.expression(bpComma, false)}
	p.semicolon()

	if p.stack.Current().Try > 0 {
		p.warn(report.UnexpectedA, t.Nr)
	}

	return t.Nr
}

func (p *parser) try() syntax.Index {
	t := p.current()
	fn := p.stack.Current()

	if fn.Try > 0 {
		p.warn(report.UnexpectedA, t.Nr)
	}

	fn.Try++

	body := p.block(blockPlain)
	t.Block = []syntax.Index{body}
	disrupt := p.tok(body).Disrupt

	if p.next().ID == syntax.Catch {
		p.expect(syntax.Catch)
		t.Catch = p.now
		p.catch(fn)

		if !p.tok(p.tok(t.Catch).Block[0]).Disrupt {
			disrupt = false
		}
	} else {
		p.warn(report.ExpectedABeforeB, p.nxt, "catch", p.next().Artifact())
	}

	if p.next().ID == syntax.Finally {
		fn.Finally++

		p.expect(syntax.Finally)

		final := p.block(blockPlain)
		t.Else = []syntax.Index{final}
		disrupt = p.tok(final).Disrupt
		fn.Finally--
	}

	t.Disrupt = disrupt
	fn.Try--

	return t.Nr
}

// catch parses a catch clause, which has its own scope for the exception
// name.
func (p *parser) catch(outer *syntax.Function) {
	c := p.current()

	f := &syntax.Function{
		Token:   c.Nr,
		Name:    syntax.InvalidNode,
		Anon:    "catch",
		Line:    c.Line,
		Context: make(map[string]*syntax.Binding),
		Level:   outer.Level,
		Async:   outer.Async,
		Loop:    outer.Loop,
		Switch:  outer.Switch,
		Finally: outer.Finally,
	}
	c.Fn = f

	p.stack.Push(f)

	kind := blockIgnore

	if p.next().ID == syntax.LParen {
		p.expect(syntax.LParen)

		if !p.next().Identifier {
			p.stop(report.ExpectedIdentifierA, p.nxt)
		}

		if p.next().ID != syntax.Ignore {
			kind = blockPlain
			c.Name = p.nxt
			f.Name = p.nxt
			p.enroll(p.nxt, syntax.RoleException, true)
		}

		p.advance()
		p.expect(syntax.RParen)
	}

	c.Block = []syntax.Index{p.block(kind)}

	p.stack.Pop()
	outer.Async = max(outer.Async, f.Async)
}

func (p *parser) while() syntax.Index {
	t := p.current()
	p.notTopLevel(t.Nr)

	fn := p.stack.Current()
	fn.Loop++

	t.Expr = []syntax.Index{p.condition()}

	body := p.block(blockPlain)
	t.Block = []syntax.Index{body}

	if p.tok(body).Disrupt {
		p.warn(report.WeirdLoop, t.Nr)
	}

	fn.Loop--

	return t.Nr
}
