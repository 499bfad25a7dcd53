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
	"math"

	"fillmore-labs.com/jslint/internal/config"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/syntax"
)

type (
	nudFunc func(p *parser) syntax.Index
	ledFunc func(p *parser, left syntax.Index) syntax.Index
)

// symbol is the grammar of one token kind.
type symbol struct {
	lbp int     // left binding power
	nud nudFunc // null denotation, for prefix positions
	led ledFunc // left denotation, for infix positions
	fud nudFunc // statement denotation
}

// grammar is indexed by token kind. Plain identifiers have no entry.
var grammar [syntax.NumIDs]symbol

const (
	bpNone    = 0
	bpComma   = 10
	bpAssign  = 20
	bpPrefix  = 150
	bpCall    = 160
	bpMember  = 170
	bpNoInfix = math.MaxInt
)

func assignment(id syntax.ID) {
	grammar[id].lbp = bpAssign
	grammar[id].led = (*parser).assignment
}

func infix(id syntax.ID, bp int) {
	grammar[id].lbp = bp
	grammar[id].led = func(p *parser, left syntax.Index) syntax.Index {
		return p.binary(left, bp)
	}
}

func infixr(id syntax.ID, bp int) {
	grammar[id].lbp = bp
	grammar[id].led = func(p *parser, left syntax.Index) syntax.Index {
		return p.binary(left, bp-1)
	}
}

// special registers an infix operator with its own left denotation.
func special(id syntax.ID, bp int, led ledFunc) {
	grammar[id].lbp = bp
	grammar[id].led = func(p *parser, left syntax.Index) syntax.Index {
		p.current().Arity = syntax.ArityBinary

		return led(p, left)
	}
}

// prefix registers a prefix operator, with the default operand parser when
// nud is nil.
func prefix(id syntax.ID, nud nudFunc) {
	grammar[id].nud = func(p *parser) syntax.Index {
		p.current().Arity = syntax.ArityUnary
		if nud != nil {
			return nud(p)
		}

		return p.unary()
	}
}

func constant(id syntax.ID, nud nudFunc) {
	if nud == nil {
		nud = func(p *parser) syntax.Index {
			p.current().Constant = true

			return p.now
		}
	}

	grammar[id].nud = nud
}

func stmt(id syntax.ID, fud nudFunc) {
	grammar[id].fud = func(p *parser) syntax.Index {
		p.current().Arity = syntax.ArityStatement

		return fud(p)
	}
}

func init() {
	for _, id := range []syntax.ID{syntax.Number, syntax.Regexp, syntax.String,
		syntax.False, syntax.Infinity, syntax.NaN, syntax.Null, syntax.True, syntax.Undefined} {
		constant(id, nil)
	}

	constant(syntax.Arguments, (*parser).unexpected)
	constant(syntax.Eval, (*parser).evaluation)
	constant(syntax.FunctionCtor, (*parser).evaluation)
	constant(syntax.Ignore, (*parser).unexpected)
	constant(syntax.IsFinite, func(p *parser) syntax.Index {
		p.warn(report.ExpectedAB, p.now, "Number.isFinite", "isFinite")

		return p.now
	})
	constant(syntax.IsNaN, func(p *parser) syntax.Index {
		p.warn(report.NumberIsNaN, p.now)

		return p.now
	})
	constant(syntax.This, func(p *parser) syntax.Index {
		if !p.enabled(config.This) {
			p.warn(report.UnexpectedA, p.now)
		}

		return p.now
	})

	for _, id := range []syntax.ID{syntax.Assign, syntax.AddAssign, syntax.SubAssign,
		syntax.MulAssign, syntax.DivAssign, syntax.RemAssign, syntax.AndAssign,
		syntax.OrAssign, syntax.XorAssign, syntax.ShlAssign, syntax.ShrAssign, syntax.UShrAssign} {
		assignment(id)
	}

	for _, op := range []struct {
		id syntax.ID
		bp int
	}{
		{syntax.Coalesce, 35},
		{syntax.LogicalOr, 40},
		{syntax.LogicalAnd, 50},
		{syntax.Or, 70},
		{syntax.Xor, 80},
		{syntax.And, 90},
		{syntax.Eq, 100}, {syntax.StrictEq, 100}, {syntax.Ne, 100}, {syntax.StrictNe, 100},
		{syntax.Lt, 110}, {syntax.Gt, 110}, {syntax.Le, 110}, {syntax.Ge, 110},
		{syntax.In, 110}, {syntax.Instanceof, 110},
		{syntax.Shl, 120}, {syntax.Shr, 120}, {syntax.UShr, 120},
		{syntax.Add, 130}, {syntax.Sub, 130},
		{syntax.Mul, 140}, {syntax.Div, 140}, {syntax.Rem, 140},
	} {
		infix(op.id, op.bp)
	}

	infixr(syntax.Pow, bpPrefix)

	special(syntax.LParen, bpCall, (*parser).call)
	special(syntax.Dot, bpMember, (*parser).member)
	special(syntax.OptionalChain, bpMember, (*parser).member)
	special(syntax.LBracket, bpMember, (*parser).subscript)
	special(syntax.Arrow, bpMember, func(p *parser, left syntax.Index) syntax.Index {
		return p.stop(report.WrapParameter, left)
	})
	special(syntax.Backtick, bpCall, (*parser).taggedTemplate)

	grammar[syntax.Question].lbp = 30
	grammar[syntax.Question].led = (*parser).ternary

	for _, id := range []syntax.ID{syntax.Inc, syntax.Dec} {
		grammar[id].lbp = bpPrefix
		grammar[id].led = (*parser).postfix
		grammar[id].nud = (*parser).prefixed
	}

	for _, id := range []syntax.ID{syntax.Add, syntax.Sub, syntax.Tilde, syntax.Not, syntax.NotNot, syntax.Typeof} {
		prefix(id, nil)
	}

	prefix(syntax.LBracket, (*parser).array)
	prefix(syntax.DivAssign, func(p *parser) syntax.Index {
		return p.stop(report.ExpectedAB, p.now, `/\=`, "/=")
	})
	prefix(syntax.Arrow, func(p *parser) syntax.Index {
		return p.stop(report.ExpectedABeforeB, p.now, "()", "=>")
	})
	prefix(syntax.New, (*parser).construct)
	prefix(syntax.Void, func(p *parser) syntax.Index {
		t := p.current()
		p.warn(report.UnexpectedA, p.now)
		t.Expr = []syntax.Index{p.expression(bpNone, false)}

		return t.Nr
	})
	prefix(syntax.Async, (*parser).async)
	prefix(syntax.Await, (*parser).await)
	prefix(syntax.FunctionKeyword, func(p *parser) syntax.Index {
		return p.function(p.now, "", 0)
	})
	prefix(syntax.LParen, (*parser).paren)
	prefix(syntax.Backtick, (*parser).template)
	prefix(syntax.LBrace, (*parser).object)

	stmt(syntax.Semicolon, (*parser).unexpected)
	stmt(syntax.LBrace, func(p *parser) syntax.Index {
		p.warn(report.NakedBlock, p.now)

		return p.block(blockNaked)
	})
	stmt(syntax.Async, (*parser).async)
	stmt(syntax.Await, (*parser).await)
	stmt(syntax.Break, (*parser).breakStatement)
	stmt(syntax.Const, (*parser).variables)
	stmt(syntax.Continue, (*parser).continueStatement)
	stmt(syntax.Debugger, (*parser).debugger)
	stmt(syntax.Delete, (*parser).deleteStatement)
	stmt(syntax.Do, (*parser).doStatement)
	stmt(syntax.Export, (*parser).export)
	stmt(syntax.For, (*parser).forStatement)
	stmt(syntax.FunctionKeyword, func(p *parser) syntax.Index {
		return p.function(p.now, "", 0)
	})
	stmt(syntax.If, (*parser).ifStatement)
	stmt(syntax.Import, (*parser).importStatement)
	stmt(syntax.Let, (*parser).variables)
	stmt(syntax.Return, (*parser).returnStatement)
	stmt(syntax.Switch, (*parser).switchStatement)
	stmt(syntax.Throw, (*parser).throw)
	stmt(syntax.Try, (*parser).try)
	stmt(syntax.Var, (*parser).variables)
	stmt(syntax.While, (*parser).while)
	stmt(syntax.With, func(p *parser) syntax.Index {
		return p.stop(report.UnexpectedA, p.now)
	})
}

// expression parses an expression whose operators bind tighter than rbp.
// When initial is set the first token has already been consumed.
func (p *parser) expression(rbp int, initial bool) syntax.Index {
	if !initial {
		p.advance()
	}

	var left syntax.Index

	now := p.current()
	switch sym := &grammar[now.ID]; {
	case sym.nud != nil:
		left = sym.nud(p)

	case now.Identifier:
		now.Arity = syntax.ArityVariable
		left = p.now

	default:
		return p.stop(report.UnexpectedA, p.now)
	}

	for {
		sym := &grammar[p.next().ID]
		if sym.led == nil || sym.lbp <= rbp {
			return left
		}

		p.advance()
		left = sym.led(p, left)
	}
}

func (p *parser) unexpected() syntax.Index {
	p.warn(report.UnexpectedA, p.now)

	return p.now
}

// evaluation handles eval and Function.
func (p *parser) evaluation() syntax.Index {
	switch {
	case !p.enabled(config.Eval):
		p.warn(report.UnexpectedA, p.now)

	case p.next().ID != syntax.LParen:
		p.warn(report.ExpectedABeforeB, p.nxt, "(", p.next().Artifact())
	}

	return p.now
}

// condition parses the parenthesized condition of do, if and while.
func (p *parser) condition() syntax.Index {
	paren := p.nxt
	p.next().Free = true
	p.expect(syntax.LParen)

	value := p.expression(bpNone, false)
	p.expect(syntax.RParen)

	v := p.tok(value)
	if v.Wrapped {
		p.warn(report.UnexpectedA, paren)
	}

	switch v.ID {
	case syntax.Rem, syntax.And, syntax.Number, syntax.String, syntax.Mul,
		syntax.Add, syntax.Sub, syntax.Div, syntax.Shl, syntax.Shr, syntax.UShr,
		syntax.Question, syntax.Xor, syntax.Typeof, syntax.Or, syntax.Tilde:
		p.warn(report.UnexpectedA, value)
	}

	return value
}

// mutationCheck reports whether thing can be assigned to.
func (p *parser) mutationCheck(thing syntax.Index) bool {
	t := p.tok(thing)
	if t.Arity == syntax.ArityVariable {
		return true
	}

	switch t.ID {
	case syntax.Dot, syntax.LBracket, syntax.LBrace:
		return true

	default:
		p.warn(report.BadAssignmentA, thing)

		return false
	}
}

// leftCheck reports whether left can be called or dereferenced. Without a
// right token the warning goes to the next token.
func (p *parser) leftCheck(left, right syntax.Index) bool {
	t := p.tok(left)

	switch {
	case t.Identifier:
		return true

	case t.Arity == syntax.ArityTernary &&
		(p.leftCheck(t.Expr[1], syntax.InvalidNode) || p.leftCheck(t.Expr[2], syntax.InvalidNode)):
		return true

	case t.Arity == syntax.ArityBinary:
		switch t.ID {
		case syntax.Dot, syntax.OptionalChain, syntax.LParen, syntax.LBracket:
			return true
		}
	}

	if right == syntax.InvalidNode {
		right = p.nxt
	}

	p.warn(report.UnexpectedA, right)

	return false
}

func (p *parser) assignment(left syntax.Index) syntax.Index {
	t := p.current()
	t.Arity = syntax.ArityAssignment

	right := p.expression(bpAssign-1, false)
	if t.ID == syntax.Assign && p.tok(left).Arity == syntax.ArityVariable {
		t.Names = []syntax.Index{left}
		t.Expr = []syntax.Index{right}
	} else {
		t.Expr = []syntax.Index{left, right}
	}

	switch p.tok(right).Arity {
	case syntax.ArityAssignment, syntax.ArityPre, syntax.ArityPost:
		p.warn(report.UnexpectedA, right)
	}

	p.mutationCheck(left)

	return t.Nr
}

func (p *parser) binary(left syntax.Index, rbp int) syntax.Index {
	t := p.current()
	t.Arity = syntax.ArityBinary
	t.Expr = []syntax.Index{left, p.expression(rbp, false)}

	return t.Nr
}

func (p *parser) unary() syntax.Index {
	t := p.current()
	t.Expr = []syntax.Index{p.expression(bpPrefix, false)}

	return t.Nr
}

func (p *parser) postfix(left syntax.Index) syntax.Index {
	t := p.current()
	t.Arity = syntax.ArityPost
	t.Expr = []syntax.Index{left}
	p.mutationCheck(left)

	return t.Nr
}

func (p *parser) prefixed() syntax.Index {
	t := p.current()
	t.Arity = syntax.ArityPre
	t.Expr = []syntax.Index{p.expression(bpPrefix, false)}
	p.mutationCheck(t.Expr[0])

	return t.Nr
}

func (p *parser) ternary(left syntax.Index) syntax.Index {
	t := p.current()

	second := p.expression(bpAssign, false)
	p.expect(syntax.Colon)
	p.current().Arity = syntax.ArityTernary

	t.Arity = syntax.ArityTernary
	t.Expr = []syntax.Index{left, second, p.expression(bpComma, false)}

	if p.next().ID != syntax.RParen {
		p.warn(report.UseOpen, t.Nr)
	}

	return t.Nr
}

// call parses the arguments of an invocation.
func (p *parser) call(left syntax.Index) syntax.Index {
	paren := p.current()
	l := p.tok(left)

	if l.ID != syntax.FunctionKeyword {
		p.leftCheck(left, paren.Nr)
	}

	// Calls made by function statements resolve forward references.
	if fn := p.stack.Current(); fn.Token != syntax.InvalidNode && fn.Name != syntax.InvalidNode && l.Identifier {
		if p.tok(fn.Token).Arity == syntax.ArityStatement {
			if b := p.tok(fn.Name).Binding; b != nil && b.Calls != nil {
				b.Calls[l.Value] = left
			}
		}
	}

	paren.Expr = []syntax.Index{left}
	argument := syntax.InvalidNode

	if p.next().ID != syntax.RParen {
		ellipsis := false

		for {
			if p.next().ID == syntax.Spread {
				ellipsis = true

				p.expect(syntax.Spread)
			}

			argument = p.expression(bpComma, false)
			if ellipsis {
				p.tok(argument).Ellipsis = true
			}

			paren.Expr = append(paren.Expr, argument)

			if p.next().ID != syntax.Comma {
				break
			}

			p.expect(syntax.Comma)
		}
	}

	p.expectFrom(syntax.RParen, paren.Nr)

	if len(paren.Expr) == 2 {
		paren.Free = true

		a := p.tok(argument)
		if a.Wrapped {
			p.warn(report.UnexpectedA, paren.Nr)
		}

		if a.ID == syntax.LParen {
			a.Wrapped = true
		}
	} else {
		paren.Free = false
	}

	return paren.Nr
}

// knownReceiver lists the literal receivers whose methods may be used
// directly.
func knownReceiver(left, name *syntax.Token) bool {
	switch left.ID {
	case syntax.String:
		return name.Is("indexOf") || name.Is("repeat")

	case syntax.LBracket:
		return name.Is("concat") || name.Is("forEach") || name.Is("join") || name.Is("map")

	case syntax.Add:
		return name.Is("slice")

	case syntax.Regexp:
		return name.Is("exec") || name.Is("test")

	default:
		return false
	}
}

// member parses . and ?. property access.
func (p *parser) member(left syntax.Index) syntax.Index {
	t := p.current()
	name := p.nxt

	if !knownReceiver(p.tok(left), p.next()) {
		p.leftCheck(left, t.Nr)
	}

	if !p.next().Identifier {
		p.stop(report.ExpectedIdentifierA, p.nxt)
	}

	p.advance()
	p.survey(name)

	t.Name = name
	t.Expr = []syntax.Index{left}

	return t.Nr
}

func (p *parser) subscript(left syntax.Index) syntax.Index {
	t := p.current()

	sub := p.expression(bpNone, false)
	if id := p.tok(sub).ID; id == syntax.String || id == syntax.Backtick {
		if name := p.survey(sub); rxIdentifier.MatchString(name) {
			p.warn(report.SubscriptA, sub, name)
		}
	}

	p.leftCheck(left, t.Nr)
	t.Expr = []syntax.Index{left, sub}
	p.expect(syntax.RBracket)

	return t.Nr
}

// template parses the parts of a template literal.
func (p *parser) template() syntax.Index {
	t := p.current()
	t.Parts = nil
	t.Expr = nil

	if p.next().ID != syntax.Backtick {
		for {
			p.expect(syntax.String)
			t.Parts = append(t.Parts, p.now)

			if p.next().ID != syntax.DollarBrace {
				break
			}

			p.expect(syntax.DollarBrace)
			t.Expr = append(t.Expr, p.expression(bpNone, false))
			p.expect(syntax.RBrace)
		}
	}

	p.expect(syntax.Backtick)

	return t.Nr
}

func (p *parser) taggedTemplate(left syntax.Index) syntax.Index {
	tick := p.template()
	p.leftCheck(left, tick)

	t := p.tok(tick)
	t.Expr = append([]syntax.Index{left}, t.Expr...)

	return tick
}

func (p *parser) array() syntax.Index {
	t := p.current()
	t.Expr = nil

	if p.next().ID != syntax.RBracket {
		for {
			ellipsis := false
			if p.next().ID == syntax.Spread {
				ellipsis = true

				p.expect(syntax.Spread)
			}

			element := p.expression(bpComma, false)
			if ellipsis {
				p.tok(element).Ellipsis = true
			}

			t.Expr = append(t.Expr, element)

			if p.next().ID != syntax.Comma {
				break
			}

			p.expect(syntax.Comma)
		}
	}

	p.expect(syntax.RBracket)

	return t.Nr
}

// construct parses new.
func (p *parser) construct() syntax.Index {
	t := p.current()

	right := p.expression(bpCall, false)
	if p.next().ID != syntax.LParen {
		p.warn(report.ExpectedABeforeB, p.nxt, "()", p.next().Artifact())
	}

	t.Expr = []syntax.Index{right}

	return t.Nr
}

// paren parses a wrapped expression or the parameter list of an arrow
// function, which are told apart by one token of lookahead.
func (p *parser) paren() syntax.Index {
	cadet := p.lookahead()
	paren := p.current()
	next := p.next()

	if next.ID == syntax.RParen || next.ID == syntax.Spread ||
		next.Identifier && (cadet.ID == syntax.Comma || cadet.ID == syntax.Assign) {
		paren.Free = false

		return p.arrow(p.parameterList())
	}

	paren.Free = true

	value := p.expression(bpNone, false)
	v := p.tok(value)

	if v.Wrapped {
		p.warn(report.UnexpectedA, paren.Nr)
	}

	v.Wrapped = true
	p.expectFrom(syntax.RParen, paren.Nr)

	if p.next().ID != syntax.Arrow {
		return value
	}

	if v.Arity != syntax.ArityVariable {
		if v.ID == syntax.LBrace || v.ID == syntax.LBracket {
			p.warn(report.ExpectedABeforeB, paren.Nr, "function", "(")

			return p.stop(report.ExpectedAB, p.nxt, "{", "=>")
		}

		return p.stop(report.ExpectedIdentifierA, value)
	}

	paren.Expr = []syntax.Index{value}

	return p.arrow(paren.Expr, "("+v.Value+")")
}

// object parses an object literal.
func (p *parser) object() syntax.Index {
	brace := p.current()
	brace.Expr = nil

	if p.next().ID == syntax.RBrace {
		p.expect(syntax.RBrace)

		return brace.Nr
	}

	seen := make(map[string]bool)
	order := ordered{p: p}

	for {
		name := p.nxt
		p.advance()
		order.check(name)

		var (
			extra string
			id    string
		)

		if n := p.tok(name); (n.Is("get") || n.Is("set")) && p.next().Identifier {
			if !p.enabled(config.Getset) {
				p.warn(report.UnexpectedA, name)
			}

			extra = n.Value
			full := extra + " " + p.next().Value

			name = p.nxt
			p.advance()

			id = p.survey(name)
			if seen[full] || seen[id] {
				p.warn(report.DuplicateA, name)
			}

			seen[id] = false
			seen[full] = true
		} else {
			id = p.survey(name)
			if _, ok := seen[id]; ok {
				p.warn(report.DuplicateA, name)
			}

			seen[id] = true
		}

		var value syntax.Index

		n := p.tok(name)
		switch {
		case !n.Identifier:
			p.expect(syntax.Colon)
			value = p.expression(bpNone, false)

		case p.next().ID == syntax.RBrace || p.next().ID == syntax.Comma:
			if extra != "" {
				p.expect(syntax.LParen)
			}

			value = p.expression(bpNoInfix, true)

		case p.next().ID == syntax.LParen:
			method := extra
			if method == "" {
				method = id
			}

			value = p.function(p.method(n), method, 0)

		default:
			if extra != "" {
				p.expect(syntax.LParen)
			}

			colon := p.nxt
			p.expect(syntax.Colon)

			value = p.expression(bpNone, false)
			if v := p.tok(value); syntax.SameID(v, n) && v.ID != syntax.FunctionKeyword {
				p.warn(report.UnexpectedA, colon, ": "+n.Value)
			}
		}

		v := p.tok(value)
		v.Label = name
		if n.Identifier {
			v.Extra = extra
		}

		brace.Expr = append(brace.Expr, value)

		if p.next().ID != syntax.Comma {
			break
		}

		p.expect(syntax.Comma)
	}

	p.expect(syntax.RBrace)

	return brace.Nr
}

// method creates the function token of a method, positioned at its name.
func (p *parser) method(name *syntax.Token) syntax.Index {
	t := p.s.Tree.New()
	t.ID = syntax.FunctionKeyword
	t.Arity = syntax.ArityUnary
	t.Line = name.Line
	t.From = name.From
	t.Thru = name.From

	return t.Nr
}
