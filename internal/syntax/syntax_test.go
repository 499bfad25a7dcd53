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

package syntax_test

import (
	"testing"

	. "fillmore-labs.com/jslint/internal/syntax"
)

type builder struct{ tree Tree }

func (b *builder) leaf(id ID, arity Arity, value string) Index {
	t := b.tree.New()
	t.ID, t.Arity, t.Value = id, arity, value
	t.Identifier = id == Ident

	return t.Nr
}

func (b *builder) node(id ID, arity Arity, expr ...Index) Index {
	t := b.tree.New()
	t.ID, t.Arity, t.Expr = id, arity, expr

	return t.Nr
}

func (b *builder) member(object Index, name string) Index {
	t := b.tree.New()
	t.ID, t.Arity, t.Expr = Dot, ArityBinary, []Index{object}
	t.Name = b.leaf(Ident, ArityNone, name)

	return t.Nr
}

func (b *builder) tick(text string) Index {
	t := b.tree.New()
	t.ID, t.Arity, t.Constant = Backtick, ArityUnary, true
	t.Parts = []Index{b.leaf(String, ArityNone, text)}

	return t.Nr
}

func TestAreSimilar(t *testing.T) {
	t.Parallel()

	b := &builder{}

	tests := [...]struct {
		name string
		a, b Index
		want bool
	}{
		{"same number", b.leaf(Number, ArityNone, "1"), b.leaf(Number, ArityNone, "1"), true},
		{"other number", b.leaf(Number, ArityNone, "1"), b.leaf(Number, ArityNone, "2"), false},
		{"same variable", b.leaf(Ident, ArityVariable, "aa"), b.leaf(Ident, ArityVariable, "aa"), true},
		{"other variable", b.leaf(Ident, ArityVariable, "aa"), b.leaf(Ident, ArityVariable, "bb"), false},
		{"string and template", b.leaf(String, ArityNone, "x"), b.tick("x"), true},
		{"different templates", b.tick("x"), b.tick("y"), false},
		{"same member", b.member(b.leaf(Ident, ArityVariable, "aa"), "bb"), b.member(b.leaf(Ident, ArityVariable, "aa"), "bb"), true},
		{"other member", b.member(b.leaf(Ident, ArityVariable, "aa"), "bb"), b.member(b.leaf(Ident, ArityVariable, "aa"), "cc"), false},
		{
			"unary",
			b.node(Sub, ArityUnary, b.leaf(Number, ArityNone, "0")),
			b.node(Sub, ArityUnary, b.leaf(Number, ArityNone, "0")),
			true,
		},
		{
			"binary",
			b.node(Add, ArityBinary, b.leaf(Ident, ArityVariable, "aa"), b.leaf(Number, ArityNone, "1")),
			b.node(Add, ArityBinary, b.leaf(Ident, ArityVariable, "aa"), b.leaf(Number, ArityNone, "1")),
			true,
		},
		{"null and undefined", b.leaf(Null, ArityNone, "null"), b.leaf(Undefined, ArityNone, "undefined"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := AreSimilar(&b.tree, tt.a, tt.b); got != tt.want {
				t.Errorf("Got %t, expected %t", got, tt.want)
			}
		})
	}
}

func TestWeirdNeverSimilar(t *testing.T) {
	t.Parallel()

	b := &builder{}

	call := b.node(LParen, ArityBinary, b.leaf(Ident, ArityVariable, "aa"))
	weird := [...]Index{
		call,
		b.leaf(Regexp, ArityNone, "x"),
		b.node(LBrace, ArityUnary),
		b.node(LBracket, ArityUnary),
		b.node(FunctionKeyword, ArityUnary),
		b.node(Arrow, ArityBinary),
	}

	for _, w := range weird {
		if AreSimilar(&b.tree, w, w) {
			t.Errorf("Expected %v not to be similar to itself", b.tree.At(w).ID)
		}
	}
}

func TestTreeGrowth(t *testing.T) {
	t.Parallel()

	var tree Tree

	first := tree.New()
	first.Value = "first"

	for range 300 {
		tree.New()
	}

	if got := tree.At(0); got != first || got.Value != "first" {
		t.Errorf("Got token %p, expected %p", got, first)
	}

	if got, want := tree.Len(), 301; got != want {
		t.Errorf("Got %d tokens, expected %d", got, want)
	}

	if got := tree.At(300).Nr; got != 300 {
		t.Errorf("Got Nr %d, expected 300", got)
	}

	if got := tree.At(42).Name; got != InvalidNode {
		t.Errorf("Got Name %d, expected InvalidNode", got)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, text := range [...]string{"(", ">>>=", "${", "function", "Function", "undefined"} {
		id, ok := Lookup(text)
		if !ok || id.String() != text {
			t.Errorf("Got %v, %t for %q", id, ok, text)
		}
	}

	for _, text := range [...]string{"(end)", "aa", ".."} {
		if id, ok := Lookup(text); ok {
			t.Errorf("Got %v for %q, expected no symbol", id, text)
		}
	}
}
