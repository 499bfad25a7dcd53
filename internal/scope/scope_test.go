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

package scope_test

import (
	"testing"

	. "fillmore-labs.com/jslint/internal/scope"
	"fillmore-labs.com/jslint/internal/syntax"
)

func TestFactory(t *testing.T) {
	t.Parallel()

	var f Factory

	first := f.New("aa", 3, 1)
	for i := range 200 {
		f.New("bb", syntax.Index(i), 2)
	}

	all := f.All()
	if got, want := len(all), 201; got != want || f.Len() != want {
		t.Fatalf("Got %d (%d) bindings, expected %d", got, f.Len(), want)
	}

	if all[0] != first || first.Name != "aa" || first.Decl != 3 {
		t.Errorf("Got first binding %+v", all[0])
	}
}

func TestStack(t *testing.T) {
	t.Parallel()

	global := &syntax.Function{Context: map[string]*syntax.Binding{}}
	outer := &syntax.Function{Context: map[string]*syntax.Binding{}}
	inner := &syntax.Function{Context: map[string]*syntax.Binding{}}

	var f Factory
	global.Context["aa"] = f.New("aa", 0, 1)
	outer.Context["aa"] = f.New("aa", 1, 2)
	label := f.New("bb", 2, 3)
	label.Role = syntax.RoleLabel
	outer.Context["bb"] = label

	s := NewStack(global)
	s.Push(outer)
	s.Push(inner)

	if got := s.Outer("aa", true); got != outer.Context["aa"] {
		t.Errorf("Got binding from line %d, expected the innermost one", got.Line)
	}

	if got := s.Outer("bb", true); got != nil {
		t.Errorf("Got label %+v, expected labels to be skipped", got)
	}

	if got := s.Outer("bb", false); got != label {
		t.Errorf("Got %+v, expected the label", got)
	}

	s.Pop()

	if s.Current() != outer || s.Depth() != 1 {
		t.Errorf("Got depth %d after pop", s.Depth())
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	var tree syntax.Tree

	newToken := func(id syntax.ID, arity syntax.Arity, extra string) syntax.Index {
		tok := tree.New()
		tok.ID, tok.Arity, tok.Extra = id, arity, extra

		return tok.Nr
	}

	tests := []struct {
		name  string
		token syntax.Index
		want  string
	}{
		{"global", syntax.InvalidNode, "global"},
		{"arrow", newToken(syntax.Arrow, syntax.ArityBinary, ""), "arrow function"},
		{"statement", newToken(syntax.FunctionKeyword, syntax.ArityStatement, ""), "function statement"},
		{"expression", newToken(syntax.FunctionKeyword, syntax.ArityFunction, ""), "function"},
		{"getter", newToken(syntax.FunctionKeyword, syntax.ArityFunction, "get"), "getter"},
		{"catch", newToken(syntax.Catch, syntax.ArityStatement, ""), "catch"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Name(&tree, &syntax.Function{Token: tt.token}); got != tt.want {
				t.Errorf("Got %q, expected %q", got, tt.want)
			}
		})
	}
}
