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

package analyzer

import (
	"maps"
	"slices"

	"fillmore-labs.com/jslint/internal/config"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/scope"
	"fillmore-labs.com/jslint/internal/session"
	"fillmore-labs.com/jslint/internal/syntax"
)

// Result is the outcome of a [Linter.Lint] call.
type Result struct {
	// OK is true when there are no diagnostics and the analysis finished.
	OK bool `json:"ok"`
	// Stop is true when a fatal diagnostic or an internal error ended the analysis.
	Stop bool `json:"stop"`
	// Warnings are sorted stop-first, then by line and column.
	Warnings []*report.Warning `json:"warnings"`

	Tokens     []Token    `json:"tokens"`
	Tree       []Node     `json:"tree"`
	Functions  []Function `json:"functions"`
	Global     Function   `json:"global"`
	Directives []Token    `json:"directives"`

	// Property counts the uses of each property name.
	Property map[string]int `json:"property"`
	// Froms lists the module specifiers of import statements.
	Froms []string `json:"froms"`
	// Exports lists the exported names.
	Exports []string `json:"exports"`

	Module  bool     `json:"module"`
	JSON    bool     `json:"json"`
	Shebang string   `json:"shebang,omitempty"`
	Lines   []string `json:"lines"`
	Option  []string `json:"option"`
	Edition string   `json:"edition"`
}

// Token summarizes a lexed token.
type Token struct {
	ID        string `json:"id"`
	Value     string `json:"value,omitempty"`
	Line      int    `json:"line"`
	From      int    `json:"from"`
	Thru      int    `json:"thru"`
	Arity     string `json:"arity,omitempty"`
	Directive string `json:"directive,omitempty"`
}

// Node is a token of the parse tree with its operands and blocks.
type Node struct {
	Token

	Children []Node `json:"children,omitempty"`
}

// Function summarizes a function scope.
type Function struct {
	Name       string             `json:"name"`
	Kind       string             `json:"kind"`
	Line       int                `json:"line"`
	Level      int                `json:"level"`
	Parameters []string           `json:"parameters,omitempty"`
	Signature  string             `json:"signature,omitempty"`
	Context    map[string]Binding `json:"context"`
}

// Binding summarizes a name declared in a function scope.
type Binding struct {
	Role     string `json:"role"`
	Line     int    `json:"line,omitempty"`
	Used     int    `json:"used"`
	Init     bool   `json:"init"`
	Writable bool   `json:"writable"`
	Closure  bool   `json:"closure,omitempty"`
}

func newResult(s *session.Session, lines []string) *Result {
	tree := &s.Tree

	res := &Result{
		Tokens:     make([]Token, 0, s.Lexed),
		Tree:       make([]Node, 0, len(s.Root)),
		Functions:  make([]Function, 0, len(s.Functions)),
		Directives: make([]Token, 0, len(s.Directives)),
		Property:   s.Property,
		Froms:      s.Froms,
		Exports:    slices.Sorted(maps.Keys(s.Exports)),
		Module:     s.Module,
		JSON:       s.JSON,
		Lines:      lines,
		Option:     config.Names(s.Options),
		Edition:    Edition,
	}

	for i := range syntax.Index(s.Lexed) {
		res.Tokens = append(res.Tokens, newToken(tree.At(i)))
	}

	for _, i := range s.Root {
		res.Tree = append(res.Tree, newNode(tree, i))
	}

	res.Global = newFunction(tree, s.Global)

	for _, fn := range s.Functions {
		res.Functions = append(res.Functions, newFunction(tree, fn))
	}

	owners := make(map[*syntax.Function]*Function, len(s.Functions)+1)
	owners[s.Global] = &res.Global

	for i, fn := range s.Functions {
		owners[fn] = &res.Functions[i]
	}

	// Only bindings still enrolled in their function are summarized.
	for _, b := range s.Bindings.All() {
		f, ok := owners[b.Parent]
		if !ok || b.Parent.Context[b.Name] != b {
			continue
		}

		f.Context[b.Name] = newBinding(b)
	}

	for _, i := range s.Directives {
		res.Directives = append(res.Directives, newToken(tree.At(i)))
	}

	if s.Shebang && len(s.Lines) > 1 {
		res.Shebang = s.Lines[1].Source
	}

	return res
}

func newToken(t *syntax.Token) Token {
	tok := Token{
		ID:        t.ID.String(),
		Value:     t.Value,
		Line:      t.Line,
		From:      t.From,
		Thru:      t.Thru,
		Directive: t.Directive,
	}

	if t.Arity != syntax.ArityNone {
		tok.Arity = t.Arity.String()
	}

	return tok
}

func newNode(tree *syntax.Tree, i syntax.Index) Node {
	t := tree.At(i)
	n := Node{Token: newToken(t)}

	for _, list := range [...][]syntax.Index{t.Expr, t.Block, t.Else} {
		for _, c := range list {
			if c == syntax.InvalidNode {
				continue
			}

			n.Children = append(n.Children, newNode(tree, c))
		}
	}

	return n
}

func newFunction(tree *syntax.Tree, fn *syntax.Function) Function {
	f := Function{
		Name:      fn.DisplayName(tree),
		Kind:      scope.Name(tree, fn),
		Line:      fn.Line,
		Level:     fn.Level,
		Signature: fn.Signature,
		Context:   make(map[string]Binding, len(fn.Context)),
	}

	for _, p := range fn.Parameters {
		f.Parameters = append(f.Parameters, tree.At(p).Artifact())
	}

	return f
}

func newBinding(b *syntax.Binding) Binding {
	return Binding{
		Role:     b.Role.String(),
		Line:     b.Line,
		Used:     b.Used,
		Init:     b.Init,
		Writable: b.Writable,
		Closure:  b.Closure,
	}
}
