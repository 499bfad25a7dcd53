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

package syntax

import "fillmore-labs.com/jslint/internal/report"

// Index addresses a [Token] in a [Tree].
type Index int32

// InvalidNode is the [Index] of no token.
const InvalidNode Index = -1

// Token is a lexed token, annotated by the parser.
type Token struct {
	// Lexical attributes.
	ID         ID
	Value      string // spelling of identifiers and punctuators, contents of literals
	Identifier bool
	Line       int
	From, Thru int // 0-based rune columns
	Nr         Index

	Quote     string // the quote character of a string literal
	Flags     string // regexp flags in source order
	Directive string // jslint, property or global on directive comments
	AfterDot  bool   // an identifier that follows '.'

	// Parse annotations.
	Arity     Arity
	Expr      []Index
	Block     []Index
	Else      []Index
	Names     []Index
	Parts     []Index // string parts of a template literal
	Name      Index
	Label     Index
	Catch     Index
	Initial   Index
	Inc       Index
	Import    Index
	Extra     string // get or set
	Disrupt   bool
	Wrapped   bool
	Free      bool
	Ellipsis  bool
	Open      bool
	Statement bool
	Constant  bool
	Body      bool
	Switch    bool // case and default labels

	Fn      *Function // function, arrow and catch tokens
	Binding *Binding  // bindings declared by this token
	Ref     *Binding  // the binding a variable token resolves to

	Warning *report.Warning
}

func (t *Token) reset() {
	*t = Token{
		Name:    InvalidNode,
		Label:   InvalidNode,
		Catch:   InvalidNode,
		Initial: InvalidNode,
		Inc:     InvalidNode,
		Import:  InvalidNode,
	}
}

// Is reports whether the token is the identifier or symbol spelled text.
func (t *Token) Is(text string) bool {
	return t.Identifier && t.Value == text
}

// Reserved reports whether the identifier is a keyword or predefined constant.
func (t *Token) Reserved() bool {
	return t.Identifier && t.ID != Ident && t.ID != Ignore
}

// Artifact is the text used to refer to the token in messages.
func (t *Token) Artifact() string {
	switch t.ID {
	case Ident, Number, String, Punctuator:
		return t.Value

	default:
		if t.Identifier {
			return t.Value
		}

		return t.ID.String()
	}
}

// Operand returns the first child expression or [InvalidNode].
func (t *Token) Operand() Index {
	if len(t.Expr) == 0 {
		return InvalidNode
	}

	return t.Expr[0]
}
