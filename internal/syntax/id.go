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

//go:generate go tool stringer -type=ID -linecomment

// ID identifies the kind of a token. Identifiers that are not keywords or
// predefined constants are [Ident], their spelling is kept in [Token.Value].
type ID uint8

const (
	Ident      ID = iota // (identifier)
	Number               // (number)
	String               // (string)
	Regexp               // (regexp)
	Comment              // (comment)
	End                  // (end)
	Global               // (global)
	Punctuator           // (punctuator)

	LParen        // (
	RParen        // )
	LBrace        // {
	RBrace        // }
	LBracket      // [
	RBracket      // ]
	Comma         // ,
	Colon         // :
	Semicolon     // ;
	Tilde         // ~
	Backtick      // `
	Question      // ?
	Coalesce      // ??
	OptionalChain // ?.
	Assign        // =
	Eq            // ==
	StrictEq      // ===
	Arrow         // =>
	Dot           // .
	Spread        // ...
	Mul           // *
	Pow           // **
	CommentEnd    // */
	MulAssign     // *=
	Div           // /
	DivAssign     // /=
	Add           // +
	AddAssign     // +=
	Inc           // ++
	Sub           // -
	SubAssign     // -=
	Dec           // --
	Xor           // ^
	XorAssign     // ^=
	Rem           // %
	RemAssign     // %=
	And           // &
	LogicalAnd    // &&
	AndAssign     // &=
	Or            // |
	LogicalOr     // ||
	OrAssign      // |=
	Gt            // >
	Shr           // >>
	UShr          // >>>
	Ge            // >=
	ShrAssign     // >>=
	UShrAssign    // >>>=
	Lt            // <
	Shl           // <<
	Le            // <=
	ShlAssign     // <<=
	Not           // !
	NotNot        // !!
	Ne            // !=
	StrictNe      // !==
	DollarBrace   // ${

	Async           // async
	Await           // await
	Break           // break
	Case            // case
	Catch           // catch
	Class           // class
	Const           // const
	Continue        // continue
	Debugger        // debugger
	Default         // default
	Delete          // delete
	Do              // do
	Else            // else
	Enum            // enum
	Export          // export
	Finally         // finally
	For             // for
	FunctionKeyword // function
	If              // if
	Implements      // implements
	Import          // import
	In              // in
	Instanceof      // instanceof
	Interface       // interface
	Let             // let
	New             // new
	Package         // package
	Private         // private
	Protected       // protected
	Public          // public
	Return          // return
	Static          // static
	Super           // super
	Switch          // switch
	Throw           // throw
	Try             // try
	Typeof          // typeof
	Var             // var
	Void            // void
	While           // while
	With            // with
	Yield           // yield

	Arguments    // arguments
	Eval         // eval
	False        // false
	FunctionCtor // Function
	Ignore       // ignore
	Infinity     // Infinity
	IsFinite     // isFinite
	IsNaN        // isNaN
	NaN          // NaN
	Null         // null
	This         // this
	True         // true
	Undefined    // undefined

	NumIDs // (count)
)

var symbols = func() map[string]ID {
	m := make(map[string]ID, NumIDs-LParen)
	for id := LParen; id < NumIDs; id++ {
		m[id.String()] = id
	}

	return m
}()

// Lookup returns the ID of a punctuator, keyword or predefined constant.
func Lookup(text string) (ID, bool) {
	id, ok := symbols[text]

	return id, ok
}

// IsConstant reports whether tokens of this kind are constants by themselves.
func (id ID) IsConstant() bool {
	switch id {
	case Number, String, Regexp,
		Arguments, Eval, False, FunctionCtor, Ignore, Infinity, IsFinite,
		IsNaN, NaN, Null, This, True, Undefined:
		return true

	default:
		return false
	}
}

// IsAssignment reports whether the ID is an assignment operator.
func (id ID) IsAssignment() bool {
	switch id {
	case Assign, AddAssign, SubAssign, MulAssign, DivAssign, RemAssign,
		AndAssign, OrAssign, XorAssign, ShlAssign, ShrAssign, UShrAssign:
		return true

	default:
		return false
	}
}

// IsRelational reports whether the ID is an equality or relational operator.
func (id ID) IsRelational() bool {
	switch id {
	case Ne, StrictNe, Eq, StrictEq, Lt, Le, Gt, Ge:
		return true

	default:
		return false
	}
}

// IsBitwise reports whether the ID is a bitwise operator.
func (id ID) IsBitwise() bool {
	switch id {
	case And, AndAssign, Or, OrAssign, Xor, XorAssign, Shl, ShlAssign,
		Shr, ShrAssign, UShr, UShrAssign, Tilde:
		return true

	default:
		return false
	}
}

// IsSpaced reports whether the infix operator wants one space on each side.
func (id ID) IsSpaced() bool {
	switch id {
	case Ne, StrictNe, Rem, RemAssign, And, AndAssign, LogicalAnd, Mul,
		MulAssign, AddAssign, SubAssign, Div, DivAssign, Lt, Le, Shl,
		ShlAssign, Assign, Eq, StrictEq, Arrow, Gt, Ge, Shr, ShrAssign,
		UShr, UShrAssign, Xor, XorAssign, Or, OrAssign, LogicalOr:
		return true

	default:
		return false
	}
}
