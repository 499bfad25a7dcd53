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

package config

//go:generate go tool stringer -type=Option -linecomment

// Option is a single recognized analysis option.
type Option uint32

const (
	// Bitwise tolerates bitwise operators.
	Bitwise Option = 1 << iota // bitwise

	// Browser assumes a browser environment and predefines its globals.
	Browser // browser

	// Convert tolerates conversion operators like !!x and +x.
	Convert // convert

	// Couch predefines the CouchDB globals.
	Couch // couch

	// Debug keeps internal stack traces of stop diagnostics.
	Debug // debug

	// Devel tolerates debugger, TODO comments and predefines the console globals.
	Devel // devel

	// Eval tolerates eval and Function.
	Eval // eval

	// For tolerates the for statement.
	For // for

	// Getset tolerates getters and setters in object literals.
	Getset // getset

	// Long tolerates lines longer than 80 characters.
	Long // long

	// Name tolerates bad property names.
	Name // name

	// Node assumes a Node.js environment and predefines its globals.
	Node // node

	// Single tolerates single quoted strings.
	Single // single

	// TestInternalError raises an internal error at the end of the analysis.
	TestInternalError // test_internal_error

	// This tolerates this.
	This // this

	// Unordered tolerates unordered object keys and parameters.
	Unordered // unordered

	// White tolerates any whitespace layout.
	White // white
)

// Options is the set of enabled options of an analysis.
type Options = BitMask[Option]

// AllOptions lists every recognized option in name order.
var AllOptions = [...]Option{
	Bitwise, Browser, Convert, Couch, Debug, Devel, Eval, For, Getset,
	Long, Name, Node, Single, TestInternalError, This, Unordered, White,
}

var optionNames = func() map[string]Option {
	m := make(map[string]Option, len(AllOptions))
	for _, o := range AllOptions {
		m[o.String()] = o
	}

	return m
}()

// ParseOption returns the option spelled name.
func ParseOption(name string) (Option, bool) {
	o, ok := optionNames[name]

	return o, ok
}

// Names returns the names of the enabled options, in name order.
func Names(opts Options) []string {
	names := make([]string, 0, len(AllOptions))
	for o := range opts.All() {
		names = append(names, o.String())
	}

	return names
}
