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

// Binding is a declared name.
type Binding struct {
	Name     string
	Decl     Index // InvalidNode for predeclared globals
	Line     int
	Role     Role
	Parent   *Function
	Used     int
	Writable bool
	Init     bool
	Dead     bool
	Closure  bool

	// Calls records the functions called by a function statement, for
	// references to function statements that are not yet defined.
	Calls map[string]Index
}

// Function is a function scope. The global scope and catch clauses are
// functions, too.
type Function struct {
	Token Index // InvalidNode for the global scope
	Name  Index // the name token, if any
	Anon  string
	Line  int

	Context    map[string]*Binding
	Parameters []Index
	Signature  string

	Level   int
	Async   int
	Loop    int
	Switch  int
	Try     int
	Finally int
}

// DisplayName is the name of the function used in reports.
func (f *Function) DisplayName(tree *Tree) string {
	if f.Name != InvalidNode {
		return tree.At(f.Name).Value
	}

	return f.Anon
}
