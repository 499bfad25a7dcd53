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

//go:generate go tool stringer -type=Arity,Role -linecomment

// Arity is the syntactic role the parser assigned to a token.
type Arity uint8

const (
	ArityNone       Arity = iota // none
	ArityVariable                // variable
	ArityUnary                   // unary
	ArityBinary                  // binary
	ArityTernary                 // ternary
	ArityAssignment              // assignment
	ArityPre                     // pre
	ArityPost                    // post
	ArityStatement               // statement
	ArityFunction                // function

	NumArities // (count)
)

// Role is the kind of declaration that introduced a binding.
type Role uint8

const (
	RoleVariable  Role = iota // variable
	RoleParameter             // parameter
	RoleFunction              // function
	RoleException             // exception
	RoleLabel                 // label
)
