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

package scope

import "fillmore-labs.com/jslint/internal/syntax"

// Name returns a human-readable name for the kind of a function scope.
func Name(tree *syntax.Tree, fn *syntax.Function) string {
	if fn.Token == syntax.InvalidNode {
		return "global"
	}

	t := tree.At(fn.Token)

	switch t.ID {
	// keep-sorted start newline_separated=yes
	case syntax.Arrow:
		return "arrow function"

	case syntax.Catch:
		return "catch"

	case syntax.FunctionKeyword:
		switch {
		case t.Extra == "get":
			return "getter"

		case t.Extra == "set":
			return "setter"

		case t.Arity == syntax.ArityStatement:
			return "function statement"

		default:
			return "function"
		}

	default:
		return t.ID.String()
		// keep-sorted end
	}
}
