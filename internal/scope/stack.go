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

// Stack tracks the function scopes enclosing the current position.
type Stack struct {
	current *syntax.Function
	outer   []*syntax.Function
}

// NewStack creates a stack whose outermost scope is global.
func NewStack(global *syntax.Function) Stack {
	return Stack{current: global}
}

// Current returns the innermost function scope.
func (s *Stack) Current() *syntax.Function {
	return s.current
}

// Push enters a nested function scope.
func (s *Stack) Push(fn *syntax.Function) {
	s.outer = append(s.outer, s.current)
	s.current = fn
}

// Pop leaves the innermost function scope.
func (s *Stack) Pop() {
	last := len(s.outer) - 1
	s.current = s.outer[last]
	s.outer = s.outer[:last]
}

// Depth returns the number of enclosing function scopes.
func (s *Stack) Depth() int {
	return len(s.outer)
}

// Outer returns the binding of name in the innermost enclosing scope, not
// looking at the current one. Labels are skipped when skipLabels is set.
func (s *Stack) Outer(name string, skipLabels bool) *syntax.Binding {
	for i := len(s.outer) - 1; i >= 0; i-- {
		b, ok := s.outer[i].Context[name]
		if !ok || skipLabels && b.Role == syntax.RoleLabel {
			continue
		}

		return b
	}

	return nil
}
