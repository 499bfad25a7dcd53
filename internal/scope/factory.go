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

// Factory creates and manages [syntax.Binding]s in a [slab list].
//
// [slab list]: https://en.wikipedia.org/wiki/Slab_allocation
type Factory struct {
	start, current *chunk
	count, total   int
}

// chunk is a linked list of fixed-size arrays of Bindings.
type chunk struct {
	bindings [chunkSize]syntax.Binding
	next     *chunk
}

// chunkSize defines the number of Bindings stored in a single chunk.
const chunkSize = 127

// New creates and returns a new *[syntax.Binding] declared by token decl.
func (f *Factory) New(name string, decl syntax.Index, line int) *syntax.Binding {
	if f.count == chunkSize {
		f.current.next = new(chunk)
		f.current = f.current.next
		f.count = 0
		f.total += chunkSize
	} else if f.current == nil {
		f.current = new(chunk)
		f.start = f.current
	}

	f.count++

	binding := &f.current.bindings[f.count-1]
	binding.Name = name
	binding.Decl = decl
	binding.Line = line

	return binding
}

// Len returns the number of bindings created.
func (f *Factory) Len() int {
	return f.total + f.count
}

// All retrieves all Bindings managed by the Factory in creation order.
func (f *Factory) All() []*syntax.Binding {
	if f.current == nil {
		return nil
	}

	bindings := make([]*syntax.Binding, 0, f.count+f.total)
	for next := f.start; next != nil; next = next.next {
		n := chunkSize
		if next == f.current {
			n = f.count
		}

		for i := range n {
			bindings = append(bindings, &next.bindings[i])
		}
	}

	return bindings
}
