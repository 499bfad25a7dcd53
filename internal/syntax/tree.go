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

import "iter"

// Tree stores [Token]s in a [slab list]. Pointers to tokens stay valid while
// new tokens are added.
//
// [slab list]: https://en.wikipedia.org/wiki/Slab_allocation
type Tree struct {
	chunks []*chunk
	count  int
}

// chunk is a fixed-size array of Tokens.
type chunk [chunkSize]Token

// chunkSize defines the number of Tokens stored in a single chunk.
const chunkSize = 127

// New creates and returns a new *[Token] and appends it to the tree.
func (t *Tree) New() *Token {
	if t.count == len(t.chunks)*chunkSize {
		t.chunks = append(t.chunks, new(chunk))
	}

	nr := t.count
	t.count++

	token := &t.chunks[nr/chunkSize][nr%chunkSize]
	token.reset()
	token.Nr = Index(nr)

	return token
}

// At returns the token at index i.
func (t *Tree) At(i Index) *Token {
	return &t.chunks[i/chunkSize][i%chunkSize]
}

// Len is the number of tokens in the tree.
func (t *Tree) Len() int {
	return t.count
}

// All iterates over the tokens in creation order.
func (t *Tree) All() iter.Seq2[Index, *Token] {
	return func(yield func(Index, *Token) bool) {
		for i := range Index(t.count) {
			if !yield(i, t.At(i)) {
				return
			}
		}
	}
}
