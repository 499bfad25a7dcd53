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

package extract

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tree_sitter_markdown "github.com/smacker/go-tree-sitter/markdown/tree-sitter-markdown"
)

const (
	markdownFencedCodeBlock  = "fenced_code_block"
	markdownInfoString       = "info_string"
	markdownLanguage         = "language"
	markdownCodeFenceContent = "code_fence_content"
)

// Markdown returns the code blocks of a Markdown document fenced as javascript.
func Markdown(ctx context.Context, content []byte) ([]Block, error) {
	tree, err := parse(ctx, tree_sitter_markdown.GetLanguage(), content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var blocks []Block

	walk(tree.RootNode(), func(node *sitter.Node) bool {
		if node.Type() != markdownFencedCodeBlock {
			return true
		}

		var (
			language string
			code     *sitter.Node
		)

		for i := range int(node.ChildCount()) {
			switch child := node.Child(i); child.Type() {
			case markdownInfoString:
				for j := range int(child.ChildCount()) {
					if lang := child.Child(j); lang.Type() == markdownLanguage {
						language = strings.TrimSpace(lang.Content(content))

						break
					}
				}

			case markdownCodeFenceContent:
				code = child
			}
		}

		if language == "javascript" && code != nil {
			blocks = append(blocks, block(code, content, ".<```javascript>.js"))
		}

		return false
	})

	return blocks, nil
}
