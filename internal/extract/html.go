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
	"github.com/smacker/go-tree-sitter/html"
)

const (
	htmlScriptElement  = "script_element"
	htmlStartTag       = "start_tag"
	htmlRawText        = "raw_text"
	htmlAttribute      = "attribute"
	htmlAttributeName  = "attribute_name"
	htmlAttributeValue = "attribute_value"
	htmlQuotedValue    = "quoted_attribute_value"
)

// HTML returns the inline scripts of an HTML document, to be linted in a
// browser environment.
func HTML(ctx context.Context, content []byte) ([]Block, error) {
	tree, err := parse(ctx, html.GetLanguage(), content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var blocks []Block

	walk(tree.RootNode(), func(node *sitter.Node) bool {
		if node.Type() != htmlScriptElement {
			return true
		}

		var text *sitter.Node

		for i := range int(node.ChildCount()) {
			switch child := node.Child(i); child.Type() {
			case htmlStartTag:
				if !javascript(child, content) {
					return false
				}

			case htmlRawText:
				text = child
			}
		}

		if text != nil {
			b := block(text, content, ".<script>.js")
			b.Browser = true
			blocks = append(blocks, b)
		}

		return false
	})

	return blocks, nil
}

// javascript reports whether a script start tag holds inline ECMAScript.
func javascript(tag *sitter.Node, content []byte) bool {
	for i := range int(tag.ChildCount()) {
		attr := tag.Child(i)
		if attr.Type() != htmlAttribute {
			continue
		}

		var name, value string

		for j := range int(attr.ChildCount()) {
			switch part := attr.Child(j); part.Type() {
			case htmlAttributeName:
				name = strings.ToLower(part.Content(content))

			case htmlAttributeValue:
				value = part.Content(content)

			case htmlQuotedValue:
				value = strings.Trim(part.Content(content), `"'`)
			}
		}

		switch name {
		case "src":
			return false

		case "type":
			switch strings.ToLower(value) {
			case "", "module", "text/javascript", "application/javascript":

			default:
				return false
			}
		}
	}

	return true
}
