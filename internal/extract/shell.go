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

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
)

const (
	bashCommand     = "command"
	bashCommandName = "command_name"
	bashRawString   = "raw_string"
	bashAssignment  = "variable_assignment"
)

// Shell returns the single quoted scripts of `node -e` commands, to be linted
// in a Node.js environment.
func Shell(ctx context.Context, content []byte) ([]Block, error) {
	tree, err := parse(ctx, bash.GetLanguage(), content)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var blocks []Block

	walk(tree.RootNode(), func(node *sitter.Node) bool {
		if node.Type() != bashCommand {
			return true
		}

		if script := nodeScript(node, content); script != nil {
			b := block(script, content, ".<node -e>.js")
			b.Source = b.Source[1 : len(b.Source)-1]
			b.Column++
			b.Node = true
			blocks = append(blocks, b)
		}

		return true
	})

	return blocks, nil
}

// nodeScript returns the raw string argument following -e of a node command.
func nodeScript(command *sitter.Node, content []byte) *sitter.Node {
	isNode, eval := false, false

	for i := range int(command.NamedChildCount()) {
		arg := command.NamedChild(i)

		switch {
		case arg.Type() == bashAssignment && !isNode:
			continue

		case arg.Type() == bashCommandName:
			isNode = arg.Content(content) == "node"

		case !isNode:
			return nil

		case eval:
			if arg.Type() == bashRawString {
				return arg
			}

			return nil

		default:
			eval = arg.Content(content) == "-e"
		}
	}

	return nil
}
