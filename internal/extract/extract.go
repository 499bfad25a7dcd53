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

// Package extract finds ECMAScript source embedded in host files.
//
// HTML <script> elements, Markdown code blocks fenced as javascript and
// shell `node -e '...'` arguments are located with tree-sitter grammars. Each
// [Block] remembers the host position it starts at, so diagnostics can be reported
// at host file positions.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
)

// Block is a piece of source to lint.
type Block struct {
	// Name is appended to the host file name in reports, empty for whole files.
	Name string
	// Line is the 0-based host line the source starts on.
	Line int
	// Column is the rune column on that line where the source starts.
	Column int
	// Source is the embedded text.
	Source string

	// Browser and Node request the environment of the host.
	Browser, Node bool
}

// Padded returns the source preceded by Line empty lines.
func (b Block) Padded() string {
	return strings.Repeat("\n", b.Line) + b.Source
}

// HostColumn converts a 1-based column reported on a 1-based line of the
// padded source into a column of the host file.
func (b Block) HostColumn(line, column int) int {
	if line == b.Line+1 {
		return column + b.Column
	}

	return column
}

// Extensions lists the file extensions the linter reads.
var Extensions = [...]string{".html", ".js", ".json", ".md", ".mjs", ".sh"}

// Lintable reports whether path has one of the [Extensions].
func Lintable(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}

	return false
}

// File returns the blocks of content, dispatching on the extension of path.
func File(ctx context.Context, path string, content []byte) ([]Block, error) {
	switch filepath.Ext(path) {
	case ".html":
		return HTML(ctx, content)

	case ".md":
		return Markdown(ctx, content)

	case ".sh":
		return Shell(ctx, content)

	default:
		return []Block{{Source: string(content)}}, nil
	}
}

func parse(ctx context.Context, lang *sitter.Language, content []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}

	return tree, nil
}

// walk calls fn for node and all its descendants in document order. fn
// returns false to skip the children of a node.
func walk(node *sitter.Node, fn func(*sitter.Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	for i := range int(node.ChildCount()) {
		walk(node.Child(i), fn)
	}
}

func block(node *sitter.Node, content []byte, name string) Block {
	start := int(node.StartByte())
	lineStart := bytes.LastIndexByte(content[:start], '\n') + 1

	return Block{
		Name:   name,
		Line:   int(node.StartPoint().Row),
		Column: utf8.RuneCount(content[lineStart:start]),
		Source: node.Content(content),
	}
}
