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

package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/jslint/internal/extract"
)

func TestHTML(t *testing.T) {
	t.Parallel()

	const page = `<!DOCTYPE html>
<html>
<body>
<script src="lib.js"></script>
<script>
let aa = 0;
</script>
<script type="text/template">
<p>{{aa}}</p>
</script>
</body>
</html>
`

	blocks, err := HTML(t.Context(), []byte(page))
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.Equal(t, 4, b.Line)
	assert.Equal(t, "\nlet aa = 0;\n", b.Source)
	assert.True(t, b.Browser)
	assert.Equal(t, ".<script>.js", b.Name)
}

func TestInlineColumns(t *testing.T) {
	t.Parallel()

	blocks, err := HTML(t.Context(), []byte("<p>é</p><script>let aa=0;</script>\n"))
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.Zero(t, b.Line)
	assert.Equal(t, 16, b.Column)
	assert.Equal(t, "let aa=0;", b.Source)
	assert.Equal(t, 23, b.HostColumn(1, 7))
	assert.Equal(t, 7, b.HostColumn(2, 7))

	blocks, err = Shell(t.Context(), []byte("node -e 'let aa = 0;'\n"))
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, 9, blocks[0].Column)
	assert.Equal(t, 10, blocks[0].HostColumn(1, 1))
}

func TestMarkdown(t *testing.T) {
	t.Parallel()

	const doc = "# Example\n\n```javascript\nlet aa = 0;\n```\n\n```sh\nls\n```\n"

	blocks, err := Markdown(t.Context(), []byte(doc))
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	assert.Equal(t, 3, blocks[0].Line)
	assert.Equal(t, "let aa = 0;\n", blocks[0].Source)
}

func TestShell(t *testing.T) {
	t.Parallel()

	const script = "#!/bin/sh\necho start\nnode -e '\nlet aa = 0;\n'\nnode other.js\n"

	blocks, err := Shell(t.Context(), []byte(script))
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.Equal(t, 2, b.Line)
	assert.Equal(t, "\nlet aa = 0;\n", b.Source)
	assert.True(t, b.Node)
	assert.Equal(t, "\n\n\nlet aa = 0;\n", b.Padded())
}

func TestFile(t *testing.T) {
	t.Parallel()

	blocks, err := File(t.Context(), "a.mjs", []byte("let aa = 0;\n"))
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Empty(t, blocks[0].Name)
	assert.Zero(t, blocks[0].Line)
}

func TestLintable(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]bool{
		"a.js":      true,
		"b/c.json":  true,
		"README.md": true,
		"main.go":   false,
		"Makefile":  false,
	} {
		assert.Equal(t, want, Lintable(path), path)
	}
}
