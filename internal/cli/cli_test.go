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

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/jslint/internal/cli"
)

const (
	cleanJS = "function aa(bb) {\n    return bb + 1;\n}\naa(0);\n"
	weirdJS = "let aa = 0;\nlet bb = aa === aa;\n"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return dir
}

func runMain(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = Main(context.Background(), args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestMainClean(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"clean.js": cleanJS})

	code, _, stderr := runMain(t, "--color=never", dir)

	assert.Equal(t, ExitOK, code)
	assert.Empty(t, stderr)
}

func TestMainDiagnostics(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"src/weird.js": weirdJS, "clean.js": cleanJS})

	code, _, stderr := runMain(t, "--color=never", dir)

	assert.Equal(t, ExitDiagnostics, code)
	assert.Contains(t, stderr, "jslint "+filepath.ToSlash(filepath.Join(dir, "src", "weird.js")))
	assert.Contains(t, stderr, "// line 2, column 13")
	assert.NotContains(t, stderr, "clean.js")
	assert.NotContains(t, stderr, "\x1b[")
}

func TestMainColor(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"weird.js": weirdJS})

	code, _, stderr := runMain(t, "--color=always", dir)

	assert.Equal(t, ExitDiagnostics, code)
	assert.Contains(t, stderr, "\x1b[1mjslint ")
}

func TestMainMissing(t *testing.T) {
	t.Parallel()

	code, _, stderr := runMain(t, filepath.Join(t.TempDir(), "missing.js"))

	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "jslint: ")
}

func TestMainBadFlag(t *testing.T) {
	t.Parallel()

	code, _, _ := runMain(t, "--workers=0", t.TempDir())

	assert.Equal(t, ExitError, code)
}

func TestMainJSON(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"data.json": `{"a":1,"a":2}`})

	code, stdout, _ := runMain(t, "--json", dir)
	require.Equal(t, ExitDiagnostics, code)

	var reports []struct {
		File   string `json:"file"`
		Blocks []struct {
			Name   string `json:"name"`
			Result struct {
				OK       bool `json:"ok"`
				JSON     bool `json:"json"`
				Warnings []struct {
					Code   string `json:"code"`
					Line   int    `json:"line"`
					Column int    `json:"column"`
				} `json:"warnings"`
			} `json:"result"`
		} `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &reports))

	require.Len(t, reports, 1)
	require.Len(t, reports[0].Blocks, 1)

	res := reports[0].Blocks[0].Result
	assert.False(t, res.OK)
	assert.True(t, res.JSON)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "duplicate_a", res.Warnings[0].Code)
	assert.Equal(t, 8, res.Warnings[0].Column)
}

func TestMainSkip(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"lib.min.js":          weirdJS,
		"yarn-lock.json":      `{"a":1,"a":2}`,
		"node_modules/dep.js": weirdJS,
		".cache/weird.js":     weirdJS,
		"vendor/weird.js":     weirdJS,
		"empty.js":            "",
		"notes.txt":           weirdJS,
		"gen/code.gen.js":     weirdJS,
		".jslint.yaml":        "exclude:\n  - vendor\n  - \"*.gen.js\"\n",
		"src/clean.js":        cleanJS,
		"docs/readme.md":      "# Readme\n",
		"scripts/build.sh":    "echo ok\n",
		"public/index.html":   "<p>hello</p>\n",
		"lib/clean.mjs":       cleanJS,
	})

	code, _, stderr := runMain(t, "--color=never", dir)

	assert.Equal(t, ExitOK, code, stderr)
}

func TestMainExplicitFile(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"lib.min.js": weirdJS})

	code, _, _ := runMain(t, "--color=never", filepath.Join(dir, "lib.min.js"))

	assert.Equal(t, ExitDiagnostics, code)
}

func TestMainConfigOverride(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"layout.js":    "let aa=0;\n",
		".jslint.yaml": "white: true\n",
	})

	code, _, stderr := runMain(t, "--color=never", dir)
	assert.Equal(t, ExitOK, code, stderr)

	code, _, stderr = runMain(t, "--color=never", "--white=false", dir)
	assert.Equal(t, ExitDiagnostics, code)
	assert.Contains(t, stderr, "// line 1, column 7")
}

func TestMainConfigFlag(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"src/layout.js": "let aa=0;\n",
		"lint.yaml":     "white: true\n",
	})

	code, _, stderr := runMain(t, "--config", filepath.Join(dir, "lint.yaml"), filepath.Join(dir, "src"))
	assert.Equal(t, ExitOK, code, stderr)

	code, _, stderr = runMain(t, "--config", filepath.Join(dir, "missing.yaml"), dir)
	assert.Equal(t, ExitError, code)
	assert.Contains(t, stderr, "jslint: ")
}

func TestMainEmbedded(t *testing.T) {
	t.Parallel()

	html := "<!DOCTYPE html>\n<html>\n<body>\n<script>\nlet aa = 0;\nlet bb = aa === aa;\n</script>\n</body>\n</html>\n"
	dir := writeFiles(t, map[string]string{"index.html": html})

	code, _, stderr := runMain(t, "--color=never", dir)

	assert.Equal(t, ExitDiagnostics, code)
	assert.Contains(t, stderr, "index.html.<script>.js")
	assert.Contains(t, stderr, "// line 6, column 13")
}

func TestMainInlineScript(t *testing.T) {
	t.Parallel()

	html := "<html><body><script>let aa = 0; let bb = aa === aa;</script></body></html>\n"
	dir := writeFiles(t, map[string]string{"inline.html": html})

	code, stdout, _ := runMain(t, "--json", dir)
	require.Equal(t, ExitDiagnostics, code)

	var reports []struct {
		Blocks []struct {
			Result struct {
				Warnings []struct {
					Code             string `json:"code"`
					Line             int    `json:"line"`
					Column           int    `json:"column"`
					FormattedMessage string `json:"formatted_message"`
				} `json:"warnings"`
			} `json:"result"`
		} `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &reports))
	require.Len(t, reports, 1)
	require.Len(t, reports[0].Blocks, 1)

	found := false

	for _, w := range reports[0].Blocks[0].Result.Warnings {
		if w.Code != "weird_relation_a" {
			continue
		}

		found = true

		assert.Equal(t, 1, w.Line)
		assert.Equal(t, 45, w.Column)
		assert.Contains(t, w.FormattedMessage, "// line 1, column 45")
	}

	assert.True(t, found, "weird_relation_a not reported")
}
