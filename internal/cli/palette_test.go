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

package cli

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fillmore-labs.com/jslint/analyzer"
	"fillmore-labs.com/jslint/internal/report"
)

func TestPaletteBlock(t *testing.T) {
	t.Parallel()

	warnings := make([]*report.Warning, 12)
	for i := range warnings {
		warnings[i] = &report.Warning{Message: "Unused 'aa'.", Line: i + 1, Column: 5, LineSource: "let aa;"}
	}

	b := blockReport{Name: "src/aa.js", Result: &analyzer.Result{Warnings: warnings}}

	plain := newPalette(io.Discard, false).block(b)
	lines := strings.Split(plain, "\n")

	assert.Equal(t, "jslint src/aa.js", lines[0])
	assert.Equal(t, "  1 Unused 'aa'. // line 1, column 5", lines[1])
	assert.Len(t, lines, 1+2*maxShown)
	assert.NotContains(t, plain, "\x1b[")

	colored := newPalette(io.Discard, true).block(b)

	assert.True(t, strings.HasPrefix(colored, "\x1b[1mjslint src/aa.js"), colored)
	assert.Contains(t, colored, "\x1b[31mUnused 'aa'.")
	assert.Contains(t, colored, "\x1b[2m// line 1, column 5")
}
