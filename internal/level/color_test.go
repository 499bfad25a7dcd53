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

package level_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/jslint/internal/level"
)

func TestColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want Color
	}{
		{"", ColorAuto},
		{"auto", ColorAuto},
		{"Always", ColorAlways},
		{"never", ColorNever},
		{"off", ColorNever},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var c Color
			require.NoError(t, c.Set(tt.text))
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestColorInvalid(t *testing.T) {
	t.Parallel()

	var c Color
	assert.Error(t, c.Set("sometimes"))
}

func TestColorString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "always", ColorAlways.String())
	assert.Equal(t, "when", ColorAuto.Type())
}

func TestColorEnabled(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	assert.True(t, ColorAlways.Enabled(&out))
	assert.False(t, ColorNever.Enabled(&out))
	assert.False(t, ColorAuto.Enabled(&out))
}
