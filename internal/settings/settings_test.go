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

package settings_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/jslint/analyzer"
	. "fillmore-labs.com/jslint/internal/settings"
)

func TestSettingsOptions(t *testing.T) {
	t.Parallel()

	var all strings.Builder
	for i := range reflect.TypeFor[Settings]().NumField() {
		f := reflect.TypeFor[Settings]().Field(i)
		if f.Type.Kind() != reflect.Pointer || f.Type.Elem().Kind() != reflect.Bool {
			continue
		}

		all.WriteString(f.Tag.Get("yaml") + ": true\n")
	}

	all.WriteString("globals: [aa]\n")

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", all.String(), 18},
		{"none", ``, 0},
		{"some", "node: false\nwhite: true\n", 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s, err := Decode(strings.NewReader(tc.settings))
			require.NoError(t, err)

			got := s.Options()
			assert.Len(t, got, tc.want, "options %s", analyzer.Options(got).LogValue())
		})
	}
}

func TestDecodeUnknown(t *testing.T) {
	t.Parallel()

	_, err := Decode(strings.NewReader("strict: true\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	s, err := Load("testdata/jslint.yaml")
	require.NoError(t, err)

	require.NotNil(t, s.Browser)
	assert.True(t, *s.Browser)
	assert.Equal(t, []string{"jQuery"}, s.Globals)
	assert.Equal(t, int64(4096), s.Limit())

	assert.True(t, s.Excluded("lib/a.gen.js"))
	assert.True(t, s.Excluded("vendor/b.js"))
	assert.False(t, s.Excluded("lib/b.js"))
}

func TestExcludedRecursive(t *testing.T) {
	t.Parallel()

	s := Settings{Exclude: []string{"**/gen/*.js", "*.min.js", "build"}}

	for _, rel := range []string{"gen/x.js", "a/gen/x.js", "a/b/gen/x.js", "a/lib.min.js", "build", "a/build"} {
		assert.True(t, s.Excluded(rel), rel)
	}

	for _, rel := range []string{"gen/sub/x.js", "a/gen.js", "a/gen/x.ts", "builder"} {
		assert.False(t, s.Excluded(rel), rel)
	}
}

func TestLimitDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(DefaultMaxFileSize), Settings{}.Limit())
}

func TestFind(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "aa", "bb")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("node: true\n"), 0o644))

	path, ok := Find(nested)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, FileName), path)
}
