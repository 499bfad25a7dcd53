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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lockedBuffer is a bytes.Buffer safe for concurrent use.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func TestWatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clean.js"), []byte("function aa(bb) {\n    return bb + 1;\n}\naa(0);\n"), 0o644))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	var stdout bytes.Buffer

	stderr := &lockedBuffer{}
	done := make(chan int, 1)

	go func() {
		done <- Main(ctx, []string{"--watch", "--color=never", dir}, &stdout, stderr)
	}()

	weird := filepath.Join(dir, "sub", "weird.js")
	require.NoError(t, os.Mkdir(filepath.Dir(weird), 0o755))

	// Rewrite until the watcher has picked up the new directory and file.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(weird, []byte("let aa = 0;\nlet bb = aa === aa;\n"), 0o644)

		return strings.Contains(stderr.String(), "jslint "+filepath.ToSlash(weird))
	}, 10*time.Second, 50*time.Millisecond)

	assert.Contains(t, stderr.String(), "// line 2, column 13")

	cancel()

	select {
	case code := <-done:
		assert.Equal(t, ExitOK, code)

	case <-time.After(10 * time.Second):
		t.Fatal("Watch did not stop after cancellation")
	}
}

func TestOwner(t *testing.T) {
	t.Parallel()

	dir := &target{root: filepath.FromSlash("/src/app"), dir: true}
	file := &target{root: filepath.FromSlash("/src/lib.js")}
	targets := []*target{dir, file}

	tests := []struct {
		path string
		want *target
	}{
		{"/src/app/a.js", dir},
		{"/src/app/sub/b.js", dir},
		{"/src/lib.js", file},
		{"/src/application/c.js", nil},
		{"/src/other.js", nil},
	}

	for _, tt := range tests {
		if got := owner(targets, filepath.FromSlash(tt.path)); got != tt.want {
			t.Errorf("Got target %v for %s, expected %v", got, tt.path, tt.want)
		}
	}
}
