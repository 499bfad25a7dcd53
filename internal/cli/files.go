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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"fillmore-labs.com/jslint/analyzer"
	"fillmore-labs.com/jslint/internal/extract"
	"fillmore-labs.com/jslint/internal/settings"
)

// rxSkip matches paths of generated or vendored files.
var rxSkip = regexp.MustCompile(`\b(?:lock|min|raw|rollup)\b`)

// target is a path given on the command line with its configuration.
type target struct {
	root     string
	dir      bool
	settings settings.Settings

	plain, browser, node *analyzer.Linter
}

func (r *runner) newTarget(root string) (*target, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}

	t := &target{root: filepath.Clean(root), dir: info.IsDir()}

	path := r.opts.config
	if path == "" {
		dir := t.root
		if !t.dir {
			dir = filepath.Dir(dir)
		}

		path, _ = settings.Find(dir)
	}

	if path != "" {
		if t.settings, err = settings.Load(path); err != nil {
			return nil, err
		}

		r.log.Debug("Configuration loaded", "root", root, "file", path)
	}

	opts := append(t.settings.Options(), r.flagged...)

	// Environment defaults of embedded scripts yield to explicit options.
	t.plain = analyzer.New(opts...)
	t.browser = analyzer.New(append([]analyzer.Option{analyzer.WithBrowser(true)}, opts...)...)
	t.node = analyzer.New(append([]analyzer.Option{analyzer.WithNode(true)}, opts...)...)

	return t, nil
}

func (t *target) linter(b extract.Block) *analyzer.Linter {
	switch {
	case b.Browser:
		return t.browser

	case b.Node:
		return t.node

	default:
		return t.plain
	}
}

// files lists the files of the target to lint. A file given explicitly is
// always linted.
func (t *target) files() ([]string, error) {
	if !t.dir {
		return []string{t.root}, nil
	}

	var files []string

	err := filepath.WalkDir(t.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != t.root && t.skipDir(path, d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if t.accept(path, d) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("can't list %s: %w", t.root, err)
	}

	return files, nil
}

func (t *target) skipDir(path, name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules" || t.settings.Excluded(t.rel(path))
}

// accept reports whether a file found while walking the target is linted.
func (t *target) accept(path string, d fs.DirEntry) bool {
	if !extract.Lintable(path) || rxSkip.MatchString(t.rel(path)) || t.settings.Excluded(t.rel(path)) {
		return false
	}

	info, err := d.Info()
	if err != nil {
		return false
	}

	size := info.Size()

	return size > 0 && size < t.settings.Limit()
}

// contains reports whether path belongs to the target.
func (t *target) contains(path string) bool {
	if !t.dir {
		return filepath.Clean(path) == t.root
	}

	rel, err := filepath.Rel(t.root, path)

	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (t *target) rel(path string) string {
	rel, err := filepath.Rel(t.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}

	return filepath.ToSlash(rel)
}
