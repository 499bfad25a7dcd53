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
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch re-lints files of the targets when they are written or created,
// until ctx is canceled.
func (r *runner) watch(ctx context.Context, targets []*target) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	for _, t := range targets {
		if err := r.watchTarget(w, t); err != nil {
			return err
		}
	}

	r.log.Info("Watching for changes", "targets", len(targets))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}

			r.changed(ctx, w, targets, event)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			r.log.Warn("Watch error", "error", err)
		}
	}
}

func (r *runner) watchTarget(w *fsnotify.Watcher, t *target) error {
	if !t.dir {
		return w.Add(filepath.Dir(t.root))
	}

	return filepath.WalkDir(t.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return err
		}

		if path != t.root && t.skipDir(path, d.Name()) {
			return filepath.SkipDir
		}

		return w.Add(path)
	})
}

func (r *runner) changed(ctx context.Context, w *fsnotify.Watcher, targets []*target, event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	t := owner(targets, event.Name)
	if t == nil {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return
	}

	if info.IsDir() {
		if event.Has(fsnotify.Create) && !t.skipDir(event.Name, info.Name()) {
			if err := w.Add(event.Name); err != nil {
				r.log.Warn("Can't watch directory", "dir", event.Name, "error", err)
			}
		}

		return
	}

	if t.dir && !t.accept(event.Name, fs.FileInfoToDirEntry(info)) {
		return
	}

	file, err := r.lintFile(ctx, t, event.Name)
	if err != nil {
		r.log.Warn("Can't lint file", "file", event.Name, "error", err)

		return
	}

	if _, err := r.render([]fileReport{file}); err != nil {
		r.log.Warn("Can't report", "file", event.Name, "error", err)
	}
}

// owner returns the target containing path.
func owner(targets []*target, path string) *target {
	for _, t := range targets {
		if t.contains(path) {
			return t
		}
	}

	return nil
}
