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
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/trace"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/jslint/analyzer"
	"fillmore-labs.com/jslint/internal/extract"
	"fillmore-labs.com/jslint/internal/report"
)

// runner executes one invocation of the command.
type runner struct {
	opts    commandOptions
	stdout  io.Writer
	stderr  io.Writer
	log     *slog.Logger
	flagged []analyzer.Option
}

// fileReport holds the results of one file.
type fileReport struct {
	File   string        `json:"file"`
	Blocks []blockReport `json:"blocks"`
}

// blockReport holds the result of one linted block of a file.
type blockReport struct {
	Name   string           `json:"name"`
	Line   int              `json:"line,omitempty"`
	Result *analyzer.Result `json:"result"`
}

func (f fileReport) warned() bool {
	for _, b := range f.Blocks {
		if !b.Result.OK {
			return true
		}
	}

	return false
}

func (r *runner) run(ctx context.Context, roots []string) error {
	ctx, task := trace.NewTask(ctx, "JSLintCLI")
	defer task.End()

	targets := make([]*target, 0, len(roots))

	for _, root := range roots {
		t, err := r.newTarget(root)
		if err != nil {
			return err
		}

		targets = append(targets, t)
	}

	reports, err := r.lintTargets(ctx, targets)
	if err != nil {
		return err
	}

	warned, err := r.render(reports)
	if err != nil {
		return err
	}

	if r.opts.watch {
		return r.watch(ctx, targets)
	}

	if warned {
		return ErrDiagnostics
	}

	return nil
}

// lintTargets lints all files of the targets in parallel, bounded by the
// number of workers. Reports are in file order.
func (r *runner) lintTargets(ctx context.Context, targets []*target) ([]fileReport, error) {
	type job struct {
		t    *target
		path string
	}

	var jobs []job

	for _, t := range targets {
		files, err := t.files()
		if err != nil {
			return nil, err
		}

		for _, path := range files {
			jobs = append(jobs, job{t, path})
		}
	}

	reports := make([]fileReport, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.opts.workers)

	for i, j := range jobs {
		g.Go(func() error {
			file, err := r.lintFile(ctx, j.t, j.path)
			if err != nil {
				if !j.t.dir {
					return err
				}

				r.log.Warn("Skipping file", "file", j.path, "error", err)

				return nil
			}

			reports[i] = file

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Drop files skipped after read errors.
	return slices.DeleteFunc(reports, func(f fileReport) bool { return f.File == "" }), nil
}

func (r *runner) lintFile(ctx context.Context, t *target, path string) (fileReport, error) {
	start := time.Now()

	content, err := os.ReadFile(path)
	if err != nil {
		return fileReport{}, err
	}

	blocks, err := extract.File(ctx, path, content)
	if err != nil {
		return fileReport{}, fmt.Errorf("%s: %w", path, err)
	}

	file := fileReport{File: filepath.ToSlash(path), Blocks: make([]blockReport, 0, len(blocks))}

	for _, b := range blocks {
		res := t.linter(b).Lint(ctx, b.Padded())
		hostColumns(res, b)
		file.Blocks = append(file.Blocks, blockReport{Name: file.File + b.Name, Line: b.Line, Result: res})
	}

	r.log.Debug("Linted", "file", file.File, "blocks", len(blocks), "duration", time.Since(start))

	return file, nil
}

// hostColumns moves diagnostics on the first line of an embedded block to the
// columns of the host file.
func hostColumns(res *analyzer.Result, b extract.Block) {
	if b.Column == 0 {
		return
	}

	for i, w := range res.Warnings {
		if column := b.HostColumn(w.Line, w.Column); column != w.Column {
			w.Column = column
			w.FormattedMessage = report.Format(i, w)
		}
	}
}
