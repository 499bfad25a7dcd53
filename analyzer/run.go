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

package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"runtime/trace"
	"slices"

	"fillmore-labs.com/jslint/internal/config"
	"fillmore-labs.com/jslint/internal/layout"
	"fillmore-labs.com/jslint/internal/lexer"
	"fillmore-labs.com/jslint/internal/parser"
	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/session"
	"fillmore-labs.com/jslint/internal/walker"
)

// phase is a stage of the analysis pipeline.
type phase struct {
	name string
	run  func(context.Context, *session.Session) error
}

var phases = [...]phase{
	{"lex", lexer.Lex},
	{"parse", parser.Parse},
	{"walk", walker.Walk},
	{"layout", layout.Verify},
}

// run executes the linter's pipeline over lines.
func (r *runOptions) run(ctx context.Context, lines []string) *Result {
	ctx, task := trace.NewTask(ctx, "JSLint")
	defer task.End()

	s := session.New(r.options, r.globals)
	s.SetLines(lines)

	stopped := false

	for _, p := range phases {
		err := p.run(ctx, s)
		if err == nil {
			slog.DebugContext(ctx, "Phase complete",
				slog.String("phase", p.name),
				slog.Int("tokens", s.Tree.Len()),
				slog.Int("bindings", s.Bindings.Len()),
				slog.Int("warnings", s.Len()))

			continue
		}

		stopped = true

		var (
			stop     *report.StopError
			internal *report.InternalError
		)

		switch {
		case errors.As(err, &stop):
			markStop(stop.Warning)

		case errors.As(err, &internal):
			w := internal.Warning()
			markStop(w)
			s.Add(w)

		default:
			w := report.Internalf("%s: %v", p.name, err).Warning()
			markStop(w)
			s.Add(w)
		}

		slog.DebugContext(ctx, "Phase stopped", slog.String("phase", p.name), slog.Any("error", err))

		break
	}

	warnings := slices.Clone(s.Warnings())
	report.Sort(warnings)

	res := newResult(s, lines)
	res.Warnings = warnings
	res.Stop = stopped
	res.OK = len(warnings) == 0 && !stopped

	slog.DebugContext(ctx, "Lint complete",
		slog.Bool("ok", res.OK),
		slog.Int("warnings", len(warnings)),
		slog.Any("options", config.Names(s.Options)))

	return res
}

// markStop flags the diagnostic that ended the analysis.
func markStop(w *report.Warning) {
	if w == nil || w.Stop {
		return
	}

	w.Stop = true
	w.Message = report.UnfinishedPrefix + w.Message
}
