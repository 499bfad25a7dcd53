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
	"flag"

	"fillmore-labs.com/jslint/internal/lexer"
)

// Edition identifies the rule set implemented by the linter.
const Edition = "v2021.6.4-beta"

const name = "jslint"

// Linter lints ECMAScript and JSON source.
type Linter struct {
	// Flags binds the linter options to command line flags. Flags must be
	// parsed before the first call to [Linter.Lint].
	Flags flag.FlagSet

	r *runOptions
}

// New creates a [Linter] configured with opts.
func New(opts ...Option) *Linter {
	r := makeRunOptions(opts)

	l := &Linter{r: r}
	l.Flags.Init(name, flag.ContinueOnError)
	registerFlags(&l.Flags, r)

	return l
}

// Lint analyzes source and returns its diagnostics.
func (l *Linter) Lint(ctx context.Context, source string) *Result {
	return l.r.run(ctx, lexer.SplitLines(source))
}

// LintLines analyzes source that has already been split into lines.
func (l *Linter) LintLines(ctx context.Context, lines []string) *Result {
	return l.r.run(ctx, lines)
}
