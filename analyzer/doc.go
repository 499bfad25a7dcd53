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

// Package analyzer lints ECMAScript source in the manner of JSLint.
//
// # Overview
//
// A [Linter] runs five phases over a source text: line splitting, lexing,
// Pratt parsing, a semantic walk of the token tree and a layout check of the
// whitespace between tokens. Each call to [Linter.Lint] is independent, so a
// single Linter can be used from many goroutines.
//
// # Example
//
//	linter := analyzer.New(analyzer.WithBrowser(true), analyzer.WithGlobals("jQuery"))
//
//	result := linter.Lint(ctx, "let aa = 0;\n")
//	for _, w := range result.Warnings {
//	    fmt.Println(w.FormattedMessage)
//	}
//
// # Options
//
// Options can be given to [New], bound to command line flags with
// [Linter.Flags] or enabled inside the source with a /*jslint*/ directive.
// The browser, couch, devel and node options also predefine the globals of
// their environment.
package analyzer
