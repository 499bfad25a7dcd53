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
	"encoding/json"
	"fmt"
	"strings"
)

// maxShown is the number of diagnostics printed per block.
const maxShown = 10

// render writes the reports and tells whether any block has diagnostics.
func (r *runner) render(reports []fileReport) (bool, error) {
	warned := false

	for _, f := range reports {
		if f.warned() {
			warned = true

			break
		}
	}

	if r.opts.json {
		enc := json.NewEncoder(r.stdout)
		enc.SetIndent("", "  ")

		if reports == nil {
			reports = []fileReport{}
		}

		if err := enc.Encode(reports); err != nil {
			return warned, fmt.Errorf("can't write results: %w", err)
		}

		return warned, nil
	}

	p := newPalette(r.stderr, r.opts.color.Enabled(r.stderr))

	for _, f := range reports {
		for _, b := range f.Blocks {
			if len(b.Result.Warnings) == 0 {
				continue
			}

			if _, err := fmt.Fprintln(r.stderr, p.block(b)); err != nil {
				return warned, fmt.Errorf("can't write diagnostics: %w", err)
			}
		}
	}

	return warned, nil
}

// block renders a header and the first diagnostics of a block.
func (p palette) block(b blockReport) string {
	var s strings.Builder

	s.WriteString(p.header.Render("jslint " + b.Name))

	for i, w := range b.Result.Warnings {
		if i == maxShown {
			break
		}

		s.WriteByte('\n')
		s.WriteString(p.warning.Format(i, w))
	}

	return s.String()
}
