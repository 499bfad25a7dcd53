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
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"fillmore-labs.com/jslint/internal/report"
)

// palette holds the styles of text output, bound to the writer's renderer.
type palette struct {
	header  lipgloss.Style
	warning report.Styles
}

func newPalette(w io.Writer, color bool) palette {
	r := lipgloss.NewRenderer(w)

	// Whether to color is decided by --color, not by the renderer.
	if color {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	message := r.NewStyle().Foreground(lipgloss.Color("1"))
	location := r.NewStyle().Faint(true)

	return palette{
		header: r.NewStyle().Bold(true),
		warning: report.Styles{
			Message:  func(s string) string { return message.Render(s) },
			Location: func(s string) string { return location.Render(s) },
		},
	}
}
