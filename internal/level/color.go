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

// Package level defines enumerated command line settings.
package level

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Color specifies when diagnostics are colored.
type Color uint8

const (
	// ColorAuto colors output written to a terminal.
	ColorAuto Color = iota

	// ColorAlways always colors output.
	ColorAlways

	// ColorNever disables colors.
	ColorNever
)

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	switch c {
	case ColorAuto:
		return []byte("auto"), nil

	case ColorAlways:
		return []byte("always"), nil

	case ColorNever:
		return []byte("never"), nil

	default:
		return nil, fmt.Errorf("unknown color level %d", c)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "auto":
		*c = ColorAuto

	case "always", "true", "on":
		*c = ColorAlways

	case "never", "false", "off":
		*c = ColorNever

	default:
		return fmt.Errorf("unknown color level %q", string(text))
	}

	return nil
}

// String implements the flag value interface.
func (c Color) String() string {
	text, err := c.MarshalText()
	if err != nil {
		return err.Error()
	}

	return string(text)
}

// Set implements the flag value interface.
func (c *Color) Set(s string) error {
	return c.UnmarshalText([]byte(s))
}

// Type names the flag value in usage messages.
func (Color) Type() string {
	return "when"
}

// Enabled reports whether output written to w should be colored.
func (c Color) Enabled(w io.Writer) bool {
	switch c {
	case ColorAlways:
		return true

	case ColorNever:
		return false
	}

	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fd := file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
