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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/jslint/analyzer"
	"fillmore-labs.com/jslint/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Option
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.Node,
			args:    []string{"-browser"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.Browser,
			args:    []string{"-browser=false"},
			want:    false,
		},
		{
			name:    "On",
			initial: config.Node,
			args:    []string{"-browser=on"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags := config.NewBitMask(tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.Browser
			fv := NewOptionValue(&flags, value)
			fs.Var(fv, "browser", "assume a browser environment")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Got flag value %v, expected %v", fv.Get(), tt.want)
			}

			if got := flags.Enabled(value); got != tt.want {
				t.Errorf("Got browser enabled %v, expected %v", got, tt.want)
			}

			if got := flags.Enabled(tt.initial); tt.initial != value && !got {
				t.Errorf("Expected %s to stay enabled", tt.initial)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.Options

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.Var(NewOptionValue(&flags, config.Node), "node", "assume a Node.js environment")

	if err := fs.Parse([]string{"-node=maybe"}); err == nil {
		t.Error("Expected an error for an invalid boolean")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	flags := config.NewBitMask(config.White)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewOptionValue(&flags, config.White)
	fs.Var(fv, "white", "skip whitespace checks")

	const expectedUsage = `
  -white
    	skip whitespace checks (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Got usage %q, expected suffix %q", got, want)
	}
}
