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

package config_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/jslint/internal/config"
)

func TestBitMaskAll(t *testing.T) {
	t.Parallel()

	opts := NewBitMask(White, Bitwise, Node)
	opts.Disable(White)

	got := slices.Collect(opts.All())
	if want := []Option{Bitwise, Node}; !slices.Equal(got, want) {
		t.Errorf("Got %v, expected %v", got, want)
	}

	if got, want := Names(opts), []string{"bitwise", "node"}; !slices.Equal(got, want) {
		t.Errorf("Got names %q, expected %q", got, want)
	}
}

func TestParseOption(t *testing.T) {
	t.Parallel()

	for _, o := range AllOptions {
		if got, ok := ParseOption(o.String()); !ok || got != o {
			t.Errorf("Got %v, %t for %q, expected %v", got, ok, o.String(), o)
		}
	}

	if _, ok := ParseOption("undefined"); ok {
		t.Error("Expected unknown option to be rejected")
	}
}

func TestOptionGlobals(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		option Option
		has    string
	}{
		{Browser, "document"},
		{Couch, "emit"},
		{Devel, "console"},
		{Node, "__dirname"},
	}

	for _, tt := range tests {
		if !slices.Contains(tt.option.Globals(), tt.has) {
			t.Errorf("Expected %v globals to contain %q", tt.option, tt.has)
		}
	}

	if got := Bitwise.Globals(); got != nil {
		t.Errorf("Got globals %q for bitwise, expected none", got)
	}
}
