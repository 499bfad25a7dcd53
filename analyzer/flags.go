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
	"flag"
	"strings"

	"fillmore-labs.com/jslint/internal/config"
)

var usage = map[config.Option]string{
	config.Bitwise:           "tolerate bitwise operators",
	config.Browser:           "assume a browser environment",
	config.Convert:           "tolerate conversion operators",
	config.Couch:             "assume a CouchDB environment",
	config.Debug:             "record stack traces of diagnostics",
	config.Devel:             "tolerate debugger statements and console globals",
	config.Eval:              "tolerate eval",
	config.For:               "tolerate for statements",
	config.Getset:            "tolerate getters and setters",
	config.Long:              "tolerate long lines",
	config.Name:              "tolerate bad property names",
	config.Node:              "assume a Node.js environment",
	config.Single:            "tolerate single quoted strings",
	config.TestInternalError: "raise an internal error",
	config.This:              "tolerate this",
	config.Unordered:         "tolerate unordered properties and parameters",
	config.White:             "skip whitespace checks",
}

// registerFlags binds the option values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	if flags == nil {
		flags = flag.CommandLine
	}

	for _, o := range config.AllOptions {
		flags.Var(boolValue[config.Option, *config.Options]{flags: &r.options, value: o}, o.String(), usage[o])
	}

	flags.Var((*globalsValue)(&r.globals), "global", "predeclare a global `name` (repeatable, comma separated)")
}

// globalsValue is a repeatable [flag.Value] collecting global names.
type globalsValue []string

// Set implements [flag.Value].
func (g *globalsValue) Set(s string) error {
	for name := range strings.SplitSeq(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			*g = append(*g, name)
		}
	}

	return nil
}

// String implements [flag.Value].
func (g *globalsValue) String() string {
	if g == nil {
		return ""
	}

	return strings.Join(*g, ",")
}
