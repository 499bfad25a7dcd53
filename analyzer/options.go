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
	"errors"
	"fmt"
	"log/slog"

	"fillmore-labs.com/jslint/internal/config"
)

// ErrUnknownOption is returned for option names the linter does not recognize.
var ErrUnknownOption = errors.New("unknown option")

// Option configures specific behavior of a [New] linter.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// ParseOption returns the [Option] that sets the option spelled name, as
// used in /*jslint*/ directives.
func ParseOption(name string, value bool) (Option, error) {
	o, ok := config.ParseOption(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOption, name)
	}

	return flagOption{option: o, value: value}, nil
}

type flagOption struct {
	option config.Option
	value  bool
}

func (o flagOption) apply(r *runOptions) {
	r.options.Set(o.option, o.value)
}

func (o flagOption) LogAttr() slog.Attr {
	return slog.Bool(o.option.String(), o.value)
}

// WithBitwise is an [Option] to tolerate bitwise operators.
func WithBitwise(bitwise bool) Option { return flagOption{config.Bitwise, bitwise} }

// WithBrowser is an [Option] to assume a browser environment.
func WithBrowser(browser bool) Option { return flagOption{config.Browser, browser} }

// WithConvert is an [Option] to tolerate conversion operators.
func WithConvert(convert bool) Option { return flagOption{config.Convert, convert} }

// WithCouch is an [Option] to assume a CouchDB environment.
func WithCouch(couch bool) Option { return flagOption{config.Couch, couch} }

// WithDebug is an [Option] to record stack traces of diagnostics.
func WithDebug(debug bool) Option { return flagOption{config.Debug, debug} }

// WithDevel is an [Option] to tolerate development artifacts like debugger statements.
func WithDevel(devel bool) Option { return flagOption{config.Devel, devel} }

// WithEval is an [Option] to tolerate eval.
func WithEval(eval bool) Option { return flagOption{config.Eval, eval} }

// WithFor is an [Option] to tolerate the for statement.
func WithFor(forStatement bool) Option { return flagOption{config.For, forStatement} }

// WithGetset is an [Option] to tolerate getters and setters.
func WithGetset(getset bool) Option { return flagOption{config.Getset, getset} }

// WithLong is an [Option] to tolerate long lines.
func WithLong(long bool) Option { return flagOption{config.Long, long} }

// WithName is an [Option] to tolerate bad property names.
func WithName(name bool) Option { return flagOption{config.Name, name} }

// WithNode is an [Option] to assume a Node.js environment.
func WithNode(node bool) Option { return flagOption{config.Node, node} }

// WithSingle is an [Option] to tolerate single quoted strings.
func WithSingle(single bool) Option { return flagOption{config.Single, single} }

// WithTestInternalError is an [Option] to raise an internal error, for testing.
func WithTestInternalError(fail bool) Option { return flagOption{config.TestInternalError, fail} }

// WithThis is an [Option] to tolerate this.
func WithThis(this bool) Option { return flagOption{config.This, this} }

// WithUnordered is an [Option] to tolerate unordered properties and parameters.
func WithUnordered(unordered bool) Option { return flagOption{config.Unordered, unordered} }

// WithWhite is an [Option] to skip the layout check.
func WithWhite(white bool) Option { return flagOption{config.White, white} }

// WithGlobals is an [Option] to predeclare additional global names.
func WithGlobals(globals ...string) Option { return globalsOption{globals: globals} }

type globalsOption struct{ globals []string }

func (o globalsOption) apply(r *runOptions) {
	r.globals = append(r.globals, o.globals...)
}

func (o globalsOption) LogAttr() slog.Attr {
	return slog.Any("globals", o.globals)
}
