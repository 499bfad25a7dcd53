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

package session

import (
	"fmt"
	"runtime/debug"

	"fillmore-labs.com/jslint/internal/report"
	"fillmore-labs.com/jslint/internal/syntax"
)

// stopSignal unwinds a phase to its entry point.
type stopSignal struct {
	warning *report.Warning
}

// Warn reports a diagnostic at a token. A token keeps only its first
// diagnostic, later ones return nil. The first slot defaults to the token's
// artifact.
func (s *Session) Warn(code report.Code, at syntax.Index, args ...string) *report.Warning {
	t := s.Tree.At(at)
	if t.Warning != nil {
		return nil
	}

	if len(args) == 0 {
		args = []string{t.Artifact()}
	} else if args[0] == "" {
		args[0] = t.Artifact()
	}

	t.Warning = s.WarnAt(code, t.Line, t.From+1, args...)

	return t.Warning
}

// Stop reports a fatal diagnostic at a token, replacing any earlier
// diagnostic of the token, and aborts the phase.
func (s *Session) Stop(code report.Code, at syntax.Index, args ...string) {
	s.Tree.At(at).Warning = nil
	panic(stopSignal{warning: s.Warn(code, at, args...)})
}

// StopAt reports a fatal diagnostic at a position and aborts the phase.
func (s *Session) StopAt(code report.Code, line, column int, args ...string) {
	panic(stopSignal{warning: s.WarnAt(code, line, column, args...)})
}

// Assert aborts the analysis with an internal error when cond is false.
func (s *Session) Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(report.Internalf(format, args...))
	}
}

// Recover converts an aborted phase into an error. It must be deferred by
// every phase entry point.
func (s *Session) Recover(err *error) {
	switch r := recover().(type) {
	case nil:

	case stopSignal:
		*err = &report.StopError{Warning: r.warning}

	case *report.InternalError:
		*err = r

	default:
		*err = &report.InternalError{
			Message: fmt.Sprintf("Internal Error: %v", r),
			Stack:   string(debug.Stack()),
		}
	}
}
