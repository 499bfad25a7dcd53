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

package report

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrStop is returned when a fatal diagnostic ends the analysis.
var ErrStop = errors.New("analysis stopped")

// ErrInternal is returned when the analyzer detects a bug in itself.
var ErrInternal = errors.New("internal error")

// UnfinishedPrefix starts the message of the diagnostic that stopped an analysis.
const UnfinishedPrefix = "[JSLint was unable to finish]\n"

// StopError carries the fatal diagnostic of an aborted phase.
type StopError struct {
	Warning *Warning
}

func (e *StopError) Error() string {
	return e.Warning.Message
}

func (e *StopError) Unwrap() error {
	return ErrStop
}

// InternalError is an engine invariant violation.
type InternalError struct {
	Message string
	Stack   string
}

// Internalf creates an [InternalError] with the current stack.
func Internalf(format string, args ...any) *InternalError {
	msg := []byte("Internal Error: ")
	msg = fmt.Appendf(msg, format, args...)

	return &InternalError{Message: string(msg), Stack: string(debug.Stack())}
}

func (e *InternalError) Error() string {
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return ErrInternal
}

// Warning converts the internal error to a diagnostic at the start of the file.
func (e *InternalError) Warning() *Warning {
	return &Warning{
		Code:       InternalErrorCode,
		Line:       1,
		Column:     1,
		A:          e.Message,
		Message:    e.Message,
		StackTrace: e.Stack,
	}
}
