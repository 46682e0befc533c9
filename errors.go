// Copyright 2025 CUE Authors
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

package variant

import (
	"errors"
	"fmt"
)

// ErrUsage is matched, using errors.Is, by every *UsageError.
var ErrUsage = errors.New("variant: invalid use")

// A UsageError reports that a caller broke the contract of an operation,
// for example by reading the wrong alternative out of a variant, or any
// alternative out of an empty one.
//
// A UsageError signals a bug in the calling code. It is only ever used as
// a panic value; the package never returns one and never recovers from one.
type UsageError struct {
	// Op names the failing operation, such as "Get" or "CaseOf3".
	Op string

	// Msg describes the broken precondition.
	Msg string
}

func (e *UsageError) Error() string {
	return "variant: " + e.Op + ": " + e.Msg
}

func (e *UsageError) Is(err error) bool {
	return err == ErrUsage
}

func usagef(op, format string, args ...any) *UsageError {
	return &UsageError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

// internalf reports a broken internal invariant. It is not a UsageError:
// no sequence of calls through the exported API should trigger it.
func internalf(format string, args ...any) error {
	return fmt.Errorf("variant: internal error: "+format, args...)
}
