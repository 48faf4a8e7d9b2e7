// Copyright 2025 go-highway Authors
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

package extrema

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the buffer or the requested range
	// holds no elements.
	ErrEmptyInput = errors.New("extrema: empty input")

	// ErrInvalidRange is returned when a range does not fit in the buffer.
	ErrInvalidRange = errors.New("extrema: invalid range")
)

// WorkerError reports a worker that did not finish its share of a parallel
// reduction, either because it panicked or because its context was done.
type WorkerError struct {
	Worker int
	Start  int
	End    int
	Cause  error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("extrema: worker %d failed on [%d, %d): %v", e.Worker, e.Start, e.End, e.Cause)
}

func (e *WorkerError) Unwrap() error {
	return e.Cause
}

// checkRange validates [start, start+length) against a buffer of n elements.
func checkRange(n, start, length int) error {
	if start < 0 || length < 0 || start > n || length > n-start {
		return fmt.Errorf("%w: start %d, length %d, buffer of %d", ErrInvalidRange, start, length, n)
	}
	if length == 0 {
		return ErrEmptyInput
	}
	return nil
}

// panicError turns a recovered panic value into an error.
func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("panic: %w", err)
	}
	return fmt.Errorf("panic: %v", r)
}
