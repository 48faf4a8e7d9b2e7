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
	"context"

	"github.com/go-highway/numerics/hwy"
)

// Future is the pending result of a parallel reduction. It completes once,
// after every worker of the reduction returned.
type Future[T hwy.Lanes] struct {
	done chan struct{}
	res  Result[T]
	err  error
}

// startFuture runs fn on a new goroutine and returns its Future.
func startFuture[T hwy.Lanes](fn func() (Result[T], error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.res, f.err = Result[T]{}, &WorkerError{Worker: -1, Cause: panicError(r)}
			}
		}()
		f.res, f.err = fn()
	}()
	return f
}

// Done returns a channel that is closed when the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Get blocks until the reduction finished and returns its outcome.
func (f *Future[T]) Get() (Result[T], error) {
	<-f.done
	return f.res, f.err
}

// Wait is Get bounded by ctx. If ctx is done first it returns ctx.Err(); the
// reduction keeps running and can still be collected with Get.
func (f *Future[T]) Wait(ctx context.Context) (Result[T], error) {
	select {
	case <-f.done:
		return f.res, f.err
	case <-ctx.Done():
		return Result[T]{}, ctx.Err()
	}
}
