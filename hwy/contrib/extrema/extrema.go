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

// MaxMin returns the maximum and minimum of buf, scanning on the calling
// goroutine. It returns ErrEmptyInput for an empty buf.
func MaxMin[T hwy.Lanes](buf []T) (hi, lo T, err error) {
	return MaxMinRange(buf, 0, len(buf))
}

// MaxMinRange is MaxMin over buf[start:start+length]. A range that does not
// fit in buf is ErrInvalidRange; an empty one is ErrEmptyInput.
func MaxMinRange[T hwy.Lanes](buf []T, start, length int) (hi, lo T, err error) {
	return DefaultDispatcher[T]().MaxMinRange(buf, start, length)
}

// ParallelMaxMin starts a reduction of buf across workers and returns its
// Future. Invalid input is reported here, not through the Future.
//
// Without WithWorkers the worker count is ceil(len(buf)/MinElementsPerWorker)
// capped at GOMAXPROCS, not GOMAXPROCS itself: small buffers are scanned by a
// single worker.
//
// buf must not be modified until the Future is done.
func ParallelMaxMin[T hwy.Lanes](ctx context.Context, buf []T, opts ...Option) (*Future[T], error) {
	return ParallelMaxMinRange(ctx, buf, 0, len(buf), opts...)
}

// ParallelMaxMinRange is ParallelMaxMin over buf[start:start+length]. The
// default worker count is derived from length the same way.
//
// The result equals MaxMinRange for the same range whatever the worker count
// or distribution. If a worker fails the Future reports a *WorkerError;
// cancelling ctx makes workers that have not started yet fail with ctx.Err()
// as the cause.
func ParallelMaxMinRange[T hwy.Lanes](ctx context.Context, buf []T, start, length int, opts ...Option) (*Future[T], error) {
	if err := checkRange(len(buf), start, length); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	s := newScheduler[T](o)
	workers := ResolveWorkers(o.workers, length)
	return startFuture(func() (Result[T], error) {
		return s.Run(ctx, buf, start, length, workers)
	}), nil
}
