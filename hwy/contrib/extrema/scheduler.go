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

// Result is the maximum and minimum of a range.
type Result[T hwy.Lanes] struct {
	Max T
	Min T
}

// Merge returns the extrema of r and o together.
func (r Result[T]) Merge(o Result[T]) Result[T] {
	if o.Max > r.Max {
		r.Max = o.Max
	}
	if o.Min < r.Min {
		r.Min = o.Min
	}
	return r
}

// Distributor decides how a range is spread over workers. It calls unit for
// disjoint sub-ranges that together cover [0, length), and returns only after
// every unit call returned. slot identifies the caller's result slot and is in
// [0, Slots(length, workers)); calls sharing a slot never run concurrently.
type Distributor interface {
	// Name is a short label for logs and benchmarks.
	Name() string

	// Slots returns how many result slots Distribute uses.
	Slots(length, workers int) int

	// Distribute runs unit over [0, length) with at most workers concurrent
	// calls. Its error is the first unit error it observed, if any.
	Distribute(length, workers int, unit func(slot, start, end int) error) error
}

// partial is one slot of the per-worker result arena.
type partial[T hwy.Lanes] struct {
	res Result[T]
	ok  bool
	err error
}

func (p *partial[T]) add(r Result[T]) {
	if !p.ok {
		p.res, p.ok = r, true
		return
	}
	p.res = p.res.Merge(r)
}

// Scheduler runs a parallel reduction: it hands the range to a Distributor,
// waits for every unit, then combines the per-slot results.
type Scheduler[T hwy.Lanes] struct {
	dist   Distributor
	kernel func([]T) (T, T)
}

// NewScheduler returns a Scheduler that scans with d and spreads work with
// dist.
func NewScheduler[T hwy.Lanes](d Dispatcher[T], dist Distributor) *Scheduler[T] {
	return &Scheduler[T]{dist: dist, kernel: d.MaxMin}
}

// Distributor returns the distribution strategy of s.
func (s *Scheduler[T]) Distributor() Distributor {
	return s.dist
}

// Run reduces buf[start:start+length] with up to workers workers. The range
// must be valid and non-empty.
//
// A unit that panics or finds ctx done records a *WorkerError in its slot;
// the remaining units still run. After all of them returned, the error of
// the lowest failed slot is reported.
func (s *Scheduler[T]) Run(ctx context.Context, buf []T, start, length, workers int) (Result[T], error) {
	view := buf[start : start+length]
	slots := make([]partial[T], s.dist.Slots(length, workers))

	distErr := s.dist.Distribute(length, workers, func(slot, lo, hi int) error {
		p := &slots[slot]
		if p.err != nil {
			return p.err
		}
		if err := ctx.Err(); err != nil {
			p.err = &WorkerError{Worker: slot, Start: start + lo, End: start + hi, Cause: err}
			return p.err
		}
		r, err := s.scan(view[lo:hi], slot, start+lo, start+hi)
		if err != nil {
			p.err = err
			return err
		}
		p.add(r)
		return nil
	})

	for i := range slots {
		if slots[i].err != nil {
			return Result[T]{}, slots[i].err
		}
	}
	if distErr != nil {
		return Result[T]{}, distErr
	}
	return combine(slots)
}

// scan runs the kernel on one unit, turning a panic into a *WorkerError.
func (s *Scheduler[T]) scan(v []T, worker, start, end int) (r Result[T], err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &WorkerError{Worker: worker, Start: start, End: end, Cause: panicError(rec)}
		}
	}()
	r.Max, r.Min = s.kernel(v)
	return r, nil
}

// combine folds the filled slots into one result.
func combine[T hwy.Lanes](slots []partial[T]) (Result[T], error) {
	var (
		res    Result[T]
		filled bool
	)
	for _, p := range slots {
		if !p.ok {
			continue
		}
		if !filled {
			res, filled = p.res, true
			continue
		}
		res = res.Merge(p.res)
	}
	if !filled {
		return Result[T]{}, ErrEmptyInput
	}
	return res, nil
}
