// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for parallel
// computation. Unlike per-call goroutine spawning, a Pool is created once and
// reused across many operations, eliminating allocation and spawn overhead.
//
// Every parallel-for call is a fork-join: it returns only after all of its
// work items ran. A panic inside a work item does not kill the worker; it is
// captured and re-raised on the calling goroutine after the barrier as a
// *PanicError. Calls that run inline (one worker, or a closed pool) let the
// panic propagate unwrapped.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	// Reuse pool across many reductions
//	for _, buf := range buffers {
//	    pool.ParallelForWorkers(len(buf), 4096, 0, func(worker, start, end int) {
//	        partial[worker] = fold(partial[worker], buf[start:end])
//	    })
//	}
package workerpool

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// operations. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem represents a single unit submitted by a parallel-for call.
type workItem struct {
	fn    func()
	batch *batch
}

// batch is the join state shared by the work items of one parallel-for call.
type batch struct {
	wg sync.WaitGroup

	// panicOnce guards panicVal: only the first panic is kept.
	panicOnce sync.Once
	panicVal  any
}

// run executes fn, capturing a panic into b.
func (b *batch) run(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			b.panicOnce.Do(func() { b.panicVal = r })
		}
	}()
	fn()
}

// wait blocks until all items finished, then re-raises the first panic.
func (b *batch) wait() {
	b.wg.Wait()
	if b.panicVal != nil {
		panic(&PanicError{Value: b.panicVal})
	}
}

// PanicError is the value re-panicked on the calling goroutine when a work
// item panics.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("workerpool: work item panicked: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	// Spawn persistent workers
	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.batch.run(item.fn)
		item.batch.wg.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	return p.closed.Load()
}

// Close shuts down the worker pool. All pending work will complete.
// Calling Close multiple times is safe. Parallel-for calls on a closed pool
// run sequentially on the caller.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// submit sends fns to the workers and waits for all of them.
func (p *Pool) submit(fns []func()) {
	b := &batch{}
	b.wg.Add(len(fns))
	for _, fn := range fns {
		p.workC <- workItem{fn: fn, batch: b}
	}
	b.wait()
}

// ParallelFor executes fn for each index in [0, n) using the worker pool.
// Each worker processes one contiguous range of indices.
// Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	// Determine number of workers to use (don't use more workers than items)
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	// Calculate chunk size (ensure all items are covered)
	chunkSize := (n + workers - 1) / workers

	fns := make([]func(), 0, workers)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		fns = append(fns, func() { fn(start, end) })
	}
	p.submit(fns)
}

// ParallelForAtomicBatched executes fn for batches of indices using atomic
// work stealing. Combines the load balancing of atomic distribution with
// reduced atomic operation overhead by processing multiple items per grab.
//
// fn receives (start, end) indices where work should process [start, end).
// batchSize controls how many items are grabbed per atomic operation.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int)) {
	p.ParallelForWorkers(n, batchSize, 0, func(_, start, end int) {
		fn(start, end)
	})
}

// ParallelForWorkers is ParallelForAtomicBatched with the index of the
// claiming worker passed to fn. At most maxWorkers pool workers take part
// (maxWorkers <= 0 means all of them). Worker indices are in [0, w) where w
// is the returned count, and each index is used by exactly one goroutine
// during the call, so fn may accumulate into per-worker slots without
// locking. A worker may end up with no batch at all when the others drain
// the queue first.
//
// The number of slots needed is known before the call: it is
// Workers(n, batchSize, maxWorkers).
func (p *Pool) ParallelForWorkers(n, batchSize, maxWorkers int, fn func(worker, start, end int)) int {
	if n <= 0 {
		return 0
	}
	batchSize = max(batchSize, 1)

	workers := p.Workers(n, batchSize, maxWorkers)
	if workers == 1 {
		for start := 0; start < n; start += batchSize {
			fn(0, start, min(start+batchSize, n))
		}
		return 1
	}

	var nextBatch atomic.Int64
	fns := make([]func(), workers)
	for w := range workers {
		fns[w] = func() {
			for {
				start := int(nextBatch.Add(1)-1) * batchSize
				if start >= n {
					return
				}
				fn(w, start, min(start+batchSize, n))
			}
		}
	}
	p.submit(fns)
	return workers
}

// Workers returns how many worker slots ParallelForWorkers uses for n items
// in batches of batchSize with at most maxWorkers workers. It is 1 for a
// closed pool.
func (p *Pool) Workers(n, batchSize, maxWorkers int) int {
	if n <= 0 {
		return 0
	}
	if p.closed.Load() {
		return 1
	}
	batchSize = max(batchSize, 1)
	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if maxWorkers > 0 {
		workers = min(workers, maxWorkers)
	}
	return workers
}
