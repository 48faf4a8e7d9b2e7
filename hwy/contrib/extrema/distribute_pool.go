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
	"sync"

	"github.com/go-highway/numerics/hwy"
	"github.com/go-highway/numerics/hwy/contrib/workerpool"
)

const (
	// MinBatch is the smallest batch PoolDistributor hands to a worker.
	MinBatch = 1 << 10

	// MaxBatch is the largest derived batch.
	MaxBatch = 1 << 20

	// batchesPerWorker is how many batches each worker should get on
	// average, so that fast workers can take over from slow ones.
	batchesPerWorker = 4
)

var (
	sharedPoolOnce sync.Once
	sharedPool     *workerpool.Pool
)

// SharedPool returns the process-wide pool used by PoolDistributor when none
// is given. It is created on first use with GOMAXPROCS workers and never
// closed.
func SharedPool() *workerpool.Pool {
	sharedPoolOnce.Do(func() {
		sharedPool = workerpool.New(0)
	})
	return sharedPool
}

// PoolDistributor hands batches of indices to the workers of a persistent
// pool. Workers claim batches atomically and fold every batch they claim into
// their own slot, so the work balances itself when some workers are slower.
type PoolDistributor struct {
	// Pool runs the batches. nil uses SharedPool.
	Pool *workerpool.Pool

	// BatchSize is the number of elements per claim. <= 0 derives one from
	// the range length, the worker count and the L2 cache size.
	BatchSize int
}

func (d PoolDistributor) Name() string { return "pool" }

func (d PoolDistributor) pool() *workerpool.Pool {
	if d.Pool != nil {
		return d.Pool
	}
	return SharedPool()
}

// Batch returns the batch size used for a range of length elements.
func (d PoolDistributor) Batch(length, workers int) int {
	if d.BatchSize > 0 {
		return d.BatchSize
	}
	return derivedBatch(length, workers, hwy.CacheL2Bytes())
}

// derivedBatch aims for batchesPerWorker batches per worker, bounded below by
// MinBatch and above by what fits in half of L2 at 8 bytes per element.
func derivedBatch(length, workers, l2Bytes int) int {
	workers = max(workers, 1)
	upper := min(MaxBatch, max(MinBatch, l2Bytes/16))
	b := (length + workers*batchesPerWorker - 1) / (workers * batchesPerWorker)
	return min(max(b, MinBatch), upper)
}

func (d PoolDistributor) Slots(length, workers int) int {
	return d.pool().Workers(length, d.Batch(length, workers), workers)
}

func (d PoolDistributor) Distribute(length, workers int, unit func(slot, start, end int) error) error {
	var (
		mu       sync.Mutex
		firstErr error
	)
	d.pool().ParallelForWorkers(length, d.Batch(length, workers), workers, func(worker, start, end int) {
		if err := unit(worker, start, end); err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
		}
	})
	return firstErr
}
