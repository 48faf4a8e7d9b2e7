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
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/go-highway/numerics/hwy/contrib/workerpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func distributors(t *testing.T) []Distributor {
	pool := workerpool.New(4)
	t.Cleanup(pool.Close)
	return []Distributor{
		TaskDistributor{},
		PoolDistributor{Pool: pool, BatchSize: 97},
		PoolDistributor{Pool: pool},
		PoolDistributor{},
	}
}

func distName(d Distributor) string {
	if p, ok := d.(PoolDistributor); ok {
		return fmt.Sprintf("%s/batch=%d", p.Name(), p.BatchSize)
	}
	return d.Name()
}

func TestSchedulerMatchesSequential(t *testing.T) {
	buf := randomBuf[float64](100_003, 11)
	buf[0] = 5000
	buf[len(buf)-1] = -5000
	want := reference(buf)

	for _, dist := range distributors(t) {
		for _, workers := range []int{1, 2, 4, runtime.GOMAXPROCS(0)} {
			t.Run(fmt.Sprintf("%s/workers=%d", distName(dist), workers), func(t *testing.T) {
				s := NewScheduler(DefaultDispatcher[float64](), dist)
				got, err := s.Run(context.Background(), buf, 0, len(buf), workers)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			})
		}
	}
}

func TestSchedulerSubRange(t *testing.T) {
	buf := randomBuf[int32](10_000, 5)
	buf[99] = 1 << 20
	buf[9_000] = -1 << 20
	want := reference(buf[100:8_000])

	for _, dist := range distributors(t) {
		s := NewScheduler(DefaultDispatcher[int32](), dist)
		got, err := s.Run(context.Background(), buf, 100, 7_900, 3)
		require.NoError(t, err, distName(dist))
		assert.Equal(t, want, got, distName(dist))
	}
}

const poison = -42

func panickingScheduler(dist Distributor, calls *atomic.Int32) *Scheduler[float64] {
	s := NewScheduler(DefaultDispatcher[float64](), dist)
	s.kernel = func(v []float64) (float64, float64) {
		calls.Add(1)
		if v[0] == poison {
			panic("corrupt segment")
		}
		return ScalarMaxMin(v)
	}
	return s
}

func TestSchedulerWorkerPanic(t *testing.T) {
	var calls atomic.Int32
	s := panickingScheduler(TaskDistributor{}, &calls)

	buf := make([]float64, 8)
	buf[4] = poison
	_, err := s.Run(context.Background(), buf, 0, len(buf), 4)
	require.Error(t, err)

	var werr *WorkerError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, 2, werr.Worker)
	assert.Equal(t, 4, werr.Start)
	assert.Equal(t, 6, werr.End)
	assert.Contains(t, werr.Error(), "corrupt segment")
	assert.EqualValues(t, 4, calls.Load(), "siblings must run to completion")
}

func TestSchedulerLowestWorkerErrorWins(t *testing.T) {
	var calls atomic.Int32
	s := panickingScheduler(TaskDistributor{}, &calls)

	buf := make([]float64, 8)
	buf[2] = poison
	buf[6] = poison
	for range 20 {
		_, err := s.Run(context.Background(), buf, 0, len(buf), 4)
		var werr *WorkerError
		require.ErrorAs(t, err, &werr)
		assert.Equal(t, 1, werr.Worker)
	}
}

func TestSchedulerPoolWorkerPanic(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	var calls atomic.Int32
	s := panickingScheduler(PoolDistributor{Pool: pool, BatchSize: 2}, &calls)

	buf := make([]float64, 64)
	buf[4] = poison
	_, err := s.Run(context.Background(), buf, 0, len(buf), 4)

	var werr *WorkerError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, 4, werr.Start)
	assert.Equal(t, 6, werr.End)

	// The pool survives and is reusable.
	buf[4] = 0
	got, err := s.Run(context.Background(), buf, 0, len(buf), 4)
	require.NoError(t, err)
	assert.Equal(t, Result[float64]{}, got)
}

func TestSchedulerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf := randomBuf[float32](4096, 1)
	for _, dist := range distributors(t) {
		s := NewScheduler(DefaultDispatcher[float32](), dist)
		_, err := s.Run(ctx, buf, 0, len(buf), 4)
		require.Error(t, err, distName(dist))
		assert.True(t, errors.Is(err, context.Canceled), distName(dist))

		var werr *WorkerError
		assert.ErrorAs(t, err, &werr)
	}
}

func TestTaskDistributorSlots(t *testing.T) {
	d := TaskDistributor{}
	assert.Equal(t, 0, d.Slots(0, 4))
	assert.Equal(t, 1, d.Slots(10, 0))
	assert.Equal(t, 3, d.Slots(3, 8))
	assert.Equal(t, 4, d.Slots(100, 4))
}

func TestTaskDistributorCoversRange(t *testing.T) {
	var covered [1000]atomic.Int32
	err := TaskDistributor{}.Distribute(len(covered), 7, func(slot, start, end int) error {
		assert.Less(t, slot, 7)
		for i := start; i < end; i++ {
			covered[i].Add(1)
		}
		return nil
	})
	require.NoError(t, err)
	for i := range covered {
		require.EqualValues(t, 1, covered[i].Load(), "index %d", i)
	}
}

func TestPoolDistributorCoversRange(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	d := PoolDistributor{Pool: pool, BatchSize: 13}
	slots := d.Slots(1000, 3)
	assert.Equal(t, 3, slots)

	var covered [1000]atomic.Int32
	err := d.Distribute(len(covered), 3, func(slot, start, end int) error {
		assert.Less(t, slot, slots)
		for i := start; i < end; i++ {
			covered[i].Add(1)
		}
		return nil
	})
	require.NoError(t, err)
	for i := range covered {
		require.EqualValues(t, 1, covered[i].Load(), "index %d", i)
	}
}

func TestDerivedBatch(t *testing.T) {
	tests := []struct {
		length, workers, l2 int
		want                int
	}{
		{1000, 4, 256 << 10, MinBatch},
		{1 << 24, 4, 256 << 10, 16 << 10},
		{100_000, 2, 1 << 20, 12_500},
		{1 << 30, 1, 64 << 20, MaxBatch},
		{1 << 20, 0, 0, MinBatch},
	}
	for _, tt := range tests {
		if got := derivedBatch(tt.length, tt.workers, tt.l2); got != tt.want {
			t.Errorf("derivedBatch(%d, %d, %d) = %d, want %d", tt.length, tt.workers, tt.l2, got, tt.want)
		}
	}
}

func TestResultMerge(t *testing.T) {
	a := Result[int64]{Max: 5, Min: -1}
	b := Result[int64]{Max: 3, Min: -7}
	assert.Equal(t, Result[int64]{Max: 5, Min: -7}, a.Merge(b))
	assert.Equal(t, Result[int64]{Max: 5, Min: -7}, b.Merge(a))
}
