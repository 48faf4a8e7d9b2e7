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
	"github.com/go-highway/numerics/hwy"
	"github.com/go-highway/numerics/hwy/contrib/workerpool"
)

// Option configures a parallel reduction.
type Option func(*options)

type options struct {
	workers      int
	dataParallel bool
	pool         *workerpool.Pool
	batchSize    int
	width        LaneWidth
}

func buildOptions(opts []Option) options {
	o := options{width: LanesAuto}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithWorkers sets the number of workers. n <= 0, the default, derives the
// count from the range length as ceil(length/MinElementsPerWorker), so a
// range of up to MinElementsPerWorker elements runs on one worker. An
// explicit or derived count is capped at GOMAXPROCS and at the range length.
// See ResolveWorkers.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithDataParallel switches from one segment per worker to batched
// distribution over a workerpool.Pool.
func WithDataParallel(enabled bool) Option {
	return func(o *options) { o.dataParallel = enabled }
}

// WithPool sets the pool used by the data-parallel distribution. It implies
// nothing by itself; combine it with WithDataParallel(true).
func WithPool(p *workerpool.Pool) Option {
	return func(o *options) { o.pool = p }
}

// WithBatchSize sets the number of elements a data-parallel worker claims at
// a time. n <= 0 derives it from the cache size.
func WithBatchSize(n int) Option {
	return func(o *options) { o.batchSize = n }
}

// WithLaneWidth forces a scan width. Widths above the detected one are
// clamped to it.
func WithLaneWidth(w LaneWidth) Option {
	return func(o *options) { o.width = w }
}

func (o options) distributor() Distributor {
	if o.dataParallel {
		return PoolDistributor{Pool: o.pool, BatchSize: o.batchSize}
	}
	return TaskDistributor{}
}

func newScheduler[T hwy.Lanes](o options) *Scheduler[T] {
	return NewScheduler(NewDispatcher[T](o.width), o.distributor())
}
