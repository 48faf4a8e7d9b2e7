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

// Package extrema computes the maximum and minimum of a numeric buffer, or of
// a contiguous range within it, in one pass.
//
// Two families of entry points are provided:
//
//   - MaxMin and MaxMinRange scan on the calling goroutine with the widest
//     lane kernel the CPU supports.
//   - ParallelMaxMin and ParallelMaxMinRange split the range across workers
//     and return a Future that completes after every worker finished.
//
// The parallel path has two distribution strategies behind one Scheduler:
// TaskDistributor, which partitions the range into one contiguous segment
// per worker, and PoolDistributor (WithDataParallel), which hands batches of
// indices to a persistent workerpool.Pool. Both return exactly what a
// sequential scan returns.
//
// # Kernel Selection
//
// The lane width is chosen once per process from hwy.CurrentCapabilities(),
// preferring 512-bit, then 256-bit, then 128-bit lanes, falling back to a
// scalar loop. Setting HWY_NO_SIMD forces the scalar kernel. float32 buffers
// use hand-unrolled kernels (and vek32 assembly where available); every other
// lane type uses the generic lane-emulating scan.
//
// # NaN
//
// Floating-point inputs are expected to be NaN-free. Lanes compare with < and
// >, so a NaN is only ever reported when it seeds a lane, and which lane that
// is depends on the partitioning.
//
// # Example
//
//	hi, lo, err := extrema.MaxMin(samples)
//
//	fut, err := extrema.ParallelMaxMin(ctx, samples, extrema.WithWorkers(8))
//	if err != nil {
//	    return err
//	}
//	res, err := fut.Wait(ctx)
package extrema
