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

// Package contrib holds the algorithms built on the hwy lane primitives.
//
// # Subpackages
//
//   - extrema: one-pass maximum and minimum of numeric buffers, sequential
//     or split across workers
//   - workerpool: persistent worker pool with barrier-joined parallel-for
//
// # Extrema (hwy/contrib/extrema)
//
//	import "github.com/go-highway/numerics/hwy/contrib/extrema"
//
//	hi, lo, err := extrema.MaxMinFloat32(samples)
//
//	fut, err := extrema.ParallelMaxMin(ctx, samples,
//	    extrema.WithWorkers(8),
//	    extrema.WithDataParallel(true),
//	)
//	res, err := fut.Wait(ctx)
//
// # Worker Pool (hwy/contrib/workerpool)
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	pool.ParallelForWorkers(len(buf), 4096, 0, func(worker, start, end int) {
//	    // fold buf[start:end] into slot worker
//	})
//
// Kernels are pure Go and need no build flags; the lane width is picked at
// process start from the CPU features (set HWY_NO_SIMD to force scalar).
package contrib
