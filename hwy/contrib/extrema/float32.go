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

import "context"

// MaxMinFloat32 returns the maximum and minimum of buf using the float32
// kernel selected at init.
func MaxMinFloat32(buf []float32) (hi, lo float32, err error) {
	return MaxMinRangeFloat32(buf, 0, len(buf))
}

// MaxMinRangeFloat32 is MaxMinFloat32 over buf[start:start+length].
func MaxMinRangeFloat32(buf []float32, start, length int) (hi, lo float32, err error) {
	if err = checkRange(len(buf), start, length); err != nil {
		return 0, 0, err
	}
	hi, lo = float32Scan(buf[start : start+length])
	return hi, lo, nil
}

// ParallelMaxMinFloat32 is ParallelMaxMin for float32 buffers.
func ParallelMaxMinFloat32(ctx context.Context, buf []float32, opts ...Option) (*Future[float32], error) {
	return ParallelMaxMinRange(ctx, buf, 0, len(buf), opts...)
}

// ParallelMaxMinRangeFloat32 is ParallelMaxMinRange for float32 buffers.
func ParallelMaxMinRangeFloat32(ctx context.Context, buf []float32, start, length int, opts ...Option) (*Future[float32], error) {
	return ParallelMaxMinRange(ctx, buf, start, length, opts...)
}
