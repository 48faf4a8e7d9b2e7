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
	"fmt"
	"testing"
)

var benchSizes = []int{1 << 10, 1 << 16, 1 << 22}

func BenchmarkMaxMinFloat32(b *testing.B) {
	kernels := []struct {
		name   string
		kernel func([]float32) (float32, float32)
	}{
		{"scalar", ScalarMaxMin[float32]},
		{"x4", maxMinFloat32x4},
		{"x8", maxMinFloat32x8},
		{"x16", maxMinFloat32x16},
		{"vek", maxMinFloat32Vek},
		{"generic8", func(v []float32) (float32, float32) { return BaseMaxMin(v, 8) }},
	}
	for _, n := range benchSizes {
		buf := randomBuf[float32](n, 1)
		for _, k := range kernels {
			b.Run(fmt.Sprintf("%s/%d", k.name, n), func(b *testing.B) {
				b.SetBytes(int64(n * 4))
				for b.Loop() {
					k.kernel(buf)
				}
			})
		}
	}
}

func BenchmarkMaxMinInt16(b *testing.B) {
	for _, n := range benchSizes {
		buf := randomBuf[int16](n, 1)
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			b.SetBytes(int64(n * 2))
			for b.Loop() {
				_, _, _ = MaxMin(buf)
			}
		})
	}
}

func BenchmarkParallelMaxMin(b *testing.B) {
	ctx := context.Background()
	for _, n := range benchSizes {
		buf := randomBuf[float32](n, 1)
		for _, dataParallel := range []bool{false, true} {
			b.Run(fmt.Sprintf("data_parallel=%v/%d", dataParallel, n), func(b *testing.B) {
				b.SetBytes(int64(n * 4))
				for b.Loop() {
					fut, err := ParallelMaxMin(ctx, buf, WithDataParallel(dataParallel))
					if err != nil {
						b.Fatal(err)
					}
					if _, err := fut.Get(); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
