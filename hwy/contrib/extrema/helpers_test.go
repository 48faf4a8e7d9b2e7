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
	"math/rand/v2"

	"github.com/go-highway/numerics/hwy"
	"github.com/samber/lo"
)

// randomBuf returns n deterministic values in [-1000, 1000] (wrapped for
// narrow and unsigned types).
func randomBuf[T hwy.Lanes](n int, seed uint64) []T {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return lo.Times(n, func(int) T {
		return T(r.IntN(2001) - 1000)
	})
}

// reference returns the extrema of buf by a direct scan.
func reference[T hwy.Lanes](buf []T) Result[T] {
	return Result[T]{Max: lo.Max(buf), Min: lo.Min(buf)}
}

// widths lists every lane width.
var widths = []LaneWidth{LanesScalar, Lanes128, Lanes256, Lanes512}
