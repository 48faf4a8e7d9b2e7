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

import "github.com/viterin/vek/vek32"

// float32 kernels with the running extrema held in fixed-size arrays. The
// block fold is written out so the compiler keeps the lanes in registers and
// drops bounds checks.

// foldFloat32x4 folds one 4-lane block c into hi and lo.
func foldFloat32x4(hi, lo, c *[4]float32) {
	if c[0] > hi[0] {
		hi[0] = c[0]
	}
	if c[1] > hi[1] {
		hi[1] = c[1]
	}
	if c[2] > hi[2] {
		hi[2] = c[2]
	}
	if c[3] > hi[3] {
		hi[3] = c[3]
	}
	if c[0] < lo[0] {
		lo[0] = c[0]
	}
	if c[1] < lo[1] {
		lo[1] = c[1]
	}
	if c[2] < lo[2] {
		lo[2] = c[2]
	}
	if c[3] < lo[3] {
		lo[3] = c[3]
	}
}

// reduceFloat32 collapses the lanes of hi and lo by pairwise halving. Both
// slices are overwritten. len(hi) is a power of two.
func reduceFloat32(hi, lo []float32) (float32, float32) {
	for n := len(hi) / 2; n >= 1; n /= 2 {
		for i := range n {
			if hi[i+n] > hi[i] {
				hi[i] = hi[i+n]
			}
			if lo[i+n] < lo[i] {
				lo[i] = lo[i+n]
			}
		}
	}
	return hi[0], lo[0]
}

func maxMinFloat32x4(v []float32) (hi, lo float32) {
	if len(v) < 4 {
		return ScalarMaxMin(v)
	}
	h := [4]float32(v[:4])
	l := h
	i := 4
	for ; i+4 <= len(v); i += 4 {
		foldFloat32x4(&h, &l, (*[4]float32)(v[i:i+4]))
	}
	hi, lo = reduceFloat32(h[:], l[:])
	return foldScalar(v[i:], hi, lo)
}

func maxMinFloat32x8(v []float32) (hi, lo float32) {
	if len(v) < 8 {
		return ScalarMaxMin(v)
	}
	h := [8]float32(v[:8])
	l := h
	h0, h1 := (*[4]float32)(h[0:4]), (*[4]float32)(h[4:8])
	l0, l1 := (*[4]float32)(l[0:4]), (*[4]float32)(l[4:8])
	i := 8
	for ; i+8 <= len(v); i += 8 {
		foldFloat32x4(h0, l0, (*[4]float32)(v[i:i+4]))
		foldFloat32x4(h1, l1, (*[4]float32)(v[i+4:i+8]))
	}
	hi, lo = reduceFloat32(h[:], l[:])
	return foldScalar(v[i:], hi, lo)
}

func maxMinFloat32x16(v []float32) (hi, lo float32) {
	if len(v) < 16 {
		return ScalarMaxMin(v)
	}
	h := [16]float32(v[:16])
	l := h
	h0, h1 := (*[4]float32)(h[0:4]), (*[4]float32)(h[4:8])
	h2, h3 := (*[4]float32)(h[8:12]), (*[4]float32)(h[12:16])
	l0, l1 := (*[4]float32)(l[0:4]), (*[4]float32)(l[4:8])
	l2, l3 := (*[4]float32)(l[8:12]), (*[4]float32)(l[12:16])
	i := 16
	for ; i+16 <= len(v); i += 16 {
		foldFloat32x4(h0, l0, (*[4]float32)(v[i:i+4]))
		foldFloat32x4(h1, l1, (*[4]float32)(v[i+4:i+8]))
		foldFloat32x4(h2, l2, (*[4]float32)(v[i+8:i+12]))
		foldFloat32x4(h3, l3, (*[4]float32)(v[i+12:i+16]))
	}
	hi, lo = reduceFloat32(h[:], l[:])
	return foldScalar(v[i:], hi, lo)
}

// vekAccelerated reports whether vek32 runs its assembly kernels on this CPU.
var vekAccelerated = vek32.Info().Acceleration

// maxMinFloat32Vek makes two passes over v with vek32's vector kernels.
// Short slices stay on the unrolled kernel.
func maxMinFloat32Vek(v []float32) (hi, lo float32) {
	if len(v) < 64 {
		return maxMinFloat32x8(v)
	}
	return vek32.Max(v), vek32.Min(v)
}
