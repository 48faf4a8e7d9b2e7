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

package hwy

// This file provides pure Go implementations of the lane operations used by
// the reduction kernels. Lane-wise compares use only < and >, so NaN lanes
// are never selected over an ordered value (except when NaN is the seed).

// LoadInto copies the first v.NumLanes() elements of src into v's lanes.
// src must hold at least that many elements.
func LoadInto[T Lanes](v Vec[T], src []T) {
	copy(v.data, src[:len(v.data)])
}

// MaxMinInPlace folds one chunk of src into the running lane-wise extrema:
// hi[i] = max(hi[i], src[i]) and lo[i] = min(lo[i], src[i]) for every lane.
// hi and lo must have the same lane count and src at least that many
// elements. Each element is loaded once for both compares.
func MaxMinInPlace[T Lanes](hi, lo Vec[T], src []T) {
	h, l := hi.data, lo.data
	src = src[:len(h)]
	l = l[:len(h)]
	for i, x := range src {
		if x > h[i] {
			h[i] = x
		}
		if x < l[i] {
			l[i] = x
		}
	}
}

// ReduceMax returns the maximum lane, combining lanes by successive pairwise
// halving (horizontal reduction). Non-power-of-two lane counts fold the odd
// lane into lane 0. v must have between 1 and MaxLanesAny lanes.
func ReduceMax[T Lanes](v Vec[T]) T {
	var tmp [MaxLanesAny]T
	return reducePairwise(tmp[:copy(tmp[:], v.data)], func(a, b T) bool { return b > a })
}

// ReduceMin returns the minimum lane, combining lanes by successive pairwise
// halving. v must have between 1 and MaxLanesAny lanes.
func ReduceMin[T Lanes](v Vec[T]) T {
	var tmp [MaxLanesAny]T
	return reducePairwise(tmp[:copy(tmp[:], v.data)], func(a, b T) bool { return b < a })
}

// reducePairwise collapses lanes in place; better(a, b) reports whether b
// should replace a.
func reducePairwise[T Lanes](lanes []T, better func(a, b T) bool) T {
	n := len(lanes)
	for n > 1 {
		half := n / 2
		for i := range half {
			if better(lanes[i], lanes[i+half]) {
				lanes[i] = lanes[i+half]
			}
		}
		if n%2 == 1 {
			if better(lanes[0], lanes[n-1]) {
				lanes[0] = lanes[n-1]
			}
		}
		n = half
	}
	return lanes[0]
}
