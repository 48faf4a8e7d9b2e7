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

import "github.com/go-highway/numerics/hwy"

// BaseMaxMin returns the maximum and minimum of v using a lane-wise scan of
// the given lane count:
//
//  1. running max and min vectors are seeded from the first lanes elements,
//  2. every following full chunk is folded in lane by lane,
//  3. the vectors are reduced horizontally,
//  4. the elements past the last full chunk are folded in one at a time.
//
// When lanes <= 1 or v is shorter than one chunk, it is a plain scalar scan.
// lanes above hwy.MaxLanesAny are clamped. v must not be empty.
func BaseMaxMin[T hwy.Lanes](v []T, lanes int) (hi, lo T) {
	if len(v) == 0 {
		panic("extrema: BaseMaxMin of empty slice")
	}
	lanes = min(lanes, hwy.MaxLanesAny)
	if lanes <= 1 || len(v) < lanes {
		return ScalarMaxMin(v)
	}

	var hiBuf, loBuf [hwy.MaxLanesAny]T
	hiVec := hwy.Wrap(hiBuf[:lanes])
	loVec := hwy.Wrap(loBuf[:lanes])
	hwy.LoadInto(hiVec, v)
	hwy.LoadInto(loVec, v)

	rest := v[lanes:]
	var tail []T
	hwy.ProcessChunks(len(rest), lanes,
		func(offset int) {
			hwy.MaxMinInPlace(hiVec, loVec, rest[offset:])
		},
		func(offset, count int) {
			tail = rest[offset : offset+count]
		},
	)

	return foldScalar(tail, hwy.ReduceMax(hiVec), hwy.ReduceMin(loVec))
}

// ScalarMaxMin returns the maximum and minimum of v with one compare pair per
// element. v must not be empty.
func ScalarMaxMin[T hwy.Lanes](v []T) (hi, lo T) {
	if len(v) == 0 {
		panic("extrema: ScalarMaxMin of empty slice")
	}
	return foldScalar(v[1:], v[0], v[0])
}

func foldScalar[T hwy.Lanes](v []T, hi, lo T) (T, T) {
	for _, x := range v {
		if x > hi {
			hi = x
		}
		if x < lo {
			lo = x
		}
	}
	return hi, lo
}
