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

// Kernel selection happens once, at package init, from the capabilities the
// hwy package detected.
var (
	detectedWidth LaneWidth
	float32Scan   func(v []float32) (hi, lo float32)
)

func init() {
	detectedWidth = SelectWidth(hwy.CurrentCapabilities())
	float32Scan = float32Kernel(detectedWidth)
}

// MaxMinFloat32Kernel returns the float32 scan bound at init to the detected
// lane width. The kernel must only be called with a non-empty slice.
func MaxMinFloat32Kernel() func(v []float32) (hi, lo float32) {
	return float32Scan
}

// SelectWidth returns the widest lane width caps can run, in the order
// 512, 256, 128, scalar.
func SelectWidth(caps hwy.Capabilities) LaneWidth {
	switch {
	case caps.Has512():
		return Lanes512
	case caps.Has256():
		return Lanes256
	case caps.Has128():
		return Lanes128
	default:
		return LanesScalar
	}
}

// DetectedWidth returns the lane width selected for this process.
func DetectedWidth() LaneWidth {
	return detectedWidth
}

// float32Kernel returns the float32 scan for w.
func float32Kernel(w LaneWidth) func([]float32) (float32, float32) {
	switch w {
	case Lanes512:
		return maxMinFloat32x16
	case Lanes256:
		if vekAccelerated {
			return maxMinFloat32Vek
		}
		return maxMinFloat32x8
	case Lanes128:
		return maxMinFloat32x4
	default:
		return ScalarMaxMin[float32]
	}
}

// Dispatcher runs the scan kernel chosen for one lane width and lane type.
// The zero value is not usable; use NewDispatcher or DefaultDispatcher.
type Dispatcher[T hwy.Lanes] struct {
	width  LaneWidth
	lanes  int
	kernel func([]T) (T, T)
}

// NewDispatcher returns a Dispatcher for w. LanesAuto, and any width wider
// than the detected one, resolve to the detected width.
func NewDispatcher[T hwy.Lanes](w LaneWidth) Dispatcher[T] {
	if w == LanesAuto || w > detectedWidth {
		w = detectedWidth
	}
	w = max(w, LanesScalar)

	d := Dispatcher[T]{width: w, lanes: LanesOf[T](w)}
	k := float32Kernel(w)
	if w == detectedWidth {
		k = float32Scan
	}
	// Only a T that is exactly float32 matches; named float32 types take the
	// generic path.
	if fk, ok := any(k).(func([]T) (T, T)); ok {
		d.kernel = fk
	}
	return d
}

// DefaultDispatcher returns the Dispatcher for the detected lane width.
func DefaultDispatcher[T hwy.Lanes]() Dispatcher[T] {
	return NewDispatcher[T](LanesAuto)
}

// Width returns the lane width the dispatcher scans with.
func (d Dispatcher[T]) Width() LaneWidth {
	return d.width
}

// Lanes returns the number of T lanes per chunk.
func (d Dispatcher[T]) Lanes() int {
	return d.lanes
}

// MaxMinRange returns the maximum and minimum of buf[start:start+length],
// validating the range like the package-level MaxMinRange.
func (d Dispatcher[T]) MaxMinRange(buf []T, start, length int) (hi, lo T, err error) {
	if err = checkRange(len(buf), start, length); err != nil {
		return hi, lo, err
	}
	hi, lo = d.MaxMin(buf[start : start+length])
	return hi, lo, nil
}

// MaxMin returns the maximum and minimum of v. v must not be empty.
func (d Dispatcher[T]) MaxMin(v []T) (hi, lo T) {
	if d.kernel != nil {
		return d.kernel(v)
	}
	return BaseMaxMin(v, d.lanes)
}
