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

import "runtime"

// MinElementsPerWorker is the smallest share of a range worth a worker of its
// own when the caller does not ask for a worker count.
const MinElementsPerWorker = 1 << 14

// Segment is the contiguous slice of a range assigned to one worker.
type Segment struct {
	Worker int
	Start  int
	Length int
}

// End returns the exclusive end index of the segment.
func (s Segment) End() int {
	return s.Start + s.Length
}

// Partition splits [start, start+length) into workers contiguous segments in
// worker order. Every segment but the last holds length/workers elements;
// the last also takes the remainder. workers is clamped to [1, length], so no
// segment is ever empty. length <= 0 yields nil.
func Partition(start, length, workers int) []Segment {
	if length <= 0 {
		return nil
	}
	workers = min(max(workers, 1), length)

	base := length / workers
	segs := make([]Segment, workers)
	for i := range segs {
		segs[i] = Segment{Worker: i, Start: start + i*base, Length: base}
	}
	segs[workers-1].Length += length % workers
	return segs
}

// ResolveWorkers returns the worker count for a range of length elements.
// requested <= 0 derives a count from MinElementsPerWorker. The result is
// clamped to [1, min(GOMAXPROCS, length)].
func ResolveWorkers(requested, length int) int {
	w := requested
	if w <= 0 {
		w = (length + MinElementsPerWorker - 1) / MinElementsPerWorker
	}
	return max(1, min(w, runtime.GOMAXPROCS(0), length))
}
