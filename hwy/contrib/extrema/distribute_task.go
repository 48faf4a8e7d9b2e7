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

import "golang.org/x/sync/errgroup"

// TaskDistributor gives each worker one contiguous segment from Partition and
// runs every segment on its own goroutine. Slot i is segment i.
//
// A failing segment does not stop its siblings.
type TaskDistributor struct{}

func (TaskDistributor) Name() string { return "task" }

func (TaskDistributor) Slots(length, workers int) int {
	if length <= 0 {
		return 0
	}
	return min(max(workers, 1), length)
}

func (TaskDistributor) Distribute(length, workers int, unit func(slot, start, end int) error) error {
	segs := Partition(0, length, workers)
	if len(segs) == 1 {
		return unit(0, 0, length)
	}

	var g errgroup.Group
	for _, seg := range segs {
		g.Go(func() error {
			return unit(seg.Worker, seg.Start, seg.End())
		})
	}
	return g.Wait()
}
