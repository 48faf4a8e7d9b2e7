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
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name                   string
		start, length, workers int
		want                   []Segment
	}{
		{"even", 0, 6, 3, []Segment{{0, 0, 2}, {1, 2, 2}, {2, 4, 2}}},
		{"remainder to last", 10, 10, 3, []Segment{{0, 10, 3}, {1, 13, 3}, {2, 16, 4}}},
		{"one worker", 5, 4, 1, []Segment{{0, 5, 4}}},
		{"more workers than elements", 0, 2, 5, []Segment{{0, 0, 1}, {1, 1, 1}}},
		{"zero workers", 3, 4, 0, []Segment{{0, 3, 4}}},
		{"empty", 0, 0, 4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Partition(tt.start, tt.length, tt.workers)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Partition(%d, %d, %d) mismatch (-want +got):\n%s",
					tt.start, tt.length, tt.workers, diff)
			}
		})
	}
}

// Segments are non-empty, contiguous, in worker order and cover the range.
func TestPartitionCoverage(t *testing.T) {
	for length := 1; length <= 200; length++ {
		for workers := 1; workers <= 12; workers++ {
			start := length % 7
			segs := Partition(start, length, workers)
			if len(segs) != min(workers, length) {
				t.Fatalf("Partition(%d, %d, %d) gave %d segments", start, length, workers, len(segs))
			}
			next := start
			for i, s := range segs {
				if s.Worker != i || s.Start != next || s.Length <= 0 {
					t.Fatalf("Partition(%d, %d, %d)[%d] = %+v, want start %d", start, length, workers, i, s, next)
				}
				if i < len(segs)-1 && s.Length != length/len(segs) {
					t.Fatalf("Partition(%d, %d, %d)[%d] length %d, want %d", start, length, workers, i, s.Length, length/len(segs))
				}
				next = s.End()
			}
			if next != start+length {
				t.Fatalf("Partition(%d, %d, %d) ends at %d, want %d", start, length, workers, next, start+length)
			}
		}
	}
}

func TestResolveWorkers(t *testing.T) {
	procs := runtime.GOMAXPROCS(0)
	assert.Equal(t, 1, ResolveWorkers(0, 1))
	assert.Equal(t, 1, ResolveWorkers(0, MinElementsPerWorker))
	assert.Equal(t, min(2, procs), ResolveWorkers(0, MinElementsPerWorker+1))
	assert.Equal(t, min(3, procs), ResolveWorkers(3, 100))
	assert.Equal(t, 1, ResolveWorkers(8, 1))
	assert.Equal(t, procs, ResolveWorkers(procs+10, 1<<30))
	assert.Equal(t, 1, ResolveWorkers(-5, 10))
}

func TestResolveWorkersDefault(t *testing.T) {
	procs := runtime.GOMAXPROCS(0)
	for _, length := range []int{1, 1000, MinElementsPerWorker} {
		assert.Equal(t, 1, ResolveWorkers(0, length), "length %d", length)
	}
	assert.Equal(t, min(3, procs), ResolveWorkers(0, 3*MinElementsPerWorker))
	assert.Equal(t, min(4, procs), ResolveWorkers(0, 3*MinElementsPerWorker+1))
	assert.Equal(t, procs, ResolveWorkers(0, (procs+1)*MinElementsPerWorker))
}
