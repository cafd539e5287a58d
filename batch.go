package prox

import (
	"sort"
	"sync"

	"github.com/quarksea/prox/primitive"
)

// DefaultWorkers is the worker count used when a caller passes zero or
// a negative value.
const DefaultWorkers = 1

// TestFunc reports whether the items at the two indices actually
// intersect. It runs concurrently from multiple workers and therefore
// must be a pure function of its inputs, which every query in this
// module is.
type TestFunc func(a, b int) bool

// Detect runs the full pipeline over a set of items: insert every
// bounding box into the grid, stream candidate pairs whose boxes
// overlap, and confirm each candidate with the narrow-phase test. The
// returned pairs are sorted by (A, B), so identical inputs produce the
// identical slice regardless of worker scheduling.
func Detect(grid *Grid, bounds []primitive.AABB, workers int, test TestFunc) []Pair {
	workers = max(DefaultWorkers, workers)

	grid.Clear()
	for i, b := range bounds {
		grid.Insert(i, b)
	}
	grid.SortCells()

	candidates := grid.FindPairsParallel(bounds, workers)

	hits := make(chan Pair, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pair := range candidates {
				if test(pair.A, pair.B) {
					hits <- pair
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(hits)
	}()

	pairs := make([]Pair, 0)
	for pair := range hits {
		pairs = append(pairs, pair)
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})

	return pairs
}

// Bounds computes the bounding box of every item from a pool of
// workers, indexed like the input. The result feeds Detect.
func Bounds(items []primitive.Bounded, workers int) []primitive.AABB {
	workers = max(DefaultWorkers, workers)

	out := make([]primitive.AABB, len(items))
	indices := make([]int, len(items))
	for i := range indices {
		indices[i] = i
	}
	task(workers, indices, func(i int) {
		out[i] = items[i].AABB()
	})
	return out
}

// task runs fn over the data slice from a pool of workers, each taking
// a contiguous chunk.
func task[T any](workersCount int, data []T, fn func(data T)) {
	var wg sync.WaitGroup
	dataSize := len(data)
	chunkSize := (dataSize + workersCount - 1) / workersCount

	for workerID := 0; workerID < workersCount; workerID++ {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(data[i])
			}
		}(workerID*chunkSize, min((workerID+1)*chunkSize, dataSize))
	}
	wg.Wait()
}
