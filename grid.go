// Package prox batches pairwise geometric queries: a uniform spatial
// hash grid culls candidate pairs by bounding-box overlap and a worker
// pool applies a caller-chosen query to the survivors. The queries
// themselves are pure functions over immutable primitives, so any
// worker count is safe without coordination.
package prox

import (
	"math"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quarksea/prox/primitive"
)

// CellKey addresses a cell in the infinite 3D grid.
type CellKey struct {
	X, Y, Z int
}

// cell holds the indices of the items overlapping it.
type cell struct {
	itemIndices []int
}

// Pair is a candidate pair of item indices, always with A < B.
type Pair struct {
	A int
	B int
}

// Grid is a uniform spatial hash grid used as the broad phase over item
// bounding boxes. Cell coordinates hash into a fixed power-of-two cell
// array, so far-apart cells may share a bucket; that only costs extra
// candidate pairs, never missed ones, because pairs are confirmed by an
// AABB overlap check.
type Grid struct {
	cellSize float64
	cells    []cell
	cellMask int
}

// NewGrid creates a grid with the given cell size. numCells is rounded
// up to a power of two. Cell size should be on the order of the typical
// item size; much smaller cells inflate the number of cells an item
// occupies.
func NewGrid(cellSize float64, numCells int) *Grid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]cell, numCells)
	for i := range cells {
		cells[i].itemIndices = make([]int, 0, 8)
	}

	return &Grid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert registers an item in every cell its bounding box overlaps.
func (g *Grid) Insert(index int, bounds primitive.AABB) {
	minCell := g.worldToCell(bounds.Min)
	maxCell := g.worldToCell(bounds.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cellIdx := g.hashCell(CellKey{x, y, z})
				g.cells[cellIdx].itemIndices = append(
					g.cells[cellIdx].itemIndices,
					index,
				)
			}
		}
	}
}

// Clear empties all cells, keeping their storage for reuse.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].itemIndices = g.cells[i].itemIndices[:0]
	}
}

// SortCells orders the indices within each cell so pair enumeration is
// deterministic regardless of insertion order.
func (g *Grid) SortCells() {
	for i := range g.cells {
		if len(g.cells[i].itemIndices) > 1 {
			sort.Ints(g.cells[i].itemIndices)
		}
	}
}

// FindPairs returns the candidate pairs whose bounding boxes overlap,
// each pair reported once with A < B, in deterministic order.
func (g *Grid) FindPairs(bounds []primitive.AABB) []Pair {
	pairs := make([]Pair, 0, len(bounds)/2)

	for itemIdx := range bounds {
		minCell := g.worldToCell(bounds[itemIdx].Min)
		maxCell := g.worldToCell(bounds[itemIdx].Max)

		seen := make(map[int]bool)
		for x := minCell.X; x <= maxCell.X; x++ {
			for y := minCell.Y; y <= maxCell.Y; y++ {
				for z := minCell.Z; z <= maxCell.Z; z++ {
					cellIdx := g.hashCell(CellKey{x, y, z})

					for _, otherIdx := range g.cells[cellIdx].itemIndices {
						// Each unordered pair is visited once.
						if otherIdx <= itemIdx || seen[otherIdx] {
							continue
						}
						seen[otherIdx] = true

						if bounds[itemIdx].Overlaps(bounds[otherIdx]) {
							pairs = append(pairs, Pair{A: itemIdx, B: otherIdx})
						}
					}
				}
			}
		}
	}

	return pairs
}

// FindPairsParallel streams candidate pairs from a pool of workers,
// each covering a contiguous range of items. Pair order on the channel
// is not deterministic; collectors that need a stable order sort the
// collected slice.
func (g *Grid) FindPairsParallel(bounds []primitive.AABB, numWorkers int) <-chan Pair {
	var wg sync.WaitGroup
	pairsChan := make(chan Pair, numWorkers*10)

	itemsPerWorker := len(bounds) / numWorkers
	if itemsPerWorker == 0 {
		itemsPerWorker = 1
	}

	for w := 0; w < numWorkers; w++ {
		startIdx := w * itemsPerWorker
		endIdx := startIdx + itemsPerWorker
		if w == numWorkers-1 {
			endIdx = len(bounds)
		}
		if startIdx >= len(bounds) {
			break
		}
		wg.Add(1)

		go func(start, end int) {
			defer wg.Done()

			seen := make([]bool, len(bounds))
			for itemIdx := start; itemIdx < end; itemIdx++ {
				clear(seen)

				minCell := g.worldToCell(bounds[itemIdx].Min)
				maxCell := g.worldToCell(bounds[itemIdx].Max)

				for x := minCell.X; x <= maxCell.X; x++ {
					for y := minCell.Y; y <= maxCell.Y; y++ {
						for z := minCell.Z; z <= maxCell.Z; z++ {
							cellIdx := g.hashCell(CellKey{x, y, z})

							for _, otherIdx := range g.cells[cellIdx].itemIndices {
								if otherIdx <= itemIdx || seen[otherIdx] {
									continue
								}
								seen[otherIdx] = true

								if bounds[itemIdx].Overlaps(bounds[otherIdx]) {
									pairsChan <- Pair{A: itemIdx, B: otherIdx}
								}
							}
						}
					}
				}
			}
		}(startIdx, endIdx)
	}

	go func() {
		wg.Wait()
		close(pairsChan)
	}()

	return pairsChan
}

func (g *Grid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / g.cellSize)),
		Y: int(math.Floor(pos.Y() / g.cellSize)),
		Z: int(math.Floor(pos.Z() / g.cellSize)),
	}
}

func (g *Grid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & g.cellMask
}
