// Package mesh provides vertex deduplication and reindexing for
// triangle soups: turning flat vertex triples into an indexed mesh,
// removing duplicate vertices from a vertex pool, and removing vertices
// no triangle references.
//
// Duplicate detection is by exact vertex equality, so the vertex type
// must be comparable; coordinates that differ in the last bit are
// distinct vertices. Output pools list vertices in deterministic order:
// first occurrence for deduplication, ascending old index for unused
// removal. The package has no dependency on the query framework.
package mesh

import (
	"fmt"
	"sort"
)

// GenerateIndexedTriangles converts an array of vertex triples, each
// triple one triangle, into a pool of unique vertices and one index per
// input vertex. The input length must be a positive multiple of 3.
func GenerateIndexedTriangles[V comparable](vertices []V) ([]V, []int, error) {
	if len(vertices) == 0 || len(vertices)%3 != 0 {
		return nil, nil, fmt.Errorf("mesh: vertex count %d is not a positive multiple of 3", len(vertices))
	}

	outVertices, mapping := removeDuplicates(vertices)
	return outVertices, mapping, nil
}

// RemoveDuplicateVertices rewrites an indexed triangle mesh so the
// vertex pool has no duplicates. Indices are remapped to the compacted
// pool; their count and triangle structure are unchanged.
func RemoveDuplicateVertices[V comparable](vertices []V, indices []int) ([]V, []int, error) {
	if err := validateIndexed(len(vertices), indices); err != nil {
		return nil, nil, err
	}

	outVertices, mapping := removeDuplicates(vertices)

	outIndices := make([]int, len(indices))
	for i, index := range indices {
		outIndices[i] = mapping[index]
	}
	return outVertices, outIndices, nil
}

// RemoveUnusedVertices rewrites an indexed triangle mesh so every pool
// vertex is referenced by at least one index. Used vertices keep their
// relative order.
func RemoveUnusedVertices[V comparable](vertices []V, indices []int) ([]V, []int, error) {
	if err := validateIndexed(len(vertices), indices); err != nil {
		return nil, nil, err
	}

	used := make(map[int]bool, len(indices))
	for _, index := range indices {
		used[index] = true
	}
	usedIndices := make([]int, 0, len(used))
	for index := range used {
		usedIndices = append(usedIndices, index)
	}
	sort.Ints(usedIndices)

	outVertices := make([]V, 0, len(usedIndices))
	mapping := make(map[int]int, len(usedIndices))
	for _, oldIndex := range usedIndices {
		mapping[oldIndex] = len(outVertices)
		outVertices = append(outVertices, vertices[oldIndex])
	}

	outIndices := make([]int, len(indices))
	for i, index := range indices {
		outIndices[i] = mapping[index]
	}
	return outVertices, outIndices, nil
}

// RemoveDuplicateAndUnusedVertices composes duplicate removal and
// unused removal.
func RemoveDuplicateAndUnusedVertices[V comparable](vertices []V, indices []int) ([]V, []int, error) {
	tempVertices, tempIndices, err := RemoveDuplicateVertices(vertices, indices)
	if err != nil {
		return nil, nil, err
	}
	return RemoveUnusedVertices(tempVertices, tempIndices)
}

// removeDuplicates builds the unique vertex pool in first-occurrence
// order and the old-to-new index mapping.
func removeDuplicates[V comparable](vertices []V) ([]V, []int) {
	outVertices := make([]V, 0, len(vertices))
	mapping := make([]int, len(vertices))
	seen := make(map[V]int, len(vertices))

	for i, vertex := range vertices {
		if index, ok := seen[vertex]; ok {
			mapping[i] = index
			continue
		}
		seen[vertex] = len(outVertices)
		mapping[i] = len(outVertices)
		outVertices = append(outVertices, vertex)
	}
	return outVertices, mapping
}

func validateIndexed(vertexCount int, indices []int) error {
	if vertexCount == 0 {
		return fmt.Errorf("mesh: empty vertex pool")
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return fmt.Errorf("mesh: index count %d is not a positive multiple of 3", len(indices))
	}
	for _, index := range indices {
		if index < 0 || index >= vertexCount {
			return fmt.Errorf("mesh: index %d out of range [0,%d)", index, vertexCount)
		}
	}
	return nil
}
