// Package distance implements distance-and-closest-point (DCP) queries
// between pairs of primitives.
//
// One exported function exists per authored (typeA, typeB) pair; a pair
// without a function does not compile at the call site. Queries are pure:
// they read the primitives, write a fresh Result and return it by value.
//
// When infinitely many closest-point pairs exist (parallel faces, a
// segment parallel to a box face), exactly one canonical pair is
// returned, chosen by the first satisfying candidate in the algorithm's
// internal enumeration order. This non-uniqueness is deterministic:
// identical inputs always produce the identical pair.
package distance

import "github.com/go-gl/mathgl/mgl64"

// Result reports the distance between two primitives and one pair of
// closest points, ClosestA on the first argument of the query and
// ClosestB on the second. The zero value is the well-defined
// "zero distance, zero points" default every query starts from.
type Result struct {
	Distance    float64
	SqrDistance float64
	ClosestA    mgl64.Vec3
	ClosestB    mgl64.Vec3
}
