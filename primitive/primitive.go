// Package primitive defines the geometric value types consumed by the
// query packages.
//
// Every primitive is a plain immutable value: queries read it, copy
// fragments into their results, and never mutate it. Construction is the
// caller's job and so is well-formedness (unit normals, orthonormal box
// axes, positive-definite shape matrices); the query algorithms assume
// the invariants documented per type and do not validate them.
package primitive

import "github.com/go-gl/mathgl/mgl64"

// Support is implemented by convex primitives that expose a support
// mapping: the point of the primitive furthest along a direction. The
// direction need not be unit length.
type Support interface {
	Support(direction mgl64.Vec3) mgl64.Vec3
}

// Bounded is implemented by primitives with a finite axis-aligned
// bounding box, usable by the broad phase.
type Bounded interface {
	AABB() AABB
}
