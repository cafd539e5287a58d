// Package intersect implements boolean (test) and contact-geometry
// (find) intersection queries between pairs of primitives.
//
// One exported function exists per authored (kind, typeA, typeB)
// triple; an unauthored pair is a compile error at the call site, never
// a runtime failure. Some pairs are authored in only one argument
// order; symmetric wrappers swap the arguments and re-invoke the
// canonical order.
//
// All primitives are closed: a configuration exactly on a boundary
// (tangency, a point on a plane, projections meeting at an extent)
// reports intersecting or contained. Queries never mutate their inputs.
package intersect

import "github.com/go-gl/mathgl/mgl64"

// TestResult is the outcome of a test-kind query. The zero value is the
// well-defined "no evidence of intersection" default every query starts
// from.
type TestResult struct {
	Intersect bool
}

// FindResult is the outcome of a find-kind query: the boolean result
// plus contact geometry. When intersecting, Point is the contact point,
// Axis the contact normal and Penetration the overlap depth along it.
// When disjoint, Axis is a separating direction, Point the closest
// point of the second primitive along it and Penetration is negative
// with the separation distance.
type FindResult struct {
	Intersect   bool
	Point       mgl64.Vec3
	Axis        mgl64.Vec3
	Penetration float64
}
