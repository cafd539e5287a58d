package intersect

import (
	"math"

	"github.com/quarksea/prox/primitive"
)

// FindHalfspaceSphere runs the halfspace-sphere test and reports the
// contact geometry. Axis is the halfspace normal, Point the sphere
// point deepest below the boundary plane, and Penetration how far that
// point extends past the boundary (negative when separated).
func FindHalfspaceSphere(halfspace primitive.Halfspace, sphere primitive.Sphere) FindResult {
	var result FindResult

	center := halfspace.SignedDistance(sphere.Center)
	result.Axis = halfspace.Normal
	result.Point = sphere.Center.Sub(halfspace.Normal.Mul(sphere.Radius))
	result.Penetration = center + sphere.Radius
	result.Intersect = result.Penetration >= 0

	return result
}

// FindPlaneSphere runs the plane-sphere test and reports the contact
// geometry. Axis points from the plane toward the sphere center, Point
// is the plane point under the center, and Penetration is the overlap
// of the sphere's projection interval with the plane (negative when
// separated, with the separation distance).
func FindPlaneSphere(plane primitive.Plane, sphere primitive.Sphere) FindResult {
	var result FindResult

	signed := plane.SignedDistance(sphere.Center)
	result.Axis = plane.Normal
	if signed < 0 {
		result.Axis = plane.Normal.Mul(-1)
	}
	result.Point = sphere.Center.Sub(plane.Normal.Mul(signed))
	result.Penetration = sphere.Radius - math.Abs(signed)
	result.Intersect = result.Penetration >= 0

	return result
}

// FindPlaneOrientedBox runs the plane-box test and reports the contact
// geometry. Axis points from the plane toward the box center, Point is
// the box vertex deepest toward the plane, and Penetration is the
// overlap of the box's projection interval with the plane (negative
// when separated).
func FindPlaneOrientedBox(plane primitive.Plane, box primitive.OrientedBox) FindResult {
	var result FindResult

	signed := plane.SignedDistance(box.Center)

	radius := 0.0
	for i := 0; i < 3; i++ {
		radius += math.Abs(box.Extent[i] * plane.Normal.Dot(box.Axis[i]))
	}

	result.Axis = plane.Normal
	if signed < 0 {
		result.Axis = plane.Normal.Mul(-1)
	}
	result.Point = box.Support(result.Axis.Mul(-1))
	result.Penetration = radius - math.Abs(signed)
	result.Intersect = result.Penetration >= 0

	return result
}
