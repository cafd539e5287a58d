package intersect

import (
	"math"

	"github.com/quarksea/prox/primitive"
)

// PlaneCapsule tests a plane against a solid capsule. If the two
// segment endpoints have signed distances of opposite sign (product
// nonpositive), the capsule core straddles the plane and intersects
// unconditionally. Otherwise both endpoints are on the same side and
// the capsule still reaches the plane only if one of the endpoint
// spheres does.
func PlaneCapsule(plane primitive.Plane, capsule primitive.Capsule) TestResult {
	var result TestResult

	sdistance0 := plane.SignedDistance(capsule.Segment.P0)
	sdistance1 := plane.SignedDistance(capsule.Segment.P1)
	if sdistance0*sdistance1 <= 0 {
		// An endpoint is on the plane or the endpoints are on opposite
		// sides of it.
		result.Intersect = true
		return result
	}

	result.Intersect = math.Abs(sdistance0) <= capsule.Radius ||
		math.Abs(sdistance1) <= capsule.Radius

	return result
}

// PlaneEllipsoid tests a plane against a solid ellipsoid. The maximum
// reach of the ellipsoid from its center along the plane normal is
// sqrt(normal^T M^-1 normal); the pair intersects when the center's
// unsigned plane distance does not exceed it. Floating round-off can
// drive the discriminant slightly negative, so it is clamped at zero
// before the root.
func PlaneEllipsoid(plane primitive.Plane, ellipsoid primitive.Ellipsoid) TestResult {
	var result TestResult

	discr := plane.Normal.Dot(ellipsoid.MInverse().Mul3x1(plane.Normal))
	root := math.Sqrt(math.Max(discr, 0))
	distance := math.Abs(plane.SignedDistance(ellipsoid.Center))
	result.Intersect = distance <= root

	return result
}

// PlaneSphere tests a plane against a solid sphere: the center's
// unsigned plane distance may not exceed the radius.
func PlaneSphere(plane primitive.Plane, sphere primitive.Sphere) TestResult {
	var result TestResult

	result.Intersect = math.Abs(plane.SignedDistance(sphere.Center)) <= sphere.Radius

	return result
}
