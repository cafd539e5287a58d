package intersect

import "github.com/quarksea/prox/primitive"

// SphereSphere tests two solid spheres: the squared center distance may
// not exceed the squared radius sum. Tangent spheres intersect.
func SphereSphere(sphere0, sphere1 primitive.Sphere) TestResult {
	var result TestResult

	radiusSum := sphere0.Radius + sphere1.Radius
	result.Intersect = sphere1.Center.Sub(sphere0.Center).LenSqr() <= radiusSum*radiusSum

	return result
}

// SphereHalfspace is the symmetric wrapper for HalfspaceSphere.
func SphereHalfspace(sphere primitive.Sphere, halfspace primitive.Halfspace) TestResult {
	return HalfspaceSphere(halfspace, sphere)
}

// CapsulePlane is the symmetric wrapper for PlaneCapsule.
func CapsulePlane(capsule primitive.Capsule, plane primitive.Plane) TestResult {
	return PlaneCapsule(plane, capsule)
}

// AlignedBoxAlignedBox tests two solid aligned boxes by per-axis
// interval overlap. Touching boxes intersect.
func AlignedBoxAlignedBox(box0, box1 primitive.AlignedBox) TestResult {
	var result TestResult

	result.Intersect = box0.AABB().Overlaps(box1.AABB())

	return result
}
