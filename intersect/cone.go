package intersect

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/quarksea/prox/primitive"
)

// ConeContainsPoint tests containment of a point by a solid cone. The
// point is inside iff its height along the cone axis lies in the height
// range and the squared height is at least cosAngleSqr times the
// squared distance from the apex: the angle between the point and the
// axis does not exceed the half-angle. The two checks are independent.
func ConeContainsPoint(cone primitive.Cone, point mgl64.Vec3) bool {
	diff := point.Sub(cone.Ray.Origin)
	h := cone.Ray.Direction.Dot(diff)
	return cone.HeightInRange(h) && h*h >= cone.CosAngleSqr*diff.Dot(diff)
}
