package distance

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quarksea/prox/primitive"
)

// PlaneCanonicalBox computes the distance between a plane and a solid
// canonical box. The box projects onto the plane normal as the interval
// [-r, r] with r the support radius sum |n[i]|*extent[i]; the plane sits
// at the constant on that axis. When the plane misses the interval, the
// closest box point is the support vertex toward the plane. When the
// plane crosses the box, a common point is built per axis by a greedy
// clamp, which is the deterministic canonical witness.
func PlaneCanonicalBox(plane primitive.Plane, box primitive.CanonicalBox) Result {
	var result Result

	radius := 0.0
	for i := 0; i < 3; i++ {
		radius += box.Extent[i] * math.Abs(plane.Normal[i])
	}

	if plane.Constant > radius || plane.Constant < -radius {
		// Separated. The closest box vertex is the support point of the
		// box toward the plane.
		sign := 1.0
		if plane.Constant < 0 {
			sign = -1.0
		}
		var vertex mgl64.Vec3
		for i := 0; i < 3; i++ {
			if plane.Normal[i] >= 0 {
				vertex[i] = sign * box.Extent[i]
			} else {
				vertex[i] = -sign * box.Extent[i]
			}
		}

		signed := plane.Constant - sign*radius
		result.Distance = math.Abs(signed)
		result.SqrDistance = signed * signed
		result.ClosestA = vertex.Add(plane.Normal.Mul(signed))
		result.ClosestB = vertex
		return result
	}

	// The plane crosses the box. Build a point of the intersection by
	// consuming the plane constant one axis at a time; the remainder is
	// always reachable by the axes still to come because |constant| <= r.
	var point mgl64.Vec3
	remaining := plane.Constant
	for i := 0; i < 3; i++ {
		if plane.Normal[i] == 0 {
			continue
		}
		point[i] = min(max(remaining/plane.Normal[i], -box.Extent[i]), box.Extent[i])
		remaining -= plane.Normal[i] * point[i]
	}

	result.ClosestA = point
	result.ClosestB = point
	return result
}
