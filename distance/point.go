package distance

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quarksea/prox/primitive"
)

// PointCanonicalBox computes the distance from a point to a solid
// canonical box. Each axis is independent: a coordinate outside the
// extent interval is clamped to the nearer bound and its squared clamp
// delta accumulated. The clamped coordinates are the closest box point.
// A point inside the box reports zero distance with the point itself as
// both closest points.
func PointCanonicalBox(point mgl64.Vec3, box primitive.CanonicalBox) Result {
	var result Result

	result.ClosestA = point
	result.ClosestB = point
	for i := 0; i < 3; i++ {
		if point[i] < -box.Extent[i] {
			delta := result.ClosestB[i] + box.Extent[i]
			result.SqrDistance += delta * delta
			result.ClosestB[i] = -box.Extent[i]
		} else if point[i] > box.Extent[i] {
			delta := result.ClosestB[i] - box.Extent[i]
			result.SqrDistance += delta * delta
			result.ClosestB[i] = box.Extent[i]
		}
	}
	result.Distance = math.Sqrt(result.SqrDistance)

	return result
}

// PointAlignedBox computes the distance from a point to a solid aligned
// box by translating both into the frame where the box is canonical and
// mapping the closest points back.
func PointAlignedBox(point mgl64.Vec3, box primitive.AlignedBox) Result {
	center, cbox := box.CenteredForm()

	result := PointCanonicalBox(point.Sub(center), cbox)
	result.ClosestA = result.ClosestA.Add(center)
	result.ClosestB = result.ClosestB.Add(center)

	return result
}

// PointOrientedBox computes the distance from a point to a solid
// oriented box by rotating into the box frame, querying the canonical
// box and rotating the closest points back.
func PointOrientedBox(point mgl64.Vec3, box primitive.OrientedBox) Result {
	cbox := primitive.CanonicalBox{Extent: box.Extent}

	result := PointCanonicalBox(box.ToCanonical(point), cbox)
	result.ClosestA = box.FromCanonical(result.ClosestA)
	result.ClosestB = box.FromCanonical(result.ClosestB)

	return result
}

// PointPlane computes the unsigned distance from a point to a plane,
// with the orthogonal projection as the closest plane point. The sign
// of the offset is available through Plane.SignedDistance.
func PointPlane(point mgl64.Vec3, plane primitive.Plane) Result {
	var result Result

	signed := plane.SignedDistance(point)
	result.Distance = math.Abs(signed)
	result.SqrDistance = signed * signed
	result.ClosestA = point
	result.ClosestB = point.Sub(plane.Normal.Mul(signed))

	return result
}

// PointSegment computes the distance from a point to a segment by
// clamping the orthogonal projection parameter to [0,1]. A degenerate
// segment collapses to its first endpoint.
func PointSegment(point mgl64.Vec3, segment primitive.Segment) Result {
	var result Result

	direction := segment.Direction()
	t := 0.0
	if lenSqr := direction.LenSqr(); lenSqr > 0 {
		t = point.Sub(segment.P0).Dot(direction) / lenSqr
		t = min(max(t, 0), 1)
	}

	result.ClosestA = point
	result.ClosestB = segment.At(t)
	result.SqrDistance = point.Sub(result.ClosestB).LenSqr()
	result.Distance = math.Sqrt(result.SqrDistance)

	return result
}

// PointSphere computes the distance from a point to a solid sphere. A
// point inside the closed ball reports zero distance. A point at the
// exact center uses +X as the deterministic direction to the surface
// point, though the distance is zero there anyway.
func PointSphere(point mgl64.Vec3, sphere primitive.Sphere) Result {
	var result Result

	diff := point.Sub(sphere.Center)
	length := diff.Len()
	result.ClosestA = point
	if length <= sphere.Radius {
		result.ClosestB = point
		return result
	}

	result.Distance = length - sphere.Radius
	result.SqrDistance = result.Distance * result.Distance
	result.ClosestB = sphere.Center.Add(diff.Mul(sphere.Radius / length))

	return result
}

// PointCapsule computes the distance from a point to a solid capsule:
// the segment distance deflated by the radius, clamped at zero inside.
func PointCapsule(point mgl64.Vec3, capsule primitive.Capsule) Result {
	var result Result

	core := PointSegment(point, capsule.Segment)
	result.ClosestA = point
	if core.Distance <= capsule.Radius {
		result.ClosestB = point
		return result
	}

	result.Distance = core.Distance - capsule.Radius
	result.SqrDistance = result.Distance * result.Distance
	direction := point.Sub(core.ClosestB).Mul(1 / core.Distance)
	result.ClosestB = core.ClosestB.Add(direction.Mul(capsule.Radius))

	return result
}
