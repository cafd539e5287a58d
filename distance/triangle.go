package distance

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quarksea/prox/intersect"
	"github.com/quarksea/prox/primitive"
)

// TriangleCanonicalBox computes the distance between a solid triangle
// and a solid canonical box.
//
// Overlapping pairs report zero distance with a common point obtained
// by clipping the triangle against the box slabs (the first vertex of
// the clipped polygon, a deterministic choice). For disjoint pairs the
// closest triangle point is either interior, in which case the
// plane-box query's plane point falls inside the triangle and is the
// answer, or on the triangle boundary, in which case the minimum over
// the three edge-box queries is taken. Ties keep the first candidate in
// enumeration order.
func TriangleCanonicalBox(triangle primitive.Triangle, box primitive.CanonicalBox) Result {
	var result Result

	if intersect.TriangleCanonicalBox(triangle, box).Intersect {
		if clipped := clipTriangleToBox(triangle, box); len(clipped) > 0 {
			result.ClosestA = clipped[0]
			result.ClosestB = clipped[0]
			return result
		}
		// Round-off collapsed a touching configuration; the disjoint
		// path below reports the same contact to within tolerance.
	}

	best := Result{Distance: math.Inf(1), SqrDistance: math.Inf(1)}

	normal := triangle.Normal()
	if normal.LenSqr() > 0 {
		unit := normal.Normalize()
		plane := primitive.Plane{Normal: unit, Constant: unit.Dot(triangle.V[0])}
		candidate := PlaneCanonicalBox(plane, box)
		if b0, b1, b2, ok := barycentric(candidate.ClosestA, triangle); ok &&
			b0 >= 0 && b1 >= 0 && b2 >= 0 {
			// The closest plane point lies inside the triangle, so the
			// plane distance is the triangle distance.
			best = candidate
		}
	}

	for i := 0; i < 3; i++ {
		candidate := SegmentCanonicalBox(triangle.Edge(i), box)
		if candidate.SqrDistance < best.SqrDistance {
			best = candidate
		}
	}

	return best
}

// TriangleAlignedBox computes the distance between a solid triangle and
// a solid aligned box by translating both into the frame where the box
// is canonical and translating the closest points back.
func TriangleAlignedBox(triangle primitive.Triangle, box primitive.AlignedBox) Result {
	center, cbox := box.CenteredForm()

	result := TriangleCanonicalBox(triangle.Translated(center.Mul(-1)), cbox)
	result.ClosestA = result.ClosestA.Add(center)
	result.ClosestB = result.ClosestB.Add(center)

	return result
}

// barycentric returns the barycentric coordinates of a point assumed to
// lie in the triangle's plane. ok is false for degenerate triangles.
func barycentric(point mgl64.Vec3, triangle primitive.Triangle) (b0, b1, b2 float64, ok bool) {
	e0 := triangle.V[1].Sub(triangle.V[0])
	e1 := triangle.V[2].Sub(triangle.V[0])
	e2 := point.Sub(triangle.V[0])

	d00 := e0.Dot(e0)
	d01 := e0.Dot(e1)
	d11 := e1.Dot(e1)
	d20 := e2.Dot(e0)
	d21 := e2.Dot(e1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return 0, 0, 0, false
	}

	b1 = (d11*d20 - d01*d21) / denom
	b2 = (d00*d21 - d01*d20) / denom
	b0 = 1 - b1 - b2
	return b0, b1, b2, true
}

// clipTriangleToBox clips the triangle polygon against the six slab
// halfspaces of the canonical box (Sutherland-Hodgman). The returned
// vertices, possibly empty, lie in the intersection of triangle and
// box; closed comparisons keep boundary points.
func clipTriangleToBox(triangle primitive.Triangle, box primitive.CanonicalBox) []mgl64.Vec3 {
	polygon := []mgl64.Vec3{triangle.V[0], triangle.V[1], triangle.V[2]}
	for i := 0; i < 3; i++ {
		polygon = clipAgainst(polygon, func(p mgl64.Vec3) float64 { return p[i] - box.Extent[i] })
		polygon = clipAgainst(polygon, func(p mgl64.Vec3) float64 { return -p[i] - box.Extent[i] })
	}
	return polygon
}

// clipAgainst keeps the part of the polygon where dist(p) <= 0.
func clipAgainst(polygon []mgl64.Vec3, dist func(mgl64.Vec3) float64) []mgl64.Vec3 {
	if len(polygon) == 0 {
		return polygon
	}

	clipped := make([]mgl64.Vec3, 0, len(polygon)+1)
	for i := range polygon {
		current := polygon[i]
		next := polygon[(i+1)%len(polygon)]
		dc := dist(current)
		dn := dist(next)

		if dc <= 0 {
			clipped = append(clipped, current)
		}
		if (dc < 0 && dn > 0) || (dc > 0 && dn < 0) {
			t := dc / (dc - dn)
			clipped = append(clipped, current.Add(next.Sub(current).Mul(t)))
		}
	}
	return clipped
}
