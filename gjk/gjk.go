// Package gjk implements the Gilbert-Johnson-Keerthi boolean
// intersection test for convex primitives exposed through their support
// mappings.
//
// GJK detects whether two convex sets overlap by testing whether their
// Minkowski difference contains the origin, building a simplex of
// support points that converges toward the origin in a handful of
// iterations. It complements the authored pairwise queries: any two
// primitives implementing primitive.Support can be tested, at the cost
// of the boolean answer only.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the
//     Distance Between Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D
//     Environments" (2003)
package gjk

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/quarksea/prox/primitive"
)

// simplex holds 1 to 4 points of the Minkowski difference, growing from
// a point to a tetrahedron as the iterations progress.
type simplex struct {
	points [4]mgl64.Vec3
	count  int
}

// minkowskiSupport computes a support point of the Minkowski difference
// A - B: the extreme point of A along the direction minus the extreme
// point of B against it.
func minkowskiSupport(a, b primitive.Support, direction mgl64.Vec3) mgl64.Vec3 {
	return a.Support(direction).Sub(b.Support(direction.Mul(-1)))
}

// Intersects reports whether the two convex primitives overlap. Unlike
// the authored analytic queries, the iterative test cannot promise the
// closed-boundary guarantee: an exact tangency may be reported as
// disjoint. Callers needing boundary inclusion should use the authored
// pair query when one exists.
func Intersects(a, b primitive.Support) bool {
	// Seed the search with the offset between two support points; it
	// approximates the center difference and usually saves an iteration
	// or two over a fixed axis.
	direction := b.Support(mgl64.Vec3{1, 0, 0}).Sub(a.Support(mgl64.Vec3{1, 0, 0}))
	if direction.LenSqr() < 1e-8 {
		direction = mgl64.Vec3{1, 0, 0}
	}

	var s simplex
	s.points[0] = minkowskiSupport(a, b, direction)
	s.count = 1

	// Search toward the origin from the first support point.
	direction = s.points[0].Mul(-1)
	if direction.LenSqr() < 1e-16 {
		return true
	}

	const maxIterations = 32
	for iter := 0; iter < maxIterations; iter++ {
		newPoint := minkowskiSupport(a, b, direction)

		// If the new point does not pass the origin along the search
		// direction, the origin is unreachable: proven separation.
		if newPoint.Dot(direction) <= 0 {
			return false
		}

		s.points[s.count] = newPoint
		s.count++

		if containsOrigin(&s, &direction) {
			return true
		}
	}

	// No convergence within the iteration cap; treat as disjoint.
	return false
}

// containsOrigin tests whether the simplex contains the origin. When it
// does not, the simplex is reduced to its feature closest to the origin
// and the search direction updated for the next iteration.
func containsOrigin(s *simplex, direction *mgl64.Vec3) bool {
	switch s.count {
	case 2:
		return line(s, direction)
	case 3:
		return triangle(s, direction)
	case 4:
		return tetrahedron(s, direction)
	}
	return false
}

// line reduces a 2-point simplex. A line cannot contain the origin in
// 3D unless the origin lies on the segment itself.
func line(s *simplex, direction *mgl64.Vec3) bool {
	a := s.points[1]
	b := s.points[0]
	ab := b.Sub(a)
	ao := a.Mul(-1)

	// Coincident points degenerate to the point case.
	if ab.LenSqr() < 1e-8 {
		if ao.LenSqr() < 1e-8 {
			return true
		}
		s.points[0] = a
		s.count = 1
		*direction = ao
		return false
	}

	// Voronoi region of A alone.
	if ab.Dot(ao) <= 0 {
		s.points[0] = a
		s.count = 1
		*direction = ao
		return false
	}

	abPerp := ab.Cross(ao).Cross(ab)
	if abPerp.LenSqr() < 1e-8 {
		// Origin on the segment.
		return true
	}

	*direction = abPerp
	return false
}

// triangle reduces a 3-point simplex to its Voronoi feature closest to
// the origin: a vertex, an edge, or the face itself with the search
// continuing above or below it.
func triangle(s *simplex, direction *mgl64.Vec3) bool {
	a := s.points[2]
	b := s.points[1]
	c := s.points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)

	abc := ab.Cross(ac)

	// Collinear points degenerate to the line case.
	if abc.LenSqr() < 1e-10 {
		s.points[0] = b
		s.points[1] = a
		s.count = 2
		return line(s, direction)
	}

	abPerp := ab.Cross(abc)
	if abPerp.Dot(ao) > 0 {
		s.points[0] = b
		s.points[1] = a
		s.count = 2
		*direction = ab.Cross(ao).Cross(ab)
		return false
	}

	acPerp := abc.Cross(ac)
	if acPerp.Dot(ao) > 0 {
		s.points[0] = c
		s.points[1] = a
		s.count = 2
		*direction = ac.Cross(ao).Cross(ac)
		return false
	}

	if abc.Dot(ao) > 0 {
		*direction = abc
	} else {
		// Below the face; reverse the winding to keep the orientation
		// consistent for the tetrahedron step.
		s.points[0] = a
		s.points[1] = c
		s.points[2] = b
		s.count = 3
		*direction = abc.Mul(-1)
	}

	return false
}

// tetrahedron is the only case that can enclose the origin. The origin
// is inside when it is behind all three faces adjacent to the most
// recent point; otherwise the simplex drops to the violated face.
func tetrahedron(s *simplex, direction *mgl64.Vec3) bool {
	a := s.points[3]
	b := s.points[2]
	c := s.points[1]
	d := s.points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	ao := a.Mul(-1)

	// Face normals must point away from the opposite vertex.
	abc := ab.Cross(ac)
	if abc.Dot(ad) > 0 {
		abc = abc.Mul(-1)
	}
	acd := ac.Cross(ad)
	if acd.Dot(ab) > 0 {
		acd = acd.Mul(-1)
	}
	adb := ad.Cross(ab)
	if adb.Dot(ac) > 0 {
		adb = adb.Mul(-1)
	}

	// A flat tetrahedron degenerates to the triangle case.
	if abc.LenSqr() < 1e-10 || acd.LenSqr() < 1e-10 || adb.LenSqr() < 1e-10 {
		s.points[0] = c
		s.points[1] = b
		s.points[2] = a
		s.count = 3
		return triangle(s, direction)
	}

	if abc.Dot(ao) > 0 {
		s.points[0] = c
		s.points[1] = b
		s.points[2] = a
		s.count = 3
		return triangle(s, direction)
	}
	if acd.Dot(ao) > 0 {
		s.points[0] = d
		s.points[1] = c
		s.points[2] = a
		s.count = 3
		return triangle(s, direction)
	}
	if adb.Dot(ao) > 0 {
		s.points[0] = b
		s.points[1] = d
		s.points[2] = a
		s.count = 3
		return triangle(s, direction)
	}

	return true
}
