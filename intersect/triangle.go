package intersect

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quarksea/prox/primitive"
)

// TriangleCanonicalBox tests a solid triangle against a solid canonical
// box with the separating-axis interval test. The candidate axes are
// the three box face normals, the triangle normal, and the nine cross
// products of box axes with triangle edges. A separation must be strict
// on every axis comparison, so touching configurations intersect.
// A degenerate candidate axis (edge parallel to a box axis) projects
// everything to zero and can never prove separation.
func TriangleCanonicalBox(triangle primitive.Triangle, box primitive.CanonicalBox) TestResult {
	var result TestResult

	// Box face normals: compare the triangle's per-axis interval
	// against the extents.
	for i := 0; i < 3; i++ {
		lo := min(triangle.V[0][i], triangle.V[1][i], triangle.V[2][i])
		hi := max(triangle.V[0][i], triangle.V[1][i], triangle.V[2][i])
		if lo > box.Extent[i] || hi < -box.Extent[i] {
			return result
		}
	}

	// Triangle normal.
	if separatedOnAxis(triangle.Normal(), triangle, box) {
		return result
	}

	// Cross products of the box axes with the triangle edges.
	edges := [3]mgl64.Vec3{
		triangle.V[1].Sub(triangle.V[0]),
		triangle.V[2].Sub(triangle.V[1]),
		triangle.V[0].Sub(triangle.V[2]),
	}
	axes := [3]mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if separatedOnAxis(axes[i].Cross(edges[j]), triangle, box) {
				return result
			}
		}
	}

	result.Intersect = true
	return result
}

// separatedOnAxis projects the triangle and the canonical box onto the
// axis and reports whether the intervals are strictly disjoint.
func separatedOnAxis(axis mgl64.Vec3, triangle primitive.Triangle, box primitive.CanonicalBox) bool {
	p0 := axis.Dot(triangle.V[0])
	p1 := axis.Dot(triangle.V[1])
	p2 := axis.Dot(triangle.V[2])

	radius := 0.0
	for i := 0; i < 3; i++ {
		radius += box.Extent[i] * math.Abs(axis[i])
	}

	return min(p0, p1, p2) > radius || max(p0, p1, p2) < -radius
}

// TriangleAlignedBox tests a solid triangle against a solid aligned box
// by translating both into the frame where the box is canonical.
func TriangleAlignedBox(triangle primitive.Triangle, box primitive.AlignedBox) TestResult {
	center, cbox := box.CenteredForm()
	return TriangleCanonicalBox(triangle.Translated(center.Mul(-1)), cbox)
}

// AlignedBoxTriangle is the symmetric wrapper for TriangleAlignedBox.
func AlignedBoxTriangle(box primitive.AlignedBox, triangle primitive.Triangle) TestResult {
	return TriangleAlignedBox(triangle, box)
}
