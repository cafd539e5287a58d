package primitive

import "github.com/go-gl/mathgl/mgl64"

// Triangle is the convex hull of its three vertices. Degenerate
// triangles (collinear or coincident vertices) are allowed; the queries
// still produce a defined answer for them.
type Triangle struct {
	V [3]mgl64.Vec3
}

// Normal returns the unnormalized triangle normal (V1-V0) x (V2-V0).
// It is zero for degenerate triangles.
func (t Triangle) Normal() mgl64.Vec3 {
	return t.V[1].Sub(t.V[0]).Cross(t.V[2].Sub(t.V[0]))
}

// Edge returns the i-th edge as a segment, from V[i] to V[(i+1)%3].
func (t Triangle) Edge(i int) Segment {
	return Segment{P0: t.V[i], P1: t.V[(i+1)%3]}
}

// Translated returns the triangle with all vertices offset by delta.
func (t Triangle) Translated(delta mgl64.Vec3) Triangle {
	return Triangle{V: [3]mgl64.Vec3{
		t.V[0].Add(delta),
		t.V[1].Add(delta),
		t.V[2].Add(delta),
	}}
}

func (t Triangle) Support(direction mgl64.Vec3) mgl64.Vec3 {
	support := t.V[0]
	best := direction.Dot(t.V[0])
	for i := 1; i < 3; i++ {
		if d := direction.Dot(t.V[i]); d > best {
			best = d
			support = t.V[i]
		}
	}
	return support
}

func (t Triangle) AABB() AABB {
	bounds := AABB{Min: t.V[0], Max: t.V[0]}
	for i := 1; i < 3; i++ {
		bounds = bounds.Merge(AABB{Min: t.V[i], Max: t.V[i]})
	}
	return bounds
}

// Rectangle is a solid rectangle with center, two orthonormal in-plane
// axis directions and two extents. A rectangle point is
// Center + s0*Axis[0] + s1*Axis[1] with |si| <= Extent[i].
// Invariants: the axes are unit length and perpendicular; Extent[i] >= 0.
type Rectangle struct {
	Center mgl64.Vec3
	Axis   [2]mgl64.Vec3
	Extent [2]float64
}

// Corner returns the corner with the given axis signs (0 -> -extent,
// 1 -> +extent).
func (r Rectangle) Corner(s0, s1 int) mgl64.Vec3 {
	sign := [2]float64{-1, 1}
	return r.Center.
		Add(r.Axis[0].Mul(sign[s0] * r.Extent[0])).
		Add(r.Axis[1].Mul(sign[s1] * r.Extent[1]))
}

// Triangles splits the rectangle into two triangles along the diagonal
// from Corner(0,0) to Corner(1,1). The split order is fixed so that
// queries built on it are deterministic.
func (r Rectangle) Triangles() [2]Triangle {
	c00 := r.Corner(0, 0)
	c10 := r.Corner(1, 0)
	c01 := r.Corner(0, 1)
	c11 := r.Corner(1, 1)
	return [2]Triangle{
		{V: [3]mgl64.Vec3{c00, c10, c11}},
		{V: [3]mgl64.Vec3{c00, c11, c01}},
	}
}
