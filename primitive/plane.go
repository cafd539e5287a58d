package primitive

import "github.com/go-gl/mathgl/mgl64"

// Plane is the set of points x with Dot(Normal, x) = Constant.
// Invariant: Normal has unit length. Constant is the signed distance of
// the plane from the origin along the normal.
type Plane struct {
	Normal   mgl64.Vec3
	Constant float64
}

// SignedDistance returns the signed distance from the point to the
// plane, positive on the side the normal points toward.
func (p Plane) SignedDistance(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) - p.Constant
}

// Halfspace is the closed set of points x with Dot(Normal, x) >= Constant,
// the side of the boundary plane the normal points into. The plane data
// is the same as Plane, only the semantics differ.
type Halfspace struct {
	Normal   mgl64.Vec3
	Constant float64
}

// SignedDistance returns the signed distance from the point to the
// halfspace boundary plane; nonnegative values are inside.
func (h Halfspace) SignedDistance(point mgl64.Vec3) float64 {
	return h.Normal.Dot(point) - h.Constant
}

// ContainsPoint reports whether the point is in the closed halfspace.
func (h Halfspace) ContainsPoint(point mgl64.Vec3) bool {
	return h.SignedDistance(point) >= 0
}
