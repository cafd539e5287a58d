package primitive

import "github.com/go-gl/mathgl/mgl64"

// Sphere is a solid ball with center and radius.
// Invariant: Radius >= 0.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// ContainsPoint reports whether the point is inside the closed ball.
func (s Sphere) ContainsPoint(point mgl64.Vec3) bool {
	return point.Sub(s.Center).LenSqr() <= s.Radius*s.Radius
}

func (s Sphere) Support(direction mgl64.Vec3) mgl64.Vec3 {
	if direction.LenSqr() == 0 {
		return s.Center.Add(mgl64.Vec3{s.Radius, 0, 0})
	}
	return s.Center.Add(direction.Normalize().Mul(s.Radius))
}

// AABB is not affected by rotation, only by the center.
func (s Sphere) AABB() AABB {
	radiusVec := mgl64.Vec3{s.Radius, s.Radius, s.Radius}

	return AABB{
		Min: s.Center.Sub(radiusVec),
		Max: s.Center.Add(radiusVec),
	}
}

// Ellipsoid is a solid ellipsoid defined implicitly by
// (x-Center)^T M (x-Center) = 1 for the shape matrix M.
// Invariant: M symmetric positive-definite.
type Ellipsoid struct {
	Center mgl64.Vec3
	M      mgl64.Mat3
}

// MInverse returns the inverse of the shape matrix. M is positive
// definite, so the inverse exists for well-formed ellipsoids.
func (e Ellipsoid) MInverse() mgl64.Mat3 {
	return e.M.Inv()
}
