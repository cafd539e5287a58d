package primitive

import "github.com/go-gl/mathgl/mgl64"

// Capsule is the set of points within Radius of its core segment.
// Invariant: Radius >= 0.
type Capsule struct {
	Segment Segment
	Radius  float64
}

func (c Capsule) Support(direction mgl64.Vec3) mgl64.Vec3 {
	support := c.Segment.Support(direction)
	if direction.LenSqr() == 0 {
		return support.Add(mgl64.Vec3{c.Radius, 0, 0})
	}
	return support.Add(direction.Normalize().Mul(c.Radius))
}

func (c Capsule) AABB() AABB {
	radiusVec := mgl64.Vec3{c.Radius, c.Radius, c.Radius}
	bounds := c.Segment.AABB()
	return AABB{
		Min: bounds.Min.Sub(radiusVec),
		Max: bounds.Max.Add(radiusVec),
	}
}
