package primitive

import "github.com/go-gl/mathgl/mgl64"

// Segment is the set of points (1-t)*P0 + t*P1 for t in [0,1].
type Segment struct {
	P0 mgl64.Vec3
	P1 mgl64.Vec3
}

// Direction returns P1 - P0, not normalized.
func (s Segment) Direction() mgl64.Vec3 {
	return s.P1.Sub(s.P0)
}

// At returns the point at parameter t. Callers clamp t themselves when
// they need to stay on the segment.
func (s Segment) At(t float64) mgl64.Vec3 {
	return s.P0.Add(s.Direction().Mul(t))
}

func (s Segment) Support(direction mgl64.Vec3) mgl64.Vec3 {
	if direction.Dot(s.P1) >= direction.Dot(s.P0) {
		return s.P1
	}
	return s.P0
}

func (s Segment) AABB() AABB {
	return AABB{
		Min: mgl64.Vec3{
			min(s.P0.X(), s.P1.X()),
			min(s.P0.Y(), s.P1.Y()),
			min(s.P0.Z(), s.P1.Z()),
		},
		Max: mgl64.Vec3{
			max(s.P0.X(), s.P1.X()),
			max(s.P0.Y(), s.P1.Y()),
			max(s.P0.Z(), s.P1.Z()),
		},
	}
}

// Line is the set of points Origin + t*Direction for all real t.
// Invariant: Direction has unit length.
type Line struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// Ray is the set of points Origin + t*Direction for t >= 0.
// Invariant: Direction has unit length.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// At returns the point at parameter t >= 0.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
