package primitive

import "math"

// Cone is a truncated solid cone: apex and axis given by Ray, half-angle
// stored as the squared cosine, and a height range along the axis
// measured from the apex.
// Invariants: CosAngleSqr in (0,1]; MinHeight <= MaxHeight.
type Cone struct {
	Ray         Ray
	CosAngleSqr float64
	MinHeight   float64
	MaxHeight   float64
}

// InfiniteCone returns a cone with an unbounded positive height range.
func InfiniteCone(ray Ray, cosAngleSqr float64) Cone {
	return Cone{
		Ray:         ray,
		CosAngleSqr: cosAngleSqr,
		MinHeight:   0,
		MaxHeight:   math.Inf(1),
	}
}

// HeightInRange reports whether the axis height h is within the cone's
// height bounds, boundaries included.
func (c Cone) HeightInRange(h float64) bool {
	return c.MinHeight <= h && h <= c.MaxHeight
}
