package primitive

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CanonicalBox is an axis-aligned box centered at the origin, described
// only by its per-axis extents (half-widths).
// Invariant: Extent[i] >= 0 for all i.
type CanonicalBox struct {
	Extent mgl64.Vec3
}

// ContainsPoint reports whether the point is in the closed box.
func (b CanonicalBox) ContainsPoint(point mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(point[i]) > b.Extent[i] {
			return false
		}
	}
	return true
}

func (b CanonicalBox) Support(direction mgl64.Vec3) mgl64.Vec3 {
	support := b.Extent
	for i := 0; i < 3; i++ {
		if direction[i] < 0 {
			support[i] = -support[i]
		}
	}
	return support
}

func (b CanonicalBox) AABB() AABB {
	return AABB{Min: b.Extent.Mul(-1), Max: b.Extent}
}

// AlignedBox is an axis-aligned box given by its minimum and maximum
// corners.
// Invariant: Min[i] <= Max[i] for all i.
type AlignedBox struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// CenteredForm returns the box center and the equivalent canonical box,
// the translation used by canonical-frame reductions.
func (b AlignedBox) CenteredForm() (mgl64.Vec3, CanonicalBox) {
	center := b.Min.Add(b.Max).Mul(0.5)
	extent := b.Max.Sub(b.Min).Mul(0.5)
	return center, CanonicalBox{Extent: extent}
}

// ContainsPoint reports whether the point is in the closed box.
func (b AlignedBox) ContainsPoint(point mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if point[i] < b.Min[i] || point[i] > b.Max[i] {
			return false
		}
	}
	return true
}

func (b AlignedBox) Support(direction mgl64.Vec3) mgl64.Vec3 {
	support := b.Max
	for i := 0; i < 3; i++ {
		if direction[i] < 0 {
			support[i] = b.Min[i]
		}
	}
	return support
}

func (b AlignedBox) AABB() AABB {
	return AABB{Min: b.Min, Max: b.Max}
}

// OrientedBox is a box with center, orthonormal axis frame and per-axis
// extents.
// Invariants: the axes are mutually orthonormal; Extent[i] >= 0.
type OrientedBox struct {
	Center mgl64.Vec3
	Axis   [3]mgl64.Vec3
	Extent mgl64.Vec3
}

// ToCanonical maps a world point into the box frame, where the box is
// the canonical box with the same extents.
func (b OrientedBox) ToCanonical(point mgl64.Vec3) mgl64.Vec3 {
	diff := point.Sub(b.Center)
	return mgl64.Vec3{
		diff.Dot(b.Axis[0]),
		diff.Dot(b.Axis[1]),
		diff.Dot(b.Axis[2]),
	}
}

// FromCanonical maps a box-frame point back to world coordinates.
func (b OrientedBox) FromCanonical(point mgl64.Vec3) mgl64.Vec3 {
	result := b.Center
	for i := 0; i < 3; i++ {
		result = result.Add(b.Axis[i].Mul(point[i]))
	}
	return result
}

// ContainsPoint reports whether the point is in the closed box.
func (b OrientedBox) ContainsPoint(point mgl64.Vec3) bool {
	return CanonicalBox{Extent: b.Extent}.ContainsPoint(b.ToCanonical(point))
}

func (b OrientedBox) Support(direction mgl64.Vec3) mgl64.Vec3 {
	support := b.Center
	for i := 0; i < 3; i++ {
		sign := 1.0
		if direction.Dot(b.Axis[i]) < 0 {
			sign = -1.0
		}
		support = support.Add(b.Axis[i].Mul(sign * b.Extent[i]))
	}
	return support
}

// AABB expands the eight corners of the box.
func (b OrientedBox) AABB() AABB {
	bounds := AABB{Min: b.Center, Max: b.Center}
	for i := 0; i < 3; i++ {
		// Each axis contributes independently to the corner spread.
		spread := mgl64.Vec3{
			math.Abs(b.Axis[i].X()),
			math.Abs(b.Axis[i].Y()),
			math.Abs(b.Axis[i].Z()),
		}.Mul(b.Extent[i])
		bounds.Min = bounds.Min.Sub(spread)
		bounds.Max = bounds.Max.Add(spread)
	}
	return bounds
}
