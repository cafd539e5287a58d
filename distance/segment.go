package distance

import (
	"github.com/quarksea/prox/primitive"
)

// maxBisections bounds the parameter search in SegmentCanonicalBox.
// Halving [0,1] this many times is below one ulp of float64, so the
// iteration count is fixed and input-independent.
const maxBisections = 64

// SegmentCanonicalBox computes the distance between a segment and a
// solid canonical box.
//
// The squared point-box distance is convex in the point and the segment
// is an affine path, so f(t) = sqrDistance(segment(t), box) is convex on
// [0,1] with a nondecreasing derivative. The minimizing parameter is
// found by bisecting the derivative's sign change over a fixed number of
// steps; the endpoints short-circuit when the derivative never changes
// sign. On flat stretches of f (segment parallel to a face) the
// bisection lands on a deterministic parameter, giving the canonical
// closest pair.
func SegmentCanonicalBox(segment primitive.Segment, box primitive.CanonicalBox) Result {
	t := 0.0
	switch df0, df1 := sqrDistDerivative(segment, box, 0), sqrDistDerivative(segment, box, 1); {
	case df0 >= 0:
		t = 0
	case df1 <= 0:
		t = 1
	default:
		t0, t1 := 0.0, 1.0
		for b := 0; b < maxBisections; b++ {
			t = 0.5 * (t0 + t1)
			df := sqrDistDerivative(segment, box, t)
			if df < 0 {
				t0 = t
			} else if df > 0 {
				t1 = t
			} else {
				break
			}
		}
	}

	point := segment.At(t)
	result := PointCanonicalBox(point, box)
	result.ClosestA = point

	return result
}

// sqrDistDerivative evaluates d/dt of the squared distance from
// segment(t) to the box. Only axes where the point is outside the extent
// interval contribute.
func sqrDistDerivative(segment primitive.Segment, box primitive.CanonicalBox, t float64) float64 {
	point := segment.At(t)
	direction := segment.Direction()

	df := 0.0
	for i := 0; i < 3; i++ {
		if point[i] > box.Extent[i] {
			df += 2 * direction[i] * (point[i] - box.Extent[i])
		} else if point[i] < -box.Extent[i] {
			df += 2 * direction[i] * (point[i] + box.Extent[i])
		}
	}
	return df
}

// SegmentAlignedBox computes the distance between a segment and a solid
// aligned box by translating to the canonical frame.
func SegmentAlignedBox(segment primitive.Segment, box primitive.AlignedBox) Result {
	center, cbox := box.CenteredForm()
	xfrm := primitive.Segment{P0: segment.P0.Sub(center), P1: segment.P1.Sub(center)}

	result := SegmentCanonicalBox(xfrm, cbox)
	result.ClosestA = result.ClosestA.Add(center)
	result.ClosestB = result.ClosestB.Add(center)

	return result
}
