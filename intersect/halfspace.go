package intersect

import (
	"math"

	"github.com/quarksea/prox/primitive"
)

// HalfspaceSphere tests a halfspace against a solid sphere. The sphere
// center is projected onto the normal line, where the halfspace boundary
// sits at zero; the pair intersects when the projection interval maximum
// is nonnegative.
func HalfspaceSphere(halfspace primitive.Halfspace, sphere primitive.Sphere) TestResult {
	var result TestResult

	center := halfspace.SignedDistance(sphere.Center)
	result.Intersect = center+sphere.Radius >= 0

	return result
}

// HalfspaceOrientedBox tests a halfspace against a solid oriented box.
// The projection radius of the box onto the normal line is the support
// sum of |extent[i] * Dot(normal, axis[i])|; the pair intersects when
// the projection interval maximum is nonnegative.
func HalfspaceOrientedBox(halfspace primitive.Halfspace, box primitive.OrientedBox) TestResult {
	var result TestResult

	center := halfspace.SignedDistance(box.Center)

	radius := 0.0
	for i := 0; i < 3; i++ {
		radius += math.Abs(box.Extent[i] * halfspace.Normal.Dot(box.Axis[i]))
	}

	result.Intersect = center+radius >= 0

	return result
}

// HalfspaceAlignedBox tests a halfspace against a solid aligned box, an
// oriented box whose frame is the identity: the projection radius
// reduces to the extent-weighted absolute normal components.
func HalfspaceAlignedBox(halfspace primitive.Halfspace, box primitive.AlignedBox) TestResult {
	var result TestResult

	boxCenter, cbox := box.CenteredForm()
	center := halfspace.SignedDistance(boxCenter)

	radius := 0.0
	for i := 0; i < 3; i++ {
		radius += cbox.Extent[i] * math.Abs(halfspace.Normal[i])
	}

	result.Intersect = center+radius >= 0

	return result
}
