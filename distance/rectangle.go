package distance

import "github.com/quarksea/prox/primitive"

// RectangleCanonicalBox computes the distance between a solid rectangle
// and a solid canonical box. The rectangle splits into two triangles
// along a fixed diagonal and the smaller of the two triangle distances
// wins; on a tie the first triangle's pair is kept.
func RectangleCanonicalBox(rectangle primitive.Rectangle, box primitive.CanonicalBox) Result {
	triangles := rectangle.Triangles()

	result := TriangleCanonicalBox(triangles[0], box)
	if other := TriangleCanonicalBox(triangles[1], box); other.SqrDistance < result.SqrDistance {
		result = other
	}

	return result
}

// RectangleAlignedBox computes the distance between a solid rectangle
// and a solid aligned box by translating both into the frame where the
// box is canonical and translating the closest points back.
func RectangleAlignedBox(rectangle primitive.Rectangle, box primitive.AlignedBox) Result {
	center, cbox := box.CenteredForm()
	xfrm := rectangle
	xfrm.Center = rectangle.Center.Sub(center)

	result := RectangleCanonicalBox(xfrm, cbox)
	result.ClosestA = result.ClosestA.Add(center)
	result.ClosestB = result.ClosestB.Add(center)

	return result
}
