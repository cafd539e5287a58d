package distance

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quarksea/prox/primitive"
)

func vec3Equal(a, b mgl64.Vec3, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance &&
		math.Abs(a.Z()-b.Z()) < tolerance
}

func floatEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

// checkConsistent verifies the invariants every distance result obeys:
// the squared distance is the square of the distance and also the
// squared length of the closest-point difference.
func checkConsistent(t *testing.T, result Result) {
	t.Helper()
	if !floatEqual(result.Distance*result.Distance, result.SqrDistance, 1e-9) {
		t.Errorf("Distance² = %v, SqrDistance = %v", result.Distance*result.Distance, result.SqrDistance)
	}
	gap := result.ClosestA.Sub(result.ClosestB).LenSqr()
	if !floatEqual(gap, result.SqrDistance, 1e-9) {
		t.Errorf("closest pair gap² = %v, SqrDistance = %v", gap, result.SqrDistance)
	}
}

func TestPointCanonicalBox(t *testing.T) {
	tests := []struct {
		name        string
		point       mgl64.Vec3
		box         primitive.CanonicalBox
		sqrDistance float64
		closest     mgl64.Vec3
	}{
		{
			name:        "outside one face",
			point:       mgl64.Vec3{5, 0, 0},
			box:         primitive.CanonicalBox{Extent: mgl64.Vec3{2, 2, 2}},
			sqrDistance: 9,
			closest:     mgl64.Vec3{2, 0, 0},
		},
		{
			name:        "outside a corner",
			point:       mgl64.Vec3{3, 4, 5},
			box:         primitive.CanonicalBox{Extent: mgl64.Vec3{1, 1, 1}},
			sqrDistance: 4 + 9 + 16,
			closest:     mgl64.Vec3{1, 1, 1},
		},
		{
			name:        "outside the negative side",
			point:       mgl64.Vec3{0, -3, 0},
			box:         primitive.CanonicalBox{Extent: mgl64.Vec3{1, 1, 1}},
			sqrDistance: 4,
			closest:     mgl64.Vec3{0, -1, 0},
		},
		{
			name:        "inside",
			point:       mgl64.Vec3{0.5, -0.5, 0},
			box:         primitive.CanonicalBox{Extent: mgl64.Vec3{1, 1, 1}},
			sqrDistance: 0,
			closest:     mgl64.Vec3{0.5, -0.5, 0},
		},
		{
			name:        "on the boundary",
			point:       mgl64.Vec3{1, 1, 1},
			box:         primitive.CanonicalBox{Extent: mgl64.Vec3{1, 1, 1}},
			sqrDistance: 0,
			closest:     mgl64.Vec3{1, 1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PointCanonicalBox(tt.point, tt.box)

			if !floatEqual(result.SqrDistance, tt.sqrDistance, 1e-12) {
				t.Errorf("SqrDistance = %v, want %v", result.SqrDistance, tt.sqrDistance)
			}
			if !vec3Equal(result.ClosestA, tt.point, 1e-12) {
				t.Errorf("ClosestA = %v, want the query point %v", result.ClosestA, tt.point)
			}
			if !vec3Equal(result.ClosestB, tt.closest, 1e-12) {
				t.Errorf("ClosestB = %v, want %v", result.ClosestB, tt.closest)
			}
			checkConsistent(t, result)
		})
	}
}

func TestPointCanonicalBoxDoesNotMutateInputs(t *testing.T) {
	point := mgl64.Vec3{5, 0, 0}
	box := primitive.CanonicalBox{Extent: mgl64.Vec3{2, 2, 2}}

	_ = PointCanonicalBox(point, box)

	if point != (mgl64.Vec3{5, 0, 0}) {
		t.Errorf("point mutated to %v", point)
	}
	if box.Extent != (mgl64.Vec3{2, 2, 2}) {
		t.Errorf("box mutated to %v", box.Extent)
	}
}

func TestPointAlignedBox(t *testing.T) {
	box := primitive.AlignedBox{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{4, 4, 4}}

	result := PointAlignedBox(mgl64.Vec3{5, 2, 2}, box)
	if !floatEqual(result.Distance, 1, 1e-12) {
		t.Errorf("Distance = %v, want 1", result.Distance)
	}
	if !vec3Equal(result.ClosestB, mgl64.Vec3{4, 2, 2}, 1e-12) {
		t.Errorf("ClosestB = %v, want (4,2,2)", result.ClosestB)
	}
	checkConsistent(t, result)

	inside := PointAlignedBox(mgl64.Vec3{1, 1, 1}, box)
	if inside.Distance != 0 {
		t.Errorf("inside Distance = %v, want 0", inside.Distance)
	}
}

func TestPointOrientedBox(t *testing.T) {
	// Box rotated 90 degrees about Z: local X is world +Y, local Y is
	// world -X. World footprint: x in [-2,2], y in [-1,1], z in [-1,1].
	box := primitive.OrientedBox{
		Center: mgl64.Vec3{0, 0, 0},
		Axis:   [3]mgl64.Vec3{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}},
		Extent: mgl64.Vec3{1, 2, 1},
	}

	result := PointOrientedBox(mgl64.Vec3{3, 0, 0}, box)
	if !floatEqual(result.Distance, 1, 1e-12) {
		t.Errorf("Distance = %v, want 1", result.Distance)
	}
	if !vec3Equal(result.ClosestB, mgl64.Vec3{2, 0, 0}, 1e-12) {
		t.Errorf("ClosestB = %v, want (2,0,0)", result.ClosestB)
	}
	checkConsistent(t, result)
}

func TestPointPlane(t *testing.T) {
	plane := primitive.Plane{Normal: mgl64.Vec3{0, 1, 0}, Constant: 2}

	tests := []struct {
		name     string
		point    mgl64.Vec3
		distance float64
		closest  mgl64.Vec3
	}{
		{"above", mgl64.Vec3{5, 7, 1}, 5, mgl64.Vec3{5, 2, 1}},
		{"below", mgl64.Vec3{0, -1, 0}, 3, mgl64.Vec3{0, 2, 0}},
		{"on the plane", mgl64.Vec3{9, 2, -4}, 0, mgl64.Vec3{9, 2, -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PointPlane(tt.point, plane)
			if !floatEqual(result.Distance, tt.distance, 1e-12) {
				t.Errorf("Distance = %v, want %v", result.Distance, tt.distance)
			}
			if !vec3Equal(result.ClosestB, tt.closest, 1e-12) {
				t.Errorf("ClosestB = %v, want %v", result.ClosestB, tt.closest)
			}
			checkConsistent(t, result)
		})
	}
}

func TestPointSegment(t *testing.T) {
	segment := primitive.Segment{P0: mgl64.Vec3{0, 0, 0}, P1: mgl64.Vec3{2, 0, 0}}

	tests := []struct {
		name     string
		point    mgl64.Vec3
		distance float64
		closest  mgl64.Vec3
	}{
		{"projects inside", mgl64.Vec3{1, 1, 0}, 1, mgl64.Vec3{1, 0, 0}},
		{"clamped to the far end", mgl64.Vec3{3, 1, 0}, math.Sqrt2, mgl64.Vec3{2, 0, 0}},
		{"clamped to the near end", mgl64.Vec3{-2, 0, 0}, 2, mgl64.Vec3{0, 0, 0}},
		{"on the segment", mgl64.Vec3{0.5, 0, 0}, 0, mgl64.Vec3{0.5, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PointSegment(tt.point, segment)
			if !floatEqual(result.Distance, tt.distance, 1e-12) {
				t.Errorf("Distance = %v, want %v", result.Distance, tt.distance)
			}
			if !vec3Equal(result.ClosestB, tt.closest, 1e-12) {
				t.Errorf("ClosestB = %v, want %v", result.ClosestB, tt.closest)
			}
			checkConsistent(t, result)
		})
	}

	t.Run("degenerate segment", func(t *testing.T) {
		degenerate := primitive.Segment{P0: mgl64.Vec3{1, 1, 1}, P1: mgl64.Vec3{1, 1, 1}}
		result := PointSegment(mgl64.Vec3{1, 1, 3}, degenerate)
		if !floatEqual(result.Distance, 2, 1e-12) {
			t.Errorf("Distance = %v, want 2", result.Distance)
		}
	})
}

func TestPointSphere(t *testing.T) {
	sphere := primitive.Sphere{Center: mgl64.Vec3{0, 0, 0}, Radius: 2}

	t.Run("outside", func(t *testing.T) {
		result := PointSphere(mgl64.Vec3{5, 0, 0}, sphere)
		if !floatEqual(result.Distance, 3, 1e-12) {
			t.Errorf("Distance = %v, want 3", result.Distance)
		}
		if !vec3Equal(result.ClosestB, mgl64.Vec3{2, 0, 0}, 1e-12) {
			t.Errorf("ClosestB = %v, want (2,0,0)", result.ClosestB)
		}
		checkConsistent(t, result)
	})

	t.Run("inside the solid ball", func(t *testing.T) {
		result := PointSphere(mgl64.Vec3{1, 0, 0}, sphere)
		if result.Distance != 0 {
			t.Errorf("Distance = %v, want 0", result.Distance)
		}
	})

	t.Run("at the center", func(t *testing.T) {
		result := PointSphere(mgl64.Vec3{0, 0, 0}, sphere)
		if result.Distance != 0 {
			t.Errorf("Distance = %v, want 0", result.Distance)
		}
	})
}

func TestPointCapsule(t *testing.T) {
	capsule := primitive.Capsule{
		Segment: primitive.Segment{P0: mgl64.Vec3{0, 0, 0}, P1: mgl64.Vec3{0, 0, 4}},
		Radius:  1,
	}

	t.Run("beside the core", func(t *testing.T) {
		result := PointCapsule(mgl64.Vec3{3, 0, 2}, capsule)
		if !floatEqual(result.Distance, 2, 1e-12) {
			t.Errorf("Distance = %v, want 2", result.Distance)
		}
		if !vec3Equal(result.ClosestB, mgl64.Vec3{1, 0, 2}, 1e-12) {
			t.Errorf("ClosestB = %v, want (1,0,2)", result.ClosestB)
		}
		checkConsistent(t, result)
	})

	t.Run("beyond an endpoint cap", func(t *testing.T) {
		result := PointCapsule(mgl64.Vec3{0, 0, 7}, capsule)
		if !floatEqual(result.Distance, 2, 1e-12) {
			t.Errorf("Distance = %v, want 2", result.Distance)
		}
	})

	t.Run("inside", func(t *testing.T) {
		result := PointCapsule(mgl64.Vec3{0.5, 0, 2}, capsule)
		if result.Distance != 0 {
			t.Errorf("Distance = %v, want 0", result.Distance)
		}
	})
}
