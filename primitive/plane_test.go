package primitive

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPlaneSignedDistance(t *testing.T) {
	plane := Plane{Normal: mgl64.Vec3{0, 1, 0}, Constant: 2}

	testCases := []struct {
		name  string
		point mgl64.Vec3
		want  float64
	}{
		{name: "above", point: mgl64.Vec3{0, 5, 0}, want: 3},
		{name: "on the plane", point: mgl64.Vec3{7, 2, -3}, want: 0},
		{name: "below", point: mgl64.Vec3{0, -1, 0}, want: -3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := plane.SignedDistance(tc.point); got != tc.want {
				t.Errorf("SignedDistance(%v) = %v, want %v", tc.point, got, tc.want)
			}
		})
	}
}

func TestHalfspaceContainsPoint(t *testing.T) {
	halfspace := Halfspace{Normal: mgl64.Vec3{1, 0, 0}, Constant: -1}

	if !halfspace.ContainsPoint(mgl64.Vec3{0, 0, 0}) {
		t.Error("interior point should be contained")
	}
	if !halfspace.ContainsPoint(mgl64.Vec3{-1, 5, 5}) {
		t.Error("boundary point should be contained")
	}
	if halfspace.ContainsPoint(mgl64.Vec3{-1.5, 0, 0}) {
		t.Error("point behind the boundary should not be contained")
	}
}

func TestConeHeightInRange(t *testing.T) {
	cone := Cone{
		Ray:         Ray{Origin: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{0, 0, 1}},
		CosAngleSqr: 0.5,
		MinHeight:   1,
		MaxHeight:   4,
	}

	for _, h := range []float64{1, 2.5, 4} {
		if !cone.HeightInRange(h) {
			t.Errorf("HeightInRange(%v) = false, want true", h)
		}
	}
	for _, h := range []float64{0, 0.999, 4.001, -1} {
		if cone.HeightInRange(h) {
			t.Errorf("HeightInRange(%v) = true, want false", h)
		}
	}
}

func TestInfiniteConeHeightInRange(t *testing.T) {
	cone := InfiniteCone(Ray{Origin: mgl64.Vec3{0, 0, 0}, Direction: mgl64.Vec3{0, 0, 1}}, 0.75)

	if !cone.HeightInRange(0) {
		t.Error("apex height should be in range")
	}
	if !cone.HeightInRange(1e12) {
		t.Error("any positive height should be in range")
	}
	if cone.HeightInRange(-0.1) {
		t.Error("negative height should not be in range")
	}
}
