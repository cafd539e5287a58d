package intersect

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/quarksea/prox/primitive"
)

func TestPlaneCapsule(t *testing.T) {
	plane := primitive.Plane{Normal: mgl64.Vec3{0, 0, 1}, Constant: 0}

	tests := []struct {
		name      string
		capsule   primitive.Capsule
		intersect bool
	}{
		{
			name: "segment straddles plane",
			capsule: primitive.Capsule{
				Segment: primitive.Segment{P0: mgl64.Vec3{0, 0, -1}, P1: mgl64.Vec3{0, 0, 1}},
				Radius:  0.1,
			},
			intersect: true,
		},
		{
			name: "endpoint on plane",
			capsule: primitive.Capsule{
				Segment: primitive.Segment{P0: mgl64.Vec3{2, 3, 0}, P1: mgl64.Vec3{2, 3, 4}},
				Radius:  0.1,
			},
			intersect: true,
		},
		{
			name: "same side, sphere cap reaches plane",
			capsule: primitive.Capsule{
				Segment: primitive.Segment{P0: mgl64.Vec3{0, 0, 0.5}, P1: mgl64.Vec3{0, 0, 2}},
				Radius:  0.5,
			},
			intersect: true,
		},
		{
			name: "same side, out of reach",
			capsule: primitive.Capsule{
				Segment: primitive.Segment{P0: mgl64.Vec3{0, 0, 0.5}, P1: mgl64.Vec3{0, 0, 2}},
				Radius:  0.1,
			},
			intersect: false,
		},
		{
			name: "below plane, out of reach",
			capsule: primitive.Capsule{
				Segment: primitive.Segment{P0: mgl64.Vec3{1, 1, -3}, P1: mgl64.Vec3{2, 1, -2}},
				Radius:  1,
			},
			intersect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PlaneCapsule(plane, tt.capsule)
			if result.Intersect != tt.intersect {
				t.Errorf("PlaneCapsule() = %v, want %v", result.Intersect, tt.intersect)
			}

			if swapped := CapsulePlane(tt.capsule, plane); swapped.Intersect != tt.intersect {
				t.Errorf("CapsulePlane() = %v, want %v", swapped.Intersect, tt.intersect)
			}
		})
	}
}

func TestPlaneEllipsoid(t *testing.T) {
	plane := primitive.Plane{Normal: mgl64.Vec3{0, 0, 1}, Constant: 0}

	// Sphere of radius 2 as an ellipsoid: M = I/4.
	sphereM := mgl64.Mat3{
		0.25, 0, 0,
		0, 0.25, 0,
		0, 0, 0.25,
	}
	// Semi-axes (3, 1, 1): reach along Z is 1.
	flatM := mgl64.Mat3{
		1.0 / 9.0, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}

	tests := []struct {
		name      string
		ellipsoid primitive.Ellipsoid
		intersect bool
	}{
		{
			name:      "spherical, center within reach",
			ellipsoid: primitive.Ellipsoid{Center: mgl64.Vec3{0, 0, 1}, M: sphereM},
			intersect: true,
		},
		{
			name:      "spherical, tangent",
			ellipsoid: primitive.Ellipsoid{Center: mgl64.Vec3{4, -1, 2}, M: sphereM},
			intersect: true,
		},
		{
			name:      "spherical, out of reach",
			ellipsoid: primitive.Ellipsoid{Center: mgl64.Vec3{0, 0, 3}, M: sphereM},
			intersect: false,
		},
		{
			name:      "flattened, short axis toward plane",
			ellipsoid: primitive.Ellipsoid{Center: mgl64.Vec3{0, 0, 2}, M: flatM},
			intersect: false,
		},
		{
			name:      "flattened, within short reach",
			ellipsoid: primitive.Ellipsoid{Center: mgl64.Vec3{0, 0, 0.5}, M: flatM},
			intersect: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PlaneEllipsoid(plane, tt.ellipsoid)
			if result.Intersect != tt.intersect {
				t.Errorf("PlaneEllipsoid() = %v, want %v", result.Intersect, tt.intersect)
			}
		})
	}
}

func TestPlaneSphere(t *testing.T) {
	plane := primitive.Plane{Normal: mgl64.Vec3{1, 0, 0}, Constant: 2}

	tests := []struct {
		name      string
		sphere    primitive.Sphere
		intersect bool
	}{
		{"crossing", primitive.Sphere{Center: mgl64.Vec3{2.5, 0, 0}, Radius: 1}, true},
		{"tangent from positive side", primitive.Sphere{Center: mgl64.Vec3{3, 0, 0}, Radius: 1}, true},
		{"tangent from negative side", primitive.Sphere{Center: mgl64.Vec3{1, 0, 0}, Radius: 1}, true},
		{"disjoint", primitive.Sphere{Center: mgl64.Vec3{5, 0, 0}, Radius: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PlaneSphere(plane, tt.sphere)
			if result.Intersect != tt.intersect {
				t.Errorf("PlaneSphere() = %v, want %v", result.Intersect, tt.intersect)
			}
		})
	}
}
