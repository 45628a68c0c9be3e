package physics

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestIntersectRayBoxAxisAligned(t *testing.T) {
	box := newUnitBox(rl.Vector3{})
	ray := Ray{Origin: rl.Vector3{Z: -5}, Direction: rl.Vector3{Z: 1}}

	tHit, ok := IntersectRayBox(ray, box)
	if !ok {
		t.Fatal("Expected ray to hit the box")
	}
	if !approx(tHit, 4) {
		t.Errorf("Expected t = 4, got %f", tHit)
	}
	if p := ray.At(tHit); !approxVec(p, rl.Vector3{Z: -1}) {
		t.Errorf("Expected hit point (0,0,-1), got %v", p)
	}
}

func TestIntersectRayBoxMisses(t *testing.T) {
	box := newUnitBox(rl.Vector3{})

	tests := []struct {
		name string
		ray  Ray
	}{
		{"parallel outside x slab", Ray{Origin: rl.Vector3{X: 3, Z: -5}, Direction: rl.Vector3{Z: 1}}},
		{"parallel outside y slab", Ray{Origin: rl.Vector3{Y: -1.5, Z: -5}, Direction: rl.Vector3{Z: 1}}},
		{"oblique passing above", Ray{Origin: rl.Vector3{Y: 3, Z: -5}, Direction: rl.Vector3{Y: 0.1, Z: 1}}},
		{"diagonal passing beside", Ray{Origin: rl.Vector3{X: -5, Z: 2.5}, Direction: rl.Vector3{X: 1, Z: 0.1}}},
	}

	for _, tt := range tests {
		if _, ok := IntersectRayBox(tt.ray, box); ok {
			t.Errorf("%s: expected miss", tt.name)
		}
	}
}

func TestIntersectRayBoxUsesBodyFrame(t *testing.T) {
	box := newUnitBox(rl.Vector3{X: 10})
	box.Body.SetOrientation(rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math.Pi/4))
	ray := Ray{Origin: rl.Vector3{X: 10, Z: -5}, Direction: rl.Vector3{Z: 1}}

	tHit, ok := IntersectRayBox(ray, box)
	if !ok {
		t.Fatal("Expected ray to hit the rotated box")
	}
	want := float32(5 - math.Sqrt2)
	if absf(tHit-want) > 1e-3 {
		t.Errorf("Expected t = %f, got %f", want, tHit)
	}
}

func TestIntersectRayBoxOriginInside(t *testing.T) {
	box := newUnitBox(rl.Vector3{})
	ray := Ray{Origin: rl.Vector3{}, Direction: rl.Vector3{Z: 1}}

	tHit, ok := IntersectRayBox(ray, box)
	if !ok {
		t.Fatal("Ray starting inside the box should hit")
	}
	if !approx(tHit, -1) {
		t.Errorf("Expected entry time -1, got %f", tHit)
	}
}

func TestRayHitsSphere(t *testing.T) {
	s := Sphere{Body: newBodyAt(rl.Vector3{Y: 2}), Radius: 1}

	if !RayHitsSphere(Ray{Origin: rl.Vector3{Y: 2.5, Z: -5}, Direction: rl.Vector3{Z: 1}}, s) {
		t.Error("Expected ray through the sphere to hit")
	}
	if RayHitsSphere(Ray{Origin: rl.Vector3{Y: 4, Z: -5}, Direction: rl.Vector3{Z: 1}}, s) {
		t.Error("Expected ray above the sphere to miss")
	}
}
