package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Ray is a world-space ray. Direction does not need to be normalized; hit
// distances are measured in multiples of it.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

// At returns the point origin + t*direction.
func (r Ray) At(t float32) rl.Vector3 {
	return rl.Vector3Add(r.Origin, rl.Vector3Scale(r.Direction, t))
}

// IntersectRayBox runs the slab test in the box's local frame. It reports a hit
// when the latest slab entry is not after the earliest slab exit, and returns
// that entry time. An axis whose local direction component is exactly zero is
// unbounded when the origin lies within the slab and a miss otherwise.
func IntersectRayBox(ray Ray, box Box) (float32, bool) {
	origin := box.Body.PointToLocal(ray.Origin)
	direction := box.Body.DirectionToLocal(ray.Direction)

	enter := float32(-math.MaxFloat32)
	exit := float32(math.MaxFloat32)

	for axis := 0; axis < 3; axis++ {
		o := component(origin, axis)
		d := component(direction, axis)
		h := component(box.HalfSize, axis)

		if d == 0 {
			if o < -h || o > h {
				return 0, false
			}
			continue
		}

		t1 := (-h - o) / d
		t2 := (h - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > enter {
			enter = t1
		}
		if t2 < exit {
			exit = t2
		}
	}

	if enter > exit {
		return 0, false
	}
	return enter, true
}

// RayHitsSphere reports whether the ray's line passes within the sphere.
func RayHitsSphere(ray Ray, sphere Sphere) bool {
	oc := rl.Vector3Subtract(ray.Origin, sphere.Center())
	a := rl.Vector3DotProduct(ray.Direction, ray.Direction)
	if a == 0 {
		return rl.Vector3DotProduct(oc, oc) <= sphere.Radius*sphere.Radius
	}
	b := 2.0 * rl.Vector3DotProduct(oc, ray.Direction)
	c := rl.Vector3DotProduct(oc, oc) - sphere.Radius*sphere.Radius

	return b*b-4*a*c >= 0
}
