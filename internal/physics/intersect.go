package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Early-out tests. They report overlap only and never write contacts.

func SphereIntersectsHalfSpace(s Sphere, p Plane) bool {
	return p.Distance(s.Center())-s.Radius <= 0
}

func SphereIntersectsSphere(a, b Sphere) bool {
	d := rl.Vector3Subtract(a.Center(), b.Center())
	r := a.Radius + b.Radius
	return rl.Vector3DotProduct(d, d) < r*r
}

func BoxIntersectsHalfSpace(b Box, p Plane) bool {
	o := b.OBB()
	return p.Distance(o.Center)-o.projectedRadius(p.Normal) <= 0
}

func BoxIntersectsBox(a, b Box) bool {
	return a.OBB().IntersectsOBB(b.OBB())
}
