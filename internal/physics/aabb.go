package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is an axis-aligned box used for broad-phase overlap checks.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// SphereBounds returns the AABB enclosing a sphere.
func SphereBounds(s Sphere) AABB {
	d := s.Radius * 2
	return NewAABBFromCenter(s.Center(), rl.Vector3{X: d, Y: d, Z: d})
}
