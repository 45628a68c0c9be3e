package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Box is an oriented box rigidly attached to a body. Only the half extents are
// stored; placement is read from the body on every call.
type Box struct {
	Body     *RigidBody
	HalfSize rl.Vector3
}

func (b Box) Center() rl.Vector3 {
	return b.Body.Position()
}

// Axis returns the world direction of the box's i-th local axis.
func (b Box) Axis(i int) rl.Vector3 {
	switch i {
	case 0:
		return b.Body.DirectionToWorld(rl.Vector3{X: 1})
	case 1:
		return b.Body.DirectionToWorld(rl.Vector3{Y: 1})
	default:
		return b.Body.DirectionToWorld(rl.Vector3{Z: 1})
	}
}

// boxCorners lists corner signs in a fixed order.
var boxCorners = [8]rl.Vector3{
	{X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1},
	{X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1},
}

// Vertices returns the 8 world-space corners.
func (b Box) Vertices() [8]rl.Vector3 {
	var out [8]rl.Vector3
	for i, s := range boxCorners {
		local := rl.Vector3{X: s.X * b.HalfSize.X, Y: s.Y * b.HalfSize.Y, Z: s.Z * b.HalfSize.Z}
		out[i] = b.Body.PointToWorld(local)
	}
	return out
}

// Sphere is a sphere centered on its body's position.
type Sphere struct {
	Body   *RigidBody
	Radius float32
}

func (s Sphere) Center() rl.Vector3 {
	return s.Body.Position()
}

// Plane is a half-space boundary: points p with dot(p, Normal) <= Offset are inside.
// Normal must be unit length.
type Plane struct {
	Normal rl.Vector3
	Offset float32
}

// Ground is the horizontal plane y = 0.
var Ground = Plane{Normal: rl.Vector3{Y: 1}, Offset: 0}

// Distance returns the signed distance of p above the plane.
func (p Plane) Distance(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(point, p.Normal) - p.Offset
}
