package dice

import (
	"dicedemo/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// bipyramidVertices are the collision points of a bipyramid die in units of its
// half size: four equator corners, then the upper and lower apex.
var bipyramidVertices = [6]rl.Vector3{
	{X: -1, Y: 0, Z: 1},
	{X: -1, Y: 0, Z: -1},
	{X: 1, Y: 0, Z: -1},
	{X: 1, Y: 0, Z: 1},
	{X: 0, Y: 0.5, Z: 0},
	{X: 0, Y: -0.5, Z: 0},
}

func (d *Die) bipyramidWorldVertices() [6]rl.Vector3 {
	h := d.Box.HalfSize
	var out [6]rl.Vector3
	for i, v := range bipyramidVertices {
		out[i] = d.Body.PointToWorld(rl.Vector3{X: v.X * h.X, Y: v.Y * h.Y, Z: v.Z * h.Z})
	}
	return out
}

// bipyramidPlaneTest emits one contact per vertex strictly below the plane, in
// vertex order, and stops as soon as the budget runs out. Contacts sit at the
// vertex itself and share the plane normal.
func bipyramidPlaneTest(d *Die, plane physics.Plane, data *physics.CollisionData) int {
	if !data.HasMoreContacts() || !physics.SphereIntersectsHalfSpace(d.Rounding, plane) {
		return 0
	}

	free := data.Free()
	used := 0
	for _, v := range d.bipyramidWorldVertices() {
		dist := rl.Vector3DotProduct(v, plane.Normal)
		if dist >= plane.Offset {
			continue
		}

		c := &free[used]
		c.Point = v
		c.Normal = plane.Normal
		c.Penetration = plane.Offset - dist
		c.Bodies = [2]*physics.RigidBody{d.Body, nil}
		c.Friction = data.Friction
		c.Restitution = data.Restitution

		used++
		if used == len(free) {
			break
		}
	}

	return data.Append(used)
}
