package pick

import (
	"dicedemo/internal/dice"
	"dicedemo/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Drag holds at most one grabbed die. While active it contributes the joint
// contact that pulls the die toward the pointer.
type Drag struct {
	Mode Mode

	joint  physics.PointJoint
	die    *dice.Die
	offset rl.Vector3 // hit point minus body position at pick time
	active bool
}

func NewDrag(mode Mode) *Drag {
	return &Drag{Mode: mode}
}

func (g *Drag) Active() bool {
	return g.active
}

// Die returns the grabbed die, or nil.
func (g *Drag) Die() *dice.Die {
	return g.die
}

// Joint returns a copy of the current joint.
func (g *Drag) Joint() physics.PointJoint {
	return g.joint
}

// Begin picks a die under ray. On a hit the joint attaches to the body's
// center with its target at the body's current position, and the body wakes.
func (g *Drag) Begin(ray physics.Ray, candidates []*dice.Die) bool {
	hit, ok := Pick(ray, candidates, g.Mode)
	if !ok {
		return false
	}

	body := hit.Die.Body
	g.die = hit.Die
	g.offset = rl.Vector3Subtract(hit.Point, body.Position())
	g.joint = physics.PointJoint{
		Body:   body,
		Target: rl.Vector3Subtract(hit.Point, g.offset),
	}
	g.active = true
	body.Wake()
	return true
}

// Move retargets the joint from a new ray. Only the grabbed die is tested; a
// miss leaves the target where it was.
func (g *Drag) Move(ray physics.Ray) bool {
	if !g.active {
		return false
	}
	t, ok := physics.IntersectRayBox(ray, g.die.Box)
	if !ok {
		return false
	}
	g.joint.Target = rl.Vector3Subtract(ray.At(t), g.offset)
	return true
}

func (g *Drag) Release() {
	g.joint = physics.PointJoint{}
	g.die = nil
	g.offset = rl.Vector3{}
	g.active = false
}

// AddContact writes the joint contact when a die is held.
func (g *Drag) AddContact(data *physics.CollisionData) int {
	if !g.active {
		return 0
	}
	return g.joint.AddContact(data)
}
