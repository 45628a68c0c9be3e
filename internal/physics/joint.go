package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// PointJoint pulls a point fixed on a body toward a world-space target. It is
// expressed as a contact so the resolver treats it like any other constraint.
type PointJoint struct {
	Body   *RigidBody
	Local  rl.Vector3 // attachment point in the body frame
	Target rl.Vector3 // world-space target
	Error  float32    // slack allowed before the joint pulls
}

// Anchor returns the attachment point in world space.
func (j *PointJoint) Anchor() rl.Vector3 {
	return j.Body.PointToWorld(j.Local)
}

// AddContact writes the joint's single contact into data. Friction is 1 and
// restitution 0 so the joint drags without bouncing.
func (j *PointJoint) AddContact(data *CollisionData) int {
	if j.Body == nil || !data.HasMoreContacts() {
		return 0
	}

	anchor := j.Anchor()
	delta := rl.Vector3Subtract(j.Target, anchor)
	length := rl.Vector3Length(delta)

	normal := rl.Vector3{Y: 1}
	if length > 1e-6 {
		normal = rl.Vector3Scale(delta, 1/length)
	}

	penetration := length - j.Error
	if penetration < 0 {
		penetration = 0
	}

	c := &data.Free()[0]
	c.Point = rl.Vector3Scale(rl.Vector3Add(anchor, j.Target), 0.5)
	c.Normal = normal
	c.Penetration = penetration
	c.setBodyData(j.Body, nil, 1, 0)

	return data.Append(1)
}
