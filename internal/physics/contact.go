package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Contact is one point of touch handed to the resolver. Normal points from
// Bodies[1] toward Bodies[0]; resolving it moves Bodies[0] along +Normal.
// Bodies[1] is nil when the other side is the static world.
type Contact struct {
	Point       rl.Vector3
	Normal      rl.Vector3
	Penetration float32
	Bodies      [2]*RigidBody
	Friction    float32
	Restitution float32
}

func (c *Contact) setBodyData(one, two *RigidBody, friction, restitution float32) {
	c.Bodies = [2]*RigidBody{one, two}
	c.Friction = friction
	c.Restitution = restitution
}

// CollisionData is a fixed-capacity contact arena with a write cursor. It is
// reset at the start of every step and carries nothing across frames.
// Producers write into Free() and then commit with Append, never past Remaining.
type CollisionData struct {
	contacts []Contact
	count    int

	Friction    float32
	Restitution float32
	Tolerance   float32
}

func NewCollisionData(capacity int) *CollisionData {
	d := &CollisionData{}
	d.Reset(capacity)
	return d
}

// Reset clears the cursor and sets the frame's capacity. The backing arena is
// reused when it is large enough.
func (d *CollisionData) Reset(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	if cap(d.contacts) < capacity {
		d.contacts = make([]Contact, capacity)
	}
	d.contacts = d.contacts[:capacity]
	d.count = 0
}

func (d *CollisionData) Capacity() int {
	return len(d.contacts)
}

func (d *CollisionData) Count() int {
	return d.count
}

func (d *CollisionData) Remaining() int {
	return len(d.contacts) - d.count
}

func (d *CollisionData) HasMoreContacts() bool {
	return d.Remaining() > 0
}

// Free returns the writable window after the cursor, sized to Remaining.
func (d *CollisionData) Free() []Contact {
	return d.contacts[d.count:]
}

// Append commits n contacts written into Free. n is clamped to [0, Remaining]
// and the committed amount is returned.
func (d *CollisionData) Append(n int) int {
	if n < 0 {
		n = 0
	}
	if r := d.Remaining(); n > r {
		n = r
	}
	d.count += n
	return n
}

// Contacts returns the contacts committed this frame. The slice aliases the
// arena and is only valid until the next Reset.
func (d *CollisionData) Contacts() []Contact {
	return d.contacts[:d.count:d.count]
}
