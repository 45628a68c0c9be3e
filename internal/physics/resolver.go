package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Resolver consumes a frame's contacts. Implementations may move and
// accelerate the referenced bodies but must not keep the slice.
type Resolver interface {
	Resolve(contacts []Contact, duration float32)
}

// ImpulseResolver is a sequential impulse solver: a few velocity passes over
// all contacts, then one linear projection pass to remove penetration.
type ImpulseResolver struct {
	Iterations int
	Slop       float32 // penetration left in place to keep resting contacts stable
	Correction float32 // fraction of remaining penetration removed per frame

	// Contacts slower than this don't bounce.
	RestitutionThreshold float32
}

func NewImpulseResolver(iterations int) *ImpulseResolver {
	if iterations < 1 {
		iterations = 1
	}
	return &ImpulseResolver{
		Iterations:           iterations,
		Slop:                 0.01,
		Correction:           0.2,
		RestitutionThreshold: 2 * SleepVelocityThreshold,
	}
}

func (r *ImpulseResolver) Resolve(contacts []Contact, duration float32) {
	if len(contacts) == 0 || duration <= 0 {
		return
	}

	for i := range contacts {
		wakeIfDisturbed(&contacts[i])
	}
	for iter := 0; iter < r.Iterations; iter++ {
		for i := range contacts {
			r.resolveVelocity(&contacts[i])
		}
	}
	for i := range contacts {
		r.resolvePenetration(&contacts[i])
	}
}

// wakeIfDisturbed wakes a sleeping body when the other side of the contact is
// moving into it or the contact is deep.
func wakeIfDisturbed(c *Contact) {
	a, b := c.Bodies[0], c.Bodies[1]
	if b == nil {
		if !a.Awake() && c.Penetration > 0.1 {
			a.Wake()
		}
		return
	}
	if a.Awake() == b.Awake() {
		return
	}
	rel := rl.Vector3Subtract(a.velocityAt(c.Point), b.velocityAt(c.Point))
	if rl.Vector3Length(rel) > SleepVelocityThreshold*2 || c.Penetration > 0.1 {
		a.Wake()
		b.Wake()
	}
}

func (r *ImpulseResolver) resolveVelocity(c *Contact) {
	a, b := c.Bodies[0], c.Bodies[1]
	if !a.Awake() && (b == nil || !b.Awake()) {
		return
	}

	rA := rl.Vector3Subtract(c.Point, a.Position())
	var rB rl.Vector3
	relVel := a.velocityAt(c.Point)
	if b != nil {
		rB = rl.Vector3Subtract(c.Point, b.Position())
		relVel = rl.Vector3Subtract(relVel, b.velocityAt(c.Point))
	}

	velAlongNormal := rl.Vector3DotProduct(relVel, c.Normal)
	// Only resolve if the bodies are moving toward each other
	if velAlongNormal > 0 {
		return
	}

	denom := effectiveInverseMass(a, rA, c.Normal)
	if b != nil {
		denom += effectiveInverseMass(b, rB, c.Normal)
	}
	if denom <= 0 {
		return
	}

	e := c.Restitution
	if -velAlongNormal < r.RestitutionThreshold {
		e = 0
	}
	j := -(1 + e) * velAlongNormal / denom
	applyPair(a, b, rl.Vector3Scale(c.Normal, j), rA, rB)

	// Coulomb friction against what is left of the tangential velocity.
	relVel = a.velocityAt(c.Point)
	if b != nil {
		relVel = rl.Vector3Subtract(relVel, b.velocityAt(c.Point))
	}
	tangent := rl.Vector3Subtract(relVel, rl.Vector3Scale(c.Normal, rl.Vector3DotProduct(relVel, c.Normal)))
	speed := rl.Vector3Length(tangent)
	if speed < 1e-6 {
		return
	}
	tangent = rl.Vector3Scale(tangent, 1/speed)

	denomT := effectiveInverseMass(a, rA, tangent)
	if b != nil {
		denomT += effectiveInverseMass(b, rB, tangent)
	}
	if denomT <= 0 {
		return
	}
	jt := clampf(-speed/denomT, -c.Friction*j, c.Friction*j)
	applyPair(a, b, rl.Vector3Scale(tangent, jt), rA, rB)
}

// resolvePenetration moves the bodies apart along the normal, split by inverse mass.
func (r *ImpulseResolver) resolvePenetration(c *Contact) {
	depth := c.Penetration - r.Slop
	if depth <= 0 {
		return
	}
	a, b := c.Bodies[0], c.Bodies[1]

	total := a.InverseMass()
	if b != nil {
		total += b.InverseMass()
	}
	if total <= 0 {
		return
	}

	move := depth * r.Correction / total
	a.SetPosition(rl.Vector3Add(a.Position(), rl.Vector3Scale(c.Normal, move*a.InverseMass())))
	if b != nil {
		b.SetPosition(rl.Vector3Subtract(b.Position(), rl.Vector3Scale(c.Normal, move*b.InverseMass())))
	}
}

// effectiveInverseMass is the inverse mass a unit impulse along dir sees at offset r.
func effectiveInverseMass(body *RigidBody, r, dir rl.Vector3) float32 {
	if !body.HasFiniteMass() {
		return 0
	}
	angular := cross(body.applyInverseInertia(cross(r, dir)), r)
	return body.InverseMass() + rl.Vector3DotProduct(angular, dir)
}

func applyPair(a, b *RigidBody, impulse, rA, rB rl.Vector3) {
	a.applyImpulse(impulse, rA)
	if b != nil {
		b.applyImpulse(rl.Vector3Negate(impulse), rB)
	}
}
