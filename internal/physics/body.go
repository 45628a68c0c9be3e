package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.3 // units/sec - below this, body might sleep
	SleepAngularThreshold  = 0.3 // rad/sec - below this, body might sleep
	SleepTimeThreshold     = 0.3 // seconds of low velocity before sleeping
)

// RigidBody is the minimal integrator the contact pipeline reads transforms from.
// Position and orientation are only changed through the setters, Integrate, and
// the resolver, so shapes attached to a body can re-derive placement at any time.
type RigidBody struct {
	position    rl.Vector3
	orientation rl.Quaternion

	Velocity     rl.Vector3 // units per second
	Rotation     rl.Vector3 // angular velocity, radians per second, world space
	Acceleration rl.Vector3 // constant acceleration (gravity)

	// Fraction of velocity kept after one second. 1 means no damping.
	LinearDamping  float32
	AngularDamping float32

	inverseMass    float32
	inverseInertia rl.Vector3 // diagonal of the local inverse inertia tensor

	CanSleep   bool
	awake      bool
	sleepTimer float32
}

func NewRigidBody() *RigidBody {
	return &RigidBody{
		orientation:    rl.QuaternionIdentity(),
		LinearDamping:  1,
		AngularDamping: 1,
		CanSleep:       true,
		awake:          true,
	}
}

func (b *RigidBody) Position() rl.Vector3 {
	return b.position
}

func (b *RigidBody) SetPosition(p rl.Vector3) {
	b.position = p
}

func (b *RigidBody) Orientation() rl.Quaternion {
	return b.orientation
}

// SetOrientation stores a normalized copy of q.
func (b *RigidBody) SetOrientation(q rl.Quaternion) {
	b.orientation = rl.QuaternionNormalize(q)
}

// SetMass sets the body mass. A non-positive mass makes the body immovable.
func (b *RigidBody) SetMass(mass float32) {
	if mass <= 0 {
		b.inverseMass = 0
		return
	}
	b.inverseMass = 1 / mass
}

func (b *RigidBody) InverseMass() float32 {
	return b.inverseMass
}

func (b *RigidBody) HasFiniteMass() bool {
	return b.inverseMass > 0
}

// SetBlockInertia sets the inertia tensor of a solid block with the given half extents.
func (b *RigidBody) SetBlockInertia(halfSize rl.Vector3, mass float32) {
	sq := rl.Vector3{X: halfSize.X * halfSize.X, Y: halfSize.Y * halfSize.Y, Z: halfSize.Z * halfSize.Z}
	inv := func(v float32) float32 {
		i := mass * v / 3
		if i <= 0 {
			return 0
		}
		return 1 / i
	}
	b.inverseInertia = rl.Vector3{X: inv(sq.Y + sq.Z), Y: inv(sq.X + sq.Z), Z: inv(sq.X + sq.Y)}
}

// PointToWorld maps a point in the body frame to world space.
func (b *RigidBody) PointToWorld(local rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(b.position, rl.Vector3RotateByQuaternion(local, b.orientation))
}

// PointToLocal maps a world point into the body frame.
func (b *RigidBody) PointToLocal(world rl.Vector3) rl.Vector3 {
	return rl.Vector3RotateByQuaternion(rl.Vector3Subtract(world, b.position), rl.QuaternionInvert(b.orientation))
}

// DirectionToWorld rotates a body-frame direction into world space, ignoring translation.
func (b *RigidBody) DirectionToWorld(local rl.Vector3) rl.Vector3 {
	return rl.Vector3RotateByQuaternion(local, b.orientation)
}

// DirectionToLocal rotates a world direction into the body frame, ignoring translation.
func (b *RigidBody) DirectionToLocal(world rl.Vector3) rl.Vector3 {
	return rl.Vector3RotateByQuaternion(world, rl.QuaternionInvert(b.orientation))
}

// applyInverseInertia multiplies a world-space vector by the world inverse inertia tensor.
func (b *RigidBody) applyInverseInertia(v rl.Vector3) rl.Vector3 {
	l := b.DirectionToLocal(v)
	l = rl.Vector3{X: l.X * b.inverseInertia.X, Y: l.Y * b.inverseInertia.Y, Z: l.Z * b.inverseInertia.Z}
	return b.DirectionToWorld(l)
}

// applyImpulse changes linear and angular velocity for an impulse applied at
// offset r from the center of mass.
func (b *RigidBody) applyImpulse(impulse, r rl.Vector3) {
	if b.inverseMass == 0 {
		return
	}
	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(impulse, b.inverseMass))
	b.Rotation = rl.Vector3Add(b.Rotation, b.applyInverseInertia(cross(r, impulse)))
}

// velocityAt returns the world velocity of a world-space point attached to the body.
func (b *RigidBody) velocityAt(point rl.Vector3) rl.Vector3 {
	r := rl.Vector3Subtract(point, b.position)
	return rl.Vector3Add(b.Velocity, cross(b.Rotation, r))
}

func (b *RigidBody) Awake() bool {
	return b.awake
}

// Wake forces the body out of sleep state
func (b *RigidBody) Wake() {
	b.awake = true
	b.sleepTimer = 0
}

// Sleep puts the body to rest and clears its velocities.
func (b *RigidBody) Sleep() {
	b.awake = false
	b.sleepTimer = 0
	b.Velocity = rl.Vector3{}
	b.Rotation = rl.Vector3{}
}

// Integrate advances the body by duration seconds using semi-implicit Euler.
// Sleeping or immovable bodies are left untouched.
func (b *RigidBody) Integrate(duration float32) {
	if !b.awake || b.inverseMass == 0 || duration <= 0 {
		return
	}

	b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(b.Acceleration, duration))
	b.Velocity = rl.Vector3Scale(b.Velocity, damping(b.LinearDamping, duration))
	b.Rotation = rl.Vector3Scale(b.Rotation, damping(b.AngularDamping, duration))

	b.position = rl.Vector3Add(b.position, rl.Vector3Scale(b.Velocity, duration))

	// q' = q + dt/2 * (0, w) * q
	spin := rl.QuaternionMultiply(rl.Quaternion{X: b.Rotation.X, Y: b.Rotation.Y, Z: b.Rotation.Z, W: 0}, b.orientation)
	half := duration * 0.5
	b.orientation = rl.QuaternionNormalize(rl.Quaternion{
		X: b.orientation.X + spin.X*half,
		Y: b.orientation.Y + spin.Y*half,
		Z: b.orientation.Z + spin.Z*half,
		W: b.orientation.W + spin.W*half,
	})

	b.trySleep(duration)
}

// trySleep puts the body to sleep after it stays slow for SleepTimeThreshold.
func (b *RigidBody) trySleep(duration float32) {
	if !b.CanSleep {
		return
	}

	speed := rl.Vector3Length(b.Velocity)
	angSpeed := rl.Vector3Length(b.Rotation)

	if speed < SleepVelocityThreshold && angSpeed < SleepAngularThreshold {
		b.sleepTimer += duration
		if b.sleepTimer >= SleepTimeThreshold {
			b.Sleep()
		}
	} else {
		b.sleepTimer = 0
	}
}

func damping(keep, duration float32) float32 {
	if keep >= 1 {
		return 1
	}
	if keep <= 0 {
		return 0
	}
	return float32(math.Pow(float64(keep), float64(duration)))
}
