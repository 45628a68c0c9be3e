package physics

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func approx(a, b float32) bool {
	return absf(a-b) < 1e-4
}

func approxVec(a, b rl.Vector3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}

func newBodyAt(pos rl.Vector3) *RigidBody {
	b := NewRigidBody()
	b.SetPosition(pos)
	b.SetMass(8)
	b.SetBlockInertia(rl.Vector3{X: 1, Y: 1, Z: 1}, 8)
	return b
}

func newUnitBox(pos rl.Vector3) Box {
	return Box{Body: newBodyAt(pos), HalfSize: rl.Vector3{X: 1, Y: 1, Z: 1}}
}

func TestBodyTransformsRoundTrip(t *testing.T) {
	b := newBodyAt(rl.Vector3{X: 1, Y: 2, Z: 3})
	b.SetOrientation(rl.QuaternionFromAxisAngle(rl.Vector3{Y: 1}, math.Pi/2))

	world := b.PointToWorld(rl.Vector3{X: 1})
	if !approxVec(world, rl.Vector3{X: 1, Y: 2, Z: 2}) {
		t.Errorf("Expected (1,2,2), got %v", world)
	}

	local := b.PointToLocal(world)
	if !approxVec(local, rl.Vector3{X: 1}) {
		t.Errorf("Expected local (1,0,0), got %v", local)
	}

	dir := b.DirectionToLocal(b.DirectionToWorld(rl.Vector3{Z: 1}))
	if !approxVec(dir, rl.Vector3{Z: 1}) {
		t.Errorf("Direction round trip failed, got %v", dir)
	}
}

func TestBodyIntegrateAppliesAcceleration(t *testing.T) {
	b := newBodyAt(rl.Vector3{Y: 10})
	b.Acceleration = rl.Vector3{Y: -10}

	b.Integrate(0.1)

	if !approx(b.Velocity.Y, -1) {
		t.Errorf("Expected velocity -1, got %f", b.Velocity.Y)
	}
	if !approx(b.Position().Y, 9.9) {
		t.Errorf("Expected y 9.9, got %f", b.Position().Y)
	}
}

func TestBodyIntegrateRotates(t *testing.T) {
	b := newBodyAt(rl.Vector3{})
	b.CanSleep = false
	b.Rotation = rl.Vector3{Y: math.Pi / 2}

	for i := 0; i < 100; i++ {
		b.Integrate(0.01)
	}

	// A quarter turn about Y maps +X onto -Z.
	x := b.DirectionToWorld(rl.Vector3{X: 1})
	if absf(x.X) > 0.01 || absf(x.Z+1) > 0.01 {
		t.Errorf("Expected +X to rotate to -Z, got %v", x)
	}
}

func TestBodyImmovableIgnoresIntegrate(t *testing.T) {
	b := NewRigidBody()
	b.SetMass(0)
	b.Acceleration = rl.Vector3{Y: -10}

	b.Integrate(1)

	if b.Position() != (rl.Vector3{}) {
		t.Errorf("Immovable body moved to %v", b.Position())
	}
	if b.HasFiniteMass() {
		t.Error("Body with zero mass should not have finite mass")
	}
}

func TestBodySleepsWhenSlow(t *testing.T) {
	b := newBodyAt(rl.Vector3{})
	b.Velocity = rl.Vector3{X: 0.1}

	for i := 0; i < 20; i++ {
		b.Integrate(0.05)
	}

	if b.Awake() {
		t.Error("Slow body should fall asleep")
	}
	if b.Velocity != (rl.Vector3{}) {
		t.Errorf("Sleeping body should have zero velocity, got %v", b.Velocity)
	}

	b.Wake()
	if !b.Awake() {
		t.Error("Wake should set the body awake")
	}
}

func TestBodyStaysAwakeWhenSleepDisabled(t *testing.T) {
	b := newBodyAt(rl.Vector3{})
	b.CanSleep = false

	for i := 0; i < 20; i++ {
		b.Integrate(0.05)
	}

	if !b.Awake() {
		t.Error("Body with CanSleep=false should stay awake")
	}
}
