package dice

import (
	"errors"
	"fmt"

	"dicedemo/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MinRoundingFraction is the smallest rounding sphere radius allowed, as a
// fraction of the die's largest half extent.
const MinRoundingFraction = 0.75

// DefaultRoundingFactor scales the half-size diagonal into the rounding radius.
const DefaultRoundingFactor = 1.05

// Gravity is the constant acceleration applied to every die.
var Gravity = rl.Vector3{Y: -10}

var (
	ErrPairUnsupported  = errors.New("dice: pair test not supported")
	ErrInvalidSize      = errors.New("dice: half size must be positive")
	ErrRoundingTooSmall = errors.New("dice: rounding sphere too small")
)

// Die owns one body, the exact box attached to it and the rounding sphere used
// as an early-out before exact tests. Both shapes read their placement from Body.
type Die struct {
	Kind     Kind
	Name     string
	Body     *physics.RigidBody
	Box      physics.Box
	Rounding physics.Sphere

	Start rl.Vector3 // position restored by Reset
	Spin  rl.Vector3 // angular velocity restored by Reset
}

// New builds a die and puts it in its starting state.
func New(name string, kind Kind, start, halfSize rl.Vector3, roundingFactor float32) (*Die, error) {
	if CapabilitiesOf(kind).Init == nil {
		return nil, fmt.Errorf("dice: unsupported kind %v", kind)
	}
	if halfSize.X <= 0 || halfSize.Y <= 0 || halfSize.Z <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, halfSize)
	}

	radius := roundingFactor * rl.Vector3Length(halfSize)
	largest := max(halfSize.X, halfSize.Y, halfSize.Z)
	if radius < MinRoundingFraction*largest {
		return nil, fmt.Errorf("%w: radius %.3f for half extent %.3f", ErrRoundingTooSmall, radius, largest)
	}

	body := physics.NewRigidBody()
	d := &Die{
		Kind:     kind,
		Name:     name,
		Body:     body,
		Box:      physics.Box{Body: body, HalfSize: halfSize},
		Rounding: physics.Sphere{Body: body, Radius: radius},
		Start:    start,
	}
	if kind == KindBipyramid {
		d.Spin = rl.Vector3{X: 0.3, Y: 0.3, Z: 0.3}
	}
	d.Reset()
	return d, nil
}

func (d *Die) HalfSize() rl.Vector3 {
	return d.Box.HalfSize
}

// Reset restores the starting transform and velocities.
func (d *Die) Reset() {
	CapabilitiesOf(d.Kind).Init(d)
}

// Advance integrates the die forward by duration seconds.
func (d *Die) Advance(duration float32) {
	CapabilitiesOf(d.Kind).Advance(d, duration)
}

// CollidePlane writes contacts between the die and a half-space.
func (d *Die) CollidePlane(plane physics.Plane, data *physics.CollisionData) int {
	return CapabilitiesOf(d.Kind).PlaneTest(d, plane, data)
}

// CollideWith writes contacts between two dice. Pairs whose variants have no
// pair test, or mixed variants, return ErrPairUnsupported and write nothing.
func (d *Die) CollideWith(other *Die, data *physics.CollisionData) (int, error) {
	test := CapabilitiesOf(d.Kind).PairTest
	if test == nil || other.Kind != d.Kind {
		return 0, fmt.Errorf("%w: %v and %v", ErrPairUnsupported, d.Kind, other.Kind)
	}
	return test(d, other, data), nil
}

// Mesh returns the die's current world-space geometry for drawing.
func (d *Die) Mesh() Mesh {
	return CapabilitiesOf(d.Kind).Mesh(d)
}

func initBody(d *Die) {
	h := d.Box.HalfSize
	mass := h.X * h.Y * h.Z * 8

	b := d.Body
	b.SetPosition(d.Start)
	b.SetOrientation(rl.QuaternionIdentity())
	b.Velocity = rl.Vector3{}
	b.Rotation = d.Spin
	b.SetMass(mass)
	b.SetBlockInertia(h, mass)
	b.LinearDamping = 1
	b.AngularDamping = 1
	b.Acceleration = Gravity
	b.CanSleep = true
	b.Wake()
}

func integrate(d *Die, duration float32) {
	d.Body.Integrate(duration)
}
