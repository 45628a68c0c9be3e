package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pitch limits in degrees.
const (
	MinPhi = -20.0
	MaxPhi = 80.0
)

// Clip planes used for both drawing and picking.
const (
	Near = 0.01
	Far  = 1000.0
)

// OrbitCamera circles a target point. Theta is the yaw around +Y and Phi the
// elevation above the ground plane, both in degrees.
type OrbitCamera struct {
	Target   rl.Vector3
	Distance float32
	Theta    float32
	Phi      float32
	Fovy     float32

	LookSpeed float32 // degrees per pixel of drag
	ZoomSpeed float32 // units per wheel notch

	MinDistance float32
	MaxDistance float32
}

func New(target rl.Vector3) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		Distance:    25.7,
		Theta:       0,
		Phi:         15,
		Fovy:        45,
		LookSpeed:   0.25,
		ZoomSpeed:   1.5,
		MinDistance: 5,
		MaxDistance: 100,
	}
}

// Update applies right-button drag and the mouse wheel.
func (c *OrbitCamera) Update() {
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		c.Orbit(delta.X, delta.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(wheel)
	}
}

// Orbit turns the camera by a pointer delta in pixels. Phi stays within [MinPhi, MaxPhi].
func (c *OrbitCamera) Orbit(dx, dy float32) {
	c.Theta += dx * c.LookSpeed
	c.Phi += dy * c.LookSpeed

	if c.Phi < MinPhi {
		c.Phi = MinPhi
	} else if c.Phi > MaxPhi {
		c.Phi = MaxPhi
	}
}

func (c *OrbitCamera) Zoom(wheel float32) {
	c.Distance -= wheel * c.ZoomSpeed
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	} else if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Position is the eye point. At theta 0 the camera looks down +X.
func (c *OrbitCamera) Position() rl.Vector3 {
	theta := float64(c.Theta) * math.Pi / 180
	phi := float64(c.Phi) * math.Pi / 180
	d := float64(c.Distance)

	return rl.Vector3{
		X: c.Target.X - float32(d*math.Cos(phi)*math.Cos(theta)),
		Y: c.Target.Y + float32(d*math.Sin(phi)),
		Z: c.Target.Z - float32(d*math.Cos(phi)*math.Sin(theta)),
	}
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// Matrices returns the view and projection matrices raylib draws with for the
// given aspect ratio.
func (c *OrbitCamera) Matrices(aspect float32) (view, proj rl.Matrix) {
	view = rl.MatrixLookAt(c.Position(), c.Target, rl.Vector3{Y: 1})
	proj = rl.MatrixPerspective(c.Fovy*rl.Deg2rad, aspect, Near, Far)
	return view, proj
}
