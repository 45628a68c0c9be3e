package viewer

import (
	"dicedemo/internal/dice"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	scaleRings  = 20
	shadowAlpha = 0.1
	shadowLift  = 0.01
)

var (
	colorBackground = rl.NewColor(230, 230, 235, 255)
	colorScale      = rl.NewColor(190, 190, 200, 255)
	colorBox        = rl.NewColor(205, 65, 60, 255)
	colorBipyramid  = rl.NewColor(60, 110, 200, 255)
	colorGrabbed    = rl.NewColor(240, 170, 40, 255)
	colorEdge       = rl.NewColor(30, 30, 35, 255)

	// Contact normals: two-body contacts green, world contacts red.
	colorPairContact  = rl.Green
	colorWorldContact = rl.Red

	lightDir = rl.Vector3Normalize(rl.Vector3{X: -0.4, Y: 1, Z: 0.3})
)

func (v *Viewer) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	rl.BeginMode3D(v.Camera.GetRaylibCamera())
	drawScale()
	v.drawShadows()
	v.drawDice()
	if v.ShowContacts {
		v.drawContacts()
	}
	v.drawDrag()
	rl.EndMode3D()

	v.drawUI()
	rl.EndDrawing()
}

// drawScale draws rings every unit on the ground and the two ground axes.
func drawScale() {
	for r := 1; r < scaleRings; r++ {
		rl.DrawCircle3D(rl.Vector3{}, float32(r), rl.Vector3{X: 1}, 90, colorScale)
	}
	rl.DrawLine3D(rl.Vector3{X: -scaleRings}, rl.Vector3{X: scaleRings}, colorScale)
	rl.DrawLine3D(rl.Vector3{Z: -scaleRings}, rl.Vector3{Z: scaleRings}, colorScale)
}

func (v *Viewer) drawShadows() {
	shadow := rl.Fade(rl.Black, shadowAlpha)
	for _, d := range v.Sim.Dice {
		for _, f := range d.Mesh().Flatten(shadowLift).Faces {
			rl.DrawTriangle3D(f[0], f[1], f[2], shadow)
		}
	}
}

func (v *Viewer) drawDice() {
	grabbed := v.Sim.Drag.Die()
	for _, d := range v.Sim.Dice {
		mesh := d.Mesh()

		if !v.Wireframe {
			base := dieColor(d, d == grabbed)
			for _, f := range mesh.Faces {
				rl.DrawTriangle3D(f[0], f[1], f[2], shade(base, f))
			}
		}

		edge := colorEdge
		if v.DebugDraw {
			edge = rl.Red
		}
		for _, e := range mesh.Edges {
			rl.DrawLine3D(e.From, e.To, edge)
		}

		if v.DebugDraw {
			rl.DrawSphereWires(d.Rounding.Center(), d.Rounding.Radius, 8, 12, rl.Fade(rl.DarkGray, 0.4))
		}
	}
}

func dieColor(d *dice.Die, grabbed bool) rl.Color {
	c := colorBox
	if d.Kind == dice.KindBipyramid {
		c = colorBipyramid
	}
	if grabbed {
		c = colorGrabbed
	}
	if !d.Body.Awake() {
		c = rl.ColorBrightness(c, -0.3)
	}
	return c
}

// shade applies a fixed directional light to a face.
func shade(c rl.Color, f dice.Triangle) rl.Color {
	n := rl.Vector3Normalize(rl.Vector3CrossProduct(rl.Vector3Subtract(f[1], f[0]), rl.Vector3Subtract(f[2], f[0])))
	k := 0.55 + 0.45*max(rl.Vector3DotProduct(n, lightDir), 0)
	return rl.NewColor(uint8(float32(c.R)*k), uint8(float32(c.G)*k), uint8(float32(c.B)*k), c.A)
}

// drawContacts draws each contact of the current poses as a unit line along its normal.
func (v *Viewer) drawContacts() {
	for _, c := range v.Sim.GenerateContacts() {
		col := colorWorldContact
		if c.Bodies[1] != nil {
			col = colorPairContact
		}
		rl.DrawLine3D(c.Point, rl.Vector3Add(c.Point, c.Normal), col)
	}
}

func (v *Viewer) drawDrag() {
	if !v.Sim.Drag.Active() {
		return
	}
	j := v.Sim.Drag.Joint()
	rl.DrawLine3D(j.Anchor(), j.Target, colorGrabbed)
	rl.DrawSphere(j.Target, 0.1, colorGrabbed)
}
