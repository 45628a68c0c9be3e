package viewer

import (
	"fmt"

	"dicedemo/internal/sim"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelWidth  = 220
	panelHeight = 212
	panelMargin = 10
	rowHeight   = 24
)

var (
	colorPanel      = rl.NewColor(32, 32, 40, 220)
	colorPanelLine  = rl.NewColor(60, 60, 75, 255)
	colorText       = rl.NewColor(40, 40, 50, 255)
	colorTextLight  = rl.NewColor(220, 220, 230, 255)
	colorAccent     = rl.NewColor(108, 99, 255, 255)
	colorAccentSoft = rl.NewColor(108, 99, 255, 120)
)

func initStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(45, 45, 58, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccentSoft))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextLight))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(rl.White))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorPanelLine))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 14)
}

// panelBounds is the overlay's screen rectangle, anchored top right.
func panelBounds() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(rl.GetScreenWidth() - panelWidth - panelMargin),
		Y:      panelMargin,
		Width:  panelWidth,
		Height: panelHeight,
	}
}

func (v *Viewer) drawUI() {
	rl.DrawText("Mouse click to pick up the dice", 10, 10, 20, colorText)
	rl.DrawText("Right drag to orbit, wheel to zoom", 10, 35, 16, colorText)
	rl.DrawText("P pause  Space step  R reset  C contacts  D debug  W wireframe", 10, 55, 16, colorText)

	s := v.stats
	rl.DrawText(fmt.Sprintf("%s  %.0f fps", s.State, s.FPS), 10, 80, 16, colorText)
	rl.DrawText(fmt.Sprintf("Contacts: %d / %d", s.Contacts, s.Capacity), 10, 100, 16, colorText)

	v.drawPanel()
}

func (v *Viewer) drawPanel() {
	b := panelBounds()
	rl.DrawRectangleRec(b, colorPanel)
	rl.DrawRectangleLinesEx(b, 1, colorPanelLine)

	x := b.X + 12
	y := b.Y + 10
	row := func() rl.Rectangle {
		r := rl.Rectangle{X: x, Y: y, Width: b.Width - 24, Height: rowHeight - 6}
		y += rowHeight
		return r
	}
	check := func() rl.Rectangle {
		r := row()
		r.Width = r.Height
		return r
	}

	v.ShowContacts = gui.CheckBox(check(), "Contacts", v.ShowContacts)
	v.DebugDraw = gui.CheckBox(check(), "Debug", v.DebugDraw)
	v.Wireframe = gui.CheckBox(check(), "Wireframe", v.Wireframe)

	rl.DrawText("Friction", int32(x), int32(y), 14, colorTextLight)
	y += 18
	v.Sim.Friction = gui.Slider(row(), "", fmt.Sprintf("%.2f", v.Sim.Friction), v.Sim.Friction, 0, 2)

	label := "Pause"
	if v.Sim.Stepper.State() == sim.Paused {
		label = "Run"
	}
	if gui.Button(row(), label) {
		v.Sim.Stepper.Toggle()
	}
	if gui.Button(row(), "Step") {
		v.Sim.Stepper.Step()
	}
	if gui.Button(row(), "Reset") {
		v.Sim.Reset()
	}
}
