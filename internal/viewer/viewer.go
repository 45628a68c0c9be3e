package viewer

import (
	"log"
	"time"

	"dicedemo/internal/camera"
	"dicedemo/internal/config"
	"dicedemo/internal/physics"
	"dicedemo/internal/pick"
	"dicedemo/internal/sim"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Viewer is the window around a simulation: input, camera, drawing and overlay.
type Viewer struct {
	Sim    *sim.Simulation
	Camera *camera.OrbitCamera
	Config config.Config

	ShowContacts bool
	DebugDraw    bool
	Wireframe    bool

	timing sim.Timing
	stats  sim.FrameStats

	pickFailed bool
}

func New(cfg config.Config, s *sim.Simulation) *Viewer {
	return &Viewer{
		Sim:    s,
		Camera: camera.New(rl.Vector3{Y: 5}),
		Config: cfg,
	}
}

// Run opens the window and loops until it is closed.
func (v *Viewer) Run() {
	rl.InitWindow(v.Config.WindowWidth, v.Config.WindowHeight, "Dice Demo")
	defer rl.CloseWindow()

	rl.SetTargetFPS(v.Config.TargetFPS)
	initStyle()

	v.timing.Init(time.Now())
	defer v.timing.Teardown()

	for !rl.WindowShouldClose() {
		v.Update()
		v.Draw()
	}
}

func (v *Viewer) Update() {
	overPanel := rl.CheckCollisionPointRec(rl.GetMousePosition(), panelBounds())
	if !overPanel {
		v.Camera.Update()
	}
	v.handleMouse(overPanel)
	v.handleKeys()

	v.timing.Update(time.Now())
	v.stats = v.Sim.Update(v.timing)
}

func (v *Viewer) handleKeys() {
	if rl.IsKeyPressed(rl.KeyP) {
		v.Sim.Stepper.Toggle()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		v.Sim.Stepper.Step()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		v.Sim.Reset()
	}
	if rl.IsKeyPressed(rl.KeyC) {
		v.ShowContacts = !v.ShowContacts
	}
	if rl.IsKeyPressed(rl.KeyD) {
		v.DebugDraw = !v.DebugDraw
	}
	if rl.IsKeyPressed(rl.KeyW) {
		v.Wireframe = !v.Wireframe
	}
}

// handleMouse runs the pick and drag cycle on the left button. Presses over
// the overlay panel belong to the widgets.
func (v *Viewer) handleMouse(overPanel bool) {
	drag := v.Sim.Drag
	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton) && !overPanel:
		if ray, ok := v.mouseRay(); ok {
			drag.Begin(ray, v.Sim.Dice)
		}
	case rl.IsMouseButtonDown(rl.MouseLeftButton) && drag.Active():
		if ray, ok := v.mouseRay(); ok {
			drag.Move(ray)
		}
	case rl.IsMouseButtonReleased(rl.MouseLeftButton):
		drag.Release()
	}
}

// mouseRay builds the pick ray under the cursor. Unprojection failures count
// as a miss and are logged once.
func (v *Viewer) mouseRay() (physics.Ray, bool) {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	view, proj := v.Camera.Matrices(float32(w) / float32(h))

	r, err := pick.ScreenRay(rl.GetMousePosition(), view, proj, pick.Viewport{Width: w, Height: h})
	if err != nil {
		if !v.pickFailed {
			log.Printf("Viewer: pick ray: %v", err)
			v.pickFailed = true
		}
		return physics.Ray{}, false
	}
	return r, true
}
