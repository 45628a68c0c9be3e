package sim

import (
	"testing"

	"dicedemo/internal/config"
	"dicedemo/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func testConfig(dice ...config.DieConfig) config.Config {
	cfg := config.Default()
	cfg.Dice = dice
	return cfg
}

func box(x, y, z float32) config.DieConfig {
	return config.DieConfig{Kind: "box", Position: [3]float32{x, y, z}, HalfSize: [3]float32{1, 1, 1}}
}

func bipyramid(x, y, z float32) config.DieConfig {
	return config.DieConfig{Kind: "bipyramid", Position: [3]float32{x, y, z}, HalfSize: [3]float32{1, 1, 1}}
}

func mustSim(t *testing.T, cfg config.Config) *Simulation {
	t.Helper()
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func frame(n uint64, d float32) Timing {
	return Timing{FrameNumber: n, LastDuration: d}
}

func TestNewFromDefaults(t *testing.T) {
	s := mustSim(t, config.Default())
	if len(s.Dice) != 5 {
		t.Errorf("Expected 5 dice, got %d", len(s.Dice))
	}
	if s.Stepper.State() != Paused {
		t.Errorf("Expected to start paused, got %v", s.Stepper.State())
	}
	if s.Data.Capacity() != 256 {
		t.Errorf("Expected capacity 256, got %d", s.Data.Capacity())
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig(config.DieConfig{Kind: "box", HalfSize: [3]float32{0, 1, 1}})
	if _, err := New(cfg); err == nil {
		t.Error("Expected an error for a zero half size")
	}
	cfg = testConfig(box(0, 5, 0))
	cfg.PickMode = "random"
	if _, err := New(cfg); err == nil {
		t.Error("Expected an error for an unknown pick mode")
	}
}

func TestUpdatePausedDoesNotMove(t *testing.T) {
	s := mustSim(t, testConfig(box(0, 10, 0)))
	before := s.Dice[0].Body.Position()

	stats := s.Update(frame(1, 0.02))
	if stats.Advanced {
		t.Error("Expected no advance while paused")
	}
	if s.Dice[0].Body.Position() != before {
		t.Error("Expected the die not to move while paused")
	}
}

func TestUpdateSingleStep(t *testing.T) {
	s := mustSim(t, testConfig(box(0, 10, 0)))
	start := s.Dice[0].Body.Position()

	s.Stepper.Step()
	stats := s.Update(frame(1, 0.02))
	if !stats.Advanced || stats.Duration != 0.02 {
		t.Errorf("Expected one advance of 0.02, got %+v", stats)
	}
	moved := s.Dice[0].Body.Position()
	if moved.Y >= start.Y {
		t.Errorf("Expected the die to fall, got y %f", moved.Y)
	}
	if stats.State != "paused" {
		t.Errorf("Expected paused after a step, got %s", stats.State)
	}

	s.Update(frame(2, 0.02))
	if s.Dice[0].Body.Position() != moved {
		t.Error("Expected no movement after the single step")
	}
}

func TestDragContributesOnlyWhileActive(t *testing.T) {
	s := mustSim(t, testConfig(box(0, 10, 0)))

	if n := len(s.GenerateContacts()); n != 0 {
		t.Fatalf("Expected no contacts for a die in the air, got %d", n)
	}

	ray := physics.Ray{Origin: rl.Vector3{Y: 10, Z: -10}, Direction: rl.Vector3{Z: 1}}
	if !s.Drag.Begin(ray, s.Dice) {
		t.Fatal("Expected to grab the die")
	}
	contacts := s.GenerateContacts()
	if len(contacts) != 1 {
		t.Fatalf("Expected 1 drag contact, got %d", len(contacts))
	}
	if contacts[0].Bodies[0] != s.Dice[0].Body {
		t.Error("Expected the drag contact on the grabbed body")
	}

	s.Drag.Release()
	if n := len(s.GenerateContacts()); n != 0 {
		t.Errorf("Expected no contacts after release, got %d", n)
	}
}

func TestDragContactComesFirst(t *testing.T) {
	s := mustSim(t, testConfig(box(0, 0.5, 0)))
	ray := physics.Ray{Origin: rl.Vector3{Y: 0.5, Z: -10}, Direction: rl.Vector3{Z: 1}}
	s.Drag.Begin(ray, s.Dice)

	s.MaxContacts = 1
	contacts := s.GenerateContacts()
	if len(contacts) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(contacts))
	}
	if contacts[0].Friction != 1 || contacts[0].Restitution != 0 {
		t.Errorf("Expected the joint contact to take the only slot, got %+v", contacts[0])
	}
}

func TestContactBudgetBound(t *testing.T) {
	var dice []config.DieConfig
	for i := 0; i < 10; i++ {
		dice = append(dice, box(float32(i)*1.5, 0.5, 0))
	}
	s := mustSim(t, testConfig(dice...))

	for capacity := 0; capacity <= 60; capacity++ {
		s.MaxContacts = capacity
		n := len(s.GenerateContacts())
		if n > capacity {
			t.Errorf("Expected at most %d contacts, got %d", capacity, n)
		}
		if capacity <= 40 && n != capacity {
			t.Errorf("Expected ground contacts to fill all %d slots, got %d", capacity, n)
		}
	}
}

func TestContactsUseMaterial(t *testing.T) {
	s := mustSim(t, testConfig(box(0, 0.5, 0)))
	s.Friction = 0.4
	s.Restitution = 0.3
	for _, c := range s.GenerateContacts() {
		if c.Friction != 0.4 || c.Restitution != 0.3 {
			t.Errorf("Expected friction 0.4 and restitution 0.3, got %f %f", c.Friction, c.Restitution)
		}
	}
	if s.Data.Tolerance != s.Tolerance {
		t.Errorf("Expected tolerance %f, got %f", s.Tolerance, s.Data.Tolerance)
	}
}

func TestBipyramidPairsAreSkipped(t *testing.T) {
	s := mustSim(t, testConfig(bipyramid(0, 0.25, 0), bipyramid(0.5, 0.25, 0), box(0.5, 0.9, 0)))
	contacts := s.GenerateContacts()

	// Each bipyramid rests one apex below ground; the box touches the ground too.
	for _, c := range contacts {
		if c.Bodies[1] != nil {
			t.Errorf("Expected only world contacts, got a pair contact at %v", c.Point)
		}
	}
	if len(s.skipped) != 2 {
		t.Errorf("Expected bipyramid/bipyramid and box/bipyramid to be recorded, got %v", s.skipped)
	}
}

func TestResetRestoresDiceAndReleasesDrag(t *testing.T) {
	s := mustSim(t, testConfig(box(0, 10, 0), box(5, 3, 0)))
	resets := 0
	s.OnReset.AddListener(func() { resets++ })

	ray := physics.Ray{Origin: rl.Vector3{Y: 10, Z: -10}, Direction: rl.Vector3{Z: 1}}
	s.Drag.Begin(ray, s.Dice)
	s.Stepper.Toggle()
	for i := uint64(1); i <= 20; i++ {
		s.Update(frame(i, 0.02))
	}

	s.Reset()
	if s.Drag.Active() {
		t.Error("Expected reset to release the drag")
	}
	for _, d := range s.Dice {
		if d.Body.Position() != d.Start {
			t.Errorf("Expected %s back at %v, got %v", d.Name, d.Start, d.Body.Position())
		}
		if d.Body.Velocity != (rl.Vector3{}) {
			t.Errorf("Expected %s at rest, got %v", d.Name, d.Body.Velocity)
		}
	}
	if resets != 1 {
		t.Errorf("Expected OnReset once, got %d", resets)
	}
}

func TestUpdatePublishesFrameStats(t *testing.T) {
	s := mustSim(t, testConfig(box(0, 0.5, 0)))
	var got []FrameStats
	s.OnFrame.AddListener(func(fs FrameStats) { got = append(got, fs) })

	s.Stepper.Toggle()
	s.Update(Timing{FrameNumber: 7, LastDuration: 0.01, FPS: 100})

	if len(got) != 1 {
		t.Fatalf("Expected 1 frame event, got %d", len(got))
	}
	fs := got[0]
	if fs.Frame != 7 || fs.FPS != 100 || fs.State != "running" {
		t.Errorf("Unexpected frame stats %+v", fs)
	}
	if fs.Contacts == 0 || fs.Capacity != 256 {
		t.Errorf("Expected ground contacts within capacity 256, got %d/%d", fs.Contacts, fs.Capacity)
	}
	if len(fs.Dice) != 1 || fs.Dice[0].Kind != "box" {
		t.Errorf("Expected one box die in stats, got %+v", fs.Dice)
	}
}
