package sim

import "testing"

func TestStepperStartsPaused(t *testing.T) {
	s := NewStepper(0.05, true)
	if s.State() != Paused {
		t.Fatalf("Expected Paused, got %v", s.State())
	}
	if _, ok := s.Advance(0.016); ok {
		t.Error("Expected no advance while paused")
	}
}

func TestStepperSingleStepFromPaused(t *testing.T) {
	s := NewStepper(0.05, true)
	s.Step()

	d, ok := s.Advance(0.02)
	if !ok || d != 0.02 {
		t.Errorf("Expected one advance of 0.02, got %f %v", d, ok)
	}
	if s.State() != Paused {
		t.Errorf("Expected Paused after the step, got %v", s.State())
	}
	if s.StepPending() {
		t.Error("Expected the step to be consumed")
	}
	if _, ok := s.Advance(0.02); ok {
		t.Error("Expected no second advance")
	}
}

func TestStepperSingleStepWhileRunningPauses(t *testing.T) {
	s := NewStepper(0.05, false)
	s.Step()
	if _, ok := s.Advance(0.02); !ok {
		t.Error("Expected the step frame to advance")
	}
	if s.State() != Paused {
		t.Errorf("Expected Paused after a step, got %v", s.State())
	}
}

func TestStepperSkipsNonPositiveElapsed(t *testing.T) {
	s := NewStepper(0.05, false)
	for _, elapsed := range []float32{0, -0.1} {
		if _, ok := s.Advance(elapsed); ok {
			t.Errorf("Expected no advance for elapsed %f", elapsed)
		}
	}

	s = NewStepper(0.05, true)
	s.Step()
	s.Advance(0)
	if !s.StepPending() {
		t.Error("Expected a queued step to survive a zero-length frame")
	}
	if _, ok := s.Advance(0.01); !ok {
		t.Error("Expected the queued step to run on the next usable frame")
	}
}

func TestStepperClampsElapsed(t *testing.T) {
	s := NewStepper(0.05, false)
	d, ok := s.Advance(1)
	if !ok || d != 0.05 {
		t.Errorf("Expected clamp to 0.05, got %f %v", d, ok)
	}
}

func TestStepperToggle(t *testing.T) {
	s := NewStepper(0.05, true)
	s.Toggle()
	if s.State() != Running {
		t.Fatalf("Expected Running, got %v", s.State())
	}
	if _, ok := s.Advance(0.01); !ok {
		t.Error("Expected advance while running")
	}

	s.Step()
	s.Toggle()
	if s.StepPending() {
		t.Error("Expected Toggle to cancel a pending step")
	}
	if s.State() != Paused {
		t.Errorf("Expected Paused, got %v", s.State())
	}
}

func TestNewStepperDefaultsMaxStep(t *testing.T) {
	s := NewStepper(0, false)
	if s.MaxStep != DefaultMaxStep {
		t.Errorf("Expected MaxStep %f, got %f", DefaultMaxStep, s.MaxStep)
	}
}
