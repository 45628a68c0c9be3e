package sim

// State is whether the simulation advances on its own.
type State int

const (
	Paused State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "paused"
}

// DefaultMaxStep is the longest duration a single frame may advance.
const DefaultMaxStep = 0.05

// Stepper decides, frame by frame, whether and by how much the world moves.
// A pending single step runs on the next frame with a usable duration and then
// leaves the stepper paused.
type Stepper struct {
	state    State
	stepOnce bool
	MaxStep  float32
}

func NewStepper(maxStep float32, startPaused bool) *Stepper {
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	s := &Stepper{MaxStep: maxStep, state: Running}
	if startPaused {
		s.state = Paused
	}
	return s
}

func (s *Stepper) State() State {
	return s.state
}

// StepPending reports whether a single step is queued.
func (s *Stepper) StepPending() bool {
	return s.stepOnce
}

// Toggle flips between paused and running. It cancels a pending single step.
func (s *Stepper) Toggle() {
	s.stepOnce = false
	if s.state == Paused {
		s.state = Running
	} else {
		s.state = Paused
	}
}

// Step queues exactly one advance. The frame that consumes it pauses the stepper.
func (s *Stepper) Step() {
	s.stepOnce = true
}

// Advance returns the duration to simulate for a frame that took elapsed
// seconds, and whether to simulate at all. Non-positive elapsed never advances
// and keeps a queued step for the next frame.
func (s *Stepper) Advance(elapsed float32) (float32, bool) {
	if elapsed <= 0 {
		return 0, false
	}
	if elapsed > s.MaxStep {
		elapsed = s.MaxStep
	}

	if s.stepOnce {
		s.stepOnce = false
		s.state = Paused
		return elapsed, true
	}
	if s.state == Paused {
		return 0, false
	}
	return elapsed, true
}
