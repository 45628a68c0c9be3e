package sim

import (
	"errors"
	"fmt"
	"log"

	"dicedemo/internal/config"
	"dicedemo/internal/dice"
	"dicedemo/internal/physics"
	"dicedemo/internal/pick"
)

// DieState is a die's pose as reported to frame listeners.
type DieState struct {
	Name     string     `json:"name"`
	Kind     string     `json:"kind"`
	Position [3]float32 `json:"position"`
	Awake    bool       `json:"awake"`
}

// FrameStats summarizes one frame. It is a copy and safe to hand to other goroutines.
type FrameStats struct {
	Frame           uint64     `json:"frame"`
	Advanced        bool       `json:"advanced"`
	Duration        float32    `json:"duration"`
	AverageDuration float32    `json:"average_duration"`
	FPS             float32    `json:"fps"`
	State           string     `json:"state"`
	Contacts        int        `json:"contacts"`
	Capacity        int        `json:"capacity"`
	Dragging        bool       `json:"dragging"`
	Dice            []DieState `json:"dice"`
}

// Simulation owns the dice and runs the per-frame pipeline: advance, gather
// contacts, resolve.
type Simulation struct {
	Dice     []*dice.Die
	Stepper  *Stepper
	Drag     *pick.Drag
	Resolver physics.Resolver
	Ground   physics.Plane
	Data     *physics.CollisionData

	MaxContacts int
	Friction    float32
	Restitution float32
	Tolerance   float32

	OnFrame EventWithArg[FrameStats]
	OnReset Event

	grid    *physics.Grid
	spheres []physics.Sphere
	skipped map[[2]dice.Kind]bool
}

// New builds a simulation from cfg.
func New(cfg config.Config) (*Simulation, error) {
	dd, err := cfg.BuildDice()
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	mode, err := pick.ParseMode(cfg.PickMode)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s := &Simulation{
		Dice:        dd,
		Stepper:     NewStepper(cfg.MaxStep, cfg.StartPaused),
		Drag:        pick.NewDrag(mode),
		Resolver:    physics.NewImpulseResolver(cfg.ResolverIterations),
		Ground:      physics.Ground,
		Data:        physics.NewCollisionData(cfg.MaxContacts),
		MaxContacts: cfg.MaxContacts,
		Friction:    cfg.Friction,
		Restitution: cfg.Restitution,
		Tolerance:   cfg.Tolerance,
		grid:        physics.NewGrid(),
		skipped:     make(map[[2]dice.Kind]bool),
	}
	return s, nil
}

// Update runs one frame with the given clock and notifies OnFrame.
func (s *Simulation) Update(t Timing) FrameStats {
	duration, advance := s.Stepper.Advance(t.LastDuration)
	if advance {
		s.step(duration)
	}

	stats := s.stats(t, advance, duration)
	s.OnFrame.Invoke(stats)
	return stats
}

func (s *Simulation) step(duration float32) {
	for _, d := range s.Dice {
		d.Advance(duration)
	}
	s.GenerateContacts()
	s.Resolver.Resolve(s.Data.Contacts(), duration)
}

// GenerateContacts refills Data for the current poses: the drag joint first,
// then every die against the ground, then every candidate die pair. Contacts
// past MaxContacts are dropped.
func (s *Simulation) GenerateContacts() []physics.Contact {
	s.Data.Friction = s.Friction
	s.Data.Restitution = s.Restitution
	s.Data.Tolerance = s.Tolerance
	s.Data.Reset(s.MaxContacts)

	s.Drag.AddContact(s.Data)

	for _, d := range s.Dice {
		if !s.Data.HasMoreContacts() {
			return s.Data.Contacts()
		}
		d.CollidePlane(s.Ground, s.Data)
	}

	s.spheres = s.spheres[:0]
	for _, d := range s.Dice {
		s.spheres = append(s.spheres, d.Rounding)
	}
	for _, p := range s.grid.Pairs(s.spheres) {
		if !s.Data.HasMoreContacts() {
			break
		}
		a, b := s.Dice[p.A], s.Dice[p.B]
		if _, err := a.CollideWith(b, s.Data); err != nil {
			s.logSkipped(a.Kind, b.Kind, err)
		}
	}
	return s.Data.Contacts()
}

func (s *Simulation) logSkipped(a, b dice.Kind, err error) {
	if !errors.Is(err, dice.ErrPairUnsupported) {
		log.Printf("Dice: pair test failed: %v", err)
		return
	}
	if a > b {
		a, b = b, a
	}
	key := [2]dice.Kind{a, b}
	if s.skipped[key] {
		return
	}
	s.skipped[key] = true
	log.Printf("Dice: skipping %v/%v pairs: %v", a, b, err)
}

// Reset puts every die back at its start and drops any drag.
func (s *Simulation) Reset() {
	s.Drag.Release()
	for _, d := range s.Dice {
		d.Reset()
	}
	s.Data.Reset(s.MaxContacts)
	log.Printf("Simulation: reset %d dice", len(s.Dice))
	s.OnReset.Invoke()
}

func (s *Simulation) stats(t Timing, advanced bool, duration float32) FrameStats {
	fs := FrameStats{
		Frame:           t.FrameNumber,
		Advanced:        advanced,
		Duration:        duration,
		AverageDuration: t.AverageDuration,
		FPS:             t.FPS,
		State:           s.Stepper.State().String(),
		Contacts:        s.Data.Count(),
		Capacity:        s.Data.Capacity(),
		Dragging:        s.Drag.Active(),
		Dice:            make([]DieState, len(s.Dice)),
	}
	for i, d := range s.Dice {
		p := d.Body.Position()
		fs.Dice[i] = DieState{
			Name:     d.Name,
			Kind:     d.Kind.String(),
			Position: [3]float32{p.X, p.Y, p.Z},
			Awake:    d.Body.Awake(),
		}
	}
	return fs
}
