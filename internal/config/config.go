package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dicedemo/internal/dice"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultPath is the config file location, relative to the process working directory.
const DefaultPath = "config/dicedemo.json"

// Pick modes
const (
	PickFirstHit   = "first"
	PickClosestHit = "closest"
)

var ErrInvalid = errors.New("config: invalid value")

// DieConfig describes one die in the starting layout.
type DieConfig struct {
	Kind     string     `json:"kind"`
	Position [3]float32 `json:"position"`
	HalfSize [3]float32 `json:"half_size"`
}

func (d DieConfig) StartPosition() rl.Vector3 {
	return rl.Vector3{X: d.Position[0], Y: d.Position[1], Z: d.Position[2]}
}

func (d DieConfig) HalfExtents() rl.Vector3 {
	return rl.Vector3{X: d.HalfSize[0], Y: d.HalfSize[1], Z: d.HalfSize[2]}
}

// Config holds everything the demo reads at startup.
type Config struct {
	WindowWidth  int32 `json:"window_width"`
	WindowHeight int32 `json:"window_height"`
	TargetFPS    int32 `json:"target_fps"`

	// Contact generation
	MaxContacts    int     `json:"max_contacts"`
	Friction       float32 `json:"friction"`
	Restitution    float32 `json:"restitution"`
	Tolerance      float32 `json:"tolerance"`
	RoundingFactor float32 `json:"rounding_factor"`

	// Stepping
	MaxStep            float32 `json:"max_step"`
	StartPaused        bool    `json:"start_paused"`
	ResolverIterations int     `json:"resolver_iterations"`

	PickMode string      `json:"pick_mode"`
	Dice     []DieConfig `json:"dice"`

	// Empty disables the websocket frame feed.
	TelemetryAddr string `json:"telemetry_addr,omitempty"`
}

// Default returns the stock demo: five box dice stacked diagonally, paused.
func Default() Config {
	c := Config{
		WindowWidth:        1280,
		WindowHeight:       720,
		TargetFPS:          60,
		MaxContacts:        256,
		Friction:           0.9,
		Restitution:        0.1,
		Tolerance:          0.1,
		RoundingFactor:     dice.DefaultRoundingFactor,
		MaxStep:            0.05,
		StartPaused:        true,
		ResolverIterations: 8,
		PickMode:           PickFirstHit,
	}
	for i := 0; i < 5; i++ {
		f := float32(i)
		c.Dice = append(c.Dice, DieConfig{
			Kind:     dice.KindBox.String(),
			Position: [3]float32{f, f*2 + 1, f},
			HalfSize: [3]float32{1, 1, 1},
		})
	}
	return c
}

// Load reads the config at path on top of Default. A missing file is not an
// error; a malformed or invalid one is.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), err
	}
	return c, nil
}

// Save writes c to path, creating the directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c Config) Validate() error {
	switch {
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.WindowWidth, c.WindowHeight)
	case c.MaxContacts < 0:
		return fmt.Errorf("%w: max_contacts %d", ErrInvalid, c.MaxContacts)
	case c.Friction < 0:
		return fmt.Errorf("%w: friction %f", ErrInvalid, c.Friction)
	case c.Restitution < 0 || c.Restitution > 1:
		return fmt.Errorf("%w: restitution %f", ErrInvalid, c.Restitution)
	case c.MaxStep <= 0:
		return fmt.Errorf("%w: max_step %f", ErrInvalid, c.MaxStep)
	case c.ResolverIterations < 1:
		return fmt.Errorf("%w: resolver_iterations %d", ErrInvalid, c.ResolverIterations)
	case c.PickMode != PickFirstHit && c.PickMode != PickClosestHit:
		return fmt.Errorf("%w: pick_mode %q", ErrInvalid, c.PickMode)
	}

	for i, d := range c.Dice {
		if _, err := dice.ParseKind(d.Kind); err != nil {
			return fmt.Errorf("%w: dice[%d]: %v", ErrInvalid, i, err)
		}
		h := d.HalfExtents()
		if h.X <= 0 || h.Y <= 0 || h.Z <= 0 {
			return fmt.Errorf("%w: dice[%d] half_size %v", ErrInvalid, i, d.HalfSize)
		}
	}
	return nil
}

// BuildDice creates the dice listed in the config, named by index.
func (c Config) BuildDice() ([]*dice.Die, error) {
	out := make([]*dice.Die, 0, len(c.Dice))
	for i, dc := range c.Dice {
		kind, err := dice.ParseKind(dc.Kind)
		if err != nil {
			return nil, err
		}
		d, err := dice.New(fmt.Sprintf("%s-%d", kind, i), kind, dc.StartPosition(), dc.HalfExtents(), c.RoundingFactor)
		if err != nil {
			return nil, fmt.Errorf("dice[%d]: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}
