package pick

import (
	"fmt"
	"strings"

	"dicedemo/internal/dice"
	"dicedemo/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mode chooses which die a ray selects when it crosses several.
type Mode int

const (
	// FirstHit takes the first die in list order that the ray hits.
	FirstHit Mode = iota
	// ClosestHit takes the die with the smallest hit distance.
	ClosestHit
)

// ParseMode accepts "first" and "closest".
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "first", "":
		return FirstHit, nil
	case "closest":
		return ClosestHit, nil
	}
	return FirstHit, fmt.Errorf("pick: unknown mode %q", name)
}

// Hit is a ray hit on a die. T is in multiples of the ray direction.
type Hit struct {
	Die   *dice.Die
	T     float32
	Point rl.Vector3
}

// Pick tests the ray against every die's box and returns the selected hit.
func Pick(ray physics.Ray, candidates []*dice.Die, mode Mode) (Hit, bool) {
	var best Hit
	found := false
	for _, d := range candidates {
		t, ok := castDie(ray, d)
		if !ok {
			continue
		}
		if mode == FirstHit {
			return Hit{Die: d, T: t, Point: ray.At(t)}, true
		}
		if !found || t < best.T {
			best = Hit{Die: d, T: t, Point: ray.At(t)}
			found = true
		}
	}
	return best, found
}

// castDie runs the slab test, skipping it when the rounding sphere already
// rules the die out. The sphere only bounds the box when its radius covers the
// half-size diagonal.
func castDie(ray physics.Ray, d *dice.Die) (float32, bool) {
	if d.Rounding.Radius >= rl.Vector3Length(d.Box.HalfSize) && !physics.RayHitsSphere(ray, d.Rounding) {
		return 0, false
	}
	return physics.IntersectRayBox(ray, d.Box)
}
