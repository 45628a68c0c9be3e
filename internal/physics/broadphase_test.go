package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestGridPairsNeighbours(t *testing.T) {
	spheres := []Sphere{
		{Body: newBodyAt(rl.Vector3{X: 0}), Radius: 1},
		{Body: newBodyAt(rl.Vector3{X: 1.5}), Radius: 1},
		{Body: newBodyAt(rl.Vector3{X: 40}), Radius: 1},
		{Body: newBodyAt(rl.Vector3{X: -1.5}), Radius: 1},
	}

	pairs := NewGrid().Pairs(spheres)

	want := []Pair{{A: 0, B: 1}, {A: 0, B: 3}}
	if len(pairs) != len(want) {
		t.Fatalf("Expected %d pairs, got %d: %v", len(want), len(pairs), pairs)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("Pair %d: expected %v, got %v", i, want[i], pairs[i])
		}
	}
}

func TestGridGrowsCellsForLargeSpheres(t *testing.T) {
	spheres := []Sphere{
		{Body: newBodyAt(rl.Vector3{X: 0}), Radius: 6},
		{Body: newBodyAt(rl.Vector3{X: 11}), Radius: 6},
	}

	pairs := NewGrid().Pairs(spheres)
	if len(pairs) != 1 {
		t.Errorf("Expected large spheres 11 apart to pair, got %v", pairs)
	}
}

func TestGridPairsAcrossCellBoundary(t *testing.T) {
	spheres := []Sphere{
		{Body: newBodyAt(rl.Vector3{X: -0.5}), Radius: 1},
		{Body: newBodyAt(rl.Vector3{X: 0.5}), Radius: 1},
	}

	if pairs := NewGrid().Pairs(spheres); len(pairs) != 1 {
		t.Errorf("Expected spheres straddling a cell edge to pair, got %v", pairs)
	}
}
