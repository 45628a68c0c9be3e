package physics

import (
	"math"
	"sort"
)

// CellSize is the smallest grid cell edge. Cells grow to fit the largest sphere.
const CellSize = 5.0

// CellKey addresses one cell of the spatial hash.
type CellKey struct {
	X, Y, Z int
}

// Pair is an unordered pair of indices with A < B.
type Pair struct {
	A, B int
}

// Grid is a spatial hash over bounding spheres. Spheres in the same or one of
// the 26 neighbouring cells whose bounds overlap become candidate pairs.
type Grid struct {
	cellSize float32
	cells    map[CellKey][]int
	pairs    []Pair
}

func NewGrid() *Grid {
	return &Grid{
		cellSize: CellSize,
		cells:    make(map[CellKey][]int),
	}
}

func (g *Grid) posToCell(s Sphere) CellKey {
	c := s.Center()
	return CellKey{
		X: int(math.Floor(float64(c.X / g.cellSize))),
		Y: int(math.Floor(float64(c.Y / g.cellSize))),
		Z: int(math.Floor(float64(c.Z / g.cellSize))),
	}
}

// Pairs returns candidate pairs sorted by (A, B), so callers see them in the
// same order every frame. The returned slice is reused by the next call.
func (g *Grid) Pairs(spheres []Sphere) []Pair {
	for k := range g.cells {
		delete(g.cells, k)
	}
	g.pairs = g.pairs[:0]

	g.cellSize = CellSize
	for _, s := range spheres {
		if d := s.Radius * 2; d > g.cellSize {
			g.cellSize = d
		}
	}

	for i, s := range spheres {
		cell := g.posToCell(s)
		g.cells[cell] = append(g.cells[cell], i)
	}

	for i, s := range spheres {
		cell := g.posToCell(s)
		bounds := SphereBounds(s)

		// Check 3x3x3 cube of cells centered on the sphere's cell
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					key := CellKey{cell.X + dx, cell.Y + dy, cell.Z + dz}
					for _, j := range g.cells[key] {
						if j <= i {
							continue
						}
						if bounds.Intersects(SphereBounds(spheres[j])) {
							g.pairs = append(g.pairs, Pair{A: i, B: j})
						}
					}
				}
			}
		}
	}

	sort.Slice(g.pairs, func(a, b int) bool {
		if g.pairs[a].A != g.pairs[b].A {
			return g.pairs[a].A < g.pairs[b].A
		}
		return g.pairs[a].B < g.pairs[b].B
	})
	return g.pairs
}
