package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Exact contact generators. Each one writes at most data.Remaining() contacts,
// commits them with Append and returns how many were written.

// BoxAndHalfSpace emits one contact per box corner strictly below the plane,
// in corner order. The contact point is the corner projected onto the plane.
func BoxAndHalfSpace(box Box, plane Plane, data *CollisionData) int {
	if !data.HasMoreContacts() {
		return 0
	}
	if !BoxIntersectsHalfSpace(box, plane) {
		return 0
	}

	free := data.Free()
	used := 0
	for _, v := range box.Vertices() {
		dist := rl.Vector3DotProduct(v, plane.Normal)
		if dist >= plane.Offset {
			continue
		}

		c := &free[used]
		c.Point = rl.Vector3Add(v, rl.Vector3Scale(plane.Normal, plane.Offset-dist))
		c.Normal = plane.Normal
		c.Penetration = plane.Offset - dist
		c.setBodyData(box.Body, nil, data.Friction, data.Restitution)

		used++
		if used == len(free) {
			break
		}
	}

	return data.Append(used)
}

// Axis indices: 0-2 are faces of one, 3-5 faces of two, 6-14 edge pairs.
const noAxis = -1

// BoxAndBox runs a 15 axis SAT and, on overlap, emits the single deepest
// contact: point-face when a face axis wins, edge-edge otherwise.
// The normal points from two toward one.
func BoxAndBox(one, two Box, data *CollisionData) int {
	if !data.HasMoreContacts() {
		return 0
	}

	a, b := one.OBB(), two.OBB()
	toCentre := rl.Vector3Subtract(b.Center, a.Center)

	pen := float32(math.MaxFloat32)
	best := noAxis

	for i := 0; i < 3; i++ {
		if !tryAxis(a, b, a.Axes[i], toCentre, i, &pen, &best) {
			return 0
		}
	}
	for i := 0; i < 3; i++ {
		if !tryAxis(a, b, b.Axes[i], toCentre, i+3, &pen, &best) {
			return 0
		}
	}
	bestSingleAxis := best
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !tryAxis(a, b, cross(a.Axes[i], b.Axes[j]), toCentre, 6+i*3+j, &pen, &best) {
				return 0
			}
		}
	}
	if best == noAxis {
		return 0
	}

	c := &data.Free()[0]
	switch {
	case best < 3:
		fillPointFace(a, b, toCentre, best, pen, c)
		c.setBodyData(one.Body, two.Body, data.Friction, data.Restitution)
	case best < 6:
		fillPointFace(b, a, rl.Vector3Negate(toCentre), best-3, pen, c)
		c.setBodyData(two.Body, one.Body, data.Friction, data.Restitution)
	default:
		fillEdgeEdge(a, b, toCentre, best-6, bestSingleAxis, pen, c)
		c.setBodyData(one.Body, two.Body, data.Friction, data.Restitution)
	}

	return data.Append(1)
}

// tryAxis reports false when axis separates the boxes and otherwise records it
// if it has the smallest overlap so far. Degenerate axes from nearly parallel
// edges are skipped.
func tryAxis(a, b OBB, axis, toCentre rl.Vector3, index int, smallest *float32, best *int) bool {
	if rl.Vector3DotProduct(axis, axis) < 0.0001 {
		return true
	}
	axis = rl.Vector3Normalize(axis)

	p := penetrationOnAxis(a, b, axis, toCentre)
	if p < 0 {
		return false
	}
	if p < *smallest {
		*smallest = p
		*best = index
	}
	return true
}

// fillPointFace writes a contact between a face of one and the vertex of two
// that points deepest into it.
func fillPointFace(one, two OBB, toCentre rl.Vector3, axis int, pen float32, c *Contact) {
	normal := one.Axes[axis]
	if rl.Vector3DotProduct(normal, toCentre) > 0 {
		normal = rl.Vector3Negate(normal)
	}

	vertex := two.HalfSize
	if rl.Vector3DotProduct(two.Axes[0], normal) < 0 {
		vertex.X = -vertex.X
	}
	if rl.Vector3DotProduct(two.Axes[1], normal) < 0 {
		vertex.Y = -vertex.Y
	}
	if rl.Vector3DotProduct(two.Axes[2], normal) < 0 {
		vertex.Z = -vertex.Z
	}

	c.Normal = normal
	c.Penetration = pen
	c.Point = two.localToWorld(vertex)
}

func fillEdgeEdge(one, two OBB, toCentre rl.Vector3, edge, bestSingleAxis int, pen float32, c *Contact) {
	oneIndex, twoIndex := edge/3, edge%3
	oneAxis, twoAxis := one.Axes[oneIndex], two.Axes[twoIndex]

	axis := rl.Vector3Normalize(cross(oneAxis, twoAxis))
	if rl.Vector3DotProduct(axis, toCentre) > 0 {
		axis = rl.Vector3Negate(axis)
	}

	// Find a point on each of the two touching edges.
	onOne, onTwo := one.HalfSize, two.HalfSize
	for i := 0; i < 3; i++ {
		if i == oneIndex {
			onOne = withComponent(onOne, i, 0)
		} else if rl.Vector3DotProduct(one.Axes[i], axis) > 0 {
			onOne = withComponent(onOne, i, -component(onOne, i))
		}

		if i == twoIndex {
			onTwo = withComponent(onTwo, i, 0)
		} else if rl.Vector3DotProduct(two.Axes[i], axis) < 0 {
			onTwo = withComponent(onTwo, i, -component(onTwo, i))
		}
	}

	c.Normal = axis
	c.Penetration = pen
	c.Point = edgeContactPoint(
		one.localToWorld(onOne), oneAxis, component(one.HalfSize, oneIndex),
		two.localToWorld(onTwo), twoAxis, component(two.HalfSize, twoIndex),
		bestSingleAxis > 2,
	)
}

// edgeContactPoint returns the midpoint of the closest approach between two
// edges. When the edges are parallel or the closest points fall outside either
// edge, it falls back to the edge midpoint of the box owning the best face axis.
func edgeContactPoint(pOne, dOne rl.Vector3, oneSize float32, pTwo, dTwo rl.Vector3, twoSize float32, useOne bool) rl.Vector3 {
	fallback := pTwo
	if useOne {
		fallback = pOne
	}

	smOne := rl.Vector3DotProduct(dOne, dOne)
	smTwo := rl.Vector3DotProduct(dTwo, dTwo)
	dpOneTwo := rl.Vector3DotProduct(dTwo, dOne)

	toSt := rl.Vector3Subtract(pOne, pTwo)
	dpStaOne := rl.Vector3DotProduct(dOne, toSt)
	dpStaTwo := rl.Vector3DotProduct(dTwo, toSt)

	denom := smOne*smTwo - dpOneTwo*dpOneTwo
	if absf(denom) < 0.0001 {
		return fallback
	}

	mua := (dpOneTwo*dpStaTwo - smTwo*dpStaOne) / denom
	mub := (smOne*dpStaTwo - dpOneTwo*dpStaOne) / denom
	if mua > oneSize || mua < -oneSize || mub > twoSize || mub < -twoSize {
		return fallback
	}

	cOne := rl.Vector3Add(pOne, rl.Vector3Scale(dOne, mua))
	cTwo := rl.Vector3Add(pTwo, rl.Vector3Scale(dTwo, mub))
	return rl.Vector3Scale(rl.Vector3Add(cOne, cTwo), 0.5)
}
