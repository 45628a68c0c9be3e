package dice

import rl "github.com/gen2brain/raylib-go/raylib"

type Segment struct {
	From, To rl.Vector3
}

// Triangle vertices are wound counter-clockwise seen from outside the die.
type Triangle [3]rl.Vector3

// Mesh is world-space geometry for one die, rebuilt on request.
type Mesh struct {
	Edges []Segment
	Faces []Triangle
}

// Flatten projects the mesh onto the plane y = height, for drop shadows.
func (m Mesh) Flatten(height float32) Mesh {
	out := Mesh{
		Edges: make([]Segment, len(m.Edges)),
		Faces: make([]Triangle, len(m.Faces)),
	}
	for i, e := range m.Edges {
		out.Edges[i] = Segment{From: flat(e.From, height), To: flat(e.To, height)}
	}
	for i, f := range m.Faces {
		// Seen from above, a flattened face keeps its winding only if it faced up.
		t := Triangle{flat(f[0], height), flat(f[1], height), flat(f[2], height)}
		if faceNormal(f).Y < 0 {
			t[1], t[2] = t[2], t[1]
		}
		out.Faces[i] = t
	}
	return out
}

func flat(v rl.Vector3, height float32) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: height, Z: v.Z}
}

func faceNormal(t Triangle) rl.Vector3 {
	return rl.Vector3CrossProduct(rl.Vector3Subtract(t[1], t[0]), rl.Vector3Subtract(t[2], t[0]))
}

// outward orders a triangle so its normal points away from center.
func outward(a, b, c, center rl.Vector3) Triangle {
	t := Triangle{a, b, c}
	if rl.Vector3DotProduct(faceNormal(t), rl.Vector3Subtract(a, center)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
	return t
}

// Box corner indices follow physics.Box.Vertices: bit 0 flips X, bit 1 flips Y,
// bit 2 flips Z.
var (
	boxEdges = [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7},
		{0, 2}, {1, 3}, {4, 6}, {5, 7},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	boxFaces = [6][4]int{
		{0, 2, 6, 4}, {1, 3, 7, 5},
		{0, 1, 5, 4}, {2, 3, 7, 6},
		{0, 1, 3, 2}, {4, 5, 7, 6},
	}
)

func boxMesh(d *Die) Mesh {
	v := d.Box.Vertices()
	center := d.Body.Position()

	m := Mesh{
		Edges: make([]Segment, 0, len(boxEdges)),
		Faces: make([]Triangle, 0, len(boxFaces)*2),
	}
	for _, e := range boxEdges {
		m.Edges = append(m.Edges, Segment{From: v[e[0]], To: v[e[1]]})
	}
	for _, q := range boxFaces {
		m.Faces = append(m.Faces,
			outward(v[q[0]], v[q[1]], v[q[2]], center),
			outward(v[q[0]], v[q[2]], v[q[3]], center),
		)
	}
	return m
}

func bipyramidMesh(d *Die) Mesh {
	v := d.bipyramidWorldVertices()
	center := d.Body.Position()

	m := Mesh{
		Edges: make([]Segment, 0, 12),
		Faces: make([]Triangle, 0, 8),
	}
	for i := 0; i < 4; i++ {
		next := (i + 1) % 4
		m.Edges = append(m.Edges,
			Segment{From: v[i], To: v[next]},
			Segment{From: v[4], To: v[i]},
			Segment{From: v[5], To: v[i]},
		)
		m.Faces = append(m.Faces,
			outward(v[i], v[next], v[4], center),
			outward(v[i], v[next], v[5], center),
		)
	}
	return m
}
