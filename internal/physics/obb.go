package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// OBB is a snapshot of a box's world placement taken for one test, so the
// separating-axis loops don't re-derive axes from the body quaternion.
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// OBB captures the box's current placement.
func (b Box) OBB() OBB {
	return OBB{
		Center:   b.Center(),
		HalfSize: b.HalfSize,
		Axes:     [3]rl.Vector3{b.Axis(0), b.Axis(1), b.Axis(2)},
	}
}

// IntersectsOBB tests if two OBBs intersect using the Separating Axis Theorem
func (a OBB) IntersectsOBB(b OBB) bool {
	// Vector from A's center to B's center
	t := rl.Vector3Subtract(b.Center, a.Center)

	// 3 face normals from each box, then 9 edge cross products
	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, a.Axes[i], t) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		if !overlapOnAxis(a, b, b.Axes[i], t) {
			return false
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := cross(a.Axes[i], b.Axes[j])
			// Skip near-zero axes (parallel edges)
			if rl.Vector3Length(axis) > 0.0001 {
				axis = rl.Vector3Normalize(axis)
				if !overlapOnAxis(a, b, axis, t) {
					return false
				}
			}
		}
	}

	return true
}

// penetrationOnAxis returns how far the projections of a and b overlap on axis.
// Negative means the axis separates them.
func penetrationOnAxis(a, b OBB, axis, t rl.Vector3) float32 {
	return a.projectedRadius(axis) + b.projectedRadius(axis) - absf(rl.Vector3DotProduct(t, axis))
}

func overlapOnAxis(a, b OBB, axis, t rl.Vector3) bool {
	return penetrationOnAxis(a, b, axis, t) >= 0
}

func (o OBB) projectedRadius(axis rl.Vector3) float32 {
	return o.HalfSize.X*absf(rl.Vector3DotProduct(o.Axes[0], axis)) +
		o.HalfSize.Y*absf(rl.Vector3DotProduct(o.Axes[1], axis)) +
		o.HalfSize.Z*absf(rl.Vector3DotProduct(o.Axes[2], axis))
}

// localToWorld maps a point in the box frame to world space using the snapshot axes.
func (o OBB) localToWorld(p rl.Vector3) rl.Vector3 {
	result := o.Center
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[0], p.X))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[1], p.Y))
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[2], p.Z))
	return result
}
