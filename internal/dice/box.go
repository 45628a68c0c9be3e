package dice

import "dicedemo/internal/physics"

// Box dice reject with their rounding spheres first and only then run the
// exact box routines.

func boxPlaneTest(d *Die, plane physics.Plane, data *physics.CollisionData) int {
	if !data.HasMoreContacts() || !physics.SphereIntersectsHalfSpace(d.Rounding, plane) {
		return 0
	}
	return physics.BoxAndHalfSpace(d.Box, plane, data)
}

func boxPairTest(d, other *Die, data *physics.CollisionData) int {
	if !data.HasMoreContacts() || !physics.SphereIntersectsSphere(d.Rounding, other.Rounding) {
		return 0
	}
	return physics.BoxAndBox(d.Box, other.Box, data)
}
