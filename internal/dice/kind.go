package dice

import (
	"fmt"
	"strings"

	"dicedemo/internal/physics"
)

// Kind selects a die variant.
type Kind int

const (
	KindBox Kind = iota
	KindBipyramid
)

var kindNames = [...]string{
	KindBox:       "box",
	KindBipyramid: "bipyramid",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts the names printed by Kind.String, case-insensitively.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(name, n) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("dice: unknown kind %q", name)
}

// Capabilities is the per-variant dispatch table. A nil PairTest means the
// variant cannot collide with other dice; callers must check for it.
type Capabilities struct {
	Init      func(d *Die)
	Advance   func(d *Die, duration float32)
	PlaneTest func(d *Die, plane physics.Plane, data *physics.CollisionData) int
	PairTest  func(d, other *Die, data *physics.CollisionData) int
	Mesh      func(d *Die) Mesh
}

var capabilities = [...]Capabilities{
	KindBox: {
		Init:      initBody,
		Advance:   integrate,
		PlaneTest: boxPlaneTest,
		PairTest:  boxPairTest,
		Mesh:      boxMesh,
	},
	KindBipyramid: {
		Init:      initBody,
		Advance:   integrate,
		PlaneTest: bipyramidPlaneTest,
		Mesh:      bipyramidMesh,
	},
}

// CapabilitiesOf returns the dispatch table for k. Unknown kinds get an empty table.
func CapabilitiesOf(k Kind) Capabilities {
	if k < 0 || int(k) >= len(capabilities) {
		return Capabilities{}
	}
	return capabilities[k]
}
