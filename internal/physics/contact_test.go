package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestCollisionDataResetIsIdempotent(t *testing.T) {
	d := NewCollisionData(0)

	for i := 0; i < 2; i++ {
		d.Reset(16)
		if d.Count() != 0 {
			t.Errorf("Reset %d: expected count 0, got %d", i, d.Count())
		}
		if d.Remaining() != 16 {
			t.Errorf("Reset %d: expected remaining 16, got %d", i, d.Remaining())
		}
	}
}

func TestCollisionDataAppendClamps(t *testing.T) {
	d := NewCollisionData(3)

	if n := d.Append(5); n != 3 {
		t.Errorf("Expected Append to commit 3, got %d", n)
	}
	if d.Remaining() != 0 {
		t.Errorf("Expected 0 remaining, got %d", d.Remaining())
	}
	if n := d.Append(1); n != 0 {
		t.Errorf("Expected Append on a full buffer to commit 0, got %d", n)
	}
	if n := d.Append(-2); n != 0 {
		t.Errorf("Expected negative Append to commit 0, got %d", n)
	}
	if len(d.Contacts()) != 3 {
		t.Errorf("Expected 3 contacts, got %d", len(d.Contacts()))
	}
}

func TestCollisionDataResetReusesArena(t *testing.T) {
	d := NewCollisionData(8)
	d.Append(4)

	d.Reset(2)
	if d.Capacity() != 2 || d.Count() != 0 {
		t.Errorf("Expected capacity 2 and count 0, got %d and %d", d.Capacity(), d.Count())
	}
	if len(d.Free()) != 2 {
		t.Errorf("Expected free window of 2, got %d", len(d.Free()))
	}

	d.Reset(-1)
	if d.Capacity() != 0 || d.HasMoreContacts() {
		t.Error("Negative capacity should behave as zero")
	}

	d.Reset(32)
	if d.Remaining() != 32 {
		t.Errorf("Expected arena to grow to 32, got %d", d.Remaining())
	}
}

func TestContactBudgetNeverExceeded(t *testing.T) {
	// Ten boxes each sunk into the ground, so every one of them wants four contacts.
	var boxes []Box
	for i := 0; i < 10; i++ {
		boxes = append(boxes, newUnitBox(rl.Vector3{X: float32(i) * 3, Y: 0.5}))
	}

	for capacity := 0; capacity <= 45; capacity++ {
		d := NewCollisionData(capacity)
		for _, b := range boxes {
			BoxAndHalfSpace(b, Ground, d)
		}
		for i := 0; i+1 < len(boxes); i++ {
			BoxAndBox(boxes[i], boxes[i+1], d)
		}

		if d.Count() > capacity {
			t.Errorf("Capacity %d: produced %d contacts", capacity, d.Count())
		}
		want := capacity
		if want > 40 {
			want = 40
		}
		if d.Count() != want {
			t.Errorf("Capacity %d: expected %d contacts, got %d", capacity, want, d.Count())
		}
	}
}
