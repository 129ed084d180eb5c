package ledger

import (
	"testing"
)

func TestLedger_AwardIdempotence(t *testing.T) {
	l := New(12)

	if got := l.Award(3); got != AwardNewly {
		t.Errorf("first award: expected %v, got %v", AwardNewly, got)
	}
	warmthAfterFirst := l.Warmth()

	for i := 0; i < 5; i++ {
		if got := l.Award(3); got != AwardAlreadyHeld {
			t.Errorf("repeat award %d: expected %v, got %v", i, AwardAlreadyHeld, got)
		}
	}

	if l.Warmth() != warmthAfterFirst {
		t.Errorf("warmth changed on repeat award: %v -> %v", warmthAfterFirst, l.Warmth())
	}
	if l.Count() != 1 {
		t.Errorf("expected count 1, got %d", l.Count())
	}
	if !l.Held(3) {
		t.Error("slot 3 should be held")
	}
}

func TestLedger_InvalidSlot(t *testing.T) {
	l := New(4)
	for _, slot := range []int{-1, 4, 100} {
		if got := l.Award(slot); got != AwardInvalidSlot {
			t.Errorf("Award(%d): expected %v, got %v", slot, AwardInvalidSlot, got)
		}
	}
	if l.Warmth() != 0 {
		t.Errorf("invalid awards must not change warmth, got %v", l.Warmth())
	}
}

func TestLedger_WarmthMonotoneAndClamped(t *testing.T) {
	l := New(12)
	prev := 0.0
	for slot := 0; slot < 12; slot++ {
		l.Award(slot)
		w := l.Warmth()
		if w < prev {
			t.Fatalf("warmth decreased at slot %d: %v -> %v", slot, prev, w)
		}
		if w < 0 || w > 1 {
			t.Fatalf("warmth out of range at slot %d: %v", slot, w)
		}
		prev = w
	}
	// 12 * 0.18 > 1, so the final warmth must be clamped.
	if l.Warmth() != 1 {
		t.Errorf("expected warmth clamped to 1, got %v", l.Warmth())
	}
}

func TestLedger_Tier(t *testing.T) {
	tests := []struct {
		name   string
		awards int
		want   Tier
	}{
		{name: "no fragments", awards: 0, want: TierNone},
		{name: "one fragment", awards: 1, want: TierStarted},
		{name: "two fragments", awards: 2, want: TierStarted},
		{name: "three fragments", awards: 3, want: TierDeepened},
		{name: "all fragments", awards: 12, want: TierDeepened},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(12)
			for i := 0; i < tt.awards; i++ {
				l.Award(i)
			}
			if got := l.Tier(); got != tt.want {
				t.Errorf("Tier() with %d awards = %v, want %v", tt.awards, got, tt.want)
			}
		})
	}
}

func TestLedger_SnapshotIsACopy(t *testing.T) {
	l := New(3)
	l.Award(1)

	snap := l.Snapshot()
	if snap.Count != 1 || !snap.Slots[1] {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	snap.Slots[0] = true
	if l.Held(0) {
		t.Error("mutating a snapshot must not affect the ledger")
	}
}
