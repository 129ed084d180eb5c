package ledger

// WarmthIncrement is added to the room's warmth each time a fragment slot
// flips true for the first time.
const WarmthIncrement = 0.18

// Tier is a coarse narrative bucket derived from the number of collected
// fragments. The rendering collaborator uses it to pick ambient flavor text.
type Tier string

const (
	TierNone     Tier = "none"
	TierStarted  Tier = "started"
	TierDeepened Tier = "deepened"
)

// Tier thresholds on count of collected fragments.
const (
	startedThreshold  = 1
	deepenedThreshold = 3
)

// AwardResult reports whether an Award call changed state.
type AwardResult string

const (
	// AwardNewly means the slot flipped false -> true on this call.
	AwardNewly AwardResult = "newly_awarded"
	// AwardAlreadyHeld means the slot was already true; nothing changed.
	AwardAlreadyHeld AwardResult = "already_held"
	// AwardInvalidSlot means the slot index was out of range; nothing changed.
	AwardInvalidSlot AwardResult = "invalid_slot"
)

// Ledger tracks which fragment slots have been awarded and derives the
// warmth scalar. Slots never revert and warmth never decreases.
type Ledger struct {
	slots  []bool
	warmth float64
}

// Snapshot is a read-only copy of ledger state for rendering.
type Snapshot struct {
	Slots  []bool  `json:"slots"`
	Count  int     `json:"count"`
	Warmth float64 `json:"warmth"`
	Tier   Tier    `json:"tier"`
}

// New creates a ledger with the given number of fragment slots, all unheld.
func New(size int) *Ledger {
	return &Ledger{slots: make([]bool, size)}
}

// Award marks a slot held. Awarding an already-held slot is a no-op.
// Warmth increases by WarmthIncrement, clamped to 1, only on the
// false -> true transition.
func (l *Ledger) Award(slot int) AwardResult {
	if slot < 0 || slot >= len(l.slots) {
		return AwardInvalidSlot
	}
	if l.slots[slot] {
		return AwardAlreadyHeld
	}
	l.slots[slot] = true
	l.warmth += WarmthIncrement
	if l.warmth > 1 {
		l.warmth = 1
	}
	return AwardNewly
}

// Held reports whether a slot has been awarded.
func (l *Ledger) Held(slot int) bool {
	if slot < 0 || slot >= len(l.slots) {
		return false
	}
	return l.slots[slot]
}

// Count returns the number of held slots.
func (l *Ledger) Count() int {
	n := 0
	for _, held := range l.slots {
		if held {
			n++
		}
	}
	return n
}

// Warmth returns the derived warmth scalar in [0,1].
func (l *Ledger) Warmth() float64 {
	return l.warmth
}

// Size returns the total number of slots.
func (l *Ledger) Size() int {
	return len(l.slots)
}

// Tier derives the narrative tier from the count of held slots.
func (l *Ledger) Tier() Tier {
	switch count := l.Count(); {
	case count >= deepenedThreshold:
		return TierDeepened
	case count >= startedThreshold:
		return TierStarted
	default:
		return TierNone
	}
}

// Snapshot returns an ordered copy of slot states plus derived values.
func (l *Ledger) Snapshot() Snapshot {
	slots := make([]bool, len(l.slots))
	copy(slots, l.slots)
	return Snapshot{
		Slots:  slots,
		Count:  l.Count(),
		Warmth: l.warmth,
		Tier:   l.Tier(),
	}
}
