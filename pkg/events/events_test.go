package events

import (
	"testing"
)

func TestMulti(t *testing.T) {
	var first, second []EventType
	n := Multi(
		NotifierFunc(func(e Event) { first = append(first, e.Type) }),
		nil, // nil sinks are skipped
		NotifierFunc(func(e Event) { second = append(second, e.Type) }),
	)

	n.Notify(Event{Type: EventLinePresented})
	n.Notify(Event{Type: EventFragmentAwarded, SpiritID: "ember"})

	want := []EventType{EventLinePresented, EventFragmentAwarded}
	for i, w := range want {
		if first[i] != w || second[i] != w {
			t.Errorf("sink mismatch at %d: first=%v second=%v want=%v", i, first[i], second[i], w)
		}
	}
}

func TestNop(t *testing.T) {
	// Must not panic.
	Nop.Notify(Event{Type: EventSessionOpened})
}
