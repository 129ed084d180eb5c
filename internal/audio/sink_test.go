package audio

import (
	"math"
	"testing"
	"time"

	"github.com/mhollis/hearthroom/pkg/events"
)

func TestMutedSinkDropsEverything(t *testing.T) {
	s := NewSink(true, nil)
	// Must be safe to notify with no backend.
	s.Notify(events.Event{Type: events.EventFragmentAwarded})
	s.Notify(events.Event{Type: "unmapped.event"})
	s.Close()
}

func TestChimeStreamIsBounded(t *testing.T) {
	g := newChime(sampleRate, 523.25, 0.1, 100*time.Millisecond)

	buf := make([][2]float64, 2048)
	for pass := 0; pass < 4; pass++ {
		n, ok := g.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("stream pass %d: n=%d ok=%v", pass, n, ok)
		}
		for i, s := range buf[:n] {
			if math.Abs(s[0]) > 0.1 || math.Abs(s[1]) > 0.1 {
				t.Fatalf("sample %d exceeds volume envelope: %v", i, s)
			}
			if s[0] != s[1] {
				t.Fatalf("chime must be centered, got %v", s)
			}
		}
	}
}

func TestChimeDecays(t *testing.T) {
	d := 100 * time.Millisecond
	g := newChime(sampleRate, 440, 0.2, d)

	buf := make([][2]float64, sampleRate.N(d))
	g.Stream(buf)

	peakEarly, peakLate := 0.0, 0.0
	half := len(buf) / 2
	for i, s := range buf {
		v := math.Abs(s[0])
		if i < half && v > peakEarly {
			peakEarly = v
		}
		if i >= half && v > peakLate {
			peakLate = v
		}
	}
	if peakLate >= peakEarly {
		t.Errorf("expected decay: early peak %v, late peak %v", peakEarly, peakLate)
	}
}

func TestEveryCueIsAudibleAndShort(t *testing.T) {
	for evt, c := range cues {
		if c.volume <= 0 || c.volume > 0.5 {
			t.Errorf("%s: volume %v out of cue range", evt, c.volume)
		}
		if c.duration <= 0 || c.duration > time.Second {
			t.Errorf("%s: duration %v out of cue range", evt, c.duration)
		}
		if c.freq < 20 || c.freq > 20000 {
			t.Errorf("%s: frequency %v not audible", evt, c.freq)
		}
	}
}
