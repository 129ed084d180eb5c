// Package audio is the feedback collaborator: it turns engine events into
// short synthesized chimes. It is fire-and-forget by contract; if no audio
// backend is available the sink silently drops every cue and the core
// never notices.
package audio

import (
	"log/slog"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/mhollis/hearthroom/pkg/events"
)

const sampleRate = beep.SampleRate(44100)

// cue maps an event class to a chime.
type cue struct {
	freq     float64
	duration time.Duration
	volume   float64
}

var cues = map[events.EventType]cue{
	events.EventLinePresented:      {freq: 523.25, duration: 60 * time.Millisecond, volume: 0.08},
	events.EventChoiceOffered:      {freq: 659.25, duration: 90 * time.Millisecond, volume: 0.10},
	events.EventChallengeStarted:   {freq: 440.00, duration: 150 * time.Millisecond, volume: 0.12},
	events.EventChallengeFailed:    {freq: 196.00, duration: 180 * time.Millisecond, volume: 0.12},
	events.EventChallengeSucceeded: {freq: 783.99, duration: 250 * time.Millisecond, volume: 0.15},
	events.EventFragmentAwarded:    {freq: 1046.50, duration: 400 * time.Millisecond, volume: 0.18},
}

// Sink plays a chime per notable event. Implements events.Notifier.
type Sink struct {
	disabled bool
	logger   *slog.Logger
}

// NewSink initializes the speaker. On backend failure the sink comes up
// disabled rather than returning an error; audio is never load-bearing.
func NewSink(muted bool, logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Sink{logger: logger}
	if muted {
		s.disabled = true
		return s
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		logger.Warn("audio backend unavailable, cues disabled", "error", err)
		s.disabled = true
	}
	return s
}

// Notify plays the chime for the event, if one is mapped.
func (s *Sink) Notify(e events.Event) {
	if s.disabled {
		return
	}
	c, ok := cues[e.Type]
	if !ok {
		return
	}
	streamer := beep.Take(sampleRate.N(c.duration), newChime(sampleRate, c.freq, c.volume, c.duration))
	speaker.Play(streamer)
}

// Close releases the speaker.
func (s *Sink) Close() {
	if !s.disabled {
		speaker.Close()
	}
}

// chime generates a sine tone with a fast attack and exponential decay.
type chime struct {
	sr      beep.SampleRate
	freq    float64
	volume  float64
	samples int
	pos     int
}

func newChime(sr beep.SampleRate, freq, volume float64, d time.Duration) *chime {
	return &chime{
		sr:      sr,
		freq:    freq,
		volume:  volume,
		samples: sr.N(d),
	}
}

func (g *chime) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 5ms linear attack, then exponential decay over the cue length.
		attack := math.Min(t/0.005, 1.0)
		decay := math.Exp(-4 * float64(g.pos) / float64(g.samples))

		sample := g.volume * attack * decay * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *chime) Err() error {
	return nil
}
