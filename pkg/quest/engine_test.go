package quest

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhollis/hearthroom/pkg/events"
	"github.com/mhollis/hearthroom/pkg/ledger"
	"github.com/mhollis/hearthroom/pkg/spirit"
)

func testRegistry(t *testing.T) *spirit.Registry {
	t.Helper()
	r, err := spirit.NewRegistry([]*spirit.Spirit{
		{
			ID: "frost", Name: "Pane",
			Region:       spirit.Rect{W: 10, H: 10},
			FragmentSlot: 0,
			Quest:        spirit.QuestSpec{Kind: spirit.KindDiscover},
			Script:       spirit.Script{Intro: []string{"hello"}, After: []string{"bye"}},
		},
		{
			ID: "ember", Name: "Ember",
			Region:       spirit.Rect{W: 10, H: 10},
			FragmentSlot: 1,
			Quest:        spirit.QuestSpec{Kind: spirit.KindCalibration, BandMin: 0.42, BandMax: 0.62},
			Script:       spirit.Script{Intro: []string{"warm me"}, After: []string{"warm now"}},
		},
		{
			ID: "moth", Name: "Flicker",
			Region:       spirit.Rect{W: 10, H: 10},
			FragmentSlot: 2,
			Quest:        spirit.QuestSpec{Kind: spirit.KindSteady, StreakMin: 10, ProgressTarget: 3},
			Script:       spirit.Script{Intro: []string{"hold still"}, After: []string{"resting"}},
		},
		{
			ID: "mouse", Name: "Margin",
			Region:       spirit.Rect{W: 10, H: 10},
			FragmentSlot: 3,
			Quest: spirit.QuestSpec{
				Kind: spirit.KindGathering, CountTarget: 2,
				Placements: []string{"the worn novel", "the cloud atlas", "the thin book of poems"},
			},
			Script: spirit.Script{Intro: []string{"books!"}, After: []string{"order"}},
		},
	})
	require.NoError(t, err)
	return r
}

func testEngine(t *testing.T) (*Engine, *ledger.Ledger) {
	t.Helper()
	led := ledger.New(4)
	rng := rand.New(rand.NewPCG(7, 11))
	return NewEngine(testRegistry(t), led, rng, events.Nop, nil), led
}

func TestEngine_StageChain(t *testing.T) {
	e, _ := testEngine(t)

	assert.Equal(t, StageNotStarted, e.Stage("ember"))
	assert.True(t, e.Start("ember"))
	assert.Equal(t, StageInProgress, e.Stage("ember"))

	// Re-entrant start is a no-op.
	assert.False(t, e.Start("ember"))
	assert.Equal(t, StageInProgress, e.Stage("ember"))

	e.SetValue("ember", 0.5)
	fb := e.Evaluate("ember")
	assert.True(t, fb.Completed)
	assert.Equal(t, StageComplete, e.Stage("ember"))

	// Complete is terminal.
	assert.False(t, e.Start("ember"))
	assert.False(t, e.Resume("ember"))
	assert.Equal(t, StageComplete, e.Stage("ember"))
}

func TestEngine_StartIgnoresDiscoverAndUnknown(t *testing.T) {
	e, _ := testEngine(t)
	assert.False(t, e.Start("frost"), "discover quests have no interactive challenge")
	assert.False(t, e.Start("nobody"))
}

func TestEngine_CompleteDiscovery(t *testing.T) {
	e, led := testEngine(t)

	fb := e.CompleteDiscovery("frost")
	assert.True(t, fb.Completed)
	assert.Equal(t, StageComplete, e.Stage("frost"))
	assert.True(t, led.Held(0))
	assert.InDelta(t, ledger.WarmthIncrement, led.Warmth(), 1e-9)

	// Idempotent: a second discovery changes nothing.
	fb = e.CompleteDiscovery("frost")
	assert.False(t, fb.Completed)
	assert.Equal(t, 1, led.Count())
	assert.InDelta(t, ledger.WarmthIncrement, led.Warmth(), 1e-9)
}

func TestEngine_CalibrationClampAndBand(t *testing.T) {
	e, _ := testEngine(t)
	require.True(t, e.Start("ember"))

	q := e.Quest("ember")
	assert.Equal(t, 0.5, q.Value(), "calibration starts at the midpoint")

	e.SetValue("ember", -3)
	assert.Equal(t, 0.0, q.Value(), "out-of-range input clamps, never rejects")
	e.SetValue("ember", 42)
	assert.Equal(t, 1.0, q.Value())

	tests := []struct {
		name      string
		value     float64
		outcome   Outcome
		completed bool
	}{
		{name: "below band", value: 0.41, outcome: OutcomeBelow},
		{name: "above band", value: 0.63, outcome: OutcomeAbove},
		{name: "lower boundary is within", value: 0.42, outcome: OutcomeComplete, completed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := testEngine(t)
			require.True(t, e.Start("ember"))
			e.SetValue("ember", tt.value)
			fb := e.Evaluate("ember")
			assert.Equal(t, tt.outcome, fb.Outcome)
			assert.Equal(t, tt.completed, fb.Completed)
			if !tt.completed {
				assert.Equal(t, StageInProgress, e.Stage("ember"))
			}
		})
	}
}

func TestEngine_CalibrationUpperBoundaryIsWithin(t *testing.T) {
	e, _ := testEngine(t)
	require.True(t, e.Start("ember"))
	e.SetValue("ember", 0.62)
	fb := e.Evaluate("ember")
	assert.Equal(t, OutcomeComplete, fb.Outcome)
	assert.True(t, fb.Completed)
}

func TestEngine_SetValueNeverCompletes(t *testing.T) {
	e, _ := testEngine(t)
	require.True(t, e.Start("ember"))

	// Storing a within-band value must not complete; only Evaluate may.
	fb := e.SetValue("ember", 0.5)
	assert.False(t, fb.Completed)
	assert.Equal(t, StageInProgress, e.Stage("ember"))
}

func TestEngine_CalibrationReset(t *testing.T) {
	e, _ := testEngine(t)
	require.True(t, e.Start("ember"))

	e.SetValue("ember", 0.9)
	fb := e.ResetValue("ember")
	assert.Equal(t, OutcomeIdle, fb.Outcome)
	assert.Equal(t, 0.5, e.Quest("ember").Value())
	assert.Equal(t, StageInProgress, e.Stage("ember"))
}

// steadyTicks runs ticks while keeping instability pinned low via Focus,
// so the streak grows deterministically regardless of drift direction.
func steadyTicks(e *Engine, id string, n int) {
	for i := 0; i < n; i++ {
		e.Focus(id)
		e.Focus(id)
		e.Tick(100 * time.Millisecond)
	}
}

func TestEngine_AttemptGatedByStreak(t *testing.T) {
	e, _ := testEngine(t)
	require.True(t, e.Start("moth"))

	q := e.Quest("moth")
	require.Less(t, q.Streak(), 10)

	before := q.Instability()
	fb := e.Attempt("moth")
	assert.Equal(t, OutcomeSteadyFail, fb.Outcome)
	assert.False(t, fb.Completed)
	assert.Equal(t, StageInProgress, e.Stage("moth"))
	assert.GreaterOrEqual(t, q.Instability(), before, "failed attempt nudges instability upward")
}

func TestEngine_SteadyCompletion(t *testing.T) {
	e, led := testEngine(t)
	require.True(t, e.Start("moth"))

	q := e.Quest("moth")
	for success := 1; success <= 3; success++ {
		steadyTicks(e, "moth", 12)
		require.GreaterOrEqual(t, q.Streak(), 10, "pinned instability must grow the streak")

		fb := e.Attempt("moth")
		if success < 3 {
			assert.Equal(t, OutcomeProgress, fb.Outcome)
			assert.Equal(t, success, q.Progress())
			assert.Equal(t, StageInProgress, q.Stage())
		} else {
			assert.True(t, fb.Completed)
			assert.Equal(t, StageComplete, q.Stage())
		}
	}

	assert.True(t, led.Held(2))
}

func TestEngine_SteadyNoPermanentLockout(t *testing.T) {
	e, _ := testEngine(t)
	require.True(t, e.Start("moth"))

	// Without ever calling Focus, pure drift must still be able to
	// produce a long-enough steady streak eventually.
	q := e.Quest("moth")
	reached := false
	for i := 0; i < 200000; i++ {
		e.Tick(100 * time.Millisecond)
		if q.Streak() >= 10 {
			reached = true
			break
		}
	}
	assert.True(t, reached, "drift alone must eventually allow a steady streak")
}

func TestEngine_RestIsCosmetic(t *testing.T) {
	e, _ := testEngine(t)
	require.True(t, e.Start("moth"))

	q := e.Quest("moth")
	before := q.Instability()
	fb := e.Rest("moth")
	assert.Equal(t, OutcomeIdle, fb.Outcome)
	assert.Equal(t, before, q.Instability())
	assert.Equal(t, 0, q.Progress())
}

func TestEngine_TickClampsElapsedAndInstability(t *testing.T) {
	e, _ := testEngine(t)
	require.True(t, e.Start("moth"))

	q := e.Quest("moth")
	// A huge stall must advance at most one clamped step.
	before := q.Instability()
	e.Tick(10 * time.Second)
	delta := q.Instability() - before
	maxStep := driftStep * float64(maxTickElapsed) / float64(baseTickInterval)
	assert.LessOrEqual(t, delta, maxStep+1e-9)
	assert.GreaterOrEqual(t, delta, -maxStep-1e-9)

	for i := 0; i < 1000; i++ {
		e.Tick(100 * time.Millisecond)
		inst := q.Instability()
		require.GreaterOrEqual(t, inst, 0.0)
		require.LessOrEqual(t, inst, 1.0)
	}
}

func TestEngine_TickOnlyDriftsActiveChallenge(t *testing.T) {
	e, _ := testEngine(t)
	require.True(t, e.Start("moth"))
	e.Deactivate()

	q := e.Quest("moth")
	before := q.Instability()
	e.Tick(100 * time.Millisecond)
	assert.Equal(t, before, q.Instability(), "no drift without an active challenge")
}

func TestEngine_GatheringExactTarget(t *testing.T) {
	e, led := testEngine(t)
	require.True(t, e.Start("mouse"))

	fb := e.Place("mouse", "the worn novel")
	assert.Equal(t, OutcomeProgress, fb.Outcome)
	assert.Contains(t, fb.Text, "the worn novel")
	assert.Equal(t, StageInProgress, e.Stage("mouse"), "target-1 placements leave the quest in progress")
	assert.False(t, led.Held(3))

	fb = e.Place("mouse", "the cloud atlas")
	assert.True(t, fb.Completed)
	assert.Equal(t, StageComplete, e.Stage("mouse"))
	assert.True(t, led.Held(3))

	// Further placements are no-ops on a complete quest.
	fb = e.Place("mouse", "the thin book of poems")
	assert.Equal(t, OutcomeNone, fb.Outcome)
	assert.Equal(t, StageComplete, e.Stage("mouse"))
	assert.Equal(t, 1, led.Count())
}

func TestEngine_PlaceDefaultsItemName(t *testing.T) {
	e, _ := testEngine(t)
	require.True(t, e.Start("mouse"))

	fb := e.Place("mouse", "")
	assert.Contains(t, fb.Text, "the worn novel", "empty item falls back to the authored placement list")
}

func TestEngine_ResumeReinitializesTransientState(t *testing.T) {
	e, _ := testEngine(t)
	require.True(t, e.Start("mouse"))

	e.Place("mouse", "the worn novel")
	require.Equal(t, 1, e.Quest("mouse").Count())

	// Player closes the dialogue mid-challenge; stage survives, the
	// in-flight count does not.
	e.Deactivate()
	assert.Equal(t, StageInProgress, e.Stage("mouse"))

	require.True(t, e.Resume("mouse"))
	assert.Equal(t, 0, e.Quest("mouse").Count())
	assert.Equal(t, StageInProgress, e.Stage("mouse"))
}

func TestEngine_VariantActionsIgnoreWrongKind(t *testing.T) {
	e, _ := testEngine(t)
	require.True(t, e.Start("ember"))

	assert.Equal(t, Feedback{}, e.Focus("ember"))
	assert.Equal(t, Feedback{}, e.Place("ember", "a log"))
	assert.Equal(t, Feedback{}, e.Evaluate("moth"))
	assert.Equal(t, Feedback{}, e.SetValue("nobody", 0.5))
}

func TestEngine_CompletionEvents(t *testing.T) {
	var got []events.EventType
	recorder := events.NotifierFunc(func(e events.Event) {
		got = append(got, e.Type)
	})

	led := ledger.New(4)
	e := NewEngine(testRegistry(t), led, rand.New(rand.NewPCG(1, 2)), recorder, nil)

	require.True(t, e.Start("ember"))
	e.SetValue("ember", 0.5)
	e.Evaluate("ember")

	assert.Equal(t, []events.EventType{
		events.EventChallengeStarted,
		events.EventChallengeSucceeded,
		events.EventQuestCompleted,
		events.EventFragmentAwarded,
	}, got)
}
