package quest

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/mhollis/hearthroom/pkg/events"
	"github.com/mhollis/hearthroom/pkg/ledger"
	"github.com/mhollis/hearthroom/pkg/spirit"
)

// Variant tuning. Out-of-range inputs are clamped, never rejected.
const (
	calibrationInitial = 0.5
	steadyInitial      = 0.6
	steadyThreshold    = 0.28
	focusRelief        = 0.12
	successExcitement  = 0.15
	failureNudge       = 0.06
	driftStep          = 0.06
)

// Tick pacing. Elapsed time is clamped so a stalled frame advances the
// drift by at most one oversized step instead of a runaway jump.
const (
	baseTickInterval = 100 * time.Millisecond
	maxTickElapsed   = 250 * time.Millisecond
)

// Engine owns one Quest per spirit and drives the three challenge variants
// plus the discover-only shortcut. It is the only component that mutates
// quest stages, and the only caller of the fragment ledger's Award.
type Engine struct {
	registry *spirit.Registry
	ledger   *ledger.Ledger
	rng      *rand.Rand
	notify   events.Notifier
	logger   *slog.Logger

	quests map[string]*Quest

	// activeID is the quest currently owning the foreground challenge.
	// Only this quest drifts on Tick.
	activeID string
}

// NewEngine creates quest state for every spirit in the registry. A nil
// rng gets a time-seeded source; pass a fixed-seed source for
// deterministic tests. A nil notifier discards events.
func NewEngine(registry *spirit.Registry, led *ledger.Ledger, rng *rand.Rand, notify events.Notifier, logger *slog.Logger) *Engine {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>31))
	}
	if notify == nil {
		notify = events.Nop
	}
	if logger == nil {
		logger = slog.Default()
	}

	quests := make(map[string]*Quest, registry.Len())
	for _, s := range registry.All() {
		quests[s.ID] = &Quest{spirit: s, stage: StageNotStarted}
	}

	return &Engine{
		registry: registry,
		ledger:   led,
		rng:      rng,
		notify:   notify,
		logger:   logger,
		quests:   quests,
	}
}

// Quest returns the quest state for a spirit, or nil.
func (e *Engine) Quest(id string) *Quest {
	return e.quests[id]
}

// Stage returns the quest stage for a spirit. Unknown spirits read as
// NotStarted.
func (e *Engine) Stage(id string) Stage {
	if q := e.quests[id]; q != nil {
		return q.stage
	}
	return StageNotStarted
}

// ActiveID returns the spirit whose challenge currently owns the
// foreground, or "".
func (e *Engine) ActiveID() string {
	return e.activeID
}

// Start activates a NotStarted quest: stage to InProgress, variant state
// initialized, challenge made active. Starting an InProgress or Complete
// quest is a no-op; the guard keeps duplicate activation harmless.
func (e *Engine) Start(id string) bool {
	q := e.quests[id]
	if q == nil || q.stage != StageNotStarted || !q.spirit.Quest.Interactive() {
		return false
	}
	q.stage = StageInProgress
	q.resetTransient()
	e.activeID = id
	e.logger.Debug("challenge started", "spirit", id, "kind", q.spirit.Quest.Kind)
	e.notify.Notify(events.Event{Type: events.EventChallengeStarted, SpiritID: id})
	return true
}

// Resume re-enters the challenge of an InProgress quest after the player
// closed the dialogue mid-attempt. The stage persists; the attempt-local
// state does not, so it is reinitialized here.
func (e *Engine) Resume(id string) bool {
	q := e.quests[id]
	if q == nil || q.stage != StageInProgress {
		return false
	}
	q.resetTransient()
	e.activeID = id
	e.notify.Notify(events.Event{Type: events.EventChallengeStarted, SpiritID: id})
	return true
}

// Deactivate releases the foreground challenge without touching stage.
// Called when a dialogue session closes mid-challenge.
func (e *Engine) Deactivate() {
	e.activeID = ""
}

// CompleteDiscovery drives the discover-only shortcut: the quest passes
// through InProgress to Complete in one call and the fragment is awarded.
// Idempotent; a Complete quest returns a no-op feedback.
func (e *Engine) CompleteDiscovery(id string) Feedback {
	q := e.quests[id]
	if q == nil || q.spirit.Quest.Kind != spirit.KindDiscover || q.stage == StageComplete {
		return Feedback{}
	}
	q.stage = StageInProgress
	return e.complete(q)
}

// SetValue clamps and stores the calibration value. It never evaluates;
// only Evaluate can complete the quest.
func (e *Engine) SetValue(id string, v float64) Feedback {
	q := e.variantQuest(id, spirit.KindCalibration)
	if q == nil {
		return Feedback{}
	}
	q.value = clamp01(v)
	return Feedback{Outcome: OutcomeIdle}
}

// Evaluate classifies the current calibration value against the spirit's
// acceptance band. Band boundaries are inclusive: a value exactly at
// BandMin or BandMax counts as within. Within-band is the sole completing
// outcome; below and above leave the stage untouched.
func (e *Engine) Evaluate(id string) Feedback {
	q := e.variantQuest(id, spirit.KindCalibration)
	if q == nil {
		return Feedback{}
	}
	spec := q.spirit.Quest
	switch {
	case q.value < spec.BandMin:
		e.notify.Notify(events.Event{Type: events.EventChallengeFailed, SpiritID: id})
		return Feedback{Text: q.feedbackText("below"), Outcome: OutcomeBelow}
	case q.value > spec.BandMax:
		e.notify.Notify(events.Event{Type: events.EventChallengeFailed, SpiritID: id})
		return Feedback{Text: q.feedbackText("above"), Outcome: OutcomeAbove}
	default:
		return e.complete(q)
	}
}

// ResetValue restores the calibration midpoint. Stage is unaffected.
func (e *Engine) ResetValue(id string) Feedback {
	q := e.variantQuest(id, spirit.KindCalibration)
	if q == nil {
		return Feedback{}
	}
	q.value = calibrationInitial
	return Feedback{Text: q.feedbackText("reset"), Outcome: OutcomeIdle}
}

// Focus reduces instability by a fixed amount. Deterministic; the only
// counterweight the player has against drift.
func (e *Engine) Focus(id string) Feedback {
	q := e.variantQuest(id, spirit.KindSteady)
	if q == nil {
		return Feedback{}
	}
	q.instability = clamp01(q.instability - focusRelief)
	return Feedback{Text: q.feedbackText("focus"), Outcome: OutcomeIdle}
}

// Attempt succeeds only when the steady streak has reached the spirit's
// minimum length. Success excites instability upward and counts toward
// the progress target; failure nudges instability up by less.
func (e *Engine) Attempt(id string) Feedback {
	q := e.variantQuest(id, spirit.KindSteady)
	if q == nil {
		return Feedback{}
	}
	spec := q.spirit.Quest

	if q.streak < spec.StreakMin {
		q.instability = clamp01(q.instability + failureNudge)
		e.notify.Notify(events.Event{Type: events.EventChallengeFailed, SpiritID: id})
		return Feedback{Text: q.feedbackText("attempt_fail"), Outcome: OutcomeSteadyFail}
	}

	q.progress++
	q.instability = clamp01(q.instability + successExcitement)
	if q.progress >= spec.ProgressTarget {
		return e.complete(q)
	}
	return Feedback{
		Text:    fmt.Sprintf("%s (%d of %d)", q.feedbackText("attempt_success"), q.progress, spec.ProgressTarget),
		Outcome: OutcomeProgress,
	}
}

// Rest is cosmetic feedback. Drift continues on its own ticks.
func (e *Engine) Rest(id string) Feedback {
	q := e.variantQuest(id, spirit.KindSteady)
	if q == nil {
		return Feedback{}
	}
	return Feedback{Text: q.feedbackText("rest"), Outcome: OutcomeIdle}
}

// Place records one named placement toward the gathering target. Items
// are interchangeable for completion; only the count matters.
func (e *Engine) Place(id string, item string) Feedback {
	q := e.variantQuest(id, spirit.KindGathering)
	if q == nil {
		return Feedback{}
	}
	spec := q.spirit.Quest
	if item == "" {
		item = spec.Placements[q.count%len(spec.Placements)]
	}

	q.count++
	if q.count >= spec.CountTarget {
		fb := e.complete(q)
		fb.Text = fmt.Sprintf("You set down %s. %s", item, fb.Text)
		return fb
	}
	return Feedback{
		Text:    fmt.Sprintf("You set down %s. %s (%d of %d)", item, q.feedbackText("placed"), q.count, spec.CountTarget),
		Outcome: OutcomeProgress,
	}
}

// Tick advances the active steady challenge's instability by one
// pseudo-random step scaled to elapsed time. Idempotent per call: one
// tick, one step, elapsed clamped to maxTickElapsed.
func (e *Engine) Tick(elapsed time.Duration) {
	if e.activeID == "" {
		return
	}
	q := e.quests[e.activeID]
	if q == nil || q.stage != StageInProgress || q.spirit.Quest.Kind != spirit.KindSteady {
		return
	}

	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxTickElapsed {
		elapsed = maxTickElapsed
	}
	scale := float64(elapsed) / float64(baseTickInterval)

	step := (e.rng.Float64()*2 - 1) * driftStep * scale
	q.instability = clamp01(q.instability + step)

	if q.instability < steadyThreshold {
		q.streak++
	} else {
		q.streak = 0
	}
}

// complete transitions an InProgress quest to Complete, awards the
// fragment slot (idempotent at the ledger), releases the foreground, and
// emits the completion events.
func (e *Engine) complete(q *Quest) Feedback {
	q.stage = StageComplete
	if e.activeID == q.spirit.ID {
		e.activeID = ""
	}

	result := e.ledger.Award(q.spirit.FragmentSlot)
	e.logger.Debug("quest completed",
		"spirit", q.spirit.ID,
		"slot", q.spirit.FragmentSlot,
		"award", result,
		"warmth", e.ledger.Warmth(),
	)

	if q.spirit.Quest.Interactive() {
		e.notify.Notify(events.Event{Type: events.EventChallengeSucceeded, SpiritID: q.spirit.ID})
	}
	e.notify.Notify(events.Event{Type: events.EventQuestCompleted, SpiritID: q.spirit.ID})
	if result == ledger.AwardNewly {
		e.notify.Notify(events.Event{
			Type:     events.EventFragmentAwarded,
			SpiritID: q.spirit.ID,
			Data:     map[string]any{"slot": q.spirit.FragmentSlot, "warmth": e.ledger.Warmth()},
		})
	}

	text := q.feedbackText("within")
	if q.spirit.Quest.Kind != spirit.KindCalibration {
		text = q.feedbackText("complete")
	}
	return Feedback{Text: text, Outcome: OutcomeComplete, Completed: true}
}

// variantQuest fetches the quest if it is InProgress and of the expected
// kind; anything else is a silent no-op per the error taxonomy.
func (e *Engine) variantQuest(id string, kind spirit.QuestKind) *Quest {
	q := e.quests[id]
	if q == nil || q.stage != StageInProgress || q.spirit.Quest.Kind != kind {
		return nil
	}
	return q
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
