package quest

import (
	"github.com/mhollis/hearthroom/pkg/spirit"
)

// Stage is the lifecycle of a single quest. Transitions are one-way:
// NotStarted -> InProgress -> Complete. Complete is terminal.
type Stage string

const (
	StageNotStarted Stage = "not_started"
	StageInProgress Stage = "in_progress"
	StageComplete   Stage = "complete"
)

// Outcome classifies the result of a player action for feedback routing.
// No outcome is an error; failed attempts are narrative, not faults.
type Outcome string

const (
	// OutcomeNone means the action was ignored (wrong stage, unknown quest).
	OutcomeNone Outcome = ""
	// OutcomeBelow and OutcomeAbove classify a calibration evaluation
	// outside the acceptance band.
	OutcomeBelow Outcome = "below"
	OutcomeAbove Outcome = "above"
	// OutcomeSteadyFail is an attempt made before the streak was long enough.
	OutcomeSteadyFail Outcome = "steady_fail"
	// OutcomeProgress is a step toward completion that did not finish it.
	OutcomeProgress Outcome = "progress"
	// OutcomeIdle is cosmetic feedback with no stage-relevant effect.
	OutcomeIdle Outcome = "idle"
	// OutcomeComplete is the action that transitioned the quest to Complete.
	OutcomeComplete Outcome = "complete"
)

// Feedback is the narrative result of a player action.
type Feedback struct {
	Text      string
	Outcome   Outcome
	Completed bool // true only on the action that completed the quest
}

// Quest is the mutable per-spirit challenge state. Variant fields are
// meaningful only while InProgress; Start and Resume reinitialize them.
type Quest struct {
	spirit *spirit.Spirit
	stage  Stage

	// Calibration variant.
	value float64

	// Steady variant.
	instability float64
	streak      int
	progress    int

	// Gathering variant.
	count int
}

// Spirit returns the catalog entry this quest belongs to.
func (q *Quest) Spirit() *spirit.Spirit { return q.spirit }

// Stage returns the current lifecycle stage.
func (q *Quest) Stage() Stage { return q.stage }

// Value returns the calibration variant's current value.
func (q *Quest) Value() float64 { return q.value }

// Instability returns the steady variant's drifting instability.
func (q *Quest) Instability() float64 { return q.instability }

// Streak returns the steady variant's consecutive-steady-tick count.
func (q *Quest) Streak() int { return q.streak }

// Progress returns the steady variant's successful-attempt count.
func (q *Quest) Progress() int { return q.progress }

// Count returns the gathering variant's placement count.
func (q *Quest) Count() int { return q.count }

// resetTransient reinitializes the variant's attempt-local state. Stage is
// untouched; partial progress within one attempt does not survive a close.
func (q *Quest) resetTransient() {
	switch q.spirit.Quest.Kind {
	case spirit.KindCalibration:
		q.value = calibrationInitial
	case spirit.KindSteady:
		q.instability = steadyInitial
		q.streak = 0
		q.progress = 0
	case spirit.KindGathering:
		q.count = 0
	}
}

// feedbackText resolves a variant feedback string from the spirit's
// authored set, falling back to a generic default.
func (q *Quest) feedbackText(key string) string {
	if text, ok := q.spirit.Quest.Feedback[key]; ok {
		return text
	}
	if text, ok := defaultFeedback[key]; ok {
		return text
	}
	return ""
}

var defaultFeedback = map[string]string{
	"below":           "Not quite enough yet.",
	"above":           "That's too much. Gently.",
	"within":          "There. Just right.",
	"reset":           "You start over, unhurried.",
	"focus":           "You breathe. Things settle a little.",
	"attempt_success": "Yes! That held.",
	"attempt_fail":    "Too soon. Wait for the stillness.",
	"rest":            "You rest a moment. Nothing needs you yet.",
	"placed":          "That one found its place.",
	"complete":        "Done. Something in the room relaxes.",
}
