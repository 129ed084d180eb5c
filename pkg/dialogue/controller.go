// Package dialogue implements the top-level session state machine: it owns
// the active spirit, the queue of pending lines, the current choice branch,
// and the lock flag raised while a quest challenge owns the foreground.
package dialogue

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mhollis/hearthroom/pkg/events"
	"github.com/mhollis/hearthroom/pkg/ledger"
	"github.com/mhollis/hearthroom/pkg/quest"
	"github.com/mhollis/hearthroom/pkg/spirit"
)

// State is the controller's session state.
type State string

const (
	// StateClosed means no session is live.
	StateClosed State = "closed"
	// StatePresenting means a line is shown and advance moves to the next.
	StatePresenting State = "presenting"
	// StateChoicePending means the line queue is exhausted at a branch
	// point and the controller waits for a discrete choice.
	StateChoicePending State = "choice_pending"
	// StateChallengeActive means a quest challenge owns interaction and
	// the session is locked.
	StateChallengeActive State = "challenge_active"
)

// ChoiceKind identifies a branch at a choice point.
type ChoiceKind string

const (
	// ChoiceBegin starts the spirit's challenge for the first time.
	ChoiceBegin ChoiceKind = "begin"
	// ChoiceResume re-enters an in-progress challenge.
	ChoiceResume ChoiceKind = "resume"
	// ChoiceLinger stays without starting the challenge: one filler line,
	// then only a leave choice.
	ChoiceLinger ChoiceKind = "linger"
	// ChoiceLeave closes the session.
	ChoiceLeave ChoiceKind = "leave"
	// ChoiceAcknowledge is the single exit offered by the discover-only
	// shortcut after the fragment is awarded.
	ChoiceAcknowledge ChoiceKind = "acknowledge"
)

// Choice is one selectable branch.
type Choice struct {
	Kind  ChoiceKind
	Label string
}

// session is the transient state of one open dialogue. At most one exists;
// it is destroyed (fields cleared) on close.
type session struct {
	id       uuid.UUID
	spiritID string
	queue    []string
	line     string
	choices  []Choice
	open     bool
	// locked is an advisory re-entrancy guard raised while a challenge
	// owns the foreground. The whole system is single-threaded; this is
	// not a mutex, it only gates which operations are currently legal.
	locked   bool
	lingered bool
}

// Controller composes the spirit registry (read), the quest engine (drive),
// and the fragment ledger (award, via the engine). All state transitions
// happen inside its discrete operations or the periodic Tick.
type Controller struct {
	registry *spirit.Registry
	engine   *quest.Engine
	ledger   *ledger.Ledger
	notify   events.Notifier
	logger   *slog.Logger

	state   State
	session session

	hoveredID string
	// discovered latches true the first time any spirit is opened. Only
	// the hint-pulse collaborator reads it.
	discovered bool
}

// NewController wires the controller. A nil notifier discards events.
func NewController(registry *spirit.Registry, engine *quest.Engine, led *ledger.Ledger, notify events.Notifier, logger *slog.Logger) *Controller {
	if notify == nil {
		notify = events.Nop
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		registry: registry,
		engine:   engine,
		ledger:   led,
		notify:   notify,
		logger:   logger,
		state:    StateClosed,
	}
}

// State returns the current session state.
func (c *Controller) State() State { return c.state }

// Locked reports whether a challenge owns the foreground.
func (c *Controller) Locked() bool { return c.session.locked }

// Hover records the spirit under the pointer for the view snapshot.
// Pure input plumbing; no session transition.
func (c *Controller) Hover(id string) {
	c.hoveredID = id
}

// Open starts a fresh session for a spirit. A no-op if a locked session is
// already open for a different spirit, or the spirit is unknown. The line
// queue is loaded from the intro script until the quest is complete, then
// from the after script, and the first line is presented immediately.
func (c *Controller) Open(id string) {
	s := c.registry.Get(id)
	if s == nil {
		return
	}
	if c.state != StateClosed && c.session.locked && c.session.spiritID != id {
		return
	}

	script := s.Script.Intro
	if c.engine.Stage(id) == quest.StageComplete {
		script = s.Script.After
	}

	// A fresh session never starts inside a challenge.
	c.engine.Deactivate()
	c.session = session{
		id:       uuid.New(),
		spiritID: id,
		queue:    append([]string(nil), script...),
		open:     true,
	}
	c.state = StatePresenting
	c.discovered = true

	c.logger.Debug("session opened", "spirit", id, "session", c.session.id)
	c.notify.Notify(events.Event{Type: events.EventSessionOpened, SpiritID: id})
	c.presentNext()
}

// Advance pops and presents the next queued line. No-op while locked or at
// a choice point. On queue exhaustion it either branches into choices,
// runs the discover-only shortcut, or closes a finished conversation.
func (c *Controller) Advance() {
	if c.state != StatePresenting || c.session.locked {
		return
	}
	if len(c.session.queue) > 0 {
		c.presentNext()
		return
	}

	id := c.session.spiritID
	s := c.registry.Get(id)
	stage := c.engine.Stage(id)

	// Finished conversations just end.
	if stage == quest.StageComplete {
		c.Close()
		return
	}

	// Discover-only shortcut: intro exhausted, fragment awarded on the
	// spot, single acknowledge exit.
	if !s.Quest.Interactive() {
		c.engine.CompleteDiscovery(id)
		c.offerChoices([]Choice{
			{Kind: ChoiceAcknowledge, Label: "Smile and nod"},
		})
		return
	}

	// After lingering, only leaving remains.
	if c.session.lingered {
		c.offerChoices([]Choice{
			{Kind: ChoiceLeave, Label: "Step away quietly"},
		})
		return
	}

	begin := Choice{Kind: ChoiceBegin, Label: "Help " + s.Name}
	if stage == quest.StageInProgress {
		begin = Choice{Kind: ChoiceResume, Label: "Try again with " + s.Name}
	}
	c.offerChoices([]Choice{
		begin,
		{Kind: ChoiceLinger, Label: "Stay a while"},
		{Kind: ChoiceLeave, Label: "Step away quietly"},
	})
}

// SelectChoice executes the branch at the given index. Only legal at a
// choice point; out-of-range indexes are ignored.
func (c *Controller) SelectChoice(index int) {
	if c.state != StateChoicePending || index < 0 || index >= len(c.session.choices) {
		return
	}
	choice := c.session.choices[index]
	id := c.session.spiritID

	switch choice.Kind {
	case ChoiceBegin:
		if c.engine.Start(id) {
			c.enterChallenge()
		}
	case ChoiceResume:
		if c.engine.Resume(id) {
			c.enterChallenge()
		}
	case ChoiceLinger:
		c.session.lingered = true
		c.session.choices = nil
		c.session.queue = []string{c.fillerLine(id)}
		c.state = StatePresenting
		c.presentNext()
	case ChoiceLeave, ChoiceAcknowledge:
		c.Close()
	}
}

// Close ends the session from any state. The lock is released
// unconditionally and the quest stage is left exactly as it was; an
// in-flight challenge's transient progress dies with the session.
func (c *Controller) Close() {
	if c.state == StateClosed {
		return
	}
	id := c.session.spiritID
	c.engine.Deactivate()
	c.session = session{}
	c.state = StateClosed
	c.logger.Debug("session closed", "spirit", id)
	c.notify.Notify(events.Event{Type: events.EventSessionClosed, SpiritID: id})
}

// Tick forwards elapsed time to the quest engine. Callable independently
// of any drawing step so the drift is unit-testable without a display.
func (c *Controller) Tick(elapsed time.Duration) {
	c.engine.Tick(elapsed)
}

// Challenge actions. Each is legal only while the challenge owns the
// foreground; otherwise a silent no-op. Feedback text replaces the current
// line, and completion unlocks the session and flows into the after script.

// SetValue stores a calibration value.
func (c *Controller) SetValue(v float64) quest.Feedback {
	return c.challengeAction(func(id string) quest.Feedback { return c.engine.SetValue(id, v) })
}

// Evaluate classifies the calibration value against the acceptance band.
func (c *Controller) Evaluate() quest.Feedback {
	return c.challengeAction(c.engine.Evaluate)
}

// ResetValue restores the calibration midpoint.
func (c *Controller) ResetValue() quest.Feedback {
	return c.challengeAction(c.engine.ResetValue)
}

// Focus steadies the drifting instability.
func (c *Controller) Focus() quest.Feedback {
	return c.challengeAction(c.engine.Focus)
}

// Attempt makes a timing attempt against the steady streak.
func (c *Controller) Attempt() quest.Feedback {
	return c.challengeAction(c.engine.Attempt)
}

// Rest asks for cosmetic steady-variant feedback.
func (c *Controller) Rest() quest.Feedback {
	return c.challengeAction(c.engine.Rest)
}

// Place records one named gathering placement.
func (c *Controller) Place(item string) quest.Feedback {
	return c.challengeAction(func(id string) quest.Feedback { return c.engine.Place(id, item) })
}

func (c *Controller) challengeAction(fn func(string) quest.Feedback) quest.Feedback {
	if c.state != StateChallengeActive {
		return quest.Feedback{}
	}
	fb := fn(c.session.spiritID)
	if fb.Text != "" {
		c.session.line = fb.Text
		c.notify.Notify(events.Event{Type: events.EventLinePresented, SpiritID: c.session.spiritID})
	}
	if fb.Completed {
		c.finishChallenge()
	}
	return fb
}

// enterChallenge hands the foreground to the quest engine.
func (c *Controller) enterChallenge() {
	c.session.locked = true
	c.session.choices = nil
	c.state = StateChallengeActive
}

// finishChallenge releases the lock and flows into the after script.
func (c *Controller) finishChallenge() {
	s := c.registry.Get(c.session.spiritID)
	c.session.locked = false
	c.session.queue = append([]string(nil), s.Script.After...)
	c.state = StatePresenting
}

func (c *Controller) presentNext() {
	if len(c.session.queue) == 0 {
		return
	}
	c.session.line = c.session.queue[0]
	c.session.queue = c.session.queue[1:]
	c.notify.Notify(events.Event{Type: events.EventLinePresented, SpiritID: c.session.spiritID})
}

func (c *Controller) offerChoices(choices []Choice) {
	c.session.choices = choices
	c.state = StateChoicePending
	c.notify.Notify(events.Event{Type: events.EventChoiceOffered, SpiritID: c.session.spiritID})
}

func (c *Controller) fillerLine(id string) string {
	s := c.registry.Get(id)
	if len(s.Script.Filler) > 0 {
		return s.Script.Filler[0]
	}
	return s.Name + " seems content just to have the company."
}
