package events

// EventType classifies a notification emitted by the core engine.
type EventType string

const (
	EventSessionOpened      EventType = "session.opened"
	EventSessionClosed      EventType = "session.closed"
	EventLinePresented      EventType = "line.presented"
	EventChoiceOffered      EventType = "choice.offered"
	EventChallengeStarted   EventType = "challenge.started"
	EventChallengeSucceeded EventType = "challenge.succeeded"
	EventChallengeFailed    EventType = "challenge.failed"
	EventQuestCompleted     EventType = "quest.completed"
	EventFragmentAwarded    EventType = "fragment.awarded"
)

// Event is a discrete, fire-and-forget notification. Sinks consume events
// for feedback cues (audio, haptics, logging); they never feed state back
// into the engine.
type Event struct {
	Type     EventType      `json:"type"`
	SpiritID string         `json:"spirit_id,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// Notifier receives events from the engine. Implementations must not block
// and must not fail in a way visible to the caller; a sink that cannot
// deliver a cue drops it.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) { f(e) }

// Nop is a Notifier that discards every event.
var Nop Notifier = NotifierFunc(func(Event) {})

// Multi fans a single event out to several sinks in order.
func Multi(sinks ...Notifier) Notifier {
	return NotifierFunc(func(e Event) {
		for _, s := range sinks {
			if s != nil {
				s.Notify(e)
			}
		}
	})
}
