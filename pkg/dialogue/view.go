package dialogue

import (
	"github.com/mhollis/hearthroom/pkg/ledger"
	"github.com/mhollis/hearthroom/pkg/quest"
	"github.com/mhollis/hearthroom/pkg/spirit"
)

// View is the read-only snapshot the rendering collaborator polls every
// frame. The core never calls into rendering; rendering reads this.
type View struct {
	State      State           `json:"state"`
	Spirits    []SpiritView    `json:"spirits"`
	Session    *SessionView    `json:"session,omitempty"`
	Ledger     ledger.Snapshot `json:"ledger"`
	Discovered bool            `json:"discovered"`
}

// SpiritView is the per-spirit render state.
type SpiritView struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Icon            string      `json:"icon"`
	AccentPrimary   string      `json:"accent_primary"`
	AccentSecondary string      `json:"accent_secondary"`
	Region          spirit.Rect `json:"region"`
	Hovered         bool        `json:"hovered"`
	Complete        bool        `json:"complete"`
	Stage           quest.Stage `json:"stage"`
}

// SessionView is the active dialogue's render state.
type SessionView struct {
	SpiritID  string         `json:"spirit_id"`
	Name      string         `json:"name"`
	Line      string         `json:"line"`
	Choices   []ChoiceView   `json:"choices,omitempty"`
	Locked    bool           `json:"locked"`
	Challenge *ChallengeView `json:"challenge,omitempty"`
}

// ChoiceView is one selectable branch.
type ChoiceView struct {
	Kind  ChoiceKind `json:"kind"`
	Label string     `json:"label"`
}

// ChallengeView carries the active variant's progress fields.
type ChallengeView struct {
	Kind spirit.QuestKind `json:"kind"`

	// Calibration.
	Value   float64 `json:"value,omitempty"`
	BandMin float64 `json:"band_min,omitempty"`
	BandMax float64 `json:"band_max,omitempty"`

	// Steady.
	Instability    float64 `json:"instability,omitempty"`
	Streak         int     `json:"streak,omitempty"`
	StreakMin      int     `json:"streak_min,omitempty"`
	Progress       int     `json:"progress,omitempty"`
	ProgressTarget int     `json:"progress_target,omitempty"`

	// Gathering.
	Count       int      `json:"count,omitempty"`
	CountTarget int      `json:"count_target,omitempty"`
	Placements  []string `json:"placements,omitempty"`
}

// View builds the current snapshot.
func (c *Controller) View() View {
	v := View{
		State:      c.state,
		Spirits:    make([]SpiritView, 0, c.registry.Len()),
		Ledger:     c.ledger.Snapshot(),
		Discovered: c.discovered,
	}

	for _, s := range c.registry.All() {
		stage := c.engine.Stage(s.ID)
		v.Spirits = append(v.Spirits, SpiritView{
			ID:              s.ID,
			Name:            s.Name,
			Icon:            s.Icon,
			AccentPrimary:   s.AccentPrimary,
			AccentSecondary: s.AccentSecondary,
			Region:          s.Region,
			Hovered:         s.ID == c.hoveredID,
			Complete:        stage == quest.StageComplete,
			Stage:           stage,
		})
	}

	if c.state != StateClosed {
		s := c.registry.Get(c.session.spiritID)
		sv := &SessionView{
			SpiritID: c.session.spiritID,
			Name:     s.Name,
			Line:     c.session.line,
			Locked:   c.session.locked,
		}
		for _, choice := range c.session.choices {
			sv.Choices = append(sv.Choices, ChoiceView{Kind: choice.Kind, Label: choice.Label})
		}
		if c.state == StateChallengeActive {
			sv.Challenge = c.challengeView(c.session.spiritID)
		}
		v.Session = sv
	}

	return v
}

func (c *Controller) challengeView(id string) *ChallengeView {
	q := c.engine.Quest(id)
	if q == nil {
		return nil
	}
	spec := q.Spirit().Quest
	cv := &ChallengeView{Kind: spec.Kind}
	switch spec.Kind {
	case spirit.KindCalibration:
		cv.Value = q.Value()
		cv.BandMin = spec.BandMin
		cv.BandMax = spec.BandMax
	case spirit.KindSteady:
		cv.Instability = q.Instability()
		cv.Streak = q.Streak()
		cv.StreakMin = spec.StreakMin
		cv.Progress = q.Progress()
		cv.ProgressTarget = spec.ProgressTarget
	case spirit.KindGathering:
		cv.Count = q.Count()
		cv.CountTarget = spec.CountTarget
		cv.Placements = spec.Placements
	}
	return cv
}
