package spirit

import (
	"fmt"
	"regexp"
)

// Rect is an axis-aligned hit-region in scene coordinates. Hit-testing
// itself belongs to the input collaborator; the registry only carries the
// geometry as data.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Contains reports whether a scene-space point falls inside the region.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Script holds a spirit's narrative line sequences. Lines are presented in
// authoring order, never reordered.
type Script struct {
	// Intro is told while the spirit's quest is not yet complete.
	Intro []string `json:"intro"`
	// After is told once the quest is complete.
	After []string `json:"after"`
	// Filler is told when the player lingers without starting the challenge.
	Filler []string `json:"filler,omitempty"`
}

// QuestKind selects the challenge variant attached to a spirit.
type QuestKind string

const (
	// KindDiscover completes the moment the intro is exhausted. No
	// interactive challenge; finding the spirit is the whole quest.
	KindDiscover QuestKind = "discover"
	// KindCalibration asks the player to settle a continuous value inside
	// an acceptance band.
	KindCalibration QuestKind = "calibration"
	// KindSteady is a timing skill check against a drifting instability value.
	KindSteady QuestKind = "steady"
	// KindGathering counts named placements toward a fixed target.
	KindGathering QuestKind = "gathering"
)

// QuestSpec describes a spirit's challenge: the variant plus its tuning
// parameters and narrative feedback strings. Parameters unused by the
// variant are left zero.
type QuestSpec struct {
	Kind QuestKind `json:"kind"`

	// Calibration parameters.
	BandMin float64 `json:"band_min,omitempty"`
	BandMax float64 `json:"band_max,omitempty"`

	// Steady parameters.
	StreakMin      int `json:"streak_min,omitempty"`
	ProgressTarget int `json:"progress_target,omitempty"`

	// Gathering parameters.
	CountTarget int      `json:"count_target,omitempty"`
	Placements  []string `json:"placements,omitempty"`

	// Narrative feedback. Keys are variant-specific outcome names; the
	// quest engine falls back to generic strings for missing keys.
	Feedback map[string]string `json:"feedback,omitempty"`
}

// Spirit is one hidden character bound to a fixed scene region. Static,
// created at program start, never mutated.
type Spirit struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Region          Rect      `json:"region"`
	AccentPrimary   string    `json:"accent_primary"`
	AccentSecondary string    `json:"accent_secondary"`
	Icon            string    `json:"icon"`
	FragmentSlot    int       `json:"fragment_slot"`
	Quest           QuestSpec `json:"quest"`
	Script          Script    `json:"script"`
}

var idPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Validate checks a single spirit's internal consistency. Slot uniqueness
// is a registry-level concern.
func (s *Spirit) Validate() error {
	if !idPattern.MatchString(s.ID) {
		return fmt.Errorf("spirit ID %q must be lowercase snake_case", s.ID)
	}
	if s.Name == "" {
		return fmt.Errorf("spirit %s: name is required", s.ID)
	}
	if s.Region.W <= 0 || s.Region.H <= 0 {
		return fmt.Errorf("spirit %s: region must have positive size", s.ID)
	}
	if len(s.Script.Intro) == 0 {
		return fmt.Errorf("spirit %s: intro script is required", s.ID)
	}
	if len(s.Script.After) == 0 {
		return fmt.Errorf("spirit %s: after script is required", s.ID)
	}
	return s.Quest.validate(s.ID)
}

func (q *QuestSpec) validate(spiritID string) error {
	switch q.Kind {
	case KindDiscover:
		return nil
	case KindCalibration:
		if q.BandMin < 0 || q.BandMax > 1 || q.BandMin >= q.BandMax {
			return fmt.Errorf("spirit %s: calibration band [%v,%v] must satisfy 0 <= min < max <= 1",
				spiritID, q.BandMin, q.BandMax)
		}
	case KindSteady:
		if q.StreakMin < 1 {
			return fmt.Errorf("spirit %s: steady quest needs streak_min >= 1", spiritID)
		}
		if q.ProgressTarget < 1 {
			return fmt.Errorf("spirit %s: steady quest needs progress_target >= 1", spiritID)
		}
	case KindGathering:
		if q.CountTarget < 1 {
			return fmt.Errorf("spirit %s: gathering quest needs count_target >= 1", spiritID)
		}
		if len(q.Placements) == 0 {
			return fmt.Errorf("spirit %s: gathering quest needs at least one placement", spiritID)
		}
	default:
		return fmt.Errorf("spirit %s: unknown quest kind %q", spiritID, q.Kind)
	}
	return nil
}

// Interactive reports whether the quest has a player-driven challenge,
// as opposed to the discover-only shortcut.
func (q *QuestSpec) Interactive() bool {
	return q.Kind != KindDiscover
}
