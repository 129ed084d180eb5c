package spirit

import (
	"fmt"
)

// Registry is the immutable catalog of a room's spirits. Order is the
// authoring order and is preserved for rendering.
type Registry struct {
	spirits []*Spirit
	byID    map[string]*Spirit
}

// NewRegistry builds a registry from an ordered spirit list. It validates
// each spirit and the cross-spirit invariants: unique IDs and fragment
// slots forming exactly 0..n-1.
func NewRegistry(spirits []*Spirit) (*Registry, error) {
	if len(spirits) == 0 {
		return nil, fmt.Errorf("registry needs at least one spirit")
	}

	byID := make(map[string]*Spirit, len(spirits))
	slots := make(map[int]string, len(spirits))
	for _, s := range spirits {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate spirit ID %q", s.ID)
		}
		byID[s.ID] = s

		if s.FragmentSlot < 0 || s.FragmentSlot >= len(spirits) {
			return nil, fmt.Errorf("spirit %s: fragment slot %d out of range [0,%d)",
				s.ID, s.FragmentSlot, len(spirits))
		}
		if other, taken := slots[s.FragmentSlot]; taken {
			return nil, fmt.Errorf("spirits %s and %s share fragment slot %d",
				other, s.ID, s.FragmentSlot)
		}
		slots[s.FragmentSlot] = s.ID
	}

	return &Registry{spirits: spirits, byID: byID}, nil
}

// Get returns the spirit with the given ID, or nil.
func (r *Registry) Get(id string) *Spirit {
	return r.byID[id]
}

// All returns the spirits in authoring order. Callers must not mutate.
func (r *Registry) All() []*Spirit {
	return r.spirits
}

// Len returns the number of spirits in the room.
func (r *Registry) Len() int {
	return len(r.spirits)
}

// SlotCount returns the size the fragment ledger must be created with.
func (r *Registry) SlotCount() int {
	return len(r.spirits)
}

// SpiritAt returns the first spirit whose region contains the scene-space
// point, or nil. Convenience for input collaborators; the core never calls it.
func (r *Registry) SpiritAt(x, y float64) *Spirit {
	for _, s := range r.spirits {
		if s.Region.Contains(x, y) {
			return s
		}
	}
	return nil
}
