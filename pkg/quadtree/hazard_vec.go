package quadtree

import "github.com/jaguago/jaguago/pkg/hazard"

// QTHazard is one node's projection of a registered hazard.
type QTHazard struct {
	Key      hazard.Key
	Entity   hazard.Entity
	Presence Presence
	Active   bool
}

// HazardVec is a vector of QTHazard always kept sorted in descending
// strength order: active hazards before inactive ones, and within each
// group Entire before Partial before None. This lets Strongest return the
// first admitted entry in O(activeCount) rather than scanning everything.
type HazardVec struct {
	hazards []QTHazard
	nActive int
}

// NewHazardVec returns an empty HazardVec.
func NewHazardVec() *HazardVec {
	return &HazardVec{}
}

// less reports whether a sorts strictly before b in the descending
// strength order (active desc, then presence Entire>Partial>None).
func less(a, b QTHazard) bool {
	if a.Active != b.Active {
		return a.Active // active (true) sorts before inactive (false)
	}
	return a.Presence.Kind.strength() > b.Presence.Kind.strength()
}

// Add inserts haz at its sorted position.
func (v *HazardVec) Add(haz QTHazard) {
	pos := v.searchInsertPos(haz)
	v.hazards = append(v.hazards, QTHazard{})
	copy(v.hazards[pos+1:], v.hazards[pos:])
	v.hazards[pos] = haz
	if haz.Active {
		v.nActive++
	}
}

func (v *HazardVec) searchInsertPos(haz QTHazard) int {
	lo, hi := 0, len(v.hazards)
	for lo < hi {
		mid := (lo + hi) / 2
		if less(v.hazards[mid], haz) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Remove deletes the projection for the given key, if present, and
// reports whether it was found.
func (v *HazardVec) Remove(key hazard.Key) bool {
	for i, h := range v.hazards {
		if h.Key == key {
			if h.Active {
				v.nActive--
			}
			v.hazards = append(v.hazards[:i], v.hazards[i+1:]...)
			return true
		}
	}
	return false
}

// Strongest returns the first active, non-filtered hazard in the vector,
// or false if none qualifies.
func (v *HazardVec) Strongest(filter hazard.Filter) (QTHazard, bool) {
	if v.nActive == 0 {
		return QTHazard{}, false
	}
	if filter == nil {
		return v.hazards[0], true
	}
	for i := 0; i < v.nActive; i++ {
		if !filter.IsIrrelevant(v.hazards[i].Entity) {
			return v.hazards[i], true
		}
	}
	return QTHazard{}, false
}

// ActiveHazards returns the active prefix of the vector.
func (v *HazardVec) ActiveHazards() []QTHazard {
	return v.hazards[:v.nActive]
}

// AllHazards returns every projection, active and inactive.
func (v *HazardVec) AllHazards() []QTHazard {
	return v.hazards
}

// Get returns the projection registered under key, if present.
func (v *HazardVec) Get(key hazard.Key) (QTHazard, bool) {
	for _, h := range v.hazards {
		if h.Key == key {
			return h, true
		}
	}
	return QTHazard{}, false
}

// SetActive flips the active flag for the projection under key and
// re-sorts it into position. Returns false if key isn't present.
func (v *HazardVec) SetActive(key hazard.Key, active bool) bool {
	for i, h := range v.hazards {
		if h.Key == key {
			if h.Active == active {
				return true
			}
			v.hazards = append(v.hazards[:i], v.hazards[i+1:]...)
			if h.Active {
				v.nActive--
			}
			h.Active = active
			v.Add(h)
			return true
		}
	}
	return false
}

// Len returns the total number of projections, active and inactive.
func (v *HazardVec) Len() int {
	return len(v.hazards)
}

// HasOnlyEntireHazards reports whether every projection in the vector has
// Entire presence — a leaf in this state never needs edge-level tests.
func (v *HazardVec) HasOnlyEntireHazards() bool {
	for _, h := range v.hazards {
		if h.Presence.Kind != PresenceEntire {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of v.
func (v *HazardVec) Clone() *HazardVec {
	out := &HazardVec{nActive: v.nActive, hazards: make([]QTHazard, len(v.hazards))}
	copy(out.hazards, v.hazards)
	return out
}
