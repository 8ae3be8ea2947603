package cde

import "github.com/jaguago/jaguago/pkg/hazard"

// entry is one HazardMap slot: the registered hazard plus whether it is
// currently active (a Lazy-deregistered hazard stays present but
// inactive until Flush removes it).
type entry struct {
	haz    hazard.Hazard
	active bool
}

// HazardMap is the engine's registry of record: every hazard ever
// registered and not yet flushed, keyed by its stable Key and iterable in
// registration order.
type HazardMap struct {
	byKey map[hazard.Key]entry
	order []hazard.Key
	next  hazard.Key
}

// NewHazardMap returns an empty HazardMap.
func NewHazardMap() *HazardMap {
	return &HazardMap{byKey: make(map[hazard.Key]entry)}
}

// insert registers h under a freshly minted key and returns it.
func (m *HazardMap) insert(h hazard.Hazard) hazard.Key {
	m.next++
	key := m.next
	h.Key = key
	m.byKey[key] = entry{haz: h, active: true}
	m.order = append(m.order, key)
	return key
}

// get returns the hazard registered under key, if still present
// (regardless of active state).
func (m *HazardMap) get(key hazard.Key) (hazard.Hazard, bool) {
	e, ok := m.byKey[key]
	return e.haz, ok
}

// setActive flips the active flag for key, reporting whether key was
// found.
func (m *HazardMap) setActive(key hazard.Key, active bool) bool {
	e, ok := m.byKey[key]
	if !ok {
		return false
	}
	e.active = active
	m.byKey[key] = e
	return true
}

// delete removes key entirely, reporting whether it was found.
func (m *HazardMap) delete(key hazard.Key) bool {
	if _, ok := m.byKey[key]; !ok {
		return false
	}
	delete(m.byKey, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// active returns every active hazard, in registration order.
func (m *HazardMap) active() []hazard.Hazard {
	out := make([]hazard.Hazard, 0, len(m.order))
	for _, k := range m.order {
		if e := m.byKey[k]; e.active {
			out = append(out, e.haz)
		}
	}
	return out
}

// flush drops every inactive entry, reporting how many were removed.
func (m *HazardMap) flush() int {
	removed := 0
	kept := m.order[:0]
	for _, k := range m.order {
		e := m.byKey[k]
		if e.active {
			kept = append(kept, k)
			continue
		}
		delete(m.byKey, k)
		removed++
	}
	m.order = kept
	return removed
}

// clone returns a deep copy of m, used by Engine.Snapshot.
func (m *HazardMap) clone() *HazardMap {
	out := &HazardMap{
		byKey: make(map[hazard.Key]entry, len(m.byKey)),
		order: append([]hazard.Key(nil), m.order...),
		next:  m.next,
	}
	for k, v := range m.byKey {
		out.byKey[k] = v
	}
	return out
}

// Len returns the number of hazards still present (active or inactive).
func (m *HazardMap) Len() int {
	return len(m.order)
}
