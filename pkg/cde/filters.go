package cde

import "github.com/jaguago/jaguago/pkg/hazard"

// EntityFilterForKeys resolves a set of registered hazard keys to their
// entities and builds an EntityFilter that ignores them. This is how a
// caller holding Keys (rather than Entities) builds a "ignore these
// specific registrations" filter — e.g. re-checking a tentative move of
// an already-placed item against everything except its own prior
// registration.
func (e *Engine) EntityFilterForKeys(keys ...hazard.Key) hazard.EntityFilter {
	entities := make([]hazard.Entity, 0, len(keys))
	for _, k := range keys {
		if haz, ok := e.hazards.get(k); ok {
			entities = append(entities, haz.Entity)
		}
	}
	return hazard.NewEntityFilter(entities...)
}
