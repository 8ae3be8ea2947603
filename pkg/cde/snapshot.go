package cde

// Snapshot is an immutable capture of an Engine's hazard registry at a
// point in time. It holds a clone of the hazard map, not the tree: the
// tree is cheap to rebuild lazily from whichever hazard map is current
// (see Engine.ensureFresh), so Restore only needs to replay the captured
// registrations rather than also carry tree state around.
type Snapshot struct {
	hazards *HazardMap
}

// Snapshot captures the engine's current hazard registry.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{hazards: e.hazards.clone()}
}

// Restore replaces the engine's hazard registry with the one captured in
// snap. The tree is marked stale and rebuilt on the next query.
func (e *Engine) Restore(snap Snapshot) {
	next := e.hazards.next
	e.hazards = snap.hazards.clone()
	if e.hazards.next < next {
		e.hazards.next = next
	}
	e.dirty = true
}

// Clone returns an independent engine over the same bbox and config, with
// every currently-registered hazard copied into it. A Layout uses this to
// give itself its own mutable CDE seeded from a Container's base, so
// placing or removing items in one never affects the other.
func (e *Engine) Clone() *Engine {
	return &Engine{
		bbox:    e.bbox,
		cfg:     e.cfg,
		hazards: e.hazards.clone(),
		dirty:   true,
	}
}
