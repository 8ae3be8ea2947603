package quadtree

import "github.com/jaguago/jaguago/pkg/geo"

// PresenceKind is the three-way presence of a hazard at a quadtree node:
// whether the node's rectangle is entirely on the hazard's dangerous side,
// partially crossed by its boundary, or entirely on the safe side.
type PresenceKind int

const (
	// PresenceEntire means the node's rectangle lies entirely on the
	// hazard's dangerous side: any placement overlapping this node
	// collides with the hazard.
	PresenceEntire PresenceKind = iota
	// PresencePartial means the hazard's boundary crosses the node's
	// rectangle; Edges holds the subset of the hazard's edges that do.
	PresencePartial
	// PresenceNone means the node's rectangle lies entirely on the
	// hazard's safe side.
	PresenceNone
)

// strength orders presence kinds for the strongest-first invariant:
// Entire > Partial > None.
func (k PresenceKind) strength() int {
	switch k {
	case PresenceEntire:
		return 2
	case PresencePartial:
		return 1
	default:
		return 0
	}
}

// Presence is the per-node projection of one hazard.
type Presence struct {
	Kind  PresenceKind
	Edges []geo.Edge // only meaningful when Kind == PresencePartial
}
