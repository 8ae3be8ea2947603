package hazard

import "github.com/jaguago/jaguago/pkg/geo"

// Hazard is one registry entry in a CDE: the tagged entity it represents,
// the shape that induces it, and which side of that shape is dangerous.
type Hazard struct {
	Key    Key
	Entity Entity
	Shape  *geo.SimplePolygon
	Side   Side
}

// Filter is the capability "can answer whether an entity is irrelevant to
// the current query" — not an inheritance hierarchy. Anything satisfying
// this interface can gate a CDE query, including a Collector (which treats
// already-collected entities as irrelevant for the remainder of one
// traversal).
type Filter interface {
	IsIrrelevant(e Entity) bool
}

// NoneFilter admits every hazard.
type NoneFilter struct{}

// IsIrrelevant always returns false.
func (NoneFilter) IsIrrelevant(Entity) bool { return false }

// ContainerOnlyFilter ignores every placed item, admitting only
// container-induced hazards (exterior, holes, quality zones). Used when a
// query only cares about static container geometry.
type ContainerOnlyFilter struct{}

// IsIrrelevant reports true for any KindPlacedItem entity.
func (ContainerOnlyFilter) IsIrrelevant(e Entity) bool {
	return e.Kind == KindPlacedItem
}

// EntityFilter ignores hazards induced by a specific set of entities. This
// is the "ignore myself" filter used when re-checking a tentative move of
// an already-placed item against its own old hazard.
type EntityFilter struct {
	Entities []Entity
}

// NewEntityFilter builds an EntityFilter from the given entities.
func NewEntityFilter(entities ...Entity) EntityFilter {
	return EntityFilter{Entities: entities}
}

// IsIrrelevant reports whether e equals any filtered entity.
func (f EntityFilter) IsIrrelevant(e Entity) bool {
	for _, ignored := range f.Entities {
		if e.Equal(ignored) {
			return true
		}
	}
	return false
}

// MinQualityFilter ignores quality zones whose quality is at or above
// Cutoff — i.e. zones an item with min-quality requirement Cutoff is
// allowed to be placed in.
type MinQualityFilter struct {
	Cutoff int
}

// IsIrrelevant reports whether e is a quality zone of quality >= Cutoff.
func (f MinQualityFilter) IsIrrelevant(e Entity) bool {
	return e.Kind == KindInferiorQualityZone && e.Quality >= f.Cutoff
}

// CombinedFilter ORs together multiple filters: an entity is irrelevant if
// any component filter says so.
type CombinedFilter struct {
	Filters []Filter
}

// Combine builds a CombinedFilter from the given filters.
func Combine(filters ...Filter) CombinedFilter {
	return CombinedFilter{Filters: filters}
}

// IsIrrelevant reports whether any component filter deems e irrelevant.
func (f CombinedFilter) IsIrrelevant(e Entity) bool {
	for _, sub := range f.Filters {
		if sub.IsIrrelevant(e) {
			return true
		}
	}
	return false
}

// Collector extends Filter with the ability to record entities discovered
// during one collision-collection traversal. Implementing Filter via
// "already collected == irrelevant" means a single traversal never
// revisits (or double-reports) the same entity.
type Collector interface {
	Filter

	// Collect records e as discovered, in traversal order. Collecting an
	// already-collected entity is a no-op.
	Collect(e Entity)

	// Entities returns the collected entities in discovery order.
	Entities() []Entity
}

// BasicCollector is the straightforward slice-backed Collector
// implementation used by collect-style queries.
type BasicCollector struct {
	seen     map[Entity]struct{}
	order    []Entity
}

// NewBasicCollector returns an empty BasicCollector.
func NewBasicCollector() *BasicCollector {
	return &BasicCollector{seen: make(map[Entity]struct{})}
}

// IsIrrelevant reports whether e has already been collected.
func (c *BasicCollector) IsIrrelevant(e Entity) bool {
	_, ok := c.seen[e]
	return ok
}

// Collect records e if it hasn't been seen already, preserving discovery
// order.
func (c *BasicCollector) Collect(e Entity) {
	if _, ok := c.seen[e]; ok {
		return
	}
	c.seen[e] = struct{}{}
	c.order = append(c.order, e)
}

// Entities returns the collected entities in discovery order.
func (c *BasicCollector) Entities() []Entity {
	return c.order
}
