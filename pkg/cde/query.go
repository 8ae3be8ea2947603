package cde

import (
	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/hazard"
	"github.com/jaguago/jaguago/pkg/quadtree"
	"github.com/jaguago/jaguago/pkg/surrogate"
)

// DetectPolyCollision reports whether poly collides with any registered,
// filter-admitted hazard, along with the first colliding entity found.
// The quadtree prunes subtrees whose strongest admitted hazard is None;
// an Entire hit is confirmed against poly's actual extent (not just its
// bbox) before being reported, and a Partial hit (or a leaf) falls
// through to an exact test against the hazard's real shape.
func (e *Engine) DetectPolyCollision(poly *geo.SimplePolygon, filter hazard.Filter) (bool, hazard.Entity) {
	e.ensureFresh()
	if !e.bbox.ContainsRect(poly.BBox()) {
		if ent, ok := e.outsideHazard(filter); ok {
			return true, ent
		}
	}
	return e.detectPolyNode(e.tree.Root, poly, filter)
}

// outsideHazard returns the first active, filter-admitted hazard whose
// dangerous side is "outside its shape" (registered by
// hazard.ContainerExterior in the usual case). A query whose own bbox
// pokes outside the engine's tracked bbox can never be fully resolved by
// descending the tree — the tree only models the interior — so this is
// consulted directly whenever that happens.
func (e *Engine) outsideHazard(filter hazard.Filter) (hazard.Entity, bool) {
	for _, h := range e.hazards.active() {
		if h.Side != hazard.SideOutside {
			continue
		}
		if filter != nil && filter.IsIrrelevant(h.Entity) {
			continue
		}
		return h.Entity, true
	}
	return hazard.Entity{}, false
}

func (e *Engine) detectPolyNode(node *quadtree.Node, poly *geo.SimplePolygon, filter hazard.Filter) (bool, hazard.Entity) {
	if !node.Rect.Intersects(poly.BBox()) {
		return false, hazard.Entity{}
	}

	strongest, ok := node.Hazards.Strongest(filter)
	if !ok {
		return false, hazard.Entity{}
	}

	switch strongest.Presence.Kind {
	case quadtree.PresenceNone:
		return false, hazard.Entity{}
	case quadtree.PresenceEntire:
		if rectOverlapsPoly(node.Rect, poly) {
			return true, strongest.Entity
		}
		return false, hazard.Entity{}
	}

	if node.Children == nil {
		return e.detectPolyLeaf(node, poly, filter)
	}
	for _, child := range node.Children {
		if hit, ent := e.detectPolyNode(child, poly, filter); hit {
			return true, ent
		}
	}
	return false, hazard.Entity{}
}

func (e *Engine) detectPolyLeaf(node *quadtree.Node, poly *geo.SimplePolygon, filter hazard.Filter) (bool, hazard.Entity) {
	for _, qth := range node.Hazards.ActiveHazards() {
		if filter != nil && filter.IsIrrelevant(qth.Entity) {
			continue
		}
		haz, ok := e.hazards.get(qth.Key)
		if !ok {
			continue
		}
		if polyCollidesHazard(poly, haz) {
			return true, qth.Entity
		}
	}
	return false, hazard.Entity{}
}

// CollectPolyCollisions records every filter-admitted hazard entity that
// poly collides with into collector, in discovery order. Unlike
// DetectPolyCollision it does not stop at the first hit: every leaf
// touching poly's bbox is visited exhaustively.
func (e *Engine) CollectPolyCollisions(poly *geo.SimplePolygon, collector hazard.Collector) {
	e.ensureFresh()
	if !e.bbox.ContainsRect(poly.BBox()) {
		if ent, ok := e.outsideHazard(collector); ok {
			collector.Collect(ent)
		}
	}
	e.collectPolyNode(e.tree.Root, poly, collector)
}

func (e *Engine) collectPolyNode(node *quadtree.Node, poly *geo.SimplePolygon, collector hazard.Collector) {
	if !node.Rect.Intersects(poly.BBox()) {
		return
	}
	if node.Hazards.HasOnlyEntireHazards() && node.Children == nil {
		for _, qth := range node.Hazards.ActiveHazards() {
			if collector.IsIrrelevant(qth.Entity) {
				continue
			}
			if rectOverlapsPoly(node.Rect, poly) {
				collector.Collect(qth.Entity)
			}
		}
		return
	}

	if node.Children == nil {
		for _, qth := range node.Hazards.ActiveHazards() {
			if collector.IsIrrelevant(qth.Entity) {
				continue
			}
			haz, ok := e.hazards.get(qth.Key)
			if !ok {
				continue
			}
			if polyCollidesHazard(poly, haz) {
				collector.Collect(qth.Entity)
			}
		}
		return
	}

	for _, qth := range node.Hazards.ActiveHazards() {
		if qth.Presence.Kind != quadtree.PresenceEntire || collector.IsIrrelevant(qth.Entity) {
			continue
		}
		if rectOverlapsPoly(node.Rect, poly) {
			collector.Collect(qth.Entity)
		}
	}
	for _, child := range node.Children {
		e.collectPolyNode(child, poly, collector)
	}
}

// DetectSurrogateCollision conservatively checks a transformed surrogate
// against the engine: the fail-fast pole and pier prefixes are checked
// first (the cheap rejection path used by the LBF search before it
// commits to a full exact check), then the remaining poles and piers.
// Any single colliding pole or pier is enough to report a collision.
func (e *Engine) DetectSurrogateCollision(s *surrogate.Surrogate, t geo.Transformation, filter hazard.Filter) (bool, hazard.Entity) {
	e.ensureFresh()
	ts := s.Transform(t)

	if hit, ent := e.detectPoles(ts.FailFastPoleSet(), filter); hit {
		return true, ent
	}
	if hit, ent := e.detectPiers(ts.FailFastPierSet(), filter); hit {
		return true, ent
	}
	if hit, ent := e.detectPoles(ts.Poles[ts.FailFastPoles:], filter); hit {
		return true, ent
	}
	if hit, ent := e.detectPiers(ts.Piers[ts.FailFastPiers:], filter); hit {
		return true, ent
	}
	return false, hazard.Entity{}
}

func (e *Engine) detectPoles(poles []surrogate.Pole, filter hazard.Filter) (bool, hazard.Entity) {
	for _, p := range poles {
		bbox := geo.NewRect(p.Circle.Center.X-p.Circle.Radius, p.Circle.Center.Y-p.Circle.Radius,
			p.Circle.Center.X+p.Circle.Radius, p.Circle.Center.Y+p.Circle.Radius)
		if !e.bbox.ContainsRect(bbox) {
			if ent, ok := e.outsideHazard(filter); ok {
				return true, ent
			}
		}
		if hit, ent := e.detectCircleNode(e.tree.Root, p.Circle, filter); hit {
			return true, ent
		}
	}
	return false, hazard.Entity{}
}

func (e *Engine) detectPiers(piers []surrogate.Pier, filter hazard.Filter) (bool, hazard.Entity) {
	for _, p := range piers {
		bbox := geo.NewRect(minF(p.Edge.A.X, p.Edge.B.X), minF(p.Edge.A.Y, p.Edge.B.Y),
			maxF(p.Edge.A.X, p.Edge.B.X), maxF(p.Edge.A.Y, p.Edge.B.Y))
		if !e.bbox.ContainsRect(bbox) {
			if ent, ok := e.outsideHazard(filter); ok {
				return true, ent
			}
		}
		if hit, ent := e.detectEdgeNode(e.tree.Root, p.Edge, filter); hit {
			return true, ent
		}
	}
	return false, hazard.Entity{}
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func (e *Engine) detectCircleNode(node *quadtree.Node, c geo.Circle, filter hazard.Filter) (bool, hazard.Entity) {
	if !circleOverlapsRect(c, node.Rect) {
		return false, hazard.Entity{}
	}
	strongest, ok := node.Hazards.Strongest(filter)
	if !ok {
		return false, hazard.Entity{}
	}
	switch strongest.Presence.Kind {
	case quadtree.PresenceNone:
		return false, hazard.Entity{}
	case quadtree.PresenceEntire:
		return true, strongest.Entity
	}
	if node.Children == nil {
		for _, qth := range node.Hazards.ActiveHazards() {
			if filter != nil && filter.IsIrrelevant(qth.Entity) {
				continue
			}
			haz, ok := e.hazards.get(qth.Key)
			if !ok {
				continue
			}
			if circleCollidesHazard(c, haz) {
				return true, qth.Entity
			}
		}
		return false, hazard.Entity{}
	}
	for _, child := range node.Children {
		if hit, ent := e.detectCircleNode(child, c, filter); hit {
			return true, ent
		}
	}
	return false, hazard.Entity{}
}

func (e *Engine) detectEdgeNode(node *quadtree.Node, edge geo.Edge, filter hazard.Filter) (bool, hazard.Entity) {
	if !node.Rect.CollidesWithEdge(edge) && !node.Rect.ContainsPoint(edge.A) && !node.Rect.ContainsPoint(edge.B) {
		return false, hazard.Entity{}
	}
	strongest, ok := node.Hazards.Strongest(filter)
	if !ok {
		return false, hazard.Entity{}
	}
	switch strongest.Presence.Kind {
	case quadtree.PresenceNone:
		return false, hazard.Entity{}
	case quadtree.PresenceEntire:
		return true, strongest.Entity
	}
	if node.Children == nil {
		for _, qth := range node.Hazards.ActiveHazards() {
			if filter != nil && filter.IsIrrelevant(qth.Entity) {
				continue
			}
			haz, ok := e.hazards.get(qth.Key)
			if !ok {
				continue
			}
			if edgeCollidesHazard(edge, haz) {
				return true, qth.Entity
			}
		}
		return false, hazard.Entity{}
	}
	for _, child := range node.Children {
		if hit, ent := e.detectEdgeNode(child, edge, filter); hit {
			return true, ent
		}
	}
	return false, hazard.Entity{}
}
