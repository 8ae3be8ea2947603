package quadtree

import (
	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/hazard"
)

// Child slot indices, in the fixed NW/NE/SW/SE order used throughout this
// package.
const (
	ChildNW = iota
	ChildNE
	ChildSW
	ChildSE
)

// sharedEdgeNeighbors lists, for each child slot, the other slots it
// shares a boundary edge with. NW/SE and NE/SW are diagonal and
// deliberately excluded: the sibling-resolution cache below is restricted
// to shared-edge neighbors only (see Open Question 1 in DESIGN.md).
var sharedEdgeNeighbors = [4][]int{
	ChildNW: {ChildNE, ChildSW},
	ChildNE: {ChildNW, ChildSE},
	ChildSW: {ChildNW, ChildSE},
	ChildSE: {ChildNE, ChildSW},
}

// Node is one quadtree node: its rectangle, optional children, and the
// hazard projections active at this level.
type Node struct {
	Rect     geo.Rect
	Children *[4]*Node // nil for leaves
	Hazards  *HazardVec
	Depth    int
}

// Tree is a built quadtree: its root node plus the depth budget it was
// built with, kept here so clones/rebuilds don't need it passed around
// separately.
type Tree struct {
	Root     *Node
	MaxDepth int
}

// HazardSource is the minimal view of a registered hazard the tree needs
// to project it onto node rectangles.
type HazardSource struct {
	Key    hazard.Key
	Entity hazard.Entity
	Shape  *geo.SimplePolygon
	Side   hazard.Side
}

// Build constructs a fresh quadtree over bbox, projecting every hazard in
// hazards into the root and recursively into children up to maxDepth.
func Build(bbox geo.Rect, hazards []HazardSource, maxDepth int) *Tree {
	root := buildNode(bbox, hazards, 0, maxDepth)
	return &Tree{Root: root, MaxDepth: maxDepth}
}

func buildNode(rect geo.Rect, hazards []HazardSource, depth, maxDepth int) *Node {
	vec := NewHazardVec()
	var partial []HazardSource
	for _, h := range hazards {
		qth, isPartial := projectHazard(h, rect)
		vec.Add(qth)
		if isPartial {
			partial = append(partial, h)
		}
	}

	node := &Node{Rect: rect, Hazards: vec, Depth: depth}

	if depth >= maxDepth || len(partial) == 0 {
		return node
	}

	node.Children = buildChildren(rect, partial, depth, maxDepth)
	return node
}

// projectHazard computes the Entire/Partial/None presence of h at rect,
// reporting whether the result was Partial (the caller only needs to keep
// recursing into children for hazards that are still Partial here).
func projectHazard(h HazardSource, rect geo.Rect) (QTHazard, bool) {
	var crossing []geo.Edge
	for _, e := range h.Shape.Edges() {
		if rect.CollidesWithEdge(e) || rect.ContainsPoint(e.A) || rect.ContainsPoint(e.B) {
			crossing = append(crossing, e)
		}
	}

	if len(crossing) > 0 {
		return QTHazard{
			Key:      h.Key,
			Entity:   h.Entity,
			Active:   true,
			Presence: Presence{Kind: PresencePartial, Edges: crossing},
		}, true
	}

	entire := isEntirelyOnHazardSide(h, rect)
	if entire {
		return QTHazard{Key: h.Key, Entity: h.Entity, Active: true, Presence: Presence{Kind: PresenceEntire}}, false
	}
	return QTHazard{Key: h.Key, Entity: h.Entity, Active: true, Presence: Presence{Kind: PresenceNone}}, false
}

func isEntirelyOnHazardSide(h HazardSource, rect geo.Rect) bool {
	inside := h.Shape.ContainsPoint(rect.Center())
	switch h.Side {
	case hazard.SideInside:
		return inside
	default: // hazard.SideOutside
		return !inside
	}
}

// buildChildren constructs the four children of a node whose rectangle is
// rect, given the hazards that were Partial at this level (only those can
// possibly still be Partial, Entire, or None in a child — a hazard that
// was already fully Entire or None here stays that way in every child).
func buildChildren(rect geo.Rect, partialHazards []HazardSource, depth, maxDepth int) *[4]*Node {
	mx := (rect.XMin + rect.XMax) / 2
	my := (rect.YMin + rect.YMax) / 2

	rects := [4]geo.Rect{
		ChildNW: {XMin: rect.XMin, YMin: my, XMax: mx, YMax: rect.YMax},
		ChildNE: {XMin: mx, YMin: my, XMax: rect.XMax, YMax: rect.YMax},
		ChildSW: {XMin: rect.XMin, YMin: rect.YMin, XMax: mx, YMax: my},
		ChildSE: {XMin: mx, YMin: rect.YMin, XMax: rect.XMax, YMax: my},
	}

	cache := newSiblingCache(len(partialHazards))

	var children [4]*Node
	for slot := 0; slot < 4; slot++ {
		childRect := rects[slot]
		vec := NewHazardVec()
		var childPartial []HazardSource

		for hi, h := range partialHazards {
			qth, isPartial, usedCache := projectWithCache(h, childRect, cache, hi, slot)
			vec.Add(qth)
			if isPartial {
				childPartial = append(childPartial, h)
			}
			if !usedCache {
				cache.record(hi, slot, qth.Presence.Kind)
			}
		}

		children[slot] = buildNodeFromPartial(childRect, vec, childPartial, depth+1, maxDepth)
	}

	return &children
}

func buildNodeFromPartial(rect geo.Rect, vec *HazardVec, partial []HazardSource, depth, maxDepth int) *Node {
	node := &Node{Rect: rect, Hazards: vec, Depth: depth}
	if depth >= maxDepth || len(partial) == 0 {
		return node
	}
	node.Children = buildChildren(rect, partial, depth, maxDepth)
	return node
}

// siblingCache records, per hazard index and child slot, the resolved
// Entire/None verdict so a later sibling that shares an edge with an
// already-resolved one can skip its own point-in-polygon test. Restricted
// to shared-edge neighbors (see sharedEdgeNeighbors); diagonal siblings
// are never consulted.
type siblingCache struct {
	resolved [][4]*PresenceKind
}

func newSiblingCache(n int) *siblingCache {
	return &siblingCache{resolved: make([][4]*PresenceKind, n)}
}

func (c *siblingCache) record(hazardIdx, slot int, kind PresenceKind) {
	if kind == PresencePartial {
		return
	}
	k := kind
	c.resolved[hazardIdx][slot] = &k
}

func (c *siblingCache) lookup(hazardIdx, slot int) (PresenceKind, bool) {
	for _, neighbor := range sharedEdgeNeighbors[slot] {
		if k := c.resolved[hazardIdx][neighbor]; k != nil {
			return *k, true
		}
	}
	return 0, false
}

// projectWithCache is projectHazard augmented with the sibling cache: if a
// shared-edge sibling already resolved this hazard to Entire or None at
// this level, and this child's boundary crossing test also comes back
// empty, reuse that verdict instead of repeating a point-in-polygon test.
func projectWithCache(h HazardSource, rect geo.Rect, cache *siblingCache, hazardIdx, slot int) (QTHazard, bool, bool) {
	var crossing []geo.Edge
	for _, e := range h.Shape.Edges() {
		if rect.CollidesWithEdge(e) || rect.ContainsPoint(e.A) || rect.ContainsPoint(e.B) {
			crossing = append(crossing, e)
		}
	}

	if len(crossing) > 0 {
		return QTHazard{
			Key:      h.Key,
			Entity:   h.Entity,
			Active:   true,
			Presence: Presence{Kind: PresencePartial, Edges: crossing},
		}, true, false
	}

	if kind, ok := cache.lookup(hazardIdx, slot); ok {
		return QTHazard{Key: h.Key, Entity: h.Entity, Active: true, Presence: Presence{Kind: kind}}, false, true
	}

	entire := isEntirelyOnHazardSide(h, rect)
	kind := PresenceNone
	if entire {
		kind = PresenceEntire
	}
	return QTHazard{Key: h.Key, Entity: h.Entity, Active: true, Presence: Presence{Kind: kind}}, false, false
}

// Clone returns a deep copy of the tree; shared, never-mutated shape data
// (geo.SimplePolygon, geo.Edge slices) is reused by reference.
func (t *Tree) Clone() *Tree {
	return &Tree{Root: cloneNode(t.Root), MaxDepth: t.MaxDepth}
}

func cloneNode(n *Node) *Node {
	if n == nil {
		return nil
	}
	clone := &Node{Rect: n.Rect, Hazards: n.Hazards.Clone(), Depth: n.Depth}
	if n.Children != nil {
		var children [4]*Node
		for i, c := range n.Children {
			children[i] = cloneNode(c)
		}
		clone.Children = &children
	}
	return clone
}
