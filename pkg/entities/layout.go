package entities

import (
	"fmt"

	"github.com/jaguago/jaguago/pkg/cde"
	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/hazard"
)

// Layout is a container instance plus an ordered slot map of placed
// items and a CDE cloned from the container's base. A Layout enforces
// three invariants on every successful PlaceItem: no two placed items'
// polygons overlap, every placed item is fully inside the container and
// disjoint from every hole, and every placed item is disjoint from any
// quality zone worse than its min quality — all three are exactly what
// the underlying CDE's static+dynamic hazard set already encodes, so a
// single collision-free check against it is sufficient to enforce them.
type Layout struct {
	Container *Container
	CDE       *cde.Engine

	items   map[uint64]PlacedItem
	order   []uint64 // registration order, for deterministic iteration
	nextKey uint64
}

// NewLayout returns an empty Layout over container, with its own CDE
// cloned from the container's base CDE.
func NewLayout(container *Container) *Layout {
	return &Layout{
		Container: container,
		CDE:       container.BaseCDE.Clone(),
		items:     make(map[uint64]PlacedItem),
	}
}

// PlaceItem transforms item.ShapeCD by dtransf, registers the result as
// a PlacedItem hazard, and stores it in the slot map under a fresh key.
// It fails if the placement collides with anything already in the CDE.
func (l *Layout) PlaceItem(item *Item, dtransf geo.DTransformation) (uint64, error) {
	transformed := item.ShapeCD.Transform(dtransf.Compose())

	if hit, ent := l.CDE.DetectPolyCollision(transformed, hazard.NoneFilter{}); hit {
		return 0, fmt.Errorf("entities: place item %d: collides with %s", item.ID, ent)
	}

	l.nextKey++
	key := l.nextKey

	hazKey, err := l.CDE.Register(hazard.Hazard{
		Entity: hazard.PlacedItem(item.ID, key),
		Shape:  transformed,
		Side:   hazard.SideInside,
	})
	if err != nil {
		return 0, fmt.Errorf("entities: place item %d: %w", item.ID, err)
	}

	l.items[key] = PlacedItem{
		Key:              key,
		ItemID:           item.ID,
		DTransf:          dtransf,
		TransformedShape: transformed,
		HazKey:           hazKey,
	}
	l.order = append(l.order, key)
	return key, nil
}

// RemoveItem deletes the slot entry for key and deregisters its hazard,
// either immediately or lazily depending on commitNow.
func (l *Layout) RemoveItem(key uint64, commitNow bool) error {
	placed, ok := l.items[key]
	if !ok {
		return fmt.Errorf("entities: remove item: key %d not placed", key)
	}

	mode := cde.Lazy
	if commitNow {
		mode = cde.Immediate
	}
	if err := l.CDE.Deregister(placed.HazKey, mode); err != nil {
		return fmt.Errorf("entities: remove item %d: %w", placed.ItemID, err)
	}

	delete(l.items, key)
	for i, k := range l.order {
		if k == key {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return nil
}

// Items returns every currently placed item, in placement order.
func (l *Layout) Items() []PlacedItem {
	out := make([]PlacedItem, len(l.order))
	for i, k := range l.order {
		out[i] = l.items[k]
	}
	return out
}

// Density is the fraction of the container's usable area (outer area
// minus holes) covered by placed items' original shapes.
func (l *Layout) Density() float32 {
	usable := l.Container.UsableArea()
	if usable <= 0 {
		return 0
	}
	var placedArea float32
	for _, p := range l.items {
		placedArea += p.TransformedShape.Area()
	}
	return placedArea / usable
}

// LayoutSnapshot is a frozen record sufficient to reconstruct a Layout:
// its placed items plus a CDE snapshot of the layout's whole hazard
// registry (the container's static hazards as well as the placed items).
// The Container itself is not part of the snapshot — it is supplied again
// by the caller on restore, per the Data Model.
type LayoutSnapshot struct {
	Items    []PlacedItem
	NextKey  uint64
	CDESnap  cde.Snapshot
}

// Save captures the layout's current state.
func (l *Layout) Save() LayoutSnapshot {
	return LayoutSnapshot{
		Items:   l.Items(),
		NextKey: l.nextKey,
		CDESnap: l.CDE.Snapshot(),
	}
}

// FromSnapshot rebuilds a Layout over container from a previously saved
// snapshot. The container's base CDE is cloned fresh and its hazard
// registry is then replaced by the one recorded in snap.CDESnap.
func FromSnapshot(container *Container, snap LayoutSnapshot) *Layout {
	l := &Layout{
		Container: container,
		CDE:       container.BaseCDE.Clone(),
		items:     make(map[uint64]PlacedItem, len(snap.Items)),
		nextKey:   snap.NextKey,
	}
	l.CDE.Restore(snap.CDESnap)
	for _, p := range snap.Items {
		l.items[p.Key] = p
		l.order = append(l.order, p.Key)
	}
	return l
}
