package entities

import (
	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/hazard"
)

// Item is one placeable definition: its collision-detection shape (with
// surrogate), its original shape for export/rendering, the rotations a
// placement may use, and an optional minimum quality requirement.
type Item struct {
	ID         int
	ShapeCD    *geo.SimplePolygon
	ShapeOrig  *geo.SimplePolygon
	Rotation   geo.RotationRange
	MinQuality *int
}

// AllowsQuality reports whether an item with this MinQuality requirement
// may be placed in a zone of the given quality. An item with no min
// quality requirement allows every zone.
func (it *Item) AllowsQuality(zoneQuality int) bool {
	if it.MinQuality == nil {
		return true
	}
	return *it.MinQuality >= zoneQuality
}

// PlacedItem is one entry in a Layout's slot map: the item placed, the
// transform it was placed under, its transformed collision shape, and
// the CDE registry key its hazard was assigned (distinct from Key, which
// is this placement's stable slot identity used in its HazardEntity).
type PlacedItem struct {
	Key              uint64
	ItemID           int
	DTransf          geo.DTransformation
	TransformedShape *geo.SimplePolygon
	HazKey           hazard.Key
}
