package common

import (
	"math"
	"sort"

	"github.com/jaguago/jaguago/pkg/entities"
	"github.com/jaguago/jaguago/pkg/hazard"
)

// ItemPlacementOrder returns items sorted by descending collision-shape
// diameter. Placing the largest items first makes an infeasible instance
// fail fast rather than wasting the sample budget on small items that
// would have fit regardless of order.
func ItemPlacementOrder(items []*entities.Item) []*entities.Item {
	sorted := make([]*entities.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ShapeCD.Diameter() > sorted[j].ShapeCD.Diameter()
	})
	return sorted
}

// Expand repeats each item in order by its demand quantity, producing the
// full sequence of item-copies a driver must attempt to place.
func Expand(order []*entities.Item, demand map[int]uint64) []*entities.Item {
	var seq []*entities.Item
	for _, item := range order {
		for n := uint64(0); n < demand[item.ID]; n++ {
			seq = append(seq, item)
		}
	}
	return seq
}

// QualityFilter builds the hazard.Filter an item's LBF search must use to
// correctly ignore quality zones it is allowed to occupy: a zone is
// irrelevant to item when the zone's quality is at least item's
// MinQuality. An item with no MinQuality requirement must avoid every
// zone, since every zone then has a quality below what the item accepts.
func QualityFilter(item *entities.Item) hazard.Filter {
	if item.MinQuality == nil {
		return hazard.MinQualityFilter{Cutoff: math.MaxInt32}
	}
	return hazard.MinQualityFilter{Cutoff: *item.MinQuality}
}
