package common

import (
	"math"
	"testing"

	"github.com/jaguago/jaguago/pkg/entities"
	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/hazard"
	"github.com/jaguago/jaguago/pkg/surrogate"
)

func mustSquare(t *testing.T, side float32) *geo.SimplePolygon {
	t.Helper()
	p, err := geo.NewSimplePolygon([]geo.Point{
		{X: 0, Y: 0},
		{X: side, Y: 0},
		{X: side, Y: side},
		{X: 0, Y: side},
	}, surrogate.DefaultConfig())
	if err != nil {
		t.Fatalf("NewSimplePolygon: %v", err)
	}
	return p
}

func TestItemPlacementOrderDescendingDiameter(t *testing.T) {
	small := &entities.Item{ID: 1, ShapeCD: mustSquare(t, 2)}
	big := &entities.Item{ID: 2, ShapeCD: mustSquare(t, 20)}
	mid := &entities.Item{ID: 3, ShapeCD: mustSquare(t, 10)}

	ordered := ItemPlacementOrder([]*entities.Item{small, big, mid})
	if len(ordered) != 3 {
		t.Fatalf("len(ordered) = %d, want 3", len(ordered))
	}
	if ordered[0].ID != 2 || ordered[1].ID != 3 || ordered[2].ID != 1 {
		t.Fatalf("ordered IDs = [%d %d %d], want [2 3 1]", ordered[0].ID, ordered[1].ID, ordered[2].ID)
	}
}

func TestItemPlacementOrderDoesNotMutateInput(t *testing.T) {
	a := &entities.Item{ID: 1, ShapeCD: mustSquare(t, 5)}
	b := &entities.Item{ID: 2, ShapeCD: mustSquare(t, 10)}
	input := []*entities.Item{a, b}

	_ = ItemPlacementOrder(input)

	if input[0].ID != 1 || input[1].ID != 2 {
		t.Fatalf("ItemPlacementOrder mutated its input slice")
	}
}

func TestExpandRepeatsByDemand(t *testing.T) {
	a := &entities.Item{ID: 1}
	b := &entities.Item{ID: 2}
	demand := map[int]uint64{1: 3, 2: 1}

	seq := Expand([]*entities.Item{a, b}, demand)
	if len(seq) != 4 {
		t.Fatalf("len(seq) = %d, want 4", len(seq))
	}
	for i := 0; i < 3; i++ {
		if seq[i].ID != 1 {
			t.Fatalf("seq[%d].ID = %d, want 1", i, seq[i].ID)
		}
	}
	if seq[3].ID != 2 {
		t.Fatalf("seq[3].ID = %d, want 2", seq[3].ID)
	}
}

func TestExpandSkipsZeroDemand(t *testing.T) {
	a := &entities.Item{ID: 1}
	seq := Expand([]*entities.Item{a}, map[int]uint64{})
	if len(seq) != 0 {
		t.Fatalf("len(seq) = %d, want 0 for unspecified demand", len(seq))
	}
}

func TestQualityFilterNoRequirementIgnoresEveryZone(t *testing.T) {
	item := &entities.Item{ID: 1}
	filter, ok := QualityFilter(item).(hazard.MinQualityFilter)
	if !ok {
		t.Fatalf("QualityFilter did not return a hazard.MinQualityFilter")
	}
	if filter.Cutoff != math.MinInt32 {
		t.Fatalf("Cutoff = %d, want math.MinInt32", filter.Cutoff)
	}
}

func TestQualityFilterWithRequirementUsesItsCutoff(t *testing.T) {
	min := 3
	item := &entities.Item{ID: 1, MinQuality: &min}
	filter, ok := QualityFilter(item).(hazard.MinQualityFilter)
	if !ok {
		t.Fatalf("QualityFilter did not return a hazard.MinQualityFilter")
	}
	if filter.Cutoff != 3 {
		t.Fatalf("Cutoff = %d, want 3", filter.Cutoff)
	}
}
