package bpp

import (
	"context"
	"testing"

	"github.com/jaguago/jaguago/pkg/config"
	"github.com/jaguago/jaguago/pkg/entities"
	"github.com/jaguago/jaguago/pkg/geo"
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

func mustSquareItem(t *testing.T, id int, side float32) *entities.Item {
	t.Helper()
	return &entities.Item{ID: id, ShapeCD: mustSquare(t, side), Rotation: geo.NoRotation()}
}

func TestSolvePacksSingleItemIntoOneBin(t *testing.T) {
	items := []*entities.Item{mustSquareItem(t, 1, 10)}
	inst := Instance{
		Items:          items,
		ItemDemandQtys: map[int]uint64{1: 1},
		BinTypes: []BinType{
			{ID: 1, Outer: mustSquare(t, 50), Stock: 1, Cost: 100},
			{ID: 2, Outer: mustSquare(t, 15), Stock: 1, Cost: 10},
		},
	}
	cfg := config.DefaultConfig()
	cfg.LBF.NSamples = 2000

	sol, err := Solve(context.Background(), inst, cfg, 7)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sol.UnplacedItemIDs) != 0 {
		t.Fatalf("UnplacedItemIDs = %v, want empty", sol.UnplacedItemIDs)
	}
	if len(sol.Layouts) != 1 {
		t.Fatalf("len(sol.Layouts) = %d, want 1", len(sol.Layouts))
	}
}

func TestSolveReusesOpenLayoutBeforeOpeningNewBin(t *testing.T) {
	items := []*entities.Item{
		mustSquareItem(t, 1, 5),
		mustSquareItem(t, 2, 5),
	}
	inst := Instance{
		Items:          items,
		ItemDemandQtys: map[int]uint64{1: 1, 2: 1},
		BinTypes: []BinType{
			{ID: 1, Outer: mustSquare(t, 50), Stock: 3, Cost: 10},
		},
	}
	cfg := config.DefaultConfig()
	cfg.LBF.NSamples = 2000

	sol, err := Solve(context.Background(), inst, cfg, 11)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sol.Layouts) != 1 {
		t.Fatalf("len(sol.Layouts) = %d, want 1 (both items should reuse the first open bin)", len(sol.Layouts))
	}
	if sol.Cost != 10 {
		t.Fatalf("Cost = %d, want 10 (only one bin opened)", sol.Cost)
	}
}

func TestSolveReturnsPartialResultOnCancellation(t *testing.T) {
	items := []*entities.Item{mustSquareItem(t, 1, 10)}
	inst := Instance{
		Items:          items,
		ItemDemandQtys: map[int]uint64{1: 1},
		BinTypes: []BinType{
			{ID: 1, Outer: mustSquare(t, 50), Stock: 1, Cost: 100},
		},
	}
	cfg := config.DefaultConfig()
	cfg.LBF.NSamples = 2000

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol, err := Solve(ctx, inst, cfg, 7)
	if err == nil {
		t.Fatalf("expected an error from a pre-cancelled context")
	}
	if sol == nil {
		t.Fatalf("expected a non-nil partial solution alongside the cancellation error")
	}
	if len(sol.Layouts) != 0 {
		t.Fatalf("len(sol.Layouts) = %d, want 0: nothing should have been placed before the cancellation check", len(sol.Layouts))
	}
}

func TestSolveRecordsUnplacedItemsWhenStockExhausted(t *testing.T) {
	items := []*entities.Item{
		mustSquareItem(t, 1, 40),
		mustSquareItem(t, 2, 40),
	}
	inst := Instance{
		Items:          items,
		ItemDemandQtys: map[int]uint64{1: 1, 2: 1},
		BinTypes: []BinType{
			{ID: 1, Outer: mustSquare(t, 45), Stock: 1, Cost: 5},
		},
	}
	cfg := config.DefaultConfig()
	cfg.LBF.NSamples = 1500

	sol, err := Solve(context.Background(), inst, cfg, 9)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sol.Layouts) != 1 {
		t.Fatalf("len(sol.Layouts) = %d, want 1 (stock is 1)", len(sol.Layouts))
	}
	if len(sol.UnplacedItemIDs) != 1 {
		t.Fatalf("len(sol.UnplacedItemIDs) = %d, want 1 (second 40x40 item has nowhere to go)", len(sol.UnplacedItemIDs))
	}
}

func TestTrivialUpperBoundCostSumsCheapestFittingBins(t *testing.T) {
	items := []*entities.Item{
		mustSquareItem(t, 1, 5),
		mustSquareItem(t, 2, 20),
	}
	inst := Instance{
		Items:          items,
		ItemDemandQtys: map[int]uint64{1: 2, 2: 1},
		BinTypes: []BinType{
			{ID: 1, Outer: mustSquare(t, 10), Cost: 3},
			{ID: 2, Outer: mustSquare(t, 30), Cost: 20},
		},
	}
	got := TrivialUpperBoundCost(inst)
	want := uint64(2*3 + 20)
	if got != want {
		t.Fatalf("TrivialUpperBoundCost = %d, want %d", got, want)
	}
}

func TestTrivialUpperBoundCostBoundsActualSolveCost(t *testing.T) {
	items := []*entities.Item{mustSquareItem(t, 1, 8)}
	inst := Instance{
		Items:          items,
		ItemDemandQtys: map[int]uint64{1: 3},
		BinTypes: []BinType{
			{ID: 1, Outer: mustSquare(t, 30), Stock: 5, Cost: 7},
		},
	}
	cfg := config.DefaultConfig()
	cfg.LBF.NSamples = 2000

	sol, err := Solve(context.Background(), inst, cfg, 3)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	bound := TrivialUpperBoundCost(inst)
	if sol.Cost > bound {
		t.Fatalf("sol.Cost = %d, exceeds trivial upper bound %d", sol.Cost, bound)
	}
}
