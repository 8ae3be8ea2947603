package spp

import (
	"context"
	"testing"

	"github.com/jaguago/jaguago/pkg/config"
	"github.com/jaguago/jaguago/pkg/entities"
	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/surrogate"
)

func mustSquareItem(t *testing.T, id int, side float32) *entities.Item {
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
	return &entities.Item{ID: id, ShapeCD: p, Rotation: geo.NoRotation()}
}

func TestSolvePacksAllItems(t *testing.T) {
	items := []*entities.Item{
		mustSquareItem(t, 1, 10),
		mustSquareItem(t, 2, 8),
		mustSquareItem(t, 3, 5),
	}
	inst := Instance{
		Items:          items,
		ItemDemandQtys: map[int]uint64{1: 1, 2: 1, 3: 1},
		StripHeight:    20,
	}
	cfg := config.DefaultConfig()
	cfg.LBF.NSamples = 2000

	sol, err := Solve(context.Background(), inst, cfg, 42)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(sol.Layout.Items) != 3 {
		t.Fatalf("len(sol.Layout.Items) = %d, want 3", len(sol.Layout.Items))
	}
	if sol.StripWidth <= 0 {
		t.Fatalf("StripWidth = %f, want > 0", sol.StripWidth)
	}
	if sol.Density <= 0 || sol.Density > 1 {
		t.Fatalf("Density = %f, want in (0, 1]", sol.Density)
	}
}

func TestSolveReturnsPartialResultOnCancellation(t *testing.T) {
	items := []*entities.Item{
		mustSquareItem(t, 1, 10),
		mustSquareItem(t, 2, 8),
		mustSquareItem(t, 3, 5),
	}
	inst := Instance{
		Items:          items,
		ItemDemandQtys: map[int]uint64{1: 1, 2: 1, 3: 1},
		StripHeight:    20,
	}
	cfg := config.DefaultConfig()
	cfg.LBF.NSamples = 2000

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sol, err := Solve(ctx, inst, cfg, 42)
	if err == nil {
		t.Fatalf("expected an error from a pre-cancelled context")
	}
	if sol == nil {
		t.Fatalf("expected a non-nil partial solution alongside the cancellation error")
	}
}

func TestSolveRejectsEmptyInstance(t *testing.T) {
	inst := Instance{StripHeight: 10}
	if _, err := Solve(context.Background(), inst, config.DefaultConfig(), 1); err == nil {
		t.Fatalf("expected error for an instance with no items")
	}
}

func TestSolveRejectsNonPositiveStripHeight(t *testing.T) {
	inst := Instance{
		Items:          []*entities.Item{mustSquareItem(t, 1, 5)},
		ItemDemandQtys: map[int]uint64{1: 1},
		StripHeight:    0,
	}
	if _, err := Solve(context.Background(), inst, config.DefaultConfig(), 1); err == nil {
		t.Fatalf("expected error for a non-positive strip height")
	}
}

func TestFitStripShrinksToEnclosingExtent(t *testing.T) {
	container, err := entities.NewContainer(0, squareOuter(t, 100), nil, nil, config.DefaultConfig().CDE.ToEngineConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	layout := entities.NewLayout(container)
	item := mustSquareItem(t, 1, 10)
	if _, err := layout.PlaceItem(item, geo.DTransformation{Tx: 0, Ty: 0}); err != nil {
		t.Fatalf("PlaceItem: %v", err)
	}

	got := fitStrip(layout, 100)
	if got != 10 {
		t.Fatalf("fitStrip = %f, want 10", got)
	}
}

func squareOuter(t *testing.T, side float32) *geo.SimplePolygon {
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
