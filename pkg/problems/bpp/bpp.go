package bpp

import (
	"context"
	"fmt"

	"github.com/jaguago/jaguago/pkg/config"
	"github.com/jaguago/jaguago/pkg/entities"
	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/lbf"
	"github.com/jaguago/jaguago/pkg/problems/common"
	"github.com/jaguago/jaguago/pkg/randsrc"
)

// BinType is one stock bin definition: its container geometry, the
// number of copies available, and the cost of opening one.
type BinType struct {
	ID    int
	Outer *geo.SimplePolygon
	Holes []*geo.SimplePolygon
	Zones []entities.InferiorQualityZone
	Stock uint64
	Cost  uint64
}

// Instance is one bin-packing problem: a set of items with per-item
// demand quantities, and a set of stock bin types.
type Instance struct {
	Items          []*entities.Item
	ItemDemandQtys map[int]uint64
	BinTypes       []BinType
}

// Solution is the result of a bin-packing solve: one snapshot per opened
// layout, the bin type ID backing each, total cost, and overall density.
type Solution struct {
	Layouts         []entities.LayoutSnapshot
	Containers      []*entities.Container
	BinIDs          []int
	Cost            uint64
	Density         float32
	UnplacedItemIDs []int
}

type openLayout struct {
	binTypeIdx int
	layout     *entities.Layout
}

// Solve packs inst's items, trying every already-open layout (in the
// order they were opened) before opening a new bin from stock, by
// declaration order, among bin types with remaining stock. Items that
// fit nowhere are recorded in Solution.UnplacedItemIDs rather than
// failing the whole solve — a feasibility miss moves the driver on to
// the next item, it is never an error. ctx is checked once per item in
// the placement sequence; if cancelled mid-solve, Solve returns the best
// partial solution built from the layouts opened so far alongside
// ctx.Err().
func Solve(ctx context.Context, inst Instance, cfg config.Config, masterSeed uint64) (*Solution, error) {
	if len(inst.Items) == 0 {
		return nil, fmt.Errorf("bpp: instance has no items")
	}
	if len(inst.BinTypes) == 0 {
		return nil, fmt.Errorf("bpp: instance has no bin types")
	}

	baseContainers := make([]*entities.Container, len(inst.BinTypes))
	stockRemaining := make([]uint64, len(inst.BinTypes))
	for i, bt := range inst.BinTypes {
		c, err := entities.NewContainer(bt.ID, bt.Outer, bt.Holes, bt.Zones, cfg.CDE.ToEngineConfig())
		if err != nil {
			return nil, fmt.Errorf("bpp: building container for bin type %d: %w", bt.ID, err)
		}
		baseContainers[i] = c
		stockRemaining[i] = bt.Stock
	}

	rng := randsrc.New(masterSeed, "bpp_solve", cfg.Hash())
	sequence := common.Expand(common.ItemPlacementOrder(inst.Items), inst.ItemDemandQtys)

	var (
		open     []openLayout
		unplaced []int
	)

	for _, item := range sequence {
		select {
		case <-ctx.Done():
			return buildSolution(inst, open, unplaced), ctx.Err()
		default:
		}

		filter := common.QualityFilter(item)
		placedOK := false
		var searchErr error

		for i := range open {
			dtransf, _, ok, err := lbf.Search(ctx, open[i].layout.CDE, item, cfg.LBF, rng, filter)
			if err != nil {
				searchErr = err
				break
			}
			if !ok {
				continue
			}
			if _, err := open[i].layout.PlaceItem(item, dtransf); err != nil {
				return nil, fmt.Errorf("bpp: placing item %d in open layout: %w", item.ID, err)
			}
			placedOK = true
			break
		}

		if searchErr != nil {
			return buildSolution(inst, open, unplaced), searchErr
		}

		if !placedOK {
			for i := range inst.BinTypes {
				if stockRemaining[i] == 0 {
					continue
				}
				l := entities.NewLayout(baseContainers[i])
				dtransf, _, ok, err := lbf.Search(ctx, l.CDE, item, cfg.LBF, rng, filter)
				if err != nil {
					return buildSolution(inst, open, unplaced), err
				}
				if !ok {
					continue
				}
				if _, err := l.PlaceItem(item, dtransf); err != nil {
					return nil, fmt.Errorf("bpp: placing item %d in new bin: %w", item.ID, err)
				}
				stockRemaining[i]--
				open = append(open, openLayout{binTypeIdx: i, layout: l})
				placedOK = true
				break
			}
		}

		if !placedOK {
			unplaced = append(unplaced, item.ID)
		}
	}

	return buildSolution(inst, open, unplaced), nil
}

// buildSolution assembles a Solution from whatever layouts are open and
// which items remain unplaced so far; used both for a normal completed
// solve and for an early return on context cancellation.
func buildSolution(inst Instance, open []openLayout, unplaced []int) *Solution {
	snaps := make([]entities.LayoutSnapshot, len(open))
	containers := make([]*entities.Container, len(open))
	binIDs := make([]int, len(open))
	var cost uint64
	var placedArea, containerArea float32
	for i, ol := range open {
		snaps[i] = ol.layout.Save()
		containers[i] = ol.layout.Container
		binIDs[i] = inst.BinTypes[ol.binTypeIdx].ID
		cost += inst.BinTypes[ol.binTypeIdx].Cost
		containerArea += ol.layout.Container.UsableArea()
		for _, pi := range ol.layout.Items() {
			placedArea += pi.TransformedShape.Area()
		}
	}

	var density float32
	if containerArea > 0 {
		density = placedArea / containerArea
	}

	return &Solution{
		Layouts:         snaps,
		Containers:      containers,
		BinIDs:          binIDs,
		Cost:            cost,
		Density:         density,
		UnplacedItemIDs: unplaced,
	}
}

// TrivialUpperBoundCost computes a loose sanity ceiling on total cost: for
// every item copy, assume it is packed alone into the cheapest bin type
// whose container area could conceivably fit it (an area check only, not
// an actual feasibility search), and sums those per-copy costs. Used only
// to sanity-check solver output in tests, never by Solve itself.
func TrivialUpperBoundCost(inst Instance) uint64 {
	var total uint64
	for _, item := range inst.Items {
		demand := inst.ItemDemandQtys[item.ID]
		if demand == 0 {
			continue
		}
		cost, ok := cheapestFittingBin(inst.BinTypes, item)
		if !ok {
			continue
		}
		total += cost * demand
	}
	return total
}

func cheapestFittingBin(bins []BinType, item *entities.Item) (uint64, bool) {
	var (
		best  uint64
		found bool
	)
	itemArea := item.ShapeCD.Area()
	for _, b := range bins {
		if b.Outer.Area() < itemArea {
			continue
		}
		if !found || b.Cost < best {
			best, found = b.Cost, true
		}
	}
	return best, found
}
