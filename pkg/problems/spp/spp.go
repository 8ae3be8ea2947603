package spp

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

// Instance is one strip-packing problem: a set of items with per-item
// demand quantities, to be packed into a strip of fixed height and
// growable width.
type Instance struct {
	Items          []*entities.Item
	ItemDemandQtys map[int]uint64
	StripHeight    float32
}

// Solution is the result of a successful or partial strip-packing solve.
type Solution struct {
	Layout     entities.LayoutSnapshot
	Container  *entities.Container
	StripWidth float32
	Density    float32
}

type placedRecord struct {
	item    *entities.Item
	dtransf geo.DTransformation
}

// Solve packs inst's items into a strip, growing its width by a factor of
// 1.1 whenever the current item doesn't fit, and shrinking the strip to
// the smallest enclosing x-extent once every item is placed. ctx is
// checked once per item in the placement sequence; if it is cancelled
// mid-solve, Solve returns the best partial layout built so far alongside
// ctx.Err().
func Solve(ctx context.Context, inst Instance, cfg config.Config, masterSeed uint64) (*Solution, error) {
	if len(inst.Items) == 0 {
		return nil, fmt.Errorf("spp: instance has no items")
	}
	if inst.StripHeight <= 0 {
		return nil, fmt.Errorf("spp: strip height must be positive, got %f", inst.StripHeight)
	}

	var totalArea, totalDiamDemand float32
	for _, item := range inst.Items {
		demand := float32(inst.ItemDemandQtys[item.ID])
		totalArea += item.ShapeCD.Area() * demand
		totalDiamDemand += item.ShapeCD.Diameter() * demand
	}

	width := totalArea / inst.StripHeight
	maxWidth := 2 * totalDiamDemand

	rng := randsrc.New(masterSeed, "spp_solve", cfg.Hash())
	sequence := common.Expand(common.ItemPlacementOrder(inst.Items), inst.ItemDemandQtys)

	var (
		layout *entities.Layout
		placed []placedRecord
	)

	rebuild := func() error {
		outer, err := stripPolygon(width, inst.StripHeight, cfg)
		if err != nil {
			return fmt.Errorf("spp: building strip polygon: %w", err)
		}
		container, err := entities.NewContainer(0, outer, nil, nil, cfg.CDE.ToEngineConfig())
		if err != nil {
			return fmt.Errorf("spp: building strip container: %w", err)
		}
		l := entities.NewLayout(container)
		for _, rec := range placed {
			if _, err := l.PlaceItem(rec.item, rec.dtransf); err != nil {
				return fmt.Errorf("spp: replaying placement after strip growth: %w", err)
			}
		}
		layout = l
		return nil
	}

	if err := rebuild(); err != nil {
		return nil, err
	}

	for _, item := range sequence {
		select {
		case <-ctx.Done():
			return &Solution{
				Layout:     layout.Save(),
				Container:  layout.Container,
				StripWidth: fitStrip(layout, width),
				Density:    layout.Density(),
			}, ctx.Err()
		default:
		}

		filter := common.QualityFilter(item)
		for {
			dtransf, _, ok, err := lbf.Search(ctx, layout.CDE, item, cfg.LBF, rng, filter)
			if err != nil {
				return &Solution{
					Layout:     layout.Save(),
					Container:  layout.Container,
					StripWidth: fitStrip(layout, width),
					Density:    layout.Density(),
				}, err
			}
			if ok {
				if _, err := layout.PlaceItem(item, dtransf); err != nil {
					return nil, fmt.Errorf("spp: placing item %d: %w", item.ID, err)
				}
				placed = append(placed, placedRecord{item: item, dtransf: dtransf})
				break
			}

			width *= 1.1
			if width > maxWidth {
				panic(fmt.Sprintf("spp: strip width %f exceeds safety bound %f while placing item %d", width, maxWidth, item.ID))
			}
			if err := rebuild(); err != nil {
				return nil, err
			}
		}
	}

	width = fitStrip(layout, width)
	if err := rebuild(); err != nil {
		return nil, err
	}

	return &Solution{
		Layout:     layout.Save(),
		Container:  layout.Container,
		StripWidth: width,
		Density:    layout.Density(),
	}, nil
}

func stripPolygon(width, height float32, cfg config.Config) (*geo.SimplePolygon, error) {
	surrCfg := cfg.CDE.Surrogate.ToSurrogateConfig()
	return geo.NewSimplePolygon([]geo.Point{
		{X: 0, Y: 0},
		{X: width, Y: 0},
		{X: width, Y: height},
		{X: 0, Y: height},
	}, surrCfg)
}

// fitStrip shrinks the strip to the smallest x-extent enclosing every
// placed item, never growing past the width already committed to.
func fitStrip(layout *entities.Layout, currentWidth float32) float32 {
	var maxX float32
	for _, it := range layout.Items() {
		if bbox := it.TransformedShape.BBox(); bbox.XMax > maxX {
			maxX = bbox.XMax
		}
	}
	if maxX > 0 && maxX < currentWidth {
		return maxX
	}
	return currentWidth
}
