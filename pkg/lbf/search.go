package lbf

import (
	"context"

	"github.com/jaguago/jaguago/pkg/cde"
	"github.com/jaguago/jaguago/pkg/config"
	"github.com/jaguago/jaguago/pkg/entities"
	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/hazard"
	"github.com/jaguago/jaguago/pkg/randsrc"
	"github.com/jaguago/jaguago/pkg/sampling"
)

// Search looks for a collision-free placement of item against eng with
// minimal Loss, spending at most cfg.NSamples samples split between a
// uniform phase (which tightens its sampling rectangle every time it
// finds a better candidate) and a local-search phase centered on the
// uniform phase's best result. It reports false if no uniform sample
// produced a feasible placement. ctx is consulted once per outer
// iteration of each phase; a cancelled ctx stops the search early and
// returns ctx.Err().
func Search(ctx context.Context, eng *cde.Engine, item *entities.Item, cfg config.LBFConfig, rng *randsrc.Source, filter hazard.Filter) (geo.DTransformation, Loss, bool, error) {
	surrogate := item.ShapeCD.Surrogate
	buffer := item.ShapeCD.StripSurrogate()

	lsBudget := int(float64(cfg.NSamples) * cfg.LSFrac)
	uniBudget := cfg.NSamples - lsBudget

	var (
		best    geo.DTransformation
		bestCost Loss
		found   bool
	)

	uniSampler := sampling.NewUniformRectSampler(eng.BBox(), item.Rotation)

	for i := 0; i < uniBudget; i++ {
		select {
		case <-ctx.Done():
			return best, bestCost, found, ctx.Err()
		default:
		}

		dTransf := uniSampler.Sample(rng)
		transf := dTransf.Compose()

		if surrogate != nil {
			if hit, _ := eng.DetectSurrogateCollision(surrogate, transf, filter); hit {
				continue
			}
		}

		buffer.TransformFrom(item.ShapeCD, transf)
		cost := FromBBox(buffer.BBox())

		worthTesting := !found || cost.Less(bestCost)
		if !worthTesting {
			continue
		}

		if hit, _ := eng.DetectPolyCollision(buffer, filter); hit {
			continue
		}

		best, bestCost, found = dTransf, cost, true
		uniSampler.Tighten(cost.TightenSampleBBox(uniSampler.BBox))
	}

	if !found {
		return geo.DTransformation{}, Loss{}, false, nil
	}

	lsSampler := sampling.NewLocalSearchSampler(item.Rotation, best, eng.BBox())

	for i := 0; i < lsBudget; i++ {
		select {
		case <-ctx.Done():
			return best, bestCost, true, ctx.Err()
		default:
		}

		dTransf := lsSampler.Sample(rng)
		transf := dTransf.Compose()

		ok := true
		if surrogate != nil {
			if hit, _ := eng.DetectSurrogateCollision(surrogate, transf, filter); hit {
				ok = false
			}
		}

		if ok {
			buffer.TransformFrom(item.ShapeCD, transf)
			cost := FromBBox(buffer.BBox())

			if cost.Less(bestCost) {
				if hit, _ := eng.DetectPolyCollision(buffer, filter); !hit {
					lsSampler.ShiftMean(dTransf)
					best, bestCost = dTransf, cost
				}
			}
		}

		progress := float32(0)
		if lsBudget > 0 {
			progress = float32(i) / float32(lsBudget)
		}
		lsSampler.DecayStddev(progress)
	}

	return best, bestCost, true, nil
}
