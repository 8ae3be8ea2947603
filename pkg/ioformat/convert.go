package ioformat

import (
	"fmt"
	"math"
	"sync"

	"github.com/jaguago/jaguago/pkg/entities"
	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/problems/bpp"
	"github.com/jaguago/jaguago/pkg/problems/spp"
	"github.com/jaguago/jaguago/pkg/surrogate"
)

func toGeoPoints(pts []ExtPoint) []geo.Point {
	out := make([]geo.Point, len(pts))
	for i, p := range pts {
		out[i] = geo.Point{X: float32(p[0]), Y: float32(p[1])}
	}
	return out
}

// buildPolygon converts a wire shape into a single boundary, for contexts
// that cannot carry holes (items, quality zones). A Polygon shape with
// holes is rejected here: holes only make sense on a container's outer
// boundary.
func buildPolygon(shape ExtShape, surrCfg surrogate.Config) (*geo.SimplePolygon, error) {
	if shape.Kind == ShapePolygon {
		if shape.Poly == nil {
			return nil, fmt.Errorf("ioformat: Polygon shape missing its outer boundary")
		}
		if len(shape.Poly.Inner) > 0 {
			return nil, fmt.Errorf("ioformat: Polygon holes are only valid on a container's shape")
		}
		return geo.NewSimplePolygon(toGeoPoints(shape.Poly.Outer), surrCfg)
	}
	pts, err := shape.ToPoints()
	if err != nil {
		return nil, err
	}
	return geo.NewSimplePolygon(toGeoPoints(pts), surrCfg)
}

// rotationRangeFromDegrees converts a wire allowed-orientations list
// (degrees, nil meaning unconstrained) into a geo.RotationRange.
func rotationRangeFromDegrees(degrees []float64) geo.RotationRange {
	if len(degrees) == 0 {
		return geo.ContinuousRotation()
	}
	angles := make([]float32, len(degrees))
	for i, d := range degrees {
		angles[i] = float32(d * math.Pi / 180)
	}
	return geo.DiscreteRotation(angles)
}

// buildItem converts one wire item into a domain entities.Item, centering
// its shape and returning the centroid needed to externalize placements
// again at export time.
func buildItem(ext ExtItem, surrCfg surrogate.Config) (*entities.Item, geo.Point, error) {
	orig, err := buildPolygon(ext.Shape, surrCfg)
	if err != nil {
		return nil, geo.Point{}, fmt.Errorf("ioformat: item %d: %w", ext.ID, err)
	}
	centered, centroid := centerPolygon(orig)

	item := &entities.Item{
		ID:        ext.ID,
		ShapeCD:   centered,
		ShapeOrig: orig,
		Rotation:  rotationRangeFromDegrees(ext.AllowedOrientations),
		MinQuality: ext.BaseQuality,
	}
	return item, centroid, nil
}

// buildZones converts wire quality zones into domain zones. Zone shapes
// are not centered: zones are container-relative, like holes.
func buildZones(zones []ExtQualityZone, surrCfg surrogate.Config) ([]entities.InferiorQualityZone, error) {
	out := make([]entities.InferiorQualityZone, len(zones))
	for i, z := range zones {
		shape, err := buildPolygon(z.Shape, surrCfg)
		if err != nil {
			return nil, fmt.Errorf("ioformat: zone %d: %w", i, err)
		}
		out[i] = entities.InferiorQualityZone{ZoneID: i, Quality: z.Quality, Shape: shape}
	}
	return out, nil
}

func buildHoles(outer ExtShape, surrCfg surrogate.Config) ([]*geo.SimplePolygon, error) {
	if outer.Kind != ShapePolygon || outer.Poly == nil {
		return nil, nil
	}
	holes := make([]*geo.SimplePolygon, len(outer.Poly.Inner))
	for i, h := range outer.Poly.Inner {
		p, err := geo.NewSimplePolygon(toGeoPoints(h), surrCfg)
		if err != nil {
			return nil, fmt.Errorf("ioformat: hole %d: %w", i, err)
		}
		holes[i] = p
	}
	return holes, nil
}

func buildOuter(shape ExtShape, surrCfg surrogate.Config) (*geo.SimplePolygon, error) {
	switch shape.Kind {
	case ShapePolygon:
		if shape.Poly == nil {
			return nil, fmt.Errorf("ioformat: Polygon shape missing its outer boundary")
		}
		return geo.NewSimplePolygon(toGeoPoints(shape.Poly.Outer), surrCfg)
	default:
		pts, err := shape.ToPoints()
		if err != nil {
			return nil, err
		}
		return geo.NewSimplePolygon(toGeoPoints(pts), surrCfg)
	}
}

// buildItemsConcurrently converts every wire item in exts into a domain
// Item, one goroutine per item: each item's shape construction (polygon
// validation, centering, surrogate generation) is independent of every
// other item's, so the fan-out needs no synchronization beyond writing
// each goroutine's result to its own slice/map index. The first error
// encountered is returned once every goroutine has finished.
func buildItemsConcurrently(exts []ExtItem, surrCfg surrogate.Config) ([]*entities.Item, map[int]geo.Point, error) {
	items := make([]*entities.Item, len(exts))
	centroids := make([]geo.Point, len(exts))
	errs := make([]error, len(exts))

	var wg sync.WaitGroup
	for i := range exts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ext := exts[i]
			ext.ID = i
			item, centroid, err := buildItem(ext, surrCfg)
			items[i] = item
			centroids[i] = centroid
			errs[i] = err
		}(i)
	}
	wg.Wait()

	centroidMap := make(map[int]geo.Point, len(exts))
	for i, err := range errs {
		if err != nil {
			return nil, nil, err
		}
		centroidMap[i] = centroids[i]
	}
	return items, centroidMap, nil
}

// BuildSPPInstance converts a wire Instance with a Strip section into a
// problems/spp.Instance, assigning item IDs by array index (the legacy
// wire format has no explicit item id field). It returns the per-item
// centroid needed to externalize the resulting solution's transforms.
func BuildSPPInstance(inst Instance, surrCfg surrogate.Config) (*spp.Instance, map[int]geo.Point, error) {
	if inst.Strip == nil {
		return nil, nil, fmt.Errorf("ioformat: instance has no Strip section")
	}
	items, centroids, err := buildItemsConcurrently(inst.Items, surrCfg)
	if err != nil {
		return nil, nil, err
	}
	demand := make(map[int]uint64, len(inst.Items))
	for i, ext := range inst.Items {
		demand[i] = ext.Demand
	}
	return &spp.Instance{
		Items:          items,
		ItemDemandQtys: demand,
		StripHeight:    float32(inst.Strip.Height),
	}, centroids, nil
}

// BuildBPPInstance converts a wire Instance with an Objects/Bins section
// into a problems/bpp.Instance, assigning item and bin IDs by array
// index.
func BuildBPPInstance(inst Instance, surrCfg surrogate.Config) (*bpp.Instance, map[int]geo.Point, error) {
	if len(inst.Bins) == 0 {
		return nil, nil, fmt.Errorf("ioformat: instance has no Objects/Bins section")
	}
	items, centroids, err := buildItemsConcurrently(inst.Items, surrCfg)
	if err != nil {
		return nil, nil, err
	}
	demand := make(map[int]uint64, len(inst.Items))
	for i, ext := range inst.Items {
		demand[i] = ext.Demand
	}

	binTypes := make([]bpp.BinType, len(inst.Bins))
	for i := range inst.Bins {
		b := inst.Bins[i]
		outer, err := buildOuter(b.Shape, surrCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("ioformat: bin %d: %w", i, err)
		}
		holes, err := buildHoles(b.Shape, surrCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("ioformat: bin %d: %w", i, err)
		}
		zones, err := buildZones(b.Zones, surrCfg)
		if err != nil {
			return nil, nil, fmt.Errorf("ioformat: bin %d: %w", i, err)
		}
		stock := ^uint64(0)
		if b.Stock != nil {
			stock = *b.Stock
		}
		binTypes[i] = bpp.BinType{ID: i, Outer: outer, Holes: holes, Zones: zones, Stock: stock, Cost: b.Cost}
	}

	return &bpp.Instance{
		Items:          items,
		ItemDemandQtys: demand,
		BinTypes:       binTypes,
	}, centroids, nil
}

// ExportSPPSolution converts a strip-packing solution back to wire form,
// externalizing every placement transform via its item's stored centroid.
func ExportSPPSolution(sol *spp.Solution, centroids map[int]geo.Point, runTimeSec uint64) Solution {
	layout := ExtLayout{ContainerID: 0, Density: float64(sol.Density)}
	for _, pi := range sol.Layout.Items {
		layout.PlacedItems = append(layout.PlacedItems, toExtPlacedItem(pi, centroids))
	}
	return Solution{
		Density:    float64(sol.Density),
		RunTimeSec: runTimeSec,
		Layouts:    []ExtLayout{layout},
	}
}

// ExportBPPSolution converts a bin-packing solution back to wire form.
func ExportBPPSolution(sol *bpp.Solution, centroids map[int]geo.Point, runTimeSec uint64) Solution {
	layouts := make([]ExtLayout, len(sol.Layouts))
	for i, snap := range sol.Layouts {
		l := ExtLayout{ContainerID: sol.BinIDs[i]}
		for _, pi := range snap.Items {
			l.PlacedItems = append(l.PlacedItems, toExtPlacedItem(pi, centroids))
		}
		layouts[i] = l
	}
	cost := sol.Cost
	return Solution{
		Density:    float64(sol.Density),
		RunTimeSec: runTimeSec,
		Layouts:    layouts,
		Cost:       &cost,
	}
}

func toExtPlacedItem(pi entities.PlacedItem, centroids map[int]geo.Point) ExtPlacedItem {
	ext := externalTransform(pi.DTransf.Compose(), centroids[pi.ItemID])
	return ExtPlacedItem{
		ItemID: pi.ItemID,
		Transformation: ExtTransformation{
			Rotation:    float64(ext.Rotation),
			Translation: [2]float64{float64(ext.Tx), float64(ext.Ty)},
		},
	}
}
