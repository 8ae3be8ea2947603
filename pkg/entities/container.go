package entities

import (
	"fmt"

	"github.com/jaguago/jaguago/pkg/cde"
	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/hazard"
)

// InferiorQualityZone is a region of the container where only items with
// a min-quality requirement at or below Quality are allowed. Smaller
// Quality values are worse.
type InferiorQualityZone struct {
	ZoneID  int
	Quality int
	Shape   *geo.SimplePolygon
}

// Container is the static part of a packing problem: an outer boundary,
// optional holes, and quality zones, pre-seeded into a base CDE as static
// hazards. A Container is never mutated once built; every Layout over it
// clones the base CDE.
type Container struct {
	ID    int
	Outer *geo.SimplePolygon
	Holes []*geo.SimplePolygon
	Zones []InferiorQualityZone

	BaseCDE *cde.Engine
}

// NewContainer builds a Container and its base CDE: ContainerExterior
// (dangerous side = outside outer), each hole (dangerous side = inside),
// and each zone (dangerous side = inside, tagged with its quality).
func NewContainer(id int, outer *geo.SimplePolygon, holes []*geo.SimplePolygon, zones []InferiorQualityZone, cfg cde.Config) (*Container, error) {
	if outer == nil {
		return nil, fmt.Errorf("entities: container %d: outer shape is nil", id)
	}

	eng := cde.NewEngine(outer.BBox(), cfg)

	if _, err := eng.Register(hazard.Hazard{
		Entity: hazard.ContainerExterior(),
		Shape:  outer,
		Side:   hazard.SideOutside,
	}); err != nil {
		return nil, fmt.Errorf("entities: container %d: %w", id, err)
	}

	for i, hole := range holes {
		if hole == nil {
			return nil, fmt.Errorf("entities: container %d: hole %d is nil", id, i)
		}
		if _, err := eng.Register(hazard.Hazard{
			Entity: hazard.ContainerHole(i),
			Shape:  hole,
			Side:   hazard.SideInside,
		}); err != nil {
			return nil, fmt.Errorf("entities: container %d: hole %d: %w", id, i, err)
		}
	}

	for _, z := range zones {
		if z.Shape == nil {
			return nil, fmt.Errorf("entities: container %d: zone %d shape is nil", id, z.ZoneID)
		}
		if _, err := eng.Register(hazard.Hazard{
			Entity: hazard.InferiorQualityZone(z.Quality, z.ZoneID),
			Shape:  z.Shape,
			Side:   hazard.SideInside,
		}); err != nil {
			return nil, fmt.Errorf("entities: container %d: zone %d: %w", id, z.ZoneID, err)
		}
	}

	return &Container{
		ID:      id,
		Outer:   outer,
		Holes:   holes,
		Zones:   zones,
		BaseCDE: eng,
	}, nil
}

// UsableArea returns the container's outer area minus the area of its
// holes — the denominator of Density.
func (c *Container) UsableArea() float32 {
	area := c.Outer.Area()
	for _, h := range c.Holes {
		area -= h.Area()
	}
	return area
}
