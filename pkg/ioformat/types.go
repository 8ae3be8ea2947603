package ioformat

// ExtQualityZone is a sub-region of a container with a distinct quality
// level.
type ExtQualityZone struct {
	Quality int      `json:"quality" yaml:"quality"`
	Shape   ExtShape `json:"shape" yaml:"shape"`
}

// ExtItem is one item definition: its shape, demand, allowed
// orientations (degrees; nil/empty means any continuous angle), and
// optional minimum required zone quality. ID is assigned by array
// position at import (the wire formats address items by index, not an
// explicit id field); the yaml tag exists only so exported YAML is
// self-describing.
type ExtItem struct {
	ID                  int              `json:"-" yaml:"id"`
	Demand              uint64           `json:"Demand" yaml:"demand"`
	AllowedOrientations []float64        `json:"AllowedOrientations,omitempty" yaml:"allowedOrientations,omitempty"`
	Shape               ExtShape         `json:"Shape" yaml:"shape"`
	BaseQuality         *int             `json:"BaseQuality,omitempty" yaml:"minQuality,omitempty"`
}

// ExtBin is one stock bin/container definition for bin packing.
type ExtBin struct {
	ID    int              `json:"-" yaml:"id"`
	Cost  uint64           `json:"Cost" yaml:"cost"`
	Stock *uint64          `json:"Stock,omitempty" yaml:"stock,omitempty"`
	Shape ExtShape         `json:"Shape" yaml:"shape"`
	Zones []ExtQualityZone `json:"Zones,omitempty" yaml:"zones,omitempty"`
}

// ExtStrip is the fixed-height, growable-width container for strip
// packing.
type ExtStrip struct {
	Height float64 `json:"Height" yaml:"height"`
}

// Instance is the wire-level problem instance. Exactly one of Bins or
// Strip is populated, selecting bin packing or strip packing.
type Instance struct {
	Name  string   `json:"Name" yaml:"name"`
	Items []ExtItem `json:"Items" yaml:"items"`
	Bins  []ExtBin  `json:"Objects,omitempty" yaml:"bins,omitempty"`
	Strip *ExtStrip `json:"Strip,omitempty" yaml:"strip,omitempty"`
}

// ExtTransformation is a rigid transform reported in external
// (pre-transform-composed) coordinates.
type ExtTransformation struct {
	Rotation    float64    `json:"Rotation" yaml:"rotation"`
	Translation [2]float64 `json:"Translation" yaml:"translation"`
}

// ExtPlacedItem is one item placement within a layout.
type ExtPlacedItem struct {
	ItemID         int               `json:"ItemId" yaml:"itemId"`
	Transformation ExtTransformation `json:"Transformation" yaml:"transformation"`
}

// ExtLayout is one container's worth of placed items.
type ExtLayout struct {
	ContainerID  int             `json:"ContainerId" yaml:"containerId"`
	PlacedItems  []ExtPlacedItem `json:"PlacedItems" yaml:"placedItems"`
	Density      float64         `json:"Density" yaml:"density"`
}

// Solution is the wire-level solve result. Cost is populated only for
// bin-packing solutions.
type Solution struct {
	Density    float64     `json:"Density" yaml:"density"`
	RunTimeSec uint64      `json:"RunTimeSec" yaml:"runTimeSec"`
	Layouts    []ExtLayout `json:"Layouts" yaml:"layouts"`
	Cost       *uint64     `json:"Cost,omitempty" yaml:"cost,omitempty"`
}
