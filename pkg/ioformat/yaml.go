package ioformat

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/problems/bpp"
	"github.com/jaguago/jaguago/pkg/problems/spp"
	"github.com/jaguago/jaguago/pkg/surrogate"
)

// ParseInstanceYAML decodes a wire Instance from the flatter alternate
// YAML representation.
func ParseInstanceYAML(data []byte) (*Instance, error) {
	var inst Instance
	if err := yaml.Unmarshal(data, &inst); err != nil {
		return nil, fmt.Errorf("ioformat: parsing YAML instance: %w", err)
	}
	return &inst, nil
}

// ImportSPPYAML parses a strip-packing instance from the YAML
// representation and converts it to domain objects.
func ImportSPPYAML(data []byte, surrCfg surrogate.Config) (*spp.Instance, map[int]geo.Point, error) {
	inst, err := ParseInstanceYAML(data)
	if err != nil {
		return nil, nil, err
	}
	return BuildSPPInstance(*inst, surrCfg)
}

// ImportBPPYAML parses a bin-packing instance from the YAML
// representation and converts it to domain objects.
func ImportBPPYAML(data []byte, surrCfg surrogate.Config) (*bpp.Instance, map[int]geo.Point, error) {
	inst, err := ParseInstanceYAML(data)
	if err != nil {
		return nil, nil, err
	}
	return BuildBPPInstance(*inst, surrCfg)
}

// ExportSolutionYAML serializes a wire Solution to the flatter alternate
// YAML representation.
func ExportSolutionYAML(sol Solution) ([]byte, error) {
	data, err := yaml.Marshal(sol)
	if err != nil {
		return nil, fmt.Errorf("ioformat: encoding YAML solution: %w", err)
	}
	return data, nil
}
