package ioformat

import (
	"encoding/json"
	"fmt"

	"github.com/jaguago/jaguago/pkg/geo"
	"github.com/jaguago/jaguago/pkg/problems/bpp"
	"github.com/jaguago/jaguago/pkg/problems/spp"
	"github.com/jaguago/jaguago/pkg/surrogate"
)

// ParseInstanceJSON decodes a wire Instance from legacy-format JSON bytes.
func ParseInstanceJSON(data []byte) (*Instance, error) {
	var inst Instance
	if err := json.Unmarshal(data, &inst); err != nil {
		return nil, fmt.Errorf("ioformat: parsing JSON instance: %w", err)
	}
	return &inst, nil
}

// ImportSPPJSON parses a strip-packing instance from legacy JSON and
// converts it to domain objects, returning the per-item centroids needed
// to export the eventual solution.
func ImportSPPJSON(data []byte, surrCfg surrogate.Config) (*spp.Instance, map[int]geo.Point, error) {
	inst, err := ParseInstanceJSON(data)
	if err != nil {
		return nil, nil, err
	}
	return BuildSPPInstance(*inst, surrCfg)
}

// ImportBPPJSON parses a bin-packing instance from legacy JSON and
// converts it to domain objects.
func ImportBPPJSON(data []byte, surrCfg surrogate.Config) (*bpp.Instance, map[int]geo.Point, error) {
	inst, err := ParseInstanceJSON(data)
	if err != nil {
		return nil, nil, err
	}
	return BuildBPPInstance(*inst, surrCfg)
}

// ExportSolutionJSON serializes a wire Solution to legacy-format JSON.
func ExportSolutionJSON(sol Solution) ([]byte, error) {
	data, err := json.MarshalIndent(sol, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("ioformat: encoding JSON solution: %w", err)
	}
	return data, nil
}
