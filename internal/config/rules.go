package config

import (
	"fmt"

	"github.com/Develoder/BuilderEX/internal/engine"
	"github.com/Develoder/BuilderEX/internal/placement"
)

// Rules converts the category records into a validated placement table.
func (p PlacementConfig) Rules() (placement.Rules, error) {
	records := map[placement.Category]CategoryRecord{
		placement.Ground:       p.Categories.Ground,
		placement.Buildings:    p.Categories.Buildings,
		placement.Environments: p.Categories.Environments,
	}

	rules := make(placement.Rules, len(records))
	for cat, rec := range records {
		cfg, err := rec.toCategoryConfig()
		if err != nil {
			return nil, fmt.Errorf("placement %v: %w", cat, err)
		}
		rules[cat] = cfg
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r CategoryRecord) toCategoryConfig() (placement.CategoryConfig, error) {
	target, err := engine.ParseMask(r.TargetLayers)
	if err != nil {
		return placement.CategoryConfig{}, fmt.Errorf("target_layers: %w", err)
	}
	exclusion, err := engine.ParseMask(r.ExclusionLayers)
	if err != nil {
		return placement.CategoryConfig{}, fmt.Errorf("exclusion_layers: %w", err)
	}
	placed, err := engine.ParseLayer(r.PlacedLayer)
	if err != nil {
		return placement.CategoryConfig{}, fmt.Errorf("placed_layer: %w", err)
	}
	return placement.CategoryConfig{
		TargetLayers:     target,
		ExclusionLayers:  exclusion,
		PlacedLayer:      placed,
		GridSize:         r.GridSize,
		FootprintDivisor: r.FootprintDivisor,
		RotateStep:       r.RotateStep,
		Scalable:         r.Scalable,
	}, nil
}
