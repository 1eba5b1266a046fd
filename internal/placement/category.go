package placement

import (
	"fmt"
	"strings"

	"github.com/Develoder/BuilderEX/internal/engine"
)

// Category is one of the fixed placement groups.
type Category int

const (
	Ground Category = iota
	Buildings
	Environments
)

var categoryNames = [...]string{"Ground", "Buildings", "Environments"}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Ground, Buildings, Environments}
}

func (c Category) Valid() bool {
	return c >= Ground && c <= Environments
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(strings.TrimSpace(s), c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// CategoryConfig holds the placement rules for one category.
type CategoryConfig struct {
	TargetLayers     engine.LayerMask // what the aim ray may hit
	ExclusionLayers  engine.LayerMask // what a footprint must not overlap
	PlacedLayer      engine.Layer     // layer given to committed instances
	GridSize         float32          // 0 disables snapping
	FootprintDivisor float32
	RotateStep       float32 // degrees per rotate edit
	Scalable         bool
}

// Grid reports whether hit points are snapped for this category.
func (c CategoryConfig) Grid() bool {
	return c.GridSize > 0
}

// Rules maps each category to its configuration.
type Rules map[Category]CategoryConfig

// DefaultRules returns the stock rule table. Ground tiles snap to a 30 unit
// grid and check a footprint shrunk by 10 against other tiles; buildings and
// environment pieces check a footprint halved against each other.
func DefaultRules() Rules {
	surface := engine.MaskOf(engine.LayerTerrain, engine.LayerGround)
	objects := engine.MaskOf(engine.LayerBuildings, engine.LayerEnvironments)
	return Rules{
		Ground: {
			TargetLayers:     surface,
			ExclusionLayers:  engine.MaskOf(engine.LayerGround),
			PlacedLayer:      engine.LayerGround,
			GridSize:         30,
			FootprintDivisor: 10,
			RotateStep:       90,
			Scalable:         false,
		},
		Buildings: {
			TargetLayers:     surface,
			ExclusionLayers:  objects,
			PlacedLayer:      engine.LayerBuildings,
			FootprintDivisor: 2,
			RotateStep:       20,
			Scalable:         true,
		},
		Environments: {
			TargetLayers:     surface,
			ExclusionLayers:  objects,
			PlacedLayer:      engine.LayerEnvironments,
			FootprintDivisor: 2,
			RotateStep:       20,
			Scalable:         true,
		},
	}
}

// Lookup returns the configuration for c.
func (r Rules) Lookup(c Category) (CategoryConfig, error) {
	cfg, ok := r[c]
	if !ok {
		return CategoryConfig{}, fmt.Errorf("%w: %v", ErrUnknownCategory, c)
	}
	return cfg, nil
}

// Validate checks that every category has a usable record.
func (r Rules) Validate() error {
	for _, c := range Categories() {
		cfg, ok := r[c]
		if !ok {
			return fmt.Errorf("rules: missing %v", c)
		}
		if cfg.FootprintDivisor <= 0 {
			return fmt.Errorf("rules: %v footprint divisor must be positive, got %v", c, cfg.FootprintDivisor)
		}
		if cfg.GridSize < 0 {
			return fmt.Errorf("rules: %v grid size must not be negative, got %v", c, cfg.GridSize)
		}
		if cfg.RotateStep < 0 {
			return fmt.Errorf("rules: %v rotate step must not be negative, got %v", c, cfg.RotateStep)
		}
		if cfg.TargetLayers == 0 {
			return fmt.Errorf("rules: %v has no target layers", c)
		}
		if cfg.ExclusionLayers.Has(engine.LayerTerrain) {
			return fmt.Errorf("rules: %v excludes the terrain layer, nothing could be placed", c)
		}
	}
	for c := range r {
		if !c.Valid() {
			return fmt.Errorf("%w: %v", ErrUnknownCategory, c)
		}
	}
	return nil
}

// aimLayers returns the mask the aim ray uses for c. Environment pieces are
// always anchored to whatever the Ground category aims at.
func (r Rules) aimLayers(c Category) engine.LayerMask {
	if c == Environments {
		return r[Ground].TargetLayers
	}
	return r[c].TargetLayers
}
