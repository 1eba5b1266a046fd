package placement

import (
	"errors"
	"testing"

	"github.com/Develoder/BuilderEX/internal/engine"
)

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	if err := rules.Validate(); err != nil {
		t.Fatalf("DefaultRules invalid: %v", err)
	}

	ground := rules[Ground]
	if !ground.Grid() || ground.GridSize != 30 {
		t.Errorf("ground grid = %v", ground.GridSize)
	}
	if ground.FootprintDivisor != 10 || ground.RotateStep != 90 || ground.Scalable {
		t.Errorf("ground rules = %+v", ground)
	}

	for _, c := range []Category{Buildings, Environments} {
		cfg := rules[c]
		if cfg.Grid() {
			t.Errorf("%v should not snap", c)
		}
		if cfg.FootprintDivisor != 2 || cfg.RotateStep != 20 || !cfg.Scalable {
			t.Errorf("%v rules = %+v", c, cfg)
		}
	}

	if rules[Buildings].PlacedLayer != engine.LayerBuildings {
		t.Errorf("buildings placed layer = %v", rules[Buildings].PlacedLayer)
	}
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(Rules)
	}{
		{"missing category", func(r Rules) { delete(r, Environments) }},
		{"zero divisor", func(r Rules) {
			c := r[Buildings]
			c.FootprintDivisor = 0
			r[Buildings] = c
		}},
		{"negative grid", func(r Rules) {
			c := r[Ground]
			c.GridSize = -1
			r[Ground] = c
		}},
		{"no target", func(r Rules) {
			c := r[Ground]
			c.TargetLayers = 0
			r[Ground] = c
		}},
		{"terrain excluded", func(r Rules) {
			c := r[Buildings]
			c.ExclusionLayers |= engine.MaskOf(engine.LayerTerrain)
			r[Buildings] = c
		}},
		{"unknown key", func(r Rules) { r[Category(7)] = r[Ground] }},
	}

	for _, tt := range tests {
		rules := DefaultRules()
		tt.mutate(rules)
		if err := rules.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLookupUnknownCategory(t *testing.T) {
	_, err := DefaultRules().Lookup(Category(9))
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		if err != nil || got != c {
			t.Errorf("ParseCategory(%q) = %v, %v", c.String(), got, err)
		}
	}
	if got, err := ParseCategory(" buildings "); err != nil || got != Buildings {
		t.Errorf("case-insensitive parse failed: %v, %v", got, err)
	}
	if _, err := ParseCategory("Roads"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestEnvironmentsAimWithGroundLayers(t *testing.T) {
	rules := DefaultRules()
	env := rules[Environments]
	env.TargetLayers = engine.MaskOf(engine.LayerBuildings)
	rules[Environments] = env

	if rules.aimLayers(Environments) != rules[Ground].TargetLayers {
		t.Errorf("environments aim mask = %b, want ground's %b", rules.aimLayers(Environments), rules[Ground].TargetLayers)
	}
	if rules.aimLayers(Buildings) != rules[Buildings].TargetLayers {
		t.Error("buildings should use their own target layers")
	}
}
