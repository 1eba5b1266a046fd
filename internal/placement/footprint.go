package placement

import (
	"github.com/Develoder/BuilderEX/internal/engine"
	"github.com/Develoder/BuilderEX/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Verdict is the outcome of a footprint check.
type Verdict struct {
	Allowed  bool
	Box      physics.OBB
	Blockers []*engine.GameObject
}

// Footprint builds the box tested for overlap: the template bounds scaled by
// scale.X, shrunk by divisor and oriented by rot, centered at center.
func Footprint(bounds, scale, rot rl.Vector3, divisor float32, center rl.Vector3) physics.OBB {
	if divisor <= 0 {
		divisor = 1
	}
	k := scale.X / divisor
	size := rl.Vector3Scale(bounds, k)
	return physics.NewOBB(center, size, rot)
}

// FootprintValidator checks candidate footprints against the world.
type FootprintValidator struct {
	World Querier
}

// Validate reports whether the footprint of a template with bounds, placed at
// center with the given transform, is free of geometry on cfg's exclusion
// layers.
func (v FootprintValidator) Validate(bounds rl.Vector3, xf engine.Transform, center rl.Vector3, cfg CategoryConfig) Verdict {
	box := Footprint(bounds, xf.Scale, xf.Rotation, cfg.FootprintDivisor, center)
	blockers := v.World.OverlapBox(box, cfg.ExclusionLayers)
	return Verdict{
		Allowed:  len(blockers) == 0,
		Box:      box,
		Blockers: blockers,
	}
}
