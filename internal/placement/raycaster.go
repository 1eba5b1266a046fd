package placement

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultMaxDistance bounds the aim ray when no distance is configured.
const DefaultMaxDistance = 10000

// Raycaster resolves an aim ray to a candidate point for a category.
type Raycaster struct {
	World       Querier
	Rules       Rules
	MaxDistance float32
}

// Cast returns the nearest hit on the category's aim layers and, for grid
// categories, snaps it.
func (r Raycaster) Cast(ray rl.Ray, c Category) (rl.Vector3, bool) {
	maxDist := r.MaxDistance
	if maxDist <= 0 {
		maxDist = DefaultMaxDistance
	}
	hit, ok := r.World.Raycast(ray, r.Rules.aimLayers(c), maxDist)
	if !ok {
		return rl.Vector3{}, false
	}
	cfg := r.Rules[c]
	if cfg.Grid() {
		return Snap(hit.Point, cfg.GridSize), true
	}
	return hit.Point, true
}
