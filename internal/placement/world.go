package placement

import (
	"github.com/Develoder/BuilderEX/internal/engine"
	"github.com/Develoder/BuilderEX/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Querier answers the read-only geometry questions a session asks each tick.
type Querier interface {
	Raycast(ray rl.Ray, mask engine.LayerMask, maxDistance float32) (physics.RaycastHit, bool)
	OverlapBox(box physics.OBB, mask engine.LayerMask) []*engine.GameObject
}

// World is the scene the session places into.
type World interface {
	Querier
	SpawnObject(g *engine.GameObject)
	FindByUID(uid uint64) *engine.GameObject
}

// UndoRegistrar records a committed object so the host can revert it.
type UndoRegistrar interface {
	RegisterCreated(g *engine.GameObject, label string)
}

// CatalogSource loads the ordered templates for a category name.
type CatalogSource interface {
	Load(category string) ([]Entry, error)
}

// Entry is one placeable template.
type Entry struct {
	Name     string
	Template *engine.GameObject
	Bounds   rl.Vector3 // axis-aligned size at unit scale
}
