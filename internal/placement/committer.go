package placement

import (
	"fmt"

	"github.com/Develoder/BuilderEX/internal/components"
	"github.com/Develoder/BuilderEX/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Committer turns a validated candidate into a permanent world object.
type Committer struct {
	World  World
	Undo   UndoRegistrar
	Logger *zap.Logger

	seq uint64
}

// Commit clones entry's template under anchor with its world transform set
// to point and xf's rotation and scale, moves the whole hierarchy to the
// category's placed layer, spawns it and registers it for undo.
func (c *Committer) Commit(cat Category, cfg CategoryConfig, entry Entry, anchor *engine.GameObject, point rl.Vector3, xf engine.Transform) (*engine.GameObject, error) {
	log := c.logger()
	if entry.Template == nil {
		return nil, ErrStaleSelection
	}
	if anchor == nil || c.World.FindByUID(anchor.UID) != anchor {
		log.Warn("commit rejected, parent anchor missing",
			zap.Stringer("category", cat),
			zap.String("template", entry.Name))
		return nil, fmt.Errorf("%w: %v", ErrNoAnchor, cat)
	}

	obj := entry.Template.Clone()
	obj.Active = true
	obj.Transform = engine.Transform{
		Position: point,
		Rotation: xf.Rotation,
		Scale:    xf.Scale,
	}
	obj.SetParent(anchor, true)
	obj.SetLayerRecursive(cfg.PlacedLayer)

	c.seq++
	obj.AddComponent(components.NewPlaced(cat.String(), entry.Name, c.seq))

	c.World.SpawnObject(obj)
	if c.Undo != nil {
		c.Undo.RegisterCreated(obj, "Create "+entry.Name)
	}

	log.Info("placed object",
		zap.Stringer("category", cat),
		zap.String("template", entry.Name),
		zap.Uint64("uid", obj.UID),
		zap.Float32("x", point.X),
		zap.Float32("y", point.Y),
		zap.Float32("z", point.Z))
	return obj, nil
}

func (c *Committer) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
