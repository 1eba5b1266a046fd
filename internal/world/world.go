package world

import (
	"github.com/Develoder/BuilderEX/internal/components"
	"github.com/Develoder/BuilderEX/internal/engine"
	"github.com/Develoder/BuilderEX/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const (
	DefaultTerrainSize = 600.0
	TerrainName        = "Terrain"
	TerrainTag         = "terrain"
	terrainThickness   = 1.0
)

// World owns the scene and the query registry that mirrors it.
type World struct {
	Scene        *engine.Scene
	PhysicsWorld *physics.PhysicsWorld
	Terrain      *engine.GameObject

	log *zap.Logger
}

func New(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		Scene:        engine.NewScene("Main"),
		PhysicsWorld: physics.NewPhysicsWorld(),
		log:          log,
	}
}

// CreateTerrain adds the base plane the aim ray lands on. Its top face is at
// y=0. Calling it again replaces the old plane.
func (w *World) CreateTerrain(size float32) *engine.GameObject {
	if w.Terrain != nil {
		w.Destroy(w.Terrain)
	}
	if size <= 0 {
		size = DefaultTerrainSize
	}

	t := engine.NewGameObject(TerrainName)
	t.Tags = []string{TerrainTag}
	t.Layer = engine.LayerTerrain
	col := components.NewBoxCollider(rl.Vector3{X: size, Y: terrainThickness, Z: size})
	col.Offset = rl.Vector3{Y: -terrainThickness / 2}
	t.AddComponent(col)
	t.AddComponent(components.NewMeshRenderer(components.MeshPlane, rl.LightGray, rl.Vector3{X: size, Z: size}))

	w.SpawnObject(t)
	w.Terrain = t
	w.log.Debug("terrain created", zap.Float32("size", size))
	return t
}

// EnsureAnchors returns a root object per name, creating the missing ones.
// Existing roots with a matching name are reused so a loaded scene keeps
// its hierarchy.
func (w *World) EnsureAnchors(names ...string) map[string]*engine.GameObject {
	out := make(map[string]*engine.GameObject, len(names))
	for _, name := range names {
		var found *engine.GameObject
		for _, root := range w.Scene.Roots() {
			if root.Name == name {
				found = root
				break
			}
		}
		if found == nil {
			found = engine.NewGameObject(name)
			w.SpawnObject(found)
			w.log.Debug("anchor created", zap.String("name", name))
		}
		out[name] = found
	}
	return out
}

// SpawnObject adds g and its children to the scene and the query registry.
func (w *World) SpawnObject(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.PhysicsWorld.AddObject(g)
	g.Walk(func(obj *engine.GameObject) { obj.Start() })
}

// Destroy detaches g from its parent and removes it and its children from
// the world.
func (w *World) Destroy(g *engine.GameObject) {
	if g == nil {
		return
	}
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	w.PhysicsWorld.RemoveObject(g)
	w.Scene.RemoveGameObject(g)
	if g == w.Terrain {
		w.Terrain = nil
	}
}

// Refresh tells the query registry that g moved.
func (w *World) Refresh(g *engine.GameObject) {
	w.PhysicsWorld.MarkDirty()
}

// Clear removes everything except the terrain.
func (w *World) Clear() {
	for _, root := range w.Scene.Roots() {
		if root != w.Terrain {
			w.Destroy(root)
		}
	}
}

func (w *World) FindByUID(uid uint64) *engine.GameObject {
	return w.Scene.FindByUID(uid)
}

func (w *World) Raycast(ray rl.Ray, mask engine.LayerMask, maxDistance float32) (physics.RaycastHit, bool) {
	return w.PhysicsWorld.Raycast(ray, mask, maxDistance)
}

func (w *World) OverlapBox(box physics.OBB, mask engine.LayerMask) []*engine.GameObject {
	return w.PhysicsWorld.OverlapBox(box, mask)
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}
