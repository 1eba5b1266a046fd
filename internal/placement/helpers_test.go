package placement

import (
	"fmt"
	"math"

	"github.com/Develoder/BuilderEX/internal/components"
	"github.com/Develoder/BuilderEX/internal/engine"
	"github.com/Develoder/BuilderEX/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// testWorld is a minimal scene plus query registry with a flat terrain whose
// top face sits at y=0.
type testWorld struct {
	scene   *engine.Scene
	physics *physics.PhysicsWorld
	spawned int
}

func newTestWorld() *testWorld {
	w := &testWorld{
		scene:   engine.NewScene("test"),
		physics: physics.NewPhysicsWorld(),
	}
	terrain := newBlock("Terrain", engine.LayerTerrain, rl.Vector3{Y: -0.5}, rl.Vector3{X: 2000, Y: 1, Z: 2000})
	w.scene.AddGameObject(terrain)
	w.physics.AddObject(terrain)
	return w
}

func (w *testWorld) Raycast(ray rl.Ray, mask engine.LayerMask, maxDistance float32) (physics.RaycastHit, bool) {
	return w.physics.Raycast(ray, mask, maxDistance)
}

func (w *testWorld) OverlapBox(box physics.OBB, mask engine.LayerMask) []*engine.GameObject {
	return w.physics.OverlapBox(box, mask)
}

func (w *testWorld) SpawnObject(g *engine.GameObject) {
	w.scene.AddGameObject(g)
	w.physics.AddObject(g)
	w.spawned++
}

func (w *testWorld) FindByUID(uid uint64) *engine.GameObject {
	return w.scene.FindByUID(uid)
}

func (w *testWorld) remove(g *engine.GameObject) {
	w.scene.RemoveGameObject(g)
	w.physics.RemoveObject(g)
}

func (w *testWorld) anchor(name string) *engine.GameObject {
	a := engine.NewGameObject(name)
	w.SpawnObject(a)
	w.spawned--
	return a
}

func newBlock(name string, layer engine.Layer, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Layer = layer
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	return g
}

// template builds a catalog entry whose collider matches its bounds.
func template(name string, size rl.Vector3) Entry {
	g := engine.NewGameObject(name)
	g.AddComponent(components.NewBoxCollider(size))
	g.AddComponent(components.NewMeshRenderer(components.MeshCube, rl.Gray, size))
	return Entry{Name: name, Template: g, Bounds: size}
}

type recordedUndo struct {
	obj   *engine.GameObject
	label string
}

type fakeUndo struct {
	records []recordedUndo
}

func (u *fakeUndo) RegisterCreated(g *engine.GameObject, label string) {
	u.records = append(u.records, recordedUndo{obj: g, label: label})
}

type mapSource map[string][]Entry

func (m mapSource) Load(category string) ([]Entry, error) {
	entries, ok := m[category]
	if !ok {
		return nil, fmt.Errorf("no such folder %q", category)
	}
	return entries, nil
}

func downRay(x, z float32) rl.Ray {
	return rl.Ray{Position: rl.Vector3{X: x, Y: 100, Z: z}, Direction: rl.Vector3{Y: -1}}
}

func skyRay() rl.Ray {
	return rl.Ray{Position: rl.Vector3{Y: 100}, Direction: rl.Vector3{Y: 1}}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func approxVec(a, b rl.Vector3) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Z, b.Z)
}
