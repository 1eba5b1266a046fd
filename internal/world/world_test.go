package world

import (
	"testing"

	"github.com/Develoder/BuilderEX/internal/components"
	"github.com/Develoder/BuilderEX/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestTerrainRaycast(t *testing.T) {
	w := New(nil)
	w.CreateTerrain(100)

	ray := rl.Ray{Position: rl.Vector3{X: 10, Y: 50, Z: -10}, Direction: rl.Vector3{Y: -1}}
	hit, ok := w.Raycast(ray, engine.MaskOf(engine.LayerTerrain), 1000)
	if !ok {
		t.Fatal("expected terrain hit")
	}
	if hit.GameObject != w.Terrain || hit.Point.Y > 1e-4 || hit.Point.Y < -1e-4 {
		t.Errorf("hit = %+v", hit)
	}

	outside := rl.Ray{Position: rl.Vector3{X: 80, Y: 50}, Direction: rl.Vector3{Y: -1}}
	if _, ok := w.Raycast(outside, engine.AllLayers, 1000); ok {
		t.Error("ray beyond the terrain edge should miss")
	}
}

func TestCreateTerrainReplaces(t *testing.T) {
	w := New(nil)
	first := w.CreateTerrain(50)
	second := w.CreateTerrain(80)

	if w.Scene.Contains(first) {
		t.Error("old terrain should be removed")
	}
	if w.Terrain != second || w.PhysicsWorld.Count() != 1 {
		t.Errorf("terrain = %v, colliders = %d", w.Terrain, w.PhysicsWorld.Count())
	}
}

func TestEnsureAnchorsReusesRoots(t *testing.T) {
	w := New(nil)
	existing := engine.NewGameObject("Buildings")
	w.SpawnObject(existing)

	anchors := w.EnsureAnchors("Ground", "Buildings", "Environments")
	if len(anchors) != 3 {
		t.Fatalf("anchors = %v", anchors)
	}
	if anchors["Buildings"] != existing {
		t.Error("existing root should be reused")
	}
	again := w.EnsureAnchors("Ground")
	if again["Ground"] != anchors["Ground"] {
		t.Error("second call should not create another anchor")
	}
	if len(w.Scene.Roots()) != 3 {
		t.Errorf("roots = %d, want 3", len(w.Scene.Roots()))
	}
}

func TestSpawnAndDestroyChild(t *testing.T) {
	w := New(nil)
	anchor := engine.NewGameObject("Buildings")
	w.SpawnObject(anchor)

	house := engine.NewGameObject("House")
	house.Layer = engine.LayerBuildings
	house.AddComponent(components.NewBoxCollider(rl.Vector3{X: 2, Y: 2, Z: 2}))
	house.SetParent(anchor, true)
	w.SpawnObject(house)

	if w.FindByUID(house.UID) != house || w.PhysicsWorld.Count() != 1 {
		t.Fatal("spawned child not registered")
	}

	w.Destroy(house)
	if house.Parent != nil || len(anchor.Children) != 0 {
		t.Error("destroyed object should be detached from its anchor")
	}
	if w.FindByUID(house.UID) != nil || w.PhysicsWorld.Count() != 0 {
		t.Error("destroyed object still registered")
	}
	if !w.Scene.Contains(anchor) {
		t.Error("anchor should survive")
	}
}

func TestRefreshAfterMove(t *testing.T) {
	w := New(nil)
	box := engine.NewGameObject("Box")
	box.AddComponent(components.NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1}))
	w.SpawnObject(box)

	ray := rl.Ray{Position: rl.Vector3{X: 40, Y: 10, Z: 40}, Direction: rl.Vector3{Y: -1}}
	box.Transform.Position = rl.Vector3{X: 40, Z: 40}
	w.Refresh(box)

	if hit, ok := w.Raycast(ray, engine.AllLayers, 100); !ok || hit.GameObject != box {
		t.Error("moved box should be hit at its new position")
	}
}

func TestClearKeepsTerrain(t *testing.T) {
	w := New(nil)
	w.CreateTerrain(100)
	w.EnsureAnchors("Ground", "Buildings")

	w.Clear()
	roots := w.Scene.Roots()
	if len(roots) != 1 || roots[0] != w.Terrain {
		t.Errorf("roots after Clear = %v", roots)
	}
}
