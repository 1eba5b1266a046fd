package physics

import (
	"testing"

	"github.com/Develoder/BuilderEX/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type testBox struct {
	engine.BaseComponent
	size rl.Vector3
}

func (b *testBox) OBB() OBB {
	g := b.GetGameObject()
	return NewOBBFromBox(g.WorldPosition(), b.size, g.WorldRotation(), g.WorldScale())
}

func newBox(name string, layer engine.Layer, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Layer = layer
	g.Transform.Position = pos
	g.AddComponent(&testBox{size: size})
	return g
}

func TestRaycastNearestOnMask(t *testing.T) {
	p := NewPhysicsWorld()
	ground := newBox("Ground", engine.LayerTerrain, rl.Vector3{}, rl.Vector3{X: 100, Y: 1, Z: 100})
	roof := newBox("Roof", engine.LayerBuildings, rl.Vector3{Y: 5}, rl.Vector3{X: 4, Y: 1, Z: 4})
	p.AddObject(ground)
	p.AddObject(roof)

	ray := rl.Ray{Position: rl.Vector3{Y: 50}, Direction: rl.Vector3{Y: -1}}

	hit, ok := p.Raycast(ray, engine.AllLayers, 1000)
	if !ok || hit.GameObject != roof {
		t.Fatalf("expected roof first, got %+v", hit)
	}
	if !near(hit.Point.Y, 5.5) {
		t.Errorf("hit point = %v", hit.Point)
	}

	hit, ok = p.Raycast(ray, engine.MaskOf(engine.LayerTerrain), 1000)
	if !ok || hit.GameObject != ground {
		t.Fatalf("mask should skip the roof, got %+v", hit)
	}

	if _, ok := p.Raycast(ray, engine.MaskOf(engine.LayerGround), 1000); ok {
		t.Error("nothing on the ground layer yet")
	}

	if _, ok := p.Raycast(ray, engine.AllLayers, 10); ok {
		t.Error("hit beyond max distance should be ignored")
	}
}

func TestRaycastSkipsInactive(t *testing.T) {
	p := NewPhysicsWorld()
	box := newBox("Box", engine.LayerGround, rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2})
	box.Active = false
	p.AddObject(box)

	ray := rl.Ray{Position: rl.Vector3{Y: 10}, Direction: rl.Vector3{Y: -1}}
	if _, ok := p.Raycast(ray, engine.AllLayers, 100); ok {
		t.Error("inactive objects should not be hit")
	}
}

func TestOverlapBoxFiltersAndSorts(t *testing.T) {
	p := NewPhysicsWorld()
	a := newBox("A", engine.LayerBuildings, rl.Vector3{X: 0}, rl.Vector3{X: 2, Y: 2, Z: 2})
	b := newBox("B", engine.LayerEnvironments, rl.Vector3{X: 1}, rl.Vector3{X: 2, Y: 2, Z: 2})
	c := newBox("C", engine.LayerGround, rl.Vector3{X: 0}, rl.Vector3{X: 2, Y: 2, Z: 2})
	far := newBox("Far", engine.LayerBuildings, rl.Vector3{X: 50}, rl.Vector3{X: 2, Y: 2, Z: 2})
	p.AddObject(b)
	p.AddObject(a)
	p.AddObject(c)
	p.AddObject(far)

	query := NewOBB(rl.Vector3{X: 0.5}, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Vector3{})
	got := p.OverlapBox(query, engine.MaskOf(engine.LayerBuildings, engine.LayerEnvironments))

	if len(got) != 2 {
		t.Fatalf("expected 2 overlaps, got %d", len(got))
	}
	if got[0].UID > got[1].UID {
		t.Error("results should be ordered by UID")
	}
	for _, g := range got {
		if g == c || g == far {
			t.Errorf("unexpected overlap with %s", g.Name)
		}
	}
}

func TestOverlapBoxContainedFootprint(t *testing.T) {
	p := NewPhysicsWorld()
	house := newBox("House", engine.LayerBuildings, rl.Vector3{X: 20, Z: 20}, rl.Vector3{X: 10, Y: 6, Z: 10})
	p.AddObject(house)

	// Entirely inside the house.
	query := NewOBB(rl.Vector3{X: 20, Z: 20}, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Vector3{Y: 30})
	if got := p.OverlapBox(query, engine.MaskOf(engine.LayerBuildings)); len(got) != 1 {
		t.Errorf("contained footprint should be blocked, got %d", len(got))
	}
}

func TestAddObjectRegistersChildren(t *testing.T) {
	p := NewPhysicsWorld()
	root := engine.NewGameObject("Root")
	child := newBox("Child", engine.LayerBuildings, rl.Vector3{X: 3}, rl.Vector3{X: 1, Y: 1, Z: 1})
	root.AddChild(child)

	p.AddObject(root)
	p.AddObject(root)
	if p.Count() != 1 {
		t.Fatalf("expected only the child collider registered once, got %d", p.Count())
	}

	p.RemoveObject(root)
	if p.Count() != 0 {
		t.Errorf("expected empty registry, got %d", p.Count())
	}

	query := NewOBB(rl.Vector3{X: 3}, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Vector3{})
	if got := p.OverlapBox(query, engine.AllLayers); len(got) != 0 {
		t.Error("removed object still returned by OverlapBox")
	}
}

func TestLargeCollidersBypassGrid(t *testing.T) {
	p := NewPhysicsWorld()
	terrain := newBox("Terrain", engine.LayerTerrain, rl.Vector3{Y: -0.5}, rl.Vector3{X: 2000, Y: 1, Z: 2000})
	p.AddObject(terrain)

	query := NewOBB(rl.Vector3{X: 700, Z: -700}, rl.Vector3{X: 1, Y: 2, Z: 1}, rl.Vector3{})
	if got := p.OverlapBox(query, engine.AllLayers); len(got) != 1 {
		t.Errorf("terrain should overlap anywhere on its surface, got %d", len(got))
	}
}

func TestMarkDirtyPicksUpMovedObjects(t *testing.T) {
	p := NewPhysicsWorld()
	box := newBox("Box", engine.LayerBuildings, rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	p.AddObject(box)

	query := NewOBB(rl.Vector3{X: 100}, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Vector3{})
	if len(p.OverlapBox(query, engine.AllLayers)) != 0 {
		t.Fatal("box should not be at x=100 yet")
	}

	box.Transform.Position.X = 100
	p.MarkDirty()
	if len(p.OverlapBox(query, engine.AllLayers)) != 1 {
		t.Error("moved box not found after MarkDirty")
	}
}
