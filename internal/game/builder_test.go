package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Develoder/BuilderEX/internal/components"
	"github.com/Develoder/BuilderEX/internal/config"
	"github.com/Develoder/BuilderEX/internal/engine"
	"github.com/Develoder/BuilderEX/internal/placement"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const housePrefab = `{
  "name": "House",
  "components": [
    {"type": "BoxCollider", "size": [4, 3, 4], "offset": [0, 1.5, 0]},
    {"type": "MeshRenderer", "mesh": "cube", "size": [4, 3, 4], "color": "Maroon"}
  ]
}`

const tilePrefab = `{
  "name": "Tile",
  "components": [{"type": "BoxCollider", "size": [30, 0.2, 30]}]
}`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Catalog.Root = filepath.Join(dir, "prefabs")
	cfg.Scene.Path = filepath.Join(dir, "scenes", "level.json")
	cfg.Placement.TerrainSize = 200

	write := func(rel, body string) {
		path := filepath.Join(cfg.Catalog.Root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("Buildings/house.json", housePrefab)
	write("Ground/tile.json", tilePrefab)
	return cfg
}

func aimAt(x, z float32) rl.Ray {
	return rl.Ray{Position: rl.Vector3{X: x, Y: 100, Z: z}, Direction: rl.Vector3{Y: -1}}
}

func newTestBuilder(t *testing.T) (*Builder, *config.Config) {
	t.Helper()
	cfg := testConfig(t)
	b, err := NewBuilder(cfg, nil)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	return b, cfg
}

func TestNewBuilderSetsUpWorld(t *testing.T) {
	b, _ := newTestBuilder(t)

	if b.World.Terrain == nil {
		t.Fatal("terrain missing")
	}
	for _, c := range placement.Categories() {
		a := b.Session.AnchorFor(c)
		if a == nil || a.Name != c.String() {
			t.Errorf("anchor for %v = %v", c, a)
		}
	}
	if b.Session.Category() != placement.Ground || len(b.Session.Catalog()) != 1 {
		t.Errorf("expected Ground catalog with one tile, got %v with %d", b.Session.Category(), len(b.Session.Catalog()))
	}
	if b.Building() {
		t.Error("builder should start inactive")
	}
}

func TestPlaceUndoAndSave(t *testing.T) {
	b, cfg := newTestBuilder(t)
	if err := b.SelectCategory(placement.Buildings); err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	b.SetBuilding(true)

	res := b.Frame(Intents{Ray: aimAt(20, -20), Confirm: true})
	if res.CommitErr != nil || res.Committed == nil {
		t.Fatalf("commit failed: %+v", res)
	}
	house := res.Committed
	if house.Parent != b.Session.AnchorFor(placement.Buildings) {
		t.Error("house should be under the Buildings anchor")
	}
	if house.Layer != engine.LayerBuildings {
		t.Errorf("layer = %v", house.Layer)
	}
	if b.LastCreated() != house {
		t.Error("LastCreated should track the commit")
	}

	// A second house in the same spot is blocked.
	res = b.Frame(Intents{Ray: aimAt(20, -20), Confirm: true})
	if !errors.Is(res.CommitErr, placement.ErrBlocked) {
		t.Errorf("expected ErrBlocked, got %v", res.CommitErr)
	}
	if msg, _ := b.Status(); msg != "Blocked" {
		t.Errorf("status = %q", msg)
	}

	if err := b.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !b.UndoLast() {
		t.Fatal("undo should succeed")
	}
	if b.World.FindByUID(house.UID) != nil || b.LastCreated() != nil {
		t.Error("undo should remove the house")
	}
	if b.UndoLast() {
		t.Error("second undo should have nothing left")
	}

	// The saved scene still has the house.
	reloaded, err := NewBuilder(cfg, nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	anchor := reloaded.Session.AnchorFor(placement.Buildings)
	if anchor == nil || len(anchor.Children) != 1 || anchor.Children[0].Name != "House" {
		t.Fatalf("reloaded Buildings anchor = %+v", anchor)
	}
	placed := engine.GetComponent[*components.Placed](anchor.Children[0])
	if placed == nil || placed.Category != "Buildings" {
		t.Errorf("Placed = %+v", placed)
	}
}

func TestFrameUndoAndSaveIntents(t *testing.T) {
	b, cfg := newTestBuilder(t)
	b.SetBuilding(true)

	res := b.Frame(Intents{Ray: aimAt(37, 44), Confirm: true})
	if res.Committed == nil {
		t.Fatalf("ground tile not placed: %v", res.CommitErr)
	}
	if got := res.Committed.WorldPosition(); got.X != 30 || got.Z != 30 || got.Y != 0 {
		t.Errorf("tile at %v, want snapped to (30, 0, 30)", got)
	}

	b.Frame(Intents{Ray: aimAt(37, 44), Save: true, Undo: true})
	if b.Undo.Len() != 0 {
		t.Error("undo intent should pop the tile")
	}
	if _, err := os.Stat(cfg.Scene.Path); err != nil {
		t.Errorf("save intent should write the scene: %v", err)
	}
}

func TestNudgeCreatedIsUndoable(t *testing.T) {
	b, _ := newTestBuilder(t)
	b.SelectCategory(placement.Buildings)
	b.SetBuilding(true)
	house := b.Frame(Intents{Ray: aimAt(-40, 10), Confirm: true}).Committed
	if house == nil {
		t.Fatal("house not placed")
	}
	before := house.Transform

	b.NudgeCreated(rl.Vector3{Y: 1}, -15)
	if house.Transform.Position.Y != before.Position.Y+1 || house.Transform.Rotation.Y != 345 {
		t.Errorf("nudged transform = %+v", house.Transform)
	}

	b.UndoLast()
	if house.Transform != before {
		t.Errorf("undo should restore %+v, got %+v", before, house.Transform)
	}
	if b.LastCreated() != house {
		t.Error("undoing a nudge keeps the object")
	}
}

func TestMissingAnchorAndRestore(t *testing.T) {
	b, _ := newTestBuilder(t)
	b.SelectCategory(placement.Buildings)
	b.SetBuilding(true)

	b.World.Destroy(b.Session.AnchorFor(placement.Buildings))
	res := b.Frame(Intents{Ray: aimAt(0, 0), Confirm: true})
	if !errors.Is(res.CommitErr, placement.ErrNoAnchor) {
		t.Fatalf("expected ErrNoAnchor, got %v", res.CommitErr)
	}

	b.RestoreAnchors()
	if a := b.Session.AnchorFor(placement.Buildings); a == nil || a.Name != "Buildings" {
		t.Fatalf("anchor not restored: %v", a)
	}
	if res := b.Frame(Intents{Ray: aimAt(0, 0), Confirm: true}); res.Committed == nil {
		t.Errorf("commit after restore failed: %v", res.CommitErr)
	}
}

func TestRefreshCatalogPicksUpNewFiles(t *testing.T) {
	b, cfg := newTestBuilder(t)
	b.SelectCategory(placement.Buildings)
	if got := b.EntryNames(); len(got) != 1 || got[0] != "House" {
		t.Fatalf("names = %v", got)
	}

	path := filepath.Join(cfg.Catalog.Root, "Buildings", "barn.json")
	if err := os.WriteFile(path, []byte(`{"name":"Barn","components":[{"type":"BoxCollider","size":[6,4,8]}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := b.RefreshCatalog(); err != nil {
		t.Fatalf("RefreshCatalog: %v", err)
	}
	if got := b.EntryNames(); len(got) != 2 || got[0] != "Barn" || got[1] != "House" {
		t.Errorf("names after refresh = %v", got)
	}
}

func TestEditsFromKeys(t *testing.T) {
	got := editsFromKeys(keyState{rotateRight: true, scaleDown: true})
	if len(got) != 2 || got[0] != placement.RotateRight || got[1] != placement.ScaleDown {
		t.Errorf("edits = %v", got)
	}
	if editsFromKeys(keyState{}) != nil {
		t.Error("no keys should yield no edits")
	}
}

func TestPointInChrome(t *testing.T) {
	tests := []struct {
		p    rl.Vector2
		want bool
	}{
		{rl.Vector2{X: 400, Y: 10}, true},
		{rl.Vector2{X: 1500, Y: 400}, true},
		{rl.Vector2{X: 400, Y: 400}, false},
	}
	for _, tt := range tests {
		if got := pointInChrome(tt.p, 1600); got != tt.want {
			t.Errorf("pointInChrome(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPrefsRoundTrip(t *testing.T) {
	b, _ := newTestBuilder(t)
	e := NewEditor(config.Default().Camera)
	e.camera.Position = rl.Vector3{X: 5, Y: 50, Z: -5}
	e.camera.MoveSpeed = 80
	b.SelectCategory(placement.Buildings)

	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := SavePrefs(path, e.Prefs(b)); err != nil {
		t.Fatalf("SavePrefs: %v", err)
	}

	b2, _ := newTestBuilder(t)
	e2 := NewEditor(config.Default().Camera)
	e2.ApplyPrefs(LoadEditorPrefs(path, nil), b2)

	if e2.camera.Position != e.camera.Position || e2.camera.MoveSpeed != 80 {
		t.Errorf("camera = %+v", e2.camera)
	}
	if b2.Session.Category() != placement.Buildings {
		t.Errorf("category = %v", b2.Session.Category())
	}
	if LoadEditorPrefs(filepath.Join(t.TempDir(), "none.json"), nil) != nil {
		t.Error("missing prefs should load as nil")
	}
}

func TestNewEditorLooksAtTarget(t *testing.T) {
	cam := config.Default().Camera
	cam.StartPosition = [3]float32{0, 10, 10}
	cam.StartTarget = [3]float32{0, 0, 0}
	e := NewEditor(cam)

	forward, _ := e.getDirections()
	want := rl.Vector3Normalize(rl.Vector3{Y: -10, Z: -10})
	if rl.Vector3Distance(forward, want) > 1e-4 {
		t.Errorf("forward = %v, want %v", forward, want)
	}
}
