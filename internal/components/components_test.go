package components

import (
	"math"
	"testing"

	"github.com/Develoder/BuilderEX/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestBoxColliderFollowsOwner(t *testing.T) {
	g := engine.NewGameObject("Box")
	g.Transform.Position = rl.Vector3{X: 10, Y: 0, Z: 0}
	g.Transform.Rotation = rl.Vector3{Y: 90}
	g.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	box := NewBoxCollider(rl.Vector3{X: 4, Y: 1, Z: 2})
	box.Offset = rl.Vector3{X: 1}
	g.AddComponent(box)

	size := box.GetWorldSize()
	if size.X != 8 || size.Y != 2 || size.Z != 4 {
		t.Errorf("GetWorldSize = %v", size)
	}

	// Offset (1,0,0) scaled to 2 and rotated 90 degrees about Y lands on -Z.
	c := box.GetCenter()
	if !near(c.X, 10) || !near(c.Z, -2) {
		t.Errorf("GetCenter = %v", c)
	}

	obb := box.OBB()
	if obb.HalfSize.X != 4 || !near(obb.Axes[0].Z, -1) {
		t.Errorf("OBB = %+v", obb)
	}
}

func TestBoxColliderClone(t *testing.T) {
	g := engine.NewGameObject("Box")
	box := NewBoxCollider(rl.Vector3{X: 1, Y: 2, Z: 3})
	g.AddComponent(box)

	c := g.Clone()
	cb := engine.GetComponent[*BoxCollider](c)
	if cb == nil || cb == box {
		t.Fatal("collider should be copied")
	}
	if cb.Size != box.Size || cb.GetGameObject() != c {
		t.Errorf("cloned collider = %+v", cb)
	}
}

func TestMeshRendererExtents(t *testing.T) {
	tests := []struct {
		mesh *MeshRenderer
		want rl.Vector3
	}{
		{NewMeshRenderer(MeshCube, rl.Red, rl.Vector3{X: 1, Y: 2, Z: 3}), rl.Vector3{X: 1, Y: 2, Z: 3}},
		{NewMeshRenderer(MeshSphere, rl.Red, rl.Vector3{X: 1.5}), rl.Vector3{X: 3, Y: 3, Z: 3}},
		{NewMeshRenderer(MeshPlane, rl.Red, rl.Vector3{X: 10, Y: 1, Z: 20}), rl.Vector3{X: 10, Z: 20}},
	}
	for _, tt := range tests {
		if got := tt.mesh.Extents(); got != tt.want {
			t.Errorf("%v Extents = %v, want %v", tt.mesh.MeshType, got, tt.want)
		}
	}
}

func TestParseMeshType(t *testing.T) {
	if m, err := ParseMeshType("Sphere"); err != nil || m != MeshSphere {
		t.Errorf("ParseMeshType(Sphere) = %v, %v", m, err)
	}
	if _, err := ParseMeshType("torus"); err == nil {
		t.Error("expected error for unknown mesh")
	}
}

func TestPlacedClone(t *testing.T) {
	g := engine.NewGameObject("House")
	p := NewPlaced("Buildings", "House", 4)
	g.AddComponent(p)

	c := engine.GetComponent[*Placed](g.Clone())
	if c == nil || c == p {
		t.Fatal("Placed should be copied")
	}
	if c.Category != "Buildings" || c.Template != "House" || c.Sequence != 4 {
		t.Errorf("cloned Placed = %+v", c)
	}
}
