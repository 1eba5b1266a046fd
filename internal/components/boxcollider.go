package components

import (
	"github.com/Develoder/BuilderEX/internal/engine"
	"github.com/Develoder/BuilderEX/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

// GetCenter returns the world-space center, with Offset rotated and scaled
// along with the owner.
func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Offset
	}
	scale := g.WorldScale()
	off := rl.Vector3{X: b.Offset.X * scale.X, Y: b.Offset.Y * scale.Y, Z: b.Offset.Z * scale.Z}
	off = rl.Vector3Transform(off, engine.RotationMatrix(g.WorldRotation()))
	return rl.Vector3Add(g.WorldPosition(), off)
}

func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Size
	}
	scale := g.WorldScale()
	return rl.Vector3{X: b.Size.X * scale.X, Y: b.Size.Y * scale.Y, Z: b.Size.Z * scale.Z}
}

func (b *BoxCollider) OBB() physics.OBB {
	g := b.GetGameObject()
	var rot rl.Vector3
	if g != nil {
		rot = g.WorldRotation()
	}
	return physics.NewOBB(b.GetCenter(), b.GetWorldSize(), rot)
}

func (b *BoxCollider) Clone() engine.Component {
	return &BoxCollider{Size: b.Size, Offset: b.Offset}
}
