package components

import (
	"fmt"
	"strings"

	"github.com/Develoder/BuilderEX/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
	MeshPlane
)

var meshTypeNames = map[MeshType]string{
	MeshCube:   "cube",
	MeshSphere: "sphere",
	MeshPlane:  "plane",
}

func (m MeshType) String() string {
	if s, ok := meshTypeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("MeshType(%d)", int(m))
}

func ParseMeshType(s string) (MeshType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for t, name := range meshTypeNames {
		if name == key {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown mesh type %q", s)
}

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// Extents is the local-space size of the primitive before the owner's scale.
func (m *MeshRenderer) Extents() rl.Vector3 {
	switch m.MeshType {
	case MeshSphere:
		d := m.Size.X * 2
		return rl.Vector3{X: d, Y: d, Z: d}
	case MeshPlane:
		return rl.Vector3{X: m.Size.X, Z: m.Size.Z}
	default:
		return m.Size
	}
}

func (m *MeshRenderer) Draw() {
	m.DrawTinted(m.Color)
}

// DrawTinted draws the primitive with col instead of the renderer's color.
// The preview ghost uses it for its translucent verdict tint.
func (m *MeshRenderer) DrawTinted(col rl.Color) {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	rot := g.WorldRotation()
	scale := g.WorldScale()

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(rot.Z, 0, 0, 1)
	rl.Rotatef(rot.Y, 0, 1, 0)
	rl.Rotatef(rot.X, 1, 0, 0)
	rl.Scalef(scale.X, scale.Y, scale.Z)

	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(rl.Vector3{}, m.Size, col)
	case MeshSphere:
		rl.DrawSphere(rl.Vector3{}, m.Size.X, col)
	case MeshPlane:
		rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: m.Size.X, Y: m.Size.Z}, col)
	}

	rl.PopMatrix()
}

func (m *MeshRenderer) Clone() engine.Component {
	return &MeshRenderer{MeshType: m.MeshType, Color: m.Color, Size: m.Size}
}
