package engine

import (
	"math"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var nextUID atomic.Uint64

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// DefaultTransform is the identity transform: origin, no rotation, unit scale.
func DefaultTransform() Transform {
	return Transform{
		Position: rl.Vector3{},
		Rotation: rl.Vector3{},
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

type GameObject struct {
	UID        uint64
	Name       string
	Tags       []string
	Layer      Layer
	Transform  Transform
	Active     bool
	Scene      *Scene
	Parent     *GameObject
	Children   []*GameObject
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		UID:        nextUID.Add(1),
		Name:       name,
		Active:     true,
		Transform:  DefaultTransform(),
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component assignable to T, or the zero value.
// T may be a concrete pointer type or an interface.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	if g == nil {
		return zero
	}
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// SetParent attaches g under parent (nil detaches). With keepWorld the local
// transform is recomputed so the world position, rotation and scale stay put.
func (g *GameObject) SetParent(parent *GameObject, keepWorld bool) {
	worldPos := g.WorldPosition()
	worldRot := g.WorldRotation()
	worldScale := g.WorldScale()

	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	if parent == nil {
		if keepWorld {
			g.Transform = Transform{Position: worldPos, Rotation: worldRot, Scale: worldScale}
		}
		return
	}
	parent.AddChild(g)
	if !keepWorld {
		return
	}

	parentPos := parent.WorldPosition()
	parentRot := parent.WorldRotation()
	parentScale := parent.WorldScale()

	// Undo the parent rotation, then the parent scale.
	inv := rl.MatrixInvert(rotationMatrix(parentRot))
	local := rl.Vector3Transform(rl.Vector3Subtract(worldPos, parentPos), inv)
	g.Transform.Position = rl.Vector3{
		X: safeDiv(local.X, parentScale.X),
		Y: safeDiv(local.Y, parentScale.Y),
		Z: safeDiv(local.Z, parentScale.Z),
	}
	g.Transform.Rotation = rl.Vector3Subtract(worldRot, parentRot)
	g.Transform.Scale = rl.Vector3{
		X: safeDiv(worldScale.X, parentScale.X),
		Y: safeDiv(worldScale.Y, parentScale.Y),
		Z: safeDiv(worldScale.Z, parentScale.Z),
	}
}

// SetLayerRecursive assigns layer to g and every descendant.
func (g *GameObject) SetLayerRecursive(layer Layer) {
	g.Layer = layer
	for _, c := range g.Children {
		c.SetLayerRecursive(layer)
	}
}

// Walk visits g and its descendants depth-first.
func (g *GameObject) Walk(fn func(*GameObject)) {
	fn(g)
	for _, c := range g.Children {
		c.Walk(fn)
	}
}

// Clone deep-copies g and its children. Components are copied when they
// implement Cloner; others are skipped. The copy gets fresh UIDs, no scene and
// no parent.
func (g *GameObject) Clone() *GameObject {
	c := NewGameObject(g.Name)
	c.Layer = g.Layer
	c.Active = g.Active
	c.Transform = g.Transform
	if len(g.Tags) > 0 {
		c.Tags = append([]string(nil), g.Tags...)
	}
	for _, comp := range g.components {
		if cl, ok := comp.(Cloner); ok {
			c.AddComponent(cl.Clone())
		}
	}
	for _, child := range g.Children {
		c.AddChild(child.Clone())
	}
	return c
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	// Scale local position by parent's world scale
	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	rotated := rl.Vector3Transform(scaled, rotationMatrix(parentRot))
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}

// rotationMatrix builds the X then Y then Z rotation used everywhere in the
// engine for Euler angles in degrees. Built with the axis-angle form so it
// turns the same way as rl.Rotatef in MeshRenderer.Draw; rl.MatrixRotateY and
// friends turn the opposite way.
func rotationMatrix(rot rl.Vector3) rl.Matrix {
	rx := float64(rot.X) * math.Pi / 180
	ry := float64(rot.Y) * math.Pi / 180
	rz := float64(rot.Z) * math.Pi / 180
	rotX := rl.MatrixRotate(rl.Vector3{X: 1}, float32(rx))
	rotY := rl.MatrixRotate(rl.Vector3{Y: 1}, float32(ry))
	rotZ := rl.MatrixRotate(rl.Vector3{Z: 1}, float32(rz))
	return rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)
}

// RotationMatrix exposes the engine's Euler convention to other packages.
func RotationMatrix(rot rl.Vector3) rl.Matrix {
	return rotationMatrix(rot)
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return a
	}
	return a / b
}
