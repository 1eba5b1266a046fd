package world

import (
	"github.com/Develoder/BuilderEX/internal/components"
	"github.com/Develoder/BuilderEX/internal/engine"
	"github.com/Develoder/BuilderEX/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	cullNear float32 = 0.1
	cullFar  float32 = 2000.0
)

// Renderer draws the scene's primitives with frustum culling.
type Renderer struct {
	GridSlices  int32
	GridSpacing float32
	ShowGrid    bool

	// Drawn is the number of objects submitted in the last Draw.
	Drawn int
}

func NewRenderer(gridSpacing float32) *Renderer {
	if gridSpacing <= 0 {
		gridSpacing = 10
	}
	return &Renderer{
		GridSlices:  60,
		GridSpacing: gridSpacing,
		ShowGrid:    true,
	}
}

// Visible returns the active objects with a MeshRenderer whose bounds touch
// the camera frustum.
func (r *Renderer) Visible(w *World, camera rl.Camera3D, aspect float32) []*engine.GameObject {
	f := ExtractFrustum(camera, aspect, cullNear, cullFar)
	var out []*engine.GameObject
	for _, g := range w.Scene.GameObjects {
		if !g.Active {
			continue
		}
		mr := engine.GetComponent[*components.MeshRenderer](g)
		if mr == nil {
			continue
		}
		if g == w.Terrain || f.ContainsAABB(meshBounds(g, mr)) {
			out = append(out, g)
		}
	}
	return out
}

// Draw must be called between rl.BeginMode3D and rl.EndMode3D.
func (r *Renderer) Draw(w *World, camera rl.Camera3D, aspect float32) {
	if r.ShowGrid {
		rl.DrawGrid(r.GridSlices, r.GridSpacing)
	}
	visible := r.Visible(w, camera, aspect)
	for _, g := range visible {
		engine.GetComponent[*components.MeshRenderer](g).Draw()
	}
	r.Drawn = len(visible)
}

// DrawGhost draws g and its children tinted, ignoring their own colors.
func DrawGhost(g *engine.GameObject, tint rl.Color) {
	g.Walk(func(obj *engine.GameObject) {
		if mr := engine.GetComponent[*components.MeshRenderer](obj); mr != nil {
			mr.DrawTinted(tint)
		}
	})
}

// DrawOBBWires outlines an oriented box.
func DrawOBBWires(o physics.OBB, col rl.Color) {
	c := o.Corners()
	// Corner index bits are (x, y, z); edges join indices one bit apart.
	for i := 0; i < 8; i++ {
		for _, bit := range [3]int{1, 2, 4} {
			if i&bit == 0 {
				rl.DrawLine3D(c[i], c[i|bit], col)
			}
		}
	}
}

func meshBounds(g *engine.GameObject, mr *components.MeshRenderer) physics.AABB {
	ext := mr.Extents()
	return physics.NewOBBFromBox(g.WorldPosition(), ext, g.WorldRotation(), g.WorldScale()).Bounds()
}
