package placement

import (
	"math"

	"github.com/Develoder/BuilderEX/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	PreviewName = "PreviewObject"

	ScaleStep = 0.1
	MinScale  = 0.05
)

// ParkPosition is where a preview waits while the aim ray misses.
var ParkPosition = rl.Vector3{X: 0, Y: math.MaxInt32, Z: 0}

// EditCommand is a discrete transform edit applied to the preview.
type EditCommand int

const (
	RotateLeft EditCommand = iota
	RotateRight
	ScaleUp
	ScaleDown
)

func (e EditCommand) String() string {
	switch e {
	case RotateLeft:
		return "rotate-left"
	case RotateRight:
		return "rotate-right"
	case ScaleUp:
		return "scale-up"
	case ScaleDown:
		return "scale-down"
	}
	return "unknown"
}

// Preview is the ghost copy of the selected template. It never joins the
// world, so it cannot block its own footprint or be hit by the aim ray.
type Preview struct {
	Object   *engine.GameObject
	Entry    Entry
	Index    int
	Category Category
	Parked   bool
}

// NewPreview instantiates the template with its default transform.
func NewPreview(entry Entry, index int, c Category) *Preview {
	obj := entry.Template.Clone()
	obj.Name = PreviewName
	obj.SetLayerRecursive(engine.LayerIgnoreRaycast)
	return &Preview{
		Object:   obj,
		Entry:    entry,
		Index:    index,
		Category: c,
	}
}

func (p *Preview) Transform() engine.Transform {
	return p.Object.Transform
}

func (p *Preview) Reposition(point rl.Vector3) {
	p.Object.Transform.Position = point
	p.Parked = false
}

func (p *Preview) Park() {
	p.Object.Transform.Position = ParkPosition
	p.Parked = true
}

// ApplyEdit rotates about Y by cfg.RotateStep or adds ScaleStep to every
// scale axis, never going below MinScale. Scale edits are dropped for categories that
// are not scalable.
func (p *Preview) ApplyEdit(cmd EditCommand, cfg CategoryConfig) {
	xf := &p.Object.Transform
	switch cmd {
	case RotateLeft:
		xf.Rotation.Y = WrapDegrees(xf.Rotation.Y - cfg.RotateStep)
	case RotateRight:
		xf.Rotation.Y = WrapDegrees(xf.Rotation.Y + cfg.RotateStep)
	case ScaleUp, ScaleDown:
		if !cfg.Scalable {
			return
		}
		d := float32(ScaleStep)
		if cmd == ScaleDown {
			d = -d
		}
		xf.Scale = rl.Vector3{
			X: clampScale(xf.Scale.X + d),
			Y: clampScale(xf.Scale.Y + d),
			Z: clampScale(xf.Scale.Z + d),
		}
	}
}

// Destroy releases the ghost. The preview must not be used afterwards.
func (p *Preview) Destroy() {
	if p.Object == nil {
		return
	}
	p.Object.Active = false
	p.Object = nil
}

// WrapDegrees maps d into [0, 360).
func WrapDegrees(d float32) float32 {
	r := float32(math.Mod(float64(d), 360))
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r = 0
	}
	return r
}

func clampScale(s float32) float32 {
	if s < MinScale {
		return MinScale
	}
	return s
}
