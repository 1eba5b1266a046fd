package physics

import (
	"math"
	"sort"

	"github.com/Develoder/BuilderEX/internal/engine"
)

// Collider is any component that can report its world-space box.
type Collider interface {
	engine.Component
	OBB() OBB
}

// CellSize is the edge of a broadphase cell on the XZ plane.
const CellSize = 10.0

// maxCellsPerObject keeps huge colliders (terrain) out of the grid; they are
// tested against every query instead.
const maxCellsPerObject = 256

// CellKey addresses one broadphase cell.
type CellKey struct {
	X, Z int
}

func posToCell(x, z float32) CellKey {
	return CellKey{
		X: int(math.Floor(float64(x) / CellSize)),
		Z: int(math.Floor(float64(z) / CellSize)),
	}
}

// PhysicsWorld is a registry of static colliders answering ray and overlap
// queries. Nothing moves on its own; call MarkDirty after editing transforms
// of registered objects.
type PhysicsWorld struct {
	Statics []*engine.GameObject

	grid  map[CellKey][]*engine.GameObject
	large []*engine.GameObject
	dirty bool
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Statics: make([]*engine.GameObject, 0),
		grid:    make(map[CellKey][]*engine.GameObject),
	}
}

// AddObject registers g and every descendant that carries a Collider.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	g.Walk(func(obj *engine.GameObject) {
		if engine.GetComponent[Collider](obj) == nil {
			return
		}
		for _, existing := range p.Statics {
			if existing == obj {
				return
			}
		}
		p.Statics = append(p.Statics, obj)
		p.dirty = true
	})
}

// RemoveObject unregisters g and its descendants.
func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	g.Walk(func(obj *engine.GameObject) {
		for i, s := range p.Statics {
			if s == obj {
				p.Statics = append(p.Statics[:i], p.Statics[i+1:]...)
				p.dirty = true
				return
			}
		}
	})
}

func (p *PhysicsWorld) MarkDirty() {
	p.dirty = true
}

func (p *PhysicsWorld) Count() int {
	return len(p.Statics)
}

// rebuildGrid clears and repopulates the spatial hash grid
func (p *PhysicsWorld) rebuildGrid() {
	for k := range p.grid {
		delete(p.grid, k)
	}
	p.large = p.large[:0]

	for _, obj := range p.Statics {
		col := engine.GetComponent[Collider](obj)
		if col == nil {
			continue
		}
		b := col.OBB().Bounds()
		lo := posToCell(b.Min.X, b.Min.Z)
		hi := posToCell(b.Max.X, b.Max.Z)
		if (hi.X-lo.X+1)*(hi.Z-lo.Z+1) > maxCellsPerObject {
			p.large = append(p.large, obj)
			continue
		}
		for x := lo.X; x <= hi.X; x++ {
			for z := lo.Z; z <= hi.Z; z++ {
				key := CellKey{X: x, Z: z}
				p.grid[key] = append(p.grid[key], obj)
			}
		}
	}
	p.dirty = false
}

// candidates returns the registered objects whose cells touch box, without
// duplicates.
func (p *PhysicsWorld) candidates(box AABB) []*engine.GameObject {
	if p.dirty {
		p.rebuildGrid()
	}

	seen := make(map[*engine.GameObject]bool)
	out := make([]*engine.GameObject, 0, len(p.large))
	for _, obj := range p.large {
		seen[obj] = true
		out = append(out, obj)
	}

	lo := posToCell(box.Min.X, box.Min.Z)
	hi := posToCell(box.Max.X, box.Max.Z)
	if (hi.X-lo.X+1)*(hi.Z-lo.Z+1) > maxCellsPerObject {
		for _, obj := range p.Statics {
			if !seen[obj] {
				seen[obj] = true
				out = append(out, obj)
			}
		}
		return out
	}

	for x := lo.X; x <= hi.X; x++ {
		for z := lo.Z; z <= hi.Z; z++ {
			for _, obj := range p.grid[CellKey{X: x, Z: z}] {
				if !seen[obj] {
					seen[obj] = true
					out = append(out, obj)
				}
			}
		}
	}
	return out
}

func queryable(obj *engine.GameObject, mask engine.LayerMask) bool {
	return obj.Active && mask.Has(obj.Layer)
}

// OverlapBox returns every active object on mask whose collider intersects
// box, ordered by UID.
func (p *PhysicsWorld) OverlapBox(box OBB, mask engine.LayerMask) []*engine.GameObject {
	var hits []*engine.GameObject
	for _, obj := range p.candidates(box.Bounds()) {
		if !queryable(obj, mask) {
			continue
		}
		col := engine.GetComponent[Collider](obj)
		if col == nil {
			continue
		}
		if col.OBB().IntersectsOBB(box) {
			hits = append(hits, obj)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].UID < hits[j].UID })
	return hits
}
