package engine

// GameObjectRef is a weak reference to a GameObject by UID.
// It resolves through a Scene, so a reference to an object that has since been
// removed resolves to nil instead of a dangling pointer. Parent anchors are
// held this way.
type GameObjectRef struct {
	UID uint64 // UID of the referenced GameObject (0 = none)
}

// RefTo returns a reference to g (empty for nil).
func RefTo(g *GameObject) GameObjectRef {
	var r GameObjectRef
	r.Set(g)
	return r
}

// Get resolves the reference to the actual GameObject.
// Returns nil if the reference is empty (UID = 0) or if the GameObject is not in scene.
func (r GameObjectRef) Get(scene *Scene) *GameObject {
	if r.UID == 0 || scene == nil {
		return nil
	}
	return scene.FindByUID(r.UID)
}

// IsValid returns true if the reference points to something (UID != 0).
// It does not check that the GameObject still exists.
func (r GameObjectRef) IsValid() bool {
	return r.UID != 0
}

// Set points the reference at g. Pass nil to clear it.
func (r *GameObjectRef) Set(g *GameObject) {
	if g == nil {
		r.UID = 0
	} else {
		r.UID = g.UID
	}
}

func (r *GameObjectRef) Clear() {
	r.UID = 0
}
