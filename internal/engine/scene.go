package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

// AddGameObject registers g and its descendants. Adding an object twice is a no-op.
func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	g.Walk(func(obj *GameObject) {
		if _, exists := s.uidMap[obj.UID]; exists {
			return
		}
		obj.Scene = s
		s.uidMap[obj.UID] = obj
		s.GameObjects = append(s.GameObjects, obj)
	})
}

// RemoveGameObject unregisters g and its descendants.
func (s *Scene) RemoveGameObject(g *GameObject) {
	g.Walk(func(obj *GameObject) {
		if _, exists := s.uidMap[obj.UID]; !exists {
			return
		}
		delete(s.uidMap, obj.UID)
		obj.Scene = nil
		for i, o := range s.GameObjects {
			if o == obj {
				s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
				break
			}
		}
	})
}

// Contains reports whether g is currently registered in the scene.
func (s *Scene) Contains(g *GameObject) bool {
	if g == nil {
		return false
	}
	found, ok := s.uidMap[g.UID]
	return ok && found == g
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Roots returns the objects without a parent, in registration order.
func (s *Scene) Roots() []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.Parent == nil {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
