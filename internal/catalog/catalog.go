// Package catalog loads placeable templates from a prefab folder tree laid
// out as <root>/<Category>/*.json.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Develoder/BuilderEX/internal/components"
	"github.com/Develoder/BuilderEX/internal/engine"
	"github.com/Develoder/BuilderEX/internal/physics"
	"github.com/Develoder/BuilderEX/internal/placement"
	"github.com/Develoder/BuilderEX/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const DefaultRoot = "assets/prefabs"

// PrefabExt is the extension of prefab files; anything else in a category
// folder is ignored.
const PrefabExt = ".json"

// DirSource implements placement.CatalogSource over a directory.
type DirSource struct {
	Root string
	Log  *zap.Logger
}

func NewDirSource(root string, log *zap.Logger) *DirSource {
	if root == "" {
		root = DefaultRoot
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &DirSource{Root: root, Log: log}
}

// Load returns the templates of one category in lexical file order. The
// category folder is created when it does not exist yet. A prefab that fails
// to parse is skipped with a warning.
func (d *DirSource) Load(category string) ([]placement.Entry, error) {
	dir := filepath.Join(d.Root, category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create catalog dir: %w", err)
	}
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	var entries []placement.Entry
	for _, f := range files {
		name := f.Name()
		if f.IsDir() || strings.HasPrefix(name, ".") || strings.ToLower(filepath.Ext(name)) != PrefabExt {
			continue
		}
		path := filepath.Join(dir, name)
		entry, err := LoadEntry(path)
		if err != nil {
			d.Log.Warn("skipping prefab", zap.String("path", path), zap.Error(err))
			continue
		}
		entries = append(entries, entry)
	}

	d.Log.Debug("catalog loaded",
		zap.String("category", category),
		zap.Int("entries", len(entries)))
	return entries, nil
}

// LoadEntry builds a single catalog entry from a prefab file.
func LoadEntry(path string) (placement.Entry, error) {
	def, err := world.ReadObjectFile(path)
	if err != nil {
		return placement.Entry{}, err
	}
	tmpl, err := world.BuildObject(def)
	if err != nil {
		return placement.Entry{}, err
	}
	return placement.Entry{Name: tmpl.Name, Template: tmpl, Bounds: Bounds(tmpl)}, nil
}

// Bounds is the axis-aligned size of g and its children measured with g at
// the origin, unrotated and at unit scale. Box colliders and mesh renderers
// both contribute. An object with neither measures 1x1x1.
func Bounds(g *engine.GameObject) rl.Vector3 {
	saved := g.Transform
	parent := g.Parent
	g.Parent = nil
	g.Transform = engine.DefaultTransform()
	defer func() {
		g.Transform = saved
		g.Parent = parent
	}()

	var box physics.AABB
	found := false
	add := func(b physics.AABB) {
		if !found {
			box, found = b, true
			return
		}
		box = box.Union(b)
	}

	g.Walk(func(obj *engine.GameObject) {
		if col := engine.GetComponent[*components.BoxCollider](obj); col != nil {
			add(col.OBB().Bounds())
		}
		if mr := engine.GetComponent[*components.MeshRenderer](obj); mr != nil {
			add(physics.NewOBBFromBox(obj.WorldPosition(), mr.Extents(), obj.WorldRotation(), obj.WorldScale()).Bounds())
		}
	})

	if !found {
		return rl.Vector3{X: 1, Y: 1, Z: 1}
	}
	return box.Size()
}
