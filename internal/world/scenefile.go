package world

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Develoder/BuilderEX/internal/components"
	"github.com/Develoder/BuilderEX/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// --- JSON types ---

type SceneFile struct {
	Objects []ObjectDef `json:"objects"`
}

// ObjectDef is the on-disk form of a GameObject. Prefab files hold a single
// ObjectDef; scene files hold a list of them.
type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Layer      string            `json:"layer,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components,omitempty"`
	Children   []ObjectDef       `json:"children,omitempty"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type meshRendererDef struct {
	Type  string     `json:"type"`
	Mesh  string     `json:"mesh"`
	Size  [3]float32 `json:"size"`
	Color string     `json:"color"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type placedDef struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Template string `json:"template"`
	Sequence uint64 `json:"sequence,omitempty"`
}

// --- Color mapping ---

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"DarkGreen": rl.DarkGreen,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"Magenta":   rl.Magenta,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"DarkBrown": rl.DarkBrown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

var nameByColor map[rl.Color]string

func init() {
	nameByColor = make(map[rl.Color]string, len(colorByName))
	for name, c := range colorByName {
		nameByColor[c] = name
	}
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	var r, g, b, a uint8
	if n, _ := fmt.Sscanf(name, "#%02x%02x%02x%02x", &r, &g, &b, &a); n == 4 {
		return rl.Color{R: r, G: g, B: b, A: a}
	}
	return rl.White
}

func lookupColorName(c rl.Color) string {
	if name, ok := nameByColor[c]; ok {
		return name
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func vec(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func arr(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Building ---

// BuildObject instantiates def and its children. Unknown component types are
// skipped; malformed ones are an error.
func BuildObject(def ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = vec(def.Position)
	g.Transform.Rotation = vec(def.Rotation)

	// Default scale to 1 if zero
	if def.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = vec(def.Scale)
	}

	if def.Layer != "" {
		layer, err := engine.ParseLayer(def.Layer)
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", def.Name, err)
		}
		g.Layer = layer
	}

	for i, raw := range def.Components {
		if err := addComponent(g, raw); err != nil {
			return nil, fmt.Errorf("object %q component %d: %w", def.Name, i, err)
		}
	}

	for _, childDef := range def.Children {
		child, err := BuildObject(childDef)
		if err != nil {
			return nil, err
		}
		g.AddChild(child)
	}
	return g, nil
}

func addComponent(g *engine.GameObject, raw json.RawMessage) error {
	var header componentHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return err
	}

	switch header.Type {
	case "MeshRenderer":
		var def meshRendererDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		mesh, err := components.ParseMeshType(def.Mesh)
		if err != nil {
			return err
		}
		g.AddComponent(components.NewMeshRenderer(mesh, lookupColor(def.Color), vec(def.Size)))

	case "BoxCollider":
		var def boxColliderDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		col := components.NewBoxCollider(vec(def.Size))
		col.Offset = vec(def.Offset)
		g.AddComponent(col)

	case "Placed":
		var def placedDef
		if err := json.Unmarshal(raw, &def); err != nil {
			return err
		}
		g.AddComponent(components.NewPlaced(def.Category, def.Template, def.Sequence))
	}
	return nil
}

// DefFromObject serializes g and its children.
func DefFromObject(g *engine.GameObject) ObjectDef {
	def := ObjectDef{
		Name:     g.Name,
		Tags:     g.Tags,
		Position: arr(g.Transform.Position),
		Rotation: arr(g.Transform.Rotation),
		Scale:    arr(g.Transform.Scale),
	}
	if g.Layer != engine.LayerDefault {
		def.Layer = g.Layer.String()
	}
	for _, c := range g.Components() {
		if raw := serializeComponent(c); raw != nil {
			def.Components = append(def.Components, raw)
		}
	}
	for _, child := range g.Children {
		def.Children = append(def.Children, DefFromObject(child))
	}
	return def
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.MeshRenderer:
		def = meshRendererDef{
			Type:  "MeshRenderer",
			Mesh:  comp.MeshType.String(),
			Size:  arr(comp.Size),
			Color: lookupColorName(comp.Color),
		}
	case *components.BoxCollider:
		def = boxColliderDef{
			Type:   "BoxCollider",
			Size:   arr(comp.Size),
			Offset: arr(comp.Offset),
		}
	case *components.Placed:
		def = placedDef{
			Type:     "Placed",
			Category: comp.Category,
			Template: comp.Template,
			Sequence: comp.Sequence,
		}
	default:
		return nil
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}

// ReadObjectFile parses a single-object prefab file.
func ReadObjectFile(path string) (ObjectDef, error) {
	var def ObjectDef
	data, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("read prefab: %w", err)
	}
	if err := json.Unmarshal(data, &def); err != nil {
		return def, fmt.Errorf("parse prefab %s: %w", filepath.Base(path), err)
	}
	if def.Name == "" {
		def.Name = trimExt(filepath.Base(path))
	}
	return def, nil
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}

// --- Loading ---

// LoadScene adds the objects stored at path to the world. The terrain is
// code-managed and never stored.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}

	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	built := make([]*engine.GameObject, 0, len(sf.Objects))
	for _, def := range sf.Objects {
		g, err := BuildObject(def)
		if err != nil {
			return fmt.Errorf("load scene: %w", err)
		}
		built = append(built, g)
	}
	for _, g := range built {
		w.SpawnObject(g)
	}

	w.log.Info("scene loaded", zap.String("path", path), zap.Int("roots", len(built)))
	return nil
}

// --- Saving ---

func (w *World) SaveScene(path string) error {
	var sf SceneFile
	for _, g := range w.Scene.Roots() {
		if g == w.Terrain || g.HasTag(TerrainTag) {
			continue
		}
		sf.Objects = append(sf.Objects, DefFromObject(g))
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create scene dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	w.log.Info("scene saved", zap.String("path", path), zap.Int("roots", len(sf.Objects)))
	return nil
}
