package game

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Develoder/BuilderEX/internal/catalog"
	"github.com/Develoder/BuilderEX/internal/config"
	"github.com/Develoder/BuilderEX/internal/engine"
	"github.com/Develoder/BuilderEX/internal/placement"
	"github.com/Develoder/BuilderEX/internal/undo"
	"github.com/Develoder/BuilderEX/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Intents is one frame of operator input, already mapped from keys and
// mouse buttons.
type Intents struct {
	Ray     rl.Ray
	Confirm bool
	Edits   []placement.EditCommand
	Undo    bool
	Save    bool
}

// Builder wires the placement session to the world, the prefab catalog and
// the undo history. It owns no window state and runs headless in tests.
type Builder struct {
	World   *world.World
	Session *placement.Session
	Undo    *undo.Stack
	Catalog *catalog.DirSource

	scenePath string
	log       *zap.Logger
	created   engine.GameObjectRef
	last      placement.TickResult

	status   string
	statusAt time.Time
}

// NewBuilder creates the world (terrain, saved scene, category anchors) and a
// session over it, starting on the Ground catalog.
func NewBuilder(cfg *config.Config, log *zap.Logger) (*Builder, error) {
	if log == nil {
		log = zap.NewNop()
	}
	rules, err := cfg.Placement.Rules()
	if err != nil {
		return nil, err
	}

	w := world.New(log.Named("world"))
	w.CreateTerrain(cfg.Placement.TerrainSize)
	if cfg.Scene.AutoLoad && cfg.Scene.Path != "" {
		if _, err := os.Stat(cfg.Scene.Path); err == nil {
			if err := w.LoadScene(cfg.Scene.Path); err != nil {
				return nil, err
			}
		}
	}

	names := make([]string, 0, len(placement.Categories()))
	for _, c := range placement.Categories() {
		names = append(names, c.String())
	}
	anchors := w.EnsureAnchors(names...)

	b := &Builder{
		World:     w,
		Undo:      undo.NewStack(w, undo.DefaultMaxDepth, log.Named("undo")),
		Catalog:   catalog.NewDirSource(cfg.Catalog.Root, log.Named("catalog")),
		scenePath: cfg.Scene.Path,
		log:       log,
	}

	b.Session, err = placement.NewSession(w, rules,
		placement.WithCatalogSource(b.Catalog),
		placement.WithUndo(b.Undo),
		placement.WithLogger(log.Named("placement")),
		placement.WithMaxDistance(cfg.Placement.MaxDistance),
	)
	if err != nil {
		return nil, err
	}
	for _, c := range placement.Categories() {
		b.Session.SetAnchor(c, anchors[c.String()])
	}
	b.Session.OnCommitted.AddListener(func(g *engine.GameObject) {
		b.created = engine.RefTo(g)
	})

	if err := b.Session.SetCategory(placement.Ground); err != nil {
		b.setStatus("Catalog load failed: %v", err)
	}
	return b, nil
}

// Frame applies one frame of input and advances the session.
func (b *Builder) Frame(in Intents) placement.TickResult {
	if in.Undo {
		b.UndoLast()
	}
	if in.Save {
		b.Save()
	}

	res := b.Session.Tick(placement.TickInput{Ray: in.Ray, Confirm: in.Confirm, Edits: in.Edits})
	switch {
	case res.Committed != nil:
		b.setStatus("Created %s", res.Committed.Name)
	case errors.Is(res.CommitErr, placement.ErrNoAnchor):
		b.setStatus("No %v anchor in the scene", b.Session.Category())
	case errors.Is(res.CommitErr, placement.ErrBlocked):
		b.setStatus("Blocked")
	}
	b.last = res
	return res
}

// Last is the result of the most recent Frame.
func (b *Builder) Last() placement.TickResult {
	return b.last
}

func (b *Builder) SetBuilding(on bool) {
	b.Session.SetActive(on)
}

func (b *Builder) Building() bool {
	return b.Session.Active()
}

// SelectCategory switches catalogs. A load error leaves the category empty.
func (b *Builder) SelectCategory(c placement.Category) error {
	if c == b.Session.Category() && len(b.Session.Catalog()) > 0 {
		return nil
	}
	if err := b.Session.SetCategory(c); err != nil {
		b.setStatus("Catalog load failed: %v", err)
		return err
	}
	return nil
}

func (b *Builder) Select(index int) {
	b.Session.SetSelection(index)
}

// RefreshCatalog rereads the current category folder.
func (b *Builder) RefreshCatalog() error {
	entries, err := b.Catalog.Load(b.Session.Category().String())
	if err != nil {
		b.setStatus("Catalog load failed: %v", err)
		return err
	}
	b.Session.SetCatalog(entries)
	b.setStatus("%d %v prefabs", len(entries), b.Session.Category())
	return nil
}

// RestoreAnchors recreates the category roots that are no longer in the
// scene and points the session at them.
func (b *Builder) RestoreAnchors() {
	for _, c := range placement.Categories() {
		if b.Session.AnchorFor(c) != nil {
			continue
		}
		anchor := b.World.EnsureAnchors(c.String())[c.String()]
		b.Session.SetAnchor(c, anchor)
		b.log.Info("anchor restored", zap.Stringer("category", c), zap.Uint64("uid", anchor.UID))
	}
}

// EntryNames lists the current catalog for the UI.
func (b *Builder) EntryNames() []string {
	entries := b.Session.Catalog()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// UndoLast reverts the latest change.
func (b *Builder) UndoLast() bool {
	a, ok := b.Undo.Undo()
	if !ok {
		b.setStatus("Nothing to undo")
		return false
	}
	if a.Type == undo.ActionCreated && b.created.UID == a.Object.UID {
		b.created.Clear()
	}
	b.setStatus("Undo %s", a.Label)
	return true
}

func (b *Builder) Save() error {
	if err := b.World.SaveScene(b.scenePath); err != nil {
		b.setStatus("Save failed: %v", err)
		return err
	}
	b.setStatus("Scene saved")
	return nil
}

// LastCreated is the most recently committed object still in the scene.
func (b *Builder) LastCreated() *engine.GameObject {
	return b.created.Get(b.World.Scene)
}

// NudgeCreated moves and turns the last created object, recording the old
// transform for undo.
func (b *Builder) NudgeCreated(move rl.Vector3, turn float32) {
	g := b.LastCreated()
	if g == nil {
		return
	}
	b.Undo.RecordTransform(g, "Edit "+g.Name)
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, move)
	g.Transform.Rotation.Y = placement.WrapDegrees(g.Transform.Rotation.Y + turn)
	b.World.Refresh(g)
}

// Status returns the last message and when it was set.
func (b *Builder) Status() (string, time.Time) {
	return b.status, b.statusAt
}

func (b *Builder) setStatus(format string, args ...any) {
	b.status = fmt.Sprintf(format, args...)
	b.statusAt = time.Now()
	b.log.Debug("status", zap.String("msg", b.status))
}
