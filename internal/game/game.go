package game

import (
	"github.com/Develoder/BuilderEX/internal/config"
	"github.com/Develoder/BuilderEX/internal/engine"
	"github.com/Develoder/BuilderEX/internal/physics"
	"github.com/Develoder/BuilderEX/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

const ghostAlpha = 0.45

type Game struct {
	Builder  *Builder
	Renderer *world.Renderer

	cfg    *config.Config
	log    *zap.Logger
	editor *Editor
}

func New(cfg *config.Config, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	b, err := NewBuilder(cfg, log)
	if err != nil {
		return nil, err
	}
	return &Game{
		Builder:  b,
		Renderer: world.NewRenderer(10),
		cfg:      cfg,
		log:      log,
		editor:   NewEditor(cfg.Camera),
	}, nil
}

func (g *Game) Run() {
	flags := uint32(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if g.cfg.Window.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(g.cfg.Window.Width), int32(g.cfg.Window.Height), g.cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(g.cfg.Window.FPSLimit))
	rl.SetExitKey(0)
	initRayguiStyle()

	g.editor.ApplyPrefs(LoadEditorPrefs(editorPrefsFile, g.log), g.Builder)
	defer func() {
		if err := SavePrefs(editorPrefsFile, g.editor.Prefs(g.Builder)); err != nil {
			g.log.Warn("failed to save editor prefs", zap.Error(err))
		}
	}()

	g.log.Info("editor started",
		zap.Int("width", g.cfg.Window.Width),
		zap.Int("height", g.cfg.Window.Height),
		zap.String("prefabs", g.cfg.Catalog.Root))

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()

	g.editor.UpdateCamera(deltaTime)

	if !rl.IsMouseButtonDown(rl.MouseRightButton) {
		if rl.IsKeyPressed(rl.KeyB) {
			g.Builder.SetBuilding(!g.Builder.Building())
		}
		if c, ok := categoryHotkey(); ok {
			g.Builder.SelectCategory(c)
		}
	}

	g.Builder.Frame(g.editor.ReadIntents())
	g.Builder.World.Update(deltaTime)
}

func (g *Game) Draw() {
	camera := g.editor.GetRaylibCamera()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(camera)
	g.Renderer.Draw(g.Builder.World, camera, aspect)
	g.drawPreview()
	rl.EndMode3D()

	g.editor.DrawUI(g.Builder)
	rl.DrawFPS(10, topBarHeight+8)
	rl.EndDrawing()
}

// drawPreview renders the ghost tinted by its verdict, the footprint box
// and the colliders blocking it.
func (g *Game) drawPreview() {
	p := g.Builder.Last().Preview
	if p == nil || p.Parked {
		return
	}
	col := verdictColor(p.Verdict)
	world.DrawGhost(p.Object, rl.Fade(col, ghostAlpha))
	world.DrawOBBWires(p.Verdict.Box, col)

	for _, blocker := range p.Verdict.Blockers {
		if c := engine.GetComponent[physics.Collider](blocker); c != nil {
			world.DrawOBBWires(c.OBB(), colorBlocked)
		}
	}
}
