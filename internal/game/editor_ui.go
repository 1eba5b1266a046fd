package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/Develoder/BuilderEX/internal/placement"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors, indigo on dark.
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgPanel   = rl.NewColor(18, 18, 24, 245)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)

	colorAccent      = rl.NewColor(108, 99, 255, 255)
	colorAccentLight = rl.NewColor(167, 139, 250, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)

	colorBorder = rl.NewColor(255, 255, 255, 13)

	colorAllowed = rl.NewColor(100, 220, 100, 255)
	colorBlocked = rl.NewColor(255, 90, 90, 255)
)

const statusDuration = 3 * time.Second

func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
	gui.SetStyle(gui.LISTVIEW, gui.LIST_ITEMS_HEIGHT, 26)
}

// DrawUI draws the top bar, the builder panel on the right and the status
// line. Panel widgets act on b immediately.
func (e *Editor) DrawUI(b *Builder) {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	e.drawTopBar(b, int32(screenW))

	x := screenW - panelWidth
	gui.Panel(rl.Rectangle{X: x, Y: topBarHeight, Width: panelWidth, Height: screenH - topBarHeight}, "Level Builder")

	pad := float32(10)
	w := float32(panelWidth) - 2*pad
	y := float32(topBarHeight) + 34

	y = e.drawAnchors(b, x+pad, y, w)
	y = e.drawCreated(b, x+pad, y, w)

	building := gui.Toggle(rl.Rectangle{X: x + pad, Y: y, Width: w, Height: 60}, "Start building", b.Building())
	if building != b.Building() {
		b.SetBuilding(building)
	}
	y += 70

	current := int32(b.Session.Category())
	itemW := (w - 2*4) / 3
	picked := gui.ToggleGroup(rl.Rectangle{X: x + pad, Y: y, Width: itemW, Height: 28}, categoryLabels(), current)
	if picked != current {
		b.SelectCategory(placement.Category(picked))
		e.catalogScroll, e.catalogFocus = 0, -1
	}
	y += 36

	if gui.Button(rl.Rectangle{X: x + pad, Y: y, Width: w, Height: 26}, "Refresh catalog") {
		b.RefreshCatalog()
	}
	y += 34

	names := b.EntryNames()
	listH := screenH - y - 34
	if len(names) == 0 {
		gui.Label(rl.Rectangle{X: x + pad, Y: y, Width: w, Height: 24},
			fmt.Sprintf("No prefabs in %s/%v", b.Catalog.Root, b.Session.Category()))
	} else if listH > 0 {
		sel := int32(b.Session.Selection())
		active := gui.ListViewEx(rl.Rectangle{X: x + pad, Y: y, Width: w, Height: listH}, names, &e.catalogFocus, &e.catalogScroll, sel)
		if active != sel && active >= 0 {
			b.Select(int(active))
		}
	}

	e.drawStatusBar(b, screenW, screenH)
}

func (e *Editor) drawTopBar(b *Builder, screenW int32) {
	rl.DrawRectangle(0, 0, screenW, topBarHeight, colorBgDark)
	rl.DrawRectangle(0, topBarHeight-1, screenW, 1, colorBorder)

	mode := "VIEW"
	modeColor := colorTextMuted
	if b.Building() {
		mode = "BUILD"
		modeColor = colorAccent
	}
	rl.DrawText(mode, 12, 8, 22, modeColor)
	rl.DrawText("RMB+WASD: fly  |  LMB: place  |  Q/E: rotate  |  +/-: scale  |  1-3: category  |  B: build  |  Ctrl+Z: undo  |  Ctrl+S: save",
		100, 11, 14, colorTextMuted)
	rl.DrawText(fmt.Sprintf("Speed: %.0f", e.camera.MoveSpeed), screenW-panelWidth-110, 11, 14, colorAccentLight)
}

func (e *Editor) drawAnchors(b *Builder, x, y, w float32) float32 {
	const rowH = 20
	h := float32(len(placement.Categories()))*rowH + 40
	gui.GroupBox(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, "Parents")

	ry := y + 10
	for _, c := range placement.Categories() {
		name := "(missing)"
		if a := b.Session.AnchorFor(c); a != nil {
			name = a.Name
		}
		gui.Label(rl.Rectangle{X: x + 8, Y: ry, Width: w - 16, Height: rowH}, fmt.Sprintf("%-13s %s", c.String()+":", name))
		ry += rowH
	}
	if gui.Button(rl.Rectangle{X: x + 8, Y: ry + 2, Width: w - 16, Height: 22}, "Restore missing parents") {
		b.RestoreAnchors()
	}
	return y + h + 10
}

func (e *Editor) drawCreated(b *Builder, x, y, w float32) float32 {
	g := b.LastCreated()
	if g == nil {
		return y
	}
	const rowH = 18
	h := float32(3*rowH + 50)
	gui.GroupBox(rl.Rectangle{X: x, Y: y, Width: w, Height: h}, "Created Object Settings")

	t := g.Transform
	rows := []string{
		fmt.Sprintf("Position  %.1f  %.1f  %.1f", t.Position.X, t.Position.Y, t.Position.Z),
		fmt.Sprintf("Rotation  %.0f  %.0f  %.0f", t.Rotation.X, t.Rotation.Y, t.Rotation.Z),
		fmt.Sprintf("Scale     %.2f  %.2f  %.2f", t.Scale.X, t.Scale.Y, t.Scale.Z),
	}
	ry := y + 10
	for _, r := range rows {
		gui.Label(rl.Rectangle{X: x + 8, Y: ry, Width: w - 16, Height: rowH}, r)
		ry += rowH
	}

	bw := (w - 16 - 3*4) / 4
	buttons := []struct {
		label string
		move  rl.Vector3
		turn  float32
	}{
		{"Turn -", rl.Vector3{}, -nudgeAngle},
		{"Turn +", rl.Vector3{}, nudgeAngle},
		{"Lower", rl.Vector3{Y: -nudgeDistance}, 0},
		{"Raise", rl.Vector3{Y: nudgeDistance}, 0},
	}
	for i, btn := range buttons {
		bx := x + 8 + float32(i)*(bw+4)
		if gui.Button(rl.Rectangle{X: bx, Y: ry + 4, Width: bw, Height: 22}, btn.label) {
			b.NudgeCreated(btn.move, btn.turn)
		}
	}
	return y + h + 10
}

func (e *Editor) drawStatusBar(b *Builder, screenW, screenH float32) {
	res := b.Last()
	text := "State: " + res.State.String()
	if p := res.Preview; p != nil && !p.Parked {
		if p.Verdict.Allowed {
			text += "  |  free"
		} else {
			text += fmt.Sprintf("  |  blocked by %d", len(p.Verdict.Blockers))
		}
	}
	if msg, at := b.Status(); msg != "" && time.Since(at) < statusDuration {
		text += "  |  " + msg
	}
	gui.StatusBar(rl.Rectangle{X: 0, Y: screenH - 24, Width: screenW - panelWidth, Height: 24}, text)
}

func categoryLabels() string {
	names := make([]string, 0, 3)
	for _, c := range placement.Categories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ";")
}

// verdictColor picks the outline color for a footprint check.
func verdictColor(v placement.Verdict) rl.Color {
	if v.Allowed {
		return colorAllowed
	}
	return colorBlocked
}
