package game

import (
	"math"

	"github.com/Develoder/BuilderEX/internal/config"
	"github.com/Develoder/BuilderEX/internal/placement"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	topBarHeight    = 36
	panelWidth      = 300
	minMoveSpeed    = 1.0
	maxMoveSpeed    = 400.0
	nudgeDistance   = 1.0
	nudgeAngle      = 15.0
	maxPitchDegrees = 89
)

type EditorCamera struct {
	Position    rl.Vector3
	Yaw         float32
	Pitch       float32
	MoveSpeed   float32
	FastFactor  float32
	Sensitivity float32
	FOV         float32
}

// Editor owns the fly camera and the operator panel. Everything it decides
// is handed to the Builder as Intents or direct calls.
type Editor struct {
	camera EditorCamera

	catalogScroll int32
	catalogFocus  int32
}

func NewEditor(cfg config.CameraConfig) *Editor {
	e := &Editor{
		camera: EditorCamera{
			Position:    rl.Vector3{X: cfg.StartPosition[0], Y: cfg.StartPosition[1], Z: cfg.StartPosition[2]},
			MoveSpeed:   cfg.MoveSpeed,
			FastFactor:  cfg.FastMultiplier,
			Sensitivity: cfg.LookSensitivity,
			FOV:         cfg.FOV,
		},
		catalogFocus: -1,
	}
	target := rl.Vector3{X: cfg.StartTarget[0], Y: cfg.StartTarget[1], Z: cfg.StartTarget[2]}
	e.LookAt(target)
	return e
}

// LookAt points the camera at target from its current position.
func (e *Editor) LookAt(target rl.Vector3) {
	dir := rl.Vector3Subtract(target, e.camera.Position)
	if rl.Vector3LengthSqr(dir) == 0 {
		return
	}
	dir = rl.Vector3Normalize(dir)
	e.camera.Pitch = float32(math.Asin(float64(dir.Y))) * rl.Rad2deg
	e.camera.Yaw = float32(math.Atan2(float64(dir.Z), float64(dir.X))) * rl.Rad2deg
	e.clampPitch()
}

func (e *Editor) clampPitch() {
	if e.camera.Pitch > maxPitchDegrees {
		e.camera.Pitch = maxPitchDegrees
	}
	if e.camera.Pitch < -maxPitchDegrees {
		e.camera.Pitch = -maxPitchDegrees
	}
}

// UpdateCamera flies the camera: right-drag to look, right-drag + WASD/QE to
// move, Shift to go faster, Shift+wheel to change speed.
func (e *Editor) UpdateCamera(deltaTime float32) {
	fast := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		mouseDelta := rl.GetMouseDelta()
		e.camera.Yaw += mouseDelta.X * e.camera.Sensitivity * rl.Rad2deg
		e.camera.Pitch -= mouseDelta.Y * e.camera.Sensitivity * rl.Rad2deg
		e.clampPitch()

		forward, right := e.getDirections()
		speed := e.camera.MoveSpeed * deltaTime
		if fast {
			speed *= e.camera.FastFactor
		}

		if rl.IsKeyDown(rl.KeyW) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(forward, speed))
		}
		if rl.IsKeyDown(rl.KeyS) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(forward, -speed))
		}
		if rl.IsKeyDown(rl.KeyA) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(right, speed))
		}
		if rl.IsKeyDown(rl.KeyD) {
			e.camera.Position = rl.Vector3Add(e.camera.Position, rl.Vector3Scale(right, -speed))
		}
		if rl.IsKeyDown(rl.KeyE) {
			e.camera.Position.Y += speed
		}
		if rl.IsKeyDown(rl.KeyQ) {
			e.camera.Position.Y -= speed
		}
	}

	scroll := rl.GetMouseWheelMove()
	if scroll != 0 && fast {
		e.camera.MoveSpeed = clampf(e.camera.MoveSpeed+scroll*5, minMoveSpeed, maxMoveSpeed)
	}
}

// ReadIntents maps this frame's keys and clicks. Placement keys are ignored
// while the right button flies the camera.
func (e *Editor) ReadIntents() Intents {
	cam := e.GetRaylibCamera()
	in := Intents{Ray: rl.GetScreenToWorldRay(rl.GetMousePosition(), cam)}

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyLeftSuper) ||
		rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyRightSuper)
	in.Undo = ctrl && rl.IsKeyPressed(rl.KeyZ)
	in.Save = ctrl && rl.IsKeyPressed(rl.KeyS)

	if rl.IsMouseButtonDown(rl.MouseRightButton) || ctrl {
		return in
	}
	in.Confirm = rl.IsMouseButtonPressed(rl.MouseLeftButton) && !e.mouseInPanel()
	in.Edits = editsFromKeys(keyState{
		rotateLeft:  rl.IsKeyPressed(rl.KeyQ),
		rotateRight: rl.IsKeyPressed(rl.KeyE),
		scaleUp:     rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd),
		scaleDown:   rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract),
	})
	return in
}

type keyState struct {
	rotateLeft, rotateRight bool
	scaleUp, scaleDown      bool
}

func editsFromKeys(k keyState) []placement.EditCommand {
	var edits []placement.EditCommand
	if k.rotateLeft {
		edits = append(edits, placement.RotateLeft)
	}
	if k.rotateRight {
		edits = append(edits, placement.RotateRight)
	}
	if k.scaleUp {
		edits = append(edits, placement.ScaleUp)
	}
	if k.scaleDown {
		edits = append(edits, placement.ScaleDown)
	}
	return edits
}

// categoryHotkey returns the category bound to the 1-3 keys pressed this frame.
func categoryHotkey() (placement.Category, bool) {
	keys := [...]int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree}
	for i, k := range keys {
		if rl.IsKeyPressed(k) {
			return placement.Categories()[i], true
		}
	}
	return 0, false
}

func (e *Editor) getDirections() (forward, right rl.Vector3) {
	return cameraDirections(e.camera.Yaw, e.camera.Pitch)
}

func cameraDirections(yaw, pitch float32) (forward, right rl.Vector3) {
	yawRad := float64(yaw) * math.Pi / 180
	pitchRad := float64(pitch) * math.Pi / 180

	forward = rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}
	right = rl.Vector3{
		X: float32(math.Sin(yawRad)),
		Y: 0,
		Z: float32(-math.Cos(yawRad)),
	}
	return
}

func (e *Editor) GetRaylibCamera() rl.Camera3D {
	forward, _ := e.getDirections()
	target := rl.Vector3Add(e.camera.Position, forward)
	return rl.Camera3D{
		Position:   e.camera.Position,
		Target:     target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       e.camera.FOV,
		Projection: rl.CameraPerspective,
	}
}

// mouseInPanel returns true if the mouse is over the top bar or the builder panel.
func (e *Editor) mouseInPanel() bool {
	m := rl.GetMousePosition()
	return pointInChrome(m, float32(rl.GetScreenWidth()))
}

func pointInChrome(m rl.Vector2, screenW float32) bool {
	return m.Y <= topBarHeight || m.X >= screenW-panelWidth
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
