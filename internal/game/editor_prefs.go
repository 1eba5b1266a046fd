package game

import (
	"encoding/json"
	"os"

	"github.com/Develoder/BuilderEX/internal/placement"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// EditorPrefs is the view and panel state restored on the next launch.
type EditorPrefs struct {
	CameraPosition  rl.Vector3 `json:"cameraPosition"`
	CameraYaw       float32    `json:"cameraYaw"`
	CameraPitch     float32    `json:"cameraPitch"`
	CameraMoveSpeed float32    `json:"cameraMoveSpeed"`
	Category        string     `json:"category"`
	Selection       int        `json:"selection"`
}

const editorPrefsFile = ".builder_prefs.json"

// LoadEditorPrefs reads prefs from path; nil when missing or unreadable.
func LoadEditorPrefs(path string, log *zap.Logger) *EditorPrefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var prefs EditorPrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		if log == nil {
			log = zap.NewNop()
		}
		log.Warn("failed to parse editor prefs", zap.String("path", path), zap.Error(err))
		return nil
	}
	return &prefs
}

// Prefs captures the current camera and catalog position.
func (e *Editor) Prefs(b *Builder) EditorPrefs {
	return EditorPrefs{
		CameraPosition:  e.camera.Position,
		CameraYaw:       e.camera.Yaw,
		CameraPitch:     e.camera.Pitch,
		CameraMoveSpeed: e.camera.MoveSpeed,
		Category:        b.Session.Category().String(),
		Selection:       b.Session.Selection(),
	}
}

func SavePrefs(path string, prefs EditorPrefs) error {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyPrefs restores the camera, then the category and selection when the
// category still exists.
func (e *Editor) ApplyPrefs(prefs *EditorPrefs, b *Builder) {
	if prefs == nil {
		return
	}

	e.camera.Position = prefs.CameraPosition
	e.camera.Yaw = prefs.CameraYaw
	e.camera.Pitch = prefs.CameraPitch
	e.clampPitch()
	if prefs.CameraMoveSpeed > 0 {
		e.camera.MoveSpeed = prefs.CameraMoveSpeed
	}

	c, err := placement.ParseCategory(prefs.Category)
	if err != nil {
		return
	}
	if err := b.SelectCategory(c); err != nil {
		return
	}
	if prefs.Selection >= 0 && prefs.Selection < len(b.Session.Catalog()) {
		b.Select(prefs.Selection)
	}
}
