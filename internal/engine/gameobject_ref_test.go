package engine

import "testing"

func TestGameObjectRefGet(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Target")
	scene.AddGameObject(obj)

	ref := RefTo(obj)

	if found := ref.Get(scene); found != obj {
		t.Errorf("Get() failed: expected %v, got %v", obj, found)
	}
}

func TestGameObjectRefGetNil(t *testing.T) {
	scene := NewScene("Test")

	if (GameObjectRef{}).Get(scene) != nil {
		t.Error("Get() with UID=0 should return nil")
	}

	if (GameObjectRef{UID: 99999}).Get(scene) != nil {
		t.Error("Get() with non-existent UID should return nil")
	}

	if (GameObjectRef{UID: 123}).Get(nil) != nil {
		t.Error("Get() with nil scene should return nil")
	}
}

func TestGameObjectRefAfterRemoval(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Anchor")
	scene.AddGameObject(obj)
	ref := RefTo(obj)

	scene.RemoveGameObject(obj)

	if ref.Get(scene) != nil {
		t.Error("Reference to a removed object should resolve to nil")
	}
	if !ref.IsValid() {
		t.Error("IsValid only reports whether a UID is set")
	}
}

func TestGameObjectRefSetClear(t *testing.T) {
	obj := NewGameObject("Target")
	var ref GameObjectRef

	ref.Set(obj)
	if ref.UID != obj.UID {
		t.Errorf("Set() failed: expected UID %d, got %d", obj.UID, ref.UID)
	}

	ref.Set(nil)
	if ref.IsValid() {
		t.Error("Set(nil) should clear the reference")
	}

	ref.Set(obj)
	ref.Clear()
	if ref.UID != 0 {
		t.Error("Clear() should set UID to 0")
	}
}
