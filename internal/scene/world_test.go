package scene

import (
	"testing"

	"SkyboxDimmer/internal/dimmer"
	"SkyboxDimmer/internal/renderer"

	"github.com/go-gl/mathgl/mgl64"
)

var _ dimmer.SceneQuery = (*World)(nil)

func TestWorldCamera(t *testing.T) {
	w := NewWorld()

	if _, ok := w.Camera(); ok {
		t.Error("World without a camera should report none")
	}

	cam := renderer.NewDefaultCamera(600, 800)
	cam.Position = mgl64.Vec3{1, 2, 3}
	w.SetCamera(cam)

	state, ok := w.Camera()
	if !ok {
		t.Fatal("Expected a camera")
	}
	if state.Position != cam.Position || state.Forward != cam.Front || state.FieldOfView != cam.Fov {
		t.Errorf("Camera snapshot mismatch: %+v", state)
	}
}

func TestWorldBodiesOrder(t *testing.T) {
	w := NewWorld()
	w.AddBody(dimmer.CelestialBody{Name: "Kerbin", Radius: 600000})
	w.SetSun(dimmer.CelestialBody{Name: "Kerbol", Radius: 261600000})
	w.AddBody(dimmer.CelestialBody{Name: "Mun", Radius: 200000})

	if len(w.Bodies()) != 3 {
		t.Fatalf("Expected 3 bodies, got %d", len(w.Bodies()))
	}
	if w.Bodies()[0].Name != "Kerbol" {
		t.Errorf("Expected sun first, got %s", w.Bodies()[0].Name)
	}

	w.SetSun(dimmer.CelestialBody{Name: "Sol"})
	if len(w.Bodies()) != 3 || w.Bodies()[0].Name != "Sol" {
		t.Errorf("SetSun should replace the previous sun, got %+v", w.Bodies())
	}

	empty := NewWorld()
	empty.SetSun(dimmer.CelestialBody{Name: "Kerbol"})
	if empty.FindBody("Kerbol") != 0 {
		t.Error("SetSun on an empty world should add the sun")
	}
}

func TestWorldMoveBody(t *testing.T) {
	w := NewWorld()
	w.AddBody(dimmer.CelestialBody{Name: "Kerbol"})
	w.AddBody(dimmer.CelestialBody{Name: "Mun"})

	if !w.MoveBody("Mun", mgl64.Vec3{0, 0, 12e6}) {
		t.Fatal("MoveBody should find Mun")
	}
	if w.Bodies()[1].Position != (mgl64.Vec3{0, 0, 12e6}) {
		t.Errorf("Position not updated: %v", w.Bodies()[1].Position)
	}
	if w.MoveBody("Duna", mgl64.Vec3{}) {
		t.Error("MoveBody should fail for unknown bodies")
	}

	w.Clear()
	if len(w.Bodies()) != 0 {
		t.Error("Clear should remove all bodies")
	}
}
