package scene

import (
	"SkyboxDimmer/internal/dimmer"
	"SkyboxDimmer/internal/renderer"

	"github.com/go-gl/mathgl/mgl64"
)

// World is the per-frame scene surface the dimmer reads: the active camera
// and the celestial bodies, sun first.
type World struct {
	camera *renderer.Camera
	bodies []dimmer.CelestialBody
	hasSun bool
}

func NewWorld() *World {
	return &World{}
}

// SetCamera sets the active camera; nil removes it.
func (w *World) SetCamera(c *renderer.Camera) {
	w.camera = c
}

// SetSun puts the primary light source in front of the other bodies,
// replacing a sun set earlier.
func (w *World) SetSun(sun dimmer.CelestialBody) {
	if w.hasSun {
		w.bodies[0] = sun
		return
	}
	w.bodies = append([]dimmer.CelestialBody{sun}, w.bodies...)
	w.hasSun = true
}

// AddBody appends a body. The first body added becomes the sun unless
// SetSun was called before.
func (w *World) AddBody(b dimmer.CelestialBody) {
	w.bodies = append(w.bodies, b)
}

// FindBody returns the index of the first body with the given name, or -1.
func (w *World) FindBody(name string) int {
	for i, b := range w.bodies {
		if b.Name == name {
			return i
		}
	}
	return -1
}

// MoveBody sets a body's position, e.g. when orbits advance.
func (w *World) MoveBody(name string, pos mgl64.Vec3) bool {
	i := w.FindBody(name)
	if i < 0 {
		return false
	}
	w.bodies[i].Position = pos
	return true
}

func (w *World) Clear() {
	w.bodies = w.bodies[:0]
	w.hasSun = false
}

// Camera implements dimmer.SceneQuery.
func (w *World) Camera() (dimmer.CameraState, bool) {
	if w.camera == nil {
		return dimmer.CameraState{}, false
	}
	return dimmer.CameraState{
		Position:    w.camera.Position,
		Forward:     w.camera.Front,
		FieldOfView: w.camera.Fov,
	}, true
}

// Bodies implements dimmer.SceneQuery. The slice is owned by the world and
// must not be modified.
func (w *World) Bodies() []dimmer.CelestialBody {
	return w.bodies
}
