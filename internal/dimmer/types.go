package dimmer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// CelestialBody is a spherical body tracked for glare. Positions are in
// world space and need double precision at planetary scale.
type CelestialBody struct {
	Name     string
	Position mgl64.Vec3
	Radius   float64
}

// Altitude returns the distance from p to the body's surface.
func (b CelestialBody) Altitude(p mgl64.Vec3) float64 {
	return p.Sub(b.Position).Len() - b.Radius
}

// CameraState is sampled once per frame.
type CameraState struct {
	Position    mgl64.Vec3
	Forward     mgl32.Vec3 // unit vector
	FieldOfView float32    // degrees
}

// SkyboxStateSink is the host skybox subsystem. It may be unavailable,
// e.g. before the host has initialized it, in which case callers skip
// every read and write.
type SkyboxStateSink interface {
	Available() bool
	MaxColor() mgl32.Vec3
	SetMaxColor(mgl32.Vec3)
	GlareFadeLimit() float32
	SetGlareFadeLimit(float32)
}

// SceneQuery supplies the per-frame camera and bodies. The first body is
// the sun. ok is false while the host has no camera.
type SceneQuery interface {
	Camera() (camera CameraState, ok bool)
	Bodies() []CelestialBody
}

// Gray returns a uniform color with every channel set to v.
func Gray(v float32) mgl32.Vec3 {
	return mgl32.Vec3{v, v, v}
}
