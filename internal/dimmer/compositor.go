package dimmer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// Bodies at or below this apparent half-angle are ignored.
	MinAngularSize = 1.0
	// Sun separation at which glare has faded out completely.
	GlareFadeAngle = 100.0
	// Apparent size at which the size weight saturates.
	MaxWeightedSize = 60.0
	// Margin past the frustum edge before alignment starts to fade.
	FrustumMargin = 5.0
)

// Contribution holds the per-body factors of one frame.
type Contribution struct {
	AngularSize float64 // degrees
	Glare       float64
	SizeWeight  float64
	Alignment   float64
	Scalar      float64 // multiplier applied to every channel
}

// AngularSize returns the apparent half-angle in degrees of a sphere of
// radius r whose center is d away. ok is false when the viewer is at or
// inside the surface, where the angle is undefined.
func AngularSize(d, r float64) (deg float64, ok bool) {
	if !(d > r) || r < 0 || math.IsInf(d, 0) || math.IsNaN(r) {
		return 0, false
	}
	cos := math.Sqrt(d*d-r*r) / d
	return mgl64.RadToDeg(math.Acos(clamp(cos, -1, 1))), true
}

// AngleBetween returns the angle between a and b in degrees. ok is false
// when either vector has zero length.
func AngleBetween(a, b mgl64.Vec3) (deg float64, ok bool) {
	denom := a.Len() * b.Len()
	if denom < 1e-15 || math.IsNaN(denom) || math.IsInf(denom, 0) {
		return 0, false
	}
	return mgl64.RadToDeg(math.Acos(clamp(a.Dot(b)/denom, -1, 1))), true
}

// GlareFactor is 1 when the body sits in front of the sun as seen from the
// camera and fades to 0 at GlareFadeAngle of separation.
func GlareFactor(relAngle, angularSize float64) float64 {
	if angularSize >= GlareFadeAngle {
		return 1
	}
	relAngle = clamp(relAngle, angularSize, GlareFadeAngle)
	return clamp(1-(relAngle-angularSize)/(GlareFadeAngle-angularSize), 0, 1)
}

// AlignmentFactor is 1 while the body's edge is inside the field of view
// plus FrustumMargin and fades to 0 over another quarter field of view.
func AlignmentFactor(camToBody, angularSize, fov float64) float64 {
	edge := math.Max(0, camToBody-angularSize)
	excess := math.Max(0, edge-fov/2-FrustumMargin)
	if excess == 0 {
		return 1
	}
	if fov <= 0 {
		return 0
	}
	return 1 - clamp(excess/(fov/4), 0, 1)
}

// SizeWeight grows with the square root of apparent size up to MaxWeightedSize.
func SizeWeight(angularSize float64) float64 {
	return math.Sqrt(clamp(angularSize, 0, MaxWeightedSize) / MaxWeightedSize)
}

// BodyContribution computes how much body dims the skybox this frame.
// ok is false when the body contributes nothing: too small, degenerate
// geometry, or non-finite inputs.
func BodyContribution(camera CameraState, body, sun CelestialBody) (Contribution, bool) {
	d := body.Altitude(camera.Position) + body.Radius
	size, ok := AngularSize(d, body.Radius)
	if !ok || size <= MinAngularSize {
		return Contribution{}, false
	}

	relAngle, ok := AngleBetween(sun.Position.Sub(body.Position), camera.Position.Sub(body.Position))
	if !ok {
		relAngle = 180
	}

	forward := mgl64.Vec3{float64(camera.Forward[0]), float64(camera.Forward[1]), float64(camera.Forward[2])}
	camToBody, ok := AngleBetween(body.Position.Sub(camera.Position), forward)
	if !ok {
		camToBody = 0
	}

	c := Contribution{
		AngularSize: size,
		Glare:       GlareFactor(relAngle, size),
		SizeWeight:  SizeWeight(size),
		Alignment:   AlignmentFactor(camToBody, size, float64(camera.FieldOfView)),
	}
	c.Scalar = clamp(1-c.Glare*c.SizeWeight*c.Alignment, 0, 1)
	if math.IsNaN(c.Scalar) {
		return Contribution{}, false
	}
	return c, true
}

// ComputeFrameColor returns the skybox color for one frame. It starts from
// a uniform gray at maxBrightness and multiplies in every contributing
// body. bodies[0] is the sun; an empty slice yields the undimmed gray.
func ComputeFrameColor(camera CameraState, bodies []CelestialBody, maxBrightness float32) mgl32.Vec3 {
	color := Gray(maxBrightness)
	if len(bodies) == 0 {
		return color
	}

	sun := bodies[0]
	for _, body := range bodies {
		c, ok := BodyContribution(camera, body, sun)
		if !ok {
			continue
		}
		color = color.Mul(float32(c.Scalar))
	}
	return color
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
