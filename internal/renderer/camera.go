// camera.go
package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

type Camera struct {
	// HOT DATA - sampled every frame
	Position   mgl64.Vec3 // World space; planetary distances need float64
	Front      mgl32.Vec3 // Forward direction vector
	Up         mgl32.Vec3 // Up direction vector
	Right      mgl32.Vec3 // Right direction vector
	Projection mgl32.Mat4 // Projection matrix
	Pitch      float32    // Pitch angle in degrees
	Yaw        float32    // Yaw angle in degrees

	// COLD DATA
	WorldUp     mgl32.Vec3 // World up vector (usually (0,1,0))
	Sensitivity float32    // Mouse sensitivity
	Fov         float32    // Vertical field of view in degrees
	Near        float32
	Far         float32
	AspectRatio float32
	InvertMouse bool

	Name     string // Camera name for identification
	IsActive bool   // Whether this is the active camera
}

func NewDefaultCamera(height int32, width int32) *Camera {
	camera := Camera{
		Position:    mgl64.Vec3{0, 0, 0},
		Front:       mgl32.Vec3{0, 0, 1},
		Up:          mgl32.Vec3{0, 1, 0},
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Pitch:       0.0,
		Yaw:         90.0,
		Sensitivity: 0.1,
		Fov:         60.0,
		Near:        0.1,
		Far:         1e7,
		AspectRatio: float32(width) / float32(height),
		InvertMouse: true,
		IsActive:    true,
	}
	camera.updateCameraVectors()
	camera.UpdateProjection()
	return &camera
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

// Setter methods that automatically update projection
func (c *Camera) SetFov(fov float32) {
	c.Fov = fov
	c.UpdateProjection()
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

// GetViewMatrix returns a camera-relative view matrix. Translation is left
// out because world positions do not fit in float32 at planetary scale.
func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(mgl32.Vec3{}, c.Front, c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

// Move translates the camera along its own axes.
func (c *Camera) Move(forward, right, up float64) {
	delta := vec64(c.Front).Mul(forward).
		Add(vec64(c.Right).Mul(right)).
		Add(vec64(c.Up).Mul(up))
	c.Position = c.Position.Add(delta)
}

func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.Sensitivity
	yoffset *= c.Sensitivity

	c.Yaw += xoffset

	if c.InvertMouse {
		c.Pitch -= yoffset
	} else {
		c.Pitch += yoffset
	}
	if constrainPitch {
		c.Pitch = mgl32.Clamp(c.Pitch, -89.0, 89.0) // Prevent flipping over the pole
	}
	c.updateCameraVectors()
}

// LookAt points the camera at target. Looking straight up or down keeps
// the current yaw.
func (c *Camera) LookAt(target mgl64.Vec3) {
	direction := target.Sub(c.Position)
	if direction.Len() == 0 {
		return
	}
	direction = direction.Normalize()

	c.Pitch = float32(mgl64.RadToDeg(math.Asin(mgl64.Clamp(direction.Y(), -1, 1))))
	if math.Abs(direction.X()) > 1e-12 || math.Abs(direction.Z()) > 1e-12 {
		c.Yaw = float32(mgl64.RadToDeg(math.Atan2(direction.Z(), direction.X())))
	}
	c.updateCameraVectors()
}

func (c *Camera) updateCameraVectors() {
	yawRad := mgl32.DegToRad(c.Yaw)
	pitchRad := mgl32.DegToRad(c.Pitch)

	front := mgl32.Vec3{
		float32(math.Cos(float64(yawRad)) * math.Cos(float64(pitchRad))),
		float32(math.Sin(float64(pitchRad))),
		float32(math.Sin(float64(yawRad)) * math.Cos(float64(pitchRad))),
	}

	c.Front = front.Normalize()
	right := c.WorldUp.Cross(c.Front)
	if right.Len() < 1e-6 {
		// Looking along WorldUp; any horizontal right vector will do.
		right = mgl32.Vec3{1, 0, 0}
	}
	c.Right = right.Normalize()
	c.Up = c.Front.Cross(c.Right).Normalize()
}

func vec64(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
