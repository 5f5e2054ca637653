package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera(600, 800)

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}

	if !cam.Front.ApproxEqualThreshold(mgl32.Vec3{0, 0, 1}, 1e-5) {
		t.Errorf("Expected camera looking down +Z, got %v", cam.Front)
	}

	if cam.Fov <= 0 {
		t.Error("Camera FOV should be positive")
	}

	if cam.Sensitivity <= 0 {
		t.Error("Camera sensitivity should be positive")
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewDefaultCamera(600, 800)

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := NewDefaultCamera(600, 800)
	cam.Position = mgl64.Vec3{1e9, 2e9, 3e9}

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}
	if view.At(0, 3) != 0 || view.At(1, 3) != 0 || view.At(2, 3) != 0 {
		t.Error("View matrix should be camera-relative")
	}
}

func TestCameraSetFov(t *testing.T) {
	cam := NewDefaultCamera(600, 800)
	before := cam.Projection

	cam.SetFov(90)

	if cam.Fov != 90 {
		t.Errorf("Expected FOV 90, got %f", cam.Fov)
	}
	if cam.Projection == before {
		t.Error("SetFov should update the projection")
	}
}

func TestCameraUpdateVectors(t *testing.T) {
	cam := NewDefaultCamera(600, 800)
	cam.Yaw = -90
	cam.Pitch = 0

	cam.updateCameraVectors()

	frontLen := cam.Front.Len()
	if math.Abs(float64(frontLen)-1.0) > 0.01 {
		t.Errorf("Front vector should be normalized, length=%f", frontLen)
	}
	if !cam.Front.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("Expected front (0,0,-1), got %v", cam.Front)
	}
}

func TestCameraLookAt(t *testing.T) {
	cam := NewDefaultCamera(600, 800)
	cam.Position = mgl64.Vec3{1e8, 0, 0}

	cam.LookAt(mgl64.Vec3{1e8, 0, -5e7})
	if !cam.Front.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("Expected front (0,0,-1), got %v", cam.Front)
	}

	cam.LookAt(mgl64.Vec3{1e8, 10, 0})
	if !cam.Front.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-5) {
		t.Errorf("Expected front (0,1,0), got %v", cam.Front)
	}
	if math.IsNaN(float64(cam.Right.Len())) {
		t.Error("Right vector should stay defined when looking straight up")
	}

	before := cam.Front
	cam.LookAt(cam.Position)
	if cam.Front != before {
		t.Error("LookAt own position should not change orientation")
	}
}

func TestCameraMove(t *testing.T) {
	cam := NewDefaultCamera(600, 800)

	cam.Move(10, 0, 0)

	if math.Abs(cam.Position.Z()-10) > 1e-4 {
		t.Errorf("Expected to move 10 along +Z, got %v", cam.Position)
	}
}

func TestCameraMouseConstrainPitch(t *testing.T) {
	cam := NewDefaultCamera(600, 800)
	cam.InvertMouse = false

	cam.ProcessMouseMovement(0, 10000, true)

	if cam.Pitch != 89 {
		t.Errorf("Expected pitch clamped to 89, got %f", cam.Pitch)
	}
}
