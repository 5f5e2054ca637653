package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Default galaxy tint used before anything adjusts the skybox.
var (
	SkyboxR float32 = 1.0
	SkyboxG float32 = 1.0
	SkyboxB float32 = 1.0

	DefaultGlareFadeLimit float32 = 0.3
)

// SkyboxControl is the renderer's galaxy cube state. MaxGalaxyColor caps
// the starfield color; the renderer fades the starfield near bright
// objects down to GlareFadeLimit.
type SkyboxControl struct {
	MaxGalaxyColor mgl32.Vec3
	GlareFadeLimit float32
}

func NewSkyboxControl() *SkyboxControl {
	return &SkyboxControl{
		MaxGalaxyColor: mgl32.Vec3{SkyboxR, SkyboxG, SkyboxB},
		GlareFadeLimit: DefaultGlareFadeLimit,
	}
}

func (s *SkyboxControl) SetColor(r, g, b float32) {
	s.MaxGalaxyColor = mgl32.Vec3{r, g, b}
}

// Preset colors
func (s *SkyboxControl) SetNight() {
	s.SetColor(0.1, 0.1, 0.3)
}

func (s *SkyboxControl) SetDeepSpace() {
	s.SetColor(1.0, 1.0, 1.0)
}

// SkyboxHandle reaches the skybox through a lookup because the renderer
// may not have created it yet. A nil lookup result means unavailable.
type SkyboxHandle struct {
	lookup func() *SkyboxControl
}

func NewSkyboxHandle(lookup func() *SkyboxControl) *SkyboxHandle {
	return &SkyboxHandle{lookup: lookup}
}

// HandleFor wraps a fixed skybox, which may be nil.
func HandleFor(s *SkyboxControl) *SkyboxHandle {
	return NewSkyboxHandle(func() *SkyboxControl { return s })
}

func (h *SkyboxHandle) control() *SkyboxControl {
	if h == nil || h.lookup == nil {
		return nil
	}
	return h.lookup()
}

func (h *SkyboxHandle) Available() bool {
	return h.control() != nil
}

func (h *SkyboxHandle) MaxColor() mgl32.Vec3 {
	if s := h.control(); s != nil {
		return s.MaxGalaxyColor
	}
	return mgl32.Vec3{}
}

func (h *SkyboxHandle) SetMaxColor(c mgl32.Vec3) {
	if s := h.control(); s != nil {
		s.MaxGalaxyColor = c
	}
}

func (h *SkyboxHandle) GlareFadeLimit() float32 {
	if s := h.control(); s != nil {
		return s.GlareFadeLimit
	}
	return 0
}

func (h *SkyboxHandle) SetGlareFadeLimit(limit float32) {
	if s := h.control(); s != nil {
		s.GlareFadeLimit = limit
	}
}
