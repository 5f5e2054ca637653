package dimmer

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// SavedState is the skybox state captured before the dimmer first
// changes it.
type SavedState struct {
	Color     mgl32.Vec3
	FadeLimit float32
	Valid     bool
}

// GalaxyState saves and restores the host skybox around the dimmer's
// active lifetime.
type GalaxyState struct {
	sink  SkyboxStateSink
	saved SavedState
	log   *zap.Logger
}

func NewGalaxyState(sink SkyboxStateSink, log *zap.Logger) *GalaxyState {
	if log == nil {
		log = zap.NewNop()
	}
	return &GalaxyState{sink: sink, log: log}
}

// Save snapshots the host skybox. It does nothing when the sink is
// unavailable or a snapshot is already held.
func (g *GalaxyState) Save() {
	if g.saved.Valid || !available(g.sink) {
		return
	}
	g.saved = SavedState{
		Color:     g.sink.MaxColor(),
		FadeLimit: g.sink.GlareFadeLimit(),
		Valid:     true,
	}
	g.log.Debug("Saved skybox state",
		zap.Float32s("color", g.saved.Color[:]),
		zap.Float32("glareFadeLimit", g.saved.FadeLimit))
}

// Restore writes the snapshot back when there is one and the sink is
// available. The snapshot is discarded either way, so a second call is a
// no-op.
func (g *GalaxyState) Restore() {
	if g.saved.Valid && available(g.sink) {
		g.sink.SetMaxColor(g.saved.Color)
		g.sink.SetGlareFadeLimit(g.saved.FadeLimit)
		g.log.Debug("Restored skybox state",
			zap.Float32s("color", g.saved.Color[:]),
			zap.Float32("glareFadeLimit", g.saved.FadeLimit))
	}
	g.saved = SavedState{}
}

// Saved returns the current snapshot.
func (g *GalaxyState) Saved() SavedState {
	return g.saved
}

func available(sink SkyboxStateSink) bool {
	return sink != nil && sink.Available()
}
