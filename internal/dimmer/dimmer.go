package dimmer

import (
	"SkyboxDimmer/internal/config"

	"go.uber.org/zap"
)

type State int

const (
	Inactive State = iota
	Active
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Dimmer drives the host skybox color from the scene each frame while it
// is active, and hands the original skybox state back when deactivated.
type Dimmer struct {
	sink   SkyboxStateSink
	cfg    config.DimmerConfig
	galaxy *GalaxyState
	state  State
	log    *zap.Logger
}

type Option func(*Dimmer)

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(d *Dimmer) {
		if log != nil {
			d.log = log
		}
	}
}

func New(sink SkyboxStateSink, cfg config.DimmerConfig, opts ...Option) *Dimmer {
	d := &Dimmer{
		sink: sink,
		cfg:  cfg,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.galaxy = NewGalaxyState(sink, d.log)
	return d
}

// Activate starts influencing the skybox. The host state is captured and
// replaced with the undimmed gray, and the host's own glare fade is turned
// off. Activating an active dimmer does nothing.
func (d *Dimmer) Activate() {
	if d.state == Active {
		return
	}
	d.state = Active

	if !available(d.sink) {
		d.log.Debug("Skybox unavailable on activation")
		return
	}
	d.takeOver()
	d.sink.SetMaxColor(Gray(d.cfg.MaxBrightness))
	d.log.Info("Skybox dimmer activated", zap.Float32("maxBrightness", d.cfg.MaxBrightness))
}

// Deactivate stops frame updates and restores the captured skybox state.
// It is safe to call at any time, any number of times.
func (d *Dimmer) Deactivate() {
	wasActive := d.state == Active
	d.state = Inactive
	d.galaxy.Restore()
	if wasActive {
		d.log.Info("Skybox dimmer deactivated")
	}
}

// Tick recomputes the skybox color for one frame. It does nothing while
// inactive or when the skybox is unavailable.
func (d *Dimmer) Tick(camera CameraState, bodies []CelestialBody) {
	if d.state != Active || !available(d.sink) {
		return
	}
	// A skybox that appeared after activation still needs its original
	// state captured before the first write.
	if !d.galaxy.Saved().Valid {
		d.takeOver()
	}
	d.sink.SetMaxColor(ComputeFrameColor(camera, bodies, d.cfg.MaxBrightness))
}

// takeOver captures the host state and disables the host glare fade while
// the dimmer drives the color directly.
func (d *Dimmer) takeOver() {
	d.galaxy.Save()
	d.sink.SetGlareFadeLimit(1)
}

// TickScene is Tick fed from a scene query. Frames without a camera are
// skipped.
func (d *Dimmer) TickScene(scene SceneQuery) {
	if scene == nil {
		return
	}
	camera, ok := scene.Camera()
	if !ok {
		return
	}
	d.Tick(camera, scene.Bodies())
}

func (d *Dimmer) State() State {
	return d.state
}

func (d *Dimmer) Active() bool {
	return d.state == Active
}

func (d *Dimmer) Config() config.DimmerConfig {
	return d.cfg
}

// Saved exposes the captured skybox state.
func (d *Dimmer) Saved() SavedState {
	return d.galaxy.Saved()
}
