package scripts

import (
	"SkyboxDimmer/internal/behaviour"
	"SkyboxDimmer/internal/config"
	"SkyboxDimmer/internal/dimmer"
	"SkyboxDimmer/internal/logger"

	"go.uber.org/zap"
)

// SkyboxDimmerScript binds the dimmer to the host lifecycle: Start loads
// the settings and takes over the skybox, Update recomputes its color
// each frame and OnDestroy hands the skybox back.
type SkyboxDimmerScript struct {
	behaviour.BaseComponent

	SettingsPath string
	Sky          dimmer.SkyboxStateSink
	Scene        dimmer.SceneQuery

	dimmer *dimmer.Dimmer
}

func NewSkyboxDimmerScript(settingsPath string, sky dimmer.SkyboxStateSink, scene dimmer.SceneQuery) *SkyboxDimmerScript {
	return &SkyboxDimmerScript{
		SettingsPath: settingsPath,
		Sky:          sky,
		Scene:        scene,
	}
}

func (s *SkyboxDimmerScript) Start() {
	cfg := config.Default()
	if s.SettingsPath != "" {
		cfg = config.Load(s.SettingsPath)
	}
	s.dimmer = dimmer.New(s.Sky, cfg, dimmer.WithLogger(logger.Log.Named("dimmer")))
	s.dimmer.Activate()
}

func (s *SkyboxDimmerScript) Update() {
	if s.dimmer == nil {
		return
	}
	s.dimmer.TickScene(s.Scene)
}

func (s *SkyboxDimmerScript) OnDestroy() {
	if s.dimmer == nil {
		return
	}
	s.dimmer.Deactivate()
}

// Activate resumes per-frame updates after Deactivate.
func (s *SkyboxDimmerScript) Activate() {
	s.SetEnabled(true)
	if s.dimmer != nil {
		s.dimmer.Activate()
	}
}

// Deactivate stops per-frame updates and restores the skybox.
func (s *SkyboxDimmerScript) Deactivate() {
	s.SetEnabled(false)
	if s.dimmer != nil {
		s.dimmer.Deactivate()
	}
	logger.Log.Debug("Skybox dimmer script disabled",
		zap.String("object", s.objectName()))
}

// Dimmer returns the running dimmer, nil before Start.
func (s *SkyboxDimmerScript) Dimmer() *dimmer.Dimmer {
	return s.dimmer
}

func (s *SkyboxDimmerScript) objectName() string {
	if obj := s.GetGameObject(); obj != nil {
		return obj.Name
	}
	return ""
}
