package config

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"SkyboxDimmer/internal/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	// OptionsGroup is the settings group holding the dimmer options.
	OptionsGroup = "OPTIONS"
	// MaxBrightnessKey is the brightness ceiling key inside OptionsGroup.
	MaxBrightnessKey = "maxBrightness"

	DefaultMaxBrightness float32 = 0.8
)

var (
	ErrGroupMissing = errors.New("settings group missing")
	ErrKeyMissing   = errors.New("settings key missing")
	ErrOutOfRange   = errors.New("value outside [0, 1]")
)

// DimmerConfig is loaded once at startup and never changes afterwards.
type DimmerConfig struct {
	MaxBrightness float32
}

// Default returns the configuration used when no valid settings exist.
func Default() DimmerConfig {
	return DimmerConfig{MaxBrightness: DefaultMaxBrightness}
}

// SettingsPath returns the conventional settings location below a game root.
func SettingsPath(root string) string {
	return filepath.Join(root, "GameData", "KSD", "KerbalSkyboxDimmer.settings")
}

// ParseMaxBrightness parses a brightness ceiling, accepting only [0, 1].
func ParseMaxBrightness(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", MaxBrightnessKey, s, err)
	}
	if math.IsNaN(v) || v < 0 || v > 1 {
		return 0, fmt.Errorf("%s %q: %w", MaxBrightnessKey, s, ErrOutOfRange)
	}
	return float32(v), nil
}

// FromNode extracts the configuration from a parsed ConfigNode root.
func FromNode(root *Node) (DimmerConfig, error) {
	options := root.GetNode(OptionsGroup)
	if options == nil {
		return Default(), fmt.Errorf("%s: %w", OptionsGroup, ErrGroupMissing)
	}
	raw, ok := options.GetValue(MaxBrightnessKey)
	if !ok {
		return Default(), fmt.Errorf("%s.%s: %w", OptionsGroup, MaxBrightnessKey, ErrKeyMissing)
	}
	v, err := ParseMaxBrightness(raw)
	if err != nil {
		return Default(), err
	}
	return DimmerConfig{MaxBrightness: v}, nil
}

// FromYAML extracts the configuration from a YAML document of the form
//
//	OPTIONS:
//	  maxBrightness: 0.8
func FromYAML(data []byte) (DimmerConfig, error) {
	var doc struct {
		Options *yaml.Node `yaml:"OPTIONS"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Default(), fmt.Errorf("decode yaml settings: %w", err)
	}
	if doc.Options == nil || doc.Options.Kind != yaml.MappingNode {
		return Default(), fmt.Errorf("%s: %w", OptionsGroup, ErrGroupMissing)
	}

	content := doc.Options.Content
	for i := 0; i+1 < len(content); i += 2 {
		if content[i].Value != MaxBrightnessKey {
			continue
		}
		if content[i+1].Kind != yaml.ScalarNode {
			return Default(), fmt.Errorf("%s.%s is not a scalar: %w", OptionsGroup, MaxBrightnessKey, ErrKeyMissing)
		}
		v, err := ParseMaxBrightness(content[i+1].Value)
		if err != nil {
			return Default(), err
		}
		return DimmerConfig{MaxBrightness: v}, nil
	}
	return Default(), fmt.Errorf("%s.%s: %w", OptionsGroup, MaxBrightnessKey, ErrKeyMissing)
}

// Parse decodes settings data. isYAML selects the YAML format, otherwise
// the data is read as a ConfigNode document.
func Parse(data []byte, isYAML bool) (DimmerConfig, error) {
	if isYAML {
		return FromYAML(data)
	}
	root, err := ParseConfigNode(bytes.NewReader(data))
	if err != nil {
		return Default(), err
	}
	return FromNode(root)
}

// Load reads the settings file at path. It never fails: any problem is
// logged as a warning and the default configuration is returned.
func Load(path string) DimmerConfig {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Log.Warn("Settings file unavailable, using defaults",
			zap.String("path", path),
			zap.Float32("maxBrightness", DefaultMaxBrightness),
			zap.Error(err))
		return Default()
	}

	ext := strings.ToLower(filepath.Ext(path))
	cfg, err := Parse(data, ext == ".yaml" || ext == ".yml")
	if err != nil {
		logger.Log.Warn("Invalid settings, using defaults",
			zap.String("path", path),
			zap.Float32("maxBrightness", DefaultMaxBrightness),
			zap.Error(err))
		return Default()
	}

	logger.Log.Info("Setting maxBrightness",
		zap.String("path", path),
		zap.Float32("maxBrightness", cfg.MaxBrightness))
	return cfg
}
