// Package config loads application settings from defaults, an optional YAML
// file and CHESSPLAY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no explicit path is given and it exists.
const DefaultFile = "chessplay3d.yaml"

// Config is the full application configuration.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Animation   AnimationConfig   `yaml:"animation"`
	Camera      CameraConfig      `yaml:"camera"`
	Log         LogConfig         `yaml:"log"`
	Storage     StorageConfig     `yaml:"storage"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
	Audio       AudioConfig       `yaml:"audio"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type AnimationConfig struct {
	Speed          float64 `yaml:"speed"`
	SnapThreshold  float64 `yaml:"snap_threshold"`
	ClampOvershoot bool    `yaml:"clamp_overshoot"`
}

type CameraConfig struct {
	Yaw      float64 `yaml:"yaw"`      // degrees
	Pitch    float64 `yaml:"pitch"`    // degrees above the board
	Distance float64 `yaml:"distance"` // world units from the board centre
	FOV      float64 `yaml:"fov"`      // vertical, degrees
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Debug   bool   `yaml:"debug"`
	Console bool   `yaml:"console"`
	File    string `yaml:"file"`
}

type StorageConfig struct {
	Dir      string `yaml:"dir"` // empty means the platform data directory
	Disabled bool   `yaml:"disabled"`
}

type DiagnosticsConfig struct {
	Overlay     bool          `yaml:"overlay"`
	LogInterval time.Duration `yaml:"log_interval"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Chess",
			Width:  1280,
			Height: 720,
		},
		Animation: AnimationConfig{
			Speed:          1.0,
			SnapThreshold:  0.1,
			ClampOvershoot: true,
		},
		Camera: CameraConfig{
			Yaw:      0,
			Pitch:    55,
			Distance: 12,
			FOV:      45,
		},
		Log: LogConfig{
			Level:   "info",
			Console: true,
		},
		Diagnostics: DiagnosticsConfig{
			Overlay:     false,
			LogInterval: 5 * time.Second,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// Load reads path over the defaults, applies environment overrides and corrects
// invalid values. An empty path reads DefaultFile if present.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// defaults only
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv(os.Getenv)
	cfg.Correct()
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}
	float := func(key string, dst *float64) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = f
			}
		}
	}

	str("CHESSPLAY_LOG_LEVEL", &c.Log.Level)
	str("CHESSPLAY_LOG_FILE", &c.Log.File)
	boolean("CHESSPLAY_LOG_DEBUG", &c.Log.Debug)
	boolean("CHESSPLAY_LOG_CONSOLE", &c.Log.Console)
	str("CHESSPLAY_DATA_DIR", &c.Storage.Dir)
	boolean("CHESSPLAY_NO_STORAGE", &c.Storage.Disabled)
	float("CHESSPLAY_SPEED", &c.Animation.Speed)
	boolean("CHESSPLAY_CLAMP_OVERSHOOT", &c.Animation.ClampOvershoot)
	boolean("CHESSPLAY_DIAGNOSTICS", &c.Diagnostics.Overlay)
	boolean("CHESSPLAY_AUDIO", &c.Audio.Enabled)
}

// Correct replaces out-of-range values with defaults.
func (c *Config) Correct() {
	def := Default()

	if strings.TrimSpace(c.Window.Title) == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Window.Width < 320 || c.Window.Height < 240 {
		c.Window.Width = def.Window.Width
		c.Window.Height = def.Window.Height
	}
	if c.Animation.Speed <= 0 {
		c.Animation.Speed = def.Animation.Speed
	}
	if c.Animation.SnapThreshold <= 0 {
		c.Animation.SnapThreshold = def.Animation.SnapThreshold
	}
	if c.Camera.Pitch < 5 || c.Camera.Pitch > 89 {
		c.Camera.Pitch = def.Camera.Pitch
	}
	if c.Camera.Distance < 2 || c.Camera.Distance > 50 {
		c.Camera.Distance = def.Camera.Distance
	}
	if c.Camera.FOV < 10 || c.Camera.FOV > 120 {
		c.Camera.FOV = def.Camera.FOV
	}
	if c.Diagnostics.LogInterval < 0 {
		c.Diagnostics.LogInterval = def.Diagnostics.LogInterval
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		c.Audio.Volume = def.Audio.Volume
	}
}
