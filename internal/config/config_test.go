package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Window.Title != "Chess" {
		t.Errorf("Expected title 'Chess', got %q", cfg.Window.Title)
	}
	if cfg.Animation.Speed != 1.0 || cfg.Animation.SnapThreshold != 0.1 {
		t.Errorf("unexpected animation defaults: %+v", cfg.Animation)
	}
	if !cfg.Animation.ClampOvershoot {
		t.Error("Expected overshoot clamping on by default")
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chess.yaml")
	data := `
window:
  title: Board
  width: 1024
  height: 768
animation:
  speed: 2.5
  clamp_overshoot: false
diagnostics:
  overlay: true
  log_interval: 2s
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Window.Title != "Board" || cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Errorf("window not loaded: %+v", cfg.Window)
	}
	if cfg.Animation.Speed != 2.5 || cfg.Animation.ClampOvershoot {
		t.Errorf("animation not loaded: %+v", cfg.Animation)
	}
	if cfg.Animation.SnapThreshold != 0.1 {
		t.Errorf("unset field lost its default: %v", cfg.Animation.SnapThreshold)
	}
	if !cfg.Diagnostics.Overlay || cfg.Diagnostics.LogInterval != 2*time.Second {
		t.Errorf("diagnostics not loaded: %+v", cfg.Diagnostics)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("window: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestEnvOverrides(t *testing.T) {
	cfg := Default()
	env := map[string]string{
		"CHESSPLAY_LOG_LEVEL":       "debug",
		"CHESSPLAY_SPEED":           "3",
		"CHESSPLAY_NO_STORAGE":      "true",
		"CHESSPLAY_CLAMP_OVERSHOOT": "not-a-bool",
	}
	cfg.applyEnv(func(k string) string { return env[k] })

	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q", cfg.Log.Level)
	}
	if cfg.Animation.Speed != 3 {
		t.Errorf("speed = %v", cfg.Animation.Speed)
	}
	if !cfg.Storage.Disabled {
		t.Error("storage should be disabled")
	}
	if !cfg.Animation.ClampOvershoot {
		t.Error("invalid bool must not override")
	}
}

func TestCorrect(t *testing.T) {
	cfg := &Config{
		Window:    WindowConfig{Width: 10, Height: 10},
		Animation: AnimationConfig{Speed: -1, SnapThreshold: 0},
		Camera:    CameraConfig{Pitch: 95, Distance: 0, FOV: 500},
		Audio:     AudioConfig{Volume: 4},
	}
	cfg.Correct()
	def := Default()

	if cfg.Window != def.Window {
		t.Errorf("window = %+v, want %+v", cfg.Window, def.Window)
	}
	if cfg.Animation.Speed != def.Animation.Speed || cfg.Animation.SnapThreshold != def.Animation.SnapThreshold {
		t.Errorf("animation = %+v", cfg.Animation)
	}
	if cfg.Camera.Pitch != def.Camera.Pitch || cfg.Camera.Distance != def.Camera.Distance || cfg.Camera.FOV != def.Camera.FOV {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	if cfg.Audio.Volume != def.Audio.Volume {
		t.Errorf("volume = %v", cfg.Audio.Volume)
	}
}
