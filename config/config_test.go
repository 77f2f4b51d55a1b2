package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "particlefield.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Field.MaxParticles != Default().Field.MaxParticles {
		t.Errorf("max_particles = %d", cfg.Field.MaxParticles)
	}

	if _, err := Load(""); err != nil {
		t.Errorf("Load(\"\"): %v", err)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
field:
  max_particles: 120
  connections: false
theme:
  primary: "200 50% 40%"
render:
  fps: 30
  blend: screen
audio:
  volumes:
    pop: 0.1
keys:
  x: quit
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Field.MaxParticles != 120 || cfg.Field.Connections {
		t.Errorf("field = %+v", cfg.Field)
	}
	if cfg.Field.TrailLength != Default().Field.TrailLength {
		t.Errorf("unset trail_length lost its default: %d", cfg.Field.TrailLength)
	}
	if cfg.Theme.Primary != "200 50% 40%" || cfg.Render.Blend != "screen" {
		t.Errorf("theme/render = %+v / %+v", cfg.Theme, cfg.Render)
	}
	if cfg.Audio.Volumes["pop"] != 0.1 || cfg.Audio.Volumes["chime_on"] == 0 {
		t.Errorf("volumes = %v, want pop overridden and chime kept", cfg.Audio.Volumes)
	}
	if cfg.Keys["x"] != "quit" {
		t.Errorf("keys = %v", cfg.Keys)
	}
	if got := cfg.FrameInterval(); got != time.Second/30 {
		t.Errorf("FrameInterval = %v", got)
	}
	if len(cfg.Presets()) != 2 {
		t.Errorf("presets = %d, want built-in 2", len(cfg.Presets()))
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
		substr  string
	}{
		{"malformed yaml", "field: [", false, "failed to parse config"},
		{"bad primary", "theme:\n  primary: purple\n", true, "theme.primary"},
		{"bad fps", "render:\n  fps: 0\n", true, "render.fps"},
		{"bad blend", "render:\n  blend: multiply\n", true, "render.blend"},
		{"bad field", "field:\n  burst_damping: 2\n", true, "burst_damping"},
		{"unknown preset", "theme:\n  preset: sepia\n", true, "unknown preset"},
		{"unknown sound", "audio:\n  volumes:\n    laser: 1\n", true, "unknown sound"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Load succeeded")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(ErrInvalid) = %v, want %v: %v", got, tt.invalid, err)
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("error %q missing %q", err, tt.substr)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPrimary, "#4A9B84")
	t.Setenv(EnvFPS, "45")
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvThemeFile, "/tmp/theme.css")

	path := writeConfig(t, "theme:\n  preset: dark\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme.Primary != "#4A9B84" || cfg.Theme.Preset != "" {
		t.Errorf("theme = %+v, env primary must replace preset", cfg.Theme)
	}
	if cfg.Render.FPS != 45 || !cfg.Log.Debug || cfg.Theme.File != "/tmp/theme.css" {
		t.Errorf("env not applied: %+v", cfg)
	}
}
