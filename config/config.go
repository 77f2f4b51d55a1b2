// Package config loads the YAML configuration of both hosts
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/particle-field/audio"
	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/render"
	"github.com/lixenwraith/particle-field/theme"
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid configuration")

// Environment overrides, applied after the file and before Validate
const (
	EnvPrimary   = "PARTICLEFIELD_PRIMARY"
	EnvThemeFile = "PARTICLEFIELD_THEME_FILE"
	EnvFPS       = "PARTICLEFIELD_FPS"
	EnvDebug     = "PARTICLEFIELD_DEBUG"
)

// Config is the full configuration
type Config struct {
	Field  field.Config      `yaml:"field"`
	Theme  ThemeConfig       `yaml:"theme"`
	Render RenderConfig      `yaml:"render"`
	Audio  audio.AudioConfig `yaml:"audio"`
	Keys   map[string]string `yaml:"keys"` // key name → intent name, merged over the built-in table
	Log    LogConfig         `yaml:"log"`
}

// ThemeConfig selects the primary color source
// File, when set, is watched for a "--primary: H S% L%;" declaration and wins over Primary
type ThemeConfig struct {
	Primary string         `yaml:"primary"`
	File    string         `yaml:"file"`
	Preset  string         `yaml:"preset"` // initial preset name, empty keeps Primary
	Presets []PresetConfig `yaml:"presets"`
}

// PresetConfig is a named theme color, hex or "H S% L%"
type PresetConfig struct {
	Name    string `yaml:"name"`
	Primary string `yaml:"primary"`
}

// RenderConfig controls frame rate and the terminal raster
type RenderConfig struct {
	FPS        int    `yaml:"fps"`
	CellWidth  int    `yaml:"cell_width"`  // virtual pixels per terminal column
	CellHeight int    `yaml:"cell_height"` // virtual pixels per terminal row
	Blend      string `yaml:"blend"`       // alpha, add, screen, max
	Stats      bool   `yaml:"stats"`       // start with the stats overlay shown
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

// Default returns the built-in configuration
func Default() Config {
	presets := theme.DefaultPresets()
	pc := make([]PresetConfig, len(presets))
	for i, p := range presets {
		pc[i] = PresetConfig{Name: p.Name, Primary: p.Primary.String()}
	}
	return Config{
		Field: field.DefaultConfig(),
		Theme: ThemeConfig{
			Primary: parameter.ThemeDefaultPrimary,
			Presets: pc,
		},
		Render: RenderConfig{
			FPS:        parameter.WindowTPS,
			CellWidth:  parameter.CellPixelWidth,
			CellHeight: parameter.CellPixelHeight,
			Blend:      "alpha",
		},
		Audio: audio.DefaultAudioConfig(),
		Keys:  map[string]string{},
		Log:   LogConfig{Dir: "logs"},
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// An empty path or a missing file yields the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	ApplyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg from PARTICLEFIELD_* variables, malformed numbers are ignored
func ApplyEnv(cfg *Config) {
	if v := os.Getenv(EnvPrimary); v != "" {
		cfg.Theme.Primary = v
		cfg.Theme.Preset = ""
	}
	if v := os.Getenv(EnvThemeFile); v != "" {
		cfg.Theme.File = v
	}
	if v := os.Getenv(EnvFPS); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Render.FPS = n
		}
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Debug = b
		}
	}
	audio.ApplyEnv(&cfg.Audio)
}

// Validate checks every section, reporting all problems at once
func (c Config) Validate() error {
	var errs []error

	if err := c.Field.Validate(); err != nil {
		errs = append(errs, err)
	}

	if _, err := theme.Parse(c.Theme.Primary); err != nil {
		errs = append(errs, fmt.Errorf("theme.primary: %w", err))
	}
	names := make(map[string]bool, len(c.Theme.Presets))
	for i, p := range c.Theme.Presets {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("theme.presets[%d]: empty name", i))
		}
		if names[p.Name] {
			errs = append(errs, fmt.Errorf("theme.presets[%d]: duplicate name %q", i, p.Name))
		}
		names[p.Name] = true
		if _, err := theme.Parse(p.Primary); err != nil {
			errs = append(errs, fmt.Errorf("theme.presets[%d]: %w", i, err))
		}
	}
	if c.Theme.Preset != "" && !names[c.Theme.Preset] {
		errs = append(errs, fmt.Errorf("theme.preset: unknown preset %q", c.Theme.Preset))
	}

	if c.Render.FPS < 1 || c.Render.FPS > 240 {
		errs = append(errs, fmt.Errorf("render.fps must be in [1, 240], got %d", c.Render.FPS))
	}
	if c.Render.CellWidth < 1 || c.Render.CellHeight < 2 {
		errs = append(errs, fmt.Errorf("render cell size %dx%d too small", c.Render.CellWidth, c.Render.CellHeight))
	}
	if _, err := render.ParseBlendMode(c.Render.Blend); err != nil {
		errs = append(errs, fmt.Errorf("render.blend: %w", err))
	}

	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.master_volume must be in [0, 1], got %v", c.Audio.MasterVolume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be > 0, got %d", c.Audio.SampleRate))
	}
	for name := range c.Audio.Volumes {
		if _, ok := audio.ParseSoundType(name); !ok {
			errs = append(errs, fmt.Errorf("audio.volumes: unknown sound %q", name))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// Presets converts the configured presets, invalid entries are skipped
func (c Config) Presets() []theme.Preset {
	out := make([]theme.Preset, 0, len(c.Theme.Presets))
	for _, p := range c.Theme.Presets {
		hsl, err := theme.Parse(p.Primary)
		if err != nil {
			continue
		}
		out = append(out, theme.Preset{Name: p.Name, Primary: hsl})
	}
	return out
}

// FrameInterval returns the frame period for Render.FPS
func (c Config) FrameInterval() time.Duration {
	if c.Render.FPS <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.Render.FPS)
}
