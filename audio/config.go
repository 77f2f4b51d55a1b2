package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/particle-field/parameter"
)

// Environment overrides, applied after the config file
const (
	EnvEnabled    = "PARTICLEFIELD_AUDIO_ENABLED"
	EnvVolume     = "PARTICLEFIELD_MASTER_VOLUME"
	EnvSampleRate = "PARTICLEFIELD_SAMPLE_RATE"
	EnvVolumes    = "PARTICLEFIELD_SFX_VOLUMES"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"`
	SampleRate   int                `yaml:"sample_rate"`
	Volumes      map[string]float64 `yaml:"volumes"` // per-sound gain keyed by SoundType name
}

// DefaultAudioConfig returns audio on at half volume
func DefaultAudioConfig() AudioConfig {
	return AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
		Volumes: map[string]float64{
			SoundPop.String():      0.6,
			SoundChimeOn.String():  0.4,
			SoundChimeOff.String(): 0.4,
		},
	}
}

// Volume returns the effective gain of a sound, master volume included
func (c *AudioConfig) Volume(s SoundType) float64 {
	v, ok := c.Volumes[s.String()]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}

// ApplyEnv overrides cfg from environment variables, malformed values are ignored
func ApplyEnv(cfg *AudioConfig) {
	if enabled := os.Getenv(EnvEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if raw := os.Getenv(EnvVolumes); raw != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(raw), &volumes); err == nil {
			if cfg.Volumes == nil {
				cfg.Volumes = make(map[string]float64, len(volumes))
			}
			for name, v := range volumes {
				if _, ok := ParseSoundType(name); ok {
					cfg.Volumes[name] = v
				}
			}
		}
	}
}
