package audio

import (
	"testing"
)

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, c AudioConfig)
	}{
		{
			name: "disable",
			env:  map[string]string{EnvEnabled: "false"},
			check: func(t *testing.T, c AudioConfig) {
				if c.Enabled {
					t.Error("still enabled")
				}
			},
		},
		{
			name: "volume percent clamped",
			env:  map[string]string{EnvVolume: "150"},
			check: func(t *testing.T, c AudioConfig) {
				if c.MasterVolume != 1 {
					t.Errorf("volume = %v, want 1", c.MasterVolume)
				}
			},
		},
		{
			name: "sample rate",
			env:  map[string]string{EnvSampleRate: "48000"},
			check: func(t *testing.T, c AudioConfig) {
				if c.SampleRate != 48000 {
					t.Errorf("rate = %d", c.SampleRate)
				}
			},
		},
		{
			name: "malformed ignored",
			env:  map[string]string{EnvEnabled: "maybe", EnvSampleRate: "-1", EnvVolume: "loud"},
			check: func(t *testing.T, c AudioConfig) {
				d := DefaultAudioConfig()
				if c.Enabled != d.Enabled || c.SampleRate != d.SampleRate || c.MasterVolume != d.MasterVolume {
					t.Errorf("malformed env changed config: %+v", c)
				}
			},
		},
		{
			name: "per-sound volumes",
			env:  map[string]string{EnvVolumes: `{"pop": 0.2, "bogus": 1}`},
			check: func(t *testing.T, c AudioConfig) {
				if c.Volumes["pop"] != 0.2 {
					t.Errorf("pop volume = %v", c.Volumes["pop"])
				}
				if _, ok := c.Volumes["bogus"]; ok {
					t.Error("unknown sound accepted")
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := DefaultAudioConfig()
			ApplyEnv(&cfg)
			tt.check(t, cfg)
		})
	}
}

func TestVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0.5
	if got := cfg.Volume(SoundPop); got != 0.3 {
		t.Errorf("pop volume = %v, want 0.3", got)
	}
	delete(cfg.Volumes, SoundChimeOn.String())
	if got := cfg.Volume(SoundChimeOn); got != 0.5 {
		t.Errorf("default volume = %v, want master", got)
	}
}
