package field

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/particle-field/parameter"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid field config")

// Config holds the tunables of one field, distances in canvas pixels and times in frames
type Config struct {
	DensityDivisor float64 `yaml:"density_divisor"`
	MaxParticles   int     `yaml:"max_particles"`
	TrailLength    int     `yaml:"trail_length"`

	InteractionRadius float64 `yaml:"interaction_radius"`
	OrbitRadius       float64 `yaml:"orbit_radius"`
	OrbitInnerRadius  float64 `yaml:"orbit_inner_radius"`
	AttractGain       float64 `yaml:"attract_gain"`
	RepelGain         float64 `yaml:"repel_gain"`
	OrbitGain         float64 `yaml:"orbit_gain"`
	OrbitPull         float64 `yaml:"orbit_pull"`
	GlowBoost         float64 `yaml:"glow_boost"`

	BurstCount    int     `yaml:"burst_count"`
	BurstJitter   float64 `yaml:"burst_jitter"`
	BurstSpeedMin float64 `yaml:"burst_speed_min"`
	BurstSpeedMax float64 `yaml:"burst_speed_max"`
	BurstLifeMin  int     `yaml:"burst_life_min"`
	BurstLifeMax  int     `yaml:"burst_life_max"`
	BurstDamping  float64 `yaml:"burst_damping"`

	ConnectionDistance float64 `yaml:"connection_distance"`
	ConnectionOpacity  float64 `yaml:"connection_opacity"`
	ConnectionWidth    float64 `yaml:"connection_width"`

	// Connections and Trails switch the corresponding draw passes
	Connections bool `yaml:"connections"`
	Trails      bool `yaml:"trails"`
}

// DefaultConfig returns the tuned browser-scale configuration
func DefaultConfig() Config {
	return Config{
		DensityDivisor: parameter.DensityDivisor,
		MaxParticles:   parameter.MaxParticles,
		TrailLength:    parameter.TrailLength,

		InteractionRadius: parameter.InteractionRadius,
		OrbitRadius:       parameter.OrbitRadius,
		OrbitInnerRadius:  parameter.OrbitInnerRadius,
		AttractGain:       parameter.AttractGain,
		RepelGain:         parameter.RepelGain,
		OrbitGain:         parameter.OrbitGain,
		OrbitPull:         parameter.OrbitPull,
		GlowBoost:         parameter.GlowBoost,

		BurstCount:    parameter.BurstCount,
		BurstJitter:   parameter.BurstJitter,
		BurstSpeedMin: parameter.BurstSpeedMin,
		BurstSpeedMax: parameter.BurstSpeedMax,
		BurstLifeMin:  parameter.BurstLifeMin,
		BurstLifeMax:  parameter.BurstLifeMax,
		BurstDamping:  parameter.BurstDamping,

		ConnectionDistance: parameter.ConnectionDistance,
		ConnectionOpacity:  parameter.ConnectionOpacity,
		ConnectionWidth:    parameter.ConnectionWidth,

		Connections: true,
		Trails:      true,
	}
}

// Validate reports every out-of-range field at once
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.DensityDivisor > 0, "density_divisor must be > 0, got %v", c.DensityDivisor)
	check(c.MaxParticles >= 0 && c.MaxParticles <= parameter.MaxParticlesLimit,
		"max_particles must be in [0, %d], got %d", parameter.MaxParticlesLimit, c.MaxParticles)
	check(c.TrailLength >= 0 && c.TrailLength <= parameter.TrailLengthLimit,
		"trail_length must be in [0, %d], got %d", parameter.TrailLengthLimit, c.TrailLength)

	check(c.InteractionRadius > 0, "interaction_radius must be > 0, got %v", c.InteractionRadius)
	check(c.OrbitRadius > 0 && c.OrbitRadius <= c.InteractionRadius,
		"orbit_radius must be in (0, interaction_radius], got %v", c.OrbitRadius)
	check(c.OrbitInnerRadius >= 0 && c.OrbitInnerRadius < c.OrbitRadius,
		"orbit_inner_radius must be in [0, orbit_radius), got %v", c.OrbitInnerRadius)
	check(c.AttractGain >= 0, "attract_gain must be >= 0, got %v", c.AttractGain)
	check(c.RepelGain >= 0, "repel_gain must be >= 0, got %v", c.RepelGain)
	check(c.OrbitGain >= 0, "orbit_gain must be >= 0, got %v", c.OrbitGain)
	check(c.OrbitPull >= 0, "orbit_pull must be >= 0, got %v", c.OrbitPull)
	check(c.GlowBoost >= 0, "glow_boost must be >= 0, got %v", c.GlowBoost)

	check(c.BurstCount >= 0, "burst_count must be >= 0, got %d", c.BurstCount)
	check(c.BurstJitter >= 0, "burst_jitter must be >= 0, got %v", c.BurstJitter)
	check(c.BurstSpeedMin >= 0 && c.BurstSpeedMin <= c.BurstSpeedMax,
		"burst speed range [%v, %v] invalid", c.BurstSpeedMin, c.BurstSpeedMax)
	check(c.BurstLifeMin > 0 && c.BurstLifeMin <= c.BurstLifeMax,
		"burst life range [%d, %d] invalid", c.BurstLifeMin, c.BurstLifeMax)
	check(c.BurstDamping > 0 && c.BurstDamping < 1, "burst_damping must be in (0, 1), got %v", c.BurstDamping)

	check(c.ConnectionDistance >= 0, "connection_distance must be >= 0, got %v", c.ConnectionDistance)
	check(c.ConnectionOpacity >= 0 && c.ConnectionOpacity <= 1,
		"connection_opacity must be in [0, 1], got %v", c.ConnectionOpacity)
	check(c.ConnectionWidth > 0, "connection_width must be > 0, got %v", c.ConnectionWidth)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
