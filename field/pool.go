package field

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

// Ambient is a long-lived drifting particle
type Ambient struct {
	Pos  vmath.Vec2F
	Base vmath.Vec2F // drift anchor, advances by Vel regardless of pointer displacement
	Vel  vmath.Vec2F // constant after creation

	Size    float64
	Opacity float64

	Hue      float64 // offset from the theme hue, degrees in [-ParticleHueLimit, ParticleHueLimit]
	HueSpeed float64

	Phase      float64 // breathing phase, radians
	PulseSpeed float64

	Trail Trail

	// Dist is the pointer distance measured at the start of the last step
	Dist float64
}

// Pulse returns the breathing size/alpha factor
func (p *Ambient) Pulse() float64 {
	return parameter.PulseBase + math.Sin(p.Phase)*parameter.PulseAmplitude
}

// PoolSize returns clamp(floor(width/divisor), 0, maxParticles)
func PoolSize(width, divisor float64, maxParticles int) int {
	if width <= 0 || divisor <= 0 || maxParticles <= 0 {
		return 0
	}
	n := math.Floor(width / divisor)
	if n >= float64(maxParticles) {
		return maxParticles
	}
	return int(n)
}

// buildPool creates a fresh randomized pool for a width × height canvas
func buildPool(cfg *Config, rng *rand.Rand, width, height float64) []Ambient {
	n := PoolSize(width, cfg.DensityDivisor, cfg.MaxParticles)
	pool := make([]Ambient, n)
	for i := range pool {
		pool[i] = newAmbient(cfg, rng, width, height)
	}
	return pool
}

func newAmbient(cfg *Config, rng *rand.Rand, width, height float64) Ambient {
	pos := vmath.Vec2F{X: rng.Float64() * width, Y: rng.Float64() * height}
	return Ambient{
		Pos:  pos,
		Base: pos,
		Vel: vmath.Vec2F{
			X: (rng.Float64() - 0.5) * parameter.ParticleDriftMax,
			Y: (rng.Float64() - 0.5) * parameter.ParticleDriftMax,
		},
		Size:       uniform(rng, parameter.ParticleSizeMin, parameter.ParticleSizeMax),
		Opacity:    uniform(rng, parameter.ParticleOpacityMin, parameter.ParticleOpacityMax),
		Hue:        (rng.Float64() - 0.5) * parameter.ParticleHueSpread,
		HueSpeed:   (rng.Float64() - 0.5) * parameter.ParticleHueSpeedMax,
		Phase:      rng.Float64() * 2 * math.Pi,
		PulseSpeed: uniform(rng, parameter.ParticlePulseSpeedMin, parameter.ParticlePulseSpeedMax),
		Trail:      newTrail(cfg.TrailLength),
		Dist:       math.Inf(1),
	}
}

// uniform samples [lo, hi)
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// uniformInt samples [lo, hi] inclusive
func uniformInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
