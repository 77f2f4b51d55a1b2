package field

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

// Burst is a short-lived particle spawned by a click
type Burst struct {
	Pos     vmath.Vec2F
	Vel     vmath.Vec2F
	Size    float64
	Hue     float64 // offset from the theme hue
	Life    int
	MaxLife int
}

// LifeRatio returns remaining life in (0, 1]
func (b *Burst) LifeRatio() float64 {
	if b.MaxLife <= 0 {
		return 0
	}
	return float64(b.Life) / float64(b.MaxLife)
}

// spawnBursts appends cfg.BurstCount particles radiating from (x, y)
func spawnBursts(dst []Burst, cfg *Config, rng *rand.Rand, x, y float64) []Burst {
	n := cfg.BurstCount
	for i := 0; i < n; i++ {
		angle := 2*math.Pi*float64(i)/float64(n) + rng.Float64()*cfg.BurstJitter
		speed := uniform(rng, cfg.BurstSpeedMin, cfg.BurstSpeedMax)
		life := uniformInt(rng, cfg.BurstLifeMin, cfg.BurstLifeMax)
		dst = append(dst, Burst{
			Pos:     vmath.Vec2F{X: x, Y: y},
			Vel:     vmath.V2FFromAngle(angle, speed),
			Size:    uniform(rng, parameter.BurstSizeMin, parameter.BurstSizeMax),
			Hue:     (rng.Float64() - 0.5) * parameter.ParticleHueSpread,
			Life:    life,
			MaxLife: life,
		})
	}
	return dst
}

// stepBursts advances every burst particle and drops expired ones in place, preserving order
func stepBursts(bursts []Burst, damping float64) []Burst {
	w := 0
	for i := range bursts {
		b := bursts[i]
		b.Pos = vmath.V2FAdd(b.Pos, b.Vel)
		b.Vel = vmath.V2FScale(b.Vel, damping)
		b.Life--
		if b.Life <= 0 {
			continue
		}
		bursts[w] = b
		w++
	}
	// Release tail for reuse
	clear(bursts[w:])
	return bursts[:w]
}
