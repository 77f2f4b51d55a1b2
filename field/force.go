package field

import (
	"github.com/lixenwraith/particle-field/vmath"
)

// ForceMode is the pointer interaction applied to one particle in one frame
type ForceMode uint8

const (
	ForceNone ForceMode = iota
	ForceAttract
	ForceOrbit
	ForceRepel
)

func (m ForceMode) String() string {
	switch m {
	case ForceAttract:
		return "attract"
	case ForceOrbit:
		return "orbit"
	case ForceRepel:
		return "repel"
	default:
		return "none"
	}
}

// ClassifyForce selects exactly one mode for a particle at distance d from the pointer
// Zero distance has no direction and falls back to drift
func ClassifyForce(d float64, attract bool, cfg *Config) ForceMode {
	if d <= 0 || d >= cfg.InteractionRadius {
		return ForceNone
	}
	if attract {
		return ForceAttract
	}
	if d > cfg.OrbitInnerRadius && d < cfg.OrbitRadius {
		return ForceOrbit
	}
	return ForceRepel
}

// Displacement returns the position change for mode, delta is pointer minus particle and d its length
func Displacement(mode ForceMode, delta vmath.Vec2F, d float64, cfg *Config) vmath.Vec2F {
	if mode == ForceNone || d <= 0 {
		return vmath.Vec2F{}
	}
	dir := vmath.V2FScale(delta, 1/d)
	force := (cfg.InteractionRadius - d) / cfg.InteractionRadius

	switch mode {
	case ForceAttract:
		return vmath.V2FScale(dir, force*cfg.AttractGain)
	case ForceOrbit:
		orbit := (cfg.OrbitRadius - d) / cfg.OrbitRadius
		tangent := vmath.V2FScale(vmath.V2FPerp(dir), orbit*cfg.OrbitGain)
		pull := vmath.V2FScale(dir, orbit*cfg.OrbitPull)
		return vmath.V2FAdd(tangent, pull)
	case ForceRepel:
		return vmath.V2FScale(dir, -force*cfg.RepelGain)
	}
	return vmath.Vec2F{}
}
