package render

import "fmt"

// BlendMode selects how paint composites onto the raster
type BlendMode uint8

const (
	BlendAlpha  BlendMode = iota // Dst = Src*α + Dst*(1-α), canvas source-over
	BlendAdd                     // Dst = clamp(Dst + Src*α, 255)
	BlendScreen                  // Dst = 1-(1-Dst)(1-Src), mixed by α
	BlendMax                     // Dst = max(Dst, Src) per channel, mixed by α
)

var blendModeNames = map[string]BlendMode{
	"alpha":  BlendAlpha,
	"add":    BlendAdd,
	"screen": BlendScreen,
	"max":    BlendMax,
}

// ParseBlendMode resolves a configuration name, empty selects alpha
func ParseBlendMode(name string) (BlendMode, error) {
	if name == "" {
		return BlendAlpha, nil
	}
	mode, ok := blendModeNames[name]
	if !ok {
		return BlendAlpha, fmt.Errorf("unknown blend mode %q", name)
	}
	return mode, nil
}

// apply composites src over dst
func (m BlendMode) apply(dst, src RGB, alpha float64) RGB {
	switch m {
	case BlendAdd:
		return Add(dst, src, alpha)
	case BlendScreen:
		return Screen(dst, src, alpha)
	case BlendMax:
		return Max(dst, src, alpha)
	default:
		return Blend(dst, src, alpha)
	}
}
