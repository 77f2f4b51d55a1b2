package control

import (
	"sync/atomic"

	"github.com/lixenwraith/particle-field/theme"
)

// Palette is a theme source that starts on the configured primary and
// switches to the preset cycle on the first cycle request
type Palette struct {
	primary theme.Static
	cycle   *theme.Cycle
	cycling atomic.Bool
}

// NewPalette creates a palette, a known initial preset starts it cycling
func NewPalette(primary theme.HSL, presets []theme.Preset, initial string) *Palette {
	p := &Palette{primary: theme.Static(primary), cycle: theme.NewCycle(presets...)}
	if p.cycle != nil && initial != "" && p.cycle.Select(initial) {
		p.cycling.Store(true)
	}
	return p
}

func (p *Palette) Primary() theme.HSL {
	if p.cycling.Load() {
		return p.cycle.Primary()
	}
	return p.primary.Primary()
}

// Next advances to the next preset and returns its name, empty when there are no presets
func (p *Palette) Next() string {
	if p.cycle == nil {
		return ""
	}
	p.cycling.Store(true)
	return p.cycle.Next()
}

// Name returns the active preset, "custom" while on the configured primary
func (p *Palette) Name() string {
	if !p.cycling.Load() {
		return "custom"
	}
	return p.cycle.Name()
}
