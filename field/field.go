// Package field simulates the ambient particle pool, the pointer force field and click bursts
// All methods must be called from a single goroutine
package field

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

// Stats summarizes the last completed step
type Stats struct {
	Frame   uint64
	Ambient int
	Bursts  int
	Attract int
	Orbit   int
	Repel   int
}

// Field owns both particle pools and the pointer state
type Field struct {
	cfg Config
	rng *rand.Rand

	width  float64
	height float64

	ambient []Ambient
	bursts  []Burst

	pointer vmath.Vec2F
	attract bool

	stats Stats
}

// New creates an empty field, a nil rng seeds from the clock
// Call Resize before the first Step to populate the pool
func New(cfg Config, rng *rand.Rand) *Field {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>32|1))
	}
	return &Field{
		cfg:     cfg,
		rng:     rng,
		pointer: vmath.Vec2F{X: parameter.PointerSentinel, Y: parameter.PointerSentinel},
	}
}

// Config returns the active configuration
func (f *Field) Config() Config {
	return f.cfg
}

// SetConnections toggles the connection pass
func (f *Field) SetConnections(on bool) {
	f.cfg.Connections = on
}

// Resize discards the pool and builds a fresh one sized for the new width
func (f *Field) Resize(width, height float64) {
	f.width = max(width, 0)
	f.height = max(height, 0)
	f.ambient = buildPool(&f.cfg, f.rng, f.width, f.height)
}

// Size returns the simulated area
func (f *Field) Size() (float64, float64) {
	return f.width, f.height
}

// PointerMove records the pointer position in canvas pixels
func (f *Field) PointerMove(x, y float64) {
	f.pointer = vmath.Vec2F{X: x, Y: y}
}

// PointerLeave parks the pointer far outside every interaction radius
func (f *Field) PointerLeave() {
	f.pointer = vmath.Vec2F{X: parameter.PointerSentinel, Y: parameter.PointerSentinel}
}

// Pointer returns the tracked pointer position
func (f *Field) Pointer() vmath.Vec2F {
	return f.pointer
}

// SetAttract sets the attract modifier (shift held)
func (f *Field) SetAttract(on bool) {
	f.attract = on
}

// Attract reports whether the attract modifier is active
func (f *Field) Attract() bool {
	return f.attract
}

// Click spawns a burst at (x, y) and returns the number of particles added
func (f *Field) Click(x, y float64) int {
	before := len(f.bursts)
	f.bursts = spawnBursts(f.bursts, &f.cfg, f.rng, x, y)
	return len(f.bursts) - before
}

// ClearBursts drops every burst particle
func (f *Field) ClearBursts() {
	clear(f.bursts)
	f.bursts = f.bursts[:0]
}

// Ambient returns the ambient pool, valid until the next Resize
func (f *Field) Ambient() []Ambient {
	return f.ambient
}

// Bursts returns the live burst particles, valid until the next Step or Click
func (f *Field) Bursts() []Burst {
	return f.bursts
}

// Stats returns counters of the last Step
func (f *Field) Stats() Stats {
	return f.stats
}

// Step advances both pools by one frame
func (f *Field) Step() {
	f.stats.Attract, f.stats.Orbit, f.stats.Repel = 0, 0, 0
	for i := range f.ambient {
		switch f.stepAmbient(&f.ambient[i]) {
		case ForceAttract:
			f.stats.Attract++
		case ForceOrbit:
			f.stats.Orbit++
		case ForceRepel:
			f.stats.Repel++
		}
	}
	f.bursts = stepBursts(f.bursts, f.cfg.BurstDamping)

	f.stats.Frame++
	f.stats.Ambient = len(f.ambient)
	f.stats.Bursts = len(f.bursts)
}

// stepAmbient integrates one ambient particle and returns the force mode applied
func (f *Field) stepAmbient(p *Ambient) ForceMode {
	p.Trail.Push(p.Pos)

	delta := vmath.V2FSub(f.pointer, p.Pos)
	d := vmath.V2FMag(delta)
	p.Dist = d

	mode := ClassifyForce(d, f.attract, &f.cfg)
	if mode == ForceNone {
		p.Pos = vmath.V2FAdd(p.Pos, p.Vel)
	} else {
		p.Pos = vmath.V2FAdd(p.Pos, Displacement(mode, delta, d, &f.cfg))
	}
	p.Base = vmath.V2FAdd(p.Base, p.Vel)

	f.wrap(p)

	p.Hue = vmath.WrapRange(p.Hue+p.HueSpeed, parameter.ParticleHueLimit)
	p.Phase += p.PulseSpeed
	if p.Phase > 2*math.Pi {
		p.Phase -= 2 * math.Pi
	}
	return mode
}

// wrap teleports a particle that left the canvas to the opposite bound exactly
func (f *Field) wrap(p *Ambient) {
	wrapped := false
	switch {
	case p.Pos.X < 0:
		p.Pos.X, p.Base.X = f.width, f.width
		wrapped = true
	case p.Pos.X > f.width:
		p.Pos.X, p.Base.X = 0, 0
		wrapped = true
	}
	switch {
	case p.Pos.Y < 0:
		p.Pos.Y, p.Base.Y = f.height, f.height
		wrapped = true
	case p.Pos.Y > f.height:
		p.Pos.Y, p.Base.Y = 0, 0
		wrapped = true
	}
	if wrapped {
		p.Trail.Reset()
	}
}

func sqrt(v float64) float64 {
	return math.Sqrt(v)
}
