package field

import (
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/render"
	"github.com/lixenwraith/particle-field/theme"
	"github.com/lixenwraith/particle-field/vmath"
)

// Renderer draws a Field onto a Canvas, tinted by the current theme color
type Renderer struct {
	field *Field
	base  theme.HSL
	stops [3]render.GradientStop
}

// NewRenderer creates a renderer for f
func NewRenderer(f *Field, base theme.HSL) *Renderer {
	return &Renderer{field: f, base: base}
}

// SetBase sets the theme color used from the next draw on
func (r *Renderer) SetBase(c theme.HSL) {
	r.base = c
}

// Base returns the current theme color
func (r *Renderer) Base() theme.HSL {
	return r.base
}

// Register adds the three field passes to a compositor: ambient, bursts, then connections on top
func (r *Renderer) Register(c *render.Compositor) {
	c.Register(AmbientLayer{r}, render.PriorityAmbient)
	c.Register(BurstLayer{r}, render.PriorityBurst)
	c.Register(ConnectionLayer{r}, render.PriorityConnection)
}

// AmbientLayer draws trails, glows and cores of the ambient pool
type AmbientLayer struct {
	r *Renderer
}

func (l AmbientLayer) Draw(c render.Canvas) {
	r := l.r
	cfg := &r.field.cfg
	for i := range r.field.ambient {
		p := &r.field.ambient[i]
		pulse := p.Pulse()

		if cfg.Trails {
			r.drawTrail(c, p)
		}

		glow := 1.0
		if p.Dist < cfg.InteractionRadius {
			glow = 1 + (1-p.Dist/cfg.InteractionRadius)*cfg.GlowBoost
		}
		size := p.Size * pulse * glow
		alpha := p.Opacity * pulse

		r.stops[0] = render.GradientStop{Offset: 0, Paint: render.Paint{
			Color: r.base.Shade(p.Hue, parameter.GlowInnerSaturation, parameter.GlowInnerLightness),
			Alpha: vmath.Clamp(alpha*0.6, 0, 1),
		}}
		r.stops[1] = render.GradientStop{Offset: 0.5, Paint: render.Paint{
			Color: r.base.Shade(p.Hue, parameter.GlowMidSaturation, parameter.GlowMidLightness),
			Alpha: vmath.Clamp(alpha*0.2, 0, 1),
		}}
		r.stops[2] = render.GradientStop{Offset: 1, Paint: render.Paint{
			Color: r.base.Shade(p.Hue, parameter.GlowOuterSaturation, parameter.GlowOuterLightness),
		}}
		c.RadialGradient(p.Pos.X, p.Pos.Y, size*parameter.GlowRadiusScale, r.stops[:])

		c.FillCircle(p.Pos.X, p.Pos.Y, size, render.Paint{
			Color: r.base.Shade(p.Hue, parameter.CoreSaturation, parameter.CoreLightness),
			Alpha: vmath.Clamp(alpha*glow, 0, 1),
		})
	}
}

// drawTrail paints the oldest point first so newer points land on top
func (r *Renderer) drawTrail(c render.Canvas, p *Ambient) {
	n := p.Trail.Len()
	if n == 0 {
		return
	}
	color := r.base.Shade(p.Hue, parameter.TrailSaturation, parameter.TrailLightness)
	for age := n - 1; age >= 0; age-- {
		fade := 1 - float64(age)/float64(n)
		pt := p.Trail.At(age)
		c.FillCircle(pt.X, pt.Y, p.Size*fade*parameter.TrailSizeScale, render.Paint{
			Color: color,
			Alpha: fade * parameter.TrailOpacityScale * p.Opacity,
		})
	}
}

// BurstLayer draws click bursts, shrinking and fading with remaining life
type BurstLayer struct {
	r *Renderer
}

func (l BurstLayer) Draw(c render.Canvas) {
	r := l.r
	for i := range r.field.bursts {
		b := &r.field.bursts[i]
		life := b.LifeRatio()
		size := b.Size * life

		r.stops[0] = render.GradientStop{Offset: 0, Paint: render.Paint{
			Color: r.base.Shade(b.Hue, parameter.BurstGlowInnerSaturation, parameter.BurstGlowInnerLightness),
			Alpha: 0.8 * life,
		}}
		r.stops[1] = render.GradientStop{Offset: 0.5, Paint: render.Paint{
			Color: r.base.Shade(b.Hue, parameter.BurstGlowMidSaturation, parameter.BurstGlowMidLightness),
			Alpha: 0.3 * life,
		}}
		r.stops[2] = render.GradientStop{Offset: 1, Paint: render.Paint{
			Color: r.base.Shade(b.Hue, parameter.BurstGlowOuterSaturation, parameter.BurstGlowOuterLightness),
		}}
		c.RadialGradient(b.Pos.X, b.Pos.Y, size*parameter.BurstGlowRadiusScale, r.stops[:])

		c.FillCircle(b.Pos.X, b.Pos.Y, size, render.Paint{
			Color: r.base.Shade(b.Hue, parameter.BurstCoreSaturation, parameter.BurstCoreLightness),
			Alpha: life,
		})
	}
}

// ConnectionLayer draws proximity lines between ambient particles
type ConnectionLayer struct {
	r *Renderer
}

// IsVisible follows Config.Connections
func (l ConnectionLayer) IsVisible() bool {
	return l.r.field.cfg.Connections
}

func (l ConnectionLayer) Draw(c render.Canvas) {
	r := l.r
	pool := r.field.ambient
	width := r.field.cfg.ConnectionWidth
	r.field.EachConnection(func(conn Connection) {
		a, b := &pool[conn.A], &pool[conn.B]
		hue := (a.Hue + b.Hue) / 2
		c.Line(a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y, width, render.Paint{
			Color: r.base.Shade(hue, parameter.LineSaturation, parameter.LineLightness),
			Alpha: conn.Alpha,
		})
	})
}
