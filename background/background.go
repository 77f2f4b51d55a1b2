// Package background mounts an animated particle field on a canvas
//
// A Background owns the field, one pending frame callback and six input
// subscriptions. Everything runs on the scheduler's frame goroutine.
package background

import (
	"log"
	"time"

	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/field"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/render"
	"github.com/lixenwraith/particle-field/status"
	"github.com/lixenwraith/particle-field/theme"
)

// Option customizes a Background at mount time
type Option func(*Background)

// WithMetrics publishes frame statistics to reg every frame
func WithMetrics(reg *status.Registry) Option {
	return func(b *Background) { b.metrics = reg }
}

// WithBurstHook calls fn with the particle count after every click burst
func WithBurstHook(fn func(n int)) Option {
	return func(b *Background) { b.onBurst = fn }
}

// WithLayer draws an extra layer at the given priority
func WithLayer(l render.Layer, p render.LayerPriority) Option {
	return func(b *Background) { b.extra = append(b.extra, extraLayer{l, p}) }
}

type extraLayer struct {
	layer    render.Layer
	priority render.LayerPriority
}

// Background is a mounted particle field
type Background struct {
	canvas     render.Canvas
	source     theme.Source
	field      *field.Field
	renderer   *field.Renderer
	compositor *render.Compositor

	dispatcher *engine.Dispatcher
	scheduler  engine.Scheduler
	subs       []engine.Subscription
	frame      engine.FrameHandle

	shiftHeld   bool
	attractLock bool
	closed      bool

	stats   *engine.FrameStats
	metrics *status.Registry
	onBurst func(n int)
	extra   []extraLayer
}

// Mount starts animating f on canvas
// A nil canvas yields an inert Background: nothing is subscribed or scheduled, Close is still safe
func Mount(canvas render.Canvas, source theme.Source, f *field.Field, d *engine.Dispatcher, s engine.Scheduler, opts ...Option) *Background {
	b := &Background{
		canvas:     canvas,
		source:     source,
		field:      f,
		dispatcher: d,
		scheduler:  s,
		stats:      engine.NewFrameStats(parameter.StatsSmoothing),
	}
	if canvas == nil || f == nil || d == nil || s == nil {
		b.closed = true
		return b
	}
	for _, opt := range opts {
		opt(b)
	}

	b.renderer = field.NewRenderer(f, b.primary())
	b.compositor = render.NewCompositor()
	b.renderer.Register(b.compositor)
	for _, e := range b.extra {
		b.compositor.Register(e.layer, e.priority)
	}

	f.Resize(canvas.Size())

	b.subs = append(b.subs,
		d.Subscribe(engine.EventResize, b.onResize),
		d.Subscribe(engine.EventPointerMove, b.onPointerMove),
		d.Subscribe(engine.EventPointerLeave, b.onPointerLeave),
		d.Subscribe(engine.EventClick, b.onClick),
		d.Subscribe(engine.EventKeyDown, b.onKeyDown),
		d.Subscribe(engine.EventKeyUp, b.onKeyUp),
	)

	b.frame = s.Schedule(b.onFrame)
	return b
}

// Close cancels the pending frame and releases every subscription, repeated calls are no-ops
func (b *Background) Close() {
	if b.closed {
		return
	}
	b.closed = true

	if b.frame != 0 {
		b.scheduler.Cancel(b.frame)
		b.frame = 0
	}
	for _, id := range b.subs {
		b.dispatcher.Unsubscribe(id)
	}
	b.subs = nil
}

// Closed reports whether the background is inert
func (b *Background) Closed() bool {
	return b.closed
}

// Field returns the simulated field
func (b *Background) Field() *field.Field {
	return b.field
}

// ToggleAttractLock latches attract mode on or off, independent of shift
func (b *Background) ToggleAttractLock() bool {
	b.attractLock = !b.attractLock
	b.syncAttract()
	return b.attractLock
}

func (b *Background) syncAttract() {
	b.field.SetAttract(b.shiftHeld || b.attractLock)
}

func (b *Background) primary() theme.HSL {
	if b.source == nil {
		return theme.MustParse(parameter.ThemeDefaultPrimary)
	}
	return b.source.Primary()
}

func (b *Background) onFrame(now time.Time) {
	b.frame = 0
	if b.closed {
		return
	}

	b.field.Step()
	b.renderer.SetBase(b.primary())
	b.compositor.RenderFrame(b.canvas)
	b.publish(b.stats.Tick(now))

	if !b.closed {
		b.frame = b.scheduler.Schedule(b.onFrame)
	}
}

func (b *Background) publish(fps float64) {
	if b.metrics == nil {
		return
	}
	s := b.field.Stats()
	b.metrics.Floats.Get(status.KeyFPS).Set(fps)
	b.metrics.Ints.Get(status.KeyAmbient).Store(int64(s.Ambient))
	b.metrics.Ints.Get(status.KeyBursts).Store(int64(s.Bursts))
	b.metrics.Ints.Get(status.KeyAttract).Store(int64(s.Attract))
	b.metrics.Ints.Get(status.KeyOrbit).Store(int64(s.Orbit))
	b.metrics.Ints.Get(status.KeyRepel).Store(int64(s.Repel))
	b.metrics.Bools.Get(status.KeyShift).Store(b.field.Attract())
}

func (b *Background) onResize(ev engine.Event) {
	b.field.Resize(ev.X, ev.Y)
	log.Printf("background: resized to %.0fx%.0f, %d particles", ev.X, ev.Y, len(b.field.Ambient()))
}

func (b *Background) onPointerMove(ev engine.Event) {
	b.field.PointerMove(ev.X, ev.Y)
}

func (b *Background) onPointerLeave(engine.Event) {
	b.field.PointerLeave()
}

func (b *Background) onClick(ev engine.Event) {
	n := b.field.Click(ev.X, ev.Y)
	if b.onBurst != nil && n > 0 {
		b.onBurst(n)
	}
}

func (b *Background) onKeyDown(ev engine.Event) {
	if ev.Key == engine.KeyShift {
		b.shiftHeld = true
		b.syncAttract()
	}
}

func (b *Background) onKeyUp(ev engine.Event) {
	if ev.Key == engine.KeyShift {
		b.shiftHeld = false
		b.syncAttract()
	}
}
