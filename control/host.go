// Package control maps key intents onto a mounted background for both hosts
package control

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/particle-field/audio"
	"github.com/lixenwraith/particle-field/background"
	"github.com/lixenwraith/particle-field/engine"
	"github.com/lixenwraith/particle-field/input"
	"github.com/lixenwraith/particle-field/status"
)

// Host applies key intents to a mounted background
// OnKey runs on the frame goroutine, so field access needs no locking
type Host struct {
	bg      *background.Background
	keys    *input.KeyTable
	palette *Palette
	sound   *audio.SoundManager
	metrics *status.Registry

	showStats atomic.Bool
	quit      chan struct{}
	quitOnce  sync.Once
}

// New creates a host and publishes the initial theme and mute state
func New(bg *background.Background, keys *input.KeyTable, p *Palette, sound *audio.SoundManager, metrics *status.Registry) *Host {
	h := &Host{
		bg:      bg,
		keys:    keys,
		palette: p,
		sound:   sound,
		metrics: metrics,
		quit:    make(chan struct{}),
	}
	metrics.Labels.Get(status.KeyTheme).Store(p.Name())
	metrics.Bools.Get(status.KeyMuted).Store(sound.Muted())
	return h
}

// Subscribe routes key presses from d to the host
func (h *Host) Subscribe(d *engine.Dispatcher) engine.Subscription {
	return d.Subscribe(engine.EventKeyDown, h.OnKey)
}

// Done is closed once a quit intent arrives
func (h *Host) Done() <-chan struct{} {
	return h.quit
}

// Quitting reports whether a quit intent arrived
func (h *Host) Quitting() bool {
	select {
	case <-h.quit:
		return true
	default:
		return false
	}
}

// SetStatsVisible shows or hides the overlay
func (h *Host) SetStatsVisible(on bool) {
	h.showStats.Store(on)
}

// OnKey is an engine.Listener for key presses
func (h *Host) OnKey(ev engine.Event) {
	h.Apply(h.keys.Lookup(ev))
}

// Apply performs one intent
func (h *Host) Apply(in input.Intent) {
	f := h.bg.Field()

	switch in {
	case input.IntentNone:
		return

	case input.IntentQuit:
		h.quitOnce.Do(func() { close(h.quit) })

	case input.IntentAttractLock:
		on := h.bg.ToggleAttractLock()
		h.sound.PlayAttract(on)

	case input.IntentCycleTheme:
		if name := h.palette.Next(); name != "" {
			h.metrics.Labels.Get(status.KeyTheme).Store(name)
		}

	case input.IntentToggleMute:
		h.metrics.Bools.Get(status.KeyMuted).Store(h.sound.ToggleMuted())

	case input.IntentToggleStats:
		h.showStats.Store(!h.showStats.Load())

	case input.IntentToggleLinks:
		f.SetConnections(!f.Config().Connections)

	case input.IntentClearBursts:
		f.ClearBursts()

	case input.IntentBurstAtCursor:
		p := f.Pointer()
		if p.X < 0 || p.Y < 0 {
			return
		}
		if n := f.Click(p.X, p.Y); n > 0 {
			h.sound.PlayBurst(n)
		}
	}
	log.Printf("intent %s", in)
}

// StatusLine returns the overlay text, empty while stats are hidden
func (h *Host) StatusLine() string {
	if !h.showStats.Load() {
		return ""
	}
	f := h.bg.Field()
	links := 0
	if f.Config().Connections {
		links = f.ConnectionCount()
	}
	h.metrics.Ints.Get(status.KeyLinks).Store(int64(links))
	return h.metrics.Line()
}
