// Package status holds frame metrics written by the frame goroutine and read by overlays and logs
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys published by the particle field
const (
	KeyFPS     = "fps"
	KeyAmbient = "ambient"
	KeyBursts  = "bursts"
	KeyLinks   = "links"
	KeyAttract = "attract"
	KeyOrbit   = "orbit"
	KeyRepel   = "repel"
	KeyTheme   = "theme"
	KeyDropped = "dropped"
	KeyMuted   = "muted"
	KeyShift   = "shift"
)

// Registry groups metrics by value type
// Writers cache the pointers once and store into them every frame
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Gauge]
	Labels *MetricMap[Label]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Gauge](),
		Labels: NewMetricMap[Label](),
	}
}

// Count returns the number of metrics of all types
func (r *Registry) Count() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Labels.Count()
}

// Line formats every metric as "key=value" pairs, floats first then ints, labels and bools
func (r *Registry) Line() string {
	var sb strings.Builder
	sep := func() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
	}
	r.Floats.Range(func(k string, g *Gauge) {
		sep()
		fmt.Fprintf(&sb, "%s=%.1f", k, g.Get())
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		sep()
		fmt.Fprintf(&sb, "%s=%d", k, v.Load())
	})
	r.Labels.Range(func(k string, l *Label) {
		sep()
		fmt.Fprintf(&sb, "%s=%s", k, l.Load())
	})
	r.Bools.Range(func(k string, b *atomic.Bool) {
		sep()
		fmt.Fprintf(&sb, "%s=%t", k, b.Load())
	})
	return sb.String()
}
