package status

import (
	"sync/atomic"
)

// MaxLabelLen bounds stored labels so the overlay line stays short
const MaxLabelLen = 20

// Label is an atomic short string, zero value reads ""
type Label struct {
	ptr atomic.Pointer[string]
}

// Store sets the label, truncating to MaxLabelLen bytes
func (l *Label) Store(v string) {
	if len(v) > MaxLabelLen {
		v = v[:MaxLabelLen]
	}
	l.ptr.Store(&v)
}

// Load returns the current label
func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
