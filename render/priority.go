package render

// LayerPriority determines draw order. Lower values draw first
type LayerPriority int

const (
	PriorityBackground LayerPriority = iota
	PriorityAmbient
	PriorityBurst
	PriorityConnection
	PriorityOverlay
)
