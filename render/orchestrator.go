package render

type layerEntry struct {
	layer    Layer
	priority LayerPriority
	index    int // registration order for stable sort
}

// Compositor coordinates the per-frame layer pipeline
type Compositor struct {
	layers   []layerEntry
	regCount int
}

// NewCompositor creates an empty compositor
func NewCompositor() *Compositor {
	return &Compositor{
		layers: make([]layerEntry, 0, 4),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Compositor) Register(l Layer, priority LayerPriority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Len returns the number of registered layers
func (o *Compositor) Len() int {
	return len(o.layers)
}

// RenderFrame clears the canvas then draws every visible layer in priority order
func (o *Compositor) RenderFrame(c Canvas) {
	c.Clear()

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Draw(c)
	}
}
