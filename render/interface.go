package render

// Canvas is a 2D drawing surface in pixel coordinates
// Shapes are composited immediately in call order, later calls on top
type Canvas interface {
	// Size returns the drawable area in pixels
	Size() (width, height float64)
	// Clear resets the whole surface to its background
	Clear()
	// FillCircle fills a disc of radius r centered on (x, y)
	FillCircle(x, y, r float64, p Paint)
	// RadialGradient fills a disc of radius r whose paint follows stops from center (0) to rim (1)
	RadialGradient(x, y, r float64, stops []GradientStop)
	// Line strokes a straight segment
	Line(x0, y0, x1, y1, width float64, p Paint)
}

// Layer is implemented by anything drawing one pass of a frame
type Layer interface {
	Draw(c Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
