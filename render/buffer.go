package render

import (
	"math"
)

// RenderBuffer is a raster Canvas backed by a flat sub-pixel array
// Each sub-pixel covers scaleX × scaleY canvas pixels, so canvas-scale shapes land on a coarse grid
type RenderBuffer struct {
	pixels []RGB
	width  int // sub-pixel columns
	height int // sub-pixel rows

	scaleX float64
	scaleY float64

	background RGB
	mode       BlendMode
}

// NewRenderBuffer creates a buffer of width × height sub-pixels, each scaleX × scaleY canvas pixels
func NewRenderBuffer(width, height int, scaleX, scaleY float64) *RenderBuffer {
	if scaleX <= 0 {
		scaleX = 1
	}
	if scaleY <= 0 {
		scaleY = 1
	}
	b := &RenderBuffer{
		scaleX:     scaleX,
		scaleY:     scaleY,
		background: RgbBackground,
		mode:       BlendAlpha,
	}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.pixels) < size {
		b.pixels = make([]RGB, size)
	} else {
		b.pixels = b.pixels[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// SetBackground sets the color Clear resets to
func (b *RenderBuffer) SetBackground(c RGB) {
	b.background = c
}

// SetBlendMode selects how subsequent shapes composite
func (b *RenderBuffer) SetBlendMode(m BlendMode) {
	b.mode = m
}

// Bounds returns the sub-pixel grid dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// Size returns the canvas area in pixels
func (b *RenderBuffer) Size() (float64, float64) {
	return float64(b.width) * b.scaleX, float64(b.height) * b.scaleY
}

// At returns the sub-pixel color, background when out of bounds
func (b *RenderBuffer) At(x, y int) RGB {
	if !b.inBounds(x, y) {
		return b.background
	}
	return b.pixels[y*b.width+x]
}

// Clear resets all sub-pixels to the background using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.pixels) == 0 {
		return
	}
	b.pixels[0] = b.background
	for filled := 1; filled < len(b.pixels); filled *= 2 {
		copy(b.pixels[filled:], b.pixels[:filled])
	}
}

// inBounds returns true if in grid bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// plot composites one sub-pixel
func (b *RenderBuffer) plot(x, y int, c RGB, alpha float64) {
	if alpha <= 0 || !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.pixels[idx] = b.mode.apply(b.pixels[idx], c, alpha)
}

// coverage is the fraction of a sub-pixel a disc of radius r would fill, used for discs smaller than a sub-pixel
func (b *RenderBuffer) coverage(r float64) float64 {
	return math.Min(1, math.Pi*r*r/(b.scaleX*b.scaleY))
}

// disc visits every sub-pixel whose center lies inside the disc, passing normalized distance t in [0, 1]
// A disc too small to contain any center visits the sub-pixel under its center once with t = 0 and weight < 1
func (b *RenderBuffer) disc(x, y, r float64, visit func(ix, iy int, t, weight float64)) {
	if r <= 0 {
		return
	}
	minX := int(math.Floor((x - r) / b.scaleX))
	maxX := int(math.Floor((x + r) / b.scaleX))
	minY := int(math.Floor((y - r) / b.scaleY))
	maxY := int(math.Floor((y + r) / b.scaleY))

	// Clip to grid
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, b.width-1)
	maxY = min(maxY, b.height-1)

	hits := 0
	r2 := r * r
	for iy := minY; iy <= maxY; iy++ {
		cy := (float64(iy)+0.5)*b.scaleY - y
		for ix := minX; ix <= maxX; ix++ {
			cx := (float64(ix)+0.5)*b.scaleX - x
			d2 := cx*cx + cy*cy
			if d2 > r2 {
				continue
			}
			hits++
			visit(ix, iy, math.Sqrt(d2)/r, 1)
		}
	}

	if hits == 0 {
		ix := int(math.Floor(x / b.scaleX))
		iy := int(math.Floor(y / b.scaleY))
		if b.inBounds(ix, iy) {
			visit(ix, iy, 0, b.coverage(r))
		}
	}
}

// FillCircle fills a disc with flat paint
func (b *RenderBuffer) FillCircle(x, y, r float64, p Paint) {
	if p.Alpha <= 0 {
		return
	}
	b.disc(x, y, r, func(ix, iy int, _, weight float64) {
		b.plot(ix, iy, p.Color, p.Alpha*weight)
	})
}

// RadialGradient fills a disc sampling stops by distance from the center
func (b *RenderBuffer) RadialGradient(x, y, r float64, stops []GradientStop) {
	if len(stops) == 0 {
		return
	}
	b.disc(x, y, r, func(ix, iy int, t, weight float64) {
		p := SampleGradient(stops, t)
		b.plot(ix, iy, p.Color, p.Alpha*weight)
	})
}

// Line strokes a segment with a DDA walk over the sub-pixel grid
// Strokes thinner than a sub-pixel are drawn one sub-pixel wide, each sub-pixel is composited once
func (b *RenderBuffer) Line(x0, y0, x1, y1, width float64, p Paint) {
	if p.Alpha <= 0 || width <= 0 {
		return
	}
	gx0, gy0 := x0/b.scaleX, y0/b.scaleY
	gx1, gy1 := x1/b.scaleX, y1/b.scaleY
	dx, dy := gx1-gx0, gy1-gy0

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		b.plot(int(math.Floor(gx0)), int(math.Floor(gy0)), p.Color, p.Alpha)
		return
	}
	sx, sy := dx/float64(steps), dy/float64(steps)

	lastX, lastY := math.MinInt, math.MinInt
	for i := 0; i <= steps; i++ {
		ix := int(math.Floor(gx0 + sx*float64(i)))
		iy := int(math.Floor(gy0 + sy*float64(i)))
		if ix == lastX && iy == lastY {
			continue
		}
		lastX, lastY = ix, iy
		b.plot(ix, iy, p.Color, p.Alpha)
	}
}
