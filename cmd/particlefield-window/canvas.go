package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/particle-field/render"
)

// gradientRings is the number of annuli a radial gradient is stroked with
const gradientRings = 8

// canvas draws onto an offscreen ebiten image, implements render.Canvas
type canvas struct {
	img           *ebiten.Image
	width, height int
	background    color.NRGBA
}

func newCanvas() *canvas {
	return &canvas{background: toNRGBA(render.RgbBackground, 1)}
}

// resize reallocates the target, returns false when the size is unchanged
func (c *canvas) resize(w, h int) bool {
	if w == c.width && h == c.height && c.img != nil {
		return false
	}
	if c.img != nil {
		c.img.Deallocate()
	}
	c.width, c.height = max(w, 1), max(h, 1)
	c.img = ebiten.NewImage(c.width, c.height)
	return true
}

func (c *canvas) Size() (float64, float64) {
	return float64(c.width), float64(c.height)
}

func (c *canvas) Clear() {
	c.img.Fill(c.background)
}

func (c *canvas) FillCircle(x, y, r float64, p render.Paint) {
	if p.Alpha <= 0 || r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), toNRGBA(p.Color, p.Alpha), true)
}

// RadialGradient strokes non-overlapping rings, each painted at its mid radius
func (c *canvas) RadialGradient(x, y, r float64, stops []render.GradientStop) {
	for _, rg := range rings(r, stops, gradientRings) {
		if rg.paint.Alpha <= 0 {
			continue
		}
		vector.StrokeCircle(c.img, float32(x), float32(y), float32(rg.radius), float32(rg.width), toNRGBA(rg.paint.Color, rg.paint.Alpha), true)
	}
}

func (c *canvas) Line(x0, y0, x1, y1, width float64, p render.Paint) {
	if p.Alpha <= 0 || width <= 0 {
		return
	}
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), toNRGBA(p.Color, p.Alpha), true)
}

type ring struct {
	radius float64
	width  float64
	paint  render.Paint
}

// rings splits a disc of radius r into n annuli of equal width, innermost first
func rings(r float64, stops []render.GradientStop, n int) []ring {
	if r <= 0 || n <= 0 || len(stops) == 0 {
		return nil
	}
	w := r / float64(n)
	out := make([]ring, n)
	for i := range out {
		t := (float64(i) + 0.5) / float64(n)
		out[i] = ring{radius: t * r, width: w, paint: render.SampleGradient(stops, t)}
	}
	return out
}

func toNRGBA(c render.RGB, alpha float64) color.NRGBA {
	a := min(max(alpha, 0), 1)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}
