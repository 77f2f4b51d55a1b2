// Package terminal hosts the particle field on a tcell screen
//
// The canvas is a render.RenderBuffer with two sub-pixels per cell, flushed
// as upper half-block glyphs: foreground is the top sub-pixel, background the
// bottom one.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-field/render"
)

// halfBlock is the upper half block glyph
const halfBlock = '▀'

// Screen owns a tcell screen and the raster drawn onto it
type Screen struct {
	screen tcell.Screen
	buf    *render.RenderBuffer
	cellW  float64
	cellH  float64
	cols   int
	rows   int
}

// New wraps s, a nil s opens the real terminal on Init
// cellW × cellH is the virtual pixel size of one cell
func New(s tcell.Screen, cellW, cellH int) *Screen {
	cw, ch := float64(max(cellW, 1)), float64(max(cellH, 2))
	return &Screen{
		screen: s,
		cellW:  cw,
		cellH:  ch,
		buf:    render.NewRenderBuffer(0, 0, cw, ch/2),
	}
}

// Init opens the screen with mouse motion and focus reporting
func (t *Screen) Init() error {
	if t.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to create screen: %w", err)
		}
		t.screen = s
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.EnableFocus()
	t.screen.HideCursor()
	t.screen.SetStyle(tcell.StyleDefault.Background(toColor(render.RgbBackground)))
	t.Resize()
	return nil
}

// Fini restores the terminal
func (t *Screen) Fini() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// Tcell returns the underlying screen
func (t *Screen) Tcell() tcell.Screen {
	return t.screen
}

// Canvas returns the raster the field draws on
func (t *Screen) Canvas() *render.RenderBuffer {
	return t.buf
}

// Resize matches the raster to the current terminal size and returns the canvas size in virtual pixels
func (t *Screen) Resize() (float64, float64) {
	t.cols, t.rows = t.screen.Size()
	t.buf.Resize(t.cols, t.rows*2)
	return t.buf.Size()
}

// CellToPixel returns the virtual pixel at the center of a cell
func (t *Screen) CellToPixel(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * t.cellW, (float64(y) + 0.5) * t.cellH
}

// Flush copies the raster to the screen, then draws status text over the first row
func (t *Screen) Flush(status string) {
	for y := 0; y < t.rows; y++ {
		for x := 0; x < t.cols; x++ {
			top := t.buf.At(x, 2*y)
			bottom := t.buf.At(x, 2*y+1)
			style := tcell.StyleDefault.Foreground(toColor(top)).Background(toColor(bottom))
			t.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	if status != "" {
		t.drawText(0, 0, status)
	}
	t.screen.Show()
}

func (t *Screen) drawText(x, y int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for _, r := range s {
		if x >= t.cols {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// PollEvent blocks for the next terminal event, nil after Fini
func (t *Screen) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

func toColor(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
