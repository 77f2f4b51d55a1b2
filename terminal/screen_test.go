package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-field/render"
)

func newSimScreen(t *testing.T, cols, rows int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s := New(sim, 8, 16)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(s.Fini)
	sim.SetSize(cols, rows)
	s.Resize()
	return s, sim
}

func TestResizeMatchesRaster(t *testing.T) {
	s, _ := newSimScreen(t, 20, 10)

	w, h := s.Canvas().Size()
	if w != 160 || h != 160 {
		t.Errorf("canvas = %vx%v, want 160x160", w, h)
	}
	if bw, bh := s.Canvas().Bounds(); bw != 20 || bh != 20 {
		t.Errorf("raster = %dx%d, want 20x20 sub-pixels", bw, bh)
	}
}

func TestFlushHalfBlocks(t *testing.T) {
	s, sim := newSimScreen(t, 4, 2)
	red := render.RGB{R: 255}
	blue := render.RGB{B: 255}

	buf := s.Canvas()
	buf.Clear()
	// Cell (1, 0): top sub-pixel covers y 0-8, bottom 8-16
	buf.FillCircle(12, 4, 2, render.Paint{Color: red, Alpha: 1})
	buf.FillCircle(12, 12, 2, render.Paint{Color: blue, Alpha: 1})
	s.Flush("")

	cells, cols, _ := sim.GetContents()
	cell := cells[0*cols+1]
	if len(cell.Runes) == 0 || cell.Runes[0] != halfBlock {
		t.Fatalf("cell runes = %q, want half block", cell.Runes)
	}
	fg, bg, _ := cell.Style.Decompose()
	if fg != toColor(red) || bg != toColor(blue) {
		t.Errorf("fg/bg = %v/%v, want red/blue", fg, bg)
	}

	empty := cells[1*cols+3]
	_, bg, _ = empty.Style.Decompose()
	if bg != toColor(render.RgbBackground) {
		t.Errorf("untouched cell bg = %v, want background", bg)
	}
}

func TestFlushStatusLine(t *testing.T) {
	s, sim := newSimScreen(t, 6, 2)
	s.Canvas().Clear()
	s.Flush("fps=60 overflow")

	cells, cols, _ := sim.GetContents()
	var row strings.Builder
	for x := 0; x < cols; x++ {
		row.WriteRune(cells[x].Runes[0])
	}
	if got := row.String(); got != "fps=60" {
		t.Errorf("status row = %q, want clipped %q", got, "fps=60")
	}
}

func TestCellToPixel(t *testing.T) {
	s := New(nil, 8, 16)
	if x, y := s.CellToPixel(2, 3); x != 20 || y != 56 {
		t.Errorf("CellToPixel = %v, %v, want 20, 56", x, y)
	}
}
