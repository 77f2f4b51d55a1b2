package render

import (
	"testing"
)

var white = RGB{255, 255, 255}

func TestRenderBufferSize(t *testing.T) {
	b := NewRenderBuffer(10, 6, 8, 8)
	w, h := b.Size()
	if w != 80 || h != 48 {
		t.Errorf("Size() = %v×%v, want 80×48", w, h)
	}

	b.Resize(0, 0)
	w, h = b.Size()
	if w != 0 || h != 0 {
		t.Errorf("Size() after zero resize = %v×%v, want 0×0", w, h)
	}
	// Drawing into an empty buffer must be harmless
	b.FillCircle(5, 5, 3, Paint{Color: white, Alpha: 1})
	b.Line(0, 0, 10, 10, 1, Paint{Color: white, Alpha: 1})
}

func TestRenderBufferClear(t *testing.T) {
	b := NewRenderBuffer(7, 5, 1, 1)
	b.SetBackground(RGBBlack)
	b.FillCircle(3, 2, 10, Paint{Color: white, Alpha: 1})
	b.Clear()

	gw, gh := b.Bounds()
	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			if b.At(x, y) != RGBBlack {
				t.Fatalf("pixel (%d,%d) = %v after Clear, want black", x, y, b.At(x, y))
			}
		}
	}
}

func TestFillCircleCoversCenters(t *testing.T) {
	b := NewRenderBuffer(20, 20, 1, 1)
	b.SetBackground(RGBBlack)
	b.Clear()
	b.FillCircle(10, 10, 3, Paint{Color: white, Alpha: 1})

	if b.At(10, 10) != white {
		t.Error("center sub-pixel not filled")
	}
	if b.At(0, 0) != RGBBlack {
		t.Error("far corner filled")
	}
	// Sub-pixel (13,10) has center (13.5,10.5), distance > 3
	if b.At(13, 10) != RGBBlack {
		t.Error("sub-pixel outside radius filled")
	}
}

func TestFillCircleSubPixelFallback(t *testing.T) {
	b := NewRenderBuffer(4, 4, 8, 8)
	b.SetBackground(RGBBlack)
	b.Clear()

	// Radius 2 inside an 8×8 sub-pixel, centered off the sub-pixel center
	b.FillCircle(1, 1, 2, Paint{Color: white, Alpha: 1})

	got := b.At(0, 0)
	if got == RGBBlack {
		t.Fatal("tiny disc produced no pixel")
	}
	if got == white {
		t.Error("tiny disc should be attenuated by coverage")
	}
}

func TestRadialGradientFalloff(t *testing.T) {
	b := NewRenderBuffer(41, 1, 1, 1)
	b.SetBackground(RGBBlack)
	b.Clear()

	stops := []GradientStop{
		{Offset: 0, Paint: Paint{Color: white, Alpha: 1}},
		{Offset: 1, Paint: Paint{Color: white, Alpha: 0}},
	}
	b.RadialGradient(20.5, 0.5, 20, stops)

	center := b.At(20, 0).R
	mid := b.At(30, 0).R
	edge := b.At(40, 0).R
	if !(center > mid && mid > edge) {
		t.Errorf("gradient not decreasing: center=%d mid=%d edge=%d", center, mid, edge)
	}
}

func TestLineCompositesEachPixelOnce(t *testing.T) {
	b := NewRenderBuffer(10, 10, 1, 1)
	b.SetBackground(RGBBlack)
	b.Clear()

	b.Line(0.5, 0.5, 9.5, 0.5, 1, Paint{Color: white, Alpha: 0.5})

	want := Blend(RGBBlack, white, 0.5)
	for x := 0; x < 10; x++ {
		if got := b.At(x, 0); got != want {
			t.Errorf("pixel %d = %v, want %v (single composite)", x, got, want)
		}
	}
	if b.At(0, 1) != RGBBlack {
		t.Error("line leaked to next row")
	}
}

func TestSampleGradient(t *testing.T) {
	stops := []GradientStop{
		{Offset: 0, Paint: Paint{Color: RGB{200, 0, 0}, Alpha: 0.6}},
		{Offset: 0.5, Paint: Paint{Color: RGB{100, 0, 0}, Alpha: 0.2}},
		{Offset: 1, Paint: Paint{Color: RGB{0, 0, 0}, Alpha: 0}},
	}

	tests := []struct {
		name      string
		t         float64
		wantAlpha float64
	}{
		{"Before first", -1, 0.6},
		{"Center", 0, 0.6},
		{"Quarter", 0.25, 0.4},
		{"Mid stop", 0.5, 0.2},
		{"Rim", 1, 0},
		{"Past rim", 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SampleGradient(stops, tt.t)
			if d := got.Alpha - tt.wantAlpha; d > 1e-9 || d < -1e-9 {
				t.Errorf("alpha at %v = %v, want %v", tt.t, got.Alpha, tt.wantAlpha)
			}
		})
	}

	if p := SampleGradient(nil, 0.5); p.Alpha != 0 {
		t.Error("empty stops should yield transparent paint")
	}
}

func TestBlendModes(t *testing.T) {
	dst := RGB{100, 100, 100}
	src := RGB{200, 50, 100}

	if got := BlendAlpha.apply(dst, src, 1); got != src {
		t.Errorf("alpha opaque = %v, want %v", got, src)
	}
	if got := BlendAdd.apply(dst, src, 1); got != (RGB{255, 150, 200}) {
		t.Errorf("add = %v", got)
	}
	if got := BlendMax.apply(dst, src, 1); got != (RGB{200, 100, 100}) {
		t.Errorf("max = %v", got)
	}
	for _, m := range []BlendMode{BlendAlpha, BlendAdd, BlendScreen, BlendMax} {
		if got := m.apply(dst, src, 0); got != dst {
			t.Errorf("mode %d with zero alpha changed dst to %v", m, got)
		}
	}
}

func TestParseBlendMode(t *testing.T) {
	if m, err := ParseBlendMode(""); err != nil || m != BlendAlpha {
		t.Errorf("empty: got %v, %v", m, err)
	}
	if m, err := ParseBlendMode("screen"); err != nil || m != BlendScreen {
		t.Errorf("screen: got %v, %v", m, err)
	}
	if _, err := ParseBlendMode("multiply"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
