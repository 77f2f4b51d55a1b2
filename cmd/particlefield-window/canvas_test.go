package main

import (
	"math"
	"testing"

	"github.com/lixenwraith/particle-field/render"
)

func TestToNRGBA(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
		want  uint8
	}{
		{"opaque", 1, 255},
		{"half", 0.5, 128},
		{"negative clamps", -0.2, 0},
		{"overflow clamps", 1.7, 255},
	}
	c := render.RGB{R: 10, G: 20, B: 30}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toNRGBA(c, tt.alpha)
			if got.R != 10 || got.G != 20 || got.B != 30 || got.A != tt.want {
				t.Errorf("toNRGBA(%v, %v) = %+v, want alpha %d", c, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestRingsCoverDisc(t *testing.T) {
	stops := []render.GradientStop{
		{Offset: 0, Paint: render.Paint{Alpha: 0.6}},
		{Offset: 0.5, Paint: render.Paint{Alpha: 0.2}},
		{Offset: 1, Paint: render.Paint{Alpha: 0}},
	}
	rs := rings(12, stops, 4)
	if len(rs) != 4 {
		t.Fatalf("got %d rings, want 4", len(rs))
	}

	// Adjacent annuli meet without overlap
	for i, r := range rs {
		inner := r.radius - r.width/2
		if want := float64(i) * 3; math.Abs(inner-want) > 1e-9 {
			t.Errorf("ring %d inner edge = %v, want %v", i, inner, want)
		}
	}
	if outer := rs[3].radius + rs[3].width/2; math.Abs(outer-12) > 1e-9 {
		t.Errorf("outer edge = %v, want 12", outer)
	}

	for i := 1; i < len(rs); i++ {
		if rs[i].paint.Alpha >= rs[i-1].paint.Alpha {
			t.Errorf("alpha not falling outward at ring %d: %v >= %v", i, rs[i].paint.Alpha, rs[i-1].paint.Alpha)
		}
	}
}

func TestRingsDegenerate(t *testing.T) {
	stops := []render.GradientStop{{Offset: 0, Paint: render.Paint{Alpha: 1}}}
	if rs := rings(0, stops, 8); rs != nil {
		t.Errorf("zero radius gave %d rings", len(rs))
	}
	if rs := rings(5, nil, 8); rs != nil {
		t.Errorf("no stops gave %d rings", len(rs))
	}
}
