package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestV2FNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2F
		want Vec2F
	}{
		{"Zero vector", Vec2F{}, Vec2F{}},
		{"Axis X", Vec2F{5, 0}, Vec2F{1, 0}},
		{"Axis Y negative", Vec2F{0, -3}, Vec2F{0, -1}},
		{"3-4-5", Vec2F{3, 4}, Vec2F{0.6, 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := V2FNormalize(tt.in)
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) {
				t.Errorf("V2FNormalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestV2FPerpMatchesQuarterTurn(t *testing.T) {
	for _, angle := range []float64{0, 0.3, 1.2, math.Pi, -2.5} {
		dir := V2FFromAngle(angle, 1)
		perp := V2FPerp(dir)
		want := V2FFromAngle(angle+math.Pi/2, 1)
		if !approx(perp.X, want.X) || !approx(perp.Y, want.Y) {
			t.Errorf("angle %f: perp %v, want %v", angle, perp, want)
		}
		if !approx(perp.X*dir.X+perp.Y*dir.Y, 0) {
			t.Errorf("angle %f: perp not orthogonal", angle)
		}
	}
}

func TestV2FDist(t *testing.T) {
	if d := V2FDist(Vec2F{1, 1}, Vec2F{4, 5}); !approx(d, 5) {
		t.Errorf("V2FDist = %f, want 5", d)
	}
}

func TestWrapRange(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{60, 60},
		{60.1, -60},
		{-60.1, 60},
		{-60, -60},
	}
	for _, tt := range tests {
		if got := WrapRange(tt.in, 60); got != tt.want {
			t.Errorf("WrapRange(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp out of expected range")
	}
}
