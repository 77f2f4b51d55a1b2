package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector in canvas pixel space
type Vec2F struct {
	X, Y float64
}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

// V2FDist returns the Euclidean distance between a and b
func V2FDist(a, b Vec2F) float64 {
	return V2FMag(V2FSub(b, a))
}

// V2FNormalize returns the unit vector, zero-safe
func V2FNormalize(v Vec2F) Vec2F {
	mag := V2FMag(v)
	if mag == 0 {
		return Vec2F{}
	}
	inv := 1.0 / mag
	return Vec2F{v.X * inv, v.Y * inv}
}

// V2FPerp returns v rotated 90° in screen space (y down), matching angle+π/2
func V2FPerp(v Vec2F) Vec2F {
	return Vec2F{-v.Y, v.X}
}

// V2FFromAngle returns the vector of the given length pointing at angle (rad)
func V2FFromAngle(angle, length float64) Vec2F {
	return Vec2F{math.Cos(angle) * length, math.Sin(angle) * length}
}
