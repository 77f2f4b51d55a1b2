package vmath

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates a→b by t without clamping
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// WrapRange folds v back into [-limit, limit] by jumping to the opposite bound
// A value past one end re-enters at the other end, not modulo
func WrapRange(v, limit float64) float64 {
	if v > limit {
		return -limit
	}
	if v < -limit {
		return limit
	}
	return v
}
