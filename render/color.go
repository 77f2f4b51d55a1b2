package render

// Paint is a flat color with alpha, the equivalent of an hsla() fill
type Paint struct {
	Color RGB
	Alpha float64
}

// GradientStop is a color stop at Offset in [0, 1] along a radial gradient
type GradientStop struct {
	Offset float64
	Paint  Paint
}

// SampleGradient interpolates color and alpha at t along sorted stops
// t before the first stop or after the last one clamps to that stop
func SampleGradient(stops []GradientStop, t float64) Paint {
	if len(stops) == 0 {
		return Paint{}
	}
	if t <= stops[0].Offset {
		return stops[0].Paint
	}
	for i := 1; i < len(stops); i++ {
		hi := stops[i]
		if t > hi.Offset {
			continue
		}
		lo := stops[i-1]
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Paint
		}
		f := (t - lo.Offset) / span
		return Paint{
			Color: Lerp(lo.Paint.Color, hi.Paint.Color, f),
			Alpha: lo.Paint.Alpha + (hi.Paint.Alpha-lo.Paint.Alpha)*f,
		}
	}
	return stops[len(stops)-1].Paint
}
