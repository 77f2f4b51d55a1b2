package render

// OpKind identifies a recorded draw call
type OpKind uint8

const (
	OpClear OpKind = iota
	OpCircle
	OpGradient
	OpLine
)

// Op is one recorded draw call
// Circle and gradient use X, Y, R; line uses X, Y → X1, Y1 with Width
type Op struct {
	Kind  OpKind
	X, Y  float64
	R     float64
	X1    float64
	Y1    float64
	Width float64
	Paint Paint
	Stops []GradientStop
}

// Recorder is a Canvas that stores draw calls instead of rasterizing them
type Recorder struct {
	Width  float64
	Height float64
	Ops    []Op
}

// NewRecorder creates a recorder reporting the given canvas size
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) {
	return r.Width, r.Height
}

// Clear drops every op recorded so far and records the clear itself
func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) FillCircle(x, y, radius float64, p Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: x, Y: y, R: radius, Paint: p})
}

func (r *Recorder) RadialGradient(x, y, radius float64, stops []GradientStop) {
	cp := make([]GradientStop, len(stops))
	copy(cp, stops)
	r.Ops = append(r.Ops, Op{Kind: OpGradient, X: x, Y: y, R: radius, Stops: cp})
}

func (r *Recorder) Line(x0, y0, x1, y1, width float64, p Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X: x0, Y: y0, X1: x1, Y1: y1, Width: width, Paint: p})
}

// Count returns the number of recorded ops of the given kind
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
