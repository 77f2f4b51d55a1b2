package field

import (
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

// Trail is a fixed-capacity ring of past positions, newest first
// Lives inline in the particle so the pool stays a flat array
type Trail struct {
	points [parameter.TrailLengthLimit]vmath.Vec2F
	head   int // slot of the newest point
	n      int
	limit  int
}

func newTrail(limit int) Trail {
	return Trail{limit: min(max(limit, 0), parameter.TrailLengthLimit)}
}

// Push records p as the newest point, dropping the oldest once the limit is reached
func (t *Trail) Push(p vmath.Vec2F) {
	if t.limit == 0 {
		return
	}
	t.head = (t.head - 1 + len(t.points)) % len(t.points)
	t.points[t.head] = p
	if t.n < t.limit {
		t.n++
	}
}

// Len returns the number of stored points
func (t *Trail) Len() int {
	return t.n
}

// Limit returns the configured maximum length
func (t *Trail) Limit() int {
	return t.limit
}

// At returns the point of the given age, 0 is the newest
func (t *Trail) At(age int) vmath.Vec2F {
	return t.points[(t.head+age)%len(t.points)]
}

// Reset empties the trail, keeping its limit
func (t *Trail) Reset() {
	t.n = 0
}
