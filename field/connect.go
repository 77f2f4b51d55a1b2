package field

// Connection is a proximity link between two ambient particles
type Connection struct {
	A, B  int // pool indices, A < B
	Dist  float64
	Alpha float64 // ConnectionOpacity scaled by closeness
}

// EachConnection calls fn for every unique ambient pair closer than the connection distance
func (f *Field) EachConnection(fn func(c Connection)) {
	threshold := f.cfg.ConnectionDistance
	if threshold <= 0 {
		return
	}
	t2 := threshold * threshold
	pool := f.ambient
	for i := 0; i < len(pool); i++ {
		pi := pool[i].Pos
		for j := i + 1; j < len(pool); j++ {
			dx := pi.X - pool[j].Pos.X
			dy := pi.Y - pool[j].Pos.Y
			d2 := dx*dx + dy*dy
			if d2 >= t2 {
				continue
			}
			d := sqrt(d2)
			fn(Connection{
				A:     i,
				B:     j,
				Dist:  d,
				Alpha: f.cfg.ConnectionOpacity * (1 - d/threshold),
			})
		}
	}
}

// ConnectionCount returns the number of links the current pool would draw
func (f *Field) ConnectionCount() int {
	n := 0
	f.EachConnection(func(Connection) { n++ })
	return n
}
