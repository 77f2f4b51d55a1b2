package engine

import "time"

// ManualScheduler runs frames only when Advance is called
// Used by hosts that own their own loop and by tests
type ManualScheduler struct {
	queue frameQueue
	now   time.Time
}

// NewManualScheduler creates a scheduler whose clock starts at start
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{queue: newFrameQueue(), now: start}
}

func (s *ManualScheduler) Schedule(fn FrameFunc) FrameHandle {
	return s.queue.schedule(fn)
}

func (s *ManualScheduler) Cancel(h FrameHandle) {
	s.queue.cancel(h)
}

// Advance moves the clock by dt and runs one frame, returns the number of callbacks run
func (s *ManualScheduler) Advance(dt time.Duration) int {
	s.now = s.now.Add(dt)
	return s.queue.run(s.now)
}

// Pending returns the number of callbacks waiting for the next frame
func (s *ManualScheduler) Pending() int {
	return s.queue.len()
}

// Now returns the scheduler clock
func (s *ManualScheduler) Now() time.Time {
	return s.now
}
