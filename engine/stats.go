package engine

import "time"

// FrameStats tracks an exponentially smoothed frame rate
type FrameStats struct {
	smoothing float64
	last      time.Time
	fps       float64
}

// NewFrameStats creates a tracker, smoothing in (0, 1] weights the newest sample
func NewFrameStats(smoothing float64) *FrameStats {
	if smoothing <= 0 || smoothing > 1 {
		smoothing = 1
	}
	return &FrameStats{smoothing: smoothing}
}

// Tick records a frame at now and returns the smoothed rate
func (s *FrameStats) Tick(now time.Time) float64 {
	if !s.last.IsZero() {
		if dt := now.Sub(s.last).Seconds(); dt > 0 {
			sample := 1 / dt
			if s.fps == 0 {
				s.fps = sample
			} else {
				s.fps += (sample - s.fps) * s.smoothing
			}
		}
	}
	s.last = now
	return s.fps
}

// FPS returns the smoothed rate, zero until two frames were seen
func (s *FrameStats) FPS() float64 {
	return s.fps
}
