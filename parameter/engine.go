package parameter

import "time"

// Frame Loop
const (
	// FrameUpdateInterval is the frame interval of the terminal host (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// WindowTPS is the update rate of the window host
	WindowTPS = 60

	// EventQueueSize is the capacity of the scheduler's input event queue
	// Pointer motion floods the queue, excess events are dropped rather than blocking the poller
	EventQueueSize = 256

	// StatsSmoothing is the EMA weight of the newest frame in the fps estimate
	StatsSmoothing = 0.1
)
