package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/particle-field/core"
)

// TickerScheduler drives frames from a fixed-interval ticker on its own goroutine
// Input posted from any goroutine is queued and dispatched on the frame goroutine between frames
type TickerScheduler struct {
	queue      frameQueue
	dispatcher *Dispatcher
	interval   time.Duration
	events     chan Event
	postFrame  func(now time.Time)

	frames  atomic.Uint64
	dropped atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewTickerScheduler creates a stopped scheduler dispatching queued events to d
func NewTickerScheduler(interval time.Duration, queueSize int, d *Dispatcher) *TickerScheduler {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &TickerScheduler{
		queue:      newFrameQueue(),
		dispatcher: d,
		interval:   interval,
		events:     make(chan Event, max(queueSize, 1)),
		stopChan:   make(chan struct{}),
	}
}

// SetPostFrame registers a hook run after every frame's callbacks, must be called before Start
func (s *TickerScheduler) SetPostFrame(fn func(now time.Time)) {
	s.postFrame = fn
}

func (s *TickerScheduler) Schedule(fn FrameFunc) FrameHandle {
	return s.queue.schedule(fn)
}

func (s *TickerScheduler) Cancel(h FrameHandle) {
	s.queue.cancel(h)
}

// Post queues an event without blocking, returns false and counts a drop when the queue is full
func (s *TickerScheduler) Post(ev Event) bool {
	select {
	case s.events <- ev:
		return true
	default:
		s.dropped.Add(1)
		return false
	}
}

// Frames returns the number of frames run
func (s *TickerScheduler) Frames() uint64 {
	return s.frames.Load()
}

// Dropped returns the number of events lost to a full queue
func (s *TickerScheduler) Dropped() uint64 {
	return s.dropped.Load()
}

// Start begins the frame loop
func (s *TickerScheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		core.Go(s.loop)
	}
}

// Stop halts the frame loop and waits for it to exit, must not be called from a frame callback
func (s *TickerScheduler) Stop() {
	if s.running.CompareAndSwap(true, false) {
		s.stopOnce.Do(func() { close(s.stopChan) })
		s.wg.Wait()
	}
}

func (s *TickerScheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return

		case ev := <-s.events:
			s.dispatch(ev)

		case now := <-ticker.C:
			s.drain()
			s.queue.run(now)
			if s.postFrame != nil {
				s.postFrame(now)
			}
			s.frames.Add(1)
		}
	}
}

// drain dispatches everything queued so a frame sees all input that arrived before it
func (s *TickerScheduler) drain() {
	for {
		select {
		case ev := <-s.events:
			s.dispatch(ev)
		default:
			return
		}
	}
}

func (s *TickerScheduler) dispatch(ev Event) {
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(ev)
	}
}
