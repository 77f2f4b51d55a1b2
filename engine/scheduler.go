package engine

import (
	"slices"
	"sync"
	"time"
)

// FrameFunc is a one-shot frame callback
type FrameFunc func(now time.Time)

// FrameHandle identifies a pending frame callback, zero is never issued
type FrameHandle uint64

// Scheduler runs one-shot callbacks on the next frame, callbacks reschedule themselves to keep animating
type Scheduler interface {
	Schedule(fn FrameFunc) FrameHandle
	Cancel(h FrameHandle)
}

// frameQueue holds pending one-shot callbacks, shared by both schedulers
type frameQueue struct {
	mu      sync.Mutex
	pending map[FrameHandle]FrameFunc
	nextID  FrameHandle
}

func newFrameQueue() frameQueue {
	return frameQueue{pending: make(map[FrameHandle]FrameFunc)}
}

func (q *frameQueue) schedule(fn FrameFunc) FrameHandle {
	if fn == nil {
		return 0
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.nextID++
	q.pending[q.nextID] = fn
	return q.nextID
}

func (q *frameQueue) cancel(h FrameHandle) {
	q.mu.Lock()
	delete(q.pending, h)
	q.mu.Unlock()
}

func (q *frameQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// run executes every callback pending at entry in schedule order
// Callbacks scheduled while running wait for the next frame, callbacks cancelled while running are skipped
func (q *frameQueue) run(now time.Time) int {
	q.mu.Lock()
	if len(q.pending) == 0 {
		q.mu.Unlock()
		return 0
	}
	ids := make([]FrameHandle, 0, len(q.pending))
	for id := range q.pending {
		ids = append(ids, id)
	}
	q.mu.Unlock()
	slices.Sort(ids)

	ran := 0
	for _, id := range ids {
		q.mu.Lock()
		fn, ok := q.pending[id]
		delete(q.pending, id)
		q.mu.Unlock()
		if !ok {
			continue
		}
		fn(now)
		ran++
	}
	return ran
}
