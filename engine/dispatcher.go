package engine

// Listener receives one event
type Listener func(Event)

// Subscription identifies a registered listener, zero is never issued
type Subscription uint64

type listenerEntry struct {
	id Subscription
	fn Listener
}

// Dispatcher routes events to listeners by kind
//
// Single-threaded: Subscribe, Unsubscribe and Dispatch must run on the frame goroutine.
// Listeners for one kind run in subscription order.
type Dispatcher struct {
	listeners [eventKindCount][]listenerEntry
	nextID    Subscription
	count     int
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe adds fn for kind
func (d *Dispatcher) Subscribe(kind EventKind, fn Listener) Subscription {
	if kind >= eventKindCount || fn == nil {
		return 0
	}
	d.nextID++
	d.listeners[kind] = append(d.listeners[kind], listenerEntry{id: d.nextID, fn: fn})
	d.count++
	return d.nextID
}

// Unsubscribe removes a listener, returns false if it was not registered
func (d *Dispatcher) Unsubscribe(id Subscription) bool {
	if id == 0 {
		return false
	}
	for k := range d.listeners {
		list := d.listeners[k]
		for i, e := range list {
			if e.id != id {
				continue
			}
			// Fresh slice so a Dispatch iterating the old one is unaffected
			next := make([]listenerEntry, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			d.listeners[k] = next
			d.count--
			return true
		}
	}
	return false
}

// Dispatch delivers ev to every listener of its kind
func (d *Dispatcher) Dispatch(ev Event) {
	if ev.Kind >= eventKindCount {
		return
	}
	for _, e := range d.listeners[ev.Kind] {
		e.fn(ev)
	}
}

// Len returns the total number of registered listeners
func (d *Dispatcher) Len() int {
	return d.count
}

// Count returns the number of listeners for kind
func (d *Dispatcher) Count(kind EventKind) int {
	if kind >= eventKindCount {
		return 0
	}
	return len(d.listeners[kind])
}
