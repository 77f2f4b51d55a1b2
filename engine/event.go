package engine

import "fmt"

// EventKind identifies an input event
type EventKind uint8

const (
	EventResize EventKind = iota
	EventPointerMove
	EventPointerLeave
	EventClick
	EventKeyDown
	EventKeyUp

	eventKindCount
)

var eventKindNames = [eventKindCount]string{
	EventResize:       "resize",
	EventPointerMove:  "pointer_move",
	EventPointerLeave: "pointer_leave",
	EventClick:        "click",
	EventKeyDown:      "key_down",
	EventKeyUp:        "key_up",
}

func (k EventKind) String() string {
	if k < eventKindCount {
		return eventKindNames[k]
	}
	return fmt.Sprintf("event(%d)", k)
}

// Key identifies the key of a KeyDown/KeyUp event
type Key uint8

const (
	KeyNone Key = iota
	KeyShift
	KeyEscape
	KeyCtrlC
	KeyRune // printable, see Event.Rune
)

// Event is a host input event in canvas pixel coordinates
// Resize carries the new size in X/Y
type Event struct {
	Kind EventKind
	X, Y float64
	Key  Key
	Rune rune
}

// ResizeEvent builds a resize to width × height
func ResizeEvent(width, height float64) Event {
	return Event{Kind: EventResize, X: width, Y: height}
}

// PointerEvent builds a pointer move to (x, y)
func PointerEvent(x, y float64) Event {
	return Event{Kind: EventPointerMove, X: x, Y: y}
}

// ClickEvent builds a primary-button press at (x, y)
func ClickEvent(x, y float64) Event {
	return Event{Kind: EventClick, X: x, Y: y}
}

// KeyEvent builds a KeyDown (down=true) or KeyUp event
func KeyEvent(key Key, r rune, down bool) Event {
	kind := EventKeyUp
	if down {
		kind = EventKeyDown
	}
	return Event{Kind: kind, Key: key, Rune: r}
}
