package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-field/engine"
)

func TestTranslateMouse(t *testing.T) {
	tr := NewTranslator(8, 16)

	// Press: pointer move then click
	out := tr.Translate(tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone), nil)
	if len(out) != 2 || out[0].Kind != engine.EventPointerMove || out[1].Kind != engine.EventClick {
		t.Fatalf("press = %+v, want move + click", out)
	}
	if out[1].X != 20 || out[1].Y != 24 {
		t.Errorf("click at %v, %v, want cell center 20, 24", out[1].X, out[1].Y)
	}

	// Drag with button held: no second click
	out = tr.Translate(tcell.NewEventMouse(3, 1, tcell.Button1, tcell.ModNone), nil)
	if len(out) != 1 || out[0].Kind != engine.EventPointerMove {
		t.Errorf("drag = %+v, want move only", out)
	}

	// Release then press again
	tr.Translate(tcell.NewEventMouse(3, 1, tcell.ButtonNone, tcell.ModNone), nil)
	out = tr.Translate(tcell.NewEventMouse(3, 1, tcell.Button1, tcell.ModNone), nil)
	if len(out) != 2 || out[1].Kind != engine.EventClick {
		t.Errorf("second press = %+v", out)
	}
}

func TestTranslateShiftEdges(t *testing.T) {
	tr := NewTranslator(8, 16)

	out := tr.Translate(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModShift), nil)
	if len(out) != 2 || out[0].Kind != engine.EventKeyDown || out[0].Key != engine.KeyShift {
		t.Fatalf("shift motion = %+v, want shift down first", out)
	}

	out = tr.Translate(tcell.NewEventMouse(1, 0, tcell.ButtonNone, tcell.ModShift), nil)
	if len(out) != 1 {
		t.Errorf("held shift repeated: %+v", out)
	}

	out = tr.Translate(tcell.NewEventMouse(1, 0, tcell.ButtonNone, tcell.ModNone), nil)
	if len(out) != 2 || out[0].Kind != engine.EventKeyUp || out[0].Key != engine.KeyShift {
		t.Errorf("shift release = %+v, want shift up", out)
	}
}

func TestTranslateOther(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want engine.Event
	}{
		{"resize", tcell.NewEventResize(10, 5), engine.ResizeEvent(80, 80)},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), engine.KeyEvent(engine.KeyRune, 'q', true)},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), engine.KeyEvent(engine.KeyEscape, 0, true)},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), engine.KeyEvent(engine.KeyCtrlC, 0, true)},
		{"focus lost", tcell.NewEventFocus(false), engine.Event{Kind: engine.EventPointerLeave}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NewTranslator(8, 16).Translate(tt.ev, nil)
			if len(out) != 1 || out[0] != tt.want {
				t.Errorf("Translate = %+v, want %+v", out, tt.want)
			}
		})
	}

	if out := NewTranslator(8, 16).Translate(tcell.NewEventFocus(true), nil); len(out) != 0 {
		t.Errorf("focus gained produced %+v", out)
	}
}
