package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-field/engine"
)

// Translator converts tcell events into engine events
// Terminals report no key releases, so shift state is derived from mouse event modifiers
type Translator struct {
	cellW, cellH float64
	buttons      tcell.ButtonMask
	shift        bool
}

// NewTranslator creates a translator for cellW × cellH virtual pixel cells
func NewTranslator(cellW, cellH int) *Translator {
	return &Translator{cellW: float64(max(cellW, 1)), cellH: float64(max(cellH, 2))}
}

// Translate appends the engine events for ev to out
func (tr *Translator) Translate(ev tcell.Event, out []engine.Event) []engine.Event {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		out = append(out, engine.ResizeEvent(float64(w)*tr.cellW, float64(h)*tr.cellH))

	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x, y := (float64(cx)+0.5)*tr.cellW, (float64(cy)+0.5)*tr.cellH

		if shift := ev.Modifiers()&tcell.ModShift != 0; shift != tr.shift {
			tr.shift = shift
			out = append(out, engine.KeyEvent(engine.KeyShift, 0, shift))
		}
		out = append(out, engine.PointerEvent(x, y))

		buttons := ev.Buttons()
		if buttons&tcell.Button1 != 0 && tr.buttons&tcell.Button1 == 0 {
			out = append(out, engine.ClickEvent(x, y))
		}
		tr.buttons = buttons

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyRune:
			out = append(out, engine.KeyEvent(engine.KeyRune, ev.Rune(), true))
		case tcell.KeyEscape:
			out = append(out, engine.KeyEvent(engine.KeyEscape, 0, true))
		case tcell.KeyCtrlC:
			out = append(out, engine.KeyEvent(engine.KeyCtrlC, 0, true))
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			out = append(out, engine.Event{Kind: engine.EventPointerLeave})
		}
	}
	return out
}
