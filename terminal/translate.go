package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/galaxy/input"
)

// Translator converts tcell events into pixel-space input events
// It tracks the primary button so presses, drags and releases can be told apart
type Translator struct {
	CellW, CellH float64

	// PauseOnBlur maps terminal focus loss to a visibility change instead of a pointer leave
	PauseOnBlur bool

	down bool
}

// NewTranslator creates a translator for the given cell size in pixels
func NewTranslator(cellW, cellH float64, pauseOnBlur bool) *Translator {
	return &Translator{CellW: cellW, CellH: cellH, PauseOnBlur: pauseOnBlur}
}

// Translate returns the input event for ev; false when ev has no meaning to the view
func (t *Translator) Translate(ev tcell.Event) (input.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return t.mouse(ev)
	case *tcell.EventKey:
		key := keyOf(ev)
		if key == input.KeyNone {
			return input.Event{}, false
		}
		return input.Event{Type: input.EventKey, Time: ev.When(), Key: key}, true
	case *tcell.EventResize:
		w, h := ev.Size()
		return input.Event{
			Type:   input.EventResize,
			Time:   ev.When(),
			Width:  float64(w) * t.CellW,
			Height: float64(h) * t.CellH,
		}, true
	case *tcell.EventFocus:
		if t.PauseOnBlur {
			return input.Event{Type: input.EventVisibility, Time: ev.When(), Visible: ev.Focused}, true
		}
		if !ev.Focused {
			t.down = false
			return input.Event{Type: input.EventPointerLeave, Time: ev.When()}, true
		}
	}
	return input.Event{}, false
}

func (t *Translator) mouse(ev *tcell.EventMouse) (input.Event, bool) {
	cx, cy := ev.Position()
	out := input.Event{
		Time: ev.When(),
		X:    (float64(cx) + 0.5) * t.CellW,
		Y:    (float64(cy) + 0.5) * t.CellH,
	}

	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		out.Type, out.DeltaY = input.EventWheel, -1
		return out, true
	case buttons&tcell.WheelDown != 0:
		out.Type, out.DeltaY = input.EventWheel, 1
		return out, true
	}

	pressed := buttons&tcell.Button1 != 0
	switch {
	case pressed && !t.down:
		out.Type = input.EventPointerDown
	case !pressed && t.down:
		out.Type = input.EventPointerUp
	default:
		out.Type = input.EventPointerMove
	}
	t.down = pressed
	return out, true
}

func keyOf(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyEnter:
		return input.KeyEnter
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyTab:
		return input.KeyTab
	case tcell.KeyBacktab:
		return input.KeyBacktab
	case tcell.KeyCtrlC:
		return input.KeyQuit
	case tcell.KeyRune:
		return runeKeys[ev.Rune()]
	}
	return input.KeyNone
}

// runeKeys binds printable keys, vi motions included
var runeKeys = map[rune]input.Key{
	' ': input.KeySpace,
	'h': input.KeyLeft,
	'j': input.KeyDown,
	'k': input.KeyUp,
	'l': input.KeyRight,
	'+': input.KeyZoomIn,
	'=': input.KeyZoomIn,
	'-': input.KeyZoomOut,
	'_': input.KeyZoomOut,
	'0': input.KeyResetView,
	't': input.KeyTour,
	'q': input.KeyQuit,
}
