package input

import (
	"github.com/gdamore/tcell/v2"
)

// shiftedDigits maps the shifted US-layout digit row back to digits.
// Terminals deliver Shift+3 as '#', not as a modifier on '3', and they
// never deliver shift press/release on its own, so the adapter
// synthesizes the modifier events around the digit.
var shiftedDigits = map[rune]uint8{
	'!': 1, '@': 2, '#': 3, '$': 4, '%': 5,
	'^': 6, '&': 7, '*': 8, '(': 9,
}

// Adapter converts raw tcell events into the normalized event stream.
// It tracks the previous mouse button mask so that presses are emitted
// on the edge only.
type Adapter struct {
	buttons tcell.ButtonMask
}

// NewAdapter creates a tcell event adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Translate converts one tcell event into zero or more normalized
// events, in the order they should be processed.
func (a *Adapter) Translate(ev tcell.Event) []Event {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return a.translateMouse(ev)
	case *tcell.EventKey:
		return a.translateKey(ev)
	}
	return nil
}

func (a *Adapter) translateMouse(ev *tcell.EventMouse) []Event {
	x, y := ev.Position()
	out := []Event{{Type: EventPointerMove, X: x, Y: y}}

	btns := ev.Buttons() & tcell.ButtonMask(0xff)
	pressed := btns &^ a.buttons
	a.buttons = btns

	if pressed&tcell.Button1 != 0 {
		out = append(out, Event{Type: EventPointerPress, X: x, Y: y, Button: ButtonPrimary})
	} else if pressed&tcell.Button2 != 0 {
		out = append(out, Event{Type: EventPointerPress, X: x, Y: y, Button: ButtonSecondary})
	}
	return out
}

func (a *Adapter) translateKey(ev *tcell.EventKey) []Event {
	if ev.Key() == tcell.KeyEscape {
		return []Event{{Type: EventKeyPress, Key: KeyEscape}}
	}
	if ev.Key() != tcell.KeyRune {
		return nil
	}

	r := ev.Rune()
	shifted := ev.Modifiers()&tcell.ModShift != 0

	var digit uint8
	switch {
	case r >= '1' && r <= '9':
		digit = uint8(r - '0')
	case shiftedDigits[r] != 0:
		digit = shiftedDigits[r]
		shifted = true
	default:
		return nil
	}

	press := Event{Type: EventKeyPress, Key: KeyDigit, Digit: digit}
	if !shifted {
		return []Event{press}
	}
	return []Event{
		{Type: EventKeyPress, Key: KeyShift},
		press,
		{Type: EventKeyRelease, Key: KeyShift},
	}
}
