package input

import (
	"github.com/Hadenir/sudoku/ui"
)

// Machine is the input state machine.
// It parses normalized Events into semantic Intents against a fixed
// screen layout. The only persistent state is the last known cursor
// position and the shift flag; board mutation happens downstream when
// the intent is applied.
type Machine struct {
	layout ui.Layout

	cursorX, cursorY int
	shift            bool
}

// NewMachine creates an input machine for the given layout.
func NewMachine(layout ui.Layout) *Machine {
	return &Machine{layout: layout}
}

// Mode returns the current digit-key interpretation.
func (m *Machine) Mode() Mode {
	if m.shift {
		return ModeNote
	}
	return ModeDigit
}

// Cursor returns the last known pointer position.
func (m *Machine) Cursor() (x, y int) {
	return m.cursorX, m.cursorY
}

// Process parses one event and returns the resulting intent.
// Unknown keys, non-primary buttons and out-of-region presses are
// defined no-ops, reported as IntentNone.
func (m *Machine) Process(ev Event) Intent {
	switch ev.Type {
	case EventPointerMove:
		m.cursorX, m.cursorY = ev.X, ev.Y
		return Intent{Type: IntentHover, X: ev.X, Y: ev.Y}

	case EventPointerPress:
		if ev.Button != ButtonPrimary {
			return Intent{}
		}
		return m.processPress()

	case EventKeyPress:
		return m.processKey(ev)

	case EventKeyRelease:
		if ev.Key == KeyShift {
			m.shift = false
		}
		return Intent{}
	}
	return Intent{}
}

// processPress resolves a primary-button press against the board and
// button regions. The two never overlap, so the first match wins.
func (m *Machine) processPress() Intent {
	if cell, ok := m.layout.CellAt(m.cursorX, m.cursorY); ok {
		return Intent{Type: IntentSelect, Cell: cell}
	}
	if m.layout.Button.Contains(m.cursorX, m.cursorY) {
		return Intent{Type: IntentCheck}
	}
	return Intent{}
}

func (m *Machine) processKey(ev Event) Intent {
	switch ev.Key {
	case KeyShift:
		m.shift = true
		return Intent{}

	case KeyEscape:
		// Clears the selected cell in either mode.
		return Intent{Type: IntentClear}

	case KeyDigit:
		if m.Mode() == ModeNote {
			return Intent{Type: IntentToggleNote, Digit: ev.Digit}
		}
		return Intent{Type: IntentSetDigit, Digit: ev.Digit}
	}
	return Intent{}
}
