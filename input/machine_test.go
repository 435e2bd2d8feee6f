package input

import (
	"testing"

	"github.com/Hadenir/sudoku/board"
	"github.com/Hadenir/sudoku/ui"
)

func newTestMachine() *Machine {
	return NewMachine(ui.Default())
}

func TestPointerMoveEmitsHover(t *testing.T) {
	m := newTestMachine()

	it := m.Process(Event{Type: EventPointerMove, X: 50, Y: 3})
	if it.Type != IntentHover {
		t.Fatalf("Expected IntentHover, got %v", it.Type)
	}
	if it.X != 50 || it.Y != 3 {
		t.Errorf("Expected hover at (50,3), got (%d,%d)", it.X, it.Y)
	}

	x, y := m.Cursor()
	if x != 50 || y != 3 {
		t.Errorf("Expected cursor tracked at (50,3), got (%d,%d)", x, y)
	}
}

func TestPressInsideBoardSelects(t *testing.T) {
	m := newTestMachine()

	// Interior of cell row 3, col 4
	m.Process(Event{Type: EventPointerMove, X: 20, Y: 8})
	it := m.Process(Event{Type: EventPointerPress, Button: ButtonPrimary})

	if it.Type != IntentSelect {
		t.Fatalf("Expected IntentSelect, got %v", it.Type)
	}
	if it.Cell != (board.Coord{Row: 3, Col: 4}) {
		t.Errorf("Expected cell (3,4), got (%d,%d)", it.Cell.Row, it.Cell.Col)
	}
}

func TestPressOnButtonEmitsCheck(t *testing.T) {
	m := newTestMachine()
	l := ui.Default()

	m.Process(Event{Type: EventPointerMove, X: l.Button.X + 2, Y: l.Button.Y + 1})
	it := m.Process(Event{Type: EventPointerPress, Button: ButtonPrimary})
	if it.Type != IntentCheck {
		t.Fatalf("Expected IntentCheck, got %v", it.Type)
	}

	// Same press one cell past the button is a no-op
	m.Process(Event{Type: EventPointerMove, X: l.Button.X + l.Button.W + 1, Y: l.Button.Y + l.Button.H + 1})
	it = m.Process(Event{Type: EventPointerPress, Button: ButtonPrimary})
	if it.Type != IntentNone {
		t.Errorf("Expected IntentNone outside the button, got %v", it.Type)
	}
}

func TestNonPrimaryPressIgnored(t *testing.T) {
	m := newTestMachine()

	m.Process(Event{Type: EventPointerMove, X: 20, Y: 8})
	it := m.Process(Event{Type: EventPointerPress, Button: ButtonSecondary})
	if it.Type != IntentNone {
		t.Errorf("Expected secondary button press to be ignored, got %v", it.Type)
	}
}

func TestDigitKeyModes(t *testing.T) {
	m := newTestMachine()

	if m.Mode() != ModeDigit {
		t.Fatal("Expected machine to start in digit mode")
	}

	it := m.Process(Event{Type: EventKeyPress, Key: KeyDigit, Digit: 5})
	if it.Type != IntentSetDigit || it.Digit != 5 {
		t.Errorf("Expected IntentSetDigit 5, got %v digit %d", it.Type, it.Digit)
	}

	m.Process(Event{Type: EventKeyPress, Key: KeyShift})
	if m.Mode() != ModeNote {
		t.Error("Expected note mode while shift is held")
	}

	it = m.Process(Event{Type: EventKeyPress, Key: KeyDigit, Digit: 5})
	if it.Type != IntentToggleNote || it.Digit != 5 {
		t.Errorf("Expected IntentToggleNote 5, got %v digit %d", it.Type, it.Digit)
	}

	m.Process(Event{Type: EventKeyRelease, Key: KeyShift})
	if m.Mode() != ModeDigit {
		t.Error("Expected digit mode after shift release")
	}

	it = m.Process(Event{Type: EventKeyPress, Key: KeyDigit, Digit: 2})
	if it.Type != IntentSetDigit || it.Digit != 2 {
		t.Errorf("Expected IntentSetDigit 2 after release, got %v digit %d", it.Type, it.Digit)
	}
}

func TestEscapeClearsInEitherMode(t *testing.T) {
	m := newTestMachine()

	it := m.Process(Event{Type: EventKeyPress, Key: KeyEscape})
	if it.Type != IntentClear {
		t.Errorf("Expected IntentClear, got %v", it.Type)
	}

	m.Process(Event{Type: EventKeyPress, Key: KeyShift})
	it = m.Process(Event{Type: EventKeyPress, Key: KeyEscape})
	if it.Type != IntentClear {
		t.Errorf("Expected IntentClear with shift held, got %v", it.Type)
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	m := newTestMachine()

	it := m.Process(Event{Type: EventKeyPress, Key: KeyNone})
	if it.Type != IntentNone {
		t.Errorf("Expected unknown key to be ignored, got %v", it.Type)
	}
}
