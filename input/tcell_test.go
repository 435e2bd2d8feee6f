package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateDigitRune(t *testing.T) {
	a := NewAdapter()

	evs := a.Translate(tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone))
	if len(evs) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(evs))
	}
	if evs[0].Type != EventKeyPress || evs[0].Key != KeyDigit || evs[0].Digit != 5 {
		t.Errorf("Expected key press digit 5, got %+v", evs[0])
	}
}

func TestTranslateShiftedDigitRune(t *testing.T) {
	tests := []struct {
		name  string
		r     rune
		digit uint8
	}{
		{"Shift 1", '!', 1},
		{"Shift 5", '%', 5},
		{"Shift 9", '(', 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAdapter()
			evs := a.Translate(tcell.NewEventKey(tcell.KeyRune, tt.r, tcell.ModNone))
			if len(evs) != 3 {
				t.Fatalf("Expected shift press + digit + shift release, got %d events", len(evs))
			}
			if evs[0].Type != EventKeyPress || evs[0].Key != KeyShift {
				t.Errorf("Expected leading shift press, got %+v", evs[0])
			}
			if evs[1].Key != KeyDigit || evs[1].Digit != tt.digit {
				t.Errorf("Expected digit %d, got %+v", tt.digit, evs[1])
			}
			if evs[2].Type != EventKeyRelease || evs[2].Key != KeyShift {
				t.Errorf("Expected trailing shift release, got %+v", evs[2])
			}
		})
	}
}

func TestTranslateModShiftDigit(t *testing.T) {
	a := NewAdapter()

	evs := a.Translate(tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModShift))
	if len(evs) != 3 {
		t.Fatalf("Expected shift-wrapped digit, got %d events", len(evs))
	}
	if evs[1].Digit != 3 {
		t.Errorf("Expected digit 3, got %d", evs[1].Digit)
	}
}

func TestTranslateEscape(t *testing.T) {
	a := NewAdapter()

	evs := a.Translate(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if len(evs) != 1 || evs[0].Key != KeyEscape {
		t.Fatalf("Expected escape key press, got %+v", evs)
	}
}

func TestTranslateIgnoredKeys(t *testing.T) {
	a := NewAdapter()

	tests := []struct {
		name string
		ev   tcell.Event
	}{
		{"Letter", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)},
		{"Zero", tcell.NewEventKey(tcell.KeyRune, '0', tcell.ModNone)},
		{"Enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)},
		{"Resize", tcell.NewEventResize(80, 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if evs := a.Translate(tt.ev); len(evs) != 0 {
				t.Errorf("Expected no events, got %+v", evs)
			}
		})
	}
}

func TestTranslateMouseMoveAndPress(t *testing.T) {
	a := NewAdapter()

	// Plain motion: move only
	evs := a.Translate(tcell.NewEventMouse(12, 7, tcell.ButtonNone, tcell.ModNone))
	if len(evs) != 1 || evs[0].Type != EventPointerMove {
		t.Fatalf("Expected single pointer move, got %+v", evs)
	}
	if evs[0].X != 12 || evs[0].Y != 7 {
		t.Errorf("Expected move to (12,7), got (%d,%d)", evs[0].X, evs[0].Y)
	}

	// Press edge: move + press
	evs = a.Translate(tcell.NewEventMouse(12, 7, tcell.Button1, tcell.ModNone))
	if len(evs) != 2 {
		t.Fatalf("Expected move + press, got %d events", len(evs))
	}
	if evs[1].Type != EventPointerPress || evs[1].Button != ButtonPrimary {
		t.Errorf("Expected primary press, got %+v", evs[1])
	}

	// Held button dragging: no repeated press
	evs = a.Translate(tcell.NewEventMouse(13, 7, tcell.Button1, tcell.ModNone))
	if len(evs) != 1 || evs[0].Type != EventPointerMove {
		t.Errorf("Expected move only while held, got %+v", evs)
	}

	// Release then press again: new edge
	a.Translate(tcell.NewEventMouse(13, 7, tcell.ButtonNone, tcell.ModNone))
	evs = a.Translate(tcell.NewEventMouse(13, 7, tcell.Button1, tcell.ModNone))
	if len(evs) != 2 || evs[1].Type != EventPointerPress {
		t.Errorf("Expected a fresh press after release, got %+v", evs)
	}
}
