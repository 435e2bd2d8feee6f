package input

import (
	"github.com/Hadenir/sudoku/board"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentHover      // pointer moved; widgets recompute hover state
	IntentSelect     // pointer pressed inside the board
	IntentSetDigit   // digit key in digit mode
	IntentToggleNote // digit key in note mode
	IntentClear      // ESC key
	IntentCheck      // pointer pressed on the check button
)

// Intent is a parsed input action, ready to apply to game state.
// Cell is set for IntentSelect, Digit for the set/toggle intents, X/Y
// for IntentHover.
type Intent struct {
	Type  IntentType
	Cell  board.Coord
	Digit uint8
	X, Y  int
}
