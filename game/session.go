package game

import (
	"log"

	"github.com/Hadenir/sudoku/board"
	"github.com/Hadenir/sudoku/input"
	"github.com/Hadenir/sudoku/ui"
)

// Sounds is the audio feedback hook applied alongside board mutations.
// A nil Sounds disables feedback (audio init failure is non-fatal).
type Sounds interface {
	DigitSet()
	NoteToggle()
	CellClear()
	CheckPassed()
	CheckFailed()
}

// Session owns one game's state: the board, the check button and the
// input machine. Events are applied one at a time, fully, before the
// renderer reads anything, so no locking is needed.
type Session struct {
	Board  *board.Board
	Button *ui.Button
	Layout ui.Layout

	machine  *input.Machine
	sounds   Sounds
	status   string
	statusOK bool
}

// NewSession creates a fresh session with an empty board.
func NewSession(layout ui.Layout, sounds Sounds) *Session {
	return &Session{
		Board:   board.New(),
		Button:  ui.NewButton("Check"),
		Layout:  layout,
		machine: input.NewMachine(layout),
		sounds:  sounds,
	}
}

// Mode returns the current digit-key interpretation, for display.
func (s *Session) Mode() input.Mode {
	return s.machine.Mode()
}

// Status returns the result line of the last check, empty before the
// first one.
func (s *Session) Status() string {
	return s.status
}

// StatusOK reports whether the last check passed.
func (s *Session) StatusOK() bool {
	return s.statusOK
}

// HandleEvent parses one normalized event and applies the resulting
// intent to the session state.
func (s *Session) HandleEvent(ev input.Event) {
	s.Apply(s.machine.Process(ev))
}

// Apply executes a single intent against the session state.
// Digit, note and clear intents are no-ops until a cell is selected.
func (s *Session) Apply(it input.Intent) {
	switch it.Type {
	case input.IntentHover:
		s.Button.UpdateHover(s.Layout.Button, it.X, it.Y)

	case input.IntentSelect:
		s.Board.Select(it.Cell)

	case input.IntentSetDigit:
		if c, ok := s.Board.Selected(); ok {
			s.Board.SetDigit(c, it.Digit)
			if s.sounds != nil {
				s.sounds.DigitSet()
			}
		}

	case input.IntentToggleNote:
		if c, ok := s.Board.Selected(); ok {
			s.Board.ToggleNote(c, it.Digit)
			if s.sounds != nil {
				s.sounds.NoteToggle()
			}
		}

	case input.IntentClear:
		if c, ok := s.Board.Selected(); ok {
			s.Board.SetDigit(c, 0)
			if s.sounds != nil {
				s.sounds.CellClear()
			}
		}

	case input.IntentCheck:
		s.check()
	}
}

func (s *Session) check() {
	solved := s.Board.Solved()
	log.Printf("check: solved=%v", solved)
	s.statusOK = solved
	if solved {
		s.status = "Solved!"
		if s.sounds != nil {
			s.sounds.CheckPassed()
		}
	} else {
		s.status = "Not solved"
		if s.sounds != nil {
			s.sounds.CheckFailed()
		}
	}
}
