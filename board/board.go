package board

// Size is the edge length of the board in cells.
const Size = 9

// Coord identifies a cell on the board.
type Coord struct {
	Row, Col int
}

// Cell holds one committed digit and nine pencil-mark flags.
// Digit 0 means the cell is empty. Digit and notes are independent:
// setting a digit does not clear notes, and notes can be toggled on a
// cell that already holds a digit.
type Cell struct {
	digit uint8
	notes [Size]bool
}

// Board is the 9×9 grid plus the current selection.
// It performs no rule validation on writes; invalid positions are
// representable and only Solved inspects consistency.
type Board struct {
	cells    [Size][Size]Cell
	selected Coord
	hasSel   bool
}

// New returns an empty board with no selection.
func New() *Board {
	return &Board{}
}

// Digit returns the digit written in the cell, or false if it is empty.
func (b *Board) Digit(c Coord) (uint8, bool) {
	d := b.cells[c.Row][c.Col].digit
	if d == 0 {
		return 0, false
	}
	return d, true
}

// Notes returns the cell's pencil-mark flags, indexed by digit-1.
func (b *Board) Notes(c Coord) [Size]bool {
	return b.cells[c.Row][c.Col].notes
}

// SetDigit overwrites the cell's digit. val 0 clears the cell.
func (b *Board) SetDigit(c Coord, val uint8) {
	b.cells[c.Row][c.Col].digit = val
}

// ToggleNote flips the pencil-mark for val (1–9) in the cell.
// The committed digit is untouched.
func (b *Board) ToggleNote(c Coord, val uint8) {
	cell := &b.cells[c.Row][c.Col]
	cell.notes[val-1] = !cell.notes[val-1]
}

// Select makes c the selected cell, replacing any prior selection.
// A board starts with no selection; once set it is never cleared.
func (b *Board) Select(c Coord) {
	b.selected = c
	b.hasSel = true
}

// Selected returns the selected cell, or false if nothing has been
// selected yet.
func (b *Board) Selected() (Coord, bool) {
	return b.selected, b.hasSel
}
