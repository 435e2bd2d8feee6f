package ui

import (
	"github.com/Hadenir/sudoku/board"
)

// Layout fixes where the board and its widgets sit on screen.
// It is supplied once at startup and never changes afterwards.
//
// The board rectangle covers the full drawn grid including its border
// lines; pointer positions anywhere inside it resolve to a cell by
// linear scaling, so clicks on a grid line land in the nearest cell.
type Layout struct {
	Board  Rect
	Button Rect
	Panel  Rect // selected-cell notes panel
	Status Point
}

// Point is a single screen position (status line anchor).
type Point struct {
	X, Y int
}

// Default returns the standard layout: board on the left, check button
// and notes panel in a column to its right.
func Default() Layout {
	return Layout{
		Board:  Rect{X: 2, Y: 1, W: 37, H: 19},
		Button: Rect{X: 44, Y: 2, W: 10, H: 2},
		Panel:  Rect{X: 44, Y: 7, W: 6, H: 4},
		Status: Point{X: 44, Y: 13},
	}
}

// CellAt maps a pointer position to the board cell under it.
// The second return is false when the position is outside the board.
// Mapping scales the offset from the board's top-left corner by 9/size
// per axis, truncated.
func (l Layout) CellAt(x, y int) (board.Coord, bool) {
	dx := x - l.Board.X
	dy := y - l.Board.Y
	if dx < 0 || dx >= l.Board.W || dy < 0 || dy >= l.Board.H {
		return board.Coord{}, false
	}
	return board.Coord{
		Row: dy * board.Size / l.Board.H,
		Col: dx * board.Size / l.Board.W,
	}, true
}

// CellOrigin returns the screen position of the top-left border corner
// of the cell's 4×2 block within the drawn grid.
func (l Layout) CellOrigin(c board.Coord) (x, y int) {
	return l.Board.X + c.Col*4, l.Board.Y + c.Row*2
}
