package board

// Solved reports whether the board is a completely and consistently
// filled Sudoku: every row holds the digits 1–9 with no repeats, and no
// column or 3×3 section contains a repeated value.
//
// The row pass rejects empty cells outright. The column and section
// passes only look for repeats, treating 0 as an ordinary value; a lone
// empty cell slips through them but never through the row pass, so a
// board that passes all three is fully filled.
func (b *Board) Solved() bool {
	var seen [Size + 1]bool

	for row := 0; row < Size; row++ {
		seen = [Size + 1]bool{}
		for col := 0; col < Size; col++ {
			d := b.cells[row][col].digit
			if d == 0 || seen[d] {
				return false
			}
			seen[d] = true
		}
	}

	for col := 0; col < Size; col++ {
		seen = [Size + 1]bool{}
		for row := 0; row < Size; row++ {
			d := b.cells[row][col].digit
			if seen[d] {
				return false
			}
			seen[d] = true
		}
	}

	for section := 0; section < Size; section++ {
		seen = [Size + 1]bool{}
		for i := 0; i < Size; i++ {
			row := (section/3)*3 + i/3
			col := (section%3)*3 + i%3
			d := b.cells[row][col].digit
			if seen[d] {
				return false
			}
			seen[d] = true
		}
	}

	return true
}
