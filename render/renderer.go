package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Hadenir/sudoku/board"
	"github.com/Hadenir/sudoku/game"
	"github.com/Hadenir/sudoku/ui"
)

// Renderer paints the whole frame from session state.
// It only ever reads: every mutation has fully applied before Draw runs.
type Renderer struct {
	screen tcell.Screen
	theme  Theme
}

// NewRenderer creates a renderer for the screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// Draw paints one frame: background, then selected-cell highlight,
// digits and note marks, grid lines, and finally the widgets.
func (r *Renderer) Draw(s *game.Session) {
	r.screen.Fill(' ', tcell.StyleDefault.Background(r.theme.Background))

	r.drawBoard(s)
	r.drawButton(s.Button, s.Layout.Button)
	r.drawPanel(s)
	r.drawStatus(s)
	r.drawHelp(s.Layout)

	r.screen.Show()
}

func (r *Renderer) drawBoard(s *game.Session) {
	rect := s.Layout.Board
	boardStyle := tcell.StyleDefault.Background(r.theme.BoardBg)

	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			r.screen.SetContent(x, y, ' ', nil, boardStyle)
		}
	}

	selected, hasSel := s.Board.Selected()

	// Cell contents. The selected cell's interior gets the highlight
	// background under its digit or note mark.
	for row := 0; row < board.Size; row++ {
		for col := 0; col < board.Size; col++ {
			c := board.Coord{Row: row, Col: col}
			x0, y0 := s.Layout.CellOrigin(c)

			bg := r.theme.BoardBg
			if hasSel && c == selected {
				bg = r.theme.SelectedBg
				hl := tcell.StyleDefault.Background(bg)
				for i := 1; i <= 3; i++ {
					r.screen.SetContent(x0+i, y0+1, ' ', nil, hl)
				}
			}

			if d, ok := s.Board.Digit(c); ok {
				style := tcell.StyleDefault.Foreground(r.theme.Digit).Background(bg).Bold(true)
				r.screen.SetContent(x0+2, y0+1, rune('0'+d), nil, style)
			} else if anyNote(s.Board.Notes(c)) {
				style := tcell.StyleDefault.Foreground(r.theme.NoteMark).Background(bg)
				r.screen.SetContent(x0+2, y0+1, '·', nil, style)
			}
		}
	}

	r.drawGrid(rect)
}

// drawGrid paints the 10 horizontal and 10 vertical grid lines.
// Section boundaries are heavy, interior cell edges light.
func (r *Renderer) drawGrid(rect ui.Rect) {
	lineStyle := func(heavy bool) tcell.Style {
		fg := r.theme.CellLine
		if heavy {
			fg = r.theme.SectionLine
		}
		return tcell.StyleDefault.Foreground(fg).Background(r.theme.BoardBg)
	}

	for i := 0; i <= board.Size; i++ {
		rowHeavy := i%3 == 0
		y := rect.Y + i*2
		ch := '─'
		if rowHeavy {
			ch = '━'
		}
		for x := rect.X; x < rect.X+rect.W; x++ {
			r.screen.SetContent(x, y, ch, nil, lineStyle(rowHeavy))
		}
	}

	for i := 0; i <= board.Size; i++ {
		colHeavy := i%3 == 0
		x := rect.X + i*4
		for y := rect.Y; y < rect.Y+rect.H; y++ {
			onRowLine := (y-rect.Y)%2 == 0
			if !onRowLine {
				ch := '│'
				if colHeavy {
					ch = '┃'
				}
				r.screen.SetContent(x, y, ch, nil, lineStyle(colHeavy))
				continue
			}
			rowHeavy := ((y-rect.Y)/2)%3 == 0
			r.screen.SetContent(x, y, crossing(rowHeavy, colHeavy), nil, lineStyle(rowHeavy || colHeavy))
		}
	}
}

// crossing picks the box-drawing rune for a grid intersection.
func crossing(rowHeavy, colHeavy bool) rune {
	switch {
	case rowHeavy && colHeavy:
		return '╋'
	case rowHeavy:
		return '┿'
	case colHeavy:
		return '╂'
	default:
		return '┼'
	}
}

func (r *Renderer) drawButton(b *ui.Button, rect ui.Rect) {
	bg := r.theme.ButtonBg
	if b.Hovered {
		bg = r.theme.ButtonHoverBg
	}
	fill := tcell.StyleDefault.Background(bg)
	border := tcell.StyleDefault.Foreground(r.theme.ButtonBorder).Background(bg)

	for y := rect.Y; y <= rect.Y+rect.H; y++ {
		for x := rect.X; x <= rect.X+rect.W; x++ {
			r.screen.SetContent(x, y, ' ', nil, fill)
		}
	}

	for x := rect.X; x <= rect.X+rect.W; x++ {
		r.screen.SetContent(x, rect.Y, '─', nil, border)
		r.screen.SetContent(x, rect.Y+rect.H, '─', nil, border)
	}
	for y := rect.Y; y <= rect.Y+rect.H; y++ {
		r.screen.SetContent(rect.X, y, '│', nil, border)
		r.screen.SetContent(rect.X+rect.W, y, '│', nil, border)
	}
	r.screen.SetContent(rect.X, rect.Y, '┌', nil, border)
	r.screen.SetContent(rect.X+rect.W, rect.Y, '┐', nil, border)
	r.screen.SetContent(rect.X, rect.Y+rect.H, '└', nil, border)
	r.screen.SetContent(rect.X+rect.W, rect.Y+rect.H, '┘', nil, border)

	label := b.Label
	if len(label) > rect.W-1 {
		label = label[:rect.W-1]
	}
	lx := rect.X + (rect.W+1-len(label))/2
	style := tcell.StyleDefault.Foreground(r.theme.ButtonText).Background(bg)
	r.drawText(lx, rect.Y+rect.H/2, label, style)
}

// drawPanel shows the selected cell's pencil-marks as a 3×3 grid.
// A cell's interior is three characters wide, too small to render all
// nine marks in place, so the panel carries them instead.
func (r *Renderer) drawPanel(s *game.Session) {
	c, ok := s.Board.Selected()
	if !ok {
		return
	}
	p := s.Layout.Panel

	head := tcell.StyleDefault.Foreground(r.theme.Text).Background(r.theme.Background)
	r.drawText(p.X, p.Y, "Notes", head)

	notes := s.Board.Notes(c)
	on := tcell.StyleDefault.Foreground(r.theme.NoteMark).Background(r.theme.Background).Bold(true)
	off := tcell.StyleDefault.Foreground(r.theme.DimText).Background(r.theme.Background)
	for n := 0; n < board.Size; n++ {
		x := p.X + (n%3)*2
		y := p.Y + 1 + n/3
		if notes[n] {
			r.screen.SetContent(x, y, rune('1'+n), nil, on)
		} else {
			r.screen.SetContent(x, y, '·', nil, off)
		}
	}
}

func (r *Renderer) drawStatus(s *game.Session) {
	msg := s.Status()
	if msg == "" {
		return
	}
	fg := r.theme.StatusBad
	if s.StatusOK() {
		fg = r.theme.StatusOK
	}
	style := tcell.StyleDefault.Foreground(fg).Background(r.theme.Background).Bold(true)
	r.drawText(s.Layout.Status.X, s.Layout.Status.Y, msg, style)
}

func (r *Renderer) drawHelp(l ui.Layout) {
	style := tcell.StyleDefault.Foreground(r.theme.DimText).Background(r.theme.Background)
	r.drawText(l.Board.X, l.Board.Y+l.Board.H+1, "1-9 digit   shift+1-9 note   esc clear   q quit", style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func anyNote(notes [board.Size]bool) bool {
	for _, n := range notes {
		if n {
			return true
		}
	}
	return false
}
