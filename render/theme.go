package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme holds every color the renderer uses: lavender board, dark
// blue edges, blue digits, on a dimmed backdrop.
type Theme struct {
	Background  tcell.Color
	BoardBg     tcell.Color
	SelectedBg  tcell.Color
	CellLine    tcell.Color
	SectionLine tcell.Color
	Digit       tcell.Color
	NoteMark    tcell.Color

	ButtonBg      tcell.Color
	ButtonHoverBg tcell.Color
	ButtonBorder  tcell.Color
	ButtonText    tcell.Color

	Text      tcell.Color
	DimText   tcell.Color
	StatusOK  tcell.Color
	StatusBad tcell.Color
}

// DefaultTheme derives the palette from a handful of base colors.
// Hover and selection shades are computed rather than hand-picked so
// the relationships survive palette swaps.
func DefaultTheme() Theme {
	board := hex("#ccccff")
	edge := hex("#000033")
	digit := hex("#0000ff")
	note := hex("#5e5ea1")

	return Theme{
		Background:  tc(darken(board, 0.45)),
		BoardBg:     tc(board),
		SelectedBg:  tc(lighten(board, 0.08)),
		CellLine:    tc(lighten(edge, 0.35)),
		SectionLine: tc(edge),
		Digit:       tc(digit),
		NoteMark:    tc(note),

		ButtonBg:      tc(board),
		ButtonHoverBg: tc(lighten(board, 0.08)),
		ButtonBorder:  tc(edge),
		ButtonText:    tc(digit),

		Text:      tc(hex("#e8e8f8")),
		DimText:   tc(hex("#8888aa")),
		StatusOK:  tc(hex("#44cc66")),
		StatusBad: tc(hex("#cc5544")),
	}
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("theme: bad hex color " + s)
	}
	return c
}

func tc(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func lighten(c colorful.Color, amt float64) colorful.Color {
	h, s, l := c.Hsl()
	l += amt
	if l > 1 {
		l = 1
	}
	return colorful.Hsl(h, s, l)
}

func darken(c colorful.Color, amt float64) colorful.Color {
	h, s, l := c.Hsl()
	l -= amt
	if l < 0 {
		l = 0
	}
	return colorful.Hsl(h, s, l)
}
