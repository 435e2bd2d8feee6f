package ui

// Button is a minimal clickable affordance: a label and a hover flag.
// Hover is pure derived state, recomputed on every pointer move; clicks
// are evaluated independently against the cursor position at press
// time, so there is no click history to keep.
type Button struct {
	Label   string
	Hovered bool
}

// NewButton creates a button with the given label, not hovered.
func NewButton(label string) *Button {
	return &Button{Label: label}
}

// UpdateHover recomputes the hover flag from the cursor position.
func (b *Button) UpdateHover(r Rect, x, y int) {
	b.Hovered = r.Contains(x, y)
}

// Hit reports whether a press at the cursor position lands on the
// button.
func (b *Button) Hit(r Rect, x, y int) bool {
	return r.Contains(x, y)
}
