package ui

// Rect is a screen-space rectangle in terminal cell coordinates.
// W and H are extents, so the rectangle spans X..X+W and Y..Y+H.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the point lies inside the rectangle,
// inclusive on all four edges.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}
