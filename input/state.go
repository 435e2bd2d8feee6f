package input

// Mode is the shift-gated interpretation of digit keys.
// Digit mode commits a digit to the selected cell; note mode toggles
// the matching pencil-mark instead. The pair keeps the mapping from
// (mode, key) to action total rather than scattering a modifier flag
// through conditionals.
type Mode uint8

const (
	ModeDigit Mode = iota
	ModeNote
)
