package input

// EventType classifies normalized input events.
// The event stream has exactly four kinds: pointer motion, pointer
// press, key press and key release, in screen coordinates matching the
// layout rectangles.
type EventType uint8

const (
	EventPointerMove EventType = iota
	EventPointerPress
	EventKeyPress
	EventKeyRelease
)

// MouseButton identifies the pressed pointer button.
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonPrimary
	ButtonSecondary
)

// Key identifies the keys the interaction model cares about.
// Anything else never enters the normalized stream.
type Key uint8

const (
	KeyNone Key = iota
	KeyDigit
	KeyEscape
	KeyShift
)

// Event is one normalized input event.
// X/Y are set for pointer events; Key (and Digit for KeyDigit) for key
// events.
type Event struct {
	Type   EventType
	X, Y   int
	Button MouseButton
	Key    Key
	Digit  uint8 // 1–9, valid when Key == KeyDigit
}
