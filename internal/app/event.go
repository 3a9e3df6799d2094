package app

import "github.com/philipparndt/voxview/pkg/geometry"

// EventKind discriminates the normalized input event union
type EventKind int

const (
	// EventButtonDown is a mouse button press at a screen position
	EventButtonDown EventKind = iota
	// EventButtonUp is a mouse button release at a screen position
	EventButtonUp
	// EventMotion is a pointer move to a screen position
	EventMotion
	// EventKeyPress is a key press, either a symbol or a typed character
	EventKeyPress
)

// Button identifies a mouse button
type Button int

const (
	// ButtonLeft is the primary mouse button; the only one gestures use
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Key is a non-character key symbol
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyBackspace
	KeyEnter
)

// Event is a single normalized input event. The engine consumes only this
// union, never a windowing system's raw event structures, so the whole
// interaction machine is testable without a display.
type Event struct {
	Kind   EventKind
	Pos    geometry.Vector2 // screen position for mouse events
	Button Button           // valid for ButtonDown/ButtonUp
	Key    Key              // valid for KeyPress
	Rune   rune             // typed character for KeyPress, 0 if none
}

// ButtonDownEvent builds a press event
func ButtonDownEvent(x, y float32, b Button) Event {
	return Event{Kind: EventButtonDown, Pos: geometry.NewVector2(x, y), Button: b}
}

// ButtonUpEvent builds a release event
func ButtonUpEvent(x, y float32, b Button) Event {
	return Event{Kind: EventButtonUp, Pos: geometry.NewVector2(x, y), Button: b}
}

// MotionEvent builds a pointer motion event
func MotionEvent(x, y float32) Event {
	return Event{Kind: EventMotion, Pos: geometry.NewVector2(x, y)}
}

// KeyPressEvent builds a key symbol event
func KeyPressEvent(k Key) Event {
	return Event{Kind: EventKeyPress, Key: k}
}

// CharEvent builds a typed character event
func CharEvent(r rune) Event {
	return Event{Kind: EventKeyPress, Rune: r}
}
