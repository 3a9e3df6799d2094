package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

var mouseButtons = [...]struct {
	raylib rl.MouseButton
	button Button
}{
	{rl.MouseLeftButton, ButtonLeft},
	{rl.MouseMiddleButton, ButtonMiddle},
	{rl.MouseRightButton, ButtonRight},
}

// inputState tracks what is needed to turn raylib's polled input into the
// normalized event stream consumed by the engine.
type inputState struct {
	lastMouse rl.Vector2
}

// poll translates this frame's raylib input into normalized events, in a
// stable order: presses, motion, releases, then keyboard. The rest of the
// engine never touches raylib input directly.
func (in *inputState) poll() []Event {
	var events []Event

	pos := rl.GetMousePosition()

	for _, mb := range mouseButtons {
		if rl.IsMouseButtonPressed(mb.raylib) {
			events = append(events, ButtonDownEvent(pos.X, pos.Y, mb.button))
		}
	}

	if pos.X != in.lastMouse.X || pos.Y != in.lastMouse.Y {
		events = append(events, MotionEvent(pos.X, pos.Y))
		in.lastMouse = pos
	}

	for _, mb := range mouseButtons {
		if rl.IsMouseButtonReleased(mb.raylib) {
			events = append(events, ButtonUpEvent(pos.X, pos.Y, mb.button))
		}
	}

	if rl.IsKeyPressed(rl.KeyUp) {
		events = append(events, KeyPressEvent(KeyUp))
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		events = append(events, KeyPressEvent(KeyDown))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		events = append(events, KeyPressEvent(KeyBackspace))
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		events = append(events, KeyPressEvent(KeyEnter))
	}

	for {
		char := rl.GetCharPressed()
		if char == 0 {
			break
		}
		events = append(events, CharEvent(rune(char)))
	}

	return events
}
