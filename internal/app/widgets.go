package app

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/voxview/pkg/geometry"
)

// Toolbar chrome. These widgets are presentation collaborators: they claim
// input events before the gesture controller sees them and translate
// clicks into engine calls, dispatched by view index from the frame loop
// rather than through captured callbacks.

const (
	widgetHeight    = 22.0
	inputWidth      = 70.0
	buttonWidth     = 52.0
	radioRadius     = 6.0
	widgetSpacing   = 8.0
	widgetFontSize  = 14
	scrollHandleMin = 12.0
)

var (
	chromeBg     = rl.NewColor(40, 45, 55, 255)
	chromeHot    = rl.NewColor(50, 55, 65, 255)
	chromeBorder = rl.NewColor(80, 160, 255, 255)
	chromeActive = rl.NewColor(100, 255, 100, 255)
	chromeText   = rl.NewColor(220, 225, 235, 255)
)

// TextInput is a single-line numeric entry field
type TextInput struct {
	Bounds  geometry.Rect
	Text    string
	focused bool
}

// HandleEvent consumes clicks inside the field and typed characters while
// focused. A click elsewhere drops focus without consuming the event.
func (t *TextInput) HandleEvent(ev Event) bool {
	switch ev.Kind {
	case EventButtonDown:
		if ev.Button != ButtonLeft {
			return false
		}
		if t.Bounds.Contains(ev.Pos) {
			t.focused = true
			return true
		}
		t.focused = false
		return false

	case EventKeyPress:
		if !t.focused {
			return false
		}
		if ev.Key == KeyBackspace {
			if len(t.Text) > 0 {
				t.Text = t.Text[:len(t.Text)-1]
			}
			return true
		}
		if ev.Key == KeyEnter {
			t.focused = false
			return true
		}
		if ev.Rune != 0 && strings.ContainsRune("0123456789.-+eE", ev.Rune) {
			t.Text += string(ev.Rune)
			return true
		}
		// Swallow other characters while focused so 'r' etc. don't leak
		// into keyboard navigation mid-edit
		return ev.Rune != 0
	}
	return false
}

// Draw renders the field
func (t *TextInput) Draw() {
	r := boundsToRl(t.Bounds)
	rl.DrawRectangleRec(r, chromeBg)
	border := chromeBorder
	if t.focused {
		border = chromeActive
	}
	rl.DrawRectangleLinesEx(r, 1, border)
	rl.DrawText(t.Text, int32(t.Bounds.X)+4, int32(t.Bounds.Y)+4, widgetFontSize, chromeText)
}

// ToggleButton is a two-state button; the frame loop reads the click and
// flips the corresponding view mode.
type ToggleButton struct {
	Bounds geometry.Rect
	Label  string
	On     bool
}

// HandleEvent reports a click inside the button
func (b *ToggleButton) HandleEvent(ev Event) (clicked bool) {
	if ev.Kind != EventButtonDown || ev.Button != ButtonLeft {
		return false
	}
	return b.Bounds.Contains(ev.Pos)
}

// Draw renders the button, highlighted while its mode is on
func (b *ToggleButton) Draw() {
	r := boundsToRl(b.Bounds)
	bg := chromeBg
	if b.Bounds.Contains(mousePos()) {
		bg = chromeHot
	}
	rl.DrawRectangleRec(r, bg)
	border := chromeBorder
	if b.On {
		border = chromeActive
	}
	rl.DrawRectangleLinesEx(r, 1, border)

	tw := rl.MeasureText(b.Label, widgetFontSize)
	rl.DrawText(b.Label,
		int32(b.Bounds.X+(b.Bounds.Width-float32(tw))/2),
		int32(b.Bounds.Y)+4, widgetFontSize, chromeText)
}

// RadioButton selects one plane out of the group
type RadioButton struct {
	Center   geometry.Vector2
	Label    string
	Selected bool
}

// HandleEvent reports a click on the radio circle or its label. The label
// width is estimated so hit-testing stays free of the windowing system.
func (r *RadioButton) HandleEvent(ev Event) (clicked bool) {
	if ev.Kind != EventButtonDown || ev.Button != ButtonLeft {
		return false
	}
	labelWidth := float32(len(r.Label)) * widgetFontSize * 0.6
	hit := geometry.NewRect(r.Center.X-radioRadius, r.Center.Y-radioRadius,
		radioRadius*2+labelWidth+6, radioRadius*2)
	return hit.Contains(ev.Pos)
}

// Draw renders the radio button
func (r *RadioButton) Draw() {
	rl.DrawCircleLines(int32(r.Center.X), int32(r.Center.Y), radioRadius, chromeBorder)
	if r.Selected {
		rl.DrawCircle(int32(r.Center.X), int32(r.Center.Y), radioRadius-2, chromeActive)
	}
	rl.DrawText(r.Label, int32(r.Center.X+radioRadius+4), int32(r.Center.Y)-7, widgetFontSize, chromeText)
}

// Scrollbar is the vertical slice selector beside each view
type Scrollbar struct {
	Bounds   geometry.Rect
	Min, Max int
	Value    int
	dragging bool
}

// SetRange clamps the current value into a new range
func (s *Scrollbar) SetRange(min, max int) {
	s.Min = min
	s.Max = max
	if s.Value < min {
		s.Value = min
	}
	if s.Value > max {
		s.Value = max
	}
}

// HandleEvent maps presses and drags on the bar to value changes
func (s *Scrollbar) HandleEvent(ev Event) (changed bool) {
	switch ev.Kind {
	case EventButtonDown:
		if ev.Button != ButtonLeft || !s.Bounds.Contains(ev.Pos) {
			return false
		}
		s.dragging = true
		return s.setFromY(ev.Pos.Y)
	case EventMotion:
		if !s.dragging {
			return false
		}
		return s.setFromY(ev.Pos.Y)
	case EventButtonUp:
		if ev.Button == ButtonLeft && s.dragging {
			s.dragging = false
			return true
		}
	}
	return false
}

func (s *Scrollbar) setFromY(y float32) bool {
	if s.Max <= s.Min {
		return false
	}
	frac := (y - s.Bounds.Y) / s.Bounds.Height
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	v := s.Min + int(frac*float32(s.Max-s.Min)+0.5)
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

// Draw renders the track and the position handle
func (s *Scrollbar) Draw() {
	rl.DrawRectangleRec(boundsToRl(s.Bounds), chromeBg)
	rl.DrawRectangleLinesEx(boundsToRl(s.Bounds), 1, chromeBorder)

	if s.Max <= s.Min {
		return
	}
	frac := float32(s.Value-s.Min) / float32(s.Max-s.Min)
	handleH := float32(scrollHandleMin)
	y := s.Bounds.Y + frac*(s.Bounds.Height-handleH)
	handle := geometry.NewRect(s.Bounds.X+2, y, s.Bounds.Width-4, handleH)
	rl.DrawRectangleRec(boundsToRl(handle), chromeBorder)

	label := fmt.Sprintf("%d", s.Value)
	rl.DrawText(label, int32(s.Bounds.X), int32(s.Bounds.Y+s.Bounds.Height)+4, 12, chromeText)
}

func boundsToRl(r geometry.Rect) rl.Rectangle {
	return rl.Rectangle{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func mousePos() geometry.Vector2 {
	p := rl.GetMousePosition()
	return geometry.NewVector2(p.X, p.Y)
}
