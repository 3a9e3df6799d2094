package app

import (
	"github.com/chewxy/math32"
	"github.com/philipparndt/voxview/pkg/geometry"
)

// Mode is the state of the gesture machine
type Mode int

const (
	// ModeIdle means no gesture is in progress
	ModeIdle Mode = iota
	// ModeZoomRect tracks a rubber-band rectangle until release
	ModeZoomRect
	// ModeDragPan pans the active view continuously while dragging
	ModeDragPan
)

// minGestureSize is the minimum zoom rectangle extent in screen pixels.
// Smaller gestures are accidental clicks and are discarded.
const minGestureSize = 10

// windowLevelStep is the fraction of the global value range that one
// keyboard level adjustment moves each window bound by.
const windowLevelStep = 0.05

// Controller is the session-wide gesture state machine. At most one
// gesture is live at a time across all views; the active view is fixed at
// ButtonDown and only released when the gesture ends.
//
// Views are always re-resolved through the session by index. The
// controller never holds a view or dataset pointer across events.
type Controller struct {
	mode       Mode
	activeView int

	anchor  geometry.Vector2 // gesture start, canvas-local
	current geometry.Vector2 // latest pointer position, canvas-local

	panOrigin geometry.Vector2 // view pan at gesture start (drag-pan)

	// hotView is the last view the idle pointer was over; keyboard
	// navigation applies to it
	hotView int
}

// NewController creates an idle controller
func NewController() *Controller {
	return &Controller{mode: ModeIdle}
}

// Mode returns the current gesture state
func (c *Controller) Mode() Mode { return c.mode }

// ActiveView returns the view index the live gesture is bound to.
// Meaningful only while Mode is not ModeIdle.
func (c *Controller) ActiveView() int { return c.activeView }

// ZoomRect returns the rubber-band rectangle in screen coordinates while a
// zoom gesture is live, for the presenter to draw.
func (c *Controller) ZoomRect(s *Session) (geometry.Rect, bool) {
	if c.mode != ModeZoomRect {
		return geometry.Rect{}, false
	}
	origin := s.Views[c.activeView].Canvas.Origin()
	return geometry.RectFromCorners(origin.Add(c.anchor), origin.Add(c.current)), true
}

// Handle feeds one normalized event through the state machine, mutating
// view state on the session as transitions require. All transitions
// complete synchronously within the event that triggered them.
func (c *Controller) Handle(ev Event, s *Session) {
	switch ev.Kind {
	case EventButtonDown:
		c.handleButtonDown(ev, s)
	case EventMotion:
		c.handleMotion(ev, s)
	case EventButtonUp:
		c.handleButtonUp(ev, s)
	case EventKeyPress:
		c.handleKeyPress(ev, s)
	}
}

func (c *Controller) handleButtonDown(ev Event, s *Session) {
	if ev.Button != ButtonLeft {
		return
	}
	// One live gesture process-wide; presses during a gesture are ignored
	if c.mode != ModeIdle {
		return
	}

	i, local, ok := s.Layout.HitTest(ev.Pos)
	if !ok {
		return
	}
	c.hotView = i

	view := s.Views[i]
	switch {
	case view.ZoomMode():
		c.mode = ModeZoomRect
		c.activeView = i
		c.anchor = local
		c.current = local
	case view.DragMode():
		c.mode = ModeDragPan
		c.activeView = i
		c.anchor = local
		c.panOrigin = view.Pan
	}
	// Neither mode set: the click is not an engine gesture
}

func (c *Controller) handleMotion(ev Event, s *Session) {
	switch c.mode {
	case ModeIdle:
		if i, _, ok := s.Layout.HitTest(ev.Pos); ok {
			c.hotView = i
		}

	case ModeZoomRect:
		// Track only; the rectangle is applied at release
		c.current = s.Views[c.activeView].Canvas.Local(ev.Pos)

	case ModeDragPan:
		// Continuous panning: the view follows the pointer immediately
		view := s.Views[c.activeView]
		local := view.Canvas.Local(ev.Pos)
		view.Pan = c.panOrigin.Add(local.Sub(c.anchor))
	}
}

func (c *Controller) handleButtonUp(ev Event, s *Session) {
	if ev.Button != ButtonLeft {
		return
	}

	switch c.mode {
	case ModeZoomRect:
		c.applyZoomRect(s)
		c.mode = ModeIdle

	case ModeDragPan:
		// Pan was applied during motion; nothing left to do
		c.mode = ModeIdle
	}
}

// applyZoomRect zooms the active view into the rubber-band rectangle:
// the new zoom fits the selected volume region into the canvas, and the
// pan recenters the region's midpoint on the canvas center.
func (c *Controller) applyZoomRect(s *Session) {
	view := s.Views[c.activeView]

	// Discard accidental clicks below the minimum gesture size
	if math32.Abs(c.current.X-c.anchor.X) < minGestureSize ||
		math32.Abs(c.current.Y-c.anchor.Y) < minGestureSize {
		return
	}

	a := view.ToVolume(c.anchor)
	b := view.ToVolume(c.current)

	rectW := math32.Abs(b.X - a.X)
	rectH := math32.Abs(b.Y - a.Y)

	canvasW := view.Canvas.Width
	canvasH := view.Canvas.Height

	newZoom := math32.Min(canvasW/rectW, canvasH/rectH)
	center := a.Add(b).Mul(0.5)

	view.Zoom = newZoom
	view.Pan = geometry.NewVector2(canvasW/2, canvasH/2).Sub(center.Mul(newZoom))
}

func (c *Controller) handleKeyPress(ev Event, s *Session) {
	if len(s.Views) == 0 {
		return
	}
	i := c.hotView
	view := s.Views[i]
	ds := s.Dataset(i)

	switch {
	case ev.Key == KeyUp:
		view.SetSlice(view.Slice+1, ds)
	case ev.Key == KeyDown:
		view.SetSlice(view.Slice-1, ds)
	case ev.Rune == '+':
		c.adjustWindowLevel(s, i, windowLevelStep)
	case ev.Rune == '-':
		c.adjustWindowLevel(s, i, -windowLevelStep)
	case ev.Rune == 'r' || ev.Rune == 'R':
		s.ResetWindow(i)
	}
}

// adjustWindowLevel widens (positive step) or narrows (negative step) the
// contrast window symmetrically by a fraction of the global value range.
func (c *Controller) adjustWindowLevel(s *Session, i int, step float32) {
	ds := s.Dataset(i)
	delta := step * (ds.GlobalMax() - ds.GlobalMin())
	min, max := ds.Window()
	s.SetWindow(i, min-delta, max+delta)
}
