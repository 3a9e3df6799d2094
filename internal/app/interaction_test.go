package app

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/philipparndt/voxview/pkg/geometry"
)

// gestureSession builds a single 100x100 XY view whose canvas sits at the
// origin, so event coordinates double as canvas-local pixels.
func gestureSession(t *testing.T) *Session {
	t.Helper()
	s := newTestSession(t, false, [3]int{100, 100, 4})
	s.Layout.Recompute(s.Views, s.Arena)
	return s
}

func approxVec(t *testing.T, name string, got, expected geometry.Vector2) {
	t.Helper()
	if d := got.Sub(expected).Abs(); d.X > 1e-4 || d.Y > 1e-4 {
		t.Errorf("%s: expected %+v, got %+v", name, expected, got)
	}
}

func TestZoomRectGesture(t *testing.T) {
	s := gestureSession(t)
	view := s.Views[0]
	view.ToggleZoomMode()
	c := s.Controller

	c.Handle(ButtonDownEvent(10, 10, ButtonLeft), s)
	if c.Mode() != ModeZoomRect || c.ActiveView() != 0 {
		t.Fatalf("after ButtonDown: expected ZoomRect on view 0, got mode=%v view=%d", c.Mode(), c.ActiveView())
	}

	c.Handle(MotionEvent(60, 60), s)
	// Motion only tracks the rubber band; nothing is applied yet
	if view.Zoom != 1 || view.Pan != (geometry.Vector2{}) {
		t.Fatalf("motion must not mutate the view, got zoom=%v pan=%+v", view.Zoom, view.Pan)
	}
	if rect, ok := c.ZoomRect(s); !ok || rect != geometry.NewRect(10, 10, 50, 50) {
		t.Errorf("rubber band: expected {10 10 50 50}, got %+v ok=%v", rect, ok)
	}

	c.Handle(ButtonUpEvent(60, 60, ButtonLeft), s)
	if c.Mode() != ModeIdle {
		t.Errorf("after ButtonUp: expected Idle, got %v", c.Mode())
	}
	if view.Zoom != 2 {
		t.Errorf("zoom: expected 2, got %v", view.Zoom)
	}
	// Volume point (35,35) now maps to the canvas center (50,50)
	approxVec(t, "pan", view.Pan, geometry.NewVector2(-20, -20))
	approxVec(t, "center mapping", view.ToScreen(geometry.NewVector2(35, 35)), geometry.NewVector2(50, 50))
}

func TestZoomRectNonSquareFitsSmallerScale(t *testing.T) {
	s := gestureSession(t)
	view := s.Views[0]
	view.ToggleZoomMode()
	c := s.Controller

	c.Handle(ButtonDownEvent(0, 0, ButtonLeft), s)
	c.Handle(MotionEvent(50, 25), s)
	c.Handle(ButtonUpEvent(50, 25, ButtonLeft), s)

	// Rect is 50x25 in volume space; zoom fits the larger side: min(100/50, 100/25) = 2
	if view.Zoom != 2 {
		t.Errorf("zoom: expected 2, got %v", view.Zoom)
	}
}

func TestZoomRectBelowThresholdDiscarded(t *testing.T) {
	s := gestureSession(t)
	view := s.Views[0]
	view.ToggleZoomMode()
	c := s.Controller

	// 50px wide but only 5px tall: below the 10px minimum in one dimension
	c.Handle(ButtonDownEvent(10, 10, ButtonLeft), s)
	c.Handle(MotionEvent(60, 15), s)
	c.Handle(ButtonUpEvent(60, 15, ButtonLeft), s)

	if c.Mode() != ModeIdle {
		t.Errorf("expected Idle after discard, got %v", c.Mode())
	}
	if view.Zoom != 1 || view.Pan != (geometry.Vector2{}) {
		t.Errorf("discarded gesture must not change the view, got zoom=%v pan=%+v", view.Zoom, view.Pan)
	}
}

func TestDragPanContinuousAndIdempotent(t *testing.T) {
	s := gestureSession(t)
	view := s.Views[0]
	view.ToggleDragMode()
	c := s.Controller

	c.Handle(ButtonDownEvent(100, 100, ButtonLeft), s)
	if c.Mode() != ModeDragPan {
		t.Fatalf("expected DragPan, got %v", c.Mode())
	}

	c.Handle(MotionEvent(120, 130), s)
	approxVec(t, "pan after motion", view.Pan, geometry.NewVector2(20, 30))

	// The same motion again must not accumulate
	c.Handle(MotionEvent(120, 130), s)
	approxVec(t, "pan after repeated motion", view.Pan, geometry.NewVector2(20, 30))

	c.Handle(ButtonUpEvent(120, 130, ButtonLeft), s)
	if c.Mode() != ModeIdle {
		t.Errorf("expected Idle after release, got %v", c.Mode())
	}
	approxVec(t, "pan after release", view.Pan, geometry.NewVector2(20, 30))
}

func TestButtonDownDuringGestureIgnored(t *testing.T) {
	s := newTestSession(t, false, [3]int{100, 100, 4}, [3]int{100, 100, 4})
	s.Layout.Recompute(s.Views, s.Arena)
	s.Views[0].ToggleDragMode()
	s.Views[1].ToggleDragMode()
	c := s.Controller

	c.Handle(ButtonDownEvent(10, 10, ButtonLeft), s)
	if c.ActiveView() != 0 {
		t.Fatalf("expected gesture on view 0, got %d", c.ActiveView())
	}

	// Second press lands on view 1, but the live gesture keeps its view
	second := s.Layout.Rect(1).Origin()
	c.Handle(ButtonDownEvent(second.X+5, second.Y+5, ButtonLeft), s)
	if c.Mode() != ModeDragPan || c.ActiveView() != 0 {
		t.Errorf("press during gesture must be ignored, got mode=%v view=%d", c.Mode(), c.ActiveView())
	}
}

func TestClickWithoutModeIsIgnored(t *testing.T) {
	s := gestureSession(t)
	c := s.Controller

	c.Handle(ButtonDownEvent(10, 10, ButtonLeft), s)
	if c.Mode() != ModeIdle {
		t.Errorf("click with neither mode set must stay Idle, got %v", c.Mode())
	}
}

func TestNonPrimaryButtonIgnored(t *testing.T) {
	s := gestureSession(t)
	s.Views[0].ToggleZoomMode()
	c := s.Controller

	c.Handle(ButtonDownEvent(10, 10, ButtonRight), s)
	if c.Mode() != ModeIdle {
		t.Errorf("non-primary press must stay Idle, got %v", c.Mode())
	}
}

func TestClickOutsideViewsIgnored(t *testing.T) {
	s := gestureSession(t)
	s.Views[0].ToggleZoomMode()
	c := s.Controller

	c.Handle(ButtonDownEvent(500, 500, ButtonLeft), s)
	if c.Mode() != ModeIdle {
		t.Errorf("press outside every canvas must stay Idle, got %v", c.Mode())
	}
}

func TestKeyboardSliceNavigation(t *testing.T) {
	s := gestureSession(t)
	view := s.Views[0]
	c := s.Controller

	c.Handle(KeyPressEvent(KeyUp), s)
	if view.Slice != 1 {
		t.Errorf("slice after KeyUp: expected 1, got %d", view.Slice)
	}

	c.Handle(KeyPressEvent(KeyDown), s)
	c.Handle(KeyPressEvent(KeyDown), s)
	if view.Slice != 0 {
		t.Errorf("slice must clamp at 0, got %d", view.Slice)
	}

	for i := 0; i < 10; i++ {
		c.Handle(KeyPressEvent(KeyUp), s)
	}
	if view.Slice != 3 {
		t.Errorf("slice must clamp at depth-1 = 3, got %d", view.Slice)
	}
}

func TestKeyboardWindowLevel(t *testing.T) {
	s := gestureSession(t)
	ds := s.Dataset(0)
	c := s.Controller

	// Values are 1..n, so delta = 0.05 * (max-min)
	delta := 0.05 * (ds.GlobalMax() - ds.GlobalMin())
	min0, max0 := ds.Window()

	c.Handle(CharEvent('+'), s)
	min, max := ds.Window()
	if min != min0-delta || max != max0+delta {
		t.Errorf("window after '+': expected (%v, %v), got (%v, %v)", min0-delta, max0+delta, min, max)
	}

	c.Handle(CharEvent('-'), s)
	min, max = ds.Window()
	// Widen-then-narrow restores the bounds up to float32 rounding
	if math32.Abs(min-min0) > 0.01 || math32.Abs(max-max0) > 0.01 {
		t.Errorf("window after '-': expected restored (%v, %v), got (%v, %v)", min0, max0, min, max)
	}

	ds.SetWindow(3, 4)
	c.Handle(CharEvent('r'), s)
	min, max = ds.Window()
	if min != ds.GlobalMin() || max != ds.GlobalMax() {
		t.Errorf("window after 'r': expected global extrema, got (%v, %v)", min, max)
	}
}

func TestKeyboardTargetsHotView(t *testing.T) {
	s := newTestSession(t, false, [3]int{100, 100, 4}, [3]int{100, 100, 4})
	s.Layout.Recompute(s.Views, s.Arena)
	c := s.Controller

	second := s.Layout.Rect(1).Origin()
	c.Handle(MotionEvent(second.X+5, second.Y+5), s)
	c.Handle(KeyPressEvent(KeyUp), s)

	if s.Views[0].Slice != 0 {
		t.Errorf("view 0 slice: expected untouched 0, got %d", s.Views[0].Slice)
	}
	if s.Views[1].Slice != 1 {
		t.Errorf("view 1 slice: expected 1, got %d", s.Views[1].Slice)
	}
}

func TestViewsStayIndependent(t *testing.T) {
	s := newTestSession(t, false, [3]int{100, 100, 4}, [3]int{100, 100, 4})
	s.Layout.Recompute(s.Views, s.Arena)
	s.Views[0].ToggleDragMode()
	c := s.Controller

	c.Handle(ButtonDownEvent(10, 10, ButtonLeft), s)
	c.Handle(MotionEvent(40, 50), s)
	c.Handle(ButtonUpEvent(40, 50, ButtonLeft), s)
	s.SetWindow(0, 2, 3)

	b := s.Views[1]
	if b.Zoom != 1 || b.Pan != (geometry.Vector2{}) {
		t.Errorf("view 1 transform: expected untouched, got zoom=%v pan=%+v", b.Zoom, b.Pan)
	}
	if min, max := s.Dataset(1).Window(); min == 2 && max == 3 {
		t.Error("dataset 1 window must be independent of view 0")
	}
}
