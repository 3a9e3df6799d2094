package app

import (
	"strconv"

	"github.com/philipparndt/voxview/pkg/geometry"
	"github.com/philipparndt/voxview/pkg/slicing"
)

// viewChrome groups the toolbar widgets of one view
type viewChrome struct {
	minInput *TextInput
	maxInput *TextInput
	zoomBtn  *ToggleButton
	dragBtn  *ToggleButton
	radios   [3]*RadioButton
	scroll   *Scrollbar

	// last window texts applied, so keyboard window changes are not
	// overwritten every frame by an unchanged text field
	appliedMin string
	appliedMax string
}

// chrome owns the widget chrome for all views
type chrome struct {
	views []*viewChrome
}

func newChrome(s *Session) *chrome {
	c := &chrome{}
	for i := range s.Views {
		ds := s.Dataset(i)
		vc := &viewChrome{
			minInput: &TextInput{},
			maxInput: &TextInput{},
			zoomBtn:  &ToggleButton{Label: "Zoom"},
			dragBtn:  &ToggleButton{Label: "Drag"},
			scroll:   &Scrollbar{},
		}
		for p, name := range [3]string{"XY", "XZ", "YZ"} {
			vc.radios[p] = &RadioButton{Label: name, Selected: p == 0}
		}
		vc.scroll.SetRange(0, slicing.Depth(ds, s.Views[i].Plane)-1)
		c.views = append(c.views, vc)
	}
	return c
}

// position assigns widget bounds for this frame: a toolbar row per view
// above its canvas, the scrollbar in the reserved column beside it.
func (c *chrome) position(s *Session) {
	for i, vc := range c.views {
		canvas := s.Layout.Rect(i)
		x := canvas.X
		y := float32(5)

		vc.minInput.Bounds = geometry.NewRect(x, y, inputWidth, widgetHeight)
		vc.maxInput.Bounds = geometry.NewRect(x+inputWidth+widgetSpacing, y, inputWidth, widgetHeight)

		row2 := y + widgetHeight + widgetSpacing
		vc.zoomBtn.Bounds = geometry.NewRect(x, row2, buttonWidth, widgetHeight)
		vc.dragBtn.Bounds = geometry.NewRect(x+buttonWidth+widgetSpacing, row2, buttonWidth, widgetHeight)

		rx := x + 2*(buttonWidth+widgetSpacing) + widgetSpacing
		for p, radio := range vc.radios {
			radio.Center = geometry.NewVector2(rx+float32(p)*48, row2+widgetHeight/2)
		}

		vc.scroll.Bounds = s.Layout.ScrollbarRect(i)

		vc.zoomBtn.On = s.Views[i].ZoomMode()
		vc.dragBtn.On = s.Views[i].DragMode()
		vc.scroll.Value = s.Views[i].Slice
		for p, radio := range vc.radios {
			radio.Selected = s.Views[i].Plane == slicing.Plane(p)
		}
	}
}

// handle offers an event to the widgets, view by view in layout order, and
// reports whether one of them claimed it. Widget effects go straight onto
// the session through the view index.
func (c *chrome) handle(ev Event, s *Session) bool {
	for i, vc := range c.views {
		view := s.Views[i]
		ds := s.Dataset(i)

		if vc.minInput.HandleEvent(ev) || vc.maxInput.HandleEvent(ev) {
			return true
		}
		if vc.zoomBtn.HandleEvent(ev) {
			view.ToggleZoomMode()
			return true
		}
		if vc.dragBtn.HandleEvent(ev) {
			view.ToggleDragMode()
			return true
		}
		for p, radio := range vc.radios {
			if radio.HandleEvent(ev) {
				view.SetPlane(slicing.Plane(p), ds)
				vc.scroll.SetRange(0, slicing.Depth(ds, view.Plane)-1)
				view.SetSlice(vc.scroll.Value, ds)
				return true
			}
		}
		if vc.scroll.HandleEvent(ev) {
			view.SetSlice(vc.scroll.Value, ds)
			return true
		}
	}
	return false
}

// applyWindows recomputes contrast windows from the text inputs. A field
// only takes effect once both bounds parse and the text actually changed;
// unparsable input silently retains the previous window.
func (c *chrome) applyWindows(s *Session) {
	for i, vc := range c.views {
		if vc.minInput.Text == vc.appliedMin && vc.maxInput.Text == vc.appliedMax {
			continue
		}
		min, errMin := strconv.ParseFloat(vc.minInput.Text, 32)
		max, errMax := strconv.ParseFloat(vc.maxInput.Text, 32)
		if errMin != nil || errMax != nil {
			continue
		}
		s.SetWindow(i, float32(min), float32(max))
		vc.appliedMin = vc.minInput.Text
		vc.appliedMax = vc.maxInput.Text
	}
}

// draw renders all widget chrome; called inside the drawing pass, after
// the framebuffer blit.
func (c *chrome) draw() {
	for _, vc := range c.views {
		vc.minInput.Draw()
		vc.maxInput.Draw()
		vc.zoomBtn.Draw()
		vc.dragBtn.Draw()
		for _, radio := range vc.radios {
			radio.Draw()
		}
		vc.scroll.Draw()
	}
}
