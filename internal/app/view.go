package app

import (
	"github.com/philipparndt/voxview/pkg/geometry"
	"github.com/philipparndt/voxview/pkg/slicing"
	"github.com/philipparndt/voxview/pkg/volume"
)

// ViewState holds the per-dataset view parameters: which slice of which
// plane is shown, and the affine transform placing the slice on the canvas.
//
// The view transform is screen = volume*Zoom + Pan per axis, with the
// inverse volume = (screen - Pan) / Zoom. Zoom is always > 0.
type ViewState struct {
	Dataset volume.Handle

	Plane slicing.Plane
	Slice int

	Zoom float32
	Pan  geometry.Vector2

	// Canvas is the unzoomed screen rectangle of the view, recomputed by
	// the layout before every event and render pass. Zoom and pan are
	// applied by the transform inside this rectangle, never to the
	// rectangle itself.
	Canvas geometry.Rect

	zoomMode bool
	dragMode bool
}

// NewViewState creates a view over a dataset, showing the first XY slice at
// zoom 1 with no pan.
func NewViewState(h volume.Handle) *ViewState {
	return &ViewState{
		Dataset: h,
		Plane:   slicing.PlaneXY,
		Slice:   0,
		Zoom:    1,
	}
}

// ToScreen converts a canvas-local volume coordinate to canvas-local screen
// pixels.
func (v *ViewState) ToScreen(p geometry.Vector2) geometry.Vector2 {
	return p.Mul(v.Zoom).Add(v.Pan)
}

// ToVolume converts canvas-local screen pixels back to slice coordinates.
func (v *ViewState) ToVolume(p geometry.Vector2) geometry.Vector2 {
	return p.Sub(v.Pan).Div(v.Zoom)
}

// SetPlane switches the slice orientation. The slice index is reclamped
// into the new plane's depth range, and zoom and pan reset to a full-frame
// view of the new plane.
func (v *ViewState) SetPlane(p slicing.Plane, ds *volume.Dataset) {
	v.Plane = p
	v.Slice = slicing.ClampSlice(ds, p, v.Slice)
	v.Zoom = 1
	v.Pan = geometry.Vector2{}
}

// SetSlice moves to another slice of the current plane, clamped into range.
func (v *ViewState) SetSlice(slice int, ds *volume.Dataset) {
	v.Slice = slicing.ClampSlice(ds, v.Plane, slice)
}

// ZoomMode reports whether the next canvas gesture starts a zoom rectangle
func (v *ViewState) ZoomMode() bool { return v.zoomMode }

// DragMode reports whether the next canvas gesture starts a drag-pan
func (v *ViewState) DragMode() bool { return v.dragMode }

// ToggleZoomMode flips zoom mode. Zoom and drag mode are mutually
// exclusive; enabling one clears the other.
func (v *ViewState) ToggleZoomMode() {
	v.zoomMode = !v.zoomMode
	if v.zoomMode {
		v.dragMode = false
	}
}

// ToggleDragMode flips drag mode, clearing zoom mode when enabled
func (v *ViewState) ToggleDragMode() {
	v.dragMode = !v.dragMode
	if v.dragMode {
		v.zoomMode = false
	}
}
