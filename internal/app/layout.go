package app

import (
	"github.com/philipparndt/voxview/pkg/config"
	"github.com/philipparndt/voxview/pkg/geometry"
	"github.com/philipparndt/voxview/pkg/slicing"
	"github.com/philipparndt/voxview/pkg/volume"
)

// Layout places the views on screen: left-to-right under a fixed toolbar
// band, each view preceded by its scrollbar column. Canvas rectangles use
// the unzoomed plane dimensions; zoom and pan act inside the view
// transform, not on the rectangle.
//
// Recompute must run before each event pass and before each render pass so
// that both work on the same snapshot for a frame.
type Layout struct {
	cfg   *config.Config
	rects []geometry.Rect
}

// NewLayout creates a layout using the given configuration
func NewLayout(cfg *config.Config) *Layout {
	return &Layout{cfg: cfg}
}

// Recompute recalculates every view's canvas rectangle from its current
// plane and stores the result both in the layout and on the views.
func (l *Layout) Recompute(views []*ViewState, arena *volume.Arena) {
	l.rects = l.rects[:0]

	x := l.cfg.Layout.ScrollbarWidth
	y := l.cfg.Layout.ToolbarHeight + l.cfg.Layout.ViewSpacing

	for _, view := range views {
		ds := arena.Get(view.Dataset)
		w, h := slicing.CanvasDims(ds, view.Plane)

		rect := geometry.NewRect(float32(x), float32(y), float32(w), float32(h))
		l.rects = append(l.rects, rect)
		view.Canvas = rect

		x += w + l.cfg.Layout.ViewSpacing + l.cfg.Layout.ScrollbarWidth
	}
}

// Rect returns the canvas rectangle of view i from the current snapshot
func (l *Layout) Rect(i int) geometry.Rect {
	return l.rects[i]
}

// ScrollbarRect returns the scrollbar column to the left of view i
func (l *Layout) ScrollbarRect(i int) geometry.Rect {
	r := l.rects[i]
	return geometry.NewRect(r.X-float32(l.cfg.Layout.ScrollbarWidth), r.Y,
		float32(l.cfg.Layout.ScrollbarWidth), r.Height)
}

// HitTest resolves a screen point to the first view whose canvas contains
// it, in layout order, along with the canvas-local coordinate. ok is false
// when the point lies outside every canvas.
func (l *Layout) HitTest(p geometry.Vector2) (view int, local geometry.Vector2, ok bool) {
	for i, r := range l.rects {
		if r.Contains(p) {
			return i, r.Local(p), true
		}
	}
	return 0, geometry.Vector2{}, false
}
