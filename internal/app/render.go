package app

import (
	"github.com/chewxy/math32"
	"github.com/philipparndt/voxview/pkg/colormap"
	"github.com/philipparndt/voxview/pkg/geometry"
	"github.com/philipparndt/voxview/pkg/slicing"
)

// RenderView paints one view's slice into the framebuffer at the view's
// canvas rectangle. Each canvas pixel is mapped through the inverse view
// transform to a volume coordinate, sampled nearest-voxel, and windowed to
// a grey level. Pixels that land outside the slice sample as 0 and come
// out black, which paints the border revealed by panning or zooming out.
func RenderView(fb *Framebuffer, s *Session, i int) {
	view := s.Views[i]
	ds := s.Dataset(i)

	var mapper colormap.Mapper
	mapper.SetWindow(ds.Window())

	rect := view.Canvas
	w := int(rect.Width)
	h := int(rect.Height)
	baseX := int(rect.X)
	baseY := int(rect.Y)

	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			p := view.ToVolume(geometry.NewVector2(float32(cx), float32(cy)))
			u := int(math32.Floor(p.X))
			v := int(math32.Floor(p.Y))

			val := slicing.VoxelAt(ds, view.Plane, view.Slice, u, v)
			fb.SetGray(baseX+cx, baseY+cy, mapper.Map(val))
		}
	}
}

// RenderFrame clears the framebuffer and renders every view into it.
// The layout must have been recomputed for this frame before calling.
func RenderFrame(fb *Framebuffer, s *Session) {
	fb.Clear(s.Config.Render.Background)
	for i := range s.Views {
		RenderView(fb, s, i)
	}
}
