package app

import "image"

// Framebuffer is the shared RGBA pixel buffer all views render into once
// per frame. The presenter blits it to the display surface.
type Framebuffer struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewFramebuffer creates a framebuffer with the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the framebuffer
func (f *Framebuffer) Width() int { return f.width }

// Height returns the height of the framebuffer
func (f *Framebuffer) Height() int { return f.height }

// Data returns the raw pixel data (RGBA format)
func (f *Framebuffer) Data() []uint8 { return f.data }

// Resize reallocates the buffer for a new window size. Contents are
// undefined afterwards; the next frame repaints everything.
func (f *Framebuffer) Resize(width, height int) {
	f.width = width
	f.height = height
	f.data = make([]uint8, width*height*4)
}

// SetGray writes an opaque grey pixel, silently dropping out-of-bounds
// writes so view rectangles may be clipped by the window edge.
func (f *Framebuffer) SetGray(x, y int, intensity uint8) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.data[i+0] = intensity
	f.data[i+1] = intensity
	f.data[i+2] = intensity
	f.data[i+3] = 255
}

// Gray reads back the red channel of a pixel; 0 outside the buffer
func (f *Framebuffer) Gray(x, y int) uint8 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.data[(y*f.width+x)*4]
}

// Clear fills the whole buffer with an opaque grey level
func (f *Framebuffer) Clear(intensity uint8) {
	for i := 0; i < len(f.data); i += 4 {
		f.data[i+0] = intensity
		f.data[i+1] = intensity
		f.data[i+2] = intensity
		f.data[i+3] = 255
	}
}

// RGBA wraps the buffer as an image without copying, for presenters that
// consume image.Image.
func (f *Framebuffer) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    f.data,
		Stride: f.width * 4,
		Rect:   image.Rect(0, 0, f.width, f.height),
	}
}
