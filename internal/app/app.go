package app

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the window and drives the frame loop until close: drain input
// (widgets first, then the gesture controller), recompute contrast windows
// from the text fields, recompute the layout, render all views into the
// shared framebuffer, present, and let raylib's FPS cap pace the loop.
// Everything runs on the single UI goroutine.
func Run(s *Session) {
	cfg := s.Config

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Render.TargetFPS))
	defer rl.CloseWindow()

	fb := NewFramebuffer(cfg.Window.Width, cfg.Window.Height)
	blit := newBlitter(fb)
	defer blit.unload()

	ui := newChrome(s)
	input := &inputState{}

	for i := range s.Views {
		stats := s.Dataset(i).Stats()
		fmt.Printf("volume %d: %dx%dx%d  min=%g max=%g mean=%.3f stddev=%.3f\n",
			i, s.Dataset(i).Nx(), s.Dataset(i).Ny(), s.Dataset(i).Nz(),
			stats.Min, stats.Max, stats.Mean, stats.StdDev)
	}

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			fb.Resize(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
			blit.resize(fb)
		}

		// Event pass: one layout snapshot for widget hit-testing and
		// gesture resolution
		s.Layout.Recompute(s.Views, s.Arena)
		ui.position(s)

		for _, ev := range input.poll() {
			if ui.handle(ev, s) {
				continue
			}
			s.Controller.Handle(ev, s)
		}

		ui.applyWindows(s)

		// Render pass: plane switches during the event pass may have
		// changed canvas sizes, so take a fresh snapshot
		s.Layout.Recompute(s.Views, s.Arena)
		ui.position(s)

		RenderFrame(fb, s)

		rl.BeginDrawing()
		blit.present(fb)
		ui.draw()
		if rect, ok := s.Controller.ZoomRect(s); ok {
			drawRubberBand(rect)
		}
		rl.EndDrawing()
	}
}

// blitter uploads the framebuffer into a streaming texture each frame
type blitter struct {
	texture rl.Texture2D
	pixels  []color.RGBA
}

func newBlitter(fb *Framebuffer) *blitter {
	b := &blitter{}
	b.alloc(fb)
	return b
}

func (b *blitter) alloc(fb *Framebuffer) {
	img := rl.GenImageColor(fb.Width(), fb.Height(), rl.Black)
	b.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	b.pixels = make([]color.RGBA, fb.Width()*fb.Height())
}

func (b *blitter) resize(fb *Framebuffer) {
	rl.UnloadTexture(b.texture)
	b.alloc(fb)
}

func (b *blitter) present(fb *Framebuffer) {
	data := fb.Data()
	for i := range b.pixels {
		b.pixels[i] = color.RGBA{
			R: data[i*4+0],
			G: data[i*4+1],
			B: data[i*4+2],
			A: data[i*4+3],
		}
	}
	rl.UpdateTexture(b.texture, b.pixels)
	rl.DrawTexture(b.texture, 0, 0, rl.White)
}

func (b *blitter) unload() {
	rl.UnloadTexture(b.texture)
}
