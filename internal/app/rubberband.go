package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/voxview/pkg/geometry"
)

// drawRubberBand renders the live zoom rectangle on top of the frame
func drawRubberBand(rect geometry.Rect) {
	r := boundsToRl(rect)

	// Semi-transparent fill with a solid border
	rl.DrawRectangleRec(r, rl.NewColor(100, 150, 255, 50))
	rl.DrawRectangleLinesEx(r, 2, rl.NewColor(100, 150, 255, 200))
}
