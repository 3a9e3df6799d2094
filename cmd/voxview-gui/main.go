package main

import (
	"fmt"
	"image"
	"os"
	"strconv"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/voxview/internal/app"
	"github.com/philipparndt/voxview/pkg/config"
	"github.com/philipparndt/voxview/pkg/slicing"
	"github.com/philipparndt/voxview/pkg/volume"
)

// Fyne front-end for the slicing engine. The engine renders into its
// framebuffer exactly as in the raylib binary; this presenter shows each
// view's canvas rectangle as an image widget and feeds widget mouse events
// back as normalized engine events.

type gui struct {
	session *app.Session
	fb      *app.Framebuffer
	views   []*sliceView
	sliders []*widget.Slider
}

func main() {
	session, err := sessionFromArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "usage: voxview-gui [--sync] <file nx ny nz> [...]")
		os.Exit(1)
	}

	a := fyneapp.New()
	w := a.NewWindow(session.Config.Window.Title)

	g := &gui{session: session}
	g.resizeFramebuffer()

	columns := make([]fyne.CanvasObject, 0, len(session.Views))
	for i := range session.Views {
		columns = append(columns, g.makeColumn(i))
	}
	g.render()

	w.SetContent(container.NewHBox(columns...))
	w.ShowAndRun()
}

// sessionFromArgs parses positional volume quadruples: file nx ny nz
func sessionFromArgs(args []string) (*app.Session, error) {
	sync := false
	if len(args) > 0 && args[0] == "--sync" {
		sync = true
		args = args[1:]
	}
	if len(args) == 0 || len(args)%4 != 0 {
		return nil, fmt.Errorf("expected groups of 4 arguments: file nx ny nz")
	}

	arena := volume.NewArena()
	for i := 0; i < len(args); i += 4 {
		dims := [3]int{}
		for d := 0; d < 3; d++ {
			v, err := strconv.Atoi(args[i+1+d])
			if err != nil {
				return nil, fmt.Errorf("invalid dimension %q: %w", args[i+1+d], err)
			}
			dims[d] = v
		}
		ds, err := volume.Load(args[i], dims[0], dims[1], dims[2])
		if err != nil {
			return nil, err
		}
		arena.Add(ds)
	}

	return app.NewSession(arena, config.DefaultConfig(), sync), nil
}

// resizeFramebuffer sizes the shared framebuffer to cover the layout
func (g *gui) resizeFramebuffer() {
	g.session.Layout.Recompute(g.session.Views, g.session.Arena)

	width, height := 1, 1
	for i := range g.session.Views {
		r := g.session.Layout.Rect(i)
		if x := int(r.X + r.Width); x > width {
			width = x
		}
		if y := int(r.Y + r.Height); y > height {
			height = y
		}
	}

	if g.fb == nil {
		g.fb = app.NewFramebuffer(width, height)
	} else if g.fb.Width() != width || g.fb.Height() != height {
		g.fb.Resize(width, height)
	}
}

// render repaints the framebuffer and refreshes every view widget
func (g *gui) render() {
	g.session.Layout.Recompute(g.session.Views, g.session.Arena)
	app.RenderFrame(g.fb, g.session)
	for _, v := range g.views {
		v.refresh()
	}
}

// makeColumn builds the canvas widget and control column for view i
func (g *gui) makeColumn(i int) fyne.CanvasObject {
	session := g.session
	view := session.Views[i]
	ds := session.Dataset(i)

	sv := newSliceView(g, i)
	g.views = append(g.views, sv)

	minEntry := widget.NewEntry()
	maxEntry := widget.NewEntry()
	minEntry.SetPlaceHolder("window min")
	maxEntry.SetPlaceHolder("window max")
	applyWindow := func(string) {
		min, errMin := strconv.ParseFloat(minEntry.Text, 32)
		max, errMax := strconv.ParseFloat(maxEntry.Text, 32)
		if errMin != nil || errMax != nil {
			// Invalid input retains the previous window
			return
		}
		session.SetWindow(i, float32(min), float32(max))
		g.render()
	}
	minEntry.OnSubmitted = applyWindow
	maxEntry.OnSubmitted = applyWindow

	slider := widget.NewSlider(0, float64(slicing.Depth(ds, view.Plane)-1))
	slider.Step = 1
	slider.OnChanged = func(v float64) {
		view.SetSlice(int(v), session.Dataset(i))
		g.render()
	}
	g.sliders = append(g.sliders, slider)

	planes := widget.NewRadioGroup([]string{"XY", "XZ", "YZ"}, func(sel string) {
		for p := slicing.PlaneXY; p <= slicing.PlaneYZ; p++ {
			if p.String() == sel {
				view.SetPlane(p, session.Dataset(i))
			}
		}
		slider.Max = float64(slicing.Depth(session.Dataset(i), view.Plane) - 1)
		slider.SetValue(float64(view.Slice))
		g.resizeFramebuffer()
		g.render()
	})
	planes.SetSelected("XY")
	planes.Horizontal = true

	zoomBtn := widget.NewButton("Zoom", func() {
		view.ToggleZoomMode()
	})
	dragBtn := widget.NewButton("Drag", func() {
		view.ToggleDragMode()
	})

	controls := container.NewVBox(
		container.NewGridWithColumns(2, minEntry, maxEntry),
		container.NewGridWithColumns(2, zoomBtn, dragBtn),
		planes,
		slider,
	)

	return container.NewVBox(controls, sv)
}

// sliceView shows one view's canvas rectangle and forwards mouse input
type sliceView struct {
	widget.BaseWidget
	gui   *gui
	index int
	img   *canvas.Image
}

func newSliceView(g *gui, index int) *sliceView {
	sv := &sliceView{gui: g, index: index}
	sv.img = canvas.NewImageFromImage(sv.subImage())
	sv.img.FillMode = canvas.ImageFillOriginal
	sv.ExtendBaseWidget(sv)
	return sv
}

func (sv *sliceView) subImage() image.Image {
	r := sv.gui.session.Layout.Rect(sv.index)
	rect := image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))
	return sv.gui.fb.RGBA().SubImage(rect)
}

func (sv *sliceView) refresh() {
	sv.img.Image = sv.subImage()
	sv.img.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (sv *sliceView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sv.img)
}

// engineEvent translates a widget-local position to engine screen space
func (sv *sliceView) enginePos(p fyne.Position) (x, y float32) {
	r := sv.gui.session.Layout.Rect(sv.index)
	return r.X + p.X, r.Y + p.Y
}

func (sv *sliceView) dispatch(ev app.Event) {
	session := sv.gui.session
	session.Layout.Recompute(session.Views, session.Arena)
	session.Controller.Handle(ev, session)
	sv.gui.render()
}

// MouseDown starts a gesture on this view
func (sv *sliceView) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := sv.enginePos(e.Position)
	sv.dispatch(app.ButtonDownEvent(x, y, app.ButtonLeft))
}

// MouseUp finishes the gesture
func (sv *sliceView) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	x, y := sv.enginePos(e.Position)
	sv.dispatch(app.ButtonUpEvent(x, y, app.ButtonLeft))
}

// MouseIn implements desktop.Hoverable
func (sv *sliceView) MouseIn(e *desktop.MouseEvent) {}

// MouseMoved forwards pointer motion while hovering or dragging
func (sv *sliceView) MouseMoved(e *desktop.MouseEvent) {
	x, y := sv.enginePos(e.Position)
	sv.dispatch(app.MotionEvent(x, y))
}

// MouseOut implements desktop.Hoverable
func (sv *sliceView) MouseOut() {}
