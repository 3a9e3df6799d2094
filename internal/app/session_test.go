package app

import (
	"testing"

	"github.com/philipparndt/voxview/pkg/config"
	"github.com/philipparndt/voxview/pkg/geometry"
	"github.com/philipparndt/voxview/pkg/volume"
)

// flatConfig zeroes the layout chrome so the first canvas sits at the
// origin and test coordinates read directly as canvas-local pixels.
func flatConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Layout.ToolbarHeight = 0
	cfg.Layout.ViewSpacing = 0
	cfg.Layout.ScrollbarWidth = 0
	return cfg
}

// newTestDataset builds a volume whose voxel values equal flat index + 1,
// so 0 only ever comes from out-of-range sampling.
func newTestDataset(t *testing.T, nx, ny, nz int) *volume.Dataset {
	t.Helper()
	values := make([]float32, nx*ny*nz)
	for i := range values {
		values[i] = float32(i + 1)
	}
	ds, err := volume.New(values, nx, ny, nz)
	if err != nil {
		t.Fatalf("building dataset: %v", err)
	}
	return ds
}

func newTestSession(t *testing.T, syncWindows bool, dims ...[3]int) *Session {
	t.Helper()
	arena := volume.NewArena()
	for _, d := range dims {
		arena.Add(newTestDataset(t, d[0], d[1], d[2]))
	}
	return NewSession(arena, flatConfig(), syncWindows)
}

func TestNewSessionOneViewPerDataset(t *testing.T) {
	s := newTestSession(t, false, [3]int{4, 4, 2}, [3]int{8, 8, 8})

	if len(s.Views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(s.Views))
	}
	for i, v := range s.Views {
		if int(v.Dataset) != i {
			t.Errorf("view %d: expected handle %d, got %d", i, i, v.Dataset)
		}
		if v.Zoom != 1 || v.Pan != (geometry.Vector2{}) {
			t.Errorf("view %d: expected zoom 1 and zero pan, got zoom=%v pan=%+v", i, v.Zoom, v.Pan)
		}
	}
}

func TestSetWindowIndependentViews(t *testing.T) {
	s := newTestSession(t, false, [3]int{4, 4, 2}, [3]int{4, 4, 2})

	s.SetWindow(0, 1, 2)

	if min, max := s.Dataset(0).Window(); min != 1 || max != 2 {
		t.Errorf("dataset 0 window: expected (1, 2), got (%v, %v)", min, max)
	}
	if min, max := s.Dataset(1).Window(); min == 1 && max == 2 {
		t.Error("dataset 1 window must not change without --sync")
	}
}

func TestSetWindowSynchronized(t *testing.T) {
	s := newTestSession(t, true, [3]int{4, 4, 2}, [3]int{4, 4, 2})

	s.SetWindow(0, 3, 9)

	for i := 0; i < 2; i++ {
		if min, max := s.Dataset(i).Window(); min != 3 || max != 9 {
			t.Errorf("dataset %d window: expected (3, 9), got (%v, %v)", i, min, max)
		}
	}

	s.ResetWindow(1)
	for i := 0; i < 2; i++ {
		ds := s.Dataset(i)
		if min, max := ds.Window(); min != ds.GlobalMin() || max != ds.GlobalMax() {
			t.Errorf("dataset %d window after synced reset: expected global extrema, got (%v, %v)", i, min, max)
		}
	}
}
