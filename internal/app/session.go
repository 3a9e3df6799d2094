package app

import (
	"github.com/philipparndt/voxview/pkg/config"
	"github.com/philipparndt/voxview/pkg/volume"
)

// Session owns all engine state for one run: the dataset arena, one view
// per dataset, the layout, and the gesture controller. Everything here is
// mutated only by the single UI goroutine.
type Session struct {
	Arena  *volume.Arena
	Views  []*ViewState
	Layout *Layout

	Controller *Controller

	// SyncWindows mirrors every contrast window change onto all datasets
	SyncWindows bool

	Config *config.Config
}

// NewSession builds a session with one view per dataset in the arena
func NewSession(arena *volume.Arena, cfg *config.Config, syncWindows bool) *Session {
	s := &Session{
		Arena:       arena,
		Layout:      NewLayout(cfg),
		Controller:  NewController(),
		SyncWindows: syncWindows,
		Config:      cfg,
	}
	for i := 0; i < arena.Len(); i++ {
		s.Views = append(s.Views, NewViewState(volume.Handle(i)))
	}
	s.Layout.Recompute(s.Views, arena)
	return s
}

// Dataset resolves the dataset shown by view i through the arena
func (s *Session) Dataset(i int) *volume.Dataset {
	return s.Arena.Get(s.Views[i].Dataset)
}

// SetWindow applies a contrast window to the dataset of view i, or to all
// datasets when window synchronization is on.
func (s *Session) SetWindow(i int, min, max float32) {
	if s.SyncWindows {
		for h := 0; h < s.Arena.Len(); h++ {
			s.Arena.Get(volume.Handle(h)).SetWindow(min, max)
		}
		return
	}
	s.Dataset(i).SetWindow(min, max)
}

// ResetWindow restores the window of view i's dataset to its global
// extrema, or of every dataset when synchronization is on.
func (s *Session) ResetWindow(i int) {
	if s.SyncWindows {
		for h := 0; h < s.Arena.Len(); h++ {
			s.Arena.Get(volume.Handle(h)).ResetWindow()
		}
		return
	}
	s.Dataset(i).ResetWindow()
}
