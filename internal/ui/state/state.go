package state

import (
	"time"

	"blockfolio/internal/ui/services/schedule"
	"blockfolio/internal/ui/views"
)

// AppState contains the UI state that is not owned by a service
type AppState struct {
	Screen views.Screen

	// Overlays
	ShowHelp    bool
	DetailOpen  bool
	DetailIndex int // block shown in the modal, pinned while it is open

	// Status bar
	StatusMessage string
	StatusKind    views.StatusKind
	toast         schedule.Handle

	// Mouse drag, zero when no button is down
	dragActive bool
	dragRow    int
	dragStart  time.Time

	// Set while an external pager owns the terminal
	InPager bool
}

// NewAppState creates a new application state
func NewAppState(intro bool) *AppState {
	s := &AppState{Screen: views.ScreenTimeline}
	if intro {
		s.Screen = views.ScreenLoading
	}
	return s
}

// SetStatus shows msg in the status bar under the given toast handle
func (s *AppState) SetStatus(msg string, kind views.StatusKind, h schedule.Handle) {
	s.StatusMessage = msg
	s.StatusKind = kind
	s.toast = h
}

// ClearStatus removes the message if h is still the toast that set it
func (s *AppState) ClearStatus(h schedule.Handle) bool {
	if h != s.toast {
		return false
	}
	s.StatusMessage = ""
	s.StatusKind = views.StatusInfo
	s.toast = 0
	return true
}

// Toast returns the handle of the toast currently shown
func (s *AppState) Toast() schedule.Handle {
	return s.toast
}

// StartDrag records where a mouse press began
func (s *AppState) StartDrag(row int, at time.Time) {
	s.dragActive = true
	s.dragRow = row
	s.dragStart = at
}

// EndDrag returns the start of the current drag and forgets it
func (s *AppState) EndDrag() (row int, start time.Time, ok bool) {
	if !s.dragActive {
		return 0, time.Time{}, false
	}
	s.dragActive = false
	return s.dragRow, s.dragStart, true
}

// OpenDetail pins index as the block shown in the modal
func (s *AppState) OpenDetail(index int) {
	s.DetailOpen = true
	s.DetailIndex = index
}

// CloseDetail hides the modal
func (s *AppState) CloseDetail() {
	s.DetailOpen = false
}
