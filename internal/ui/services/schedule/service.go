// Package schedule issues cancellable delayed callbacks for the Bubble Tea loop.
package schedule

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Handle identifies one scheduled callback
type Handle uint64

// Purpose groups callbacks so they can be replaced as a family
type Purpose string

const (
	PurposeToast   Purpose = "toast"
	PurposeLoading Purpose = "loading"
)

// FiredMsg is delivered when a scheduled delay elapses
type FiredMsg struct {
	Handle  Handle
	Purpose Purpose
}

// Scheduler tracks live handles; a fired message only counts while its handle is live
type Scheduler struct {
	mu   sync.Mutex
	next Handle
	live map[Handle]Purpose
}

// NewScheduler creates an empty scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{live: make(map[Handle]Purpose)}
}

// After returns a handle and the command that fires it after d
func (s *Scheduler) After(d time.Duration, purpose Purpose) (Handle, tea.Cmd) {
	s.mu.Lock()
	s.next++
	h := s.next
	s.live[h] = purpose
	s.mu.Unlock()

	return h, tea.Tick(d, func(time.Time) tea.Msg {
		return FiredMsg{Handle: h, Purpose: purpose}
	})
}

// Replace cancels every live handle with the same purpose, then schedules a new one
func (s *Scheduler) Replace(d time.Duration, purpose Purpose) (Handle, tea.Cmd) {
	s.mu.Lock()
	for h, p := range s.live {
		if p == purpose {
			delete(s.live, h)
		}
	}
	s.mu.Unlock()
	return s.After(d, purpose)
}

// Cancel makes a pending callback a no-op
func (s *Scheduler) Cancel(h Handle) {
	s.mu.Lock()
	delete(s.live, h)
	s.mu.Unlock()
}

// CancelAll drops every pending callback
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	s.live = make(map[Handle]Purpose)
	s.mu.Unlock()
}

// Pending reports how many callbacks are still live
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

// Accept consumes a fired message, reporting whether it is still live
func (s *Scheduler) Accept(msg FiredMsg) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.live[msg.Handle]; !ok {
		return false
	}
	delete(s.live, msg.Handle)
	return true
}
