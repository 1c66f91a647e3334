package ui

import "time"

// frameMsg drives the camera while a transition runs
type frameMsg time.Time

// loadingTickMsg advances the intro progress bar
type loadingTickMsg time.Time

// hashTickMsg rotates the intro hash ticker
type hashTickMsg time.Time

// pagerMsg contains the result of an ov pager session
type pagerMsg struct {
	what string
	err  error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
