package navigation

import (
	"math"
	"time"

	"blockfolio/internal/domain"
)

// Default tuning constants
const (
	DefaultWheelThreshold     = 50.0
	DefaultSwipeThreshold     = 50.0
	DefaultMaxSwipeTime       = 300 * time.Millisecond
	DefaultTransitionDuration = 800 * time.Millisecond
)

// Options tunes the input-to-index policy
type Options struct {
	WheelThreshold float64
	SwipeThreshold float64
	// MaxSwipeTime is the velocity gate; swipes taking this long or longer are
	// ignored. A negative value disables the gate.
	MaxSwipeTime       time.Duration
	TransitionDuration time.Duration
}

// DefaultOptions returns the standard navigation tuning
func DefaultOptions() Options {
	return Options{
		WheelThreshold:     DefaultWheelThreshold,
		SwipeThreshold:     DefaultSwipeThreshold,
		MaxSwipeTime:       DefaultMaxSwipeTime,
		TransitionDuration: DefaultTransitionDuration,
	}
}

// MinTransitionDuration is the shortest transition the controller runs
const MinTransitionDuration = time.Millisecond

func (o Options) normalized() Options {
	d := DefaultOptions()
	if !positive(o.WheelThreshold) {
		o.WheelThreshold = d.WheelThreshold
	}
	if !positive(o.SwipeThreshold) {
		o.SwipeThreshold = d.SwipeThreshold
	}
	if o.MaxSwipeTime == 0 {
		o.MaxSwipeTime = d.MaxSwipeTime
	}
	if o.TransitionDuration <= 0 {
		o.TransitionDuration = d.TransitionDuration
	} else if o.TransitionDuration < MinTransitionDuration {
		o.TransitionDuration = MinTransitionDuration
	}
	return o
}

// positive rejects NaN and infinities along with non-positive values
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// State is a snapshot of the navigation state machine
type State struct {
	ActiveIndex       int
	TargetIndex       int
	CameraPosition    float64
	IsTransitioning   bool
	ScrollAccumulator float64
}

// FocusIndex returns the entry nearest to the camera
func (s State) FocusIndex() int {
	return int(math.Round(s.CameraPosition))
}

// Distance returns how far entry i is from the camera
func (s State) Distance(i int) float64 {
	return float64(i) - s.CameraPosition
}

// NavigationState is the name consumers use for State
type NavigationState = State

// Source re-exports the input producers
type Source = domain.InputSource

const (
	SourceDirect = domain.SourceDirect
	SourceWheel  = domain.SourceWheel
	SourceSwipe  = domain.SourceSwipe
)

// EaseInOutCubic maps linear progress in [0,1] onto the easing curve
func EaseInOutCubic(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 3)/2
}
