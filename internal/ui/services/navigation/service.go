package navigation

import (
	"math"
	"time"

	"blockfolio/internal/eventbus"
)

// Controller turns wheel, swipe and direct requests into eased index transitions.
// It is not safe for concurrent use; the host event loop owns it.
type Controller struct {
	n     int
	opts  Options
	bus   eventbus.EventBus
	state State

	// transition bookkeeping
	startPosition float64
	startMs       float64
	started       bool // startMs has been anchored by a tick
	progress      float64
	committed     bool
}

// NewController creates a controller for a timeline of n entries
func NewController(n int, opts Options, bus eventbus.EventBus) *Controller {
	if n < 1 {
		n = 1
	}
	return &Controller{
		n:    n,
		opts: opts.normalized(),
		bus:  bus,
	}
}

// Len returns the number of entries
func (c *Controller) Len() int {
	return c.n
}

// Options returns the effective tuning
func (c *Controller) Options() Options {
	return c.opts
}

// State returns a snapshot of the current navigation state
func (c *Controller) State() State {
	return c.state
}

// RequestNavigate starts a transition to index, clamped to the timeline
func (c *Controller) RequestNavigate(index int) bool {
	return c.navigate(index, SourceDirect)
}

// Next moves one entry forward
func (c *Controller) Next() bool {
	return c.RequestNavigate(c.state.ActiveIndex + 1)
}

// Previous moves one entry back
func (c *Controller) Previous() bool {
	return c.RequestNavigate(c.state.ActiveIndex - 1)
}

// First moves to the first entry
func (c *Controller) First() bool {
	return c.RequestNavigate(0)
}

// Last moves to the final entry
func (c *Controller) Last() bool {
	return c.RequestNavigate(c.n - 1)
}

// OnWheel accumulates wheel delta and moves one entry once the threshold is crossed
func (c *Controller) OnWheel(deltaY float64) bool {
	if c.state.IsTransitioning || !finite(deltaY) {
		return false
	}

	c.state.ScrollAccumulator += deltaY
	if math.Abs(c.state.ScrollAccumulator) <= c.opts.WheelThreshold {
		return false
	}

	next := c.clamp(c.state.ActiveIndex + sign(c.state.ScrollAccumulator))
	c.state.ScrollAccumulator = 0
	if next == c.state.ActiveIndex {
		return false
	}
	return c.begin(next, SourceWheel)
}

// OnSwipe handles a single completed drag gesture
func (c *Controller) OnSwipe(deltaY, elapsedMs float64) bool {
	if c.state.IsTransitioning || !finite(deltaY) || !finite(elapsedMs) {
		return false
	}
	if gate := c.opts.MaxSwipeTime; gate >= 0 && elapsedMs >= millis(gate) {
		return false
	}
	if math.Abs(deltaY) <= c.opts.SwipeThreshold {
		return false
	}

	next := c.clamp(c.state.ActiveIndex + sign(deltaY))
	if next == c.state.ActiveIndex {
		return false
	}
	return c.begin(next, SourceSwipe)
}

// Tick advances a running transition to wall-clock time nowMs
func (c *Controller) Tick(nowMs float64) {
	if !c.state.IsTransitioning || !finite(nowMs) {
		return
	}

	if !c.started {
		c.startMs = nowMs
		c.started = true
	}

	progress := clampFloat((nowMs-c.startMs)/millis(c.opts.TransitionDuration), 0, 1)
	if progress < c.progress {
		progress = c.progress
	}
	c.progress = progress

	target := float64(c.state.TargetIndex)
	eased := EaseInOutCubic(progress)
	c.state.CameraPosition = c.startPosition + (target-c.startPosition)*eased

	if progress >= 0.5 && !c.committed {
		c.committed = true
		c.state.ActiveIndex = c.state.TargetIndex
		c.publish(eventbus.BlockCommittedEvent{Index: c.state.ActiveIndex})
	}

	if progress >= 1 {
		c.state.CameraPosition = target
		c.state.IsTransitioning = false
		c.publish(eventbus.TransitionSettledEvent{Index: c.state.TargetIndex})
	}
}

func (c *Controller) navigate(index int, source Source) bool {
	if c.state.IsTransitioning {
		return false
	}
	index = c.clamp(index)
	if index == c.state.ActiveIndex {
		return false
	}
	return c.begin(index, source)
}

// begin starts a transition; the clock is anchored by the next Tick
func (c *Controller) begin(target int, source Source) bool {
	from := c.state.ActiveIndex

	c.state.TargetIndex = target
	c.state.IsTransitioning = true
	c.startPosition = c.state.CameraPosition
	c.started = false
	c.progress = 0
	c.committed = false

	c.publish(eventbus.TransitionStartedEvent{From: from, To: target, Source: source})
	return true
}

func (c *Controller) publish(event eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}

func (c *Controller) clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i > c.n-1 {
		return c.n - 1
	}
	return i
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
