package runner

import (
	"time"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// ClampStep bounds a frame step to [0, maxStep] seconds so a stalled
// terminal or backgrounded session cannot produce one huge step.
func ClampStep(dt, maxStep float64) float64 {
	return core.ClampF(dt, 0, maxStep)
}

// FrameClock turns frame timestamps into clamped simulation steps.
type FrameClock struct {
	last    time.Time
	maxStep float64
}

// NewFrameClock creates a clock that never reports more than maxStep seconds.
func NewFrameClock(maxStep float64) *FrameClock {
	return &FrameClock{maxStep: maxStep}
}

// Tick returns the clamped seconds since the previous tick.
// The first tick after creation or Reset returns 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampStep(dt, c.maxStep)
}

// Reset makes the next tick start a fresh interval.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
