package entity

import "math"

// ClampDelta sanitises a frame delta. Negative or NaN deltas count as 0 so
// timers never run backwards.
func ClampDelta(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) {
		return 0
	}
	return dt
}

// Countdown is a timer holding the seconds left before it expires.
// It never goes below zero.
type Countdown struct {
	remaining float64
}

// NewCountdown returns a countdown started at d seconds
func NewCountdown(d float64) Countdown {
	var c Countdown
	c.Set(d)
	return c
}

// Set restarts the countdown at d seconds
func (c *Countdown) Set(d float64) {
	c.remaining = math.Max(d, 0)
}

// Tick consumes dt seconds and reports whether the countdown is expired.
func (c *Countdown) Tick(dt float64) bool {
	c.remaining -= ClampDelta(dt)
	if c.remaining < 0 {
		c.remaining = 0
	}
	return c.Expired()
}

// Remaining returns the seconds left
func (c Countdown) Remaining() float64 {
	return c.remaining
}

// Expired reports whether no time is left
func (c Countdown) Expired() bool {
	return c.remaining <= 0
}
