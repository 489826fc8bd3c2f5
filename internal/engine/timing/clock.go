// Package timing provides frame delta timing and FPS statistics.
package timing

import "time"

// Clock measures the time between frames using the monotonic clock.
type Clock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
	begun bool
}

// NewClock creates a clock backed by time.Now.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource creates a clock reading from now.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Tick returns the seconds elapsed since the previous Tick.
// The first call returns 0.
func (c *Clock) Tick() float64 {
	now := c.now()
	if !c.begun {
		c.start = now
		c.last = now
		c.begun = true
		return 0
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}

// Elapsed returns the time since the first Tick.
func (c *Clock) Elapsed() time.Duration {
	if !c.begun {
		return 0
	}
	return c.last.Sub(c.start)
}
