package core

import "time"

// FrameClock turns wall-clock tick timestamps into simulation deltas.
// The display refresh does not fire at a fixed interval, so each tick
// integrates the elapsed time, clamped to keep a stalled frame from
// teleporting the ball through blocks.
type FrameClock struct {
	nominal time.Duration
	max     time.Duration
	last    time.Time
}

// NewFrameClock creates a clock for the given tick rate and maximum delta.
func NewFrameClock(tickRate int, maxDelta time.Duration) *FrameClock {
	nominal := RuntimeConfig{TickRate: tickRate}.TickInterval()
	if maxDelta < nominal {
		maxDelta = nominal
	}
	return &FrameClock{nominal: nominal, max: maxDelta}
}

// Delta returns the time elapsed since the previous call.
// The first call, and any call with a non-increasing timestamp, yields the
// nominal tick interval.
func (c *FrameClock) Delta(now time.Time) time.Duration {
	if c.last.IsZero() || !now.After(c.last) {
		c.last = now
		return c.nominal
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt > c.max {
		return c.max
	}
	return dt
}

// Reset forgets the previous timestamp, e.g. after a pause.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
