package core

import "time"

// TickClock converts fixed frame steps into simulation ticks, for frontends
// whose update loop runs at the frame rate rather than the tick rate.
type TickClock struct {
	frame    time.Duration
	interval time.Duration
	acc      time.Duration
}

// NewTickClock creates a clock for the given frame rate and tick interval.
func NewTickClock(frameRate int, interval time.Duration) *TickClock {
	if frameRate <= 0 {
		frameRate = FrameRate
	}
	if interval <= 0 {
		interval = TickInterval
	}
	return &TickClock{
		frame:    time.Second / time.Duration(frameRate),
		interval: interval,
	}
}

// Advance moves the clock forward one frame and returns how many ticks are due.
func (c *TickClock) Advance() int {
	c.acc += c.frame
	n := 0
	for c.acc >= c.interval {
		c.acc -= c.interval
		n++
	}
	return n
}

// Reset drops any partial tick.
func (c *TickClock) Reset() {
	c.acc = 0
}
