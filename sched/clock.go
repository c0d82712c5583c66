package sched

import "time"

// Clock reports monotonic time as a duration since an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock measures from its creation using the runtime monotonic clock.
type MonotonicClock struct {
	start time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

func (c *MonotonicClock) Now() time.Duration { return time.Since(c.start) }

// ManualClock only moves when told to.
type ManualClock struct {
	now time.Duration
}

func (c *ManualClock) Now() time.Duration      { return c.now }
func (c *ManualClock) Set(now time.Duration)   { c.now = now }
func (c *ManualClock) Advance(d time.Duration) { c.now += d }
