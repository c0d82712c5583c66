// Package sched runs recurring work from a polling loop.
//
// A Periodic never sleeps: the caller polls Update every loop iteration and
// the task decides from the supplied monotonic timestamp whether to run.
package sched

import (
	"fmt"
	"math"
	"time"

	"pixelpad/internal/fault"
)

// Periodic fires its tick at most once per period.
//
// Missed periods are not made up: after a late run the next one is a full
// period after that run, not after the missed deadline.
type Periodic struct {
	hz     float64
	period time.Duration
	tick   func(now time.Duration)

	last time.Duration
	ran  bool
	runs uint64
}

func NewPeriodic(hz float64, tick func(now time.Duration)) (*Periodic, error) {
	if math.IsNaN(hz) || math.IsInf(hz, 0) || hz <= 0 {
		return nil, fmt.Errorf("sched: frequency %v: %w", hz, fault.ErrInvalidArgument)
	}
	period := time.Duration(float64(time.Second) / hz)
	if period <= 0 {
		return nil, fmt.Errorf("sched: frequency %v too high: %w", hz, fault.ErrInvalidArgument)
	}
	if tick == nil {
		return nil, fmt.Errorf("sched: nil tick: %w", fault.ErrInvalidArgument)
	}
	return &Periodic{hz: hz, period: period, tick: tick}, nil
}

func (p *Periodic) Frequency() float64    { return p.hz }
func (p *Periodic) Period() time.Duration { return p.period }

// Runs reports how many times the tick has fired.
func (p *Periodic) Runs() uint64 { return p.runs }

// Update runs the tick if a period has elapsed since the last run (or it never
// ran) and reports whether it did. now is read once by the caller; the time
// spent in tick is not counted against the next period.
func (p *Periodic) Update(now time.Duration) bool {
	if p.ran && now-p.last < p.period {
		return false
	}
	p.tick(now)
	p.last = now
	p.ran = true
	p.runs++
	return true
}
