// Package anim drives the strip's animation patterns.
package anim

import (
	"fmt"
	"time"

	"pixelpad/internal/fault"
	"pixelpad/led"
	"pixelpad/sched"
)

// Cycle is the number of ticks in one breathing period.
const Cycle = 21

// Logger is the subset of hal.Logger the engine needs.
type Logger interface {
	WriteLineString(s string)
}

// Engine writes one frame of the pattern per tick of its periodic task.
//
// The default pattern is Breathing.
type Engine struct {
	buf  *led.PixelBuffer
	task *sched.Periodic
	log  Logger

	pattern Pattern
	base    led.Color
	offset  uint64
	frame   []led.Color

	flushErrs uint64
}

func NewEngine(buf *led.PixelBuffer, hz float64, log Logger) (*Engine, error) {
	if buf == nil {
		return nil, fmt.Errorf("anim: nil pixel buffer: %w", fault.ErrInvalidArgument)
	}
	e := &Engine{buf: buf, log: log, frame: make([]led.Color, buf.Len())}
	task, err := sched.NewPeriodic(hz, e.tick)
	if err != nil {
		return nil, fmt.Errorf("anim: %w", err)
	}
	e.task = task
	return e, nil
}

func (e *Engine) SetBaseColor(c led.Color) { e.base = c }
func (e *Engine) BaseColor() led.Color     { return e.base }

// SetPattern switches the pattern from the next frame on. The frame offset
// carries over.
func (e *Engine) SetPattern(p Pattern) error {
	if !p.Valid() {
		return fmt.Errorf("anim: %v: %w", p, fault.ErrInvalidArgument)
	}
	e.pattern = p
	return nil
}

func (e *Engine) Pattern() Pattern { return e.pattern }

// Offset is the number of frames rendered so far.
func (e *Engine) Offset() uint64 { return e.offset }

// Update renders a frame if the engine's period has elapsed.
func (e *Engine) Update(now time.Duration) bool { return e.task.Update(now) }

// Task exposes the underlying periodic task.
func (e *Engine) Task() *sched.Periodic { return e.task }

func (e *Engine) tick(time.Duration) {
	e.pattern.Render(e.frame, e.base, e.offset)
	for i, c := range e.frame {
		// frame has exactly buf.Len() entries.
		_ = e.buf.Set(i, c)
	}
	if err := e.buf.Flush(); err != nil {
		e.flushErrs++
		if e.log != nil && (e.flushErrs == 1 || e.flushErrs%100 == 0) {
			e.log.WriteLineString(fmt.Sprintf("anim: flush failed (%d total): %v", e.flushErrs, err))
		}
	}
	e.offset++
}
