//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// Tap is a scripted touch for headless runs: the point is held for Hold ticks
// starting at tick At.
type Tap struct {
	At   uint64
	Hold uint64
	X, Y int
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled  bool
	Hz       int
	Ticks    uint64
	Taps     []Tap
	LogStrip bool
	Beep     bool
}

// RunHeadless runs the controller without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHostHAL(os.Stdout)
	if cfg.Beep {
		h.enableBeeper()
	}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	var lastWrites uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			applyTaps(h.touch, cfg.Taps, tick)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			if cfg.LogStrip {
				lastWrites = logStrip(h, lastWrites)
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func applyTaps(t *hostTouch, taps []Tap, tick uint64) {
	for _, tap := range taps {
		hold := tap.Hold
		if hold == 0 {
			hold = 1
		}
		if tick >= tap.At && tick < tap.At+hold {
			t.press(tap.X, tap.Y)
			return
		}
	}
	t.release()
}

func logStrip(h *hostHAL, last uint64) uint64 {
	h.strip.mu.Lock()
	writes := h.strip.writes
	var b strings.Builder
	if writes != last {
		b.WriteString("strip:")
		for _, c := range h.strip.frame {
			fmt.Fprintf(&b, " %02x%02x%02x", c.R, c.G, c.B)
		}
	}
	h.strip.mu.Unlock()

	if b.Len() > 0 {
		h.logger.WriteLineString(b.String())
	}
	return writes
}

// ParseTap parses "tick:x,y" or "tick+hold:x,y".
func ParseTap(s string) (Tap, error) {
	var tap Tap
	when, at, ok := strings.Cut(s, ":")
	if !ok {
		return tap, fmt.Errorf("tap %q: want tick:x,y", s)
	}
	if tick, hold, ok := strings.Cut(when, "+"); ok {
		if _, err := fmt.Sscanf(tick+" "+hold, "%d %d", &tap.At, &tap.Hold); err != nil {
			return tap, fmt.Errorf("tap %q: %w", s, err)
		}
	} else if _, err := fmt.Sscanf(when, "%d", &tap.At); err != nil {
		return tap, fmt.Errorf("tap %q: %w", s, err)
	}
	if _, err := fmt.Sscanf(at, "%d,%d", &tap.X, &tap.Y); err != nil {
		return tap, fmt.Errorf("tap %q: %w", s, err)
	}
	return tap, nil
}
