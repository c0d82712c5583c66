//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"image/color"
	"strings"
	"testing"
)

func TestParseTap(t *testing.T) {
	tap, err := ParseTap("12:100,40")
	if err != nil {
		t.Fatalf("ParseTap: %v", err)
	}
	if want := (Tap{At: 12, X: 100, Y: 40}); tap != want {
		t.Fatalf("ParseTap = %+v, want %+v", tap, want)
	}

	tap, err = ParseTap("30+5:260,200")
	if err != nil {
		t.Fatalf("ParseTap hold: %v", err)
	}
	if want := (Tap{At: 30, Hold: 5, X: 260, Y: 200}); tap != want {
		t.Fatalf("ParseTap hold = %+v, want %+v", tap, want)
	}

	for _, bad := range []string{"", "12", "x:1,2", "1:2", "1+:2,3"} {
		if _, err := ParseTap(bad); err == nil {
			t.Fatalf("ParseTap(%q) succeeded, want error", bad)
		}
	}
}

func TestApplyTaps(t *testing.T) {
	touch := &hostTouch{}
	taps := []Tap{{At: 2, Hold: 2, X: 5, Y: 6}, {At: 10, X: 1, Y: 1}}

	var pressed []uint64
	for tick := uint64(0); tick < 12; tick++ {
		applyTaps(touch, taps, tick)
		if touch.ReadTouchPoint().Z > 0 {
			pressed = append(pressed, tick)
		}
	}
	want := []uint64{2, 3, 10}
	if len(pressed) != len(want) {
		t.Fatalf("pressed ticks = %v, want %v", pressed, want)
	}
	for i := range want {
		if pressed[i] != want[i] {
			t.Fatalf("pressed ticks = %v, want %v", pressed, want)
		}
	}
}

func TestLogStripOnlyOnNewFrames(t *testing.T) {
	var out bytes.Buffer
	h := newHostHAL(&out)

	last := logStrip(h, 0)
	if out.Len() != 0 {
		t.Fatalf("logged %q before any frame", out.String())
	}

	h.strip.WriteColors([]color.RGBA{{R: 0x7f, G: 0x55}, {B: 0x01}})
	last = logStrip(h, last)
	if got := out.String(); got != "strip: 7f5500 000001\n" {
		t.Fatalf("log = %q", got)
	}

	out.Reset()
	logStrip(h, last)
	if out.Len() != 0 {
		t.Fatalf("logged %q for an unchanged frame", out.String())
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var steps int
	var sawTouch bool
	err := RunHeadless(context.Background(), func(h HAL) (func() error, error) {
		return func() error {
			steps++
			if h.Touch().ReadTouchPoint().Z > 0 {
				sawTouch = true
			}
			return nil
		}, nil
	}, HeadlessConfig{Enabled: true, Hz: 1000, Ticks: 5, Taps: []Tap{{At: 3, X: 1, Y: 1}}})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
	if !sawTouch {
		t.Fatalf("scripted tap never reached the touch device")
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RunHeadless(ctx, func(HAL) (func() error, error) {
		return func() error { return nil }, nil
	}, HeadlessConfig{Enabled: true, Hz: 10})
	if err == nil || !strings.Contains(err.Error(), "canceled") {
		t.Fatalf("err = %v, want context canceled", err)
	}
}
