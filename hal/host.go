//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"pixelpad/sched"
)

// Screen size of the emulated board (PyPortal, landscape).
const (
	hostScreenWidth  = 320
	hostScreenHeight = 240
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	touch  *hostTouch
	strip  *hostStrip
	clock  *sched.MonotonicClock
	beeper Beeper
}

// New returns a host HAL implementation.
func New() HAL {
	return newHostHAL(os.Stdout)
}

func newHostHAL(w io.Writer) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(hostScreenWidth, hostScreenHeight),
		touch:  &hostTouch{},
		strip:  &hostStrip{},
		clock:  sched.NewMonotonicClock(),
		beeper: nullBeeper{},
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return h.fb }
func (h *hostHAL) Touch() Touch     { return h.touch }
func (h *hostHAL) Strip() Strip     { return h.strip }
func (h *hostHAL) Clock() Clock     { return h.clock }
func (h *hostHAL) Beeper() Beeper   { return h.beeper }

// enableBeeper swaps in the speaker click, logging why if it is unavailable.
func (h *hostHAL) enableBeeper() {
	b, err := newHostBeeper()
	if err != nil {
		h.logger.WriteLineString(fmt.Sprintf("hal: beeper disabled: %v", err))
		return
	}
	h.beeper = b
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	if l.w == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}
