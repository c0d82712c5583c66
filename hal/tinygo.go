//go:build tinygo && baremetal && !pyportal

package hal

import "pixelpad/sched"

type tinyGoHAL struct {
	logger serialLogger
	disp   *stubDisplay
	strip  *logStrip
	clock  *sched.MonotonicClock
}

// New returns a bring-up HAL for boards without a screen or strip: the
// display and touch are stubs and strip frames are printed to the console.
func New() HAL {
	logger := serialLogger{}
	return &tinyGoHAL{
		logger: logger,
		disp:   &stubDisplay{w: 320, h: 240},
		strip:  &logStrip{log: logger},
		clock:  sched.NewMonotonicClock(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return h.disp }
func (h *tinyGoHAL) Touch() Touch     { return stubTouch{} }
func (h *tinyGoHAL) Strip() Strip     { return h.strip }
func (h *tinyGoHAL) Clock() Clock     { return h.clock }
func (h *tinyGoHAL) Beeper() Beeper   { return nullBeeper{} }
