package hal

import (
	"errors"
	"image/color"
	"time"

	"tinygo.org/x/drivers/touch"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

var ErrNotImplemented = errors.New("not implemented")

// Display is a drawable screen. It has the method set of the TinyGo display
// drivers (ili9341.Device) so boards can hand their driver over directly.
type Display interface {
	Size() (x, y int16)
	SetPixel(x, y int16, c color.RGBA)
	FillRectangle(x, y, width, height int16, c color.RGBA) error
	Display() error
}

// Touch reports the most recent touch sample.
//
// Z == 0 means the screen is not being touched; X/Y are then meaningless.
// Implementations report calibrated screen coordinates.
type Touch interface {
	ReadTouchPoint() touch.Point
}

// Strip pushes a full frame to an addressable LED strip.
//
// It matches ws2812.Device.WriteColors.
type Strip interface {
	WriteColors(buf []color.RGBA) error
}

// Clock reports monotonic time since an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// Beeper gives short audible feedback (optional).
type Beeper interface {
	Click()
}

// HAL provides the only contact point between the controller and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Touch() Touch
	Strip() Strip
	Clock() Clock
	Beeper() Beeper
}

type nullBeeper struct{}

func (nullBeeper) Click() {}
