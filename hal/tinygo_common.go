//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"image/color"
	"machine"
	"strings"

	"tinygo.org/x/drivers/touch"
)

// serialLogger writes to the board's default serial console (USB CDC or UART).
type serialLogger struct{}

func (serialLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		machine.Serial.WriteByte(s[i])
	}
	machine.Serial.WriteByte('\r')
	machine.Serial.WriteByte('\n')
}

// logStrip prints every frame instead of lighting LEDs; used on boards
// without a strip wired up.
type logStrip struct {
	log Logger
	b   strings.Builder
}

func (s *logStrip) WriteColors(buf []color.RGBA) error {
	s.b.Reset()
	s.b.WriteString("strip:")
	for _, c := range buf {
		fmt.Fprintf(&s.b, " %02x%02x%02x", c.R, c.G, c.B)
	}
	s.log.WriteLineString(s.b.String())
	return nil
}

// touchCalibration maps raw 16-bit resistive readings to screen pixels.
// The raw axes are portrait; swap turns them into landscape coordinates.
type touchCalibration struct {
	xMin, xMax int
	yMin, yMax int
	width      int
	height     int
	swap       bool
	minZ       int
}

type calibratedTouch struct {
	raw touch.Pointer
	cal touchCalibration
}

func (t *calibratedTouch) ReadTouchPoint() touch.Point {
	p := t.raw.ReadTouchPoint()
	if p.Z>>6 <= t.cal.minZ {
		return touch.Point{}
	}
	return t.cal.apply(p.X>>6, p.Y>>6)
}

func (c touchCalibration) apply(rawX, rawY int) touch.Point {
	if c.swap {
		x := mapval(rawY, c.yMin, c.yMax, 0, c.width)
		y := mapval(rawX, c.xMin, c.xMax, 0, c.height)
		return touch.Point{X: clampInt(x, 0, c.width-1), Y: clampInt(y, 0, c.height-1), Z: 1}
	}
	x := mapval(rawX, c.xMin, c.xMax, 0, c.width)
	y := mapval(rawY, c.yMin, c.yMax, 0, c.height)
	return touch.Point{X: clampInt(x, 0, c.width-1), Y: clampInt(y, 0, c.height-1), Z: 1}
}

// mapval is Arduino's map().
func mapval(x, inMin, inMax, outMin, outMax int) int {
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
