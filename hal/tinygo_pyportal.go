//go:build tinygo && baremetal && pyportal

package hal

import (
	"machine"

	"pixelpad/sched"

	"tinygo.org/x/drivers/ili9341"
	"tinygo.org/x/drivers/touch/resistive"
	"tinygo.org/x/drivers/ws2812"
)

type pyPortalHAL struct {
	logger serialLogger
	disp   *ili9341.Device
	touch  *calibratedTouch
	strip  ws2812.Device
	clock  *sched.MonotonicClock
}

// New returns the Adafruit PyPortal HAL: ILI9341 on the parallel bus in
// landscape, the four-wire resistive panel, and a WS2812 strip on D4.
func New() HAL {
	machine.TFT_BACKLIGHT.Configure(machine.PinConfig{Mode: machine.PinOutput})

	disp := ili9341.NewParallel(
		machine.LCD_DATA0,
		machine.TFT_WR,
		machine.TFT_DC,
		machine.TFT_CS,
		machine.TFT_RESET,
		machine.TFT_RD,
	)
	disp.Configure(ili9341.Config{})
	disp.SetRotation(ili9341.Rotation270)
	w, h := disp.Size()
	disp.FillRectangle(0, 0, w, h, blackRGBA)
	machine.TFT_BACKLIGHT.High()

	machine.InitADC()
	raw := &resistive.FourWire{}
	raw.Configure(&resistive.FourWireConfig{
		YP: machine.TOUCH_YD,
		YM: machine.TOUCH_YU,
		XP: machine.TOUCH_XR,
		XM: machine.TOUCH_XL,
	})

	neo := machine.D4
	neo.Configure(machine.PinConfig{Mode: machine.PinOutput})

	return &pyPortalHAL{
		disp: disp,
		touch: &calibratedTouch{
			raw: raw,
			cal: touchCalibration{
				xMin: 750, xMax: 325,
				yMin: 840, yMax: 240,
				width: int(w), height: int(h),
				swap: true,
				minZ: 100,
			},
		},
		strip: ws2812.NewWS2812(neo),
		clock: sched.NewMonotonicClock(),
	}
}

func (h *pyPortalHAL) Logger() Logger   { return h.logger }
func (h *pyPortalHAL) Display() Display { return h.disp }
func (h *pyPortalHAL) Touch() Touch     { return h.touch }
func (h *pyPortalHAL) Strip() Strip     { return h.strip }
func (h *pyPortalHAL) Clock() Clock     { return h.clock }
func (h *pyPortalHAL) Beeper() Beeper   { return nullBeeper{} }
