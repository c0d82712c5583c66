//go:build tinygo && baremetal

package hal

import (
	"image/color"

	"tinygo.org/x/drivers/touch"
)

var blackRGBA = color.RGBA{A: 0xFF}

type stubDisplay struct {
	w int16
	h int16
}

func (d *stubDisplay) Size() (x, y int16) { return d.w, d.h }

func (d *stubDisplay) SetPixel(x, y int16, c color.RGBA) {
	_ = x
	_ = y
	_ = c
}

func (d *stubDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	return nil
}

func (d *stubDisplay) Display() error { return nil }

type stubTouch struct{}

func (stubTouch) ReadTouchPoint() touch.Point { return touch.Point{} }
