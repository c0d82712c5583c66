// Package led holds the pixel state pushed to an addressable LED strip.
package led

import (
	"fmt"
	"image/color"

	"pixelpad/internal/fault"
)

// Sink receives a full frame of strip colors.
//
// It has the shape of ws2812.Device.WriteColors so the driver can be used directly.
// The slice is reused between flushes; sinks that keep frames must copy.
type Sink interface {
	WriteColors(buf []color.RGBA) error
}

// PixelBuffer is a fixed-size set of strip pixels.
//
// Set and Fill only touch the buffer; nothing reaches the strip until Flush.
type PixelBuffer struct {
	px         []Color
	out        []color.RGBA
	sink       Sink
	brightness float64
}

func NewPixelBuffer(n int, sink Sink) (*PixelBuffer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("led: pixel count %d: %w", n, fault.ErrInvalidArgument)
	}
	if sink == nil {
		return nil, fmt.Errorf("led: nil sink: %w", fault.ErrInvalidArgument)
	}
	return &PixelBuffer{
		px:         make([]Color, n),
		out:        make([]color.RGBA, n),
		sink:       sink,
		brightness: 1,
	}, nil
}

func (b *PixelBuffer) Len() int { return len(b.px) }

// At returns the stored (unscaled) color at i.
func (b *PixelBuffer) At(i int) (Color, error) {
	if i < 0 || i >= len(b.px) {
		return Color{}, fmt.Errorf("led: pixel %d of %d: %w", i, len(b.px), fault.ErrOutOfRange)
	}
	return b.px[i], nil
}

func (b *PixelBuffer) Set(i int, c Color) error {
	if i < 0 || i >= len(b.px) {
		return fmt.Errorf("led: pixel %d of %d: %w", i, len(b.px), fault.ErrOutOfRange)
	}
	b.px[i] = c
	return nil
}

func (b *PixelBuffer) Fill(c Color) {
	for i := range b.px {
		b.px[i] = c
	}
}

// Brightness returns the global output scale applied on Flush.
func (b *PixelBuffer) Brightness() float64 { return b.brightness }

// SetBrightness sets the global output scale. Stored colors are unaffected.
func (b *PixelBuffer) SetBrightness(v float64) error {
	if !(v >= 0 && v <= 1) {
		return fmt.Errorf("led: brightness %v outside [0,1]: %w", v, fault.ErrInvalidArgument)
	}
	b.brightness = v
	return nil
}

// Flush pushes every pixel to the sink once, scaled by the brightness.
// A slow sink stalls the caller; there is no queueing.
func (b *PixelBuffer) Flush() error {
	for i, c := range b.px {
		if b.brightness != 1 {
			c = c.Scale(b.brightness)
		}
		b.out[i] = c.RGBA()
	}
	return b.sink.WriteColors(b.out)
}
