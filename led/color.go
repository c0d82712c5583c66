package led

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"pixelpad/internal/fault"
)

// Color is an RGB triple with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// Black is the zero color (strip off).
var Black = Color{}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// FromPacked normalizes a packed 0xRRGGBB value.
func FromPacked(v uint32) (Color, error) {
	if v > 0xFFFFFF {
		return Color{}, fmt.Errorf("led: packed color %#x exceeds 24 bits: %w", v, fault.ErrInvalidArgument)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// FromInts builds a color from channel values that must lie in [0,255].
func FromInts(r, g, b int) (Color, error) {
	for _, ch := range [...]int{r, g, b} {
		if ch < 0 || ch > 255 {
			return Color{}, fmt.Errorf("led: channel %d outside [0,255]: %w", ch, fault.ErrInvalidArgument)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Packed returns the 0xRRGGBB form.
func (c Color) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Scale multiplies every channel by m and truncates. m is clamped to [0,1],
// so the result is never brighter than c.
func (c Color) Scale(m float64) Color {
	if !(m > 0) {
		return Color{}
	}
	if m > 1 {
		m = 1
	}
	mul := func(ch uint8) uint8 {
		return uint8(float64(ch) * m)
	}
	return Color{R: mul(c.R), G: mul(c.G), B: mul(c.B)}
}

// RGBA converts to the driver color type. Alpha is opaque; WS2812 ignores it.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", c.Packed())
}

// ParseColor accepts "#rrggbb", "0xrrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("led: color %q: want 6 hex digits: %w", s, fault.ErrInvalidArgument)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("led: color %q: %w", s, fault.ErrInvalidArgument)
	}
	return FromPacked(uint32(v))
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
