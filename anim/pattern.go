package anim

import (
	"fmt"
	"math"

	"pixelpad/internal/fault"
	"pixelpad/led"
)

// Pattern selects how a frame is derived from the base color and the frame
// offset.
type Pattern uint8

const (
	// Breathing fades even and odd pixels in opposition over Cycle frames.
	Breathing Pattern = iota
	// Chase lights a block of pixels that walks along the strip, wrapping
	// every strip length frames.
	Chase
)

func (p Pattern) String() string {
	switch p {
	case Breathing:
		return "breathing"
	case Chase:
		return "chase"
	default:
		return fmt.Sprintf("pattern(%d)", uint8(p))
	}
}

func ParsePattern(s string) (Pattern, error) {
	switch s {
	case "breathing":
		return Breathing, nil
	case "chase":
		return Chase, nil
	}
	return 0, fmt.Errorf("anim: unknown pattern %q: %w", s, fault.ErrInvalidArgument)
}

// Valid reports whether p is a known pattern.
func (p Pattern) Valid() bool { return p <= Chase }

// Render fills dst with frame offset of the pattern.
func (p Pattern) Render(dst []led.Color, base led.Color, offset uint64) {
	switch p {
	case Chase:
		ChaseFrame(dst, base, offset)
	default:
		BreatheFrame(dst, base, offset)
	}
}

// Multipliers returns the even and odd brightness factors for a breathing
// frame. They always sum to one.
func Multipliers(offset uint64) (up, down float64) {
	phase := float64(offset%Cycle) / (Cycle - 1)
	up = (math.Sin(phase*2*math.Pi) + 1) / 2
	return up, 1 - up
}

// BreatheFrame computes a breathing frame without touching any buffer.
func BreatheFrame(dst []led.Color, base led.Color, offset uint64) {
	up, down := Multipliers(offset)
	for i := range dst {
		if i%2 == 0 {
			dst[i] = base.Scale(up)
		} else {
			dst[i] = base.Scale(down)
		}
	}
}

// ChaseFrame computes a chase frame. Pixel i is lit at full base color when
// ((offset mod n) + i) & n is below 2, n being the strip length; otherwise it
// is off. The mask test is what makes the lit block walk.
func ChaseFrame(dst []led.Color, base led.Color, offset uint64) {
	n := uint64(len(dst))
	if n == 0 {
		return
	}
	off := offset % n
	for i := range dst {
		if (off+uint64(i))&n < 2 {
			dst[i] = base
		} else {
			dst[i] = led.Black
		}
	}
}
