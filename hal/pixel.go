package hal

import "image/color"

// toRGB565 packs c for a 16-bit panel, dropping the low bits of each channel.
func toRGB565(c color.RGBA) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// fromRGB565 widens p back to 8-bit channels by bit replication, so full
// scale maps to 0xFF.
func fromRGB565(p uint16) (r, g, b uint8) {
	r5 := uint8(p>>11) & 0x1F
	g6 := uint8(p>>5) & 0x3F
	b5 := uint8(p) & 0x1F
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
