//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// hostFramebuffer is an RGB565 (little-endian) screen in memory. The window
// runner copies it out on every draw.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Size() (x, y int16) { return int16(f.width), int16(f.height) }

func (f *hostFramebuffer) SetPixel(x, y int16, c color.RGBA) {
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= f.width || iy < 0 || iy >= f.height {
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := toRGB565(c)
	off := iy*f.stride + ix*2
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
}

func (f *hostFramebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := clampInt(int(x), 0, f.width)
	y0 := clampInt(int(y), 0, f.height)
	x1 := clampInt(int(x)+int(width), 0, f.width)
	y1 := clampInt(int(y)+int(height), 0, f.height)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := toRGB565(c)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for py := y0; py < y1; py++ {
		row := py * f.stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			f.buf[off] = lo
			f.buf[off+1] = hi
		}
	}
	return nil
}

// Display is a no-op: the runners read the buffer directly.
func (f *hostFramebuffer) Display() error { return nil }

// contains reports whether (x, y) is on screen.
func (f *hostFramebuffer) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.width && y < f.height
}

// rgbAt decodes one pixel back to 8-bit channels.
func (f *hostFramebuffer) rgbAt(x, y int) (r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	off := y*f.stride + x*2
	return fromRGB565(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// decodeRGB565 expands little-endian RGB565 src into opaque RGBA dst.
func decodeRGB565(dst, src []byte) {
	for i, j := 0, 0; i+1 < len(src) && j+3 < len(dst); i, j = i+2, j+4 {
		dst[j], dst[j+1], dst[j+2] = fromRGB565(uint16(src[i]) | uint16(src[i+1])<<8)
		dst[j+3] = 0xFF
	}
}
