package ui

import (
	"fmt"
	"image/color"

	"pixelpad/led"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Canvas is a display driver that can also fill rectangles (ili9341.Device,
// the host framebuffer).
type Canvas interface {
	drivers.Displayer
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Logger is the subset of hal.Logger the painter needs.
type Logger interface {
	WriteLineString(s string)
}

const shadowOffset = 3

var (
	outlineColor = led.RGB(0x22, 0x22, 0x22)
	shadowColor  = led.RGB(0x10, 0x10, 0x10)
)

// Painter draws screens on a Canvas. Background tokens resolve to solid fills;
// the bitmap files they are named after are never decoded here.
type Painter struct {
	c           Canvas
	backgrounds map[string]led.Color
	log         Logger
	font        tinyfont.Fonter

	bg      led.Color
	unknown map[string]bool
}

func NewPainter(c Canvas, backgrounds map[string]led.Color, log Logger) *Painter {
	return &Painter{
		c:           c,
		backgrounds: backgrounds,
		log:         log,
		font:        &proggy.TinySZ8pt7b,
		unknown:     make(map[string]bool),
	}
}

func (p *Painter) ShowBackground(token string) {
	bg, ok := p.backgrounds[token]
	if !ok && !p.unknown[token] {
		p.unknown[token] = true
		p.logf("ui: unknown background %q, using black", token)
	}
	p.bg = bg
	w, h := p.c.Size()
	p.fill(0, 0, int(w), int(h), bg)
	p.display()
}

func (p *Painter) SetButtonVisible(b *Button, visible bool) {
	r := b.Rect
	if !visible {
		p.fill(r.X, r.Y, r.W+shadowOffset+1, r.H+shadowOffset+1, p.bg)
		p.display()
		return
	}

	p.fill(r.X+shadowOffset, r.Y+shadowOffset, r.W, r.H, shadowColor)
	p.fill(r.X, r.Y, r.W, r.H, outlineColor)
	p.fill(r.X+1, r.Y+1, r.W-2, r.H-2, b.Color)

	if b.Label != "" {
		_, lw := tinyfont.LineWidth(p.font, b.Label)
		lh := int(p.font.GetYAdvance())
		x := r.X + (r.W-int(lw))/2
		y := r.Y + (r.H+lh)/2 - 2
		tinyfont.WriteLine(p.c, p.font, int16(x), int16(y), b.Label, labelColor(b.Color).RGBA())
	}
	p.display()
}

func (p *Painter) fill(x, y, w, h int, c led.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	if err := p.c.FillRectangle(int16(x), int16(y), int16(w), int16(h), c.RGBA()); err != nil {
		p.logf("ui: fill: %v", err)
	}
}

func (p *Painter) display() {
	if err := p.c.Display(); err != nil {
		p.logf("ui: display: %v", err)
	}
}

func (p *Painter) logf(format string, args ...any) {
	if p.log == nil {
		return
	}
	p.log.WriteLineString(fmt.Sprintf(format, args...))
}

// labelColor picks black or white text for contrast with the fill.
func labelColor(fill led.Color) led.Color {
	luma := 299*int(fill.R) + 587*int(fill.G) + 114*int(fill.B)
	if luma > 128*1000 {
		return led.Black
	}
	return led.RGB(0xFF, 0xFF, 0xFF)
}
