package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"pixelpad/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// halt reports a fatal error on the log and the screen, then blocks forever.
// Boards have nowhere to exit to.
func halt(h hal.HAL, err error) {
	drawError(h, err)
	select {}
}

func drawError(h hal.HAL, err error) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("pixelpad halted: %v", err))
	}

	d := h.Display()
	if d == nil {
		return
	}
	w, ht := d.Size()
	_ = d.FillRectangle(0, 0, w, ht, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	font := &proggy.TinySZ8pt7b
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	fontHeight := int16(font.GetYAdvance())
	if fontWidth <= 0 || fontHeight <= 0 {
		_ = d.Display()
		return
	}

	cols := int(w / fontWidth)
	if cols <= 0 {
		cols = 1
	}
	fg := color.RGBA{A: 255}

	y := fontHeight
	for _, line := range []string{"pixelpad halted:", err.Error()} {
		for len(line) > 0 {
			if y > ht {
				_ = d.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, 0, y, chunk, fg)
			y += fontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = d.Display()
}

func takeRunes(s string, n int) (string, string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i := 0
	for count := 0; i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], s[i:]
}
