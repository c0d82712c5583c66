//go:build !tinygo && cgo

package hal

import (
	"image"
	"image/color"
	"os"

	"pixelpad/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// stripBand is the height of the area under the screen showing the LEDs.
const stripBand = 40

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale int
	Beep  bool
}

// RunWindow starts a desktop window that displays the screen and the LED strip
// and feeds the left mouse button (or a touch) in as touch input.
// It blocks until the window closes.
func RunWindow(newApp func(HAL) (func() error, error), cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	h := newHostHAL(os.Stdout)
	if cfg.Beep {
		h.enableBeeper()
	}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("pixelpad (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, (h.fb.height+stripBand)*cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	leds    []color.RGBA
	step    func() error
}

func (g *hostGame) Update() error {
	g.pollPointer()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) pollPointer() {
	fb := g.h.fb
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		if fb.contains(x, y) {
			g.h.touch.press(x, y)
			return
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if fb.contains(x, y) {
			g.h.touch.press(x, y)
			return
		}
	}
	g.h.touch.release()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)
	decodeRGB565(g.img.Pix, g.scratch)

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)

	g.leds = g.h.strip.snapshot(g.leds)
	if len(g.leds) == 0 {
		return
	}
	pitch := float32(fb.width) / float32(len(g.leds))
	radius := pitch / 3
	if radius > stripBand/3 {
		radius = stripBand / 3
	}
	cy := float32(fb.height) + stripBand/2
	for i, c := range g.leds {
		cx := pitch*float32(i) + pitch/2
		vector.DrawFilledCircle(screen, cx, cy, radius, c, true)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height + stripBand
}
