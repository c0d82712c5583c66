//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal simulator.
type TerminalConfig struct {
	Hz   int
	Beep bool
}

// RunTerminal draws the screen with half-block cells and the LED strip on the
// bottom row of the terminal. Mouse clicks are touches; q, Esc or Ctrl-C quit.
// Logs go to logw since stdout belongs to the screen.
func RunTerminal(ctx context.Context, newApp func(HAL) (func() error, error), cfg TerminalConfig, logw io.Writer) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHostHAL(nil)
	if logw != nil {
		h.logger = &hostLogger{w: logw}
	}
	if cfg.Beep {
		h.enableBeeper()
	}
	step, err := newApp(h)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	// The poller blocks rather than drop events: a lost mouse release would
	// leave the touch pressed.
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	term := &termView{h: h, screen: screen}
	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if quit := term.handle(ev); quit {
				return nil
			}
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			term.draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

type termView struct {
	h      *hostHAL
	screen tcell.Screen
	leds   []color.RGBA
}

func (v *termView) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return true
		}
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			v.h.touch.release()
			return false
		}
		cx, cy := ev.Position()
		if x, y, ok := v.cellToScreen(cx, cy); ok {
			v.h.touch.press(x, y)
		}
	}
	return false
}

// screenRows is the number of terminal rows showing the framebuffer; the last
// row is left for the strip.
func (v *termView) screenRows() (cols, rows int) {
	cols, rows = v.screen.Size()
	return cols, rows - 1
}

func (v *termView) cellToScreen(cx, cy int) (x, y int, ok bool) {
	cols, rows := v.screenRows()
	if cols <= 0 || rows <= 0 || cx < 0 || cy < 0 || cx >= cols || cy >= rows {
		return 0, 0, false
	}
	fb := v.h.fb
	// Centre of the cell, both half-blocks.
	x = (2*cx + 1) * fb.width / (2 * cols)
	y = (2*cy + 1) * fb.height / (2 * rows)
	return x, y, true
}

func (v *termView) draw() {
	cols, rows := v.screenRows()
	if cols <= 0 || rows <= 0 {
		return
	}
	fb := v.h.fb
	for cy := 0; cy < rows; cy++ {
		top := (2 * cy) * fb.height / (2 * rows)
		bot := (2*cy + 1) * fb.height / (2 * rows)
		for cx := 0; cx < cols; cx++ {
			x := cx * fb.width / cols
			tr, tg, tb := fb.rgbAt(x, top)
			br, bg, bb := fb.rgbAt(x, bot)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb))).
				Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb)))
			v.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}

	for cx := 0; cx < cols; cx++ {
		v.screen.SetContent(cx, rows, ' ', nil, tcell.StyleDefault)
	}
	v.leds = v.h.strip.snapshot(v.leds)
	for i, c := range v.leds {
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		x := 1 + i*3
		if x+1 >= cols {
			break
		}
		v.screen.SetContent(x, rows, '█', nil, style)
		v.screen.SetContent(x+1, rows, '█', nil, style)
	}
	v.screen.Show()
}
