package app

import (
	"fmt"
	"time"

	"pixelpad/anim"
	"pixelpad/internal/fault"
	"pixelpad/led"
	"pixelpad/ui"
)

// Config selects the strip, the animation rate and the screen set.
type Config struct {
	StripSize   int
	Brightness  float64
	AnimationHz float64
	Pattern     anim.Pattern
	// LoopInterval caps the main loop rate on boards. It does not pace the
	// animation; the engine keeps its own period.
	LoopInterval time.Duration
	// TouchThreshold is the minimum pressure counted as a touch. Zero
	// accepts any point with positive Z.
	TouchThreshold int

	DefaultBackground string
	Backgrounds       map[string]led.Color
	Screens           []ui.ScreenDef
}

const (
	buttonSize    = 60
	buttonOffset  = 10
	buttonSpacing = 80
)

// DefaultConfig is the battery-status picker: three color buttons, a back
// button, and a five pixel strip at 10% brightness.
func DefaultConfig() Config {
	picks := []struct {
		id    string
		color led.Color
		bg    string
	}{
		{"red", led.RGB(255, 0, 0), "images/empty.bmp"},
		{"yellow", led.RGB(255, 170, 0), "images/half.bmp"},
		{"green", led.RGB(0, 255, 0), "images/full.bmp"},
	}

	var picker []ui.Button
	x := buttonOffset
	for _, p := range picks {
		picker = append(picker, ui.Button{
			ID:         p.id,
			Rect:       ui.Rect{X: x, Y: buttonOffset, W: buttonSize, H: buttonSize},
			Color:      p.color,
			Background: p.bg,
			Action:     ui.ActionSelect,
			Target:     ui.Status,
		})
		x += buttonSpacing
	}

	return Config{
		StripSize:         5,
		Brightness:        0.1,
		AnimationHz:       10,
		Pattern:           anim.Breathing,
		LoopInterval:      50 * time.Millisecond,
		DefaultBackground: "default",
		Backgrounds: map[string]led.Color{
			"default":          led.Black,
			"images/empty.bmp": led.RGB(0x40, 0x00, 0x00),
			"images/half.bmp":  led.RGB(0x40, 0x2a, 0x00),
			"images/full.bmp":  led.RGB(0x00, 0x40, 0x00),
		},
		Screens: []ui.ScreenDef{
			{ID: ui.Picker, Buttons: picker},
			{
				ID: ui.Status,
				Buttons: []ui.Button{{
					ID:     "back",
					Label:  "BACK",
					Rect:   ui.Rect{X: 230, Y: 170, W: 80, H: 60},
					Color:  led.RGB(0x44, 0x44, 0x44),
					Action: ui.ActionBack,
					Target: ui.Picker,
				}},
			},
		},
	}
}

// Validate checks the fields no constructor owns.
func (c Config) Validate() error {
	if c.LoopInterval < 0 {
		return fmt.Errorf("app: loop interval %v: %w", c.LoopInterval, fault.ErrInvalidArgument)
	}
	if !c.Pattern.Valid() {
		return fmt.Errorf("app: %v: %w", c.Pattern, fault.ErrInvalidArgument)
	}
	if c.TouchThreshold < 0 {
		return fmt.Errorf("app: touch threshold %d: %w", c.TouchThreshold, fault.ErrInvalidArgument)
	}
	if len(c.Screens) == 0 {
		return fmt.Errorf("app: no screens: %w", fault.ErrInvalidArgument)
	}
	return nil
}
