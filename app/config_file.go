//go:build !tinygo

package app

import (
	"fmt"
	"os"
	"time"

	"pixelpad/anim"
	"pixelpad/led"
	"pixelpad/ui"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the TOML form of Config. Unset fields keep the base value;
// a [[screen]] list replaces all screens.
type fileConfig struct {
	StripSize         *int                 `toml:"strip_size,omitempty"`
	Brightness        *float64             `toml:"brightness,omitempty"`
	AnimationHz       *float64             `toml:"animation_hz,omitempty"`
	Pattern           string               `toml:"pattern,omitempty"`
	LoopInterval      string               `toml:"loop_interval,omitempty"`
	TouchThreshold    *int                 `toml:"touch_threshold,omitempty"`
	DefaultBackground string               `toml:"default_background,omitempty"`
	Backgrounds       map[string]led.Color `toml:"backgrounds,omitempty"`
	Screens           []fileScreen         `toml:"screen,omitempty"`
}

type fileScreen struct {
	ID      string       `toml:"id"`
	Buttons []fileButton `toml:"button"`
}

type fileButton struct {
	ID         string    `toml:"id"`
	Label      string    `toml:"label,omitempty"`
	X          int       `toml:"x"`
	Y          int       `toml:"y"`
	W          int       `toml:"w"`
	H          int       `toml:"h"`
	Color      led.Color `toml:"color"`
	Background string    `toml:"background,omitempty"`
	Action     string    `toml:"action"`
	Target     string    `toml:"target"`
}

// LoadConfigFile overlays the TOML file at path onto base.
func LoadConfigFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("app: config: %w", err)
	}
	return ParseConfig(data, base)
}

// ParseConfig overlays TOML data onto base.
func ParseConfig(data []byte, base Config) (Config, error) {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return base, fmt.Errorf("app: failed to parse TOML config: %w", err)
	}

	cfg := base
	if fc.StripSize != nil {
		cfg.StripSize = *fc.StripSize
	}
	if fc.Brightness != nil {
		cfg.Brightness = *fc.Brightness
	}
	if fc.AnimationHz != nil {
		cfg.AnimationHz = *fc.AnimationHz
	}
	if fc.Pattern != "" {
		p, err := anim.ParsePattern(fc.Pattern)
		if err != nil {
			return base, fmt.Errorf("app: config: %w", err)
		}
		cfg.Pattern = p
	}
	if fc.LoopInterval != "" {
		d, err := time.ParseDuration(fc.LoopInterval)
		if err != nil {
			return base, fmt.Errorf("app: loop_interval: %w", err)
		}
		cfg.LoopInterval = d
	}
	if fc.TouchThreshold != nil {
		cfg.TouchThreshold = *fc.TouchThreshold
	}
	if fc.DefaultBackground != "" {
		cfg.DefaultBackground = fc.DefaultBackground
	}
	if len(fc.Backgrounds) > 0 {
		cfg.Backgrounds = make(map[string]led.Color, len(base.Backgrounds)+len(fc.Backgrounds))
		for k, v := range base.Backgrounds {
			cfg.Backgrounds[k] = v
		}
		for k, v := range fc.Backgrounds {
			cfg.Backgrounds[k] = v
		}
	}

	if len(fc.Screens) > 0 {
		cfg.Screens = nil
		for _, fs := range fc.Screens {
			id, err := ui.ParseScreenID(fs.ID)
			if err != nil {
				return base, fmt.Errorf("app: config: %w", err)
			}
			def := ui.ScreenDef{ID: id}
			for _, fb := range fs.Buttons {
				b, err := fb.button()
				if err != nil {
					return base, fmt.Errorf("app: config: screen %s: %w", fs.ID, err)
				}
				def.Buttons = append(def.Buttons, b)
			}
			cfg.Screens = append(cfg.Screens, def)
		}
	}
	return cfg, nil
}

func (fb fileButton) button() (ui.Button, error) {
	action, err := ui.ParseAction(fb.Action)
	if err != nil {
		return ui.Button{}, err
	}
	target, err := ui.ParseScreenID(fb.Target)
	if err != nil {
		return ui.Button{}, fmt.Errorf("button %q: %w", fb.ID, err)
	}
	return ui.Button{
		ID:         fb.ID,
		Label:      fb.Label,
		Rect:       ui.Rect{X: fb.X, Y: fb.Y, W: fb.W, H: fb.H},
		Color:      fb.Color,
		Background: fb.Background,
		Action:     action,
		Target:     target,
	}, nil
}

// MarshalConfig renders cfg as a complete TOML file.
func MarshalConfig(cfg Config) ([]byte, error) {
	fc := fileConfig{
		StripSize:         &cfg.StripSize,
		Brightness:        &cfg.Brightness,
		AnimationHz:       &cfg.AnimationHz,
		Pattern:           cfg.Pattern.String(),
		LoopInterval:      cfg.LoopInterval.String(),
		TouchThreshold:    &cfg.TouchThreshold,
		DefaultBackground: cfg.DefaultBackground,
		Backgrounds:       cfg.Backgrounds,
	}
	for _, def := range cfg.Screens {
		fs := fileScreen{ID: def.ID.String()}
		for _, b := range def.Buttons {
			fs.Buttons = append(fs.Buttons, fileButton{
				ID:         b.ID,
				Label:      b.Label,
				X:          b.Rect.X,
				Y:          b.Rect.Y,
				W:          b.Rect.W,
				H:          b.Rect.H,
				Color:      b.Color,
				Background: b.Background,
				Action:     b.Action.String(),
				Target:     b.Target.String(),
			})
		}
		fc.Screens = append(fc.Screens, fs)
	}
	return toml.Marshal(fc)
}
