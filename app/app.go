package app

import (
	"fmt"
	"time"

	"pixelpad/anim"
	"pixelpad/hal"
	"pixelpad/internal/buildinfo"
	"pixelpad/led"
	"pixelpad/ui"
)

// App owns all controller state. It is driven by a single loop and is not
// safe for concurrent use.
type App struct {
	log    hal.Logger
	touch  hal.Touch
	clock  hal.Clock
	beeper hal.Beeper

	threshold int

	strip  *led.PixelBuffer
	engine *anim.Engine
	ui     *ui.State
}

// New builds the controller. Any error leaves nothing running; the caller
// must not enter the loop.
func New(h hal.HAL, cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := h.Logger()

	strip, err := led.NewPixelBuffer(cfg.StripSize, h.Strip())
	if err != nil {
		return nil, fmt.Errorf("app: strip: %w", err)
	}
	if err := strip.SetBrightness(cfg.Brightness); err != nil {
		return nil, fmt.Errorf("app: strip: %w", err)
	}
	strip.Fill(led.Black)
	if err := strip.Flush(); err != nil {
		log.WriteLineString(fmt.Sprintf("app: initial strip flush: %v", err))
	}

	engine, err := anim.NewEngine(strip, cfg.AnimationHz, log)
	if err != nil {
		return nil, fmt.Errorf("app: animation: %w", err)
	}
	if err := engine.SetPattern(cfg.Pattern); err != nil {
		return nil, fmt.Errorf("app: animation: %w", err)
	}

	var surf ui.Surface = ui.NopSurface{}
	if d := h.Display(); d != nil {
		surf = ui.NewPainter(d, cfg.Backgrounds, log)
	}
	state, err := ui.NewState(cfg.Screens, cfg.DefaultBackground, surf)
	if err != nil {
		return nil, fmt.Errorf("app: screens: %w", err)
	}

	beeper := h.Beeper()
	if beeper == nil {
		beeper = nopBeeper{}
	}

	log.WriteLineString(fmt.Sprintf("pixelpad %s: %d pixels at %.0f%%, %v at %.3gHz",
		buildinfo.Short(), strip.Len(), strip.Brightness()*100, engine.Pattern(), engine.Task().Frequency()))
	return &App{
		log:    log,
		touch:  h.Touch(),
		clock:  h.Clock(),
		beeper: beeper,
		strip:  strip,
		engine: engine,
		ui:     state,

		threshold: cfg.TouchThreshold,
	}, nil
}

// NewStep adapts New to the host runners.
func NewStep(h hal.HAL, cfg Config) (func() error, error) {
	a, err := New(h, cfg)
	if err != nil {
		return nil, err
	}
	return a.Step, nil
}

// Step runs one loop iteration: one touch sample, at most one button
// activation, then one animation update. It never blocks.
func (a *App) Step() error {
	if b, ok := a.poll(); ok {
		a.activate(b)
	}
	a.engine.Update(a.clock.Now())
	return nil
}

func (a *App) poll() (*ui.Button, bool) {
	if a.touch == nil {
		return nil, false
	}
	p := a.touch.ReadTouchPoint()
	if p.Z <= 0 || p.Z < a.threshold {
		return nil, false
	}
	return a.ui.HitTest(p.X, p.Y)
}

func (a *App) activate(b *ui.Button) {
	tr := a.ui.Activate(b)
	if tr.SetColor {
		a.engine.SetBaseColor(tr.Color)
	}
	a.beeper.Click()
	a.log.WriteLineString(fmt.Sprintf("touched %s: %v -> %v, color %v", tr.Button, tr.From, tr.To, a.engine.BaseColor()))
}

func (a *App) Screen() ui.ScreenID      { return a.ui.Active() }
func (a *App) Background() string       { return a.ui.Background() }
func (a *App) BaseColor() led.Color     { return a.engine.BaseColor() }
func (a *App) Frames() uint64           { return a.engine.Offset() }
func (a *App) Pattern() anim.Pattern    { return a.engine.Pattern() }
func (a *App) VisibleButtons() []string { return a.ui.VisibleButtons() }

// Run builds the controller and loops forever (board entrypoint). A build
// error or a panic halts on an error screen.
func Run(h hal.HAL, cfg Config) {
	defer func() {
		if r := recover(); r != nil {
			halt(h, fmt.Errorf("panic: %v", r))
		}
	}()

	a, err := New(h, cfg)
	if err != nil {
		halt(h, err)
	}
	for {
		_ = a.Step()
		if cfg.LoopInterval > 0 {
			time.Sleep(cfg.LoopInterval)
		}
	}
}

type nopBeeper struct{}

func (nopBeeper) Click() {}
