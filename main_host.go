//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"pixelpad/app"
	"pixelpad/hal"
	"pixelpad/internal/buildinfo"
)

type tapList []hal.Tap

func (l *tapList) String() string { return fmt.Sprint(len(*l)) }

func (l *tapList) Set(s string) error {
	tap, err := hal.ParseTap(s)
	if err != nil {
		return err
	}
	*l = append(*l, tap)
	return nil
}

func main() {
	var cfg hal.HeadlessConfig
	var (
		taps       tapList
		term       bool
		beep       bool
		scale      int
		configPath string
		strip      int
		brightness float64
		animHz     float64
		version    bool
	)
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Loop rate in headless and terminal mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Var(&taps, "tap", "Scripted touch in headless mode, tick[+hold]:x,y (repeatable).")
	flag.BoolVar(&cfg.LogStrip, "log-strip", false, "Log every strip frame in headless mode.")
	flag.BoolVar(&term, "term", false, "Run the terminal simulator.")
	flag.BoolVar(&beep, "beep", false, "Click on every button press.")
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.StringVar(&configPath, "config", "", "TOML config file (see cmd/mkconfig).")
	flag.IntVar(&strip, "strip", 0, "Override the strip length.")
	flag.Float64Var(&brightness, "brightness", 1, "Strip brightness in [0,1].")
	flag.Float64Var(&animHz, "anim-hz", 0, "Override the animation rate.")
	flag.BoolVar(&version, "version", false, "Print the build info and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Long())
		return
	}

	appCfg := app.DefaultConfig()
	if configPath != "" {
		var err error
		appCfg, err = app.LoadConfigFile(configPath, appCfg)
		if err != nil {
			fail(err)
		}
	}
	// The board default of 10% is too dim to see on a monitor.
	flagSet := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { flagSet[f.Name] = true })
	if configPath == "" || flagSet["brightness"] {
		appCfg.Brightness = brightness
	}
	if strip > 0 {
		appCfg.StripSize = strip
	}
	if animHz > 0 {
		appCfg.AnimationHz = animHz
	}

	newApp := func(h hal.HAL) (func() error, error) {
		return app.NewStep(h, appCfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case cfg.Enabled:
		cfg.Taps = taps
		cfg.Beep = beep
		err = hal.RunHeadless(ctx, newApp, cfg)
	case term:
		err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{Hz: cfg.Hz, Beep: beep}, os.Stderr)
	default:
		err = hal.RunWindow(newApp, hal.WindowConfig{Scale: scale, Beep: beep})
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
