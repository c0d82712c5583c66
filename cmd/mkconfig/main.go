//go:build !tinygo

// Command mkconfig writes the built-in controller configuration as TOML, as a
// starting point for a -config file. With -check it validates an existing file
// by building the controller against a host HAL without running it.
package main

import (
	"flag"
	"fmt"
	"os"

	"pixelpad/app"
	"pixelpad/hal"
)

const defaultConfigPath = "pixelpad.toml"

func main() {
	var (
		out   string
		check string
	)
	flag.StringVar(&out, "o", defaultConfigPath, "Output path (- for stdout).")
	flag.StringVar(&check, "check", "", "Validate this config file instead of writing one.")
	flag.Parse()

	if check != "" {
		if err := checkConfig(check); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok\n", check)
		return
	}

	data, err := app.MarshalConfig(app.DefaultConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if out == "-" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %q: %v\n", out, err)
		os.Exit(1)
	}
}

func checkConfig(path string) error {
	cfg, err := app.LoadConfigFile(path, app.DefaultConfig())
	if err != nil {
		return err
	}
	_, err = app.New(hal.New(), cfg)
	return err
}
