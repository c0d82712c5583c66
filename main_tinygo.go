//go:build tinygo

package main

import (
	"pixelpad/app"
	"pixelpad/hal"
)

func main() {
	app.Run(hal.New(), app.DefaultConfig())
}
