// Package ui holds the picker/status screens, their buttons and the
// transitions between them.
package ui

import (
	"fmt"

	"pixelpad/led"
)

// Rect is a screen region in pixels.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether (x, y) lies in r. Edges are inclusive on all
// sides, so a point on the right or bottom border still hits.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Action is what a button does when touched.
type Action uint8

const (
	// ActionSelect sets the strip color and the button's background, then
	// switches to the target screen.
	ActionSelect Action = iota
	// ActionBack restores the default background and switches to the target screen.
	ActionBack
)

func (a Action) String() string {
	switch a {
	case ActionSelect:
		return "select"
	case ActionBack:
		return "back"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// ParseAction is the inverse of Action.String.
func ParseAction(s string) (Action, error) {
	switch s {
	case "select", "":
		return ActionSelect, nil
	case "back":
		return ActionBack, nil
	}
	return 0, fmt.Errorf("ui: unknown action %q", s)
}

// Button is a touch target. Topology is fixed once a State is built; only
// visibility changes afterwards.
type Button struct {
	ID         string
	Label      string
	Rect       Rect
	Color      led.Color
	Background string
	Action     Action
	Target     ScreenID

	visible bool
}

func (b *Button) Visible() bool { return b.visible }
