package ui

import (
	"fmt"

	"pixelpad/internal/fault"
	"pixelpad/led"
)

// Surface is the display side of the UI: it is told what should be visible
// and decides how to draw it.
type Surface interface {
	ShowBackground(token string)
	SetButtonVisible(b *Button, visible bool)
}

// NopSurface discards all drawing.
type NopSurface struct{}

func (NopSurface) ShowBackground(string)          {}
func (NopSurface) SetButtonVisible(*Button, bool) {}

// Transition describes the effect of activating a button.
type Transition struct {
	Button   string
	From, To ScreenID
	// Color is the new strip base color; only meaningful when SetColor is set.
	Color    led.Color
	SetColor bool
}

// State is the UI state machine. Exactly one screen is active; only its
// buttons are visible.
type State struct {
	screens    []*Screen
	active     *Screen
	defaultBG  string
	background string
	surf       Surface
}

// NewState validates the screen set and shows the picker with the default
// background.
func NewState(defs []ScreenDef, defaultBackground string, surf Surface) (*State, error) {
	if surf == nil {
		surf = NopSurface{}
	}
	s := &State{defaultBG: defaultBackground, surf: surf}

	seen := make(map[ScreenID]bool, len(defs))
	for _, def := range defs {
		if seen[def.ID] {
			return nil, fmt.Errorf("ui: duplicate screen %v: %w", def.ID, fault.ErrInvalidArgument)
		}
		seen[def.ID] = true

		scr := &Screen{ID: def.ID}
		ids := make(map[string]bool, len(def.Buttons))
		for i := range def.Buttons {
			b := def.Buttons[i]
			if b.ID == "" {
				return nil, fmt.Errorf("ui: screen %v: button %d has no id: %w", def.ID, i, fault.ErrInvalidArgument)
			}
			if ids[b.ID] {
				return nil, fmt.Errorf("ui: screen %v: duplicate button %q: %w", def.ID, b.ID, fault.ErrInvalidArgument)
			}
			ids[b.ID] = true
			if b.Rect.W <= 0 || b.Rect.H <= 0 {
				return nil, fmt.Errorf("ui: button %q: empty rect %+v: %w", b.ID, b.Rect, fault.ErrInvalidArgument)
			}
			b.visible = false
			scr.Buttons = append(scr.Buttons, &b)
		}
		s.screens = append(s.screens, scr)
	}

	if !seen[Picker] {
		return nil, fmt.Errorf("ui: no picker screen: %w", fault.ErrInvalidArgument)
	}
	for _, scr := range s.screens {
		for _, b := range scr.Buttons {
			if !seen[b.Target] {
				return nil, fmt.Errorf("ui: button %q targets missing screen %v: %w", b.ID, b.Target, fault.ErrInvalidArgument)
			}
		}
	}

	s.active = s.Screen(Picker)
	s.background = defaultBackground
	surf.ShowBackground(defaultBackground)
	for _, scr := range s.screens {
		s.setVisible(scr, scr == s.active)
	}
	return s, nil
}

// Screen returns the screen with the given id, or nil.
func (s *State) Screen(id ScreenID) *Screen {
	for _, scr := range s.screens {
		if scr.ID == id {
			return scr
		}
	}
	return nil
}

func (s *State) Active() ScreenID   { return s.active.ID }
func (s *State) Background() string { return s.background }

// VisibleButtons lists the ids of all visible buttons in declaration order.
func (s *State) VisibleButtons() []string {
	var ids []string
	for _, scr := range s.screens {
		for _, b := range scr.Buttons {
			if b.visible {
				ids = append(ids, b.ID)
			}
		}
	}
	return ids
}

// HitTest returns the first visible button of the active screen containing
// (x, y), in declaration order.
func (s *State) HitTest(x, y int) (*Button, bool) {
	for _, b := range s.active.Buttons {
		if b.visible && b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return nil, false
}

// Activate applies b's action: the old screen's buttons are hidden, the
// background is swapped and the target screen's buttons are shown.
func (s *State) Activate(b *Button) Transition {
	tr := Transition{Button: b.ID, From: s.active.ID, To: b.Target}

	bg := s.defaultBG
	if b.Action == ActionSelect {
		tr.Color = b.Color
		tr.SetColor = true
		if b.Background != "" {
			bg = b.Background
		}
	}

	next := s.Screen(b.Target)
	if next != s.active {
		s.setVisible(s.active, false)
	}
	s.background = bg
	s.surf.ShowBackground(bg)
	s.active = next
	s.setVisible(next, true)
	return tr
}

func (s *State) setVisible(scr *Screen, visible bool) {
	for _, b := range scr.Buttons {
		b.visible = visible
		s.surf.SetButtonVisible(b, visible)
	}
}
