package ui

import "fmt"

// ScreenID names a UI state.
type ScreenID uint8

const (
	Picker ScreenID = iota
	Status
)

func (s ScreenID) String() string {
	switch s {
	case Picker:
		return "picker"
	case Status:
		return "status"
	default:
		return fmt.Sprintf("screen(%d)", uint8(s))
	}
}

func ParseScreenID(s string) (ScreenID, error) {
	switch s {
	case "picker":
		return Picker, nil
	case "status":
		return Status, nil
	}
	return 0, fmt.Errorf("ui: unknown screen %q", s)
}

// ScreenDef declares a screen and its buttons in hit-test order.
type ScreenDef struct {
	ID      ScreenID
	Buttons []Button
}

// Screen is a named state owning its buttons.
type Screen struct {
	ID      ScreenID
	Buttons []*Button
}

// Button returns the button with the given id, or nil.
func (s *Screen) Button(id string) *Button {
	for _, b := range s.Buttons {
		if b.ID == id {
			return b
		}
	}
	return nil
}
