package ui

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"pixelpad/internal/fault"
	"pixelpad/led"
)

type recordSurface struct {
	ops []string
}

func (s *recordSurface) ShowBackground(token string) {
	s.ops = append(s.ops, "bg "+token)
}

func (s *recordSurface) SetButtonVisible(b *Button, visible bool) {
	s.ops = append(s.ops, fmt.Sprintf("%s=%v", b.ID, visible))
}

func testScreens() []ScreenDef {
	return []ScreenDef{
		{
			ID: Picker,
			Buttons: []Button{
				{ID: "red", Rect: Rect{X: 10, Y: 10, W: 60, H: 60}, Color: led.RGB(255, 0, 0), Background: "empty", Target: Status},
				{ID: "yellow", Rect: Rect{X: 90, Y: 10, W: 60, H: 60}, Color: led.RGB(255, 170, 0), Background: "half", Target: Status},
				{ID: "green", Rect: Rect{X: 170, Y: 10, W: 60, H: 60}, Color: led.RGB(0, 255, 0), Background: "full", Target: Status},
			},
		},
		{
			ID: Status,
			Buttons: []Button{
				{ID: "back", Rect: Rect{X: 230, Y: 170, W: 80, H: 60}, Action: ActionBack, Target: Picker},
			},
		},
	}
}

func TestNewStateShowsPicker(t *testing.T) {
	surf := &recordSurface{}
	s, err := NewState(testScreens(), "default", surf)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	if s.Active() != Picker {
		t.Fatalf("Active() = %v, want picker", s.Active())
	}
	if s.Background() != "default" {
		t.Fatalf("Background() = %q, want default", s.Background())
	}
	if got, want := s.VisibleButtons(), []string{"red", "yellow", "green"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("VisibleButtons() = %v, want %v", got, want)
	}
	want := []string{"bg default", "red=true", "yellow=true", "green=true", "back=false"}
	if !reflect.DeepEqual(surf.ops, want) {
		t.Fatalf("surface ops = %v, want %v", surf.ops, want)
	}
}

func TestNewStateInvalid(t *testing.T) {
	cases := map[string]func([]ScreenDef) []ScreenDef{
		"duplicate screen": func(d []ScreenDef) []ScreenDef { return append(d, ScreenDef{ID: Status}) },
		"duplicate button": func(d []ScreenDef) []ScreenDef {
			d[0].Buttons[1].ID = "red"
			return d
		},
		"empty rect": func(d []ScreenDef) []ScreenDef {
			d[0].Buttons[0].Rect.W = 0
			return d
		},
		"no id": func(d []ScreenDef) []ScreenDef {
			d[1].Buttons[0].ID = ""
			return d
		},
		"no picker":      func(d []ScreenDef) []ScreenDef { return d[1:] },
		"missing target": func(d []ScreenDef) []ScreenDef { return d[:1] },
	}
	for name, mutate := range cases {
		if _, err := NewState(mutate(testScreens()), "default", nil); !errors.Is(err, fault.ErrInvalidArgument) {
			t.Fatalf("%s: err = %v, want ErrInvalidArgument", name, err)
		}
	}
}

func TestHitTestMiss(t *testing.T) {
	s, err := NewState(testScreens(), "default", nil)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	if b, ok := s.HitTest(80, 40); ok {
		t.Fatalf("HitTest(80,40) = %q, want miss between buttons", b.ID)
	}
	// The back button is hidden on the picker.
	if b, ok := s.HitTest(250, 200); ok {
		t.Fatalf("HitTest(250,200) = %q, want miss on hidden button", b.ID)
	}
}

func TestHitTestInclusiveEdges(t *testing.T) {
	s, err := NewState(testScreens(), "default", nil)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	for _, pt := range [][2]int{{10, 10}, {70, 70}, {10, 70}, {70, 10}} {
		b, ok := s.HitTest(pt[0], pt[1])
		if !ok || b.ID != "red" {
			t.Fatalf("HitTest(%v) = %v, %v, want red", pt, b, ok)
		}
	}
}

func TestHitTestFirstDeclaredWins(t *testing.T) {
	defs := []ScreenDef{
		{
			ID: Picker,
			Buttons: []Button{
				{ID: "first", Rect: Rect{X: 0, Y: 0, W: 100, H: 100}, Target: Picker},
				{ID: "second", Rect: Rect{X: 50, Y: 50, W: 100, H: 100}, Target: Picker},
			},
		},
	}
	s, err := NewState(defs, "default", nil)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	for x := 50; x <= 100; x += 5 {
		for y := 50; y <= 100; y += 5 {
			b, ok := s.HitTest(x, y)
			if !ok || b.ID != "first" {
				t.Fatalf("HitTest(%d,%d) = %v, %v, want first", x, y, b, ok)
			}
		}
	}
	if b, ok := s.HitTest(140, 140); !ok || b.ID != "second" {
		t.Fatalf("HitTest(140,140) = %v, %v, want second", b, ok)
	}
}

func TestGreenThenBackRoundTrip(t *testing.T) {
	surf := &recordSurface{}
	s, err := NewState(testScreens(), "default", surf)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	startButtons := s.VisibleButtons()
	startBG := s.Background()

	green, ok := s.HitTest(200, 40)
	if !ok || green.ID != "green" {
		t.Fatalf("HitTest(200,40) = %v, %v, want green", green, ok)
	}
	surf.ops = nil
	tr := s.Activate(green)
	if tr.From != Picker || tr.To != Status || !tr.SetColor || tr.Color != led.RGB(0, 255, 0) {
		t.Fatalf("Activate(green) = %+v", tr)
	}
	if s.Active() != Status || s.Background() != "full" {
		t.Fatalf("after green: screen=%v bg=%q, want status/full", s.Active(), s.Background())
	}
	if got := s.VisibleButtons(); !reflect.DeepEqual(got, []string{"back"}) {
		t.Fatalf("after green: visible = %v, want [back]", got)
	}
	wantOps := []string{"red=false", "yellow=false", "green=false", "bg full", "back=true"}
	if !reflect.DeepEqual(surf.ops, wantOps) {
		t.Fatalf("surface ops = %v, want %v", surf.ops, wantOps)
	}

	// Picker buttons are hidden now, so the old green spot misses.
	if _, ok := s.HitTest(200, 40); ok {
		t.Fatal("HitTest on hidden picker button hit")
	}

	back, ok := s.HitTest(260, 200)
	if !ok || back.ID != "back" {
		t.Fatalf("HitTest(260,200) = %v, %v, want back", back, ok)
	}
	tr = s.Activate(back)
	if tr.SetColor || tr.To != Picker {
		t.Fatalf("Activate(back) = %+v", tr)
	}
	if s.Active() != Picker {
		t.Fatalf("Active() = %v, want picker", s.Active())
	}
	if s.Background() != startBG {
		t.Fatalf("Background() = %q, want %q", s.Background(), startBG)
	}
	if got := s.VisibleButtons(); !reflect.DeepEqual(got, startButtons) {
		t.Fatalf("VisibleButtons() = %v, want %v", got, startButtons)
	}
}

func TestSelectWithoutBackgroundUsesDefault(t *testing.T) {
	defs := testScreens()
	defs[0].Buttons[0].Background = ""
	s, err := NewState(defs, "default", nil)
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	red := s.Screen(Picker).Button("red")
	s.Activate(red)
	if s.Background() != "default" {
		t.Fatalf("Background() = %q, want default", s.Background())
	}
}

func TestParseNames(t *testing.T) {
	for _, id := range []ScreenID{Picker, Status} {
		got, err := ParseScreenID(id.String())
		if err != nil || got != id {
			t.Fatalf("ParseScreenID(%q) = %v, %v", id.String(), got, err)
		}
	}
	if _, err := ParseScreenID("settings"); err == nil {
		t.Fatal("ParseScreenID(settings) err = nil")
	}
	for _, a := range []Action{ActionSelect, ActionBack} {
		got, err := ParseAction(a.String())
		if err != nil || got != a {
			t.Fatalf("ParseAction(%q) = %v, %v", a.String(), got, err)
		}
	}
}
