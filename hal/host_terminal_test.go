//go:build !tinygo

package hal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestPollEventsKeepsEveryMouseEvent(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()

	const presses = 100
	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	go func() {
		for i := 0; i < presses; i++ {
			screen.InjectMouse(i%10, 0, tcell.Button1, tcell.ModNone)
		}
		screen.InjectMouse(0, 0, tcell.ButtonNone, tcell.ModNone)
	}()

	var last *tcell.EventMouse
	for i := 0; i <= presses; i++ {
		select {
		case ev := <-events:
			m, ok := ev.(*tcell.EventMouse)
			if !ok {
				t.Fatalf("event %d = %T, want mouse", i, ev)
			}
			last = m
		case <-time.After(2 * time.Second):
			t.Fatalf("got %d events, want %d", i, presses+1)
		}
	}
	if last.Buttons()&tcell.Button1 != 0 {
		t.Fatalf("last event buttons = %v, want the release", last.Buttons())
	}
}

func TestPollEventsStopsOnFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	stopped := make(chan struct{})
	go func() {
		pollEvents(screen, make(chan tcell.Event), make(chan struct{}))
		close(stopped)
	}()
	screen.Fini()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("pollEvents still running after Fini")
	}
}

func TestTerminalMouseReleaseClearsTouch(t *testing.T) {
	h := newHostHAL(nil)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 25)
	v := &termView{h: h, screen: screen}

	v.handle(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	if p := h.touch.ReadTouchPoint(); p.Z == 0 {
		t.Fatal("press did not reach the touch device")
	}
	v.handle(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	if p := h.touch.ReadTouchPoint(); p.Z != 0 {
		t.Fatalf("touch = %+v after release, want none", p)
	}
}
