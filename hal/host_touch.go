//go:build !tinygo

package hal

import (
	"sync"

	"tinygo.org/x/drivers/touch"
)

// hostTouch holds the pointer state fed by whichever runner is active
// (mouse in the window or terminal, scripted taps when headless).
type hostTouch struct {
	mu sync.Mutex
	pt touch.Point
}

func (t *hostTouch) ReadTouchPoint() touch.Point {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pt
}

func (t *hostTouch) press(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pt = touch.Point{X: x, Y: y, Z: 1}
}

func (t *hostTouch) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pt = touch.Point{}
}
