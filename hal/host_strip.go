//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// hostStrip keeps the last frame written so the runners can draw it.
type hostStrip struct {
	mu     sync.Mutex
	frame  []color.RGBA
	writes uint64
}

func (s *hostStrip) WriteColors(buf []color.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = append(s.frame[:0], buf...)
	s.writes++
	return nil
}

func (s *hostStrip) snapshot(dst []color.RGBA) []color.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(dst[:0], s.frame...)
}
