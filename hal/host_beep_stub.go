//go:build !tinygo && !cgo

package hal

func newHostBeeper() (Beeper, error) {
	return nil, ErrNotImplemented
}
