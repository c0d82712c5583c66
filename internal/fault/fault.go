// Package fault holds the error kinds shared by the controller packages.
//
// Callers match kinds with errors.Is; packages wrap them with detail.
package fault

import "errors"

var (
	// ErrInvalidArgument reports a bad construction parameter or malformed value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange reports an index outside a fixed-size container.
	ErrOutOfRange = errors.New("out of range")
)
