package repl

import "errors"

// Sentinel errors.
var (
	ErrOutOfBounds = errors.New("index out of range")
	ErrAssignment  = errors.New("invalid assignment target")
)
