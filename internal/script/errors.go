package script

import (
	"errors"
	"fmt"
)

// Errors returned by the runner.
var (
	// ErrTimeout is returned when a script runs past its deadline.
	ErrTimeout = errors.New("script timed out")

	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")
)

// Error wraps a failure raised while executing a script.
type Error struct {
	Script string // Script path or chunk name
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("script %s: %v", e.Script, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
