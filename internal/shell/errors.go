package shell

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a non-numeric argument where a number was required.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes the rejected input.
type InputError struct {
	Want  string // What was expected (e.g., "two indices")
	Input string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: want %s, got %q", ErrInvalidInput, e.Want, e.Input)
}

// Is reports ErrInvalidInput for every InputError.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
