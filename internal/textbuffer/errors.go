package textbuffer

import (
	"errors"
	"fmt"
)

// Errors returned by buffer operations.
var (
	// ErrInvalidRange indicates a range outside the content or with start >= end.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidPosition indicates a position outside 0..Len().
	ErrInvalidPosition = errors.New("invalid position")

	// ErrNothingToUndo indicates the undo slot is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the redo slot is empty.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrNotFound indicates the find string does not occur in the content.
	ErrNotFound = errors.New("text not found")

	// ErrIOFailure indicates the content could not be written out.
	ErrIOFailure = errors.New("i/o failure")
)

// Kind classifies a buffer failure.
type Kind int

const (
	// KindNone is the kind of a nil or foreign error.
	KindNone Kind = iota
	KindInvalidRange
	KindInvalidPosition
	KindNothingToUndo
	KindNothingToRedo
	KindNotFound
	KindIOFailure
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalidRange:
		return "InvalidRange"
	case KindInvalidPosition:
		return "InvalidPosition"
	case KindNothingToUndo:
		return "NothingToUndo"
	case KindNothingToRedo:
		return "NothingToRedo"
	case KindNotFound:
		return "NotFound"
	case KindIOFailure:
		return "IOFailure"
	default:
		return "None"
	}
}

// sentinel returns the package error matching the kind.
func (k Kind) sentinel() error {
	switch k {
	case KindInvalidRange:
		return ErrInvalidRange
	case KindInvalidPosition:
		return ErrInvalidPosition
	case KindNothingToUndo:
		return ErrNothingToUndo
	case KindNothingToRedo:
		return ErrNothingToRedo
	case KindNotFound:
		return ErrNotFound
	case KindIOFailure:
		return ErrIOFailure
	default:
		return nil
	}
}

// Error is returned by every failing buffer operation.
type Error struct {
	Op     string // Operation name (e.g., "cut", "paste", "save")
	Kind   Kind   // Failure classification
	Detail string // Offending arguments, if any
	Err    error  // Underlying cause (IOFailure only)
}

func newError(op string, kind Kind, detail string) *Error {
	return &Error{Op: op, Kind: kind, Detail: detail}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}

	msg := fmt.Sprintf("%s: %v", e.Op, e.Kind.sentinel())
	if e.Detail != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Detail)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	s := e.Kind.sentinel()
	return s != nil && s == target
}

// KindOf returns the kind of err, or KindNone when err is not a buffer error.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindNone
}
