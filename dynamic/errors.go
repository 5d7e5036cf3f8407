package dynamic

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every *ArgumentError.
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUnknownFunction   = errors.New("unknown function")
	ErrDuplicateFunction = errors.New("function already registered")
)

// ArgumentError reports an argument an operation cannot accept.
type ArgumentError struct {
	Func     string
	Position int
	Reason   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("dynamic: argument %d to %s: %s", e.Position, e.Func, e.Reason)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalid(fn string, index int, format string, a ...any) error {
	return &ArgumentError{Func: fn, Position: index + 1, Reason: fmt.Sprintf(format, a...)}
}
