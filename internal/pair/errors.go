package pair

import (
	"errors"
	"fmt"
)

// Domain errors for pair configuration and evaluation.
var (
	// ErrConfig indicates a malformed command or an inconsistent setup.
	// It is fatal: parameter state would otherwise diverge across processes.
	ErrConfig = errors.New("pair: configuration error")

	// ErrTypeRange indicates an atom type outside [1, ntypes].
	ErrTypeRange = errors.New("pair: atom type out of range")

	// ErrNotInitialized indicates Compute, Single or Cutoff before Init.
	ErrNotInitialized = errors.New("pair: engine not initialized")

	// ErrUnknownStyle indicates a style name missing from the registry.
	ErrUnknownStyle = errors.New("pair: unknown pair style")
)

// Error wraps a domain error with the command that produced it.
type Error struct {
	Style   string
	Op      string
	Msg     string
	Wrapped error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Style, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

func configError(style, op, format string, args ...any) error {
	return &Error{Style: style, Op: op, Msg: fmt.Sprintf(format, args...), Wrapped: ErrConfig}
}

func rangeError(i, j, ntypes int) error {
	return fmt.Errorf("%w: (%d,%d) not in [1,%d]", ErrTypeRange, i, j, ntypes)
}
