package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a run configuration that cannot be stepped.
	ErrInvalidConfig = errors.New("sim: invalid run configuration")

	// ErrUnstable indicates the run produced non-finite energies.
	ErrUnstable = errors.New("sim: simulation unstable (non-finite thermo)")
)

// SimError ties a failure to the step it happened on.
type SimError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimError) Unwrap() error { return e.Wrapped }
