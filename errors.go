package idtracker

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderViolation is matched by errors.Is on OrderViolationError.
	ErrOrderViolation = errors.New("pop order violated")
)

// OrderViolationError reports a pop that returned an id not strictly greater
// than the previous pop while no mark happened in between. It indicates a
// broken internal invariant and is raised as a panic value when order
// checking is enabled.
type OrderViolationError struct {
	Previous ID
	Got      ID
}

func (e *OrderViolationError) Error() string {
	return fmt.Sprintf("pop order violated: got %d after %d", e.Got, e.Previous)
}

func (e *OrderViolationError) Unwrap() error { return ErrOrderViolation }
