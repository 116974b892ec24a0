package octonav

import (
	"errors"
	"fmt"

	"github.com/hupe1980/octonav/internal/scheduler"
)

var (
	// ErrUnknownCell is returned when a cell or position does not resolve to
	// a node of the navigation graph. Callers are expected to retry with a
	// different request.
	ErrUnknownCell = errors.New("cell is not part of the navigation graph")

	// ErrEmptyNavigation accompanies ErrUnknownCell when the graph has no
	// nodes at all, for example after building from empty geometry.
	ErrEmptyNavigation = errors.New("navigation graph is empty")

	// ErrClosed is returned when submitting to a closed scheduler.
	ErrClosed = scheduler.ErrClosed

	// ErrUnknownHeuristic is the cause of an ErrInvalidConfig for a
	// heuristic name or value that does not exist.
	ErrUnknownHeuristic = errors.New("unknown heuristic")

	// ErrNotANumber is the cause of an ErrInvalidConfig for a NaN float.
	ErrNotANumber = errors.New("value is NaN")
)

// ErrInvalidConfig indicates a configuration value out of range.
//
// Unknown heuristics unwrap to ErrUnknownHeuristic and NaN floats to
// ErrNotANumber.
type ErrInvalidConfig struct {
	Field string
	Value any
	cause error
}

func (e *ErrInvalidConfig) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("invalid config: %s = %v: %v", e.Field, e.Value, e.cause)
	}
	return fmt.Sprintf("invalid config: %s = %v", e.Field, e.Value)
}

func (e *ErrInvalidConfig) Unwrap() error { return e.cause }

func unknownCell(empty bool) error {
	if empty {
		return fmt.Errorf("%w: %w", ErrUnknownCell, ErrEmptyNavigation)
	}
	return ErrUnknownCell
}
