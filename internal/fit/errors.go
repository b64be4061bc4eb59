package fit

import "errors"

var (
	// ErrNoData is returned when fitting an empty sample.
	ErrNoData = errors.New("fit: empty sample")

	// ErrInvalidData is returned for negative or non-integer counts, or
	// counts outside their trial size.
	ErrInvalidData = errors.New("fit: invalid observation")

	// ErrUnknownOptimizer is returned when Config.Optimizer names no
	// supported optimizer.
	ErrUnknownOptimizer = errors.New("fit: unknown optimizer")
)
