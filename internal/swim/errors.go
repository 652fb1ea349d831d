package swim

import "errors"

// Precondition violations reported by Driver.Swim. These fail fast; the
// degraded outcomes (no error estimation, step-size collapse) are benign
// returns, not errors.
var (
	// ErrBadStepSize indicates a non-positive initial step size.
	ErrBadStepSize = errors.New("swim: initial step size must be positive")

	// ErrDimensionMismatch indicates the tolerance vector and state vector
	// have different dimensions.
	ErrDimensionMismatch = errors.New("swim: tolerance and state dimensions differ")
)
