package randomwalk

import "errors"

// Sentinel errors returned by the random-walk environment.
var (
	// ErrBadStdDev indicates a negative standard deviation was supplied.
	ErrBadStdDev = errors.New("randomwalk: standard deviation must be non-negative")

	// ErrBadMaxSteps indicates a non-positive step budget was supplied.
	ErrBadMaxSteps = errors.New("randomwalk: maxSteps must be positive")

	// ErrNilGenerator indicates a nil noise generator was injected.
	ErrNilGenerator = errors.New("randomwalk: noise generator is nil")

	// ErrExhausted indicates Step was called after all pre-drawn noise was
	// consumed; construct a new environment to continue.
	ErrExhausted = errors.New("randomwalk: pre-drawn noise exhausted")
)
