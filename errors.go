package hclust

import "errors"

var (
	// ErrCancelled is returned when the Cancelled callback reported true
	// during a run. No partial result accompanies it; all working state for
	// the call has been released.
	ErrCancelled = errors.New("hclust: cancelled")

	// ErrInvalidInput is returned for malformed input: vectors of unequal
	// length, or a Labels slice whose length does not match the data.
	ErrInvalidInput = errors.New("hclust: invalid input")

	// ErrEngineFailure is returned when the agglomeration loop detects an
	// internal invariant violation. It indicates a bug, not bad input, and
	// the call is never retried.
	ErrEngineFailure = errors.New("hclust: engine failure")
)
