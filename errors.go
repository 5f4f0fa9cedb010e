package rstar

import "errors"

var (
	// ErrUnknownEntry signals a handle that is not (or no longer) live.
	ErrUnknownEntry = errors.New("rstar: unknown entry handle")
	// ErrInvalidTree signals a violated structural invariant.
	ErrInvalidTree = errors.New("rstar: invalid tree structure")
)
