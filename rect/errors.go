package rect

import "errors"

var (
	// ErrEmptyCollection signals an MBR request over zero rectangles.
	ErrEmptyCollection = errors.New("rect: empty collection has no bounding rectangle")
)
