package vector

import "errors"

// Vector-specific errors
var (
	// ErrZeroVector reports an attempt to normalize a vector whose
	// magnitude is exactly zero.
	ErrZeroVector = errors.New("cannot normalize a zero-magnitude vector")
)
