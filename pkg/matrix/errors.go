package matrix

import "errors"

// Matrix-specific errors
var (
	// ErrSingular reports an attempt to invert a matrix whose
	// determinant is exactly zero.
	ErrSingular = errors.New("matrix is singular and cannot be inverted")
)
