package vector

// Scalar is the numeric type used by all vector and matrix operations.
//
// Aliased to float64 for precision.
type Scalar = float64

// Scalable is satisfied by any value that can be scaled by a Scalar and
// returns a new value of the same type. Vec2, Vec3 and the matrix types
// all qualify.
type Scalable[T any] interface {
	Scale(s Scalar) T
}

// Scale multiplies v by s with the scalar on the left-hand side. It is
// the scalar-first counterpart of the Scale method and produces
// identical results for every scalable type.
func Scale[T Scalable[T]](s Scalar, v T) T {
	return v.Scale(s)
}
