package vector

import "math"

// Vec2 is a 2-dimensional vector.
//
// Vec2 is a plain comparable value type: every operation returns a new
// value, and two vectors compare equal with == exactly when all
// components match bit for bit.
type Vec2 struct {
	X, Y Scalar
}

// V2 constructs a Vec2 from its components.
func V2(x, y Scalar) Vec2 { return Vec2{X: x, Y: y} }

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference of v and o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Neg returns v with every component negated.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Scale returns v with every component multiplied by s.
func (v Vec2) Scale(s Scalar) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Div returns v with every component divided by s. Division by zero
// follows IEEE-754: components become Inf or NaN, no error is signaled.
func (v Vec2) Div(s Scalar) Vec2 { return Vec2{v.X / s, v.Y / s} }

// Mul returns the Hadamard (component-wise) product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 { return Vec2{v.X * o.X, v.Y * o.Y} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) Scalar { return v.X*o.X + v.Y*o.Y }

// Cross returns the scalar 2D cross product of v and o: the signed z
// component of the two vectors embedded in 3D, equal to the signed
// area of the parallelogram they span. Unlike Vec3.Cross the result is
// a Scalar, not a vector.
func (v Vec2) Cross(o Vec2) Scalar { return v.X*o.Y - v.Y*o.X }

// Mag returns the magnitude (Euclidean length) of v.
func (v Vec2) Mag() Scalar { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// MagSq returns the squared magnitude of v, avoiding the square root.
func (v Vec2) MagSq() Scalar { return v.X*v.X + v.Y*v.Y }

// Map applies f to each component of v and returns the resulting
// vector.
func (v Vec2) Map(f func(Scalar) Scalar) Vec2 { return Vec2{f(v.X), f(v.Y)} }

// Normalize returns the unit-length vector pointing in the direction
// of v. It returns ErrZeroVector when v has zero magnitude.
func (v Vec2) Normalize() (Vec2, error) {
	m := v.Mag()
	if m == 0 {
		return Vec2{}, ErrZeroVector
	}
	return v.Map(func(c Scalar) Scalar { return c / m }), nil
}

// Point2D is a position in 2D space. Alias for Vec2: the distinction
// is semantic only, a point is a location while a vector is a
// displacement.
type Point2D = Vec2

// Dist returns the unsigned distance between the points p and o.
func (p Point2D) Dist(o Point2D) Scalar {
	return math.Abs(p.Sub(o).Mag())
}

// DistSq returns the squared distance between the points p and o.
func (p Point2D) DistSq(o Point2D) Scalar {
	return math.Abs(p.Sub(o).MagSq())
}
