package vector

import (
	"fmt"
	"math"
)

// Vec3 is a 3-dimensional vector.
//
// Like Vec2 it is a plain comparable value type. The zero value is the
// zero vector, so var v Vec3 is equivalent to Zero3().
type Vec3 struct {
	X, Y, Z Scalar
}

// V3 constructs a Vec3 from its components.
func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Zero3 returns the zero vector (0, 0, 0).
func Zero3() Vec3 { return Vec3{} }

// One3 returns the all-ones vector (1, 1, 1).
func One3() Vec3 { return Vec3{1, 1, 1} }

// UnitX returns the unit basis vector (1, 0, 0).
func UnitX() Vec3 { return Vec3{X: 1} }

// UnitY returns the unit basis vector (0, 1, 0).
func UnitY() Vec3 { return Vec3{Y: 1} }

// UnitZ returns the unit basis vector (0, 0, 1).
func UnitZ() Vec3 { return Vec3{Z: 1} }

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference of v and o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Neg returns v with every component negated.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Scale returns v with every component multiplied by s.
func (v Vec3) Scale(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Div returns v with every component divided by s. Division by zero
// follows IEEE-754: components become Inf or NaN, no error is signaled.
func (v Vec3) Div(s Scalar) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }

// Mul returns the Hadamard (component-wise) product of v and o. Useful
// for colour blending and per-component scaling.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) Scalar { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of v and o: a vector perpendicular
// to both inputs, oriented by the right-hand rule, with magnitude
// equal to the area of the parallelogram they span.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Mag returns the magnitude (Euclidean length) of v.
func (v Vec3) Mag() Scalar { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// MagSq returns the squared magnitude of v, avoiding the square root.
func (v Vec3) MagSq() Scalar { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Map applies f to each component of v and returns the resulting
// vector.
func (v Vec3) Map(f func(Scalar) Scalar) Vec3 { return Vec3{f(v.X), f(v.Y), f(v.Z)} }

// Normalize returns the unit-length vector pointing in the direction
// of v. It returns ErrZeroVector when v has zero magnitude.
func (v Vec3) Normalize() (Vec3, error) {
	m := v.Mag()
	if m == 0 {
		return Vec3{}, ErrZeroVector
	}
	return v.Map(func(c Scalar) Scalar { return c / m }), nil
}

// String renders v in the form "(x, y, z)".
func (v Vec3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}

// Colour is an RGB colour with components conventionally in [0, 1].
// The range is a convention, not an enforced invariant. Alias for
// Vec3.
type Colour = Vec3

// Point3D is a position in 3D space. Alias for Vec3.
type Point3D = Vec3

// Dist returns the unsigned distance between the points p and o.
func (p Point3D) Dist(o Point3D) Scalar {
	return math.Abs(p.Sub(o).Mag())
}

// DistSq returns the squared distance between the points p and o.
func (p Point3D) DistSq(o Point3D) Scalar {
	return math.Abs(p.Sub(o).MagSq())
}
