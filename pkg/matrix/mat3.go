package matrix

import (
	"math"

	"github.com/zeusync/linal/pkg/vector"
)

// Epsilon is the absolute per-entry tolerance used by Mat3.Equal.
// Inversion goes through nine cofactor products, so results carry a
// little rounding noise that exact comparison would reject.
const Epsilon = 1e-9

// Mat3 is a 3×3 matrix of Scalar values stored in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//	| G  H  I |
//
// It pairs with vector.Vec3 for 3D linear transformations.
type Mat3 struct {
	A, B, C vector.Scalar
	D, E, F vector.Scalar
	G, H, I vector.Scalar
}

// M3 constructs a Mat3 from its entries in row-major order.
func M3(a, b, c, d, e, f, g, h, i vector.Scalar) Mat3 {
	return Mat3{a, b, c, d, e, f, g, h, i}
}

// Identity3 returns the 3×3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Zero3 returns the 3×3 zero matrix.
func Zero3() Mat3 { return Mat3{} }

// Add returns the component-wise sum of m and o.
func (m Mat3) Add(o Mat3) Mat3 {
	return Mat3{
		m.A + o.A, m.B + o.B, m.C + o.C,
		m.D + o.D, m.E + o.E, m.F + o.F,
		m.G + o.G, m.H + o.H, m.I + o.I,
	}
}

// Sub returns the component-wise difference of m and o.
func (m Mat3) Sub(o Mat3) Mat3 {
	return Mat3{
		m.A - o.A, m.B - o.B, m.C - o.C,
		m.D - o.D, m.E - o.E, m.F - o.F,
		m.G - o.G, m.H - o.H, m.I - o.I,
	}
}

// Scale returns m with every entry multiplied by s.
func (m Mat3) Scale(s vector.Scalar) Mat3 {
	return Mat3{
		m.A * s, m.B * s, m.C * s,
		m.D * s, m.E * s, m.F * s,
		m.G * s, m.H * s, m.I * s,
	}
}

// Div returns m with every entry divided by s. Handy for building an
// inverse from an adjugate and a determinant by hand.
func (m Mat3) Div(s vector.Scalar) Mat3 {
	return Mat3{
		m.A / s, m.B / s, m.C / s,
		m.D / s, m.E / s, m.F / s,
		m.G / s, m.H / s, m.I / s,
	}
}

// MulVec applies the linear map m to v.
func (m Mat3) MulVec(v vector.Vec3) vector.Vec3 {
	return vector.Vec3{
		X: m.A*v.X + m.B*v.Y + m.C*v.Z,
		Y: m.D*v.X + m.E*v.Y + m.F*v.Z,
		Z: m.G*v.X + m.H*v.Y + m.I*v.Z,
	}
}

// Mul returns the matrix product m·o. Matrix multiplication is not
// commutative; the order of the operands matters.
func (m Mat3) Mul(o Mat3) Mat3 {
	return Mat3{
		A: m.A*o.A + m.B*o.D + m.C*o.G,
		B: m.A*o.B + m.B*o.E + m.C*o.H,
		C: m.A*o.C + m.B*o.F + m.C*o.I,
		D: m.D*o.A + m.E*o.D + m.F*o.G,
		E: m.D*o.B + m.E*o.E + m.F*o.H,
		F: m.D*o.C + m.E*o.F + m.F*o.I,
		G: m.G*o.A + m.H*o.D + m.I*o.G,
		H: m.G*o.B + m.H*o.E + m.I*o.H,
		I: m.G*o.C + m.H*o.F + m.I*o.I,
	}
}

// Det returns the determinant via cofactor expansion along the first
// row: A(EI − FH) − B(DI − FG) + C(DH − EG).
func (m Mat3) Det() vector.Scalar {
	return m.A*(m.E*m.I-m.F*m.H) -
		m.B*(m.D*m.I-m.F*m.G) +
		m.C*(m.D*m.H-m.E*m.G)
}

// Inverse returns the inverse of m using the classical
// adjugate-over-determinant formula: the transposed cofactor matrix
// with every entry divided by the determinant. It returns ErrSingular
// when the determinant is exactly zero; there is no tolerance band.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Det()
	if det == 0 {
		return Mat3{}, ErrSingular
	}
	invDet := 1 / det

	return Mat3{
		A: (m.E*m.I - m.F*m.H) * invDet,
		B: (m.C*m.H - m.B*m.I) * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: (m.F*m.G - m.D*m.I) * invDet,
		E: (m.A*m.I - m.C*m.G) * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
		G: (m.D*m.H - m.E*m.G) * invDet,
		H: (m.B*m.G - m.A*m.H) * invDet,
		I: (m.A*m.E - m.B*m.D) * invDet,
	}, nil
}

// Equal reports whether every entry of m is within Epsilon of the
// corresponding entry of o. Mat2.Equal is exact; Mat3 tolerates the
// rounding introduced by Inverse.
func (m Mat3) Equal(o Mat3) bool {
	return math.Abs(m.A-o.A) < Epsilon &&
		math.Abs(m.B-o.B) < Epsilon &&
		math.Abs(m.C-o.C) < Epsilon &&
		math.Abs(m.D-o.D) < Epsilon &&
		math.Abs(m.E-o.E) < Epsilon &&
		math.Abs(m.F-o.F) < Epsilon &&
		math.Abs(m.G-o.G) < Epsilon &&
		math.Abs(m.H-o.H) < Epsilon &&
		math.Abs(m.I-o.I) < Epsilon
}
