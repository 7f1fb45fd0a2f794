package matrix

import "github.com/zeusync/linal/pkg/vector"

// Mat2 is a 2×2 matrix of Scalar values stored in row-major order:
//
//	| A  B |
//	| C  D |
//
// It pairs with vector.Vec2 for 2D linear transformations.
type Mat2 struct {
	A, B, C, D vector.Scalar
}

// M2 constructs a Mat2 from its entries in row-major order.
func M2(a, b, c, d vector.Scalar) Mat2 { return Mat2{a, b, c, d} }

// Identity2 returns the 2×2 identity matrix.
func Identity2() Mat2 { return Mat2{1, 0, 0, 1} }

// Zero2 returns the 2×2 zero matrix.
func Zero2() Mat2 { return Mat2{} }

// Add returns the component-wise sum of m and o.
func (m Mat2) Add(o Mat2) Mat2 {
	return Mat2{m.A + o.A, m.B + o.B, m.C + o.C, m.D + o.D}
}

// Sub returns the component-wise difference of m and o.
func (m Mat2) Sub(o Mat2) Mat2 {
	return Mat2{m.A - o.A, m.B - o.B, m.C - o.C, m.D - o.D}
}

// Scale returns m with every entry multiplied by s.
func (m Mat2) Scale(s vector.Scalar) Mat2 {
	return Mat2{m.A * s, m.B * s, m.C * s, m.D * s}
}

// MulVec applies the linear map m to v:
//
//	| A  B | |x|   | Ax + By |
//	| C  D | |y| = | Cx + Dy |
func (m Mat2) MulVec(v vector.Vec2) vector.Vec2 {
	return vector.Vec2{
		X: m.A*v.X + m.B*v.Y,
		Y: m.C*v.X + m.D*v.Y,
	}
}

// Mul returns the matrix product m·o. Matrix multiplication is not
// commutative; the order of the operands matters.
func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{
		A: m.A*o.A + m.B*o.C,
		B: m.A*o.B + m.B*o.D,
		C: m.C*o.A + m.D*o.C,
		D: m.C*o.B + m.D*o.D,
	}
}

// Det returns the determinant A·D − B·C.
func (m Mat2) Det() vector.Scalar { return m.A*m.D - m.B*m.C }

// Inverse returns the inverse of m, computed as the adjugate scaled by
// the reciprocal of the determinant. It returns ErrSingular when the
// determinant is exactly zero; there is no tolerance band.
func (m Mat2) Inverse() (Mat2, error) {
	det := m.Det()
	if det == 0 {
		return Mat2{}, ErrSingular
	}
	return vector.Scale(1/det, M2(m.D, -m.B, -m.C, m.A)), nil
}

// Equal reports whether m and o match exactly, entry by entry. Unlike
// Mat3.Equal there is no tolerance.
func (m Mat2) Equal(o Mat2) bool { return m == o }
