package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec2_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b Vec2) Vec2
		a, b Vec2
		want Vec2
	}{
		{
			name: "Add",
			op:   Vec2.Add,
			a:    V2(1, 2),
			b:    V2(3, 4),
			want: V2(4, 6),
		},
		{
			name: "Sub",
			op:   Vec2.Sub,
			a:    V2(1, 2),
			b:    V2(3, 4),
			want: V2(-2, -2),
		},
		{
			name: "Hadamard product",
			op:   Vec2.Mul,
			a:    V2(2, 3),
			b:    V2(4, 5),
			want: V2(8, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.op(tt.a, tt.b))
		})
	}
}

func TestVec2_Neg(t *testing.T) {
	require.Equal(t, V2(-1, 2), V2(1, -2).Neg())
}

func TestVec2_ScaleBothOrderings(t *testing.T) {
	v := V2(1, 2)
	require.Equal(t, V2(2, 4), v.Scale(2))
	require.Equal(t, v.Scale(2), Scale(2, v), "scalar multiplication must commute")
}

func TestVec2_Div(t *testing.T) {
	require.Equal(t, V2(1, 2), V2(2, 4).Div(2))

	byZero := V2(1, 0).Div(0)
	require.True(t, math.IsInf(byZero.X, 1))
	require.True(t, math.IsNaN(byZero.Y))
}

func TestVec2_Dot(t *testing.T) {
	require.Equal(t, 11.0, V2(1, 2).Dot(V2(3, 4)))
}

func TestVec2_CrossIsScalar(t *testing.T) {
	// The 2D cross product is the signed z component of the 3D
	// embedding, not a vector.
	require.Equal(t, 1.0, V2(1, 0).Cross(V2(0, 1)))
	require.Equal(t, -1.0, V2(0, 1).Cross(V2(1, 0)))
}

func TestVec2_Mag(t *testing.T) {
	v := V2(3, 4)
	require.Equal(t, 5.0, v.Mag())
	require.Equal(t, 25.0, v.MagSq())
	require.Equal(t, v.Dot(v), v.MagSq())
	require.Equal(t, math.Sqrt(v.MagSq()), v.Mag())
}

func TestVec2_Map(t *testing.T) {
	squared := V2(1, 2).Map(func(c Scalar) Scalar { return c * c })
	require.Equal(t, V2(1, 4), squared)
}

func TestVec2_Normalize(t *testing.T) {
	n, err := V2(3, 4).Normalize()
	require.NoError(t, err)
	require.InDelta(t, 1.0, n.Mag(), 1e-10)

	_, err = V2(0, 0).Normalize()
	require.ErrorIs(t, err, ErrZeroVector)
}

func TestPoint2D_Dist(t *testing.T) {
	a := Point2D{X: 1, Y: 2}
	b := Point2D{X: 1, Y: 0}
	require.Equal(t, 2.0, a.Dist(b))
	require.Equal(t, 4.0, a.DistSq(b))
}
