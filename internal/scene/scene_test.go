package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/linal/pkg/matrix"
	"github.com/zeusync/linal/pkg/vector"
)

const sampleYAML = `
name: unit-square
points:
  - [0, 0]
  - [1, 0]
  - [1, 1]
  - [0, 1]
steps:
  - kind: scale
    factors: [2]
  - kind: rotate
    angle: 90
dedupe: true
`

func TestLoadYAML(t *testing.T) {
	cfg, err := LoadYAML(strings.NewReader(sampleYAML))
	require.NoError(t, err)
	require.Equal(t, "unit-square", cfg.Name)
	require.Len(t, cfg.Points, 4)
	require.Len(t, cfg.Steps, 2)
	require.True(t, cfg.Dedupe)
}

func TestLoadJSON(t *testing.T) {
	in := `{"name":"tri","points":[[0,0],[1,0],[0,1]],"steps":[{"kind":"shear","factors":[1,0]}]}`
	cfg, err := LoadJSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, "tri", cfg.Name)
	require.Len(t, cfg.Points, 3)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "point with wrong arity", in: "points: [[1, 2, 3]]"},
		{name: "unknown step kind", in: "steps: [{kind: fold}]"},
		{name: "scale without factors", in: "steps: [{kind: scale}]"},
		{name: "shear with one factor", in: "steps: [{kind: shear, factors: [1]}]"},
		{name: "matrix with short rows", in: "steps: [{kind: matrix, rows: [1, 2]}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.in))
			require.Error(t, err)
		})
	}
}

func TestCompile_Steps(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want matrix.Mat2
	}{
		{
			name: "uniform scale",
			step: Step{Kind: "scale", Factors: []float64{2}},
			want: matrix.M2(2, 0, 0, 2),
		},
		{
			name: "per-axis scale",
			step: Step{Kind: "scale", Factors: []float64{2, 3}},
			want: matrix.M2(2, 0, 0, 3),
		},
		{
			name: "shear",
			step: Step{Kind: "shear", Factors: []float64{1, 0}},
			want: matrix.M2(1, 1, 0, 1),
		},
		{
			name: "raw matrix",
			step: Step{Kind: "matrix", Rows: []float64{0, -1, 1, 0}},
			want: matrix.M2(0, -1, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Steps: []Step{tt.step}}
			m, err := cfg.Compile()
			require.NoError(t, err)
			require.True(t, tt.want.Equal(m))
		})
	}
}

func TestCompile_Rotate(t *testing.T) {
	cfg := &Config{Steps: []Step{{Kind: "rotate", Angle: 90}}}
	m, err := cfg.Compile()
	require.NoError(t, err)

	p := m.MulVec(vector.V2(1, 0))
	require.InDelta(t, 0, p.X, 1e-12)
	require.InDelta(t, 1, p.Y, 1e-12)
}

func TestCompile_AppliesStepsInOrder(t *testing.T) {
	// Scale first, then rotate a quarter turn: (1,0) -> (2,0) -> (0,2).
	cfg := &Config{Steps: []Step{
		{Kind: "scale", Factors: []float64{2}},
		{Kind: "matrix", Rows: []float64{0, -1, 1, 0}},
	}}
	m, err := cfg.Compile()
	require.NoError(t, err)
	require.Equal(t, vector.V2(0, 2), m.MulVec(vector.V2(1, 0)))
}

func TestCompile_Empty(t *testing.T) {
	cfg := &Config{}
	m, err := cfg.Compile()
	require.NoError(t, err)
	require.True(t, matrix.Identity2().Equal(m))
}
