package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/linal/pkg/matrix"
	"github.com/zeusync/linal/pkg/vector"
)

// Config describes a 2D transform pipeline in JSON or YAML: a set of
// input points and an ordered list of transform steps applied to each
// of them.
type Config struct {
	Name   string      `json:"name" yaml:"name"`
	Points [][]float64 `json:"points" yaml:"points"`
	Steps  []Step      `json:"steps" yaml:"steps"`
	Dedupe bool        `json:"dedupe,omitempty" yaml:"dedupe,omitempty"`
}

// Step is a single transform in the pipeline. Exactly one of the
// parameter sets applies depending on Kind:
//
//   - "rotate":  Angle, counter-clockwise degrees
//   - "scale":   Factors, [s] uniform or [sx, sy]
//   - "shear":   Factors, [kx, ky]
//   - "matrix":  Rows, the four entries of a Mat2 in row-major order
type Step struct {
	Kind    string    `json:"kind" yaml:"kind"`
	Angle   float64   `json:"angle,omitempty" yaml:"angle,omitempty"`
	Factors []float64 `json:"factors,omitempty" yaml:"factors,omitempty"`
	Rows    []float64 `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// LoadJSON loads a pipeline config from a JSON reader.
func LoadJSON(r io.Reader) (*Config, error) {
	var c Config
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, c.validate()
}

// LoadYAML loads a pipeline config from a YAML reader.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, c.validate()
}

func (c *Config) validate() error {
	for i, p := range c.Points {
		if len(p) != 2 {
			return fmt.Errorf("point %d: want 2 coordinates, got %d", i, len(p))
		}
	}
	for i, s := range c.Steps {
		if _, err := s.compile(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

// points converts the raw coordinate pairs into Point2D values.
func (c *Config) points() []vector.Point2D {
	pts := make([]vector.Point2D, len(c.Points))
	for i, p := range c.Points {
		pts[i] = vector.V2(p[0], p[1])
	}
	return pts
}

func (s Step) compile() (matrix.Mat2, error) {
	switch s.Kind {
	case "rotate":
		rad := s.Angle * math.Pi / 180
		sin, cos := math.Sincos(rad)
		return matrix.M2(cos, -sin, sin, cos), nil
	case "scale":
		switch len(s.Factors) {
		case 1:
			return matrix.Identity2().Scale(s.Factors[0]), nil
		case 2:
			return matrix.M2(s.Factors[0], 0, 0, s.Factors[1]), nil
		default:
			return matrix.Mat2{}, fmt.Errorf("scale: want 1 or 2 factors, got %d", len(s.Factors))
		}
	case "shear":
		if len(s.Factors) != 2 {
			return matrix.Mat2{}, fmt.Errorf("shear: want 2 factors, got %d", len(s.Factors))
		}
		return matrix.M2(1, s.Factors[0], s.Factors[1], 1), nil
	case "matrix":
		if len(s.Rows) != 4 {
			return matrix.Mat2{}, fmt.Errorf("matrix: want 4 row-major entries, got %d", len(s.Rows))
		}
		return matrix.M2(s.Rows[0], s.Rows[1], s.Rows[2], s.Rows[3]), nil
	default:
		return matrix.Mat2{}, fmt.Errorf("unknown step kind %q", s.Kind)
	}
}

// Compile folds the steps into a single transform matrix. Steps are
// applied in list order, so later steps multiply on the left.
func (c *Config) Compile() (matrix.Mat2, error) {
	composed := matrix.Identity2()
	for i, s := range c.Steps {
		m, err := s.compile()
		if err != nil {
			return matrix.Mat2{}, fmt.Errorf("step %d: %w", i, err)
		}
		composed = m.Mul(composed)
	}
	return composed, nil
}
