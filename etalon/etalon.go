package etalon

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/unit"

	"github.com/cwbudde/algo-etalon/model"
)

// NumParams is the number of model parameters.
const NumParams = 4

var (
	defaultParams = [NumParams]float64{1.0, 1.0, 1.0, 0.0}
	paramNames    = [NumParams]string{"amplitude", "finesse", "frequency", "phase"}
)

// Model is the etalon transmission model. It holds no fitting state,
// only the unit tags of the two axes; methods are safe for concurrent
// use.
type Model struct {
	xDims unit.Dimensions
	yDims unit.Dimensions
}

var _ model.Function = (*Model)(nil)

// New creates an etalon model. Both axis units default to
// dimensionless.
func New(opts ...Option) *Model {
	m := &Model{
		xDims: unit.Dimensions{},
		yDims: unit.Dimensions{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Copy returns an independent clone of the model.
func (m *Model) Copy() *Model {
	return &Model{
		xDims: cloneDims(m.xDims),
		yDims: cloneDims(m.yDims),
	}
}

// NumParams returns 4.
func (m *Model) NumParams() int { return NumParams }

// Defaults returns a fresh copy of the default parameter vector
// [1, 1, 1, 0].
func (m *Model) Defaults() []float64 {
	out := make([]float64, NumParams)
	copy(out, defaultParams[:])
	return out
}

// ParamNames returns the parameter names in natural order.
func (m *Model) ParamNames() []string {
	out := make([]string, NumParams)
	copy(out, paramNames[:])
	return out
}

// Name returns a fixed description of the functional form.
func (m *Model) Name() string {
	return "Etalon: f( x:p ) = p0 / ( 1 + p1^2 * sin^2( PI * x * p2 + p3 ) )"
}

// ParameterUnit returns the expected physical unit of parameter k:
// the y-axis unit for the amplitude, dimensionless for the finesse,
// rad per x-unit for the frequency and rad for the phase. Any other
// index falls back to the y-axis unit.
func (m *Model) ParameterUnit(k int) *unit.Unit {
	switch k {
	case 0:
		return unit.New(1, cloneDims(m.yDims))
	case 1:
		return model.Dimensionless()
	case 2:
		return model.Radian().Div(unit.New(1, cloneDims(m.xDims)))
	case 3:
		return model.Radian()
	default:
		return unit.New(1, cloneDims(m.yDims))
	}
}

// phaseTerms computes the trigonometric quantities shared by Eval,
// Derivative and Partials. denom is always >= 1 for real inputs.
func phaseTerms(params []float64, x float64) (s, c, denom float64) {
	arg := math.Pi*x*params[2] + params[3]
	s = math.Sin(arg)
	c = math.Cos(arg)
	denom = 1 + params[1]*params[1]*s*s
	return s, c, denom
}

// Eval returns the transmission value at each sample point.
func (m *Model) Eval(params, x []float64) ([]float64, error) {
	if err := checkParams(params); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, xi := range x {
		_, _, denom := phaseTerms(params, xi)
		out[i] = params[0] / denom
	}
	return out, nil
}

// Derivative returns df/dx at each sample point, in closed form:
//
//	df/dx = -2*PI * p0 * p1^2 * p2 * sin(arg) * cos(arg) / denom^2
func (m *Model) Derivative(params, x []float64) ([]float64, error) {
	if err := checkParams(params); err != nil {
		return nil, err
	}
	out := make([]float64, len(x))
	for i, xi := range x {
		s, c, denom := phaseTerms(params, xi)
		out[i] = -2 * math.Pi * params[0] * params[1] * params[1] * params[2] * s * c / (denom * denom)
	}
	return out, nil
}

// Partials returns the len(x)×K matrix of partial derivatives of the
// model with respect to its parameters. Column order follows indices
// when non-nil; a nil indices selects all four parameters in natural
// order.
func (m *Model) Partials(params, x []float64, indices []int) (*mat.Dense, error) {
	if err := checkParams(params); err != nil {
		return nil, err
	}
	if indices == nil {
		indices = []int{0, 1, 2, 3}
	}
	for _, k := range indices {
		if k < 0 || k >= NumParams {
			return nil, fmt.Errorf("etalon partials parameter index out of range [0,%d): %d", NumParams, k)
		}
	}
	if len(x) == 0 || len(indices) == 0 {
		return &mat.Dense{}, nil
	}

	out := mat.NewDense(len(x), len(indices), nil)
	for i, xi := range x {
		s, c, denom := phaseTerms(params, xi)
		dd := 1 / denom
		d2 := dd * dd
		// Frequency and phase both enter through the phase argument,
		// so they share this term up to the chain-rule factor PI*x.
		p3term := -2 * params[0] * params[1] * params[1] * s * c * d2

		for j, k := range indices {
			var v float64
			switch k {
			case 0:
				v = dd
			case 1:
				v = -2 * params[0] * params[1] * s * s * d2
			case 2:
				v = math.Pi * xi * p3term
			case 3:
				v = p3term
			}
			out.Set(i, j, v)
		}
	}
	return out, nil
}

func checkParams(params []float64) error {
	if len(params) != NumParams {
		return fmt.Errorf("etalon parameter count must be %d: %d", NumParams, len(params))
	}
	return nil
}

func cloneDims(d unit.Dimensions) unit.Dimensions {
	out := make(unit.Dimensions, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
