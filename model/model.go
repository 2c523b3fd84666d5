package model

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/unit"
)

// Function is an analytic model of one independent variable.
//
// All methods must be free of side effects and safe for concurrent
// use. The parameter vector is owned by the caller and must not be
// retained or mutated.
type Function interface {
	// Eval returns the model value at each sample point.
	Eval(params, x []float64) ([]float64, error)

	// Derivative returns df/dx at each sample point, in closed form.
	Derivative(params, x []float64) ([]float64, error)

	// Partials returns the len(x)×K matrix of partial derivatives of
	// the model with respect to its parameters. When indices is nil,
	// all parameters are used in natural order; otherwise column j
	// holds the partial for parameter indices[j]. This lets an engine
	// request partials only for currently free parameters, in the
	// order it tracks them.
	Partials(params, x []float64, indices []int) (*mat.Dense, error)

	// NumParams returns the number of model parameters.
	NumParams() int

	// Defaults returns a fresh copy of the default parameter vector.
	Defaults() []float64

	// ParamNames returns the human-readable parameter names, in
	// natural order.
	ParamNames() []string

	// Name returns a fixed description of the functional form.
	Name() string

	// ParameterUnit returns the expected physical unit of parameter k.
	ParameterUnit(k int) *unit.Unit
}

// Dimensionless returns a fresh dimensionless unit tag.
func Dimensionless() *unit.Unit {
	return unit.New(1, unit.Dimensions{})
}

// Radian returns a fresh angle unit tag.
func Radian() *unit.Unit {
	return unit.New(1, unit.Dimensions{unit.AngleDim: 1})
}
