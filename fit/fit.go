package fit

import (
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-etalon/model"
)

const (
	defaultTau          = 1e-6
	defaultEps1         = 1e-8
	defaultEps2         = 1e-8
	defaultIterations   = 100
	defaultObjectiveTol = 1e-16
)

// Config holds solver settings. The zero value selects defaults.
type Config struct {
	// InitParams is the starting parameter vector. When nil the model
	// defaults are used; Guess usually provides a better start.
	InitParams []float64

	// Tau scales the initial damping. Eps1 and Eps2 are the gradient
	// and step-size stopping thresholds of the solver.
	Tau  float64
	Eps1 float64
	Eps2 float64

	Iterations   int
	ObjectiveTol float64
}

// Result holds the fit outcome.
type Result struct {
	// Params is the fitted parameter vector, in natural order.
	Params []float64

	// Residuals is f(x_i; Params) - y_i for each sample.
	Residuals []float64

	// RMSE is the root mean square of Residuals.
	RMSE float64
}

// Curve fits f to the samples (x, y) with the external
// Levenberg-Marquardt solver, using the analytic partials of f as the
// Jacobian. x and y must have equal, non-zero length.
func Curve(f model.Function, x, y []float64, cfg Config) (Result, error) {
	if len(x) != len(y) {
		return Result{}, fmt.Errorf("curve sample lengths must match: %d vs %d", len(x), len(y))
	}
	if len(x) == 0 {
		return Result{}, fmt.Errorf("curve needs at least one sample")
	}

	cfg = normalizeConfig(f, cfg)
	if len(cfg.InitParams) != f.NumParams() {
		return Result{}, fmt.Errorf("curve init parameter count must be %d: %d", f.NumParams(), len(cfg.InitParams))
	}

	residFn := func(dst, p []float64) {
		vals, err := f.Eval(p, x)
		if err != nil {
			for i := range dst {
				dst[i] = math.NaN()
			}
			return
		}
		for i := range dst {
			dst[i] = vals[i] - y[i]
		}
	}
	jacFn := func(dst *mat.Dense, p []float64) {
		jac, err := f.Partials(p, x, nil)
		if err != nil {
			dst.Zero()
			return
		}
		dst.Copy(jac)
	}

	prob := lm.LMProblem{
		Dim:        f.NumParams(),
		Size:       len(x),
		Func:       residFn,
		Jac:        jacFn,
		InitParams: cfg.InitParams,
		Tau:        cfg.Tau,
		Eps1:       cfg.Eps1,
		Eps2:       cfg.Eps2,
	}

	res, err := lm.LM(prob, &lm.Settings{
		Iterations:   cfg.Iterations,
		ObjectiveTol: cfg.ObjectiveTol,
	})
	if err != nil {
		return Result{}, fmt.Errorf("curve solver failed: %v", err)
	}

	params := make([]float64, len(res.X))
	copy(params, res.X)

	residuals := make([]float64, len(x))
	residFn(residuals, params)

	sum := 0.0
	for _, r := range residuals {
		sum += r * r
	}

	return Result{
		Params:    params,
		Residuals: residuals,
		RMSE:      math.Sqrt(sum / float64(len(residuals))),
	}, nil
}

func normalizeConfig(f model.Function, cfg Config) Config {
	if cfg.InitParams == nil {
		cfg.InitParams = f.Defaults()
	}

	if cfg.Tau <= 0 {
		cfg.Tau = defaultTau
	}

	if cfg.Eps1 <= 0 {
		cfg.Eps1 = defaultEps1
	}

	if cfg.Eps2 <= 0 {
		cfg.Eps2 = defaultEps2
	}

	if cfg.Iterations <= 0 {
		cfg.Iterations = defaultIterations
	}

	if cfg.ObjectiveTol <= 0 {
		cfg.ObjectiveTol = defaultObjectiveTol
	}

	return cfg
}
