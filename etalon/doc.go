// Package etalon models the transmission of an optical etalon as a
// function of wavenumber:
//
//	f( x:p ) = p0 / ( 1 + p1^2 * sin^2( PI * x * p2 + p3 ) )
//
// where
//
//   - p0 is the amplitude, in the units of the output quantity
//   - p1^2 is the finesse (the sign of p1 is unobservable)
//   - p2 is the fringe frequency, in radians per x-unit
//   - p3 is the phase offset, in radians
//
// The denominator is never smaller than 1, so the model is total over
// finite inputs. Besides the value the package provides the exact
// closed-form derivative with respect to x and the closed-form partial
// derivatives with respect to each parameter, as required by
// non-linear least-squares solvers. All three share one trigonometric
// intermediate for numerical consistency.
//
// # Usage
//
// Evaluate an etalon with finesse 900 over a wavenumber grid:
//
//	m := etalon.New()
//	vals, _ := m.Eval([]float64{1, 30, 1, 0}, grid)
//
// The partials matrix plugs directly into a Levenberg-Marquardt
// Jacobian; see the fit package for a ready-made bridge.
package etalon
