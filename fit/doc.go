// Package fit bridges analytic model functions to an external
// Levenberg-Marquardt solver.
//
// The package intentionally does not implement an optimizer. It turns
// a [model.Function] plus a measured trace into the residual and
// analytic-Jacobian callbacks the solver consumes, and provides a
// heuristic initial-parameter guess for etalon-like traces so the
// solver starts inside the basin of the global minimum.
package fit
