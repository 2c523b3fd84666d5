// Package model defines the contract between analytic model functions
// and the fitting engines that consume them.
//
// A model function is a pure evaluator: it owns no parameter storage
// and keeps no state between calls. The fitting engine owns the
// parameter vector, decides which parameters are free, and calls the
// three mathematical entry points (value, x-derivative, parameter
// partials) during optimization. Engines depend only on [Function],
// never on any concrete model type.
package model
