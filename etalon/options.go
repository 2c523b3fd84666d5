package etalon

import "gonum.org/v1/gonum/unit"

// Option configures a Model.
type Option func(*Model)

// WithXUnit sets the unit of the independent axis (wavenumber axis).
// The frequency parameter is then reported in rad per this unit.
func WithXUnit(u *unit.Unit) Option {
	return func(m *Model) {
		if u != nil {
			m.xDims = u.Dimensions()
		}
	}
}

// WithYUnit sets the unit of the output quantity. The amplitude
// parameter is reported in this unit.
func WithYUnit(u *unit.Unit) Option {
	return func(m *Model) {
		if u != nil {
			m.yDims = u.Dimensions()
		}
	}
}
