package fit_test

import (
	"fmt"

	"github.com/cwbudde/algo-etalon/etalon"
	"github.com/cwbudde/algo-etalon/fit"
)

func ExampleGuess() {
	// Synthetic trace: amplitude 2, finesse 9 (p1 = 3), one fringe
	// every 32 wavenumber steps.
	m := etalon.New()
	params := []float64{2.0, 3.0, 0.03125, 0.0}

	x := make([]float64, 512)
	for i := range x {
		x[i] = float64(i)
	}
	y, _ := m.Eval(params, x)

	guess, _ := fit.Guess(x, y)
	fmt.Printf("amplitude %.4f\n", guess[0])
	fmt.Printf("sqrt-finesse %.4f\n", guess[1])
	fmt.Printf("frequency %.5f\n", guess[2])
	fmt.Printf("phase %.4f\n", guess[3])
	// Output:
	// amplitude 2.0000
	// sqrt-finesse 3.0000
	// frequency 0.03125
	// phase 0.0000
}

func ExampleCurve() {
	m := etalon.New()
	truth := []float64{1.5, 3.0, 0.04, 0.2}

	x := make([]float64, 256)
	for i := range x {
		x[i] = float64(i)
	}
	y, _ := m.Eval(truth, x)

	guess, _ := fit.Guess(x, y)
	res, _ := fit.Curve(m, x, y, fit.Config{InitParams: guess})

	fmt.Printf("amplitude %.3f\n", res.Params[0])
	fmt.Printf("frequency %.3f\n", res.Params[2])
	// Output:
	// amplitude 1.500
	// frequency 0.040
}
