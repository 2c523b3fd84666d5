package fit

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsp/dsp/spectrum"
	"github.com/cwbudde/algo-dsp/dsp/window"
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const minGuessSamples = 8

// Guess estimates etalon start parameters [amplitude, sqrt-finesse,
// frequency, phase] from a measured trace. x must be an ascending,
// roughly uniform grid.
//
// The amplitude comes from the trace maximum, the finesse from the
// max/min contrast (f_min = amplitude/(1+finesse)), the fringe
// frequency from the dominant bin of the Hann-windowed power spectrum
// and the phase from the location of the first transmission peak,
// where the phase argument is a multiple of PI.
func Guess(x, y []float64) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("guess sample lengths must match: %d vs %d", len(x), len(y))
	}
	if len(x) < minGuessSamples {
		return nil, fmt.Errorf("guess needs at least %d samples: %d", minGuessSamples, len(x))
	}

	dx := (x[len(x)-1] - x[0]) / float64(len(x)-1)
	if dx <= 0 {
		return nil, fmt.Errorf("guess needs an ascending sample grid")
	}

	amp, imax := maxAt(y)
	minY := minOf(y)

	// f_min = amp / (1 + p1^2), so the contrast fixes the finesse.
	// A non-positive minimum means the contrast is unresolved; fall
	// back to the model default.
	sqrtFinesse := 1.0
	if minY > 0 && minY < amp {
		sqrtFinesse = math.Sqrt(amp/minY - 1)
	}

	freq, err := fringeFrequency(y, dx)
	if err != nil {
		return nil, err
	}

	// Transmission peaks sit where sin(PI*freq*x + phase) = 0.
	phase := 0.0
	if x[imax] != 0 {
		phase = wrapPhase(-math.Pi * freq * x[imax])
	}

	return []float64{amp, sqrtFinesse, freq, phase}, nil
}

// fringeFrequency locates the dominant non-DC bin of the power
// spectrum and converts it to cycles per x-unit.
func fringeFrequency(y []float64, dx float64) (float64, error) {
	n := nextPowerOf2(len(y))

	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	buf := make([]float64, len(y))
	for i, v := range y {
		buf[i] = v - mean
	}

	coeffs := window.Generate(window.TypeHann, len(buf))
	vecmath.MulBlockInPlace(buf, coeffs)

	in := make([]complex128, n)
	for i, v := range buf {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, fmt.Errorf("guess fft plan: %v", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("guess fft: %v", err)
	}

	power := spectrum.Power(out[:n/2+1])

	peak := 1
	for i := 2; i < len(power); i++ {
		if power[i] > power[peak] {
			peak = i
		}
	}

	return float64(peak) / (float64(n) * dx), nil
}

// wrapPhase reduces v modulo PI into (-PI/2, PI/2].
func wrapPhase(v float64) float64 {
	w := math.Mod(v, math.Pi)
	if w > math.Pi/2 {
		w -= math.Pi
	} else if w <= -math.Pi/2 {
		w += math.Pi
	}
	return w
}

func maxAt(data []float64) (float64, int) {
	best := data[0]
	at := 0
	for i, v := range data {
		if v > best {
			best = v
			at = i
		}
	}
	return best, at
}

func minOf(data []float64) float64 {
	best := data[0]
	for _, v := range data {
		if v < best {
			best = v
		}
	}
	return best
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
