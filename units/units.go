// Package units holds the unit constants used to express measured spectra.
//
// Frequencies are carried as angular frequencies in rad/s. Fitting happens
// in a rescaled unit system, angular frequency divided by WScale, so that
// the optimizer steps through numbers of order one.
package units

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	Hz  = 1.
	KHz = 1e3 * Hz
	MHz = 1e6 * Hz
	GHz = 1e9 * Hz

	PF = 1e-12
	FF = 1e-15
	AF = 1e-18

	NH = 1e-9

	Us = 1e-6
	Ns = 1e-9

	Um = 1e-6
	Mm = 1e-3

	Ohm = 1.
)

// WScale is the default angular-frequency scale, one GHz in rad/s.
const WScale = 2 * math.Pi * GHz

// Angular converts ordinary frequencies to angular frequencies.
func Angular(f []float64) []float64 {
	return floats.ScaleTo(make([]float64, len(f)), 2*math.Pi, f)
}

// Rescale divides every value by scale into a fresh slice.
func Rescale(w []float64, scale float64) []float64 {
	out := make([]float64, len(w))
	for i, v := range w {
		out[i] = v / scale
	}
	return out
}
