// Package lineshape models the transmission magnitude of a resonator in
// hanger geometry.
package lineshape

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"
)

// Hanger returns the hanger magnitude at every frequency in w:
//
//	|cos(φ) + kr·e^{iφ} / (2i(w−wr) − kr − gr)| · (a + b·(w − mean(w)))
//
// The background is centered on the mean of w, so A is the background
// level in the middle of whatever window is passed.
func Hanger(
	w []float64,
	p Params,
) []float64 {

	if len(w) == 0 {
		return nil
	}

	center := stat.Mean(w, nil)

	resonance := make([]float64, len(w))
	background := make([]float64, len(w))
	for i, x := range w {
		resonance[i] = Resonance(x, p)
		background[i] = p.A + p.B*(x-center)
	}

	out := make([]float64, len(w))
	vecmath.MulBlock(out, resonance, background)
	return out
}

// HangerAt evaluates the hanger magnitude at one frequency with the
// background centered on center.
func HangerAt(w, center float64, p Params) float64 {
	return Resonance(w, p) * (p.A + p.B*(w-center))
}

// Resonance is the hanger magnitude without background.
func Resonance(w float64, p Params) float64 {
	s := cmplx.Exp(complex(0, p.Phi)) * complex(p.Kr, 0)
	s /= complex(-p.Kr-p.Gr, 2*(w-p.Wr))
	return cmplx.Abs(complex(math.Cos(p.Phi), 0) + s)
}
