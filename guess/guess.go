// Package guess derives starting hanger parameters from the geometry of a
// single dip, without any optimization.
//
// The trace is flattened against its endpoint baseline and shifted so the
// dip bottom sits at zero. The endpoints of that trace, relative to its
// peak, give |φ| (far from resonance the hanger magnitude approaches
// |cos φ| of its peak). The width of the dip at a φ-corrected half depth
// gives the total linewidth, the dip depth relative to the background
// splits it into kr and gr, and the tilt of the trace across the dip gives
// the sign of φ.
package guess

import (
	"math"

	"github.com/HamletTheHamster/hanger-fitting/dip"
	"github.com/HamletTheHamster/hanger-fitting/lineshape"
	"github.com/HamletTheHamster/hanger-fitting/spectrum"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Graphical estimates the hanger parameters of the deepest dip in s21.
// Frequencies are used as given; the result is in the same units.
//
// Only malformed input is reported as an error. A pathological trace still
// produces an estimate, possibly with non-physical values.
func Graphical(
	freqs []float64,
	s21 []complex128,
) (
	lineshape.Params, error,
) {

	if err := spectrum.Check(freqs, len(s21)); err != nil {
		return lineshape.Params{}, err
	}

	mags := spectrum.Magnitude(s21)
	a, b := dip.Endpoints(freqs, mags)

	// Flatten, then lift the dip bottom to zero
	shifted := dip.Background.Tilt(freqs, mags)
	floats.AddConst(math.Abs(floats.Min(shifted)), shifted)

	phiAbs := phase(shifted)
	threshold := math.Sqrt(.5) * stat.Mean(shifted, nil) * math.Abs(math.Cos(phiAbs))

	dips, err := dip.Locate(freqs, shifted, 1)
	if err != nil {
		return lineshape.Params{}, err
	}
	d := dips[0]
	wr := freqs[d.Index]

	fwhm := width(freqs, shifted, d, threshold)
	phi := slopeSign(freqs, shifted, wr, fwhm) * phiAbs

	snr := a / mags[d.Index]
	gr := fwhm / snr
	kr := fwhm - gr

	return lineshape.Params{
		Wr:  wr,
		Kr:  kr,
		Gr:  gr,
		Phi: phi,
		A:   a,
		B:   b,
	}, nil
}

// phase returns |φ| from the endpoints of the shifted trace relative to its
// peak.
func phase(shifted []float64) float64 {
	peak := floats.Max(absTo(shifted))
	right := math.Abs(shifted[len(shifted)-1]) / peak
	left := math.Abs(shifted[0]) / peak
	return math.Acos((right + left) / 2)
}

// width measures the dip at threshold: on each side of the dip center, the
// sample inside the dip region whose level is closest to threshold. A side
// without samples falls back to the center.
func width(
	freqs, shifted []float64,
	d dip.Dip,
	threshold float64,
) float64 {

	w0 := freqs[d.Index]
	left, right := w0, w0
	bestLeft, bestRight := math.Inf(1), math.Inf(1)

	for i, f := range freqs {
		if !d.Mask.Inside(i) {
			continue
		}
		diff := math.Abs(math.Abs(shifted[i]) - threshold)
		switch {
		case f < w0 && diff < bestLeft:
			left, bestLeft = f, diff
		case f > w0 && diff < bestRight:
			right, bestRight = f, diff
		}
	}

	return right - left
}

// slopeSign returns the sign of the shifted trace's change across the
// samples within fwhm of wr, or zero if there are none.
func slopeSign(
	freqs, shifted []float64,
	wr, fwhm float64,
) float64 {

	first, last := -1, -1
	for i, f := range freqs {
		if math.Abs(f-wr) < fwhm {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return 0
	}

	return sign(shifted[last] - shifted[first])
}

// sign returns -1, 0 or 1, and NaN for NaN.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return x
}

func absTo(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Abs(v)
	}
	return out
}
