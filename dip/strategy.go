package dip

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Strategy draws the straight baseline a dip is measured against. The
// baseline passes Offset times the endpoint mean at the center of the
// frequency window and follows the endpoint-to-endpoint slope.
type Strategy struct {
	Name   string
	Offset float64
}

var (
	// Isolation sits below the background so that neighbouring dips
	// separate into distinct regions.
	Isolation = Strategy{Name: "isolation", Offset: 0.85}

	// Background follows the true off-resonance level.
	Background = Strategy{Name: "background", Offset: 1}
)

// Endpoints returns the mean a of the first and last magnitude and the
// slope b between them.
func Endpoints(freqs, mags []float64) (a, b float64) {
	n := len(mags) - 1
	a = (mags[0] + mags[n]) / 2
	b = (mags[n] - mags[0]) / (freqs[n] - freqs[0])
	return a, b
}

// Baseline returns Offset·a + b·(f − mean(f)) for every frequency.
func (s Strategy) Baseline(freqs, mags []float64) []float64 {
	a, b := Endpoints(freqs, mags)
	center := stat.Mean(freqs, nil)

	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = s.Offset*a + b*(f-center)
	}
	return out
}

// Tilt returns mags with the baseline subtracted, in a fresh slice.
func (s Strategy) Tilt(freqs, mags []float64) []float64 {
	return floats.SubTo(make([]float64, len(mags)), mags, s.Baseline(freqs, mags))
}
