// Package spectrum holds measured transmission spectra and the checks every
// consumer runs before trusting one.
package spectrum

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// MinSamples is the shortest frequency axis the dip heuristics accept.
const MinSamples = 3

var (
	ErrEmpty         = errors.New("spectrum: no samples")
	ErrLength        = errors.New("spectrum: frequency and response lengths differ")
	ErrTooShort      = errors.New("spectrum: too few samples")
	ErrNotIncreasing = errors.New("spectrum: frequencies not strictly increasing")
)

// Spectrum is a swept transmission measurement. Frequencies are angular
// (rad/s) and strictly increasing; Response holds S21 at each frequency.
type Spectrum struct {
	Frequencies []float64
	Response    []complex128
}

// Len returns the number of samples.
func (s Spectrum) Len() int { return len(s.Frequencies) }

// Validate reports whether s is a usable spectrum.
func (s Spectrum) Validate() error {
	return Check(s.Frequencies, len(s.Response))
}

// Magnitude returns |S21| for every sample.
func (s Spectrum) Magnitude() []float64 {
	return Magnitude(s.Response)
}

// Check validates a frequency axis that is paired with n data samples.
func Check(
	freqs []float64,
	n int,
) error {

	if len(freqs) == 0 || n == 0 {
		return ErrEmpty
	}
	if len(freqs) != n {
		return fmt.Errorf("%w: %d frequencies, %d samples", ErrLength, len(freqs), n)
	}
	if len(freqs) < MinSamples {
		return fmt.Errorf("%w: %d < %d", ErrTooShort, len(freqs), MinSamples)
	}
	for i := 1; i < len(freqs); i++ {
		if !(freqs[i] > freqs[i-1]) {
			return fmt.Errorf("%w: index %d", ErrNotIncreasing, i)
		}
	}
	return nil
}

// Magnitude returns |z| for each complex sample.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re := make([]float64, len(in))
	im := make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	return out
}
