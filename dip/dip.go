// Package dip finds resonance dips in a magnitude trace.
//
// A trace is tilt corrected against a straight baseline drawn through its
// two endpoints. Every sample that falls below the baseline and is
// connected to a dip's minimum belongs to that dip's influence region.
//
// Usage:
//
//	dips, err := dip.Locate(freqs, mags, 2)
//	for _, d := range dips {
//	    fmt.Println(freqs[d.Index], d.Mask.Width())
//	}
package dip

import (
	"errors"
	"fmt"
	"sort"

	"github.com/HamletTheHamster/hanger-fitting/spectrum"
)

var (
	ErrCount     = errors.New("dip: dip count must be at least one")
	ErrExhausted = errors.New("dip: no samples left outside earlier dips")
)

// Mask marks the samples of one dip: false inside the dip's influence
// region, true elsewhere.
type Mask []bool

// Inside reports whether sample i belongs to the dip.
func (m Mask) Inside(i int) bool { return !m[i] }

// Width returns the number of samples inside the dip.
func (m Mask) Width() int {
	n := 0
	for _, keep := range m {
		if !keep {
			n++
		}
	}
	return n
}

// Dip is one located dip.
type Dip struct {
	Index int
	Mask  Mask
}

// Locate finds count dips with the Isolation strategy.
func Locate(freqs, mags []float64, count int) ([]Dip, error) {
	return LocateWith(Isolation, freqs, mags, count)
}

// LocateResponse finds count dips in |s21| with the Isolation strategy.
func LocateResponse(freqs []float64, s21 []complex128, count int) ([]Dip, error) {
	return LocateWith(Isolation, freqs, spectrum.Magnitude(s21), count)
}

// LocateWith finds count dips in mags using the baseline of s. Dips are
// searched deepest first and returned in order of increasing index.
func LocateWith(
	s Strategy,
	freqs, mags []float64,
	count int,
) (
	[]Dip, error,
) {

	if err := spectrum.Check(freqs, len(mags)); err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: %d", ErrCount, count)
	}

	tilted := s.Tilt(freqs, mags)

	// Samples claimed by no dip yet
	free := make([]bool, len(tilted))
	for i := range free {
		free[i] = true
	}

	dips := make([]Dip, 0, count)
	for n := 0; n < count; n++ {

		center := -1
		for i, v := range tilted {
			if free[i] && (center < 0 || v < tilted[center]) {
				center = i
			}
		}
		if center < 0 {
			return nil, fmt.Errorf("%w: found %d of %d", ErrExhausted, n, count)
		}

		mask := region(tilted, center)
		for i, keep := range mask {
			if !keep {
				free[i] = false
			}
		}

		dips = append(dips, Dip{Index: center, Mask: mask})
	}

	sort.Slice(dips, func(i, j int) bool {
		return dips[i].Index < dips[j].Index
	})

	return dips, nil
}

// region walks out from center in both directions while the tilted trace
// stays below zero. The center itself is always inside.
func region(
	tilted []float64,
	center int,
) Mask {

	mask := make(Mask, len(tilted))
	for i := range mask {
		mask[i] = true
	}
	mask[center] = false

	// Left
	for i := center; i >= 0 && tilted[i] < 0; i-- {
		mask[i] = false
	}

	// Right
	for i := center; i < len(tilted) && tilted[i] < 0; i++ {
		mask[i] = false
	}

	return mask
}
