package fit_test

import (
	"fmt"
	"math"

	"github.com/HamletTheHamster/hanger-fitting/fit"
	"github.com/HamletTheHamster/hanger-fitting/lineshape"
	"github.com/HamletTheHamster/hanger-fitting/units"
)

func ExampleResonance() {
	// A 5 GHz resonance with a 0.5 MHz linewidth, swept over ±5 MHz.
	truth := lineshape.Params{Wr: 5, Kr: 5e-4, Phi: 0.3, A: 1}

	w := make([]float64, 801)
	for i := range w {
		w[i] = 4.995 + 0.01*float64(i)/800
	}
	mags := lineshape.Hanger(w, truth)

	freqs := make([]float64, len(w))
	s21 := make([]complex128, len(w))
	for i := range w {
		freqs[i] = w[i] * units.WScale
		s21[i] = complex(mags[i], 0)
	}

	res, err := fit.Resonance(freqs, s21, nil)
	if err != nil {
		panic(err)
	}

	fmt.Printf("f0 = %.4f GHz\n", res.Wr/(2*math.Pi*units.GHz))
	fmt.Printf("kappa = %.3f MHz\n", res.Kr/(2*math.Pi*units.MHz))
}
