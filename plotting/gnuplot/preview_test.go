//go:build gnuplot

package gnuplot

import (
	"path/filepath"
	"testing"

	"github.com/HamletTheHamster/hanger-fitting/lineshape"
	"github.com/HamletTheHamster/hanger-fitting/plotting"
	"github.com/HamletTheHamster/hanger-fitting/units"
)

func TestPreview(t *testing.T) {
	p := lineshape.Params{Wr: 5, Kr: 1e-3, Phi: 0.2, A: 1}

	w := make([]float64, 101)
	freqs := make([]float64, len(w))
	for i := range w {
		w[i] = 4.99 + 0.02*float64(i)/100
		freqs[i] = w[i] * units.WScale
	}
	trace := lineshape.Hanger(w, p)

	fig := plotting.Figure{Title: "Resonator", Frequencies: freqs, Data: trace, Fit: trace}
	if err := Preview(fig, filepath.Join(t.TempDir(), "preview.png")); err != nil {
		t.Fatalf("Preview: %v", err)
	}
}
