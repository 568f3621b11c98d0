//go:build gnuplot

package gnuplot

import (
	"github.com/Arafatk/glot"

	"github.com/HamletTheHamster/hanger-fitting/plotting"
)

// Preview opens fig in gnuplot. When file is not empty the plot is also
// saved there.
func Preview(fig plotting.Figure, file string) error {

	dimensions := 2
	persist := true
	debug := false
	plot, err := glot.NewPlot(dimensions, persist, debug)
	if err != nil {
		return err
	}

	x := plotting.GHz(fig.Frequencies)

	if err := plot.AddPointGroup("data", "points", [][]float64{x, fig.Data}); err != nil {
		return err
	}
	if err := plot.AddPointGroup("fit", "lines", [][]float64{x, fig.Fit}); err != nil {
		return err
	}

	plot.SetTitle(fig.Title)
	plot.SetXLabel("Frequency (GHz)")
	plot.SetYLabel("|S21|")

	if file != "" {
		return plot.SavePlot(file)
	}
	return nil
}
