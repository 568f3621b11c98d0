// Package plotting draws measured transmission traces with their fitted
// hanger lineshape.
package plotting

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/HamletTheHamster/hanger-fitting/lineshape"
	"github.com/HamletTheHamster/hanger-fitting/units"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure describes one data-plus-fit plot. Frequencies are angular.
type Figure struct {
	Title       string
	Frequencies []float64
	Data        []float64
	Fit         []float64
	// Params, in physical units, mark the resonance and its linewidth.
	Params lineshape.Params
	Slide  bool
}

// GHz converts angular frequencies to ordinary frequencies in GHz.
func GHz(w []float64) []float64 {
	return floats.ScaleTo(make([]float64, len(w)), 1/(2*math.Pi*units.GHz), w)
}

// Build lays out fig as a plot.
func Build(fig Figure) (*plot.Plot, error) {

	if len(fig.Frequencies) == 0 {
		return nil, fmt.Errorf("plotting: empty figure %q", fig.Title)
	}
	if len(fig.Data) != len(fig.Frequencies) || len(fig.Fit) != len(fig.Frequencies) {
		return nil, fmt.Errorf(
			"plotting: figure %q has %d frequencies, %d data and %d fit points",
			fig.Title, len(fig.Frequencies), len(fig.Data), len(fig.Fit),
		)
	}

	x := GHz(fig.Frequencies)
	xrange := []float64{x[0], x[len(x)-1]}
	yrange := []float64{0, 1.05 * math.Max(floats.Max(fig.Data), floats.Max(fig.Fit))}

	p, tAxis, rAxis, err := prepPlot(fig.Title, "Frequency (GHz)", "|S21|", xrange, yrange, fig.Slide)
	if err != nil {
		return nil, err
	}

	pts := buildData(x, fig.Data)
	fit := buildData(x, fig.Fit)

	// Plot points
	plotPts, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	plotPts.GlyphStyle.Color = palette(0, false)
	plotPts.GlyphStyle.Radius = vg.Points(3)
	plotPts.Shape = draw.CircleGlyph{}

	// Plot fit
	plotFit, err := plotter.NewLine(fit)
	if err != nil {
		return nil, err
	}
	plotFit.LineStyle.Color = palette(0, true)
	plotFit.LineStyle.Width = vg.Points(3)

	// kr line at half depth of the fit
	cen := fig.Params.Wr / (2 * math.Pi * units.GHz)
	wid := fig.Params.Kr / (2 * math.Pi * units.GHz)
	level := (floats.Min(fig.Fit) + floats.Max(fig.Fit)) / 2
	plotWid, err := plotter.NewLine(plotter.XYs{{X: cen - wid/2, Y: level}, {X: cen + wid/2, Y: level}})
	if err != nil {
		return nil, err
	}
	plotWid.LineStyle.Color = palette(1, true)
	plotWid.LineStyle.Width = vg.Points(4)
	plotWid.LineStyle.Dashes = []vg.Length{vg.Points(15), vg.Points(5)}

	p.Add(plotPts, plotFit, plotWid, tAxis, rAxis)

	p.Legend.Add("data", plotPts)
	p.Legend.Add(fitLabel(fig.Params), plotFit)
	p.Legend.Add("kr", plotWid)

	return p, nil
}

// Save writes p as PNG, SVG and PDF into dir, creating dir if needed.
func Save(
	p *plot.Plot,
	name, dir string,
) error {

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(dir, name)
	for _, ext := range []string{".png", ".svg", ".pdf"} {
		if err := p.Save(15*vg.Inch, 15*vg.Inch, path+ext); err != nil {
			return err
		}
	}
	return nil
}

// fitLabel names the fitted resonance and its external linewidth kr.
func fitLabel(params lineshape.Params) string {
	cen := params.Wr / (2 * math.Pi * units.GHz)
	kr := params.Kr / (2 * math.Pi * units.MHz)
	return fmt.Sprintf("fit: %.6f GHz, kr = %.3f MHz", cen, kr)
}

func buildData(x, y []float64) plotter.XYs {
	xy := make(plotter.XYs, len(x))
	for i := range x {
		xy[i].X = x[i]
		xy[i].Y = y[i]
	}
	return xy
}

func prepPlot(
	title, xlabel, ylabel string,
	xrange, yrange []float64,
	slide bool,
) (
	*plot.Plot,
	*plotter.Line, *plotter.Line,
	error,
) {

	p := plot.New()
	p.BackgroundColor = color.RGBA{A: 0}
	p.Title.Text = title
	p.Title.TextStyle.Font.Typeface = "liberation"
	p.Title.TextStyle.Font.Variant = "Sans"

	p.X.Label.Text = xlabel
	p.X.Label.TextStyle.Font.Variant = "Sans"
	p.X.LineStyle.Width = vg.Points(1.5)
	p.X.Min = xrange[0]
	p.X.Max = xrange[1]
	p.X.Tick.LineStyle.Width = vg.Points(1.5)
	p.X.Tick.Label.Font.Variant = "Sans"

	p.Y.Label.Text = ylabel
	p.Y.Label.TextStyle.Font.Variant = "Sans"
	p.Y.LineStyle.Width = vg.Points(1.5)
	p.Y.Min = yrange[0]
	p.Y.Max = yrange[1]
	p.Y.Tick.LineStyle.Width = vg.Points(1.5)
	p.Y.Tick.Label.Font.Variant = "Sans"

	p.Legend.TextStyle.Font.Variant = "Sans"
	p.Legend.Top = true
	p.Legend.Padding = vg.Points(10)
	p.Legend.ThumbnailWidth = vg.Points(50)

	if slide {
		p.Title.TextStyle.Font.Size = 80
		p.Title.Padding = font.Length(80)
		p.X.Label.TextStyle.Font.Size = 56
		p.X.Label.Padding = font.Length(40)
		p.X.Tick.Label.Font.Size = 56
		p.Y.Label.TextStyle.Font.Size = 56
		p.Y.Label.Padding = font.Length(40)
		p.Y.Tick.Label.Font.Size = 56
		p.Legend.TextStyle.Font.Size = 56
	} else {
		p.Title.TextStyle.Font.Size = 50
		p.Title.Padding = font.Length(50)
		p.X.Label.TextStyle.Font.Size = 36
		p.X.Label.Padding = font.Length(20)
		p.X.Tick.Label.Font.Size = 36
		p.Y.Label.TextStyle.Font.Size = 36
		p.Y.Label.Padding = font.Length(20)
		p.Y.Tick.Label.Font.Size = 36
		p.Legend.TextStyle.Font.Size = 28
	}

	// Enclose plot
	tAxis, err := plotter.NewLine(plotter.XYs{
		{X: xrange[0], Y: yrange[1]},
		{X: xrange[1], Y: yrange[1]},
	})
	if err != nil {
		return nil, nil, nil, err
	}

	rAxis, err := plotter.NewLine(plotter.XYs{
		{X: xrange[1], Y: yrange[0]},
		{X: xrange[1], Y: yrange[1]},
	})
	if err != nil {
		return nil, nil, nil, err
	}

	return p, tAxis, rAxis, nil
}

func palette(
	brush int,
	dark bool,
) color.RGBA {

	light := []color.RGBA{
		{R: 140, G: 200, B: 236, A: 255},
		{R: 255, G: 186, B: 120, A: 255},
		{R: 160, G: 224, B: 168, A: 255},
	}
	darker := []color.RGBA{
		{R: 22, G: 44, B: 91, A: 255},
		{R: 122, G: 90, B: 41, A: 255},
		{R: 27, G: 110, B: 60, A: 255},
	}

	if dark {
		return darker[brush%len(darker)]
	}
	return light[brush%len(light)]
}
