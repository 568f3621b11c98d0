// Package fit extracts hanger resonance parameters from a measured S21
// trace.
//
// A fit starts from the closed-form graphical guess, refines it by least
// squares inside a window around the dip and falls back to the guess when
// the refinement fails. Fitting runs in scaled units, angular frequency
// divided by Config.Scale; Wr and Kr are returned in physical units.
package fit

import (
	"log"
	"math"

	"github.com/HamletTheHamster/hanger-fitting/guess"
	"github.com/HamletTheHamster/hanger-fitting/lineshape"
	"github.com/HamletTheHamster/hanger-fitting/optimize"
	"github.com/HamletTheHamster/hanger-fitting/spectrum"
	"github.com/HamletTheHamster/hanger-fitting/units"
)

// Config controls a Fitter.
type Config struct {
	// Scale divides angular frequencies into fitting units.
	Scale float64
	// WindowWidths is the half-width of the fit window in guessed kr.
	WindowWidths float64
	// VaryGr lets the optimizer move gr. Otherwise gr is held at HoldGr.
	VaryGr bool
	HoldGr float64

	Optimizer optimize.Optimizer
	// Logger receives the notice printed when a fit falls back to the guess.
	Logger *log.Logger
}

// DefaultConfig returns the configuration used by Resonance.
func DefaultConfig() Config {
	return Config{
		Scale:        units.WScale,
		WindowWidths: 50,
		Optimizer:    optimize.DefaultLM(),
		Logger:       log.Default(),
	}
}

// Result is a fitted resonance. The embedded Params are in physical units.
type Result struct {
	lineshape.Params

	// Trace is the fitted magnitude at every input frequency.
	Trace []float64
	// Guess is the graphical guess, after overrides, in scaled units.
	Guess lineshape.Params
	// Refined reports whether the optimizer result was adopted.
	Refined bool
	// Window is the number of samples the optimizer saw.
	Window int
	// Err is the optimizer failure that triggered the fallback.
	Err error
}

// Fitter fits hanger resonances.
type Fitter struct {
	cfg Config
}

// New returns a Fitter. Zero fields of cfg take their DefaultConfig value.
func New(cfg Config) *Fitter {
	def := DefaultConfig()
	if cfg.Scale == 0 {
		cfg.Scale = def.Scale
	}
	if cfg.WindowWidths == 0 {
		cfg.WindowWidths = def.WindowWidths
	}
	if cfg.Optimizer == nil {
		cfg.Optimizer = def.Optimizer
	}
	if cfg.Logger == nil {
		cfg.Logger = def.Logger
	}
	return &Fitter{cfg: cfg}
}

// Config returns the effective configuration.
func (f *Fitter) Config() Config { return f.cfg }

// Resonance fits with DefaultConfig.
func Resonance(
	freqs []float64,
	s21 []complex128,
	manual *lineshape.Override,
) (
	Result, error,
) {
	return New(DefaultConfig()).Fit(freqs, s21, manual)
}

// Fit fits the deepest dip of s21. freqs are angular frequencies; manual
// overrides guess fields and is given in scaled units.
//
// Only malformed input is returned as an error. When the optimizer fails,
// for ErrNumerical, ErrInvalidInput or any other reason, the result holds
// the guess and Refined is false.
func (f *Fitter) Fit(
	freqs []float64,
	s21 []complex128,
	manual *lineshape.Override,
) (
	Result, error,
) {

	if err := spectrum.Check(freqs, len(s21)); err != nil {
		return Result{}, err
	}

	w := units.Rescale(freqs, f.cfg.Scale)

	graph, err := guess.Graphical(w, s21)
	if err != nil {
		return Result{}, err
	}
	graph = manual.Merge(graph)

	problem := f.problem(w, s21, graph)
	res := Result{Guess: graph, Window: len(problem.X)}

	adopted := graph
	if best, err := f.cfg.Optimizer.Minimize(problem); err != nil {
		f.cfg.Logger.Printf("Fit failed: %v", err)
		f.cfg.Logger.Print("Using graph guess instead.")
		res.Err = err
	} else {
		adopted = lineshape.FromVector(best)
		res.Refined = true
	}

	res.Trace = lineshape.Hanger(w, adopted)

	adopted.Wr *= f.cfg.Scale
	adopted.Kr *= f.cfg.Scale
	res.Params = adopted

	return res, nil
}

// problem builds the least-squares problem on the samples within
// WindowWidths·kr of wr.
func (f *Fitter) problem(
	w []float64,
	s21 []complex128,
	graph lineshape.Params,
) optimize.Problem {

	mags := spectrum.Magnitude(s21)
	half := f.cfg.WindowWidths * graph.Kr

	var x, y []float64
	for i := range w {
		if math.Abs(w[i]-graph.Wr) < half {
			x = append(x, w[i])
			y = append(y, mags[i])
		}
	}

	gr := optimize.Fixed("gr", f.cfg.HoldGr)
	if f.cfg.VaryGr {
		gr = optimize.Free("gr", graph.Gr)
	}

	return optimize.Problem{
		X: x,
		Y: y,
		Params: []optimize.Parameter{
			optimize.Free("wr", graph.Wr).AtLeast(0),
			optimize.Free("kr", graph.Kr).AtLeast(0),
			gr,
			optimize.Free("phi", graph.Phi),
			optimize.Free("a", graph.A),
			optimize.Free("b", graph.B),
		},
		Model: func(x, p []float64) []float64 {
			return lineshape.Hanger(x, lineshape.FromVector(p))
		},
	}
}
