// Command hangerfit fits a hanger resonance to a swept S21 measurement.
//
//	hangerfit -csv sweep.csv -ghz -note "resonator A"
//
// The located dips, the graphical guess and the fitted parameters are
// printed and written, with a figure of data and fit, to
// plots/<date>/<time>: <note>/.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/HamletTheHamster/hanger-fitting/dip"
	"github.com/HamletTheHamster/hanger-fitting/fit"
	"github.com/HamletTheHamster/hanger-fitting/internal/runlog"
	"github.com/HamletTheHamster/hanger-fitting/lineshape"
	"github.com/HamletTheHamster/hanger-fitting/plotting"
	"github.com/HamletTheHamster/hanger-fitting/plotting/gnuplot"
	"github.com/HamletTheHamster/hanger-fitting/spectrum"
	"github.com/HamletTheHamster/hanger-fitting/units"
)

type options struct {
	csv, note, out string
	ghz, angular   bool
	dips           int
	window, holdGr float64
	varyGr         bool
	slide, gnuplot bool
	noPlot         bool
	manual         *lineshape.Override
}

func main() {

	opts := flags()

	s := readSpectrum(opts)

	runLog := runlog.New(runlog.Path(opts.out, opts.note, time.Now()), os.Stdout)
	logHeader(runLog, opts, s)

	// Dips
	dips, err := dip.LocateResponse(s.Frequencies, s.Response, opts.dips)
	if err != nil {
		log.Fatal(err)
	}
	runLog.Printf("\nDips\nDip \t Index \t Frequency \t\t Width\n")
	for i, d := range dips {
		runLog.Printf("%d \t %d \t %.6f GHz \t %d pts\n",
			i, d.Index, s.Frequencies[d.Index]/units.WScale, d.Mask.Width())
	}

	// Fit
	cfg := fit.DefaultConfig()
	cfg.WindowWidths = opts.window
	cfg.VaryGr = opts.varyGr
	cfg.HoldGr = opts.holdGr

	res, err := fit.New(cfg).Fit(s.Frequencies, s.Response, opts.manual)
	if err != nil {
		log.Fatal(err)
	}

	logResult(runLog, res)

	if !opts.noPlot {
		fig := plotting.Figure{
			Title:       "Hanger Resonance " + opts.note,
			Frequencies: s.Frequencies,
			Data:        s.Magnitude(),
			Fit:         res.Trace,
			Params:      res.Params,
			Slide:       opts.slide,
		}

		p, err := plotting.Build(fig)
		if err != nil {
			log.Fatal(err)
		}
		if err := plotting.Save(p, "Resonance w Fit", runLog.Dir); err != nil {
			log.Fatal(err)
		}

		if opts.gnuplot {
			if err := gnuplot.Preview(fig, ""); err != nil {
				fmt.Println(err)
			}
		}
	}

	if err := runLog.Write(); err != nil {
		log.Fatal(err)
	}
}

//----------------------------------------------------------------------------//

func flags() options {

	var opts options
	var wr, kr, gr, phi, a, b float64

	flag.StringVar(&opts.csv, "csv", "", "sweep CSV with Frequency and Real/Imag or Magnitude/Phase columns")
	flag.StringVar(&opts.note, "note", "", "note to append folder name")
	flag.StringVar(&opts.out, "out", "plots", "folder for dated run folders")
	flag.BoolVar(&opts.ghz, "ghz", false, "frequency column in GHz instead of Hz")
	flag.BoolVar(&opts.angular, "angular", false, "frequency column already angular (rad/s)")
	flag.IntVar(&opts.dips, "dips", 1, "number of dips to locate")
	flag.Float64Var(&opts.window, "window", 50, "fit window half-width in guessed linewidths")
	flag.BoolVar(&opts.varyGr, "vary-gr", false, "fit gr instead of holding it")
	flag.Float64Var(&opts.holdGr, "hold-gr", 0, "value gr is held at (scaled units)")
	flag.BoolVar(&opts.slide, "slide", false, "format figures for slide presentation")
	flag.BoolVar(&opts.gnuplot, "gnuplot", false, "open the fit in gnuplot (needs -tags gnuplot)")
	flag.BoolVar(&opts.noPlot, "noplot", false, "skip the figure")
	flag.Float64Var(&wr, "wr", 0, "manual wr guess (scaled units)")
	flag.Float64Var(&kr, "kr", 0, "manual kr guess (scaled units)")
	flag.Float64Var(&gr, "gr", 0, "manual gr guess (scaled units)")
	flag.Float64Var(&phi, "phi", 0, "manual phi guess (rad)")
	flag.Float64Var(&a, "a", 0, "manual background amplitude guess")
	flag.Float64Var(&b, "b", 0, "manual background slope guess")
	flag.Parse()

	if opts.csv == "" {
		fmt.Println("flag.Parse(): specify the sweep with -csv=")
		os.Exit(1)
	}

	if opts.ghz && opts.angular {
		fmt.Println("flag.Parse(): frequency flagged as both GHz and angular.")
		os.Exit(1)
	}

	// Only flags given on the command line override the guess
	manual := &lineshape.Override{}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "wr":
			manual.Wr = &wr
		case "kr":
			manual.Kr = &kr
		case "gr":
			manual.Gr = &gr
		case "phi":
			manual.Phi = &phi
		case "a":
			manual.A = &a
		case "b":
			manual.B = &b
		}
	})
	if !manual.Empty() {
		opts.manual = manual
	}

	return opts
}

func readSpectrum(opts options) spectrum.Spectrum {

	file, err := os.Open(opts.csv)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	readOpts := spectrum.ReadOptions{Angular: opts.angular}
	if opts.ghz {
		readOpts.FrequencyUnit = units.GHz
	}

	s, err := spectrum.ReadCSV(file, readOpts)
	if err != nil {
		log.Fatal(err)
	}
	return s
}

func logHeader(
	runLog *runlog.Log,
	opts options,
	s spectrum.Spectrum,
) {

	runLog.Printf("Hanger fit %s\n", time.Now().Format("2006-Jan-02 15:04:05"))
	runLog.Printf("File: %s\n", opts.csv)
	if opts.note != "" {
		runLog.Printf("Note: %s\n", opts.note)
	}
	runLog.Printf("Points: %d, %.6f to %.6f GHz\n",
		s.Len(), s.Frequencies[0]/units.WScale, s.Frequencies[s.Len()-1]/units.WScale)
	runLog.Printf("Window: %g linewidths, gr %s\n", opts.window, grMode(opts))
}

func grMode(opts options) string {
	if opts.varyGr {
		return "varied"
	}
	return fmt.Sprintf("held at %g", opts.holdGr)
}

func logResult(
	runLog *runlog.Log,
	res fit.Result,
) {

	g := res.Guess
	runLog.Printf("\nGraphical guess (scaled)\n%s\n", g)

	if res.Refined {
		runLog.Printf("\nFit (%d points)\n", res.Window)
	} else {
		runLog.Printf("\nFit failed, graphical guess used: %v\n", res.Err)
	}

	// Angular to ordinary frequency
	toHz := 1 / (2 * math.Pi)

	runLog.Printf("wr \t %.9f GHz\n", res.Wr*toHz/units.GHz)
	runLog.Printf("kr \t %.6f MHz\n", res.Kr*toHz/units.MHz)
	runLog.Printf("gr \t %g (scaled)\n", res.Gr)
	runLog.Printf("phi \t %.4f rad\n", res.Phi)
	runLog.Printf("a \t %.6f\n", res.A)
	runLog.Printf("b \t %g\n", res.B)
	if res.Kr > 0 {
		runLog.Printf("Q \t %.1f\n", res.Wr/res.Kr)
	}
}
