package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/HamletTheHamster/hanger-fitting/fit"
	"github.com/HamletTheHamster/hanger-fitting/internal/runlog"
	"github.com/HamletTheHamster/hanger-fitting/lineshape"
	"github.com/HamletTheHamster/hanger-fitting/optimize"
	"github.com/HamletTheHamster/hanger-fitting/units"
)

func TestGrMode(t *testing.T) {
	if got := grMode(options{varyGr: true}); got != "varied" {
		t.Fatalf("got %q want varied", got)
	}
	if got := grMode(options{holdGr: 0.5}); got != "held at 0.5" {
		t.Fatalf("got %q want held at 0.5", got)
	}
}

func TestLogResult(t *testing.T) {
	res := fit.Result{
		Params: lineshape.Params{
			Wr:  2 * math.Pi * 5 * units.GHz,
			Kr:  2 * math.Pi * 0.5 * units.MHz,
			Phi: 0.3,
			A:   1,
		},
		Guess:   lineshape.Params{Wr: 5, Kr: 5e-4},
		Refined: false,
		Err:     optimize.ErrNumerical,
	}

	var out bytes.Buffer
	runLog := runlog.New(t.TempDir(), &out)
	logResult(runLog, res)

	for _, want := range []string{
		"graphical guess used",
		"wr \t 5.000000000 GHz",
		"kr \t 0.500000 MHz",
		"Q \t 10000.0",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("missing %q in\n%s", want, out.String())
		}
	}
}
