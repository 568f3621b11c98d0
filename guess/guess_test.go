package guess

import (
	"errors"
	"math"
	"testing"

	"github.com/HamletTheHamster/hanger-fitting/lineshape"
	"github.com/HamletTheHamster/hanger-fitting/spectrum"
)

// synthetic returns a hanger trace in scaled units, 401 points spanning
// ±0.01 around 5.
func synthetic(p lineshape.Params) ([]float64, []complex128) {
	const n = 401
	w := make([]float64, n)
	for i := range w {
		w[i] = 4.99 + 0.02*float64(i)/(n-1)
	}

	mags := lineshape.Hanger(w, p)
	s21 := make([]complex128, n)
	for i, m := range mags {
		s21[i] = complex(m, 0)
	}
	return w, s21
}

func TestGraphicalSymmetricDip(t *testing.T) {
	truth := lineshape.Params{Wr: 5, Kr: 1e-3, Gr: 2e-4, A: 1}
	w, s21 := synthetic(truth)

	got, err := Graphical(w, s21)
	if err != nil {
		t.Fatalf("Graphical: %v", err)
	}

	if math.Abs(got.Phi) > 1e-3 {
		t.Fatalf("phi mismatch: got %g want 0", got.Phi)
	}
	if math.Abs(got.Wr-truth.Wr) > 1e-4 {
		t.Fatalf("wr mismatch: got %f want %f", got.Wr, truth.Wr)
	}

	total := truth.Kr + truth.Gr
	if math.Abs(got.Kr+got.Gr-total)/total > 0.15 {
		t.Fatalf("linewidth mismatch: got %g want %g", got.Kr+got.Gr, total)
	}
	if got.Kr <= got.Gr {
		t.Fatalf("expected kr > gr for an overcoupled dip: kr=%g gr=%g", got.Kr, got.Gr)
	}
	if math.Abs(got.A-1) > 0.01 || math.Abs(got.B) > 1e-6 {
		t.Fatalf("background mismatch: a=%f b=%g", got.A, got.B)
	}
}

func TestGraphicalPhaseSign(t *testing.T) {
	for _, phi := range []float64{math.Pi / 4, -math.Pi / 4} {
		truth := lineshape.Params{Wr: 5, Kr: 1e-3, Gr: 1e-4, Phi: phi, A: 1}
		w, s21 := synthetic(truth)

		got, err := Graphical(w, s21)
		if err != nil {
			t.Fatalf("Graphical: %v", err)
		}

		if math.Signbit(got.Phi) != math.Signbit(phi) || got.Phi == 0 {
			t.Fatalf("phi=%f: wrong sign, got %f", phi, got.Phi)
		}
		if math.Abs(math.Abs(got.Phi)-math.Abs(phi)) > 0.1 {
			t.Fatalf("phi=%f: magnitude mismatch, got %f", phi, got.Phi)
		}
		if math.Abs(got.Wr-truth.Wr) > 2e-3 {
			t.Fatalf("phi=%f: wr mismatch, got %f", phi, got.Wr)
		}
		if got.Kr <= 0 {
			t.Fatalf("phi=%f: non-positive kr %g", phi, got.Kr)
		}
	}
}

func TestGraphicalSlopedBackground(t *testing.T) {
	truth := lineshape.Params{Wr: 5, Kr: 1e-3, Gr: 2e-4, A: 1, B: 2}
	w, s21 := synthetic(truth)

	got, err := Graphical(w, s21)
	if err != nil {
		t.Fatalf("Graphical: %v", err)
	}

	if math.Abs(got.A-truth.A)/truth.A > 0.01 {
		t.Fatalf("a mismatch: got %f want %f", got.A, truth.A)
	}
	if math.Abs(got.B-truth.B)/truth.B > 0.01 {
		t.Fatalf("b mismatch: got %f want %f", got.B, truth.B)
	}
	if math.Abs(got.Wr-truth.Wr) > 1e-4 {
		t.Fatalf("wr mismatch: got %f want %f", got.Wr, truth.Wr)
	}
}

func TestGraphicalDoesNotModifyInput(t *testing.T) {
	w, s21 := synthetic(lineshape.Params{Wr: 5, Kr: 1e-3, Gr: 2e-4, A: 1})
	w0 := append([]float64(nil), w...)
	s0 := append([]complex128(nil), s21...)

	if _, err := Graphical(w, s21); err != nil {
		t.Fatalf("Graphical: %v", err)
	}
	for i := range w {
		if w[i] != w0[i] || s21[i] != s0[i] {
			t.Fatalf("index %d: input modified", i)
		}
	}
}

func TestGraphicalInvalidInput(t *testing.T) {
	if _, err := Graphical(nil, nil); !errors.Is(err, spectrum.ErrEmpty) {
		t.Fatalf("got %v, want %v", err, spectrum.ErrEmpty)
	}
	if _, err := Graphical([]float64{1, 2, 3}, []complex128{1, 0}); !errors.Is(err, spectrum.ErrLength) {
		t.Fatalf("got %v, want %v", err, spectrum.ErrLength)
	}
}

func TestSlopeSignPropagatesNaN(t *testing.T) {
	freqs := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		name    string
		shifted []float64
		want    float64
	}{
		{"rising", []float64{0, 1, 2, 3, 4}, 1},
		{"falling", []float64{4, 3, 2, 1, 0}, -1},
		{"flat", []float64{1, 1, 1, 1, 1}, 0},
		{"degenerate", []float64{0, 1, 2, 3, math.NaN()}, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slopeSign(freqs, tt.shifted, 3, 2.5)
			if math.IsNaN(tt.want) {
				if !math.IsNaN(got) {
					t.Fatalf("got %f, want NaN", got)
				}
				return
			}
			if got != tt.want {
				t.Fatalf("got %f, want %f", got, tt.want)
			}
		})
	}

	if got := slopeSign(freqs, []float64{0, 1, 2, 3, 4}, 10, 1); got != 0 {
		t.Fatalf("empty window: got %f, want 0", got)
	}
}
