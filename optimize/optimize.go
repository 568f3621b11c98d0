// Package optimize fits model parameters to data by least squares.
//
// A Problem names every parameter of the model. Parameters can be held
// fixed or left free, and free parameters can carry a lower bound. The LM
// optimizer removes fixed parameters from the search and maps bounded
// ones through
//
//	internal = sqrt((v - min + 1)² - 1)
//	v        = min - 1 + sqrt(internal² + 1)
//
// so the unconstrained Levenberg-Marquardt search can never leave the
// allowed region.
package optimize

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidInput = errors.New("optimize: invalid problem")
	ErrNumerical    = errors.New("optimize: numerical failure")
)

// Parameter is one model parameter.
type Parameter struct {
	Name  string
	Value float64
	// Min is the lower bound, math.Inf(-1) for none.
	Min  float64
	Vary bool
}

// Free returns an unbounded parameter that is varied.
func Free(name string, value float64) Parameter {
	return Parameter{Name: name, Value: value, Min: math.Inf(-1), Vary: true}
}

// Fixed returns a parameter held at value.
func Fixed(name string, value float64) Parameter {
	return Parameter{Name: name, Value: value, Min: math.Inf(-1)}
}

// AtLeast returns p bounded below by min.
func (p Parameter) AtLeast(min float64) Parameter {
	p.Min = min
	return p
}

// Model evaluates a model at every x for the full parameter vector.
type Model func(x, params []float64) []float64

// Problem is a least-squares problem: find the parameters that minimize
// the sum of (Model(X, params) - Y)².
type Problem struct {
	X      []float64
	Y      []float64
	Params []Parameter
	Model  Model
}

// Optimizer minimizes a Problem. It returns the best-fit value of every
// parameter, fixed ones included, in Params order. Failures wrap
// ErrInvalidInput or ErrNumerical.
type Optimizer interface {
	Minimize(p Problem) ([]float64, error)
}

// Values returns the starting value of every parameter.
func (p Problem) Values() []float64 {
	x := make([]float64, len(p.Params))
	for i, par := range p.Params {
		x[i] = par.Value
	}
	return x
}

// ChiSquare returns the sum of squared residuals at params.
func (p Problem) ChiSquare(params []float64) float64 {
	y := p.Model(p.X, params)
	sum := 0.
	for i := range p.Y {
		r := y[i] - p.Y[i]
		sum += r * r
	}
	return sum
}

func (p Problem) free() []int {
	var free []int
	for i, par := range p.Params {
		if par.Vary {
			free = append(free, i)
		}
	}
	return free
}

func (p Problem) validate() error {
	switch {
	case p.Model == nil:
		return fmt.Errorf("%w: no model", ErrInvalidInput)
	case len(p.X) == 0:
		return fmt.Errorf("%w: no data", ErrInvalidInput)
	case len(p.X) != len(p.Y):
		return fmt.Errorf("%w: %d x values, %d y values", ErrInvalidInput, len(p.X), len(p.Y))
	}

	nFree := len(p.free())
	if nFree == 0 {
		return fmt.Errorf("%w: no free parameters", ErrInvalidInput)
	}
	if nFree > len(p.X) {
		return fmt.Errorf("%w: %d free parameters, %d points", ErrInvalidInput, nFree, len(p.X))
	}

	for _, par := range p.Params {
		if !finite(par.Value) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidInput, par.Name, par.Value)
		}
		if math.IsNaN(par.Min) || math.IsInf(par.Min, 1) {
			return fmt.Errorf("%w: %s bound %v", ErrInvalidInput, par.Name, par.Min)
		}
	}
	for i := range p.X {
		if !finite(p.X[i]) || !finite(p.Y[i]) {
			return fmt.Errorf("%w: non-finite data at index %d", ErrInvalidInput, i)
		}
	}
	return nil
}

func (par Parameter) bounded() bool { return !math.IsInf(par.Min, -1) }

// start returns the starting value, clamped into bounds.
func (par Parameter) start() float64 {
	if par.bounded() && par.Value < par.Min {
		return par.Min
	}
	return par.Value
}

func (par Parameter) internal(v float64) float64 {
	if !par.bounded() {
		return v
	}
	d := v - par.Min + 1
	return math.Sqrt(d*d - 1)
}

func (par Parameter) external(u float64) float64 {
	if !par.bounded() {
		return u
	}
	return par.Min - 1 + math.Sqrt(u*u+1)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
