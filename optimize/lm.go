package optimize

import (
	"fmt"

	"github.com/maorshutman/lm"
)

// LM is a Levenberg-Marquardt optimizer with a numerical Jacobian.
type LM struct {
	Iterations   int
	ObjectiveTol float64
	Tau          float64
	Eps1         float64
	Eps2         float64
}

// DefaultLM returns the solver settings used for resonance fits.
func DefaultLM() LM {
	return LM{
		Iterations:   1000,
		ObjectiveTol: 1e-16,
		Tau:          1e-6,
		Eps1:         1e-8,
		Eps2:         1e-8,
	}
}

// Minimize implements Optimizer.
func (o LM) Minimize(p Problem) ([]float64, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	free := p.free()

	params := make([]float64, len(p.Params))
	for i, par := range p.Params {
		params[i] = par.start()
	}

	init := make([]float64, len(free))
	for k, i := range free {
		init[k] = p.Params[i].internal(params[i])
	}

	// Full parameter vector for an internal free vector
	expand := func(x []float64) []float64 {
		full := append([]float64(nil), params...)
		for k, i := range free {
			full[i] = p.Params[i].external(x[k])
		}
		return full
	}

	f := func(dst, x []float64) {
		y := p.Model(p.X, expand(x))
		for i := range dst {
			dst[i] = y[i] - p.Y[i]
		}
	}

	jacobian := lm.NumJac{Func: f}

	toBeSolved := lm.LMProblem{
		Dim:        len(free),
		Size:       len(p.X),
		Func:       f,
		Jac:        jacobian.Jac,
		InitParams: init,
		Tau:        o.Tau,
		Eps1:       o.Eps1,
		Eps2:       o.Eps2,
	}

	x, err := solve(toBeSolved, &lm.Settings{Iterations: o.Iterations, ObjectiveTol: o.ObjectiveTol})
	if err != nil {
		return nil, err
	}

	best := expand(x)
	for i, v := range best {
		if !finite(v) {
			return nil, fmt.Errorf("%w: %s = %v", ErrNumerical, p.Params[i].Name, v)
		}
	}
	if chi := p.ChiSquare(best); !finite(chi) {
		return nil, fmt.Errorf("%w: residual %v", ErrNumerical, chi)
	}

	return best, nil
}

// solve runs the solver, turning its errors and panics into ErrNumerical.
func solve(
	problem lm.LMProblem,
	settings *lm.Settings,
) (
	x []float64, err error,
) {

	defer func() {
		if r := recover(); r != nil {
			x, err = nil, fmt.Errorf("%w: %v", ErrNumerical, r)
		}
	}()

	result, err := lm.LM(problem, settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNumerical, err)
	}
	return result.X, nil
}
