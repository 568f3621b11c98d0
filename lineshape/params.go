package lineshape

import "fmt"

// Params are the six hanger parameters: resonance angular frequency Wr,
// linewidths Kr and Gr, impedance-mismatch phase Phi (radians) and the
// background amplitude A and slope B.
type Params struct {
	Wr  float64
	Kr  float64
	Gr  float64
	Phi float64
	A   float64
	B   float64
}

// Names lists the parameters in Vector order.
var Names = [6]string{"wr", "kr", "gr", "phi", "a", "b"}

// Vector returns p in Names order.
func (p Params) Vector() []float64 {
	return []float64{p.Wr, p.Kr, p.Gr, p.Phi, p.A, p.B}
}

// FromVector is the inverse of Vector.
func FromVector(x []float64) Params {
	return Params{Wr: x[0], Kr: x[1], Gr: x[2], Phi: x[3], A: x[4], B: x[5]}
}

func (p Params) String() string {
	return fmt.Sprintf("wr=%g kr=%g gr=%g phi=%g a=%g b=%g", p.Wr, p.Kr, p.Gr, p.Phi, p.A, p.B)
}

// Override holds caller-chosen values for any subset of the parameters.
// Nil fields leave the underlying value alone.
type Override struct {
	Wr  *float64
	Kr  *float64
	Gr  *float64
	Phi *float64
	A   *float64
	B   *float64
}

// Merge returns p with every set field of o written over it.
func (o *Override) Merge(p Params) Params {
	if o == nil {
		return p
	}

	for _, f := range []struct {
		src *float64
		dst *float64
	}{
		{o.Wr, &p.Wr},
		{o.Kr, &p.Kr},
		{o.Gr, &p.Gr},
		{o.Phi, &p.Phi},
		{o.A, &p.A},
		{o.B, &p.B},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	return p
}

// Empty reports whether o overrides nothing.
func (o *Override) Empty() bool {
	return o == nil || (o.Wr == nil && o.Kr == nil && o.Gr == nil &&
		o.Phi == nil && o.A == nil && o.B == nil)
}
