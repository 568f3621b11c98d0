// Package gnuplot previews resonance figures in an interactive gnuplot
// window. The glot backend is only compiled in with the gnuplot build tag,
// since loading it fails outright when no gnuplot binary is installed.
package gnuplot

import "errors"

// ErrUnavailable is returned by Preview in builds without the gnuplot tag.
var ErrUnavailable = errors.New("gnuplot: preview not built in, rebuild with -tags gnuplot")
