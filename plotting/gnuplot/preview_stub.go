//go:build !gnuplot

package gnuplot

import "github.com/HamletTheHamster/hanger-fitting/plotting"

// Preview reports ErrUnavailable; the figure is still written by
// plotting.Save.
func Preview(fig plotting.Figure, file string) error {
	return ErrUnavailable
}
