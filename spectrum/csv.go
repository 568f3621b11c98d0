package spectrum

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/HamletTheHamster/hanger-fitting/units"
)

var ErrColumns = errors.New("spectrum: csv is missing frequency or response columns")

// ReadOptions describes how the columns of a sweep export are scaled.
type ReadOptions struct {
	// FrequencyUnit multiplies the frequency column into Hz. Zero means Hz.
	FrequencyUnit float64
	// Angular marks the frequency column as already angular (rad/s).
	Angular bool
}

type columns struct {
	freq, re, im, mag, phase int
	magDB, phaseRad          bool
}

// ReadCSV reads a sweep with a header row. Recognized headings are
// Frequency, Real and Imag, or Magnitude (linear, or dB when the heading
// says so) with an optional Phase (degrees unless the heading says rad).
func ReadCSV(
	r io.Reader,
	opts ReadOptions,
) (
	Spectrum, error,
) {

	// Read
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum: read csv: %w", err)
	}
	if len(rows) < 2 {
		return Spectrum{}, ErrEmpty
	}

	cols, err := header(rows[0])
	if err != nil {
		return Spectrum{}, err
	}

	unit := opts.FrequencyUnit
	if unit == 0 {
		unit = units.Hz
	}

	// Convert
	var s Spectrum
	for n, row := range rows[1:] {
		line := n + 2

		f, err := field(row, cols.freq, line)
		if err != nil {
			return Spectrum{}, err
		}

		var z complex128
		if cols.re >= 0 {
			re, err := field(row, cols.re, line)
			if err != nil {
				return Spectrum{}, err
			}
			im, err := field(row, cols.im, line)
			if err != nil {
				return Spectrum{}, err
			}
			z = complex(re, im)
		} else {
			mag, err := field(row, cols.mag, line)
			if err != nil {
				return Spectrum{}, err
			}
			if cols.magDB {
				mag = math.Pow(10, mag/20)
			}
			phase := 0.
			if cols.phase >= 0 {
				if phase, err = field(row, cols.phase, line); err != nil {
					return Spectrum{}, err
				}
				if !cols.phaseRad {
					phase *= math.Pi / 180
				}
			}
			z = cmplx.Rect(mag, phase)
		}

		s.Frequencies = append(s.Frequencies, f*unit)
		s.Response = append(s.Response, z)
	}

	if !opts.Angular {
		s.Frequencies = units.Angular(s.Frequencies)
	}

	return s, s.Validate()
}

func header(
	headings []string,
) (
	columns, error,
) {

	cols := columns{freq: -1, re: -1, im: -1, mag: -1, phase: -1}

	for col, heading := range headings {
		h := strings.ToLower(strings.TrimSpace(heading))
		switch {
		case strings.HasPrefix(h, "freq"):
			cols.freq = col
		case strings.Contains(h, "real"), h == "re":
			cols.re = col
		case strings.Contains(h, "imag"), h == "im":
			cols.im = col
		case strings.HasPrefix(h, "phase"):
			cols.phase = col
			cols.phaseRad = strings.Contains(h, "rad")
		case strings.HasPrefix(h, "mag"), strings.HasPrefix(h, "s21"), strings.HasPrefix(h, "amp"):
			cols.mag = col
			cols.magDB = strings.Contains(h, "db")
		}
	}

	complexOK := cols.re >= 0 && cols.im >= 0
	if cols.freq < 0 || (!complexOK && cols.mag < 0) {
		return cols, fmt.Errorf("%w: %q", ErrColumns, headings)
	}
	if !complexOK {
		cols.re, cols.im = -1, -1
	}
	return cols, nil
}

func field(
	row []string,
	col, line int,
) (
	float64, error,
) {

	if col >= len(row) {
		return 0, fmt.Errorf("spectrum: line %d: missing column %d", line, col+1)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
	if err != nil {
		return 0, fmt.Errorf("spectrum: line %d: %w", line, err)
	}
	return v, nil
}
