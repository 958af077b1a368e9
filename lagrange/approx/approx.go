// Package approx is a float64 rendition of the Lagrange interpolator.
//
// Results are approximate: rounding error grows with the number of samples and
// with the magnitude of the ordinates, and ordinates beyond 2^53 lose precision
// before interpolation even starts. Use package lagrange for secrets.
package approx

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrInsufficientSamples = errors.New("insufficient samples")
	ErrDegenerateSampleSet = errors.New("degenerate sample set")
	ErrLengthMismatch      = errors.New("length mismatch")
)

func Interpolate(xs, ys []float64) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}

	n := len(xs)
	if n == 0 {
		return nil, ErrInsufficientSamples
	}

	coefficients := make([]float64, n)

	for i := 0; i < n; i++ {
		basis := []float64{1}

		for j := 0; j < n; j++ {
			if j == i {
				continue
			}

			denom := xs[i] - xs[j]
			if denom == 0 {
				return nil, ErrDegenerateSampleSet
			}

			next := make([]float64, len(basis)+1)
			for k, c := range basis {
				next[k] -= c * xs[j]
				next[k+1] += c
			}

			for k := range next {
				next[k] /= denom
			}

			basis = next
		}

		for k, c := range basis {
			coefficients[k] += c * ys[i]
		}
	}

	return coefficients, nil
}

func Format(coefficients []float64) string {
	var sb strings.Builder

	for idx := len(coefficients) - 1; idx >= 0; idx-- {
		c := coefficients[idx]
		if c == 0 {
			continue
		}

		switch {
		case c < 0 && sb.Len() == 0:
			sb.WriteString("-")
		case c < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}

		if c < 0 {
			c = -c
		}

		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))

		if idx > 0 {
			sb.WriteString("x")
		}

		if idx > 1 {
			sb.WriteString("^" + strconv.Itoa(idx))
		}
	}

	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}
