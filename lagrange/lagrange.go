// Package lagrange recovers the interpolating polynomial of a set of sample points
// with exact rational arithmetic.
package lagrange

import (
	"math/big"
)

// Point is a sample (x, y). Points are never modified by this package.
type Point struct {
	X *big.Int
	Y *big.Int
}

func NewPoint(x, y int64) Point {
	return Point{
		X: big.NewInt(x),
		Y: big.NewInt(y),
	}
}

// Interpolate returns the unique polynomial of degree <= n-1 through the n points.
// The result always has exactly n coefficients.
func Interpolate(points []Point) (*Polynomial, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrInsufficientSamples
	}

	coefficients := make([]*big.Rat, n)
	for idx := range coefficients {
		coefficients[idx] = new(big.Rat)
	}

	xs := make([]*big.Rat, n)
	for idx, point := range points {
		xs[idx] = new(big.Rat).SetInt(point.X)
	}

	t := new(big.Rat)

	for i := 0; i < n; i++ {
		basis, err := basisPolynomial(xs, i)
		if err != nil {
			return nil, err
		}

		yi := new(big.Rat).SetInt(points[i].Y)

		for k, c := range basis {
			coefficients[k].Add(coefficients[k], t.Mul(c, yi))
		}
	}

	return &Polynomial{
		coefficients: coefficients,
	}, nil
}

// basisPolynomial builds L_i(x) = prod_{j != i} (x - x_j) / (x_i - x_j), dividing
// right after each multiplication step so every coefficient stays an exact rational.
func basisPolynomial(xs []*big.Rat, i int) ([]*big.Rat, error) {
	basis := []*big.Rat{big.NewRat(1, 1)}

	denom := new(big.Rat)
	t := new(big.Rat)

	for j, xj := range xs {
		if j == i {
			continue
		}

		denom.Sub(xs[i], xj)
		if denom.Sign() == 0 {
			return nil, &DegenerateError{X: new(big.Int).Set(xj.Num())}
		}

		next := make([]*big.Rat, len(basis)+1)
		for k := range next {
			next[k] = new(big.Rat)
		}

		for k, c := range basis {
			next[k].Sub(next[k], t.Mul(c, xj))
			next[k+1].Add(next[k+1], c)
		}

		for _, c := range next {
			c.Quo(c, denom)
		}

		basis = next
	}

	return basis, nil
}

// InterpolateAt evaluates the interpolating polynomial at x without building its coefficients:
//
//	P(x) = sum_i y_i prod_{j != i} (x - x_j) / (x_i - x_j)
func InterpolateAt(points []Point, x *big.Rat) (*big.Rat, error) {
	if len(points) == 0 {
		return nil, ErrInsufficientSamples
	}

	xs := make([]*big.Rat, len(points))
	for idx, point := range points {
		xs[idx] = new(big.Rat).SetInt(point.X)
	}

	sum := new(big.Rat)
	num := new(big.Rat)
	denom := new(big.Rat)

	for i, xi := range xs {
		term := new(big.Rat).SetInt(points[i].Y)

		for j, xj := range xs {
			if j == i {
				continue
			}

			denom.Sub(xi, xj)
			if denom.Sign() == 0 {
				return nil, &DegenerateError{X: new(big.Int).Set(xj.Num())}
			}

			num.Sub(x, xj)
			term.Mul(term, num)
			term.Quo(term, denom)
		}

		sum.Add(sum, term)
	}

	return sum, nil
}

// Secret is the constant term of the interpolating polynomial.
func Secret(points []Point) (*big.Rat, error) {
	return InterpolateAt(points, new(big.Rat))
}
