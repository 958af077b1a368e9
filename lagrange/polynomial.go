package lagrange

import (
	"math/big"
	"strconv"
	"strings"
)

// Polynomial holds exact rational coefficients in increasing power of x:
//
//	c[0] + c[1] x + c[2] x^2 + ... + c[n-1] x^(n-1)
type Polynomial struct {
	coefficients []*big.Rat
}

func NewPolynomial(coefficients ...*big.Rat) *Polynomial {
	return &Polynomial{
		coefficients: copyRats(coefficients),
	}
}

func copyRats(rs []*big.Rat) []*big.Rat {
	cs := make([]*big.Rat, len(rs))
	for idx, r := range rs {
		if r == nil {
			cs[idx] = new(big.Rat)
		} else {
			cs[idx] = new(big.Rat).Set(r)
		}
	}

	return cs
}

// Len is the number of coefficients, trailing zeros included.
func (p *Polynomial) Len() int {
	return len(p.coefficients)
}

// Degree returns the power of the highest non-zero coefficient, -1 for the zero polynomial.
func (p *Polynomial) Degree() int {
	for idx := len(p.coefficients) - 1; idx >= 0; idx-- {
		if p.coefficients[idx].Sign() != 0 {
			return idx
		}
	}

	return -1
}

func (p *Polynomial) Coefficient(i int) *big.Rat {
	if i < 0 || i >= len(p.coefficients) {
		return new(big.Rat)
	}

	return new(big.Rat).Set(p.coefficients[i])
}

func (p *Polynomial) Coefficients() []*big.Rat {
	return copyRats(p.coefficients)
}

// Constant is the secret: the value at x = 0.
func (p *Polynomial) Constant() *big.Rat {
	return p.Coefficient(0)
}

// ConstantInt returns the constant term when it is an integer.
func (p *Polynomial) ConstantInt() (*big.Int, bool) {
	c := p.Constant()
	if !c.IsInt() {
		return nil, false
	}

	return new(big.Int).Set(c.Num()), true
}

func (p *Polynomial) Evaluate(x *big.Rat) *big.Rat {
	v := new(big.Rat)

	for idx := len(p.coefficients) - 1; idx >= 0; idx-- {
		v.Mul(v, x)
		v.Add(v, p.coefficients[idx])
	}

	return v
}

// Equal compares coefficients, ignoring trailing zeros.
func (p *Polynomial) Equal(o *Polynomial) bool {
	if p.Degree() != o.Degree() {
		return false
	}

	for idx := 0; idx <= p.Degree(); idx++ {
		if p.coefficients[idx].Cmp(o.coefficients[idx]) != 0 {
			return false
		}
	}

	return true
}

// FormatCoefficient prints r without a denominator when r is an integer.
func FormatCoefficient(r *big.Rat) string {
	return r.RatString()
}

func (p *Polynomial) String() string {
	var sb strings.Builder

	for idx := len(p.coefficients) - 1; idx >= 0; idx-- {
		c := p.coefficients[idx]
		if c.Sign() == 0 {
			continue
		}

		switch {
		case c.Sign() < 0 && sb.Len() == 0:
			sb.WriteString("-")
		case c.Sign() < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}

		sb.WriteString(FormatCoefficient(new(big.Rat).Abs(c)))

		if idx > 0 {
			sb.WriteString("x")
		}

		if idx > 1 {
			sb.WriteString("^")
			sb.WriteString(strconv.Itoa(idx))
		}
	}

	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}
