// Package radix converts digit strings of any base in [2,36] to exact integers and back.
package radix

import (
	"math/big"
	"strings"
)

const (
	MinRadix = 2
	MaxRadix = 36
)

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

func checkRadix(radix int) error {
	if radix < MinRadix || radix > MaxRadix {
		return &RadixError{Radix: radix}
	}

	return nil
}

// DigitValue returns the value of c as a digit, letters are case-insensitive.
func DigitValue(c rune) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	}

	return 0, false
}

// Decode evaluates digits in the given radix, most significant digit first.
func Decode(digits string, radix int) (v *big.Int, err error) {
	if err = checkRadix(radix); err != nil {
		return
	}

	if digits == "" {
		err = &DigitError{Digits: digits, Char: -1, Radix: radix}

		return
	}

	bRadix := big.NewInt(int64(radix))
	bDigit := new(big.Int)
	acc := new(big.Int)

	for pos, c := range digits {
		d, ok := DigitValue(c)
		if !ok || d >= radix {
			err = &DigitError{Digits: digits, Pos: pos, Char: c, Radix: radix}

			return
		}

		acc.Mul(acc, bRadix)
		acc.Add(acc, bDigit.SetInt64(int64(d)))
	}

	v = acc

	return
}

// Encode renders a non-negative v in the given radix with lowercase digits.
func Encode(v *big.Int, radix int) (s string, err error) {
	if err = checkRadix(radix); err != nil {
		return
	}

	if v.Sign() < 0 {
		err = ErrNegativeValue

		return
	}

	if v.Sign() == 0 {
		s = "0"

		return
	}

	bRadix := big.NewInt(int64(radix))
	q := new(big.Int).Set(v)
	r := new(big.Int)

	var rs []byte

	for q.Sign() > 0 {
		q.QuoRem(q, bRadix, r)
		rs = append(rs, digitChars[r.Int64()])
	}

	var sb strings.Builder

	sb.Grow(len(rs))

	for idx := len(rs) - 1; idx >= 0; idx-- {
		sb.WriteByte(rs[idx])
	}

	s = sb.String()

	return
}
