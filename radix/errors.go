package radix

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRadix  = errors.New("invalid radix")
	ErrInvalidDigit  = errors.New("invalid digit")
	ErrNegativeValue = errors.New("negative value")
)

type RadixError struct {
	Radix int
}

func (e *RadixError) Error() string {
	return fmt.Sprintf("radix %d out of range [%d,%d]", e.Radix, MinRadix, MaxRadix)
}

func (e *RadixError) Unwrap() error {
	return ErrInvalidRadix
}

// DigitError reports the first character of Digits that is not a digit of Radix.
// Pos is a byte offset, Char is -1 for an empty digit string.
type DigitError struct {
	Digits string
	Pos    int
	Char   rune
	Radix  int
}

func (e *DigitError) Error() string {
	if e.Char < 0 {
		return fmt.Sprintf("empty digit string for radix %d", e.Radix)
	}

	return fmt.Sprintf("invalid digit %q at %d in %q for radix %d", e.Char, e.Pos, e.Digits, e.Radix)
}

func (e *DigitError) Unwrap() error {
	return ErrInvalidDigit
}
