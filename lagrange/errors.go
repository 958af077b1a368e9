package lagrange

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrInsufficientSamples = errors.New("insufficient samples")
	ErrDegenerateSampleSet = errors.New("degenerate sample set")
)

// DegenerateError carries the abscissa shared by two samples.
type DegenerateError struct {
	X *big.Int
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("repeated abscissa %s", e.X.String())
}

func (e *DegenerateError) Unwrap() error {
	return ErrDegenerateSampleSet
}
