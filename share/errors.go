package share

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidThreshold    = errors.New("invalid threshold")
	ErrNotEnoughRecords    = errors.New("not enough records")
	ErrInconsistentRecords = errors.New("inconsistent records")
	ErrBadShare            = errors.New("bad share")
)

// RecordError ties a decode failure to the abscissa of its record.
type RecordError struct {
	X   string
	Err error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record x=%s: %v", e.X, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
