package document

import (
	"errors"
	"fmt"
)

var (
	ErrBadDocument = errors.New("bad document")
	ErrNoKeys      = errors.New("no keys")
	ErrBadRecord   = errors.New("bad record")
)

func badRecord(key, format string, a ...any) error {
	return fmt.Errorf("%w %q: %s", ErrBadRecord, key, fmt.Sprintf(format, a...))
}
