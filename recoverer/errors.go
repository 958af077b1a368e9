package recoverer

import "errors"

var (
	ErrNoTestCase       = errors.New("no test case")
	ErrUnknownSelection = errors.New("unknown selection")
)
