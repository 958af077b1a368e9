package share

import (
	"math/big"
	"strconv"
	"strings"
)

// BuildSharePayload encodes a record as "<x>:<base>:<value>".
func BuildSharePayload(r Record) string {
	return recordX(r) + ":" + strconv.Itoa(r.Base) + ":" + r.Value
}

func ParseShare(s string) (r Record, err error) {
	ps := strings.Split(strings.TrimSpace(s), ":")
	if len(ps) != 3 {
		err = ErrBadShare

		return
	}

	x, ok := new(big.Int).SetString(ps[0], 10)
	if !ok {
		err = ErrBadShare

		return
	}

	base, err := strconv.Atoi(ps[1])
	if err != nil {
		err = ErrBadShare

		return
	}

	if ps[2] == "" {
		err = ErrBadShare

		return
	}

	r = Record{
		X:     x,
		Base:  base,
		Value: ps[2],
	}

	return
}
