// Package document reads share documents:
//
//	{
//	  "keys": {"n": 4, "k": 3},
//	  "1": {"base": "10", "value": "4"},
//	  "2": {"base": "2", "value": "111"}
//	}
//
// Records keep the order they have in the document.
package document

import (
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sgostarter/libshares/share"
	"github.com/spf13/cast"
)

const keysKey = "keys"

type Keys struct {
	N int `json:"n" yaml:"n"`
	K int `json:"k" yaml:"k"`
}

type TestCase struct {
	Keys    Keys
	Records []share.Record
}

type rawKeys struct {
	N any `json:"n" yaml:"n"`
	K any `json:"k" yaml:"k"`
}

type rawRecord struct {
	Base  any `json:"base" yaml:"base"`
	Value any `json:"value" yaml:"value"`
}

func toInt(v any) (int, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(strings.TrimSpace(s))
}

func parseKeys(raw rawKeys) (keys Keys, err error) {
	if raw.K == nil {
		err = ErrNoKeys

		return
	}

	keys.K, err = toInt(raw.K)
	if err != nil {
		err = ErrNoKeys

		return
	}

	if raw.N != nil {
		keys.N, err = toInt(raw.N)
		if err != nil {
			err = ErrBadDocument

			return
		}
	}

	return
}

func parseRecord(key string, raw rawRecord) (r share.Record, err error) {
	x, ok := new(big.Int).SetString(strings.TrimSpace(key), 10)
	if !ok {
		err = badRecord(key, "abscissa is not a decimal integer")

		return
	}

	if raw.Base == nil || raw.Value == nil {
		err = badRecord(key, "base and value are required")

		return
	}

	base, err := toInt(raw.Base)
	if err != nil {
		err = badRecord(key, "base %v is not an integer", raw.Base)

		return
	}

	value, err := cast.ToStringE(raw.Value)
	if err != nil {
		err = badRecord(key, "value %v is not a digit string", raw.Value)

		return
	}

	r = share.Record{
		X:     x,
		Base:  base,
		Value: strings.TrimSpace(value),
	}

	return
}

// LoadFile parses path as YAML when it ends in .yaml or .yml and as JSON otherwise.
func LoadFile(path string) (*TestCase, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(d)
	default:
		return ParseJSON(d)
	}
}
