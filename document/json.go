package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

func decodeStrict(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	return dec.Decode(v)
}

// ParseJSON walks the top level object token by token so records keep document order.
func ParseJSON(data []byte) (tc *TestCase, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		err = errors.Join(ErrBadDocument, err)

		return
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		err = ErrBadDocument

		return
	}

	tc = &TestCase{}

	var hasKeys bool

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, errors.Join(ErrBadDocument, err)
		}

		key, _ := tok.(string)

		var raw json.RawMessage

		if err = dec.Decode(&raw); err != nil {
			return nil, errors.Join(ErrBadDocument, err)
		}

		if key == keysKey {
			var rk rawKeys

			if err = decodeStrict(raw, &rk); err != nil {
				return nil, errors.Join(ErrBadDocument, err)
			}

			if tc.Keys, err = parseKeys(rk); err != nil {
				return nil, err
			}

			hasKeys = true

			continue
		}

		var rr rawRecord

		if err = decodeStrict(raw, &rr); err != nil {
			return nil, badRecord(key, "%v", err)
		}

		r, e := parseRecord(key, rr)
		if e != nil {
			return nil, e
		}

		tc.Records = append(tc.Records, r)
	}

	if _, err = dec.Token(); err != nil {
		return nil, errors.Join(ErrBadDocument, err)
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrBadDocument
	}

	if !hasKeys {
		return nil, ErrNoKeys
	}

	return tc, nil
}
