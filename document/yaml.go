package document

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// yamlRecord reads value as raw scalar text, so 0777 stays "0777".
type yamlRecord struct {
	Base  any       `yaml:"base"`
	Value yaml.Node `yaml:"value"`
}

func (yr *yamlRecord) raw(key string) (rr rawRecord, err error) {
	rr.Base = yr.Base

	switch {
	case yr.Value.Kind == 0:
	case yr.Value.Kind == yaml.ScalarNode && yr.Value.Tag == "!!null":
	case yr.Value.Kind == yaml.ScalarNode:
		rr.Value = yr.Value.Value
	default:
		err = badRecord(key, "value is not a scalar")
	}

	return
}

// ParseYAML accepts the same tree as ParseJSON written in YAML.
func ParseYAML(data []byte) (*TestCase, error) {
	var root yaml.Node

	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Join(ErrBadDocument, err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, ErrBadDocument
	}

	m := root.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, ErrBadDocument
	}

	tc := &TestCase{}

	var hasKeys bool

	for idx := 0; idx+1 < len(m.Content); idx += 2 {
		key := m.Content[idx].Value
		v := m.Content[idx+1]

		if key == keysKey {
			var rk rawKeys

			if err := v.Decode(&rk); err != nil {
				return nil, errors.Join(ErrBadDocument, err)
			}

			keys, err := parseKeys(rk)
			if err != nil {
				return nil, err
			}

			tc.Keys = keys
			hasKeys = true

			continue
		}

		var yr yamlRecord

		if err := v.Decode(&yr); err != nil {
			return nil, badRecord(key, "%v", err)
		}

		rr, err := yr.raw(key)
		if err != nil {
			return nil, err
		}

		r, err := parseRecord(key, rr)
		if err != nil {
			return nil, err
		}

		tc.Records = append(tc.Records, r)
	}

	if !hasKeys {
		return nil, ErrNoKeys
	}

	return tc, nil
}
