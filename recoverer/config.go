package recoverer

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	SelectionSmallest = "smallest"
	SelectionDocument = "document"
)

type Config struct {
	// Selection is SelectionSmallest (default) or SelectionDocument.
	Selection   string `yaml:"selection" json:"selection"`
	SkipInvalid bool   `yaml:"skipInvalid" json:"skipInvalid"`
	Dedup       bool   `yaml:"dedup" json:"dedup"`

	CacheExpiration time.Duration `yaml:"cacheExpiration" json:"cacheExpiration"`
	// KOverride replaces the threshold read from documents when positive.
	KOverride int `yaml:"kOverride" json:"kOverride"`
}

func LoadConfig(path string) (cfg *Config, err error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return
	}

	cfg = &Config{}

	err = yaml.Unmarshal(d, cfg)
	if err != nil {
		cfg = nil

		return
	}

	return
}
