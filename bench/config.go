package bench

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"sigs.k8s.io/yaml"

	"github.com/rag-nar1/sized-bloom/filter"
)

var ErrInvalidConfig = errors.New("bench: invalid config")

// Config describes one benchmark run.
type Config struct {
	FalsePositiveRate float64 `json:"falsePositiveRate"`
	MaxItems          uint64  `json:"maxItems"`
	// Queries is the number of never-inserted items probed for false positives.
	Queries    uint64 `json:"queries"`
	Hash       string `json:"hash"`
	Generator  string `json:"generator"`
	ItemLength int    `json:"itemLength"`
	Seed       int64  `json:"seed"`
}

func DefaultConfig() Config {
	return Config{
		FalsePositiveRate: 0.01,
		MaxItems:          1_000_000,
		Queries:           1_000_000,
		Hash:              "murmur3",
		Generator:         GeneratorRandom,
		ItemLength:        64,
		Seed:              1,
	}
}

// LoadConfig reads a YAML or JSON file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if !(c.FalsePositiveRate > 0 && c.FalsePositiveRate < 1) {
		return fmt.Errorf("%w: falsePositiveRate %g not in (0, 1)", ErrInvalidConfig, c.FalsePositiveRate)
	}
	if c.MaxItems == 0 {
		return fmt.Errorf("%w: maxItems must be positive", ErrInvalidConfig)
	}
	if _, err := filter.LookupHash(c.Hash); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !slices.Contains(Generators(), c.Generator) {
		return fmt.Errorf("%w: unknown generator %q", ErrInvalidConfig, c.Generator)
	}
	if c.Generator == GeneratorRandom && c.ItemLength <= 0 {
		return fmt.Errorf("%w: itemLength must be positive", ErrInvalidConfig)
	}
	return nil
}
