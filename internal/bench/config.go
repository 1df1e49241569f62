package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls a benchmark run. Zero values are filled in by
// Normalize so a partial YAML file or bare flags are enough.
type Config struct {
	Samples     int      `yaml:"samples"`
	Period      int      `yaml:"period"`
	Q           float64  `yaml:"q"`
	NaNFraction float64  `yaml:"nan_fraction"`
	Repeats     int      `yaml:"repeats"`
	Seed        int64    `yaml:"seed"`
	Operations  []string `yaml:"operations"`
}

// DefaultConfig mirrors the reference harness: one million samples,
// window 20, 0.1% missing values.
func DefaultConfig() *Config {
	return &Config{
		Samples:     1_000_000,
		Period:      20,
		Q:           0.5,
		NaNFraction: 0.001,
		Repeats:     5,
		Seed:        42,
		Operations:  []string{"rollmedian", "rollmean", "rollmin", "rollmax", "median", "percentiles"},
	}
}

// LoadConfig reads a YAML benchmark configuration from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bench config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse bench config YAML: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the harness cannot run.
func (c *Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("bench config: samples must be positive, got %d", c.Samples)
	}
	if c.Period <= 0 {
		return fmt.Errorf("bench config: period must be positive, got %d", c.Period)
	}
	if c.Q < 0 || c.Q > 1 {
		return fmt.Errorf("bench config: q must be in [0,1], got %v", c.Q)
	}
	if c.NaNFraction < 0 || c.NaNFraction >= 1 {
		return fmt.Errorf("bench config: nan_fraction must be in [0,1), got %v", c.NaNFraction)
	}
	if c.Repeats <= 0 {
		return fmt.Errorf("bench config: repeats must be positive, got %d", c.Repeats)
	}
	if len(c.Operations) == 0 {
		return fmt.Errorf("bench config: at least one operation is required")
	}
	return nil
}
