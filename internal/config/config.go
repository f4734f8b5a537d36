// Package config loads run configuration from YAML files and built-in
// presets.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitlab/internal/orbit"
)

// Defaults for a Sun + test-mass orbit.
const (
	DefaultM1         = 1.0
	DefaultM2         = 1e-6
	DefaultSemiMajor  = 1.0
	DefaultEcc        = 0.1
	DefaultYears      = 2.0
	DefaultDtFraction = 1e-2
	DefaultOutput     = "table.out"
)

type Config struct {
	Orbit      orbit.Elements `yaml:"orbit"`
	Years      float64        `yaml:"years"`
	DtFraction float64        `yaml:"dt_fraction"`
	Output     string         `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		Orbit: orbit.Elements{
			M1:           DefaultM1,
			M2:           DefaultM2,
			SemiMajor:    DefaultSemiMajor,
			Eccentricity: DefaultEcc,
		},
		Years:      DefaultYears,
		DtFraction: DefaultDtFraction,
		Output:     DefaultOutput,
	}
}

// Load reads a YAML config, filling unset fields from the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
