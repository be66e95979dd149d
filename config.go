package reactor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RuntimeConfig is the ambient configuration for the process-wide
// Runtime, unmarshaled from a declarative YAML config struct.
type RuntimeConfig struct {
	// MaxReactionIterations bounds the reaction-drain trampoline;
	// exceeding it raises a DivergenceError.
	MaxReactionIterations int `yaml:"maxReactionIterations"`
	// StrictInvariants gates whether illegal-access/not-configurable/
	// not-extensible violations raise synchronously (development) or
	// are tolerated (production).
	StrictInvariants bool `yaml:"strictInvariants"`
}

// DefaultRuntimeConfig returns the runtime's out-of-the-box
// configuration: a 100-iteration divergence bound and strict invariant
// checking.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{MaxReactionIterations: 100, StrictInvariants: true}
}

// LoadRuntimeConfig reads a YAML file into a RuntimeConfig, filling in
// defaults for any field the file doesn't set.
func LoadRuntimeConfig(path string) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reactor: reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("reactor: parsing config %q: %w", path, err)
	}
	return cfg, nil
}
