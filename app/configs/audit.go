package config

import (
	"encoding/json"
	"os"
)

// Read-only inspection helpers. Unlike the Manager they never write the
// config back to disk, so tools can look at a file without touching it.

// DefaultConfig returns the built-in defaults after normalization.
func DefaultConfig() Config {
	cfg := defaultConfig()
	applyDefaults(&cfg)
	return cfg
}

// NormalizeConfig returns a copy of cfg with defaults filled in and
// invalid values clamped, leaving the input untouched.
func NormalizeConfig(cfg Config) Config {
	normalized := cfg
	applyDefaults(&normalized)
	return normalized
}

// LoadConfigFile reads path and normalizes the result. The file itself
// is left exactly as found.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}
