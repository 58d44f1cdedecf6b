// Package config loads the environment-supplied runtime configuration:
// the bind address and the two matching thresholds. Values are read
// directly with os.LookupEnv and validated eagerly, with defaults applied
// inline for anything unset.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the process-wide configuration, fixed at startup.
type Config struct {
	BindAddress         string
	HammingThreshold    int
	DuplicateSimilarity float64
}

// Defaults returns the configuration used when no environment overrides
// are set.
func Defaults() Config {
	return Config{
		BindAddress:         "0.0.0.0:8080",
		HammingThreshold:    10,
		DuplicateSimilarity: 90.0,
	}
}

// Load reads BIND_ADDRESS, HAMMING_THRESHOLD, and DUPLICATE_SIMILARITY from
// the environment, falling back to Defaults() for anything unset. A value
// that is set but fails to parse is a configuration error.
func Load() (Config, error) {
	cfg := Defaults()

	if v, ok := os.LookupEnv("BIND_ADDRESS"); ok && v != "" {
		cfg.BindAddress = v
	}

	if v, ok := os.LookupEnv("HAMMING_THRESHOLD"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid HAMMING_THRESHOLD %q: %w", v, err)
		}
		if n < 0 {
			return Config{}, fmt.Errorf("config: HAMMING_THRESHOLD must be >= 0, got %d", n)
		}
		cfg.HammingThreshold = n
	}

	if v, ok := os.LookupEnv("DUPLICATE_SIMILARITY"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid DUPLICATE_SIMILARITY %q: %w", v, err)
		}
		if f < 0 || f > 100 {
			return Config{}, fmt.Errorf("config: DUPLICATE_SIMILARITY must be in [0, 100], got %v", f)
		}
		cfg.DuplicateSimilarity = f
	}

	return cfg, nil
}
