// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything tunable from the environment.
type Config struct {
	Preview  uint8  // next-piece preview depth
	Seed     uint64 // randomizer seed, 0 picks a time-derived one
	DBPath   string // high-score database file
	LogLevel string // logrus level name
	Scale    int    // window pixel scale factor
}

// Load reads a .env file if present, then the process environment. Unset
// variables fall back to defaults; malformed values are an error rather
// than a silent default.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Config{
		Preview:  5,
		DBPath:   getEnv("TETRAD_DB", "data/scores.db"),
		LogLevel: getEnv("TETRAD_LOG_LEVEL", "info"),
		Scale:    2,
	}

	if v := os.Getenv("TETRAD_PREVIEW"); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return Config{}, fmt.Errorf("TETRAD_PREVIEW: %w", err)
		}
		cfg.Preview = uint8(n)
	}
	if v := os.Getenv("TETRAD_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("TETRAD_SEED: %w", err)
		}
		cfg.Seed = n
	}
	if v := os.Getenv("TETRAD_SCALE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("TETRAD_SCALE: %w", err)
		}
		if n < 1 {
			return Config{}, fmt.Errorf("TETRAD_SCALE: must be at least 1, got %d", n)
		}
		cfg.Scale = n
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
