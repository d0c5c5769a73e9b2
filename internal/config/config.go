package config

import (
	"os"
	"strconv"
)

// Config holds the tooling configuration
// Note: the engine itself is pure and takes no configuration; these knobs
// belong to the theorycheck binary.
type Config struct {
	// Environment
	Environment string

	// Observability
	SentryDSN string // Sentry DSN for error tracking

	// Validation
	MaxFret int // playable-range ceiling theorycheck validates against
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		SentryDSN:   getEnv("SENTRY_DSN", ""),
		MaxFret:     getEnvInt("MAX_FRET", 15),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
