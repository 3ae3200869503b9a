// Package config loads host configuration for inference runs from the
// environment, optionally seeded from a .env file.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"coltype/internal/errors"
)

// Config represents the complete inference configuration
type Config struct {
	Infer InferConfig
	Log   LogConfig
}

// InferConfig holds inference pass settings
type InferConfig struct {
	// SampleSize bounds each type's retained sample. Zero keeps the
	// package default; negative removes the bound.
	SampleSize int
	// Limit caps tokens per series (or rows per matrix). Zero or negative
	// means unbounded.
	Limit int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is applied first when present; its absence is not an
// error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}

	inferConfig, err := loadInferConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load inference configuration")
	}
	config.Infer = *inferConfig

	config.Log = LogConfig{
		Level: getEnv("LOG_LEVEL", "INFO"),
	}

	return config, nil
}

func loadInferConfig() (*InferConfig, error) {
	sampleSize, err := getEnvInt("COLTYPE_SAMPLE_SIZE", 0)
	if err != nil {
		return nil, err
	}
	limit, err := getEnvInt("COLTYPE_LIMIT", 0)
	if err != nil {
		return nil, err
	}
	return &InferConfig{
		SampleSize: sampleSize,
		Limit:      limit,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer, got " + v)
	}
	return n, nil
}
