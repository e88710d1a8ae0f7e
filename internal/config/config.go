// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// GenAIAPIKey authenticates calls to the external generative model. Required.
	GenAIAPIKey string

	// GenAIBaseURL is the root endpoint of the generative model API.
	GenAIBaseURL string

	// GenAIModel names the model used for itinerary generation.
	GenAIModel string

	// GenAITimeout bounds a single model call. Defaults to 60s.
	GenAITimeout time.Duration

	// RedisURL enables the generation response cache when set. Optional.
	RedisURL string

	// GenerateRPM is the per-client rate limit, in requests per minute, for
	// the activity-generation endpoint. Defaults to 5.
	GenerateRPM int
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set; a missing
// GENAI_API_KEY is a configuration error surfaced here, before any request is
// accepted.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		GenAIBaseURL: getEnv("GENAI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GenAIModel:   getEnv("GENAI_MODEL", "gemini-2.0-flash"),
		GenAITimeout: 60 * time.Second,
		RedisURL:     os.Getenv("REDIS_URL"),
		GenerateRPM:  5,
	}

	if v := os.Getenv("GENAI_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid GENAI_TIMEOUT %q: %w", v, err)
		}
		cfg.GenAITimeout = d
	}

	if v := os.Getenv("GENERATE_RPM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid GENERATE_RPM %q", v)
		}
		cfg.GenerateRPM = n
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	cfg.GenAIAPIKey = os.Getenv("GENAI_API_KEY")
	if cfg.GenAIAPIKey == "" {
		missing = append(missing, "GENAI_API_KEY")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
