package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbellini/viaggio/backend/internal/config"
)

// setRequired sets the two required variables so tests can focus on the rest.
func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/viaggio")
	t.Setenv("GENAI_API_KEY", "test-key")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.GenAIBaseURL)
	assert.Equal(t, "gemini-2.0-flash", cfg.GenAIModel)
	assert.Equal(t, 60*time.Second, cfg.GenAITimeout)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 5, cfg.GenerateRPM)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://viaggio.example, https://app.example")
	t.Setenv("GENAI_TIMEOUT", "90s")
	t.Setenv("GENERATE_RPM", "30")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://viaggio.example", "https://app.example"}, cfg.CORSOrigins)
	assert.Equal(t, 90*time.Second, cfg.GenAITimeout)
	assert.Equal(t, 30, cfg.GenerateRPM)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoad_MissingRequiredVariables(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GENAI_API_KEY", "")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
	assert.Contains(t, err.Error(), "GENAI_API_KEY")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	setRequired(t)
	t.Setenv("GENAI_TIMEOUT", "presto")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GENAI_TIMEOUT")
}

func TestLoad_InvalidGenerateRPM(t *testing.T) {
	setRequired(t)
	t.Setenv("GENERATE_RPM", "0")

	_, err := config.Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GENERATE_RPM")
}
