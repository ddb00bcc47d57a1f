package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("TOKEN", "bot-token")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("DEFAULT_LOCALE", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MIGRATIONS_PATH", "")
	t.Setenv("METRICS_ADDR", "")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "bot-token", cfg.Token)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoad_MissingToken(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN", "  ")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN")
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	setRequired(t)
	t.Setenv("ENVIRONMENT", "staging")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENVIRONMENT")
}

func TestLoad_DatabaseURL(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/rolesync?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/rolesync?sslmode=disable", cfg.DatabaseURL)
}

func TestLoad_InvalidDatabaseURL(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_URL", "not-a-url")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_InvalidMetricsAddr(t *testing.T) {
	setRequired(t)
	t.Setenv("METRICS_ADDR", "9090")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "METRICS_ADDR")
}
