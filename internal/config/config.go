package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Token          string
	Environment    string
	DefaultLocale  string
	DatabaseURL    string
	MigrationsPath string
	MetricsAddr    string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment itself
	// (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{
		Token:          os.Getenv("TOKEN"),
		Environment:    os.Getenv("ENVIRONMENT"),
		DefaultLocale:  os.Getenv("DEFAULT_LOCALE"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		MetricsAddr:    os.Getenv("METRICS_ADDR"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all the rules on the loaded configuration and fills in
// defaults.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}

	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment != "development" && c.Environment != "production" {
		return fmt.Errorf("config: ENVIRONMENT must be development or production, got %q", c.Environment)
	}

	if c.DefaultLocale == "" {
		c.DefaultLocale = "en"
	}

	if c.MigrationsPath == "" {
		c.MigrationsPath = "migrations"
	}

	// DATABASE_URL is optional: without it the role-action journal is
	// disabled and the bot runs stateless.
	if c.DatabaseURL != "" {
		parsed, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
		}
	}

	if c.MetricsAddr != "" && !strings.Contains(c.MetricsAddr, ":") {
		return fmt.Errorf("config: METRICS_ADDR must be a listen address like :9090, got %q", c.MetricsAddr)
	}

	return nil
}
