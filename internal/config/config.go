package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	DatabaseURL    string
	MigrationsPath string
	DefaultLocale  string
	LogLevel       slog.Level
	rawLogLevel    string
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the environment already provides the values (Docker, CI...).
	}

	cfg := &Config{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		DefaultLocale:  os.Getenv("DEFAULT_LOCALE"),
		rawLogLevel:    os.Getenv("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies defaults and checks every value.
func (c *Config) validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		c.DatabaseURL = "postgres://localhost:5432/localmeta?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL is invalid (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL is invalid (%q): missing scheme or host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}
	tag, err := language.Parse(c.DefaultLocale)
	if err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE is not a valid locale (%q): %w", c.DefaultLocale, err)
	}
	c.DefaultLocale = tag.String()

	switch strings.ToLower(strings.TrimSpace(c.rawLogLevel)) {
	case "", "info":
		c.LogLevel = slog.LevelInfo
	case "debug":
		c.LogLevel = slog.LevelDebug
	case "warn", "warning":
		c.LogLevel = slog.LevelWarn
	case "error":
		c.LogLevel = slog.LevelError
	default:
		return fmt.Errorf("config: LOG_LEVEL must be one of debug, info, warn, error (got %q)", c.rawLogLevel)
	}

	return nil
}
