// Package config loads czas settings from CZAS_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/rcliao/czas"
	"github.com/rcliao/czas/internal/style"
)

// Config holds every setting the CLI reads from the environment.
type Config struct {
	// Journal database path. Empty resolves to ~/.czas/journal.db.
	DBPath string `envconfig:"DB"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// Location used by "now". "Local" is the system zone.
	Timezone string `envconfig:"TIMEZONE" default:"Local"`

	// Go time layout accepted by "say".
	Layout string `envconfig:"LAYOUT" default:"2006-01-02 15:04:05"`

	StrictYear bool   `envconfig:"STRICT_YEAR" default:"false"`
	Style      string `envconfig:"STYLE" default:"plain"`
}

// Load reads CZAS_* variables and fills derived defaults. The result is not
// validated so that command-line flags can still override it; call Validate
// once overrides are applied.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("CZAS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath()
	}
	return &cfg, nil
}

// DefaultDBPath is ~/.czas/journal.db.
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".czas", "journal.db")
}

// Validate rejects settings the CLI cannot act on.
func (c *Config) Validate() error {
	if _, err := style.Parse(c.Style); err != nil {
		return fmt.Errorf("CZAS_STYLE: %w", err)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("CZAS_LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("CZAS_TIMEZONE: %w", err)
	}
	if c.Layout == "" {
		return fmt.Errorf("CZAS_LAYOUT must not be empty")
	}
	return nil
}

// Location resolves Timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Converter builds the sentence converter described by c.
func (c *Config) Converter() czas.Converter {
	return czas.Converter{StrictYear: c.StrictYear, Layout: c.Layout}
}
