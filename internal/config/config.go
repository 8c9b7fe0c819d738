// Package config loads the roster configuration file and environment overrides
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/roster/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure reported by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig     `yaml:"database"`
	Log      LogConfig          `yaml:"log"`
	Theme    colors.ColorScheme `yaml:"theme"`
}

// DatabaseConfig selects the store backend
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite or postgres
	DSN    string `yaml:"dsn"`    // file path for sqlite, connection URL for postgres
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Override sets a value on top of the file and environment, before defaults
// are filled in. Command-line flags are passed this way.
type Override func(*Config)

// WithDriver overrides database.driver when driver is non-empty
func WithDriver(driver string) Override {
	return func(c *Config) {
		if driver != "" {
			c.Database.Driver = driver
		}
	}
}

// WithDSN overrides database.dsn when dsn is non-empty
func WithDSN(dsn string) Override {
	return func(c *Config) {
		if dsn != "" {
			c.Database.DSN = dsn
		}
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load(overrides ...Override) (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Can't determine a config path, defaults plus environment only
		config := &Config{}
		config.apply(overrides)
		return config, nil
	}

	return LoadFrom(configPath, overrides...)
}

// LoadFrom loads config from an explicit path.
// A missing file yields the defaults.
func LoadFrom(path string, overrides ...Override) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults below
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	config.apply(overrides)

	return &config, nil
}

// apply layers the environment, then overrides, then defaults
func (c *Config) apply(overrides []Override) {
	c.applyEnv()
	for _, o := range overrides {
		o(c)
	}
	c.applyDefaults()
}

// applyEnv overrides file values with ROSTER_* environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv("ROSTER_DB_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := os.Getenv("ROSTER_DATABASE_URL"); v != "" {
		c.Database.DSN = v
	}
	if v := os.Getenv("ROSTER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.DSN == "" && c.Database.Driver == "sqlite" {
		c.Database.DSN = filepath.Join(dataDir(), "company.db")
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(dataDir(), "logs", "roster.log")
	}
	c.Theme.ApplyDefaults()
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("%w: database.driver %q (must be: sqlite, postgres)", ErrInvalidConfig, c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("%w: database.dsn is required for %s", ErrInvalidConfig, c.Database.Driver)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Log.Level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("%w: log.level %q (must be: debug, info, warn, error)", ErrInvalidConfig, c.Log.Level)
	}
	return level, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "roster", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "roster", "config.yaml"), nil
}

// dataDir is ~/.roster, or ./.roster when no home directory is known
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".roster"
	}
	return filepath.Join(home, ".roster")
}
