package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Environment represents the deployment environment
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the complete scoreboard configuration
type Config struct {
	Environment Environment `json:"environment" env:"SCOREBOARD_ENV"`
	Profile     string      `json:"profile" env:"SCOREBOARD_PROFILE"`

	Logging LoggingConfig `json:"logging"`
	Board   BoardConfig   `json:"board"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string            `json:"level" env:"SCOREBOARD_LOG_LEVEL"`
	Format     string            `json:"format" env:"SCOREBOARD_LOG_FORMAT"`
	Output     string            `json:"output" env:"SCOREBOARD_LOG_OUTPUT"`
	Attributes map[string]string `json:"attributes,omitempty" env:"SCOREBOARD_LOG_ATTRIBUTES"`
}

// BoardConfig controls how the board is seeded and how events are dispatched.
type BoardConfig struct {
	// SeedFile is an optional JSON roster of {"name", "score"} records.
	SeedFile       string `json:"seed_file,omitempty" env:"SCOREBOARD_SEED_FILE"`
	DispatchMode   string `json:"dispatch_mode" env:"SCOREBOARD_DISPATCH_MODE"`
	StandingsLimit int    `json:"standings_limit" env:"SCOREBOARD_STANDINGS_LIMIT"`
}

// Load loads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validateConfigPath validates that the config file path is usable
func validateConfigPath(path string) error {
	if path == "" {
		return errors.New("config file path cannot be empty")
	}

	cleanPath := filepath.Clean(path)
	if !strings.HasSuffix(strings.ToLower(cleanPath), ".json") {
		return errors.New("config file must have .json extension")
	}

	if _, err := os.Stat(cleanPath); err != nil {
		return fmt.Errorf("config file not accessible: %w", err)
	}

	return nil
}

// LoadFromFile loads configuration from a JSON file. Environment variables
// override values read from the file.
func LoadFromFile(path string) (*Config, error) {
	if err := validateConfigPath(path); err != nil {
		return nil, fmt.Errorf("invalid config file path: %w", err)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration suited to local runs
func DefaultConfig() *Config {
	return &Config{
		Environment: EnvDevelopment,
		Profile:     "default",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
		},
		Board: BoardConfig{
			DispatchMode:   "sync",
			StandingsLimit: 10,
		},
	}
}

// Validate validates the configuration and returns every problem found
func (c *Config) Validate() error {
	var errs []string

	if c.Environment == "" {
		errs = append(errs, "environment cannot be empty")
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if err := c.Board.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("board config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

// String returns an indented JSON representation of the config
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}
