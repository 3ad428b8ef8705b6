package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "STAFF_RECORDS_CONFIG"

// Config represents the application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Console ConsoleConfig `yaml:"console"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level"`       // debug, info, warn, error
	Format     string `yaml:"format"`      // json, console
	OutputPath string `yaml:"output_path"` // stderr or file path
}

// ConsoleConfig contains console formatting settings
type ConsoleConfig struct {
	FloatPrecision int `yaml:"float_precision"` // significant digits
}

// Load reads and parses the configuration file.
// Values missing from the file keep their defaults.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadOptional loads configPath when it is set and exists, otherwise defaults
func LoadOptional(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}
	cfg, err := Load(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("invalid logging level: %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging format: %q", c.Logging.Format)
	}

	if c.Logging.OutputPath == "" {
		return fmt.Errorf("logging output path is required")
	}

	// stdout carries the console dialogue
	if c.Logging.OutputPath == "stdout" {
		return fmt.Errorf("logging output path cannot be stdout")
	}

	if c.Console.FloatPrecision < 1 || c.Console.FloatPrecision > 17 {
		return fmt.Errorf("float precision must be between 1 and 17: %d", c.Console.FloatPrecision)
	}

	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "warn",
			Format:     "console",
			OutputPath: "stderr",
		},
		Console: ConsoleConfig{
			FloatPrecision: 6,
		},
	}
}
