// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config represents configuration loadable from a JSON file. All fields are
// optional; missing values fall back to environment variables or defaults.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	DatabaseURL string `json:"database_url,omitempty"`

	// Analysis behavior
	MergeStrategy string `json:"merge_strategy,omitempty" validate:"omitempty,oneof=first-match merge"`
	MaxInputBytes int    `json:"max_input_bytes,omitempty" validate:"omitempty,min=1024"`

	// Output
	OutDir         string `json:"out_dir,omitempty"`
	ValidateOutput bool   `json:"validate,omitempty"` // schema-check written artifacts
	Verbose        bool   `json:"verbose,omitempty"`
}

var validate = validator.New()

// LoadConfig loads configuration from a JSON file and validates it.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// FromEnv builds a Config from environment variables alone.
func FromEnv() *Config {
	return &Config{
		Port:        getEnvInt("PORT", 0),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
