package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
		// BaseURL is the externally visible address of this service,
		// used when building absolute redirect targets.
		BaseURL string `yaml:"base_url" env:"SERVER_BASE_URL"`
	} `yaml:"server"`

	Backend struct {
		BaseURL string `yaml:"base_url" env:"BACKEND_BASE_URL"`
		Timeout string `yaml:"timeout" env:"BACKEND_TIMEOUT"`
	} `yaml:"backend"`

	Session struct {
		Secret     string `yaml:"secret" env:"SESSION_SECRET"`
		CookieName string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		MaxAge     string `yaml:"max_age" env:"SESSION_MAX_AGE"`
		Secure     bool   `yaml:"secure" env:"SESSION_SECURE"`
	} `yaml:"session"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars can carry everything.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "3000"
	config.Server.Mode = "development"
	config.Server.BaseURL = "http://localhost:3000"

	// Backend defaults
	config.Backend.BaseURL = "http://localhost:8080/api/v1"
	config.Backend.Timeout = "15s"

	// Session defaults
	config.Session.CookieName = "lyra_session"
	config.Session.MaxAge = "720h"
	config.Session.Secure = false

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Backend.BaseURL == "" {
		return fmt.Errorf("backend base URL is required")
	}

	if config.Session.Secret == "" {
		return fmt.Errorf("session secret is required")
	}

	if _, err := time.ParseDuration(config.Backend.Timeout); err != nil {
		return fmt.Errorf("invalid backend timeout format: %w", err)
	}

	if _, err := time.ParseDuration(config.Session.MaxAge); err != nil {
		return fmt.Errorf("invalid session max age format: %w", err)
	}

	return nil
}

// BackendTimeout returns the parsed backend request timeout.
func (c *Config) BackendTimeout() time.Duration {
	d, err := time.ParseDuration(c.Backend.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// SessionMaxAge returns the parsed session cookie lifetime.
func (c *Config) SessionMaxAge() time.Duration {
	d, err := time.ParseDuration(c.Session.MaxAge)
	if err != nil {
		return 720 * time.Hour
	}
	return d
}
