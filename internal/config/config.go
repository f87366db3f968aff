package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Upstream   UpstreamConfig   `yaml:"upstream"`
	Storefront StorefrontConfig `yaml:"storefront"`
	Logger     LoggerConfig     `yaml:"logger"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// UpstreamConfig holds the connection to the remote MosFood order API.
type UpstreamConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`

	// APIKey optionally pre-seeds the key store; customers can always
	// set a key at runtime through the storefront.
	APIKey string `yaml:"api_key"`
}

// StorefrontConfig tunes order composition.
type StorefrontConfig struct {
	DeliveryFee int `yaml:"delivery_fee"`
	OrderLimit  int `yaml:"order_limit"`
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// Load builds the configuration in three layers: defaults, then an
// optional YAML file, then environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Upstream: UpstreamConfig{
			BaseURL:        "https://edu.std-900.ist.mospolytech.ru",
			TimeoutSeconds: 15,
		},
		Storefront: StorefrontConfig{
			DeliveryFee: 50,
			OrderLimit:  10,
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Server.Host = getEnv("SERVER_HOST", cfg.Server.Host)
	cfg.Server.Port = getEnvAsInt("SERVER_PORT", cfg.Server.Port)
	cfg.Upstream.BaseURL = getEnv("UPSTREAM_BASE_URL", cfg.Upstream.BaseURL)
	cfg.Upstream.TimeoutSeconds = getEnvAsInt("UPSTREAM_TIMEOUT", cfg.Upstream.TimeoutSeconds)
	cfg.Upstream.APIKey = getEnv("UPSTREAM_API_KEY", cfg.Upstream.APIKey)
	cfg.Storefront.DeliveryFee = getEnvAsInt("DELIVERY_FEE", cfg.Storefront.DeliveryFee)
	cfg.Storefront.OrderLimit = getEnvAsInt("ORDER_LIMIT", cfg.Storefront.OrderLimit)
	cfg.Logger.Level = getEnv("LOG_LEVEL", cfg.Logger.Level)
	cfg.Logger.Format = getEnv("LOG_FORMAT", cfg.Logger.Format)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream base URL is required")
	}

	if u, err := url.Parse(c.Upstream.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid upstream base URL: %s", c.Upstream.BaseURL)
	}

	if c.Upstream.TimeoutSeconds < 1 {
		return fmt.Errorf("upstream timeout must be at least 1 second")
	}

	if c.Storefront.DeliveryFee < 0 {
		return fmt.Errorf("delivery fee cannot be negative")
	}

	if c.Storefront.OrderLimit < 1 {
		return fmt.Errorf("order limit must be at least 1")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
