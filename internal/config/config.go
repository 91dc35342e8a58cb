// Package config loads the service configuration. Order: defaults ->
// config.yml -> config.local.yml -> environment overrides -> validate.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full service configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host             string        `yaml:"host"`
	HTTPPort         int           `yaml:"http_port"`
	HTTPReadTimeout  time.Duration `yaml:"http_read_timeout"`
	HTTPWriteTimeout time.Duration `yaml:"http_write_timeout"`
	HTTPIdleTimeout  time.Duration `yaml:"http_idle_timeout"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`
}

// StorageConfig configures the MongoDB connection.
type StorageConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// AuthConfig configures access token verification. The secret is shared
// with the main backend that issues the tokens.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
	Issuer    string `yaml:"issuer"`
}

// DefaultConfig returns safe defaults for development.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "localhost",
			HTTPPort:         8081,
			HTTPReadTimeout:  10 * time.Second,
			HTTPWriteTimeout: 30 * time.Second,
			HTTPIdleTimeout:  60 * time.Second,
			ShutdownTimeout:  10 * time.Second,
		},
		Storage: StorageConfig{
			URI:      "mongodb://localhost:27017",
			Database: "talenthub",
		},
		Auth: AuthConfig{
			Issuer: "talenthub",
		},
		Logging: DefaultLoggingConfig(),
	}
}

// Load builds the configuration from the given directory.
func Load(dir string) (*Config, error) {
	cfg := DefaultConfig()

	loadFile(filepath.Join(dir, "config.yml"), cfg)
	loadFile(filepath.Join(dir, "config.local.yml"), cfg)

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

func loadFile(filename string, cfg *Config) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Failed to read config file", "file", filename, "error", err)
		}
		return
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Warn("Failed to parse config file", "file", filename, "error", err)
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TALENTHUB_HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.HTTPPort = port
		}
	}
	if v := os.Getenv("TALENTHUB_MONGO_URI"); v != "" {
		c.Storage.URI = v
	}
	if v := os.Getenv("TALENTHUB_MONGO_DB"); v != "" {
		c.Storage.Database = v
	}
	if v := os.Getenv("TALENTHUB_JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("TALENTHUB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate returns an error if the configuration is unusable.
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid http_port %d", c.Server.HTTPPort)
	}
	if c.Storage.URI == "" {
		return errors.New("storage.uri is required")
	}
	if c.Storage.Database == "" {
		return errors.New("storage.database is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required (set TALENTHUB_JWT_SECRET)")
	}
	return nil
}
