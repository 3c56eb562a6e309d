// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/transitcat/render"
	"github.com/katalvlaran/transitcat/router"
)

// ErrInvalidConfig wraps every decoding and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Default returns the configuration used when no file is given.
func Default() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 30 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Logging: LoggingConfig{Level: "info"},
		Cache:   CacheConfig{RouteTTL: 10 * time.Minute},
		Routing: router.DefaultSettings(),
		Render:  render.DefaultSettings(),
	}
}

// Load reads and validates the YAML configuration at path.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}

	return Parse(data)
}

// Parse decodes data over Default() and validates the result.
func Parse(data []byte) (AppConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

// Validate checks every section.
func (c AppConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c.Server); err != nil {
		return fmt.Errorf("%w: server: %v", ErrInvalidConfig, err)
	}
	if err := v.Struct(c.Logging); err != nil {
		return fmt.Errorf("%w: logging: %v", ErrInvalidConfig, err)
	}
	if err := v.Struct(c.Cache); err != nil {
		return fmt.Errorf("%w: cache: %v", ErrInvalidConfig, err)
	}
	if err := c.Routing.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// SlogLevel returns the configured log level, info when unset.
func (l LoggingConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}
