// SPDX-License-Identifier: MIT

package config

import (
	"time"

	"github.com/katalvlaran/transitcat/render"
	"github.com/katalvlaran/transitcat/router"
)

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gte=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
	AllowedOrigins  []string      `yaml:"allowed_origins" validate:"dive,required"`
}

// LoggingConfig contains logger configuration
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
}

// CacheConfig contains query cache configuration
type CacheConfig struct {
	// RouteTTL is how long a route answer is kept; 0 disables the cache.
	RouteTTL time.Duration `yaml:"route_ttl" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig    `yaml:"server"`
	Logging LoggingConfig   `yaml:"logging"`
	Cache   CacheConfig     `yaml:"cache"`
	Routing router.Settings `yaml:"routing_settings"`
	Render  render.Settings `yaml:"render_settings"`
}
