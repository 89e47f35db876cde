// Package config loads the HTTP server configuration.
//
// Values are layered, lowest priority first: built-in defaults, an optional
// YAML file, PADEZH_* environment variables and explicitly set flags.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Config is the complete server configuration.
type Config struct {
	Server ServerConfig `koanf:"server"`
	CORS   CORSConfig   `koanf:"cors"`
	Log    LogConfig    `koanf:"log"`
	Data   DataConfig   `koanf:"data"`
	Cache  CacheConfig  `koanf:"cache"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr         string        `koanf:"addr"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// LogConfig selects the log level and handler.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // text or json
}

// DataConfig points at a directory with replacement data files. Empty
// means the embedded data.
type DataConfig struct {
	Dir string `koanf:"dir"`
}

// CacheConfig sizes the phrase result cache; 0 disables it.
type CacheConfig struct {
	Size int `koanf:"size"`
}

// Defaults.
const (
	DefaultAddr         = ":8080"
	DefaultReadTimeout  = 5 * time.Second
	DefaultWriteTimeout = 10 * time.Second
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
	DefaultCacheSize    = 4096
)

// Validate checks values the loaders cannot type-check.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive, got %s", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive, got %s", c.Server.WriteTimeout)
	}
	if c.Cache.Size < 0 {
		return fmt.Errorf("cache.size must not be negative, got %d", c.Cache.Size)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}

// NewLogger builds the logger described by c, writing to w.
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
