package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every environment variable. Nested keys are joined
// with a double underscore: PADEZH_SERVER__ADDR sets server.addr.
const EnvPrefix = "PADEZH_"

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"addr":          "server.addr",
	"read-timeout":  "server.read_timeout",
	"write-timeout": "server.write_timeout",
	"cors-origin":   "cors.allowed_origins",
	"log-level":     "log.level",
	"log-format":    "log.format",
	"data-dir":      "data.dir",
	"cache-size":    "cache.size",
}

// RegisterFlags adds the server flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a YAML config file")
	fs.String("addr", DefaultAddr, "listen address")
	fs.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	fs.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	fs.StringSlice("cors-origin", nil, "allowed CORS origin (repeatable)")
	fs.String("log-level", DefaultLogLevel, "log level: debug, info, warn, error")
	fs.String("log-format", DefaultLogFormat, "log format: text or json")
	fs.String("data-dir", "", "directory with replacement data files")
	fs.Int("cache-size", DefaultCacheSize, "phrase cache size, 0 disables")
}

// Load reads the configuration. cfgFile may be empty; flags may be nil.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"server.addr":          DefaultAddr,
		"server.read_timeout":  DefaultReadTimeout.String(),
		"server.write_timeout": DefaultWriteTimeout.String(),
		"cors.allowed_origins": []string{"*"},
		"log.level":            DefaultLogLevel,
		"log.format":           DefaultLogFormat,
		"data.dir":             "",
		"cache.size":           DefaultCacheSize,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
