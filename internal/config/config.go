// Package config loads londonapp settings from defaults, an optional YAML
// file and LONDONAPP_* environment variables.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/londonapp/internal/links"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nesting levels: LONDONAPP_WEATHER__TIMEOUT_MS -> weather.timeout_ms.
const EnvPrefix = "LONDONAPP_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := c.YAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// YAML renders the configuration as YAML.
func (c *Config) YAML() ([]byte, error) {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

var validLogLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DataSource == "" {
		return fmt.Errorf("data_source is required")
	}
	if c.LoadTimeoutMs <= 0 {
		return fmt.Errorf("load_timeout_ms must be positive")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.Weather.Enabled {
		if c.Weather.Endpoint == "" {
			return fmt.Errorf("weather.endpoint is required when weather is enabled")
		}
		if c.Weather.TimeoutMs <= 0 {
			return fmt.Errorf("weather.timeout_ms must be positive")
		}
	}
	for _, placeholder := range []string{"{z}", "{x}", "{y}"} {
		if !strings.Contains(c.Map.TileURL, placeholder) {
			return fmt.Errorf("map.tile_url %q is missing %s", c.Map.TileURL, placeholder)
		}
	}
	if c.Map.MaxZoom < 1 || c.Map.MaxZoom > 22 {
		return fmt.Errorf("map.max_zoom must be between 1 and 22")
	}
	if _, ok := validLogLevels[strings.ToLower(c.Log.Level)]; !ok {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	return nil
}

// LoadTimeout returns the document fetch timeout.
func (c *Config) LoadTimeout() time.Duration {
	return time.Duration(c.LoadTimeoutMs) * time.Millisecond
}

// Providers returns the configured fallback link providers.
func (c *Config) Providers() links.Providers {
	return links.Providers{
		Search:    c.Links.Search,
		MapSearch: c.Links.MapSearch,
	}
}

// NewLogger builds the slog logger described by the log section. Logs go to
// log.file when set, otherwise to fallback (which may be io.Discard). The
// returned close function releases the file.
func (c *Config) NewLogger(fallback io.Writer) (*slog.Logger, func() error, error) {
	level, ok := validLogLevels[strings.ToLower(c.Log.Level)]
	if !ok {
		level = slog.LevelInfo
	}

	w := fallback
	closeFn := func() error { return nil }
	if c.Log.File != "" {
		f, err := os.OpenFile(c.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file %s: %w", c.Log.File, err)
		}
		w = f
		closeFn = f.Close
	}
	if w == nil {
		w = io.Discard
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closeFn, nil
}
