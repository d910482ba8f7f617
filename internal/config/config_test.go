package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "london2025_data.json", cfg.DataSource)
	assert.Equal(t, "Europe/London", cfg.Timezone)
	assert.Equal(t, 6000, cfg.Weather.TimeoutMs)
	assert.Equal(t, 18, cfg.Map.MaxZoom)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_YAMLThenEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "londonapp.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_source: https://trip.example/london2025_data.json
weather:
  timeout_ms: 2500
map:
  max_zoom: 16
`), 0644))

	t.Setenv("LONDONAPP_WEATHER__TIMEOUT_MS", "1200")
	t.Setenv("LONDONAPP_LOG__LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://trip.example/london2025_data.json", cfg.DataSource)
	assert.Equal(t, 1200, cfg.Weather.TimeoutMs, "env wins over file")
	assert.Equal(t, 16, cfg.Map.MaxZoom)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Weather.Enabled, "untouched defaults survive")
	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", cfg.Weather.Endpoint)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("weather: [unterminated"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yml")
	original := DefaultConfig()
	original.DataSource = "other.json"
	original.Weather.Enabled = false

	require.NoError(t, original.Save(path))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, original, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"empty data source", func(c *Config) { c.DataSource = "" }, "data_source"},
		{"zero load timeout", func(c *Config) { c.LoadTimeoutMs = 0 }, "load_timeout_ms"},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, "timezone"},
		{"weather timeout", func(c *Config) { c.Weather.TimeoutMs = -1 }, "weather.timeout_ms"},
		{"tile template", func(c *Config) { c.Map.TileURL = "https://tiles.example/{z}/{x}.png" }, "{y}"},
		{"max zoom", func(c *Config) { c.Map.MaxZoom = 30 }, "max_zoom"},
		{"log level", func(c *Config) { c.Log.Level = "chatty" }, "log.level"},
		{"port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSub)
		})
	}
}

func TestValidate_DisabledWeatherSkipsWeatherChecks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weather.Enabled = false
	cfg.Weather.Endpoint = ""
	assert.NoError(t, cfg.Validate())
}

func TestNewLogger_WritesToFallback(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()

	logger, closeFn, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	defer closeFn()

	logger.Debug("hidden")
	logger.Info("shown", "k", "v")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "msg=shown") && strings.Contains(out, "k=v"), out)
}

func TestNewLogger_File(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "app.log")

	logger, closeFn, err := cfg.NewLogger(nil)
	require.NoError(t, err)
	logger.Info("to_file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to_file")
}
