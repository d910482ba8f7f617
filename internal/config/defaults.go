package config

import (
	"github.com/alexanderramin/londonapp/internal/links"
)

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = "londonapp.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataSource:    "london2025_data.json",
		LoadTimeoutMs: 10000,
		Timezone:      "Europe/London",
		Weather: WeatherConfig{
			Enabled:   true,
			Endpoint:  "https://api.open-meteo.com/v1/forecast",
			TimeoutMs: 6000,
		},
		Map: MapConfig{
			TileURL: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
			MaxZoom: 18,
		},
		Links: LinksConfig{
			Search:    links.DefaultSearch,
			MapSearch: links.DefaultMapSearch,
		},
		Log: LogConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Port: 8080,
		},
	}
}
