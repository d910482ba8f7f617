package config

// Config is the top-level londonapp configuration, corresponding to londonapp.yml.
type Config struct {
	DataSource    string        `yaml:"data_source" koanf:"data_source"`
	LoadTimeoutMs int           `yaml:"load_timeout_ms" koanf:"load_timeout_ms"`
	Timezone      string        `yaml:"timezone" koanf:"timezone"`
	Weather       WeatherConfig `yaml:"weather" koanf:"weather"`
	Map           MapConfig     `yaml:"map" koanf:"map"`
	Links         LinksConfig   `yaml:"links" koanf:"links"`
	Log           LogConfig     `yaml:"log" koanf:"log"`
	Server        ServerConfig  `yaml:"server" koanf:"server"`
}

// WeatherConfig configures the forecast API client.
type WeatherConfig struct {
	Enabled   bool   `yaml:"enabled" koanf:"enabled"`
	Endpoint  string `yaml:"endpoint" koanf:"endpoint"`
	TimeoutMs int    `yaml:"timeout_ms" koanf:"timeout_ms"`
}

// MapConfig configures the tile provider and zoom limits.
type MapConfig struct {
	TileURL string `yaml:"tile_url" koanf:"tile_url"`
	MaxZoom int    `yaml:"max_zoom" koanf:"max_zoom"`
}

// LinksConfig holds the fallback search-provider base URLs.
type LinksConfig struct {
	Search    string `yaml:"search" koanf:"search"`
	MapSearch string `yaml:"map_search" koanf:"map_search"`
}

// LogConfig controls where structured logs go.
type LogConfig struct {
	File  string `yaml:"file" koanf:"file"`
	Level string `yaml:"level" koanf:"level"`
}

// ServerConfig holds settings for the document server.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
}
