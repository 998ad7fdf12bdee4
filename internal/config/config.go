package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Store   StoreConfig   `yaml:"store"`
	Server  ServerConfig  `yaml:"server"`
	View    ViewConfig    `yaml:"view"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// APIConfig points the client at the remote farm REST API.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"   env:"API_BASE_URL"   env-default:"http://localhost:8080/api"`
	Timeout   time.Duration `yaml:"timeout"    env:"API_TIMEOUT"    env-default:"15s"`
	UserAgent string        `yaml:"user_agent" env:"API_USER_AGENT" env-default:"farmdash"`
}

// StoreConfig holds the location of the persisted client state (session token).
type StoreConfig struct {
	Path string `yaml:"path" env:"STORE_PATH" env-default:"farmdash.db"`
}

// ServerConfig holds settings for the local web dashboard.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"127.0.0.1"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// ViewConfig tunes the in-memory view models.
type ViewConfig struct {
	// FlashDuration is how long a success message stays visible.
	FlashDuration time.Duration `yaml:"flash_duration" env:"VIEW_FLASH_DURATION" env-default:"3s"`
	// MaxStaleness forces a re-fetch of a mounted view older than this.
	// Zero disables automatic reconciliation.
	MaxStaleness time.Duration `yaml:"max_staleness" env:"VIEW_MAX_STALENESS" env-default:"0s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// MetricsConfig controls the Prometheus endpoint of the web dashboard.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

// Addr returns the listen address of the web dashboard.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
