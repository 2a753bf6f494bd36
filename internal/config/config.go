package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings read from the environment.
type Config struct {
	Port     string `env:"PORT"           envDefault:"5000"`
	DBPath   string `env:"NIMBUS_DB_PATH" envDefault:"nimbus.db"`
	Timezone string `env:"NIMBUS_TIMEZONE"`

	OpenWeather OpenWeather
}

// OpenWeather configures the upstream weather API.
type OpenWeather struct {
	APIKey  string        `env:"OPENWEATHER_API_KEY"`
	BaseURL string        `env:"OPENWEATHER_BASE_URL" envDefault:"https://api.openweathermap.org/data/2.5"`
	Timeout time.Duration `env:"OPENWEATHER_TIMEOUT"  envDefault:"10s"`
	// Free tier allows 60 calls/minute.
	RPS   float64 `env:"OPENWEATHER_RPS"   envDefault:"1"`
	Burst int     `env:"OPENWEATHER_BURST" envDefault:"5"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Location resolves Timezone, the zone greetings are computed in. An empty
// value means the server's local zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid NIMBUS_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
