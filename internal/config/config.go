package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App          App
	HTTP         HTTP
	Probe        Probe
	Metrics      Metrics
	DataService  DataService
	Availability Availability
	Directory    Directory
}

type App struct {
	Name     string     `env:"APP_NAME" envDefault:"travel-console"`
	Version  string     `env:"APP_VERSION" envDefault:"dev"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the environment, after loading an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env is optional

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
