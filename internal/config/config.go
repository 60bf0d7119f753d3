package config

import (
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env      string         `env:"ENV" envDefault:"local" validate:"oneof=local development production"`
	Log      LogConfig      `envPrefix:"LOG_"`
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Products ProductsConfig `envPrefix:"PRODUCTS_"`
	Display  DisplayConfig  `envPrefix:"DISPLAY_"`
}

type LogConfig struct {
	Level string `env:"LEVEL" envDefault:"debug"`
}

type ServerConfig struct {
	Host       string `env:"HOST" envDefault:"0.0.0.0"`
	Port       string `env:"PORT" envDefault:"8080" validate:"required,numeric"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:".*"`
}

// Addr is the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// ProductsConfig points at the upstream catalog service.
type ProductsConfig struct {
	// BaseURL is the list/create endpoint; single items live under BaseURL/{id}.
	BaseURL string        `env:"BASE_URL" envDefault:"http://127.0.0.1:8001/products" validate:"required,url"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s" validate:"gt=0"`
}

type DisplayConfig struct {
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"2s" validate:"gt=0"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
