// Package config handles loading and parsing application configuration.
//
// The config file path comes from, in priority order:
//  1. the --config flag of the CLI
//  2. the CONFIG_PATH environment variable
//
// Every field can also be overridden by its env:"..." variable. A .env
// file in the working directory, if present, is loaded into the process
// environment first so local overrides don't need to be exported.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// ErrNoPath is returned when neither the flag nor CONFIG_PATH is set.
var ErrNoPath = errors.New("config path is not set: use --config flag or CONFIG_PATH env var")

// Config is the root configuration structure.
//
// env-required:"true" means the app refuses to start if that value is
// missing. Better to fail at boot than to silently use a wrong default.
type Config struct {
	// Env controls log format and verbosity: "dev", "staging" or "prod".
	Env string `yaml:"env" env:"ENV" env-required:"true"`

	// StoragePath is the filesystem path to the SQLite .db file.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`

	// SeedPath optionally points at a manifest CSV. When set and the
	// database is empty, `serve` imports it before accepting requests.
	SeedPath string `yaml:"seed_path" env:"SEED_PATH"`

	HTTPServer `yaml:"http_server"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	Addr            string        `yaml:"address" env:"HTTP_SERVER_ADDR" env-required:"true"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Load resolves the config path (explicit path first, then CONFIG_PATH),
// reads the YAML file and applies environment overrides.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		return nil, ErrNoPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return &cfg, nil
}

// MustLoad is Load for callers that cannot continue without a config.
// It panics instead of returning an error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}
