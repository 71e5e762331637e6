package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Env holds settings read from the environment
type Env struct {
	LogLevel  string `env:"SECRET_LENS_LOG_LEVEL" envDefault:"WARN"`
	LogFormat string `env:"SECRET_LENS_LOG_FORMAT" envDefault:"text"`
	Kubectl   string `env:"SECRET_LENS_KUBECTL" envDefault:"kubectl"`
}

// Load reads dotenv files (a missing file is fine) and parses Env.
// With no files given, .env in the working directory is tried.
func Load(dotenvFiles ...string) (Env, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("unable to load .env: %w", err)
	}

	cfg := Env{}
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("unable to parse environment: %w", err)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Env{}, fmt.Errorf("unsupported SECRET_LENS_LOG_FORMAT %q, expected text or json", cfg.LogFormat)
	}

	return cfg, nil
}
