package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"growth-agent/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package
// for default values. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP     configs.HTTP     `envPrefix:"HTTP_"`
	Log      configs.Logger   `envPrefix:"LOG_"`
	Psql     configs.Postgres `envPrefix:"PSQL_"`
	Redis    configs.Redis    `envPrefix:"REDIS_"`
	LLM      configs.LLM      `envPrefix:"LLM_"`
	Auth     configs.Auth     `envPrefix:"AUTH_"`
	FreeTier configs.FreeTier `envPrefix:"FREE_TIER_"`

	// CatalogPath optionally points at a YAML file replacing the embedded
	// content catalog.
	CatalogPath string `env:"CATALOG_PATH"`
}

// Load reads a .env file from the working directory when present, then
// parses environment variables into a Config. Variables already set in the
// environment take precedence over the file.
func Load() (Config, error) {
	var cfg Config
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return cfg, err
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
