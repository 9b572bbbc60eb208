package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"cafeapi/internal/pkg/validator"
)

const DefaultAPIKey = "TopSecretAPIKey"

type Config struct {
	AppEnv             string   `env:"APP_ENV" envDefault:"dev"`
	DatabaseURL        string   `env:"DATABASE_URL" envDefault:"cafes.db" validate:"required"`
	HTTPAddr           string   `env:"HTTP_ADDR" envDefault:":5000" validate:"required"`
	APIKey             string   `env:"CAFE_API_KEY" envDefault:"TopSecretAPIKey" validate:"required"`
	StrictBooleans     bool     `env:"CAFE_STRICT_BOOLEANS" envDefault:"false"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	GinMode            string   `env:"GIN_MODE" envDefault:"debug" validate:"oneof=debug release test"`
}

// Load reads the configuration from the environment. Outside production a
// .env file in the working directory is loaded first; it never overrides
// variables that are already set.
func Load() (*Config, error) {
	if !IsProdLike(os.Getenv("APP_ENV")) {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	for i, o := range cfg.CORSAllowedOrigins {
		cfg.CORSAllowedOrigins[i] = strings.TrimSpace(o)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config: env=%s addr=%s gin_mode=%s strict_booleans=%t cors_extra=%d",
		cfg.AppEnv, cfg.HTTPAddr, cfg.GinMode, cfg.StrictBooleans, len(cfg.CORSAllowedOrigins))

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if err := validator.Struct(cfg); err != nil {
		return err
	}
	if IsProdLike(cfg.AppEnv) && cfg.APIKey == DefaultAPIKey {
		return fmt.Errorf("in prod/release CAFE_API_KEY must be set and not default")
	}
	return nil
}

func IsProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}
