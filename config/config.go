// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"everest-finance/logging"
)

// Config is the service configuration. Every key is read from an
// EVEREST_-prefixed environment variable.
type Config struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// RedisAddr enables the Redis projection cache; empty keeps results in memory.
	RedisAddr string        `env:"REDIS_ADDR"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"10m"`

	RateLimit  int           `env:"RATE_LIMIT" envDefault:"30"`
	RateWindow time.Duration `env:"RATE_WINDOW" envDefault:"1m"`

	// TiersFile overrides the embedded service tier catalog.
	TiersFile string `env:"TIERS_FILE"`

	Log     logging.Config `envPrefix:"LOG_"`
	Advisor AdvisorConfig  `envPrefix:"ADVISOR_"`
}

type AdvisorConfig struct {
	APIKey  string        `env:"API_KEY"`
	APIURL  string        `env:"API_URL" envDefault:"https://api.openai.com/v1/chat/completions"`
	Model   string        `env:"MODEL" envDefault:"gpt-4o-mini"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

const envPrefix = "EVEREST_"

// Load reads envFile (if it exists) into the process environment, then
// parses the configuration. A missing envFile is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
