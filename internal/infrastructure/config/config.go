package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DefaultJWTSecret is the placeholder secret used when JWT_SECRET is unset.
// Known security gap kept on purpose: deployments must provide their own
// secret, but the default is part of the documented behaviour.
const DefaultJWTSecret = "sua_chave_secreta_super_segura_2024"

type Config struct {
	Port      string `env:"PORT,       default=3000"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET, default=sua_chave_secreta_super_segura_2024"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	RateLimit RateLimitConfig
	Redis     RedisConfig
}

// RateLimitConfig mirrors the per-IP limiter sitting in front of all routes.
type RateLimitConfig struct {
	Requests int           `env:"RATE_LIMIT_REQUESTS, default=100"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW,   default=15m"`
}

// RedisConfig is optional: when Addr is empty the rate limiter keeps its
// counters in process memory.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
