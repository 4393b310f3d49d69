package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"

	"trial-match/internal/config/configs"
)

// Config aggregates every configuration section. Each nested struct is read
// from environment variables carrying its envPrefix.
type Config struct {
	// Env names the deployment environment (prod, dev).
	Env string `env:"ENV" envDefault:"prod"`
	// Timezone is the IANA zone whose calendar decides campaign start and
	// end dates.
	Timezone string `env:"TIMEZONE" envDefault:"Asia/Seoul"`
	// Location is Timezone resolved by Load.
	Location *time.Location `env:"-"`

	HTTP      configs.HTTP      `envPrefix:"HTTP_"`
	Log       configs.Logger    `envPrefix:"LOG_"`
	Psql      configs.Postgres  `envPrefix:"PSQL_"`
	Redis     configs.Redis     `envPrefix:"REDIS_"`
	Auth      configs.Auth      `envPrefix:"AUTH_"`
	S3        configs.S3        `envPrefix:"S3_"`
	Scheduler configs.Scheduler `envPrefix:"SCHEDULER_"`
	RateLimit configs.RateLimit `envPrefix:"RATELIMIT_"`
}

// Load reads the configuration from the environment, applying defaults for
// unset variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return cfg, fmt.Errorf("TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc
	return cfg, nil
}
