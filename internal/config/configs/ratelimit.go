package configs

import "time"

// RateLimit bounds how many applications one influencer may submit per window.
type RateLimit struct {
	ApplyLimit  int           `env:"APPLY_LIMIT" envDefault:"20"`
	ApplyWindow time.Duration `env:"APPLY_WINDOW" envDefault:"1m"`
}
