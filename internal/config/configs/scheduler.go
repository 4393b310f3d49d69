package configs

// Scheduler configures the background job that closes expired campaigns.
type Scheduler struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// CloseExpiredSpec is a robfig/cron spec, e.g. "@every 1m" or "5 0 * * *".
	CloseExpiredSpec string `env:"CLOSE_EXPIRED_SPEC" envDefault:"@every 1m"`
}
