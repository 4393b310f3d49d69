package configs

// Redis configures the optional Redis connection used for rate limiting.
// An empty Addr disables Redis.
type Redis struct {
	Addr string `env:"ADDRESS"`
}
