package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"trial-match/internal/config/configs"
)

// NewRedisClient connects to cfg.Addr, a redis:// URL. It returns nil without
// error when no address is configured.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.Addr)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
