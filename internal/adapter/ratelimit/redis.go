// Package ratelimit throttles apply requests with a fixed window counter in Redis.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const script = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter implements port.Limiter. It fails open: a nil limiter, a
// non-positive limit or a Redis error all allow the request.
type RedisLimiter struct {
	client redis.Scripter
	script *redis.Script
	limit  int
	window time.Duration
	prefix string
	logger *slog.Logger
}

// NewRedisLimiter returns nil when client is nil.
func NewRedisLimiter(client redis.Scripter, prefix string, limit int, window time.Duration, logger *slog.Logger) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(script),
		limit:  limit,
		window: window,
		prefix: prefix,
		logger: logger,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || l.limit <= 0 || l.window <= 0 {
		return true
	}
	ttl := l.window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{l.prefix + key}, ttl, l.limit).Int64()
	if err != nil {
		if l.logger != nil {
			l.logger.Warn("rate limiter unavailable", slog.Any("error", err))
		}
		return true
	}
	return allowed == 1
}
