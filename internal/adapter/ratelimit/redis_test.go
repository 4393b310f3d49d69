package ratelimit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// fakeScripter evaluates the limiter script against in-memory counters.
type fakeScripter struct {
	redis.Scripter
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func (f *fakeScripter) eval(ctx context.Context, keys []string, args ...any) *redis.Cmd {
	cmd := redis.NewCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[keys[0]]++
	if f.counts[keys[0]] > int64(args[1].(int)) {
		cmd.SetVal(int64(0))
	} else {
		cmd.SetVal(int64(1))
	}
	return cmd
}

func (f *fakeScripter) EvalSha(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.eval(ctx, keys, args...)
}

func (f *fakeScripter) Eval(ctx context.Context, _ string, keys []string, args ...any) *redis.Cmd {
	return f.eval(ctx, keys, args...)
}

func TestAllowWithinLimit(t *testing.T) {
	fake := &fakeScripter{counts: map[string]int64{}}
	l := NewRedisLimiter(fake, "apply:", 2, time.Minute, nil)
	ctx := context.Background()

	assert.True(t, l.Allow(ctx, "7"))
	assert.True(t, l.Allow(ctx, "7"))
	assert.False(t, l.Allow(ctx, "7"))
	assert.True(t, l.Allow(ctx, "8"))
	assert.Equal(t, int64(3), fake.counts["apply:7"])
}

func TestAllowFailsOpen(t *testing.T) {
	ctx := context.Background()

	var nilLimiter *RedisLimiter
	assert.True(t, nilLimiter.Allow(ctx, "7"))
	assert.Nil(t, NewRedisLimiter(nil, "apply:", 1, time.Minute, nil))

	broken := NewRedisLimiter(&fakeScripter{err: errors.New("connection refused")}, "apply:", 1, time.Minute, nil)
	assert.True(t, broken.Allow(ctx, "7"))

	unlimited := NewRedisLimiter(&fakeScripter{counts: map[string]int64{}}, "apply:", 0, time.Minute, nil)
	assert.True(t, unlimited.Allow(ctx, "7"))
}
