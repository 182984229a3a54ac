package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient returns a redis client, or nil when no address is
// configured. Callers treat a nil client as "locking disabled".
func NewRedisClient(cfg *Config) *redis.Client {
	if cfg == nil || cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}

// RunLock is an advisory lock over redis. It keeps multiple worker replicas
// from executing the same scheduled run; correctness does not depend on it
// because the refresh itself is idempotent.
type RunLock struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRunLock(client *redis.Client, key string, ttl time.Duration) *RunLock {
	return &RunLock{client: client, key: key, ttl: ttl}
}

// Acquire claims the lock for runID. With no redis configured it always
// succeeds so single-instance deployments need no extra moving parts.
func (l *RunLock) Acquire(ctx context.Context, runID string) (bool, error) {
	if l == nil || l.client == nil {
		return true, nil
	}
	return l.client.SetNX(ctx, l.key+":"+runID, "1", l.ttl).Result()
}
