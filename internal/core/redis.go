// AngelaMos | 2026
// redis.go

package core

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/travel-marketplace/internal/config"
)

const redisPingTimeout = 5 * time.Second

// Redis is optional. A nil *Redis means the deployment has none, and
// every method below is safe to call on it.
type Redis struct {
	client *redis.Client
}

// NewRedis returns nil, nil when no URL is configured.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*Redis, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.ConnMaxIdleTime = 5 * time.Minute

	r := &Redis{client: redis.NewClient(opts)}
	if err := r.Ping(ctx); err != nil {
		_ = r.client.Close()
		return nil, err
	}
	return r, nil
}

// Ping satisfies the readiness checker.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil {
		return fmt.Errorf("redis not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

// Raw hands the client to the session store and rate limiter, which both
// accept nil to mean "in-process instead".
func (r *Redis) Raw() *redis.Client {
	if r == nil {
		return nil
	}
	return r.client
}

func (r *Redis) Close() error {
	if r == nil {
		return nil
	}
	return r.client.Close()
}
