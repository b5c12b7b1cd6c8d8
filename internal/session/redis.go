// AngelaMos | 2026
// redis.go

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in Redis with a TTL matching their expiry, so
// no sweep is needed. Keys hold a hash of the session id rather than the
// id itself.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) key(id string) string {
	return redisKeyPrefix + core.HashToken(id)
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Data, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	if data.Expired(time.Now()) {
		return nil, ErrNoSession
	}

	return &data, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, data Data) error {
	ttl := time.Until(data.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := s.client.Set(ctx, s.key(id), raw, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
