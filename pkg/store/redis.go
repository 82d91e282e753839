package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisTimeout = 2 * time.Second

// RedisSlot keeps the document in a Redis string under prefix+key.
type RedisSlot struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

// NewRedisSlot wraps client. Each call is bounded by a short timeout since
// the slot API has no context.
func NewRedisSlot(client *redis.Client, prefix string) *RedisSlot {
	if client == nil {
		panic("store.NewRedisSlot: client is nil")
	}
	return &RedisSlot{client: client, prefix: prefix, timeout: defaultRedisTimeout}
}

func (s *RedisSlot) GetItem(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *RedisSlot) SetItem(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("store: redis set %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisSlot) Close() error {
	return s.client.Close()
}
