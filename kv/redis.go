package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore defines a public type used by soilauth APIs.
//
// RedisStore persists items as plain Redis strings under an optional key
// prefix. Items are stored without expiry.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a [RedisStore] backed by the given client. The prefix
// is prepended to every key with a ":" separator when non-empty.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

// GetItem describes the getitem operation and its observable behavior.
//
// GetItem returns [ErrNotFound] when the key is absent and wraps
// [ErrUnavailable] on transport failures.
func (s *RedisStore) GetItem(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return val, nil
}

// SetItem describes the setitem operation and its observable behavior.
//
// SetItem overwrites any existing value and wraps [ErrUnavailable] on
// transport failures.
func (s *RedisStore) SetItem(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// RemoveItem describes the removeitem operation and its observable behavior.
//
// RemoveItem is idempotent: removing an absent key is not an error.
func (s *RedisStore) RemoveItem(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
