package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// KV is the subset of go-redis commands Redis needs. Both *redis.Client and
// *redis.Conn satisfy it.
type KV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Redis is a string cache backed by Redis.
type Redis struct {
	kv  KV
	ttl time.Duration
}

// NewRedis creates a cache over kv. A zero ttl stores values without expiry.
func NewRedis(kv KV, ttl time.Duration) *Redis {
	return &Redis{kv: kv, ttl: ttl}
}

// Get returns the value for key; a missing key is not an error.
func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.kv.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores value under key with the configured TTL.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	return r.kv.Set(ctx, key, value, r.ttl).Err()
}
