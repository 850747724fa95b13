package jobads

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

const redisCachePrefix = "jobad:parse:"

// RedisCache implements Cache using Redis. Entries are stored without TTL.
type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache constructs a RedisCache.
func NewRedisCache(addr, password string) *RedisCache {
	return &RedisCache{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

// Get returns the cached result for a key.
func (c *RedisCache) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	raw, err := c.Client.Get(ctx, redisCachePrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return json.RawMessage(raw), true, nil
}

// Put stores a result under a key.
func (c *RedisCache) Put(ctx context.Context, key string, result json.RawMessage) error {
	return c.Client.Set(ctx, redisCachePrefix+key, []byte(result), 0).Err()
}

var _ Cache = (*RedisCache)(nil)
