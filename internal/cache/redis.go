package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore backs the cache with a Redis instance so repeated analyses of
// the same inputs can be served across processes.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisStore connects to the Redis instance at addr.
func NewRedisStore(addr string) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisStore{
		client: rdb,
		ctx:    context.Background(),
	}
}

// Get returns the value for key; any backend error reads as a miss.
func (r *RedisStore) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores value under key without expiry; entries are input-addressed and
// never go stale.
func (r *RedisStore) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}
