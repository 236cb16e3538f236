package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"trip-optimizer-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "optresult:"

// RedisResultCache stores optimization results in Redis with a server-side
// TTL, so a cache shared across instances expires entries without a sweep.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisResultCache(addr string, ttl time.Duration) (*RedisResultCache, error) {
	if addr == "" {
		return nil, errors.New("redis result cache: addr is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis result cache: connect to %q: %w", addr, err)
	}

	return &RedisResultCache{client: client, ttl: ttl}, nil
}

func (c *RedisResultCache) Get(ctx context.Context, key string) (*domain.OptimizationResult, bool, error) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis result cache: get %q: %w", key, err)
	}

	var result domain.OptimizationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		// A corrupt entry is a miss; the next Put overwrites it.
		return nil, false, nil
	}
	return &result, true, nil
}

func (c *RedisResultCache) Put(ctx context.Context, key string, result *domain.OptimizationResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("redis result cache: marshal result: %w", err)
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis result cache: set %q: %w", key, err)
	}
	return nil
}

func (c *RedisResultCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis result cache: delete %q: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis result cache: scan: %w", err)
	}
	return nil
}

func (c *RedisResultCache) Close() error {
	return c.client.Close()
}
