package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type RedisMenuCache struct {
	Client *redis.Client
}

func NewRedisMenuCache(client *redis.Client) *RedisMenuCache {
	return &RedisMenuCache{Client: client}
}

// Invalidate removes the snapshot recommend-svc keeps under menu:<ref>.
func (c *RedisMenuCache) Invalidate(ctx context.Context, restaurantRef string) error {
	return c.Client.Del(ctx, "menu:"+restaurantRef).Err()
}
