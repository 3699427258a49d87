package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/bistro-service/internal/domain"
)

const menuListKey = "menu:list"

// MenuCache is a Redis cache-aside layer for the public menu listing. Cache
// misses and Redis outages degrade to the repository; they never fail a
// request.
type MenuCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewMenuCache constructs the cache.
func NewMenuCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *MenuCache {
	return &MenuCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached menu listing, if present.
func (c *MenuCache) Get(ctx context.Context) ([]domain.MenuItem, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, menuListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("menu cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		c.logger.Warn("menu cache entry corrupt; dropping", zap.Error(err))
		_ = c.client.Del(ctx, menuListKey).Err()
		return nil, false
	}
	return items, true
}

// Set stores the menu listing with the configured TTL.
func (c *MenuCache) Set(ctx context.Context, items []domain.MenuItem) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, menuListKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("menu cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached listing after a catalog mutation.
func (c *MenuCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, menuListKey).Err(); err != nil {
		c.logger.Warn("menu cache invalidation failed", zap.Error(err))
	}
}
