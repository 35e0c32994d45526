package persistence

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const imageKeyPrefix = "route:image:"

// ImageCache is a read-through Redis cache for route finish images. All
// operations degrade to a miss/no-op when Redis is unreachable so image
// serving never depends on cache availability.
type ImageCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewImageCache builds a cache over the shared Redis client.
func NewImageCache(r *Redis, ttl time.Duration, logger *zap.Logger) *ImageCache {
	var client *redis.Client
	if r != nil {
		client = r.Client
	}
	return &ImageCache{client: client, ttl: ttl, logger: logger}
}

// Get returns cached image bytes for the route, if present.
func (c *ImageCache) Get(ctx context.Context, routeID string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, imageKeyPrefix+routeID).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("image cache get failed", zap.String("route_id", routeID), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// Set stores image bytes for the route with the configured TTL.
func (c *ImageCache) Set(ctx context.Context, routeID string, data []byte) {
	if c == nil || c.client == nil || len(data) == 0 {
		return
	}
	if err := c.client.Set(ctx, imageKeyPrefix+routeID, data, c.ttl).Err(); err != nil {
		c.logger.Warn("image cache set failed", zap.String("route_id", routeID), zap.Error(err))
	}
}

// Invalidate drops the cached image for the route.
func (c *ImageCache) Invalidate(ctx context.Context, routeID string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, imageKeyPrefix+routeID).Err(); err != nil {
		c.logger.Warn("image cache invalidate failed", zap.String("route_id", routeID), zap.Error(err))
	}
}
