// Package cache holds the TTL page cache for the global index feed.
//
// The cache is deliberately NOT invalidated when posts change: reads within
// the TTL window serve the stale page, and writes never pay an invalidation
// cost. Freshness is bounded by the TTL alone (or an explicit Clear).
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/microblog/pkg/logger"
)

const indexKeyPrefix = "feed:index:"

// PageCache memoizes rendered index pages in redis, keyed by page number.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = 20 * time.Second
	}
	return &PageCache{client: client, ttl: ttl}
}

func (c *PageCache) TTL() time.Duration { return c.ttl }

// Get returns the cached payload for a page, or ok=false on a miss. Cache
// errors count as misses: the store is the source of truth either way.
func (c *PageCache) Get(ctx context.Context, page int) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.key(page)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("page cache get failed", zap.Int("page", page), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (c *PageCache) Set(ctx context.Context, page int, payload []byte) {
	if err := c.client.Set(ctx, c.key(page), payload, c.ttl).Err(); err != nil {
		logger.Warn("page cache set failed", zap.Int("page", page), zap.Error(err))
	}
}

// Clear drops every cached index page. Scans by prefix rather than flushing
// so the redis database can be shared.
func (c *PageCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, indexKeyPrefix+"*", 0).Iterator()
	pipe := c.client.Pipeline()
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (c *PageCache) key(page int) string {
	return fmt.Sprintf("%s%d", indexKeyPrefix, page)
}
