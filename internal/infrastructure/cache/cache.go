package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"snapshare/internal/domain/dto"
	"snapshare/pkg/logger"
)

type Config struct {
	URI string
	TTL int64 `yaml:"ttl_in_ms"`
}

// ListingCache keeps listing pages in redis for a short TTL so the
// polling slideshow does not hammer the media store. Best effort: any
// redis failure is logged and treated as a miss.
type ListingCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func New(cfg *Config) (*ListingCache, error) {
	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &ListingCache{
		redis: rdb,
		ttl:   time.Duration(cfg.TTL) * time.Millisecond,
	}, nil
}

func (c *ListingCache) Get(ctx context.Context, limit int) (*dto.ListingPage, bool) {
	data, err := c.redis.Get(ctx, cacheKey(limit)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("listing cache read failed", "err", err)
		}

		return nil, false
	}

	var page dto.ListingPage
	if err := json.Unmarshal(data, &page); err != nil {
		logger.Warn("listing cache entry corrupt", "err", err)

		return nil, false
	}

	return &page, true
}

func (c *ListingCache) Set(ctx context.Context, limit int, page *dto.ListingPage) {
	data, err := json.Marshal(page)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, cacheKey(limit), data, c.ttl).Err(); err != nil {
		logger.Warn("listing cache write failed", "err", err)
	}
}

func (c *ListingCache) Close() error {
	return c.redis.Close()
}

func cacheKey(limit int) string {
	return fmt.Sprintf("snapshare:photos:%d", limit)
}
