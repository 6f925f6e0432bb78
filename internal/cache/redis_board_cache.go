package cache

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

type RedisBoardCache struct {
	client rueidis.Client
	key    string
	ttl    time.Duration
}

func NewRedisBoardCache(client rueidis.Client, key string, ttl time.Duration) *RedisBoardCache {
	return &RedisBoardCache{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (c *RedisBoardCache) Get(ctx context.Context) ([]byte, error) {
	cmd := c.client.B().Get().Key(c.key).Build()
	result := c.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	return result.AsBytes()
}

func (c *RedisBoardCache) Set(ctx context.Context, payload []byte) error {
	cmd := c.client.B().Set().Key(c.key).Value(string(payload)).Ex(c.ttl).Build()
	return c.client.Do(ctx, cmd).Error()
}

func (c *RedisBoardCache) Invalidate(ctx context.Context) error {
	cmd := c.client.B().Del().Key(c.key).Build()
	return c.client.Do(ctx, cmd).Error()
}
