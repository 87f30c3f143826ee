package redis

import (
	"ad-strategy/internal/core/port"
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
)

// StrategyCache implements port.StrategyCache on Redis. Entries are JSON
// encoded responses stored with a fixed TTL.
type StrategyCache struct {
	client goredis.Cmdable
	ttl    time.Duration
}

// NewStrategyCache returns a cache writing entries that expire after ttl.
func NewStrategyCache(client goredis.Cmdable, ttl time.Duration) *StrategyCache {
	return &StrategyCache{client: client, ttl: ttl}
}

// Get returns the cached response for key. A missing key is not an error.
func (c *StrategyCache) Get(ctx context.Context, key string) (*port.GenerateResponse, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, eris.Wrapf(err, "redis: get %s", key)
	}

	var resp port.GenerateResponse
	if err = json.Unmarshal(raw, &resp); err != nil {
		return nil, false, eris.Wrapf(err, "redis: decode %s", key)
	}
	return &resp, true, nil
}

// Set stores resp under key.
func (c *StrategyCache) Set(ctx context.Context, key string, resp port.GenerateResponse) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return eris.Wrap(err, "redis: encode response")
	}
	if err = c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return eris.Wrapf(err, "redis: set %s", key)
	}
	return nil
}
