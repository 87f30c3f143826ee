package redis

import (
	"ad-strategy/internal/config/configs"
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
)

// NewClient connects to Redis and verifies the connection with a ping.
// The caller must close the returned client.
func NewClient(ctx context.Context, cfg configs.Redis) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, eris.Wrapf(err, "redis: ping %s", cfg.Addr)
	}
	return client, nil
}
