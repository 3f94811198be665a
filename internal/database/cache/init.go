package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stumble/dcache"
)

// Caches bundles the redis connection with the two caches built on it.
type Caches struct {
	Redis  redis.UniversalClient
	DCache *dcache.DCache
	Chain  *Client
}

func InitCache(ctx context.Context, appName string) (*Caches, error) {
	conn, err := NewRedisClient(ctx, "redis")
	if err != nil {
		return nil, err
	}
	dCache, err := NewDCache(ctx, appName, "dcache", conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create dcache: %w", err)
	}
	return &Caches{
		Redis:  conn,
		DCache: dCache,
		Chain:  NewCache(conn, time.Second, 3*time.Second),
	}, nil
}
