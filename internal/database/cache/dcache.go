package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/stumble/dcache"
)

type DCacheConfig struct {
	ReadInterval   time.Duration `default:"500ms"`
	EnableStats    bool          `default:"true"`
	EnableTrace    bool          `default:"true"`
	InMemCacheSize int           `default:"52428800"` // bytes, 50MB
}

// NewDCache layers an in-process freecache over redis for record lookups.
func NewDCache(ctx context.Context, appName, envPrefix string, conn redis.UniversalClient) (*dcache.DCache, error) {
	c := DCacheConfig{}
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return nil, fmt.Errorf("failed to load dcache config: %w", err)
	}
	if c.InMemCacheSize <= 0 {
		return nil, fmt.Errorf("dcache in-memory size must be positive, got %d", c.InMemCacheSize)
	}
	log.Ctx(ctx).Info().
		Str("app", appName).
		Dur("read_interval", c.ReadInterval).
		Int("mem_bytes", c.InMemCacheSize).
		Msg("[Cache] dcache ready")
	return dcache.NewDCache(
		appName,
		conn,
		freecache.NewCache(c.InMemCacheSize),
		c.ReadInterval,
		c.EnableStats,
		c.EnableTrace)
}
