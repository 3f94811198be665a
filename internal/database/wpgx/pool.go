package wpgx

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/stumble/wpgx"
)

// NewWPGXPool builds a pool from envPrefix_* variables and pings the primary
// and every replica before returning it.
func NewWPGXPool(ctx context.Context, envPrefix string, configOpts ...ConfigOption) (*wpgx.Pool, error) {
	c := wpgx.ConfigFromEnvPrefix(envPrefix)
	for _, opt := range configOpts {
		opt(c)
	}
	logger := log.Ctx(ctx).With().
		Str("host", c.Host).
		Int("port", c.Port).
		Str("db", c.DBName).
		Str("app", c.AppName).
		Logger()
	logger.Info().Msg("[DB] connecting")

	pool, err := wpgx.NewPool(ctx, c)
	if err != nil {
		return nil, err
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("primary not reachable: %w", err)
	}
	for name, readPool := range pool.ReplicaPools() {
		if err = readPool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("replica %s not reachable: %w", name, err)
		}
		logger.Info().Str("replica", fmt.Sprint(name)).Msg("[DB] replica ready")
	}
	logger.Info().Msg("[DB] primary ready")
	return pool, nil
}
