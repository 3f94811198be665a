package wpgx

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stumble/wpgx"
)

// ConfigOption overrides a field of the env-derived pool config.
type ConfigOption func(c *wpgx.Config)

func WithBeforeAcquire(f func(context.Context, *pgx.Conn) bool) ConfigOption {
	return func(c *wpgx.Config) {
		c.BeforeAcquire = f
	}
}

// WithLiveConnsOnly drops pooled connections that were closed underneath the pool.
func WithLiveConnsOnly() ConfigOption {
	return WithBeforeAcquire(func(_ context.Context, conn *pgx.Conn) bool {
		return !conn.IsClosed()
	})
}

// WithAppName tags connections so they can be told apart in pg_stat_activity.
func WithAppName(name string) ConfigOption {
	return func(c *wpgx.Config) {
		if name != "" {
			c.AppName = name
		}
	}
}
