package wpgx

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"github.com/stumble/wpgx"
)

// InitDB connects to postgres using POSTGRES_* environment variables and
// applies schemas, which must be idempotent DDL.
func InitDB(ctx context.Context, timeout time.Duration, schemas []string, configOpts ...ConfigOption) (*wpgx.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	pool, err := NewWPGXPool(ctx, "postgres", configOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection pool: %w", err)
	}
	if err := EnsureSchema(ctx, pool.WConn(), schemas...); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

type execer interface {
	WExec(ctx context.Context, name string, unprepared string, args ...interface{}) (pgconn.CommandTag, error)
}

func EnsureSchema(ctx context.Context, conn execer, schemas ...string) error {
	for i, schema := range schemas {
		if _, err := conn.WExec(ctx, "ensure_schema", schema); err != nil {
			return fmt.Errorf("failed to apply schema %d: %w", i, err)
		}
	}
	log.Ctx(ctx).Info().Int("schemas", len(schemas)).Msg("database schema ready")
	return nil
}
