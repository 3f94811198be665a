package records

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stumble/dcache"
)

// WGConn is satisfied by *wpgx.WConn and *wpgx.WTx.
type WGConn interface {
	WQuery(ctx context.Context, name string, unprepared string, args ...interface{}) (pgx.Rows, error)
	WQueryRow(ctx context.Context, name string, unprepared string, args ...interface{}) pgx.Row
	WExec(ctx context.Context, name string, unprepared string, args ...interface{}) (pgconn.CommandTag, error)
}

// CacheQuerier is the read-through cache used for point lookups.
type CacheQuerier interface {
	Get(ctx context.Context, queryKey string, target any, expire time.Duration, read dcache.ReadFunc, noCache bool, noStore bool) error
	Invalidate(ctx context.Context, queryKey string) error
}

type Queries struct {
	db    WGConn
	cache CacheQuerier
}

// New returns a Queries over db. cache may be nil.
func New(db WGConn, cache CacheQuerier) *Queries {
	return &Queries{db: db, cache: cache}
}

func (q *Queries) WithTx(tx WGConn) *Queries {
	return &Queries{db: tx, cache: q.cache}
}
