package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/klauspost/compress/s2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	minSleep = 50 * time.Millisecond

	compressionThreshold = 64
	noCompression        = 0x0
	s2Compression        = 0x1
)

var (
	// ErrTimeout is returned when waiting for another reader to fill a key takes too long
	ErrTimeout = errors.New("timeout")
	// ErrCorrupted is returned for values this package did not write
	ErrCorrupted = errors.New("corrupted cache value")
)

// LoadFunc reads the value from the source of truth.
type LoadFunc = func() (interface{}, error)

// Cache is a redis backed read-through cache. Only one caller per key loads
// from the source at a time; the others wait for the stored value.
type Cache interface {
	// Get fills target (a pointer) from the cache, or from load when the key
	// is missing, storing the loaded value for ttl.
	Get(ctx context.Context, key string, target interface{}, ttl time.Duration, load LoadFunc) error
	Set(ctx context.Context, key string, val interface{}, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

type Client struct {
	conn        redis.UniversalClient
	lockTTL     time.Duration
	maxWaitTime time.Duration
}

// NewCache returns a Cache over conn. lockTTL bounds how long one loader holds
// a key; maxWaitTime bounds how long the others wait for it.
func NewCache(conn redis.UniversalClient, lockTTL, maxWaitTime time.Duration) *Client {
	return &Client{
		conn:        conn,
		lockTTL:     lockTTL,
		maxWaitTime: maxWaitTime,
	}
}

func valueKey(key string) string {
	return fmt.Sprintf("#%s#", key)
}

func lockKey(key string) string {
	return fmt.Sprintf("#%s#_lock", key)
}

func (c *Client) load(ctx context.Context, key string, ttl time.Duration, load LoadFunc, target interface{}) error {
	v, err := load()
	if err != nil {
		if e := c.conn.Del(ctx, lockKey(key)).Err(); e != nil {
			log.Ctx(ctx).Error().Err(e).Str("key", key).Msg("failed to release cache lock")
		}
		return err
	}
	bs, err := marshal(v)
	if err != nil {
		return err
	}
	if e := c.conn.Set(ctx, valueKey(key), bs, ttl).Err(); e != nil {
		log.Ctx(ctx).Error().Err(e).Str("key", key).Msg("failed to set cache")
	}
	return unmarshal(bs, target)
}

func (c *Client) Get(ctx context.Context, key string, target interface{}, ttl time.Duration, load LoadFunc) error {
	waitCtx, cancel := context.WithTimeout(ctx, c.maxWaitTime)
	defer cancel()

	for {
		res, err := c.conn.Get(ctx, valueKey(key)).Bytes()
		if err == nil {
			return unmarshal(res, target)
		}
		if !errors.Is(err, redis.Nil) {
			log.Ctx(ctx).Error().Err(err).Str("key", key).Msg("failed to get from cache")
			return c.load(ctx, key, ttl, load, target)
		}

		locked, err := c.conn.SetNX(ctx, lockKey(key), "", c.lockTTL).Result()
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("key", key).Msg("failed to take cache lock")
			return c.load(ctx, key, ttl, load, target)
		}
		if locked {
			return c.load(ctx, key, ttl, load, target)
		}

		select {
		case <-waitCtx.Done():
			return ErrTimeout
		case <-time.After(minSleep):
		}
	}
}

func (c *Client) Set(ctx context.Context, key string, val interface{}, ttl time.Duration) error {
	bs, err := marshal(val)
	if err != nil {
		return err
	}
	return c.conn.Set(ctx, valueKey(key), bs, ttl).Err()
}

func (c *Client) Invalidate(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := c.conn.Del(ctx, lockKey(key), valueKey(key)).Err(); err != nil {
			return err
		}
	}
	return nil
}

// marshal encodes value with msgpack and appends a one byte compression
// marker; payloads past the threshold are s2 compressed.
func marshal(value interface{}) ([]byte, error) {
	b, err := msgpack.Marshal(value)
	if err != nil {
		return nil, err
	}
	if len(b) < compressionThreshold {
		return append(b, noCompression), nil
	}
	return append(s2.Encode(nil, b), s2Compression), nil
}

func unmarshal(b []byte, value interface{}) error {
	if len(b) == 0 {
		return ErrCorrupted
	}
	body, marker := b[:len(b)-1], b[len(b)-1]
	switch marker {
	case noCompression:
	case s2Compression:
		decoded, err := s2.Decode(nil, body)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrCorrupted, err)
		}
		body = decoded
	default:
		return ErrCorrupted
	}
	return msgpack.Unmarshal(body, value)
}
