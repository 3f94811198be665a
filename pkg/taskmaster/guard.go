package taskmaster

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

const defaultReservationTTL = 7 * 24 * time.Hour

// ErrNonceReserved is returned when a nonce was already issued to the same
// participant for the same kind of request.
var ErrNonceReserved = errors.New("nonce already issued")

// Guard makes sure the task master never signs twice under one nonce.
type Guard interface {
	Reserve(ctx context.Context, kind Kind, participant ethcommon.Address, nonce *big.Int) error
}

// SetNXer is the slice of a redis client the guard needs.
type SetNXer interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// Reservation is stored as the value of a reserved nonce key.
type Reservation struct {
	Kind        string `msgpack:"kind"`
	Participant string `msgpack:"participant"`
	Nonce       string `msgpack:"nonce"`
	IssuedAt    int64  `msgpack:"issued_at"`
}

// RedisGuard reserves nonces with SETNX so that every replica of the task
// master shares one view of issued nonces.
type RedisGuard struct {
	client SetNXer
	ttl    time.Duration
	now    func() time.Time
}

func NewRedisGuard(client SetNXer, ttl time.Duration) *RedisGuard {
	if ttl <= 0 {
		ttl = defaultReservationTTL
	}
	return &RedisGuard{client: client, ttl: ttl, now: time.Now}
}

func reservationKey(kind Kind, participant ethcommon.Address, nonce *big.Int) string {
	return fmt.Sprintf("taskmaster:nonce:%s:%s:%s", kind, participant.Hex(), nonce.Text(16))
}

func (g *RedisGuard) Reserve(ctx context.Context, kind Kind, participant ethcommon.Address, nonce *big.Int) error {
	value, err := msgpack.Marshal(&Reservation{
		Kind:        string(kind),
		Participant: participant.Hex(),
		Nonce:       nonce.String(),
		IssuedAt:    g.now().Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode reservation: %w", err)
	}
	ok, err := g.client.SetNX(ctx, reservationKey(kind, participant, nonce), value, g.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve nonce in redis: %w", err)
	}
	if !ok {
		return ErrNonceReserved
	}
	return nil
}

// MemoryGuard is a process local Guard.
type MemoryGuard struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{seen: make(map[string]struct{})}
}

func (g *MemoryGuard) Reserve(_ context.Context, kind Kind, participant ethcommon.Address, nonce *big.Int) error {
	key := reservationKey(kind, participant, nonce)
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.seen[key]; ok {
		return ErrNonceReserved
	}
	g.seen[key] = struct{}{}
	return nil
}
