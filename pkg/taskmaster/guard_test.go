package taskmaster_test

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/canvassing/pax-rewards/pkg/taskmaster"
)

// fakeRedis mimics SETNX semantics.
type fakeRedis struct {
	mu    sync.Mutex
	store map[string][]byte
	ttls  map[string]time.Duration
	err   error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string][]byte), ttls: make(map[string]time.Duration)}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, ok := f.store[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.store[key] = value.([]byte)
	f.ttls[key] = expiration
	return redis.NewBoolResult(true, nil)
}

func TestRedisGuard(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	guard := taskmaster.NewRedisGuard(client, time.Hour)

	require.NoError(t, guard.Reserve(ctx, taskmaster.KindScreening, participant, big.NewInt(42)))
	assert.ErrorIs(t, guard.Reserve(ctx, taskmaster.KindScreening, participant, big.NewInt(42)), taskmaster.ErrNonceReserved)
	assert.NoError(t, guard.Reserve(ctx, taskmaster.KindRewardClaim, participant, big.NewInt(42)))

	require.Len(t, client.store, 2)
	for key, raw := range client.store {
		assert.Equal(t, time.Hour, client.ttls[key])
		var r taskmaster.Reservation
		require.NoError(t, msgpack.Unmarshal(raw, &r))
		assert.Equal(t, participant.Hex(), r.Participant)
		assert.Equal(t, "42", r.Nonce)
		assert.NotZero(t, r.IssuedAt)
	}
}

func TestRedisGuardBackendError(t *testing.T) {
	client := newFakeRedis()
	client.err = errors.New("connection refused")
	guard := taskmaster.NewRedisGuard(client, 0)

	err := guard.Reserve(context.Background(), taskmaster.KindScreening, participant, big.NewInt(1))
	require.Error(t, err)
	assert.NotErrorIs(t, err, taskmaster.ErrNonceReserved)
}

func TestMemoryGuardConcurrent(t *testing.T) {
	guard := taskmaster.NewMemoryGuard()
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if guard.Reserve(context.Background(), taskmaster.KindScreening, participant, big.NewInt(9)) == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, success)
}
