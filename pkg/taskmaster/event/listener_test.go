package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/canvassing/pax-rewards/pkg/common/contracts/ethereum"
	"github.com/canvassing/pax-rewards/pkg/repos/records"
)

var participant = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

// MockChainClient forwards events pushed on events to the subscriber.
type MockChainClient struct {
	mu         sync.Mutex
	events     chan *ethereum.SignatureUsedEvent
	watchErr   error
	failFirst  int
	watchCalls int
	startBlock uint64
}

func NewMockChainClient() *MockChainClient {
	return &MockChainClient{events: make(chan *ethereum.SignatureUsedEvent)}
}

func (m *MockChainClient) WatchSignatureUsed(filterOpts *bind.FilterOpts, sink chan<- *ethereum.SignatureUsedEvent) (event.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.watchCalls++
	m.startBlock = filterOpts.Start
	if m.watchErr != nil && m.watchCalls <= m.failFirst {
		return nil, m.watchErr
	}
	return event.NewSubscription(func(quit <-chan struct{}) error {
		for {
			select {
			case e := <-m.events:
				select {
				case sink <- e:
				case <-quit:
					return nil
				}
			case <-quit:
				return nil
			}
		}
	}), nil
}

func (m *MockChainClient) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.watchCalls
}

type MockRecordsRepo struct {
	mock.Mock
}

func (m *MockRecordsRepo) MarkConfirmed(ctx context.Context, signature []byte, txnHash string, block uint64) (*records.Records, error) {
	args := m.Called(ctx, signature, txnHash, block)
	if r := args.Get(0); r != nil {
		return r.(*records.Records), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockStatusCache struct {
	mock.Mock
}

func (m *MockStatusCache) Invalidate(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func TestNewEventListenerValidation(t *testing.T) {
	ctx := context.Background()
	_, err := NewEventListener(ctx, nil)
	assert.Error(t, err)
	_, err = NewEventListener(ctx, &Config{RecordsRepo: &MockRecordsRepo{}})
	assert.Error(t, err)
	_, err = NewEventListener(ctx, &Config{MainnetClient: NewMockChainClient()})
	assert.Error(t, err)
}

func TestSignatureUsedMarksRecord(t *testing.T) {
	client := NewMockChainClient()
	repo := &MockRecordsRepo{}
	cache := &MockStatusCache{}

	txHash := common.HexToHash("0x01")
	done := make(chan struct{})
	repo.On("MarkConfirmed", mock.Anything, []byte("sig-1"), txHash.Hex(), uint64(12)).
		Return(&records.Records{ID: uuid.New(), Kind: records.KindScreening, ParticipantProxy: participant.Hex()}, nil).
		Once()
	repo.On("MarkConfirmed", mock.Anything, []byte("foreign"), mock.Anything, uint64(13)).
		Return(nil, records.ErrNotFound).
		Run(func(mock.Arguments) { close(done) }).
		Once()
	cache.On("Invalidate", mock.Anything, []string{ethereum.StatusCacheKey(participant)}).Return(nil)

	el, err := NewEventListener(context.Background(), &Config{
		MainnetClient: client,
		RecordsRepo:   repo,
		StatusCache:   cache,
		StartBlock:    7,
	})
	require.NoError(t, err)
	defer el.Stop()

	client.events <- &ethereum.SignatureUsedEvent{
		Kind:        ethereum.SignatureKindScreening,
		Participant: participant,
		Signature:   []byte("sig-1"),
		TxHash:      txHash,
		BlockNumber: 12,
	}
	client.events <- &ethereum.SignatureUsedEvent{
		Kind:        ethereum.SignatureKindClaiming,
		Participant: participant,
		Signature:   []byte("foreign"),
		TxHash:      common.HexToHash("0x02"),
		BlockNumber: 13,
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("events not handled")
	}
	repo.AssertExpectations(t)
	cache.AssertNumberOfCalls(t, "Invalidate", 2)
	assert.Equal(t, uint64(7), client.startBlock)
}

func TestSubscribeRetries(t *testing.T) {
	client := NewMockChainClient()
	client.watchErr = errors.New("rpc unavailable")
	client.failFirst = 2

	el, err := NewEventListener(context.Background(), &Config{
		MainnetClient: client,
		RecordsRepo:   &MockRecordsRepo{},
		RetryInterval: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	defer el.Stop()

	assert.Eventually(t, func() bool { return client.calls() == 3 }, 2*time.Second, 5*time.Millisecond)
}

func TestSubscribeGivesUp(t *testing.T) {
	client := NewMockChainClient()
	client.watchErr = errors.New("rpc unavailable")
	client.failFirst = 10

	el, err := NewEventListener(context.Background(), &Config{
		MainnetClient: client,
		RecordsRepo:   &MockRecordsRepo{},
		RetryInterval: 5 * time.Millisecond,
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return client.calls() == subscribeRetries }, 2*time.Second, 5*time.Millisecond)
	// Stop returns once the goroutine has given up
	el.Stop()
	assert.Equal(t, subscribeRetries, client.calls())
}
