package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/event"
	"github.com/rs/zerolog/log"

	"github.com/canvassing/pax-rewards/pkg/common/contracts/ethereum"
	"github.com/canvassing/pax-rewards/pkg/repos/records"
)

const subscribeRetries = 3

type ChainClient interface {
	WatchSignatureUsed(filterOpts *bind.FilterOpts, sink chan<- *ethereum.SignatureUsedEvent) (event.Subscription, error)
}

type RecordsRepo interface {
	MarkConfirmed(ctx context.Context, signature []byte, txnHash string, block uint64) (*records.Records, error)
}

// StatusCache drops cached participant status once the chain changes it.
type StatusCache interface {
	Invalidate(ctx context.Context, keys ...string) error
}

type Config struct {
	MainnetClient ChainClient
	RecordsRepo   RecordsRepo
	StatusCache   StatusCache
	StartBlock    uint64
	RetryInterval time.Duration
}

type EventListenerService interface {
	Stop()
}

type eventListener struct {
	mainnetClient ChainClient
	recordsRepo   RecordsRepo
	statusCache   StatusCache
	startBlock    uint64
	retryInterval time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEventListener starts a goroutine that marks issued authorizations as
// confirmed when the TaskManager reports their signatures as used.
func NewEventListener(ctx context.Context, cfg *Config) (EventListenerService, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if cfg.MainnetClient == nil {
		return nil, fmt.Errorf("mainnet client not initialized")
	}
	if cfg.RecordsRepo == nil {
		return nil, fmt.Errorf("records repo not initialized")
	}

	ctx, cancel := context.WithCancel(ctx)

	retry := cfg.RetryInterval
	if retry <= 0 {
		retry = time.Second
	}
	el := &eventListener{
		mainnetClient: cfg.MainnetClient,
		recordsRepo:   cfg.RecordsRepo,
		statusCache:   cfg.StatusCache,
		startBlock:    cfg.StartBlock,
		retryInterval: retry,
		cancel:        cancel,
	}

	el.wg.Add(1)
	go func() {
		defer el.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("[EventListener] Recovered from panic")
			}
		}()

		if err := el.start(ctx); err != nil {
			log.Error().Err(err).Msg("[EventListener] Event listener stopped with error")
		}
	}()

	log.Info().Uint64("start_block", cfg.StartBlock).Msg("[EventListener] Event listener started")
	return el, nil
}

func (el *eventListener) start(ctx context.Context) error {
	filterOpts := &bind.FilterOpts{
		Start:   el.startBlock,
		Context: ctx,
	}

	usedChan := make(chan *ethereum.SignatureUsedEvent)
	sub, err := el.subscribe(ctx, filterOpts, usedChan)
	if err != nil {
		return fmt.Errorf("failed to subscribe to events: %w", err)
	}
	defer func() {
		sub.Unsubscribe()
		log.Info().Msg("[EventListener] Unsubscribed from all events")
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Err(ctx.Err()).Msg("[EventListener] Stopping event listener")
			return nil

		case err := <-sub.Err():
			return fmt.Errorf("signature subscription error: %w", err)

		case e := <-usedChan:
			if err := el.handleSignatureUsed(ctx, e); err != nil {
				log.Error().Err(err).
					Str("kind", string(e.Kind)).
					Str("tx", e.TxHash.Hex()).
					Msg("[EventListener] Failed to handle signature used event")
			}
		}
	}
}

func (el *eventListener) subscribe(ctx context.Context, filterOpts *bind.FilterOpts, sink chan<- *ethereum.SignatureUsedEvent) (event.Subscription, error) {
	var err error
	for i := 0; i < subscribeRetries; i++ {
		var sub event.Subscription
		sub, err = el.mainnetClient.WatchSignatureUsed(filterOpts, sink)
		if err == nil {
			return sub, nil
		}
		log.Warn().Err(err).Int("attempt", i+1).Msg("[EventListener] Failed to subscribe")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(el.retryInterval):
		}
	}
	return nil, fmt.Errorf("failed to subscribe after retries: %w", err)
}

// handleSignatureUsed records the transaction that consumed a signature.
// Signatures this instance never issued have no record and are skipped.
func (el *eventListener) handleSignatureUsed(ctx context.Context, e *ethereum.SignatureUsedEvent) error {
	if el.statusCache != nil {
		if err := el.statusCache.Invalidate(ctx, ethereum.StatusCacheKey(e.Participant)); err != nil {
			log.Warn().Err(err).Str("participant", e.Participant.Hex()).Msg("[EventListener] Failed to invalidate status cache")
		}
	}

	rec, err := el.recordsRepo.MarkConfirmed(ctx, e.Signature, e.TxHash.Hex(), e.BlockNumber)
	if errors.Is(err, records.ErrNotFound) {
		log.Debug().Str("tx", e.TxHash.Hex()).Msg("[EventListener] No record for used signature")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to mark record confirmed: %w", err)
	}

	log.Info().
		Str("id", rec.ID.String()).
		Str("kind", rec.Kind).
		Str("participant", rec.ParticipantProxy).
		Uint64("block", e.BlockNumber).
		Msg("[EventListener] Authorization confirmed on chain")
	return nil
}

func (el *eventListener) Stop() {
	log.Info().Msg("[EventListener] Stopping event listener...")
	el.cancel()
	el.wg.Wait()
	log.Info().Msg("[EventListener] Event listener stopped")
}
