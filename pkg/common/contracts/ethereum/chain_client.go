package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/event"
	"github.com/rs/zerolog/log"

	"github.com/canvassing/pax-rewards/internal/metric"
	"github.com/canvassing/pax-rewards/pkg/common/contracts/bindings"
	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
)

// TaskManagerClient talks to one deployed TaskManager contract.
type TaskManagerClient struct {
	backend      Backend
	closer       func()
	taskManager  *bindings.TaskManager
	address      common.Address
	chainID      *big.Int
	pollInterval time.Duration

	from   common.Address
	signFn bind.SignerFn
}

// NewChainClient dials the RPC endpoint in cfg.
func NewChainClient(ctx context.Context, cfg *Config) (*TaskManagerClient, error) {
	ethClient, err := ethclient.DialContext(ctx, cfg.RPCEndpoint)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to connect to Ethereum node: %w", err)
	}
	c, err := NewChainClientWithBackend(ctx, ethClient, cfg)
	if err != nil {
		ethClient.Close()
		return nil, err
	}
	c.closer = ethClient.Close
	return c, nil
}

// NewChainClientWithBackend binds the TaskManager over an existing backend.
// The backend's chain id must match cfg.ChainID when the latter is set.
func NewChainClientWithBackend(ctx context.Context, backend Backend, cfg *Config) (*TaskManagerClient, error) {
	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to get chain id: %w", err)
	}
	if cfg.ChainID != 0 && chainID.Uint64() != cfg.ChainID {
		return nil, fmt.Errorf("[ChainClient] chain id mismatch: node reports %s, configured %d", chainID, cfg.ChainID)
	}

	taskManager, err := bindings.NewTaskManager(cfg.TaskManagerAddress, backend)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to create task manager binding: %w", err)
	}

	poll := cfg.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}
	return &TaskManagerClient{
		backend:      backend,
		closer:       func() {},
		taskManager:  taskManager,
		address:      cfg.TaskManagerAddress,
		chainID:      chainID,
		pollInterval: poll,
	}, nil
}

// WithSigner sets the account owner-only transactions are sent from.
func (c *TaskManagerClient) WithSigner(from common.Address, signFn bind.SignerFn) *TaskManagerClient {
	c.from = from
	c.signFn = signFn
	return c
}

// Close implements ChainClient
func (c *TaskManagerClient) Close() error {
	c.closer()
	return nil
}

func (c *TaskManagerClient) ChainID() *big.Int { return new(big.Int).Set(c.chainID) }

func (c *TaskManagerClient) Address() common.Address { return c.address }

// Domain is the EIP-712 domain signatures for this contract are bound to.
func (c *TaskManagerClient) Domain() eip712.Domain {
	return eip712.BuildDomain(c.address, c.chainID)
}

// BlockNumber returns the latest block number
func (c *TaskManagerClient) BlockNumber(ctx context.Context) (uint64, error) {
	return c.backend.BlockNumber(ctx)
}

// Read methods

func (c *TaskManagerClient) GetOwner(ctx context.Context) (common.Address, error) {
	owner, err := c.taskManager.GetOwner(&bind.CallOpts{Context: ctx})
	if err != nil {
		return common.Address{}, fmt.Errorf("[ChainClient] failed to get owner: %w", err)
	}
	return owner, nil
}

func (c *TaskManagerClient) IsPaused(ctx context.Context) (bool, error) {
	paused, err := c.taskManager.CheckIfContractIsPaused(&bind.CallOpts{Context: ctx})
	if err != nil {
		return false, fmt.Errorf("[ChainClient] failed to check paused: %w", err)
	}
	return paused, nil
}

// GetParticipantStatus reads screened and rewarded flags at the same block.
func (c *TaskManagerClient) GetParticipantStatus(ctx context.Context, participant common.Address) (*ParticipantStatus, error) {
	block, err := c.backend.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to get block number: %w", err)
	}
	opts := &bind.CallOpts{Context: ctx, BlockNumber: new(big.Int).SetUint64(block)}
	screened, err := c.taskManager.CheckIfParticipantProxyIsScreened(opts, participant)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to check screened: %w", err)
	}
	rewarded, err := c.taskManager.CheckIfParticipantProxyIsRewarded(opts, participant)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to check rewarded: %w", err)
	}
	return &ParticipantStatus{Participant: participant, Screened: screened, Rewarded: rewarded}, nil
}

func (c *TaskManagerClient) IsScreeningSignatureUsed(ctx context.Context, signature []byte) (bool, error) {
	used, err := c.taskManager.CheckIfScreeningSignatureIsUsed(&bind.CallOpts{Context: ctx}, signature)
	if err != nil {
		return false, fmt.Errorf("[ChainClient] failed to check screening signature: %w", err)
	}
	return used, nil
}

func (c *TaskManagerClient) IsClaimingSignatureUsed(ctx context.Context, signature []byte) (bool, error) {
	used, err := c.taskManager.CheckIfClaimingSignatureIsUsed(&bind.CallOpts{Context: ctx}, signature)
	if err != nil {
		return false, fmt.Errorf("[ChainClient] failed to check claiming signature: %w", err)
	}
	return used, nil
}

// GetTaskStats reads every counter and configuration value.
func (c *TaskManagerClient) GetTaskStats(ctx context.Context) (*TaskStats, error) {
	opts := &bind.CallOpts{Context: ctx}
	var (
		stats TaskStats
		err   error
	)
	if stats.Owner, err = c.taskManager.GetOwner(opts); err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to get owner: %w", err)
	}
	if stats.Paused, err = c.taskManager.CheckIfContractIsPaused(opts); err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to check paused: %w", err)
	}
	if stats.RewardAmount, err = c.taskManager.GetRewardAmountPerParticipantProxyInWei(opts); err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to get reward amount: %w", err)
	}
	if stats.TargetParticipants, err = c.taskManager.GetTargetNumberOfParticipantProxies(opts); err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to get target: %w", err)
	}
	if stats.RewardToken, err = c.taskManager.GetRewardTokenContractAddress(opts); err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to get reward token: %w", err)
	}
	if stats.RewardTokenBalance, err = c.taskManager.GetRewardTokenContractBalanceAmount(opts); err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to get reward token balance: %w", err)
	}
	if stats.ScreenedParticipants, err = c.taskManager.GetNumberOfScreenedParticipantProxies(opts); err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to get screened count: %w", err)
	}
	if stats.RewardedParticipants, err = c.taskManager.GetNumberOfRewardedParticipantProxies(opts); err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to get rewarded count: %w", err)
	}
	if stats.ClaimedRewards, err = c.taskManager.GetNumberOfClaimedRewards(opts); err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to get claimed count: %w", err)
	}
	if stats.UsedScreeningSignatures, err = c.taskManager.GetNumberOfUsedScreeningSignatures(opts); err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to get used screening signatures: %w", err)
	}
	if stats.UsedClaimingSignatures, err = c.taskManager.GetNumberOfUsedClaimingSignatures(opts); err != nil {
		return nil, fmt.Errorf("[ChainClient] failed to get used claiming signatures: %w", err)
	}
	return &stats, nil
}

// Write methods

func (c *TaskManagerClient) ownerOpts(ctx context.Context) (*bind.TransactOpts, error) {
	if c.signFn == nil {
		return nil, fmt.Errorf("[ChainClient] no transaction signer configured")
	}
	return &bind.TransactOpts{From: c.from, Signer: c.signFn, Context: ctx}, nil
}

// wait blocks until tx is mined and turns a failed receipt into an error.
func (c *TaskManagerClient) wait(ctx context.Context, method string, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("[ChainClient] failed waiting for %s: %w", method, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		metric.RecordRevert(method, "receipt status 0")
		return receipt, fmt.Errorf("[ChainClient] %s %s: %w", method, tx.Hash().Hex(), ErrTransactionFailed)
	}
	log.Ctx(ctx).Info().
		Str("method", method).
		Str("tx", tx.Hash().Hex()).
		Uint64("block", receipt.BlockNumber.Uint64()).
		Msg("[ChainClient] transaction mined")
	return receipt, nil
}

func (c *TaskManagerClient) send(ctx context.Context, method string, opts *bind.TransactOpts, fn func(*bind.TransactOpts) (*types.Transaction, error)) (*types.Receipt, error) {
	tx, err := fn(opts)
	if err != nil {
		metric.RecordRevert(method, "rejected")
		return nil, fmt.Errorf("[ChainClient] failed to send %s: %w", method, err)
	}
	return c.wait(ctx, method, tx)
}

func (c *TaskManagerClient) sendAsOwner(ctx context.Context, method string, fn func(*bind.TransactOpts) (*types.Transaction, error)) (*types.Receipt, error) {
	opts, err := c.ownerOpts(ctx)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, method, opts, fn)
}

func (c *TaskManagerClient) PauseTask(ctx context.Context) (*types.Receipt, error) {
	return c.sendAsOwner(ctx, "pausetask", c.taskManager.Pausetask)
}

func (c *TaskManagerClient) UnpauseTask(ctx context.Context) (*types.Receipt, error) {
	return c.sendAsOwner(ctx, "unpausetask", c.taskManager.Unpausetask)
}

func (c *TaskManagerClient) UpdateRewardAmount(ctx context.Context, amount *big.Int) (*types.Receipt, error) {
	return c.sendAsOwner(ctx, "updateRewardAmountPerParticipantProxy", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.taskManager.UpdateRewardAmountPerParticipantProxy(opts, amount)
	})
}

func (c *TaskManagerClient) UpdateTargetParticipants(ctx context.Context, target *big.Int) (*types.Receipt, error) {
	return c.sendAsOwner(ctx, "updateTargetNumberOfParticipantProxies", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.taskManager.UpdateTargetNumberOfParticipantProxies(opts, target)
	})
}

func (c *TaskManagerClient) WithdrawRewardToken(ctx context.Context) (*types.Receipt, error) {
	return c.sendAsOwner(ctx, "withdrawAllRewardTokenToTaskManager", c.taskManager.WithdrawAllRewardTokenToTaskManager)
}

func (c *TaskManagerClient) WithdrawGivenToken(ctx context.Context, token common.Address) (*types.Receipt, error) {
	return c.sendAsOwner(ctx, "withdrawAllGivenTokenTotaskManager", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.taskManager.WithdrawAllGivenTokenTotaskManager(opts, token)
	})
}

// SubmitScreening sends a screening package from the participant's account.
func (c *TaskManagerClient) SubmitScreening(ctx context.Context, opts *bind.TransactOpts, participant common.Address, taskID string, nonce *big.Int, signature []byte) (*types.Receipt, error) {
	opts, err := withContext(ctx, opts)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, "screenParticipantProxy", opts, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.taskManager.ScreenParticipantProxy(opts, participant, taskID, nonce, signature)
	})
}

// SubmitRewardClaim sends a reward claim package from the participant's account.
func (c *TaskManagerClient) SubmitRewardClaim(ctx context.Context, opts *bind.TransactOpts, participant, paxAccount common.Address, rewardID string, nonce *big.Int, signature []byte) (*types.Receipt, error) {
	opts, err := withContext(ctx, opts)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, "processRewardClaimByParticipantProxy", opts, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return c.taskManager.ProcessRewardClaimByParticipantProxy(opts, participant, paxAccount, rewardID, nonce, signature)
	})
}

func withContext(ctx context.Context, opts *bind.TransactOpts) (*bind.TransactOpts, error) {
	if opts == nil {
		return nil, errors.New("[ChainClient] transact opts are required")
	}
	cp := *opts
	cp.Context = ctx
	return &cp, nil
}

// Watch methods

// WatchSignatureUsed polls for ScreeningSignatureUsed and ClaimingSignatureUsed
// events from filterOpts.Start onwards and forwards them to sink in block order.
func (c *TaskManagerClient) WatchSignatureUsed(filterOpts *bind.FilterOpts, sink chan<- *SignatureUsedEvent) (event.Subscription, error) {
	ctx := filterOpts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	sub := event.NewSubscription(func(quit <-chan struct{}) error {
		ticker := time.NewTicker(c.pollInterval)
		defer ticker.Stop()

		next := filterOpts.Start
		for {
			select {
			case <-quit:
				return nil
			case <-ticker.C:
				head, err := c.backend.BlockNumber(ctx)
				if err != nil {
					log.Ctx(ctx).Warn().Err(err).Msg("[ChainClient] failed to get block number")
					continue
				}
				if head < next {
					continue
				}
				events, err := c.collectSignatureUsed(ctx, next, head)
				if err != nil {
					log.Ctx(ctx).Warn().Err(err).Uint64("from", next).Uint64("to", head).Msg("[ChainClient] failed to filter events")
					continue
				}
				for _, e := range events {
					select {
					case sink <- e:
					case <-quit:
						return nil
					}
				}
				next = head + 1
			}
		}
	})
	return sub, nil
}

func (c *TaskManagerClient) collectSignatureUsed(ctx context.Context, from, to uint64) ([]*SignatureUsedEvent, error) {
	opts := &bind.FilterOpts{Start: from, End: &to, Context: ctx}

	var events []*SignatureUsedEvent
	screening, err := c.taskManager.FilterScreeningSignatureUsed(opts)
	if err != nil {
		return nil, err
	}
	for screening.Next() {
		e := screening.Event
		events = append(events, &SignatureUsedEvent{
			Kind:        SignatureKindScreening,
			Participant: e.ParticipantProxy,
			Signature:   e.Signature,
			TxHash:      e.Raw.TxHash,
			BlockNumber: e.Raw.BlockNumber,
			LogIndex:    e.Raw.Index,
		})
	}
	if err := errors.Join(screening.Error(), screening.Close()); err != nil {
		return nil, err
	}

	claiming, err := c.taskManager.FilterClaimingSignatureUsed(opts)
	if err != nil {
		return nil, err
	}
	for claiming.Next() {
		e := claiming.Event
		events = append(events, &SignatureUsedEvent{
			Kind:        SignatureKindClaiming,
			Participant: e.ParticipantProxy,
			Signature:   e.Signature,
			TxHash:      e.Raw.TxHash,
			BlockNumber: e.Raw.BlockNumber,
			LogIndex:    e.Raw.Index,
		})
	}
	if err := errors.Join(claiming.Error(), claiming.Close()); err != nil {
		return nil, err
	}

	sortByLogPosition(events)
	return events, nil
}

// sortByLogPosition restores chain order across the two filtered event kinds.
func sortByLogPosition(events []*SignatureUsedEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].BlockNumber != events[j].BlockNumber {
			return events[i].BlockNumber < events[j].BlockNumber
		}
		return events[i].LogIndex < events[j].LogIndex
	})
}
