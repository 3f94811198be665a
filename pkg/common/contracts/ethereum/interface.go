package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"

	"github.com/canvassing/pax-rewards/pkg/common/crypto/eip712"
)

// ChainManager defines the interface for chain management
type ChainManager interface {
	// GetMainnetClient returns the Celo mainnet client
	GetMainnetClient() (ChainClient, error)
	// GetClientByChainId returns the appropriate client for a given chain ID
	GetClientByChainId(chainID uint64) (ChainClient, error)
	// Close closes all chains
	Close() error
}

// ChainClient defines the interface for TaskManager operations
type ChainClient interface {
	// Basic methods
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID() *big.Int
	Address() common.Address
	Domain() eip712.Domain
	Close() error

	// State methods
	GetOwner(ctx context.Context) (common.Address, error)
	IsPaused(ctx context.Context) (bool, error)
	GetParticipantStatus(ctx context.Context, participant common.Address) (*ParticipantStatus, error)
	IsScreeningSignatureUsed(ctx context.Context, signature []byte) (bool, error)
	IsClaimingSignatureUsed(ctx context.Context, signature []byte) (bool, error)
	GetTaskStats(ctx context.Context) (*TaskStats, error)

	// Owner methods
	PauseTask(ctx context.Context) (*types.Receipt, error)
	UnpauseTask(ctx context.Context) (*types.Receipt, error)
	UpdateRewardAmount(ctx context.Context, amount *big.Int) (*types.Receipt, error)
	UpdateTargetParticipants(ctx context.Context, target *big.Int) (*types.Receipt, error)
	WithdrawRewardToken(ctx context.Context) (*types.Receipt, error)
	WithdrawGivenToken(ctx context.Context, token common.Address) (*types.Receipt, error)

	// Participant methods
	SubmitScreening(ctx context.Context, opts *bind.TransactOpts, participant common.Address, taskID string, nonce *big.Int, signature []byte) (*types.Receipt, error)
	SubmitRewardClaim(ctx context.Context, opts *bind.TransactOpts, participant, paxAccount common.Address, rewardID string, nonce *big.Int, signature []byte) (*types.Receipt, error)

	// Watch methods
	WatchSignatureUsed(filterOpts *bind.FilterOpts, sink chan<- *SignatureUsedEvent) (event.Subscription, error)
}

var _ ChainClient = (*TaskManagerClient)(nil)
