package ethereum

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

const (
	// CeloMainnetChainID is the chain the production TaskManager lives on.
	CeloMainnetChainID = uint64(42220)

	defaultPollInterval = time.Second
)

var ErrTransactionFailed = errors.New("transaction failed")

// Config contains Ethereum client configuration
type Config struct {
	ChainID            uint64
	RPCEndpoint        string
	TaskManagerAddress common.Address
	PollInterval       time.Duration
}

// Backend is what the client needs from a node. *ethclient.Client satisfies
// it, as does the in-process taskmanager.Backend.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// ParticipantStatus is the on-chain state of one participant proxy.
type ParticipantStatus struct {
	Participant common.Address
	Screened    bool
	Rewarded    bool
}

// TaskStats summarises the TaskManager's counters and configuration.
type TaskStats struct {
	Owner                   common.Address
	Paused                  bool
	RewardAmount            *big.Int
	TargetParticipants      *big.Int
	RewardToken             common.Address
	RewardTokenBalance      *big.Int
	ScreenedParticipants    *big.Int
	RewardedParticipants    *big.Int
	ClaimedRewards          *big.Int
	UsedScreeningSignatures *big.Int
	UsedClaimingSignatures  *big.Int
}

// SignatureKind tells which authorization a consumed signature carried.
type SignatureKind string

const (
	SignatureKindScreening SignatureKind = "screening"
	SignatureKindClaiming  SignatureKind = "reward_claim"
)

// SignatureUsedEvent is emitted when the TaskManager consumes a task master
// signature.
type SignatureUsedEvent struct {
	Kind        SignatureKind
	Participant common.Address
	Signature   []byte
	TxHash      common.Hash
	BlockNumber uint64
	LogIndex    uint
}

// StatusCacheKey is the cache key participant status reads are stored under.
func StatusCacheKey(participant common.Address) string {
	return "participant_status:" + strings.ToLower(participant.Hex())
}
