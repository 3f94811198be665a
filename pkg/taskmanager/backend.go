package taskmanager

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/params"
)

var (
	_ bind.ContractBackend = (*Backend)(nil)
	_ bind.DeployBackend   = (*Backend)(nil)

	// deployedCode marks the manager address as a contract for callers that
	// check for code before calling. It is never executed.
	deployedCode = []byte{0xfe}

	ErrUnknownRecipient = errors.New("transaction recipient is not the task manager")
	ErrNonceMismatch    = errors.New("transaction nonce mismatch")
)

// Backend serves a Manager over the JSON-RPC shaped interfaces that contract
// bindings and transaction helpers use. Signed transactions are checked for
// sender and nonce, then applied one per block.
type Backend struct {
	manager *Manager

	mu     sync.Mutex
	nonces map[common.Address]uint64
}

func NewBackend(manager *Manager) *Backend {
	return &Backend{
		manager: manager,
		nonces:  make(map[common.Address]uint64),
	}
}

func (b *Backend) Manager() *Manager {
	return b.manager
}

func (b *Backend) ChainID(context.Context) (*big.Int, error) {
	return b.manager.ChainID(), nil
}

func (b *Backend) BlockNumber(context.Context) (uint64, error) {
	b.manager.mu.Lock()
	defer b.manager.mu.Unlock()
	return b.manager.blockNumber, nil
}

func (b *Backend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	latest, _ := b.BlockNumber(ctx)
	n := latest
	if number != nil {
		if !number.IsUint64() || number.Uint64() > latest {
			return nil, ethereum.NotFound
		}
		n = number.Uint64()
	}
	return &types.Header{
		Number:  new(big.Int).SetUint64(n),
		BaseFee: big.NewInt(params.GWei),
	}, nil
}

func (b *Backend) CodeAt(_ context.Context, contract common.Address, _ *big.Int) ([]byte, error) {
	if contract == b.manager.address {
		return deployedCode, nil
	}
	return nil, nil
}

func (b *Backend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return b.CodeAt(ctx, account, nil)
}

func (b *Backend) CallContract(_ context.Context, call ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if call.To == nil || *call.To != b.manager.address {
		return nil, nil
	}
	return b.manager.Call(call.Data)
}

func (b *Backend) PendingNonceAt(_ context.Context, account common.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nonces[account], nil
}

func (b *Backend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(params.GWei), nil
}

func (b *Backend) SuggestGasTipCap(context.Context) (*big.Int, error) {
	return big.NewInt(params.GWei), nil
}

// EstimateGas fails with the revert the call would cause, the way a node
// refuses to estimate a reverting transaction.
func (b *Backend) EstimateGas(_ context.Context, call ethereum.CallMsg) (uint64, error) {
	if call.To == nil || *call.To != b.manager.address {
		return 0, ErrUnknownRecipient
	}
	if err := b.manager.Simulate(call.From, call.Data); err != nil {
		return 0, err
	}
	return gasPerTransaction, nil
}

func (b *Backend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	if tx.ChainId().Cmp(b.manager.chainID) != 0 {
		return fmt.Errorf("invalid chain id %s", tx.ChainId())
	}
	from, err := types.Sender(types.LatestSignerForChainID(b.manager.chainID), tx)
	if err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}
	if tx.To() == nil || *tx.To() != b.manager.address {
		return ErrUnknownRecipient
	}

	b.mu.Lock()
	if tx.Nonce() != b.nonces[from] {
		expected := b.nonces[from]
		b.mu.Unlock()
		return fmt.Errorf("%w: got %d, want %d", ErrNonceMismatch, tx.Nonce(), expected)
	}
	b.nonces[from]++
	b.mu.Unlock()

	b.manager.mu.Lock()
	_, logs, _ := b.manager.execute(tx.Hash(), from, tx.Data(), false)
	b.manager.mu.Unlock()
	b.manager.publish(logs)
	return nil
}

func (b *Backend) TransactionReceipt(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
	b.manager.mu.Lock()
	defer b.manager.mu.Unlock()
	receipt, ok := b.manager.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

func (b *Backend) FilterLogs(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	b.manager.mu.Lock()
	defer b.manager.mu.Unlock()

	var out []types.Log
	for _, l := range b.manager.logs {
		if matchLog(q, l, b.manager.blockNumber) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (b *Backend) SubscribeFilterLogs(_ context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	feed := make(chan types.Log, 64)
	sub := b.manager.logFeed.Subscribe(feed)
	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case l := <-feed:
				if !matchLog(q, l, l.BlockNumber) {
					continue
				}
				select {
				case ch <- l:
				case <-quit:
					return nil
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}), nil
}

func matchLog(q ethereum.FilterQuery, l types.Log, latest uint64) bool {
	if q.BlockHash != nil && *q.BlockHash != l.BlockHash {
		return false
	}
	if q.FromBlock != nil && q.FromBlock.Sign() >= 0 && l.BlockNumber < q.FromBlock.Uint64() {
		return false
	}
	to := latest
	if q.ToBlock != nil && q.ToBlock.Sign() >= 0 {
		to = q.ToBlock.Uint64()
	}
	if l.BlockNumber > to {
		return false
	}
	if len(q.Addresses) > 0 {
		found := false
		for _, a := range q.Addresses {
			if a == l.Address {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(q.Topics) > len(l.Topics) {
		return false
	}
	for i, alternatives := range q.Topics {
		if len(alternatives) == 0 {
			continue
		}
		found := false
		for _, t := range alternatives {
			if t == l.Topics[i] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
