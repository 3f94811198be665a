package taskmanager

import (
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInsufficientBalance = errors.New("insufficient balance")

// Token is the fungible token the manager pays rewards in.
type Token interface {
	Address() common.Address
	BalanceOf(account common.Address) *big.Int
	Transfer(from, to common.Address, amount *big.Int) error
}

// MemoryToken is an ERC-20 style balance ledger kept in memory.
type MemoryToken struct {
	address common.Address

	mu       sync.RWMutex
	balances map[common.Address]*big.Int
}

func NewMemoryToken(address common.Address) *MemoryToken {
	return &MemoryToken{
		address:  address,
		balances: make(map[common.Address]*big.Int),
	}
}

func (t *MemoryToken) Address() common.Address {
	return t.address
}

// Mint credits amount to account.
func (t *MemoryToken) Mint(account common.Address, amount *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.credit(account, amount)
}

func (t *MemoryToken) BalanceOf(account common.Address) *big.Int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if b, ok := t.balances[account]; ok {
		return new(big.Int).Set(b)
	}
	return new(big.Int)
}

// Transfer moves amount from one account to another. Either both balances
// change or neither does.
func (t *MemoryToken) Transfer(from, to common.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return errors.New("negative amount")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	balance, ok := t.balances[from]
	if !ok || balance.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	balance.Sub(balance, amount)
	t.credit(to, amount)
	return nil
}

func (t *MemoryToken) credit(account common.Address, amount *big.Int) {
	b, ok := t.balances[account]
	if !ok {
		b = new(big.Int)
		t.balances[account] = b
	}
	b.Add(b, amount)
}
