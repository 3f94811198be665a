package ethereum

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/canvassing/pax-rewards/pkg/config"
)

var _ ChainManager = (*Manager)(nil)

// Manager holds one TaskManager client per chain id.
type Manager struct {
	chains map[uint64]ChainClient
	mu     sync.RWMutex
}

// NewManager creates a new chain manager from application config
func NewManager(ctx context.Context, cfg *config.Config) (*Manager, error) {
	chainConfigs := make(map[uint64]*Config)
	for chainID, chainCfg := range cfg.Chains {
		if !common.IsHexAddress(chainCfg.TaskManager) {
			return nil, fmt.Errorf("invalid task manager address for chain %d: %q", chainID, chainCfg.TaskManager)
		}
		chainConfigs[chainID] = &Config{
			ChainID:            chainID,
			RPCEndpoint:        chainCfg.RPC,
			TaskManagerAddress: common.HexToAddress(chainCfg.TaskManager),
			PollInterval:       chainCfg.PollInterval,
		}
	}

	return NewChainManager(ctx, chainConfigs)
}

// NewChainManager creates a new chain client manager
func NewChainManager(ctx context.Context, configs map[uint64]*Config) (*Manager, error) {
	m := &Manager{
		chains: make(map[uint64]ChainClient),
	}

	for chainID, config := range configs {
		chain, err := NewChainClient(ctx, config)
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("failed to initialize chain %d: %w", chainID, err)
		}
		m.chains[chainID] = chain
	}

	return m, nil
}

// GetClientByChainId returns the client for a given chain ID
func (m *Manager) GetClientByChainId(chainID uint64) (ChainClient, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	chain, exists := m.chains[chainID]
	if !exists {
		return nil, fmt.Errorf("chain not found: %d", chainID)
	}
	return chain, nil
}

func (m *Manager) GetMainnetClient() (ChainClient, error) {
	return m.GetClientByChainId(CeloMainnetChainID)
}

// AddChain registers an already constructed client.
func (m *Manager) AddChain(client ChainClient) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	chainID := client.ChainID().Uint64()
	if _, exists := m.chains[chainID]; exists {
		return fmt.Errorf("chain already exists: %d", chainID)
	}
	m.chains[chainID] = client
	return nil
}

// RemoveChain closes and removes a chain
func (m *Manager) RemoveChain(chainID uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	chain, exists := m.chains[chainID]
	if !exists {
		return fmt.Errorf("chain not found: %d", chainID)
	}

	if err := chain.Close(); err != nil {
		return fmt.Errorf("failed to close chain: %w", err)
	}

	delete(m.chains, chainID)
	return nil
}

// Close closes all chains
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for chainID, chain := range m.chains {
		if err := chain.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close chain %d: %w", chainID, err))
		}
	}
	m.chains = make(map[uint64]ChainClient)
	return errors.Join(errs...)
}

// ListChains returns all available chain IDs in ascending order
func (m *Manager) ListChains() []uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	chainIDs := make([]uint64, 0, len(m.chains))
	for chainID := range m.chains {
		chainIDs = append(chainIDs, chainID)
	}
	sort.Slice(chainIDs, func(i, j int) bool { return chainIDs[i] < chainIDs[j] })
	return chainIDs
}
