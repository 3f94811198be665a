package taskmanager

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

func (m *Manager) IsScreened(participant common.Address) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status(participant).Screened
}

func (m *Manager) IsRewarded(participant common.Address) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status(participant).Rewarded
}

// Status returns both flags of participant in one read.
func (m *Manager) Status(participant common.Address) ParticipantStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status(participant)
}

func (m *Manager) IsScreeningSignatureUsed(sig []byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.usedScreening[string(sig)]
	return ok
}

func (m *Manager) IsClaimingSignatureUsed(sig []byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.usedClaiming[string(sig)]
	return ok
}

func (m *Manager) IsPaused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused
}

func (m *Manager) counter(c *uint64) *big.Int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return new(big.Int).SetUint64(*c)
}

func (m *Manager) NumberOfScreenedParticipantProxies() *big.Int {
	return m.counter(&m.screenedCount)
}

func (m *Manager) NumberOfRewardedParticipantProxies() *big.Int {
	return m.counter(&m.rewardedCount)
}

func (m *Manager) NumberOfClaimedRewards() *big.Int {
	return m.counter(&m.claimedCount)
}

func (m *Manager) NumberOfUsedScreeningSignatures() *big.Int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return big.NewInt(int64(len(m.usedScreening)))
}

func (m *Manager) NumberOfUsedClaimingSignatures() *big.Int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return big.NewInt(int64(len(m.usedClaiming)))
}

func (m *Manager) Owner() common.Address {
	return m.owner
}

func (m *Manager) RewardAmount() *big.Int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return new(big.Int).Set(m.rewardAmount)
}

func (m *Manager) TargetParticipants() *big.Int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return new(big.Int).Set(m.target)
}

func (m *Manager) RewardTokenAddress() common.Address {
	return m.rewardToken.Address()
}

func (m *Manager) RewardTokenBalance() *big.Int {
	return m.rewardToken.BalanceOf(m.address)
}
