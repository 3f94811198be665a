package taskmanager

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// The methods below encode their arguments exactly as a wallet would and send
// them through Transact, so they take the same path as submitted calldata.

func (m *Manager) send(from common.Address, method string, args ...interface{}) (*types.Receipt, error) {
	calldata, err := m.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("[TaskManager] failed to encode %s: %w", method, err)
	}
	return m.Transact(from, calldata)
}

func (m *Manager) ScreenParticipantProxy(from, participant common.Address, taskID string, nonce *big.Int, sig []byte) (*types.Receipt, error) {
	return m.send(from, "screenParticipantProxy", participant, taskID, nonce, sig)
}

func (m *Manager) ProcessRewardClaimByParticipantProxy(from, participant, paxAccount common.Address, rewardID string, nonce *big.Int, sig []byte) (*types.Receipt, error) {
	return m.send(from, "processRewardClaimByParticipantProxy", participant, paxAccount, rewardID, nonce, sig)
}

func (m *Manager) UpdateRewardAmountPerParticipantProxy(from common.Address, amount *big.Int) (*types.Receipt, error) {
	return m.send(from, "updateRewardAmountPerParticipantProxy", amount)
}

func (m *Manager) UpdateTargetNumberOfParticipantProxies(from common.Address, target *big.Int) (*types.Receipt, error) {
	return m.send(from, "updateTargetNumberOfParticipantProxies", target)
}

func (m *Manager) PauseTask(from common.Address) (*types.Receipt, error) {
	return m.send(from, "pausetask")
}

func (m *Manager) UnpauseTask(from common.Address) (*types.Receipt, error) {
	return m.send(from, "unpausetask")
}

func (m *Manager) WithdrawAllRewardTokenToTaskManager(from common.Address) (*types.Receipt, error) {
	return m.send(from, "withdrawAllRewardTokenToTaskManager")
}

func (m *Manager) WithdrawAllGivenTokenToTaskManager(from, token common.Address) (*types.Receipt, error) {
	return m.send(from, "withdrawAllGivenTokenTotaskManager", token)
}
